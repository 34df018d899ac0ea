package handlers

import (
	"bytes"
	"f1-standings-service/internal/adapters/remote"
	"f1-standings-service/internal/platform/obs"
	"f1-standings-service/internal/view"
	"net/http"

	"github.com/sirupsen/logrus"
)

// PageHandler renders the standings page. Load failures become the error state, not a bare 500.
type PageHandler struct {
	Loader   Loader
	Renderer *view.Renderer
}

func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	var st view.State

	standings, err := h.Loader.Load(r.Context())
	if err != nil {
		logrus.WithError(err).WithField("req_id", obs.RequestID(r.Context())).Warn("standings page: load failed")
		st.Err = err.Error()
		status = http.StatusInternalServerError
		if remote.IsTransport(err) {
			status = http.StatusBadGateway
		}
	} else {
		st.Standings = standings
	}

	var buf bytes.Buffer
	if err := h.Renderer.RenderPage(&buf, st); err != nil {
		logrus.WithError(err).Error("standings page: render failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
