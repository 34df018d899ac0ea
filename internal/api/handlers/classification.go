package handlers

import (
	"context"
	"f1-standings-service/internal/api/dto"
	"f1-standings-service/internal/domain"
	"f1-standings-service/internal/platform/obs"
	"net/http"

	"github.com/sirupsen/logrus"
)

const APIVersion = "1.0.0"

// Loader produces one standings snapshot per call.
type Loader interface {
	Load(ctx context.Context) ([]domain.Standing, error)
}

// ClassificationHandler exposes the read-only classification API.
type ClassificationHandler struct {
	Loader Loader
}

func (h *ClassificationHandler) List(w http.ResponseWriter, r *http.Request) {
	standings, err := h.Loader.Load(r.Context())
	if err != nil {
		logrus.WithError(err).WithField("req_id", obs.RequestID(r.Context())).Error("load classification failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ClassificationResponse{Data: standings})
}

// Info lists the API endpoints.
func Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.InfoResponse{
		Message: "F1 2025 Classification API",
		Version: APIVersion,
		Endpoints: map[string]string{
			"/api/classification": "Get F1 driver classification",
		},
	})
}
