// Package view turns a standings snapshot into HTML or terminal text.
package view

import (
	"embed"
	"f1-standings-service/internal/domain"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Masterminds/sprig"
	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

// State is what one render sees. Precedence: Loading, then Err, then empty, then table.
type State struct {
	Loading   bool
	Err       string
	Standings []domain.Standing
}

// Kind names the branch Render will take for st.
func (st State) Kind() string {
	switch {
	case st.Loading:
		return "loading"
	case st.Err != "":
		return "error"
	case len(st.Standings) == 0:
		return "empty"
	default:
		return "table"
	}
}

type page struct {
	Title  string
	Season int
	State  State
}

type Renderer struct {
	tmpl   *template.Template
	season int
}

func NewRenderer(season int) (*Renderer, error) {
	tmpl, err := template.New("view").
		Funcs(sprig.FuncMap()).
		Funcs(template.FuncMap{
			"tier":        domain.TierFor,
			"rowClass":    RowClass,
			"points":      FormatPoints,
			"hasChampion": domain.HasChampion,
		}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("new renderer: parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl, season: season}, nil
}

// Render writes the standings section only.
func (r *Renderer) Render(w io.Writer, st State) error {
	if err := r.tmpl.ExecuteTemplate(w, "standings", st); err != nil {
		return fmt.Errorf("render standings: %w", err)
	}
	return nil
}

// RenderPage writes a complete HTML document around the standings section.
func (r *Renderer) RenderPage(w io.Writer, st State) error {
	p := page{
		Title:  fmt.Sprintf("F1 %d Classification", r.season),
		Season: r.season,
		State:  st,
	}
	if err := r.tmpl.ExecuteTemplate(w, "page", p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RowClass is the CSS class list of a table row.
func RowClass(s domain.Standing) string {
	classes := []string{"tier-" + string(domain.TierFor(s.Position))}
	if s.IsChampion {
		classes = append(classes, "champion")
	}
	return strings.Join(classes, " ")
}

// FormatPoints prints whole points without decimals and thousands-separated.
func FormatPoints(p float64) string {
	return humanize.CommafWithDigits(p, 1)
}
