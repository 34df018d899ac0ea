package view

import (
	"bytes"
	"f1-standings-service/internal/domain"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

var tierColors = map[domain.Tier]*color.Color{
	domain.TierGold:    color.New(color.FgYellow, color.Bold),
	domain.TierSilver:  color.New(color.FgWhite, color.Bold),
	domain.TierBronze:  color.New(color.FgRed),
	domain.TierDefault: color.New(color.Reset),
}

var championColor = color.New(color.FgYellow, color.Bold, color.BlinkSlow)

// WriteText renders st as an aligned text table. Colors follow color.NoColor.
func WriteText(w io.Writer, st State) error {
	switch st.Kind() {
	case "loading":
		_, err := fmt.Fprintln(w, "Loading…")
		return err
	case "error":
		_, err := fmt.Fprintf(w, "Error\n%s\n", st.Err)
		return err
	case "empty":
		_, err := fmt.Fprintln(w, "No classification data available")
		return err
	}

	// align uncolored text first; escape codes would count as column width
	var table bytes.Buffer
	tw := tabwriter.NewWriter(&table, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POSITION\tDRIVER\tTEAM\tPOINTS\t")

	for _, s := range st.Standings {
		pos := fmt.Sprintf("%d", s.Position)
		if s.Position == 1 {
			pos += " 🏆"
		}

		name := s.Name
		if s.IsChampion {
			name += " CHAMPION"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", pos, name, s.Team, FormatPoints(s.Points))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write text: %w", err)
	}

	lines := strings.SplitAfter(table.String(), "\n")
	if _, err := io.WriteString(w, lines[0]); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	for i, s := range st.Standings {
		c := tierColors[domain.TierFor(s.Position)]
		if s.IsChampion {
			c = championColor
		}
		line := strings.TrimSuffix(lines[i+1], "\n")
		if _, err := fmt.Fprintln(w, c.Sprint(line)); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}

	if domain.HasChampion(st.Standings) {
		_, err := fmt.Fprintln(w, "\n⚡ Feature Flag Active: RUBINHO_CAMPEAO is enabled! Showing Rubinho Barrichello as the champion.")
		return err
	}
	return nil
}
