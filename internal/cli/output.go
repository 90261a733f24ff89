package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/soyeahso/playground/internal/playground"
)

func wantJSON() bool {
	return outputFormat == "json"
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAgents(w io.Writer, agents []playground.ComboboxAgent) error {
	if wantJSON() {
		return printJSON(w, agents)
	}
	if len(agents) == 0 {
		fmt.Fprintln(w, "No agents found.")
		return nil
	}
	for _, a := range agents {
		storage := "off"
		if a.Storage {
			storage = "on"
		}
		model := a.Model
		if model == "" {
			model = "-"
		}
		fmt.Fprintf(w, "  %-20s %-24s model=%s storage=%s\n", a.Value, a.Label, model, storage)
	}
	return nil
}

func printSessions(w io.Writer, sessions []playground.SessionEntry) error {
	if wantJSON() {
		return printJSON(w, sessions)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions found.")
		return nil
	}
	for _, s := range sessions {
		created := "-"
		if ts := s.CreatedAt(); ts > 0 {
			created = time.Unix(ts, 0).UTC().Format(time.DateTime)
		}
		title := s.Title()
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "  %-38s %-19s %s\n", s.ID(), created, title)
	}
	return nil
}
