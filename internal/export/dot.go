package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/situationlab/situation-backend/internal/platform/dbctx"
)

// BuildEventsDot renders the event graph as DOT: one edge per (actor,
// event) pair and one "at" edge per located event, events in ascending id
// order, actors in link order.
func (e *Exporter) BuildEventsDot(dbc dbctx.Context) (string, error) {
	s, err := e.load(dbc)
	if err != nil {
		return "", err
	}

	personName := make(map[uint]string, len(s.persons))
	for _, p := range s.persons {
		personName[p.ID] = p.Name
	}
	placeName := make(map[uint]string, len(s.places))
	for _, p := range s.places {
		placeName[p.ID] = p.Name
	}

	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString("ranksep=\"1.0 equally\";\n")
	b.WriteString("concentrate=true;\n")
	b.WriteString("landscape=false;\n")
	for _, event := range s.events {
		for _, actorID := range s.eventActors[event.ID] {
			fmt.Fprintf(&b, "%q -> %q [label=%q];\n", personName[actorID], event.Name, "")
		}
		if event.PlaceID != nil {
			fmt.Fprintf(&b, "%q -> %q [label=%q];\n", event.Name, placeName[*event.PlaceID], "at")
		}
	}
	b.WriteString("}")
	return b.String(), nil
}

// SaveEventsDot writes the DOT rendering to path.
func (e *Exporter) SaveEventsDot(dbc dbctx.Context, path string) error {
	buf, err := e.BuildEventsDot(dbc)
	if err != nil {
		return err
	}
	e.log.Info("Writing events graph", "path", path, "bytes", len(buf))
	return os.WriteFile(path, []byte(buf), 0o644)
}
