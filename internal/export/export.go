// Package export converts the situation graph into documents: a
// deterministic full-graph JSON dump, depth-1 nested per-entity documents,
// and a DOT rendering of actors, events, and places.
package export

import (
	"encoding/json"
	"os"

	"github.com/situationlab/situation-backend/internal/data/repos"
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
	"gorm.io/gorm"
)

type Exporter struct {
	log *logger.Logger

	resources     repos.ResourceRepo
	excerpts      repos.ExcerptRepo
	persons       repos.PersonRepo
	acquaintances repos.AcquaintanceRepo
	places        repos.PlaceRepo
	items         repos.ItemRepo
	groups        repos.GroupRepo
	events        repos.EventRepo
	links         repos.LinkRepo
}

func NewExporter(db *gorm.DB, baseLog *logger.Logger) *Exporter {
	return &Exporter{
		log:           baseLog.With("service", "Exporter"),
		resources:     repos.NewResourceRepo(db, baseLog),
		excerpts:      repos.NewExcerptRepo(db, baseLog),
		persons:       repos.NewPersonRepo(db, baseLog),
		acquaintances: repos.NewAcquaintanceRepo(db, baseLog),
		places:        repos.NewPlaceRepo(db, baseLog),
		items:         repos.NewItemRepo(db, baseLog),
		groups:        repos.NewGroupRepo(db, baseLog),
		events:        repos.NewEventRepo(db, baseLog),
		links:         repos.NewLinkRepo(db, baseLog),
	}
}

// Dump builds the full-graph document: every entity kind listed in
// ascending id order (acquaintances by their ordered pair), relationship
// fields flattened to id lists. The same data always yields the same
// document.
func (e *Exporter) Dump(dbc dbctx.Context) (map[string]interface{}, error) {
	s, err := e.load(dbc)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"persons":       renderList(s, personFields, s.persons),
		"acquaintances": renderList(s, acquaintanceFields, s.acquaintances),
		"groups":        renderList(s, groupFields, s.groups),
		"places":        renderList(s, placeFields, s.places),
		"items":         renderList(s, itemFields, s.items),
		"events":        renderList(s, eventFields, s.events),
		"excerpts":      renderList(s, excerptFields, s.excerpts),
		"resources":     renderList(s, resourceFields, s.resources),
	}, nil
}

// Save writes the full-graph document to path. Output is byte-stable:
// object keys sort, arrays order by ascending id, indentation is fixed.
func (e *Exporter) Save(dbc dbctx.Context, path string) error {
	doc, err := e.Dump(dbc)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", " ")
	if err != nil {
		return err
	}
	e.log.Info("Writing situation dump", "path", path, "bytes", len(data))
	return os.WriteFile(path, data, 0o644)
}

// Document renders one entity with its related entities as {id} stubs.
// Nesting stops at depth 1, so cycles through persons, events, and places
// cannot expand. The slug field is computed here, never stored.
func (e *Exporter) Document(dbc dbctx.Context, entity interface{}) (map[string]interface{}, error) {
	s, err := e.load(dbc)
	if err != nil {
		return nil, err
	}
	switch entity.(type) {
	case *domain.Resource:
		return render(s, resourceFields, entity, true), nil
	case *domain.Excerpt:
		return render(s, excerptFields, entity, true), nil
	case *domain.Person:
		return render(s, personFields, entity, true), nil
	case *domain.Acquaintance:
		return render(s, acquaintanceFields, entity, true), nil
	case *domain.Place:
		return render(s, placeFields, entity, true), nil
	case *domain.Item:
		return render(s, itemFields, entity, true), nil
	case *domain.Group:
		return render(s, groupFields, entity, true), nil
	case *domain.Event:
		return render(s, eventFields, entity, true), nil
	default:
		return nil, storeerr.Newf(storeerr.KindValidation, "cannot serialize %T", entity)
	}
}
