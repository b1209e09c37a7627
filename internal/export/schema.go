package export

import (
	"sort"
	"time"

	"github.com/gosimple/slug"
	"github.com/situationlab/situation-backend/internal/domain"
)

// TimeLayout formats event timestamps to the second.
const TimeLayout = "2006-01-02T15:04:05"

type fieldKind int

const (
	kindScalar fieldKind = iota
	kindTimestamp
	kindIDList
	kindSlug
)

// field describes one serialized attribute: its document key, how it
// renders, and how to read it off the entity and snapshot. One descriptor
// table per entity kind drives a single generic renderer, instead of a
// bespoke serialization method per model.
type field struct {
	name string
	kind fieldKind
	get  func(s *snapshot, e interface{}) interface{}
}

var resourceFields = []field{
	{"id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Resource).ID }},
	{"unique", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Resource).Unique }},
	{"name", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Resource).Name }},
	{"url", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Resource).URL }},
	{"publisher", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Resource).Publisher }},
	{"author", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Resource).Author }},
	{"description", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Resource).Description }},
}

var excerptFields = []field{
	{"id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Excerpt).ID }},
	{"unique", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Excerpt).Unique }},
	{"content", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Excerpt).Content }},
	{"resource_id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Excerpt).ResourceID }},
	{"xpath", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Excerpt).XPath }},
}

var personFields = []field{
	{"id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Person).ID }},
	{"unique", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Person).Unique }},
	{"name", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Person).Name }},
	{"alias", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Person).Alias }},
	{"slug", kindSlug, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Person).Name }},
	{"excerpts", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.personExcerpts[e.(*domain.Person).ID] }},
	{"events", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.personEvents[e.(*domain.Person).ID] }},
	{"groups", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.personGroups[e.(*domain.Person).ID] }},
	{"possessions", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.personPossessions[e.(*domain.Person).ID] }},
	{"properties", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.personProperties[e.(*domain.Person).ID] }},
	{"acquaintances", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.personAcquainted[e.(*domain.Person).ID] }},
}

var acquaintanceFields = []field{
	{"person_id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Acquaintance).PersonID }},
	{"acquainted_id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Acquaintance).AcquaintedID }},
	{"isa", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Acquaintance).Isa }},
	{"excerpts", kindIDList, func(s *snapshot, e interface{}) interface{} {
		a := e.(*domain.Acquaintance)
		return s.acquaintanceExcerpts[acqKey{person: a.PersonID, acquainted: a.AcquaintedID}]
	}},
}

var placeFields = []field{
	{"id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Place).ID }},
	{"unique", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Place).Unique }},
	{"name", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Place).Name }},
	{"description", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Place).Description }},
	{"address", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Place).Address }},
	{"lat", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Place).Lat }},
	{"lon", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Place).Lon }},
	{"slug", kindSlug, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Place).Name }},
	{"excerpts", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.placeExcerpts[e.(*domain.Place).ID] }},
	{"events", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.placeEvents[e.(*domain.Place).ID] }},
	{"owners", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.placeOwners[e.(*domain.Place).ID] }},
}

var itemFields = []field{
	{"id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Item).ID }},
	{"unique", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Item).Unique }},
	{"name", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Item).Name }},
	{"description", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Item).Description }},
	{"slug", kindSlug, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Item).Name }},
	{"excerpts", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.itemExcerpts[e.(*domain.Item).ID] }},
	{"owners", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.itemOwners[e.(*domain.Item).ID] }},
}

var groupFields = []field{
	{"id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Group).ID }},
	{"unique", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Group).Unique }},
	{"name", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Group).Name }},
	{"slug", kindSlug, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Group).Name }},
	{"excerpts", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.groupExcerpts[e.(*domain.Group).ID] }},
	{"members", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.groupMembers[e.(*domain.Group).ID] }},
}

var eventFields = []field{
	{"id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Event).ID }},
	{"unique", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Event).Unique }},
	{"name", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Event).Name }},
	{"description", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Event).Description }},
	{"place_id", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Event).PlaceID }},
	{"phone", kindScalar, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Event).Phone }},
	{"timestamp", kindTimestamp, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Event).Timestamp }},
	{"slug", kindSlug, func(_ *snapshot, e interface{}) interface{} { return e.(*domain.Event).Name }},
	{"excerpts", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.eventExcerpts[e.(*domain.Event).ID] }},
	{"actors", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.eventActors[e.(*domain.Event).ID] }},
	{"items", kindIDList, func(s *snapshot, e interface{}) interface{} { return s.eventItems[e.(*domain.Event).ID] }},
}

// render flattens one entity to a document. Relationship fields become
// ascending id lists, or depth-1 {id} stubs when stubs is set; recursion
// never goes deeper, which keeps cyclic graphs serializable.
func render(s *snapshot, fields []field, e interface{}, stubs bool) map[string]interface{} {
	doc := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		v := f.get(s, e)
		switch f.kind {
		case kindScalar:
			doc[f.name] = v
		case kindSlug:
			doc[f.name] = slug.Make(v.(string))
		case kindTimestamp:
			doc[f.name] = v.(time.Time).Format(TimeLayout)
		case kindIDList:
			ids := append([]uint(nil), v.([]uint)...)
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			if stubs {
				out := make([]map[string]interface{}, len(ids))
				for i, id := range ids {
					out[i] = map[string]interface{}{"id": id}
				}
				doc[f.name] = out
			} else {
				doc[f.name] = ids
			}
		}
	}
	return doc
}

func renderList[T any](s *snapshot, fields []field, entities []*T) []map[string]interface{} {
	out := make([]map[string]interface{}, len(entities))
	for i, e := range entities {
		out[i] = render(s, fields, e, false)
	}
	return out
}
