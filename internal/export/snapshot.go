package export

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
)

type acqKey struct {
	person     uint
	acquainted uint
}

// snapshot is one read of the whole graph: every entity list plus every
// association family indexed in the direction(s) serialization needs.
// Link id slices preserve join-row (insertion) order; renderers sort when
// the output calls for ascending referenced ids.
type snapshot struct {
	resources     []*domain.Resource
	excerpts      []*domain.Excerpt
	persons       []*domain.Person
	acquaintances []*domain.Acquaintance
	places        []*domain.Place
	items         []*domain.Item
	groups        []*domain.Group
	events        []*domain.Event

	personExcerpts       map[uint][]uint
	placeExcerpts        map[uint][]uint
	itemExcerpts         map[uint][]uint
	groupExcerpts        map[uint][]uint
	eventExcerpts        map[uint][]uint
	acquaintanceExcerpts map[acqKey][]uint

	placeOwners       map[uint][]uint
	personProperties  map[uint][]uint
	itemOwners        map[uint][]uint
	personPossessions map[uint][]uint
	groupMembers      map[uint][]uint
	personGroups      map[uint][]uint
	eventActors       map[uint][]uint
	personEvents      map[uint][]uint
	eventItems        map[uint][]uint
	placeEvents       map[uint][]uint
	personAcquainted  map[uint][]uint
}

func (e *Exporter) load(dbc dbctx.Context) (*snapshot, error) {
	s := &snapshot{
		personExcerpts:       map[uint][]uint{},
		placeExcerpts:        map[uint][]uint{},
		itemExcerpts:         map[uint][]uint{},
		groupExcerpts:        map[uint][]uint{},
		eventExcerpts:        map[uint][]uint{},
		acquaintanceExcerpts: map[acqKey][]uint{},
		placeOwners:          map[uint][]uint{},
		personProperties:     map[uint][]uint{},
		itemOwners:           map[uint][]uint{},
		personPossessions:    map[uint][]uint{},
		groupMembers:         map[uint][]uint{},
		personGroups:         map[uint][]uint{},
		eventActors:          map[uint][]uint{},
		personEvents:         map[uint][]uint{},
		eventItems:           map[uint][]uint{},
		placeEvents:          map[uint][]uint{},
		personAcquainted:     map[uint][]uint{},
	}

	var err error
	if s.resources, err = e.resources.List(dbc); err != nil {
		return nil, err
	}
	if s.excerpts, err = e.excerpts.List(dbc); err != nil {
		return nil, err
	}
	if s.persons, err = e.persons.List(dbc); err != nil {
		return nil, err
	}
	if s.acquaintances, err = e.acquaintances.List(dbc); err != nil {
		return nil, err
	}
	if s.places, err = e.places.List(dbc); err != nil {
		return nil, err
	}
	if s.items, err = e.items.List(dbc); err != nil {
		return nil, err
	}
	if s.groups, err = e.groups.List(dbc); err != nil {
		return nil, err
	}
	if s.events, err = e.events.List(dbc); err != nil {
		return nil, err
	}

	personExcerpts, err := e.links.ListPersonExcerpts(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range personExcerpts {
		s.personExcerpts[l.PersonID] = append(s.personExcerpts[l.PersonID], l.ExcerptID)
	}

	placeExcerpts, err := e.links.ListPlaceExcerpts(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range placeExcerpts {
		s.placeExcerpts[l.PlaceID] = append(s.placeExcerpts[l.PlaceID], l.ExcerptID)
	}

	itemExcerpts, err := e.links.ListItemExcerpts(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range itemExcerpts {
		s.itemExcerpts[l.ItemID] = append(s.itemExcerpts[l.ItemID], l.ExcerptID)
	}

	groupExcerpts, err := e.links.ListGroupExcerpts(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range groupExcerpts {
		s.groupExcerpts[l.GroupID] = append(s.groupExcerpts[l.GroupID], l.ExcerptID)
	}

	eventExcerpts, err := e.links.ListEventExcerpts(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range eventExcerpts {
		s.eventExcerpts[l.EventID] = append(s.eventExcerpts[l.EventID], l.ExcerptID)
	}

	acquaintanceExcerpts, err := e.links.ListAcquaintanceExcerpts(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range acquaintanceExcerpts {
		k := acqKey{person: l.PersonID, acquainted: l.AcquaintedID}
		s.acquaintanceExcerpts[k] = append(s.acquaintanceExcerpts[k], l.ExcerptID)
	}

	placeOwners, err := e.links.ListPlaceOwners(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range placeOwners {
		s.placeOwners[l.PlaceID] = append(s.placeOwners[l.PlaceID], l.OwnerID)
		s.personProperties[l.OwnerID] = append(s.personProperties[l.OwnerID], l.PlaceID)
	}

	itemOwners, err := e.links.ListItemOwners(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range itemOwners {
		s.itemOwners[l.ItemID] = append(s.itemOwners[l.ItemID], l.OwnerID)
		s.personPossessions[l.OwnerID] = append(s.personPossessions[l.OwnerID], l.ItemID)
	}

	groupMembers, err := e.links.ListGroupMembers(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range groupMembers {
		s.groupMembers[l.GroupID] = append(s.groupMembers[l.GroupID], l.MemberID)
		s.personGroups[l.MemberID] = append(s.personGroups[l.MemberID], l.GroupID)
	}

	eventActors, err := e.links.ListEventActors(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range eventActors {
		s.eventActors[l.EventID] = append(s.eventActors[l.EventID], l.ActorID)
		s.personEvents[l.ActorID] = append(s.personEvents[l.ActorID], l.EventID)
	}

	eventItems, err := e.links.ListEventItems(dbc)
	if err != nil {
		return nil, err
	}
	for _, l := range eventItems {
		s.eventItems[l.EventID] = append(s.eventItems[l.EventID], l.ItemID)
	}

	for _, ev := range s.events {
		if ev.PlaceID != nil {
			s.placeEvents[*ev.PlaceID] = append(s.placeEvents[*ev.PlaceID], ev.ID)
		}
	}
	for _, a := range s.acquaintances {
		s.personAcquainted[a.PersonID] = append(s.personAcquainted[a.PersonID], a.AcquaintedID)
	}

	return s, nil
}
