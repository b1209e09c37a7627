package services

import (
	"context"
	"testing"
	"time"

	"github.com/situationlab/situation-backend/internal/data/repos/testutil"
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
)

func TestDeclareAcquaintance(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	svc := NewGraphService(db, testutil.Logger(t))

	rob := testutil.SeedPerson(t, ctx, tx, "Rob")
	scott := testutil.SeedPerson(t, ctx, tx, "Scott")

	edge, err := svc.DeclareAcquaintance(dbc, rob.ID, "friend", scott.ID)
	if err != nil {
		t.Fatalf("DeclareAcquaintance: %v", err)
	}
	if edge.PersonID != rob.ID || edge.AcquaintedID != scott.ID || edge.Isa != "friend" {
		t.Fatalf("edge = %+v", edge)
	}

	// Declaring never creates the reciprocal edge.
	var n int64
	if err := tx.Model(&domain.Acquaintance{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("%d edges after one declaration, want 1", n)
	}
}

func TestDeclareAcquaintanceSelf(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	svc := NewGraphService(db, testutil.Logger(t))

	rob := testutil.SeedPerson(t, ctx, tx, "Rob")
	if _, err := svc.DeclareAcquaintance(dbc, rob.ID, "self", rob.ID); err != nil {
		t.Fatalf("DeclareAcquaintance(self): %v", err)
	}
}

func TestDeclareAcquaintanceUnknownPerson(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	svc := NewGraphService(db, testutil.Logger(t))

	rob := testutil.SeedPerson(t, ctx, tx, "Rob")
	_, err := svc.DeclareAcquaintance(dbc, rob.ID, "friend", 99)
	if !storeerr.IsKind(err, storeerr.KindForeignKey) {
		t.Fatalf("DeclareAcquaintance = %v, want foreign key error", err)
	}
}

func TestAttachExcerpt(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	svc := NewGraphService(db, testutil.Logger(t))

	rob := testutil.SeedPerson(t, ctx, tx, "Rob")
	scott := testutil.SeedPerson(t, ctx, tx, "Scott")
	resource := testutil.SeedResource(t, ctx, tx, "http://example.com/1")
	excerpt := testutil.SeedExcerpt(t, ctx, tx, resource.ID, "Snippet 1")

	// No edge yet: the compound key must resolve first.
	_, err := svc.AttachExcerpt(dbc, rob.ID, scott.ID, excerpt.ID)
	if !storeerr.IsKind(err, storeerr.KindForeignKey) {
		t.Fatalf("AttachExcerpt without edge = %v, want foreign key error", err)
	}

	if _, err := svc.DeclareAcquaintance(dbc, rob.ID, "friend", scott.ID); err != nil {
		t.Fatalf("DeclareAcquaintance: %v", err)
	}
	if _, err := svc.AttachExcerpt(dbc, rob.ID, scott.ID, excerpt.ID); err != nil {
		t.Fatalf("AttachExcerpt: %v", err)
	}
	// Same evidence twice is two annotations.
	if _, err := svc.AttachExcerpt(dbc, rob.ID, scott.ID, excerpt.ID); err != nil {
		t.Fatalf("AttachExcerpt again: %v", err)
	}

	var n int64
	if err := tx.Model(&domain.AcquaintanceExcerpt{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("%d annotations, want 2", n)
	}
}

func TestLinkUnlink(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	svc := NewGraphService(db, testutil.Logger(t))

	rob := testutil.SeedPerson(t, ctx, tx, "Rob")
	house := testutil.SeedPlace(t, ctx, tx, "Rob's House")

	if err := svc.Link(dbc, RelationPlaceOwner, house.ID, rob.ID); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if err := svc.Link(dbc, RelationPlaceOwner, house.ID, 99); !storeerr.IsKind(err, storeerr.KindForeignKey) {
		t.Fatalf("Link unknown person = %v, want foreign key error", err)
	}
	if err := svc.Link(dbc, "neighbor", house.ID, rob.ID); !storeerr.IsKind(err, storeerr.KindValidation) {
		t.Fatalf("Link unknown relation = %v, want validation error", err)
	}

	if err := svc.Unlink(dbc, RelationPlaceOwner, house.ID, rob.ID); err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	// Unlinking the already-absent association is a no-op.
	if err := svc.Unlink(dbc, RelationPlaceOwner, house.ID, rob.ID); err != nil {
		t.Fatalf("Unlink again: %v", err)
	}

	var n int64
	if err := tx.Model(&domain.PlaceOwner{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("%d owner rows after unlink, want 0", n)
	}
}

func TestUnlinkZeroIDMatchesNothing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	svc := NewGraphService(db, testutil.Logger(t))

	rob := testutil.SeedPerson(t, ctx, tx, "Rob")
	scott := testutil.SeedPerson(t, ctx, tx, "Scott")
	incident := testutil.SeedEvent(t, ctx, tx, "Incident", nil, time.Date(2012, 1, 11, 7, 30, 0, 0, time.UTC))

	for _, actorID := range []uint{rob.ID, scott.ID} {
		if err := svc.Link(dbc, RelationEventActor, incident.ID, actorID); err != nil {
			t.Fatalf("Link actor: %v", err)
		}
	}

	// Id 0 names no person; the unlink must match nothing instead of
	// stripping every actor off the event.
	if err := svc.Unlink(dbc, RelationEventActor, incident.ID, 0); err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	if err := svc.Unlink(dbc, RelationEventActor, 0, rob.ID); err != nil {
		t.Fatalf("Unlink: %v", err)
	}

	var n int64
	if err := tx.Model(&domain.EventActor{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("%d actor links remain, want 2", n)
	}
}

func TestEncounters(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	svc := NewGraphService(db, testutil.Logger(t))

	rob := testutil.SeedPerson(t, ctx, tx, "Rob")
	knife := testutil.SeedItem(t, ctx, tx, "Knife")
	rope := testutil.SeedItem(t, ctx, tx, "Rope")
	first := testutil.SeedEvent(t, ctx, tx, "First", nil, time.Date(2012, 1, 11, 7, 30, 0, 0, time.UTC))
	second := testutil.SeedEvent(t, ctx, tx, "Second", nil, time.Date(2012, 1, 12, 7, 30, 0, 0, time.UTC))

	for _, link := range [][2]uint{
		{first.ID, rob.ID},
		{second.ID, rob.ID},
	} {
		if err := svc.Link(dbc, RelationEventActor, link[0], link[1]); err != nil {
			t.Fatalf("Link actor: %v", err)
		}
	}
	for _, link := range [][2]uint{
		{first.ID, knife.ID},
		{first.ID, rope.ID},
		{second.ID, knife.ID},
	} {
		if err := svc.Link(dbc, RelationEventItem, link[0], link[1]); err != nil {
			t.Fatalf("Link item: %v", err)
		}
	}

	items, err := svc.Encounters(dbc, rob.ID)
	if err != nil {
		t.Fatalf("Encounters: %v", err)
	}
	// The knife was present at both shared events, so it shows up twice.
	want := []string{"Knife", "Rope", "Knife"}
	if len(items) != len(want) {
		t.Fatalf("Encounters returned %d items, want %d", len(items), len(want))
	}
	for i, item := range items {
		if item.Name != want[i] {
			t.Fatalf("Encounters[%d] = %q, want %q", i, item.Name, want[i])
		}
	}

	// Recomputed, never cached: a new event extends the set immediately.
	if err := svc.Link(dbc, RelationEventActor, second.ID, rob.ID); err != nil {
		t.Fatalf("Link actor: %v", err)
	}
	items, err = svc.Encounters(dbc, rob.ID)
	if err != nil {
		t.Fatalf("Encounters: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("Encounters returned %d items after relink, want 4", len(items))
	}
}

func TestCreateEventAtomic(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	svc := NewGraphService(db, testutil.Logger(t))

	rob := &domain.Person{Name: "Rob", Unique: "Ab3dE9xQ"}
	if err := db.WithContext(ctx).Create(rob).Error; err != nil {
		t.Fatalf("seed person: %v", err)
	}

	event := &domain.Event{Name: "Incident", Timestamp: time.Date(2012, 1, 11, 7, 30, 0, 0, time.UTC)}
	err := svc.CreateEvent(dbc, event, []uint{rob.ID, 99}, nil, nil)
	if !storeerr.IsKind(err, storeerr.KindForeignKey) {
		t.Fatalf("CreateEvent = %v, want foreign key error", err)
	}

	// The failed actor link must take the event and the good link with it.
	var events, actors int64
	if err := db.Model(&domain.Event{}).Count(&events).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if err := db.Model(&domain.EventActor{}).Count(&actors).Error; err != nil {
		t.Fatalf("count actors: %v", err)
	}
	if events != 0 || actors != 0 {
		t.Fatalf("rollback leaked %d events and %d actor links", events, actors)
	}
}

func TestCreateEventLinksEverything(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	svc := NewGraphService(db, testutil.Logger(t))

	rob := testutil.SeedPerson(t, ctx, tx, "Rob")
	scott := testutil.SeedPerson(t, ctx, tx, "Scott")
	knife := testutil.SeedItem(t, ctx, tx, "Knife")
	resource := testutil.SeedResource(t, ctx, tx, "http://example.com/1")
	excerpt := testutil.SeedExcerpt(t, ctx, tx, resource.ID, "Snippet 1")

	event := &domain.Event{Name: "Incident", Timestamp: time.Date(2012, 1, 11, 7, 30, 0, 0, time.UTC)}
	err := svc.CreateEvent(dbc, event, []uint{rob.ID, scott.ID}, []uint{knife.ID}, []uint{excerpt.ID})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.ID == 0 || event.Unique == "" {
		t.Fatalf("event not persisted: %+v", event)
	}

	var actors, items, excerpts int64
	if err := tx.Model(&domain.EventActor{}).Where("event_id = ?", event.ID).Count(&actors).Error; err != nil {
		t.Fatalf("count actors: %v", err)
	}
	if err := tx.Model(&domain.EventItem{}).Where("event_id = ?", event.ID).Count(&items).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if err := tx.Model(&domain.EventExcerpt{}).Where("event_id = ?", event.ID).Count(&excerpts).Error; err != nil {
		t.Fatalf("count excerpts: %v", err)
	}
	if actors != 2 || items != 1 || excerpts != 1 {
		t.Fatalf("linked %d actors, %d items, %d excerpts", actors, items, excerpts)
	}
}
