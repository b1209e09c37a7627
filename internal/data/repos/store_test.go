package repos

import (
	"context"
	"testing"

	"github.com/situationlab/situation-backend/internal/data/repos/testutil"
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
	"github.com/situationlab/situation-backend/internal/platform/token"
)

func TestStoreCreateAssignsToken(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	store := NewStore[domain.Person](db, testutil.Logger(t))

	p := &domain.Person{Name: "Rob"}
	if err := store.Create(dbc, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("Create should assign an id")
	}
	if !token.Valid(p.Unique) {
		t.Fatalf("Create assigned invalid public code %q", p.Unique)
	}
}

func TestStoreCreateKeepsCallerToken(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	store := NewStore[domain.Person](db, testutil.Logger(t))

	p := &domain.Person{Name: "Rob", Unique: "Ab3dE9xQ"}
	if err := store.Create(dbc, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Unique != "Ab3dE9xQ" {
		t.Fatalf("Create replaced caller code, got %q", p.Unique)
	}
}

func TestStoreCreateValidation(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	store := NewStore[domain.Person](db, testutil.Logger(t))

	err := store.Create(dbc, &domain.Person{})
	if !storeerr.IsKind(err, storeerr.KindValidation) {
		t.Fatalf("Create = %v, want validation error", err)
	}

	var n int64
	if err := tx.Model(&domain.Person{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("invalid create persisted %d rows", n)
	}
}

func TestStoreCallerTokenCollision(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	store := NewStore[domain.Person](db, testutil.Logger(t))

	first := &domain.Person{Name: "Rob", Unique: "AAAAAAAA"}
	if err := store.Create(dbc, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// The caller picked the code, so the collision is theirs: no retry.
	dup := &domain.Person{Name: "Scott", Unique: "AAAAAAAA"}
	err := store.Create(dbc, dup)
	if !storeerr.IsKind(err, storeerr.KindUniqueness) {
		t.Fatalf("Create = %v, want uniqueness error", err)
	}
}

func TestStoreTokenExhaustion(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	store := NewStore[domain.Person](db, testutil.Logger(t))

	taken := &domain.Person{Name: "Rob", Unique: "AAAAAAAA"}
	if err := store.Create(dbc, taken); err != nil {
		t.Fatalf("Create: %v", err)
	}

	calls := 0
	store.TokenFunc = func() string {
		calls++
		return "AAAAAAAA"
	}
	err := store.Create(dbc, &domain.Person{Name: "Scott"})
	if !storeerr.IsKind(err, storeerr.KindTokenExhausted) {
		t.Fatalf("Create = %v, want token exhaustion", err)
	}
	if calls != token.MaxAttempts {
		t.Fatalf("generator called %d times, want %d", calls, token.MaxAttempts)
	}
}

func TestStoreGetByIDNotFound(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	store := NewStore[domain.Person](db, testutil.Logger(t))

	_, err := store.GetByID(dbc, 42)
	if !storeerr.IsKind(err, storeerr.KindNotFound) {
		t.Fatalf("GetByID = %v, want not found", err)
	}
}

func TestStoreListAscendingID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	store := NewStore[domain.Person](db, testutil.Logger(t))

	for _, name := range []string{"Rob", "Scott", "Alice"} {
		testutil.SeedPerson(t, ctx, tx, name)
	}
	out, err := store.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("List returned %d rows, want 3", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].ID >= out[i].ID {
			t.Fatalf("List not in ascending id order: %d before %d", out[i-1].ID, out[i].ID)
		}
	}
}

func TestStoreDeleteBlockedByReference(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	store := NewStore[domain.Resource](db, testutil.Logger(t))

	resource := testutil.SeedResource(t, ctx, tx, "http://example.com/1")
	testutil.SeedExcerpt(t, ctx, tx, resource.ID, "Snippet 1")

	err := store.Delete(dbc, resource)
	if !storeerr.IsKind(err, storeerr.KindForeignKey) {
		t.Fatalf("Delete = %v, want foreign key error", err)
	}
}

func TestPersonGetByUnique(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewPersonRepo(db, testutil.Logger(t))

	seeded := testutil.SeedPerson(t, ctx, tx, "Rob")

	got, err := repo.GetByUnique(dbc, seeded.Unique)
	if err != nil {
		t.Fatalf("GetByUnique: %v", err)
	}
	if got.ID != seeded.ID {
		t.Fatalf("GetByUnique returned id %d, want %d", got.ID, seeded.ID)
	}

	_, err = repo.GetByUnique(dbc, "zzzzzzzz")
	if !storeerr.IsKind(err, storeerr.KindNotFound) {
		t.Fatalf("GetByUnique = %v, want not found", err)
	}
}

func TestExcerptCreateDanglingResource(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewExcerptRepo(db, testutil.Logger(t))

	err := repo.Create(dbc, &domain.Excerpt{Content: "Snippet 1", ResourceID: 99})
	if !storeerr.IsKind(err, storeerr.KindForeignKey) {
		t.Fatalf("Create = %v, want foreign key error", err)
	}

	var n int64
	if err := tx.Model(&domain.Excerpt{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("dangling create persisted %d rows", n)
	}
}
