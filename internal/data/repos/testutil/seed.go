package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/token"
	"gorm.io/gorm"
)

func SeedResource(tb testing.TB, ctx context.Context, tx *gorm.DB, url string) *domain.Resource {
	tb.Helper()
	r := &domain.Resource{
		Unique:    token.New(),
		Name:      "resource",
		URL:       url,
		Publisher: "Big Paper Post",
		Author:    "John Doe",
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed resource: %v", err)
	}
	return r
}

func SeedExcerpt(tb testing.TB, ctx context.Context, tx *gorm.DB, resourceID uint, content string) *domain.Excerpt {
	tb.Helper()
	e := &domain.Excerpt{
		Unique:     token.New(),
		Content:    content,
		ResourceID: resourceID,
		XPath:      "/html/body/p[1]",
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed excerpt: %v", err)
	}
	return e
}

func SeedPerson(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Person {
	tb.Helper()
	p := &domain.Person{Unique: token.New(), Name: name}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed person: %v", err)
	}
	return p
}

func SeedPlace(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Place {
	tb.Helper()
	p := &domain.Place{Unique: token.New(), Name: name}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed place: %v", err)
	}
	return p
}

func SeedItem(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Item {
	tb.Helper()
	i := &domain.Item{Unique: token.New(), Name: name}
	if err := tx.WithContext(ctx).Create(i).Error; err != nil {
		tb.Fatalf("seed item: %v", err)
	}
	return i
}

func SeedGroup(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Group {
	tb.Helper()
	g := &domain.Group{Unique: token.New(), Name: name}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed group: %v", err)
	}
	return g
}

func SeedEvent(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, placeID *uint, at time.Time) *domain.Event {
	tb.Helper()
	e := &domain.Event{Unique: token.New(), Name: name, PlaceID: placeID, Timestamp: at}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed event: %v", err)
	}
	return e
}

func PtrUint(v uint) *uint { return &v }

func PtrFloat(v float64) *float64 { return &v }
