package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"poppy-paws/internal/domain/dogs"
)

func testDog() dogs.Dog {
	return dogs.Dog{
		Name:        "Rocky",
		Breed:       "Boxer",
		Age:         "4 years",
		Size:        "Large",
		Personality: []string{"Calm"},
		Images:      []string{"/assets/rocky.jpg"},
		Location:    "Austin, TX",
		IsSponsored: true,
	}
}

func TestMirror_CreateDog_TimestampID(t *testing.T) {
	m := NewMirror(t.TempDir())
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	d, err := m.CreateDog(context.Background(), testDog())
	if err != nil {
		t.Fatalf("CreateDog error: %v", err)
	}
	if d.ID != now.UnixMilli() {
		t.Fatalf("expected timestamp id %d, got %d", now.UnixMilli(), d.ID)
	}

	got, err := m.GetDog(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("GetDog error: %v", err)
	}
	if got.Name != "Rocky" || !got.IsSponsored {
		t.Fatalf("round trip lost fields: %#v", got)
	}
}

func TestMirror_ListDogs_EmptyWhenNeverWritten(t *testing.T) {
	m := NewMirror(t.TempDir())

	out, err := m.ListDogs(context.Background())
	if err != nil {
		t.Fatalf("ListDogs error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d dogs", len(out))
	}
}

func TestMirror_ListDogsOrSamples(t *testing.T) {
	m := NewMirror(t.TempDir())

	// Espejo jamás poblado: la página pública muestra los ejemplos
	out, err := m.ListDogsOrSamples(context.Background())
	if err != nil {
		t.Fatalf("ListDogsOrSamples error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 sample dogs, got %d", len(out))
	}
	if out[0].Name != "Luna" || out[1].Name != "Max" {
		t.Fatalf("expected Luna and Max samples, got %#v", out)
	}

	// Una vez poblado, los ejemplos desaparecen
	if _, err := m.CreateDog(context.Background(), testDog()); err != nil {
		t.Fatalf("CreateDog error: %v", err)
	}
	out, err = m.ListDogsOrSamples(context.Background())
	if err != nil {
		t.Fatalf("ListDogsOrSamples error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Rocky" {
		t.Fatalf("expected only the stored dog, got %#v", out)
	}
}

func TestMirror_UpdateDog(t *testing.T) {
	m := NewMirror(t.TempDir())

	created, err := m.CreateDog(context.Background(), testDog())
	if err != nil {
		t.Fatalf("CreateDog error: %v", err)
	}

	upd := testDog()
	upd.Name = "Rocky II"
	got, err := m.UpdateDog(context.Background(), created.ID, upd)
	if err != nil {
		t.Fatalf("UpdateDog error: %v", err)
	}
	if got.ID != created.ID || got.Name != "Rocky II" {
		t.Fatalf("unexpected update result: %#v", got)
	}

	stored, err := m.GetDog(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetDog error: %v", err)
	}
	if stored.Name != "Rocky II" {
		t.Fatalf("update not persisted, got %#v", stored)
	}
}

// El espejo no es fuente de verdad: actualizar un id ausente devuelve
// igual la forma de éxito, sin persistir nada.
func TestMirror_UpdateDog_MissingIDStillSucceeds(t *testing.T) {
	m := NewMirror(t.TempDir())

	got, err := m.UpdateDog(context.Background(), 9999, testDog())
	if err != nil {
		t.Fatalf("UpdateDog error: %v", err)
	}
	if got.ID != 9999 {
		t.Fatalf("expected echoed id 9999, got %d", got.ID)
	}
}

func TestMirror_DeleteDog(t *testing.T) {
	m := NewMirror(t.TempDir())

	created, err := m.CreateDog(context.Background(), testDog())
	if err != nil {
		t.Fatalf("CreateDog error: %v", err)
	}
	if err := m.DeleteDog(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteDog error: %v", err)
	}

	_, err = m.GetDog(context.Background(), created.ID)
	if !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMirror_Content(t *testing.T) {
	m := NewMirror(t.TempDir())

	// Nunca escrito: objeto vacío, no error
	doc, err := m.GetContent(context.Background())
	if err != nil {
		t.Fatalf("GetContent error: %v", err)
	}
	if len(doc) != 0 {
		t.Fatalf("expected empty document, got %#v", doc)
	}

	// Replace completo, sin merge
	if _, err := m.ReplaceContent(context.Background(), map[string]any{"heroTitle": "Adopt!"}); err != nil {
		t.Fatalf("ReplaceContent #1 error: %v", err)
	}
	if _, err := m.ReplaceContent(context.Background(), map[string]any{"aboutText": "We rescue dogs"}); err != nil {
		t.Fatalf("ReplaceContent #2 error: %v", err)
	}

	doc, err = m.GetContent(context.Background())
	if err != nil {
		t.Fatalf("GetContent error: %v", err)
	}
	if doc["aboutText"] != "We rescue dogs" {
		t.Fatalf("expected second document, got %#v", doc)
	}
	if _, stale := doc["heroTitle"]; stale {
		t.Fatalf("replace must not merge, got %#v", doc)
	}
}
