package content

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	doc Document
}

func (r *testRepo) Get(ctx context.Context) (Document, error) {
	return r.doc, nil
}

func (r *testRepo) Replace(ctx context.Context, doc Document) error {
	r.doc = doc
	return nil
}

func TestService_Get_NeverNil(t *testing.T) {
	svc := NewService(&testRepo{})

	doc, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if doc == nil {
		t.Fatalf("expected empty document, got nil")
	}
	if len(doc) != 0 {
		t.Fatalf("expected empty document, got %#v", doc)
	}
}

func TestService_Replace_IsFullReplace(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	if _, err := svc.Replace(context.Background(), Document{"heroTitle": "Adopt!"}); err != nil {
		t.Fatalf("Replace #1 error: %v", err)
	}
	got, err := svc.Replace(context.Background(), Document{"aboutText": "We rescue dogs"})
	if err != nil {
		t.Fatalf("Replace #2 error: %v", err)
	}

	if got["aboutText"] != "We rescue dogs" {
		t.Fatalf("expected echoed document, got %#v", got)
	}
	if _, stale := got["heroTitle"]; stale {
		t.Fatalf("replace must not merge documents, got %#v", got)
	}
	if _, stale := repo.doc["heroTitle"]; stale {
		t.Fatalf("stored document must not merge, got %#v", repo.doc)
	}
}

func TestService_Replace_NilBecomesEmpty(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	got, err := svc.Replace(context.Background(), nil)
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty document, got %#v", got)
	}
}

func TestService_Replace_SchemaVersion(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	// números JSON llegan como float64
	bad := []any{float64(0), float64(-1), float64(2.5), "3", true}
	for _, v := range bad {
		_, err := svc.Replace(context.Background(), Document{"schemaVersion": v})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("schemaVersion %v: expected ErrInvalidInput, got %v", v, err)
		}
	}

	if _, err := svc.Replace(context.Background(), Document{"schemaVersion": float64(2)}); err != nil {
		t.Fatalf("valid schemaVersion rejected: %v", err)
	}

	// sin schemaVersion es válido: el tag es opcional
	if _, err := svc.Replace(context.Background(), Document{"heroTitle": "hi"}); err != nil {
		t.Fatalf("document without schemaVersion rejected: %v", err)
	}
}
