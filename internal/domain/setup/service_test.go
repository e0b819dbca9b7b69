package setup

import (
	"context"
	"errors"
	"testing"

	"poppy-paws/internal/domain/dogs"
)

type testRepo struct {
	schemaCalls  int
	contentCalls int
	dogCount     int
	seeded       [][]dogs.Dog

	countErr error
}

func (r *testRepo) EnsureSchema(ctx context.Context) error {
	r.schemaCalls++
	return nil
}

func (r *testRepo) CountDogs(ctx context.Context) (int, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return r.dogCount, nil
}

func (r *testRepo) SeedDogs(ctx context.Context, ds []dogs.Dog) error {
	r.seeded = append(r.seeded, ds)
	r.dogCount += len(ds)
	return nil
}

func (r *testRepo) SeedContent(ctx context.Context) error {
	r.contentCalls++
	return nil
}

func TestService_Run_SeedsEmptyStore(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if repo.schemaCalls != 1 || repo.contentCalls != 1 {
		t.Fatalf("expected schema and content applied once, got %d/%d", repo.schemaCalls, repo.contentCalls)
	}
	if len(repo.seeded) != 1 || len(repo.seeded[0]) != 2 {
		t.Fatalf("expected the 2 sample dogs seeded, got %#v", repo.seeded)
	}
	if repo.seeded[0][0].Name != "Luna" || repo.seeded[0][1].Name != "Max" {
		t.Fatalf("expected Luna and Max, got %#v", repo.seeded[0])
	}
}

func TestService_Run_IsIdempotent(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	for i := 0; i < 2; i++ {
		if err := svc.Run(context.Background()); err != nil {
			t.Fatalf("Run #%d returned error: %v", i+1, err)
		}
	}

	// La segunda corrida reaplica esquema y contenido pero no
	// vuelve a sembrar perros.
	if repo.schemaCalls != 2 || repo.contentCalls != 2 {
		t.Fatalf("expected schema/content reapplied, got %d/%d", repo.schemaCalls, repo.contentCalls)
	}
	if len(repo.seeded) != 1 {
		t.Fatalf("expected dogs seeded exactly once, got %d times", len(repo.seeded))
	}
}

func TestService_Run_SkipsSeedWhenDogsExist(t *testing.T) {
	repo := &testRepo{dogCount: 5}
	svc := NewService(repo)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(repo.seeded) != 0 {
		t.Fatalf("expected no seeding over existing dogs, got %#v", repo.seeded)
	}
}

func TestService_Run_PropagatesCountError(t *testing.T) {
	sentinel := errors.New("boom")
	repo := &testRepo{countErr: sentinel}
	svc := NewService(repo)

	err := svc.Run(context.Background())
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped count error, got %v", err)
	}
}
