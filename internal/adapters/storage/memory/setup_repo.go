package memory

import (
	"context"

	"poppy-paws/internal/domain/content"
	"poppy-paws/internal/domain/dogs"
	"poppy-paws/internal/domain/setup"
)

// setupRepo aprovisiona los repos en memoria: no hay esquema que
// crear, pero la siembra funciona igual que en Postgres para que
// /init sea ejercitable en modo dev.
type setupRepo struct {
	dogs    dogs.Repository
	content content.Repository
}

func NewSetupRepo(d dogs.Repository, c content.Repository) setup.Repository {
	return &setupRepo{dogs: d, content: c}
}

func (r *setupRepo) EnsureSchema(ctx context.Context) error {
	return nil
}

func (r *setupRepo) CountDogs(ctx context.Context) (int, error) {
	items, err := r.dogs.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (r *setupRepo) SeedDogs(ctx context.Context, seed []dogs.Dog) error {
	for _, d := range seed {
		if _, err := r.dogs.Create(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *setupRepo) SeedContent(ctx context.Context) error {
	doc, err := r.content.Get(ctx)
	if err != nil {
		return err
	}
	if len(doc) > 0 {
		return nil
	}
	return r.content.Replace(ctx, content.Document{})
}
