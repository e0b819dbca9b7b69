// Paquete setup: aprovisionamiento one-shot del datastore.
// Seguro de invocar las veces que haga falta.
package setup

import (
	"context"
	"fmt"
	"time"

	"poppy-paws/internal/domain/dogs"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Run aplica el esquema, siembra el documento de contenido y, solo
// si la tabla de perros está vacía, los dos perros de ejemplo.
// Idempotente: correrlo dos veces no duplica nada ni falla.
func (s *Service) Run(ctx context.Context) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	if err := s.repo.SeedContent(ctx); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}

	n, err := s.repo.CountDogs(ctx)
	if err != nil {
		return fmt.Errorf("count dogs: %w", err)
	}
	if n == 0 {
		if err := s.repo.SeedDogs(ctx, dogs.Samples(s.now())); err != nil {
			return fmt.Errorf("seed dogs: %w", err)
		}
	}

	return nil
}
