package content

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (Document, error) {
	doc, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Replace reemplaza el documento completo (no hay patch por campo).
// Devuelve el documento tal como se recibió: lo que mandás es lo que
// recibís, sin transformación del lado del servidor.
func (s *Service) Replace(ctx context.Context, doc Document) (Document, error) {
	if doc == nil {
		doc = Document{}
	}

	if err := checkSchemaVersion(doc); err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkSchemaVersion valida el tag opcional schemaVersion: si viene,
// tiene que ser un entero positivo. El resto del documento sigue
// siendo opaco para el storage.
func checkSchemaVersion(doc Document) error {
	raw, ok := doc["schemaVersion"]
	if !ok {
		return nil
	}

	n, ok := raw.(float64) // números JSON decodifican a float64
	if !ok || n <= 0 || n != math.Trunc(n) {
		return fmt.Errorf("%w: schemaVersion must be a positive integer", ErrInvalidInput)
	}
	return nil
}
