package setup

import (
	"context"

	"poppy-paws/internal/domain/dogs"
)

type Repository interface {
	// EnsureSchema crea las tablas dogs y site_content si no existen.
	EnsureSchema(ctx context.Context) error
	// CountDogs devuelve cuántos perros hay (comparación tipada,
	// no string como hacía el sitio viejo).
	CountDogs(ctx context.Context) (int, error)
	SeedDogs(ctx context.Context, seed []dogs.Dog) error
	// SeedContent inserta el documento vacío bajo la clave fija
	// solo si no existe.
	SeedContent(ctx context.Context) error
}
