package dogs

import (
	"context"
	"errors"
)

// ErrNotFound: el id no corresponde a ningún perro.
// Para lecturas es un resultado esperado; para update/delete es error.
var ErrNotFound = errors.New("dog not found")

type Repository interface {
	// ListAll devuelve todos los perros ordenados por id ascendente.
	// Colección vacía => slice vacío, nunca error.
	ListAll(ctx context.Context) ([]Dog, error)
	GetByID(ctx context.Context, id int64) (Dog, error)
	// Create persiste el perro y devuelve la fila completa con el id
	// asignado por el datastore.
	Create(ctx context.Context, d Dog) (Dog, error)
	// Update reemplaza todos los campos mutables de la fila d.ID.
	Update(ctx context.Context, d Dog) (Dog, error)
	Delete(ctx context.Context, id int64) error
}
