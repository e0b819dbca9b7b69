package dogs

import "time"

// Dog representa un perro en adopción publicado en el sitio.
type Dog struct {
	ID int64

	Name  string
	Breed string
	Age   string
	Size  string // Small/Medium/Large por convención; no se valida contra enum

	Personality []string
	Description string

	// La primera imagen es la principal por convención.
	// Pueden ser rutas estáticas o data URIs.
	Images []string

	Location    string
	IsSponsored bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
