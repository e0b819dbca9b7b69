package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"poppy-paws/internal/domain/dogs"
)

// Claves fijas del espejo, las mismas que usaba el localStorage del
// sitio original (acá son nombres de archivo).
const (
	dogsKey    = "poppy-paws-dogs"
	contentKey = "poppy-paws-content"
)

// Mirror es la copia local por máquina de los datos del servidor.
// Existe solo para que el flujo siga andando en desarrollo sin
// datastore vivo; nunca se reconcilia con el servidor.
type Mirror struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
}

func NewMirror(dir string) *Mirror {
	return &Mirror{dir: dir, now: time.Now}
}

// mirrorDog se guarda con la forma de aplicación (isSponsored),
// igual que hacía el localStorage.
type mirrorDog struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Breed       string   `json:"breed"`
	Age         string   `json:"age"`
	Size        string   `json:"size"`
	Personality []string `json:"personality"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Location    string   `json:"location"`
	IsSponsored bool     `json:"isSponsored"`
}

func toMirrorDog(d dogs.Dog) mirrorDog {
	return mirrorDog{
		ID:          d.ID,
		Name:        d.Name,
		Breed:       d.Breed,
		Age:         d.Age,
		Size:        d.Size,
		Personality: d.Personality,
		Description: d.Description,
		Images:      d.Images,
		Location:    d.Location,
		IsSponsored: d.IsSponsored,
	}
}

func fromMirrorDog(m mirrorDog) dogs.Dog {
	return dogs.Dog{
		ID:          m.ID,
		Name:        m.Name,
		Breed:       m.Breed,
		Age:         m.Age,
		Size:        m.Size,
		Personality: m.Personality,
		Description: m.Description,
		Images:      m.Images,
		Location:    m.Location,
		IsSponsored: m.IsSponsored,
	}
}

func (m *Mirror) ListDogs(ctx context.Context) ([]dogs.Dog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := m.loadDogs()
	if err != nil {
		return nil, err
	}

	out := make([]dogs.Dog, 0, len(stored))
	for _, md := range stored {
		out = append(out, fromMirrorDog(md))
	}
	return out, nil
}

// ListDogsOrSamples es la fuente de lectura de la página pública:
// no llama a la API nunca; si el espejo jamás se pobló muestra los
// dos perros de ejemplo.
func (m *Mirror) ListDogsOrSamples(ctx context.Context) ([]dogs.Dog, error) {
	m.mu.Lock()
	populated := m.exists(dogsKey)
	m.mu.Unlock()

	if !populated {
		return dogs.Samples(m.now()), nil
	}
	return m.ListDogs(ctx)
}

func (m *Mirror) GetDog(ctx context.Context, id int64) (dogs.Dog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := m.loadDogs()
	if err != nil {
		return dogs.Dog{}, err
	}
	for _, md := range stored {
		if md.ID == id {
			return fromMirrorDog(md), nil
		}
	}
	return dogs.Dog{}, dogs.ErrNotFound
}

// CreateDog asigna un id basado en timestamp, como hacía el fallback
// del sitio original.
func (m *Mirror) CreateDog(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := m.loadDogs()
	if err != nil {
		return dogs.Dog{}, err
	}

	d.ID = m.now().UnixMilli()
	stored = append(stored, toMirrorDog(d))

	if err := m.saveDogs(stored); err != nil {
		return dogs.Dog{}, err
	}
	return d, nil
}

// UpdateDog ubica por scan lineal. Si el id no está, devuelve igual
// el resultado con forma de éxito: el espejo no es fuente de verdad.
func (m *Mirror) UpdateDog(ctx context.Context, id int64, d dogs.Dog) (dogs.Dog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := m.loadDogs()
	if err != nil {
		return dogs.Dog{}, err
	}

	d.ID = id
	for i := range stored {
		if stored[i].ID == id {
			stored[i] = toMirrorDog(d)
			if err := m.saveDogs(stored); err != nil {
				return dogs.Dog{}, err
			}
			break
		}
	}
	return d, nil
}

func (m *Mirror) DeleteDog(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := m.loadDogs()
	if err != nil {
		return err
	}

	filtered := stored[:0]
	for _, md := range stored {
		if md.ID != id {
			filtered = append(filtered, md)
		}
	}
	return m.saveDogs(filtered)
}

func (m *Mirror) GetContent(ctx context.Context) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := os.ReadFile(m.path(contentKey))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("mirror: leer contenido: %w", err)
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("mirror: decodificar contenido: %w", err)
	}
	return doc, nil
}

func (m *Mirror) ReplaceContent(ctx context.Context, doc map[string]any) (map[string]any, error) {
	if doc == nil {
		doc = map[string]any{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.write(contentKey, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *Mirror) loadDogs() ([]mirrorDog, error) {
	raw, err := os.ReadFile(m.path(dogsKey))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []mirrorDog{}, nil
		}
		return nil, fmt.Errorf("mirror: leer perros: %w", err)
	}

	var stored []mirrorDog
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("mirror: decodificar perros: %w", err)
	}
	return stored, nil
}

func (m *Mirror) saveDogs(stored []mirrorDog) error {
	return m.write(dogsKey, stored)
}

func (m *Mirror) write(key string, v any) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("mirror: crear directorio: %w", err)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("mirror: codificar %s: %w", key, err)
	}
	if err := os.WriteFile(m.path(key), b, 0o644); err != nil {
		return fmt.Errorf("mirror: escribir %s: %w", key, err)
	}
	return nil
}

func (m *Mirror) exists(key string) bool {
	_, err := os.Stat(m.path(key))
	return err == nil
}

func (m *Mirror) path(key string) string {
	return filepath.Join(m.dir, key+".json")
}
