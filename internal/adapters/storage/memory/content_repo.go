package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"poppy-paws/internal/domain/content"
)

type contentRepo struct {
	mu sync.RWMutex
	// Guardamos el JSON serializado para que el caller no pueda
	// mutar el documento almacenado por referencia.
	raw []byte
}

func NewContentRepo() content.Repository {
	return &contentRepo{}
}

func (r *contentRepo) Get(ctx context.Context) (content.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.raw == nil {
		return content.Document{}, nil
	}

	var doc content.Document
	if err := json.Unmarshal(r.raw, &doc); err != nil {
		return nil, fmt.Errorf("decodificar contenido: %w", err)
	}
	return doc, nil
}

func (r *contentRepo) Replace(ctx context.Context, doc content.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("codificar contenido: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.raw = b
	return nil
}
