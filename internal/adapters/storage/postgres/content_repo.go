package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"poppy-paws/internal/domain/content"
)

type ContentRepo struct {
	db DBTX
}

func NewContentRepo(db DBTX) *ContentRepo {
	return &ContentRepo{db: db}
}

func (r *ContentRepo) Get(ctx context.Context) (content.Document, error) {
	var doc content.Document
	err := r.db.QueryRow(ctx, `
		SELECT content_data FROM site_content WHERE content_key = $1
	`, content.Key).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Nunca escrito: objeto vacío, no error.
			return content.Document{}, nil
		}
		return nil, fmt.Errorf("obtener contenido: %w", err)
	}
	if doc == nil {
		doc = content.Document{}
	}
	return doc, nil
}

// Replace es un upsert atómico sobre la clave única: la fila entera
// se reemplaza en un solo statement, último write gana.
func (r *ContentRepo) Replace(ctx context.Context, doc content.Document) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO site_content (content_key, content_data)
		VALUES ($1, $2)
		ON CONFLICT (content_key)
		DO UPDATE SET content_data = EXCLUDED.content_data, updated_at = CURRENT_TIMESTAMP
	`, content.Key, doc)
	if err != nil {
		return fmt.Errorf("reemplazar contenido: %w", err)
	}
	return nil
}
