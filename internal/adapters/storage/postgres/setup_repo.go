package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"poppy-paws/internal/domain/content"
	"poppy-paws/internal/domain/dogs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SetupRepo aprovisiona el esquema (golang-migrate sobre las
// migraciones embebidas) y siembra los datos iniciales.
type SetupRepo struct {
	db  DBTX
	dsn string
}

func NewSetupRepo(db DBTX, dsn string) *SetupRepo {
	return &SetupRepo{db: db, dsn: dsn}
}

func (r *SetupRepo) EnsureSchema(ctx context.Context) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("fuente de migraciones: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, migrateURL(r.dsn))
	if err != nil {
		return fmt.Errorf("inicializar migraciones: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}

func (r *SetupRepo) CountDogs(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dogs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar perros: %w", err)
	}
	return n, nil
}

func (r *SetupRepo) SeedDogs(ctx context.Context, seed []dogs.Dog) error {
	for _, d := range seed {
		_, err := r.db.Exec(ctx, `
			INSERT INTO dogs (
				name, breed, age, size, personality, description,
				images, location, is_sponsored, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		`,
			d.Name, d.Breed, d.Age, d.Size, d.Personality, d.Description,
			d.Images, d.Location, d.IsSponsored, d.CreatedAt, d.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("sembrar perro %s: %w", d.Name, err)
		}
	}
	return nil
}

func (r *SetupRepo) SeedContent(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO site_content (content_key, content_data)
		VALUES ($1, '{}')
		ON CONFLICT (content_key) DO NOTHING
	`, content.Key)
	if err != nil {
		return fmt.Errorf("sembrar contenido: %w", err)
	}
	return nil
}

// migrateURL convierte el DSN al scheme pgx5:// que espera el
// driver de golang-migrate.
func migrateURL(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgresql://"):
		return "pgx5://" + strings.TrimPrefix(dsn, "postgresql://")
	case strings.HasPrefix(dsn, "postgres://"):
		return "pgx5://" + strings.TrimPrefix(dsn, "postgres://")
	default:
		return dsn
	}
}
