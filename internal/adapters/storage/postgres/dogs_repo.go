package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"poppy-paws/internal/domain/dogs"
)

// dogColumns: un solo lugar para la lista de columnas de SELECT/RETURNING.
const dogColumns = `id, name, breed, age, size, personality, description,
	images, location, is_sponsored, created_at, updated_at`

type DogsRepo struct {
	db DBTX
}

func NewDogsRepo(db DBTX) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) ListAll(ctx context.Context) ([]dogs.Dog, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM dogs ORDER BY id ASC
	`, dogColumns))
	if err != nil {
		return nil, fmt.Errorf("listar perros: %w", err)
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear perro: %w", err)
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *DogsRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM dogs WHERE id = $1
	`, dogColumns), id)

	d, err := scanDog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, fmt.Errorf("obtener perro: %w", err)
	}
	return d, nil
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO dogs (
			name, breed, age, size, personality, description,
			images, location, is_sponsored, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING %s
	`, dogColumns),
		d.Name,
		d.Breed,
		d.Age,
		d.Size,
		d.Personality,
		d.Description,
		d.Images,
		d.Location,
		d.IsSponsored,
		d.CreatedAt,
		d.UpdatedAt,
	)

	stored, err := scanDog(row)
	if err != nil {
		return dogs.Dog{}, fmt.Errorf("crear perro: %w", err)
	}
	return stored, nil
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE dogs
		SET
			name = $2,
			breed = $3,
			age = $4,
			size = $5,
			personality = $6,
			description = $7,
			images = $8,
			location = $9,
			is_sponsored = $10,
			updated_at = $11
		WHERE id = $1
		RETURNING %s
	`, dogColumns),
		d.ID,
		d.Name,
		d.Breed,
		d.Age,
		d.Size,
		d.Personality,
		d.Description,
		d.Images,
		d.Location,
		d.IsSponsored,
		d.UpdatedAt,
	)

	stored, err := scanDog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, fmt.Errorf("actualizar perro: %w", err)
	}
	return stored, nil
}

func (r *DogsRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("borrar perro: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func scanDog(row pgx.Row) (dogs.Dog, error) {
	var d dogs.Dog
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Breed,
		&d.Age,
		&d.Size,
		&d.Personality,
		&d.Description,
		&d.Images,
		&d.Location,
		&d.IsSponsored,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}
