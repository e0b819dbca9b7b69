package dogs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Input son los campos mutables de un perro. Update es reemplazo
// completo, así que create y update comparten el mismo input.
type Input struct {
	Name        string `validate:"required"`
	Breed       string `validate:"required"`
	Age         string `validate:"required"`
	Size        string `validate:"required"`
	Personality []string
	Description string
	Images      []string
	Location    string `validate:"required"`
	IsSponsored bool
}

func (s *Service) ListAll(ctx context.Context) ([]Dog, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Dog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Dog, error) {
	if err := s.checkInput(in); err != nil {
		return Dog{}, err
	}

	now := s.now()
	d := fromInput(in)
	d.CreatedAt = now
	d.UpdatedAt = now

	return s.repo.Create(ctx, d)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Dog, error) {
	if err := s.checkInput(in); err != nil {
		return Dog{}, err
	}

	d := fromInput(in)
	d.ID = id
	d.UpdatedAt = s.now()

	return s.repo.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// checkInput valida acá en vez de dejar que la constraint de columna
// reviente como 500 en el datastore.
func (s *Service) checkInput(in Input) error {
	// required de validator no detecta strings de puro espacio.
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Age = strings.TrimSpace(in.Age)
	in.Size = strings.TrimSpace(in.Size)
	in.Location = strings.TrimSpace(in.Location)

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, strings.ToLower(verrs[0].Field()))
		}
		return ErrInvalidInput
	}
	return nil
}

func fromInput(in Input) Dog {
	return Dog{
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		Age:         strings.TrimSpace(in.Age),
		Size:        strings.TrimSpace(in.Size),
		Personality: notNil(in.Personality),
		Description: in.Description,
		Images:      notNil(in.Images),
		Location:    strings.TrimSpace(in.Location),
		IsSponsored: in.IsSponsored,
	}
}

// Las columnas de array son NOT NULL: nil => slice vacío.
func notNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
