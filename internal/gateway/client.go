// Paquete gateway: el lado cliente de la API del sitio.
// Envuelve cada operación como llamada de red y, en modo fallback,
// degrada a un espejo local cuando la red falla.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"poppy-paws/internal/domain/dogs"
	"poppy-paws/internal/platform/httpclient"
)

// ErrNotFound: el servidor respondió 404 para el recurso pedido.
var ErrNotFound = errors.New("not found")

// Client habla con la API del sitio. Stateless: el único estado es
// el token de sesión del admin, si hay.
type Client struct {
	http  *httpclient.Client
	token string
}

func NewClient(baseURL, sessionToken string) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, httpclient.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc, token: sessionToken}, nil
}

// wireDog replica la fila que devuelve el servidor: la bandera de
// padrinazgo llega como is_sponsored y acá se traduce a la forma de
// aplicación. Es la única traducción de este lado del boundary.
type wireDog struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         string    `json:"age"`
	Size        string    `json:"size"`
	Personality []string  `json:"personality"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Location    string    `json:"location"`
	IsSponsored bool      `json:"is_sponsored"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// wirePayload es lo que se manda en POST/PUT: la bandera viaja como
// isSponsored, igual que la mandaba el admin web.
type wirePayload struct {
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

func toDog(w wireDog) dogs.Dog {
	return dogs.Dog{
		ID:          w.ID,
		Name:        w.Name,
		Breed:       w.Breed,
		Age:         w.Age,
		Size:        w.Size,
		Personality: w.Personality,
		Description: w.Description,
		Images:      w.Images,
		Location:    w.Location,
		IsSponsored: w.IsSponsored,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func toPayload(d dogs.Dog) wirePayload {
	return wirePayload{
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

func (c *Client) headers() map[string]string {
	h := map[string]string{
		"X-Request-ID": uuid.NewString(),
	}
	if c.token != "" {
		h["Authorization"] = "Bearer " + c.token
	}
	return h
}

func (c *Client) ListDogs(ctx context.Context) ([]dogs.Dog, error) {
	var out []wireDog
	if err := c.http.DoJSON(ctx, http.MethodGet, "/dogs", c.headers(), nil, &out); err != nil {
		return nil, mapHTTPError(err)
	}

	items := make([]dogs.Dog, 0, len(out))
	for _, w := range out {
		items = append(items, toDog(w))
	}
	return items, nil
}

func (c *Client) GetDog(ctx context.Context, id int64) (dogs.Dog, error) {
	var out wireDog
	if err := c.http.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/dogs/%d", id), c.headers(), nil, &out); err != nil {
		return dogs.Dog{}, mapHTTPError(err)
	}
	return toDog(out), nil
}

func (c *Client) CreateDog(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	var out wireDog
	if err := c.http.DoJSON(ctx, http.MethodPost, "/dogs", c.headers(), toPayload(d), &out); err != nil {
		return dogs.Dog{}, mapHTTPError(err)
	}
	return toDog(out), nil
}

func (c *Client) UpdateDog(ctx context.Context, id int64, d dogs.Dog) (dogs.Dog, error) {
	var out wireDog
	if err := c.http.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/dogs/%d", id), c.headers(), toPayload(d), &out); err != nil {
		return dogs.Dog{}, mapHTTPError(err)
	}
	return toDog(out), nil
}

func (c *Client) DeleteDog(ctx context.Context, id int64) error {
	err := c.http.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("/dogs/%d", id), c.headers(), nil, nil)
	return mapHTTPError(err)
}

func (c *Client) GetContent(ctx context.Context) (map[string]any, error) {
	out := map[string]any{}
	if err := c.http.DoJSON(ctx, http.MethodGet, "/content", c.headers(), nil, &out); err != nil {
		return nil, mapHTTPError(err)
	}
	return out, nil
}

func (c *Client) ReplaceContent(ctx context.Context, doc map[string]any) (map[string]any, error) {
	out := map[string]any{}
	if err := c.http.DoJSON(ctx, http.MethodPut, "/content", c.headers(), doc, &out); err != nil {
		return nil, mapHTTPError(err)
	}
	return out, nil
}

// Init dispara el aprovisionamiento one-shot del datastore.
func (c *Client) Init(ctx context.Context) error {
	return mapHTTPError(c.http.DoJSON(ctx, http.MethodPost, "/init", c.headers(), nil, nil))
}

// Login cambia la password del back office por un token de sesión.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"password": password}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/auth/login", c.headers(), body, &out); err != nil {
		return "", mapHTTPError(err)
	}
	return out.Token, nil
}

func mapHTTPError(err error) error {
	if err == nil {
		return nil
	}
	var he *httpclient.HTTPError
	if errors.As(err, &he) && he.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, he.Body)
	}
	return err
}
