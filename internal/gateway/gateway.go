package gateway

import (
	"context"

	"poppy-paws/internal/domain/dogs"
	"poppy-paws/internal/platform/logger"
)

// Store es la vista del gateway sobre los datos del sitio. La
// implementan el cliente remoto y el espejo local; el Gateway elige
// entre ambos en un solo lugar, en vez de try/catch por call site.
type Store interface {
	ListDogs(ctx context.Context) ([]dogs.Dog, error)
	GetDog(ctx context.Context, id int64) (dogs.Dog, error)
	CreateDog(ctx context.Context, d dogs.Dog) (dogs.Dog, error)
	UpdateDog(ctx context.Context, id int64, d dogs.Dog) (dogs.Dog, error)
	DeleteDog(ctx context.Context, id int64) error
	GetContent(ctx context.Context) (map[string]any, error)
	ReplaceContent(ctx context.Context, doc map[string]any) (map[string]any, error)
}

var (
	_ Store = (*Client)(nil)
	_ Store = (*Mirror)(nil)
	_ Store = (*Gateway)(nil)
)

// Gateway delega en el cliente remoto y, solo en modo fallback,
// degrada en silencio al espejo local cuando la llamada falla.
// El fallback es para desarrollo sin datastore vivo, no es un
// mecanismo de resiliencia: nada se reconcilia después.
type Gateway struct {
	remote   *Client
	mirror   *Mirror
	fallback bool
	log      logger.Logger
}

type GatewayOptions struct {
	Remote *Client
	Mirror *Mirror
	// Fallback habilita la degradación al espejo. En modo estricto
	// (false) los errores se propagan sin tocar.
	Fallback bool
	Logger   logger.Logger
}

func New(opts GatewayOptions) *Gateway {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}
	return &Gateway{
		remote:   opts.Remote,
		mirror:   opts.Mirror,
		fallback: opts.Fallback,
		log:      log,
	}
}

func (g *Gateway) degrade(op string, err error) bool {
	if !g.fallback {
		return false
	}
	g.log.Warn("api failed, using local mirror", map[string]any{"op": op, "err": err.Error()})
	return true
}

func (g *Gateway) ListDogs(ctx context.Context) ([]dogs.Dog, error) {
	out, err := g.remote.ListDogs(ctx)
	if err != nil && g.degrade("list dogs", err) {
		return g.mirror.ListDogs(ctx)
	}
	return out, err
}

func (g *Gateway) GetDog(ctx context.Context, id int64) (dogs.Dog, error) {
	out, err := g.remote.GetDog(ctx, id)
	if err != nil && g.degrade("get dog", err) {
		return g.mirror.GetDog(ctx, id)
	}
	return out, err
}

func (g *Gateway) CreateDog(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	out, err := g.remote.CreateDog(ctx, d)
	if err != nil && g.degrade("create dog", err) {
		return g.mirror.CreateDog(ctx, d)
	}
	return out, err
}

func (g *Gateway) UpdateDog(ctx context.Context, id int64, d dogs.Dog) (dogs.Dog, error) {
	out, err := g.remote.UpdateDog(ctx, id, d)
	if err != nil && g.degrade("update dog", err) {
		return g.mirror.UpdateDog(ctx, id, d)
	}
	return out, err
}

func (g *Gateway) DeleteDog(ctx context.Context, id int64) error {
	err := g.remote.DeleteDog(ctx, id)
	if err != nil && g.degrade("delete dog", err) {
		return g.mirror.DeleteDog(ctx, id)
	}
	return err
}

func (g *Gateway) GetContent(ctx context.Context) (map[string]any, error) {
	out, err := g.remote.GetContent(ctx)
	if err != nil && g.degrade("get content", err) {
		return g.mirror.GetContent(ctx)
	}
	return out, err
}

func (g *Gateway) ReplaceContent(ctx context.Context, doc map[string]any) (map[string]any, error) {
	out, err := g.remote.ReplaceContent(ctx, doc)
	if err != nil && g.degrade("replace content", err) {
		return g.mirror.ReplaceContent(ctx, doc)
	}
	return out, err
}
