package navigation

import (
	"context"
	"errors"
	"sync"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/platform/logger"
)

var ErrNoRecorder = errors.New("navigation: no recorder in context")

// Recorder holds the route the storefront should navigate to after the
// current request.
type Recorder struct {
	mu    sync.Mutex
	route *model.Route
}

func (r *Recorder) Route() (model.Route, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.route == nil {
		return model.Route{}, false
	}
	return *r.route, true
}

type recorderKey struct{}

func WithRecorder(ctx context.Context) (context.Context, *Recorder) {
	r := &Recorder{}
	return context.WithValue(ctx, recorderKey{}, r), r
}

func RecorderFromContext(ctx context.Context) (*Recorder, bool) {
	r, ok := ctx.Value(recorderKey{}).(*Recorder)
	return r, ok
}

type router struct{}

func NewRouter() *router { return &router{} }

func (router) Push(ctx context.Context, route model.Route) error {
	rec, ok := RecorderFromContext(ctx)
	if !ok {
		return ErrNoRecorder
	}

	rec.mu.Lock()
	rec.route = &route
	rec.mu.Unlock()

	logger.Info(ctx, "navigate", logger.String("location", route.String()))
	return nil
}
