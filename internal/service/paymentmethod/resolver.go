package paymentmethod

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/singleflight"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/internal/session"
	"github.com/you-humble/paypal-express/platform/logger"
)

// Catalog holds payment method snapshots scoped to the session in ctx.
type Catalog interface {
	PaymentMethods(ctx context.Context) ([]model.PaymentMethod, bool)
	Fetch(ctx context.Context) error
}

type resolver struct {
	catalog Catalog

	// one in-flight fetch per session
	fetches singleflight.Group
}

func NewResolver(catalog Catalog) *resolver {
	return &resolver{catalog: catalog}
}

// Activate fetches the catalog of the current session when the session has
// none yet. Once a fetch succeeded it is not triggered again for that
// session; a failed fetch may be retried by the next activation.
func (r *resolver) Activate(ctx context.Context) error {
	const op = "paymentmethod.resolver.Activate"

	if _, ok := r.catalog.PaymentMethods(ctx); ok {
		return nil
	}

	_, err, _ := r.fetches.Do(session.Key(ctx), func() (any, error) {
		if _, ok := r.catalog.PaymentMethods(ctx); ok {
			return nil, nil
		}
		return nil, r.catalog.Fetch(ctx)
	})
	if err != nil {
		logger.Error(ctx, "fetch payment methods", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Express returns the entry of the current session handled by the PayPal
// Express handler.
func (r *resolver) Express(ctx context.Context) (model.PaymentMethod, bool) {
	methods, _ := r.catalog.PaymentMethods(ctx)
	return lo.Find(methods, func(m model.PaymentMethod) bool {
		return m.IsExpress()
	})
}
