package paymentmethod

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/samber/lo"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/internal/session"
)

type Client interface {
	ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
}

// repository keeps one catalog snapshot per session context token. The
// store-api filters methods by session (cart rules, customer group), so a
// snapshot of one session is never served to another.
type repository struct {
	client    Client
	snapshots *expirable.LRU[string, []model.PaymentMethod]
}

// NewPaymentMethodRepository bounds the cache to size sessions and drops a
// snapshot ttl after it was stored. A zero ttl keeps snapshots until they
// are evicted by size.
func NewPaymentMethodRepository(client Client, size int, ttl time.Duration) *repository {
	return &repository{
		client:    client,
		snapshots: expirable.NewLRU[string, []model.PaymentMethod](size, nil, ttl),
	}
}

// PaymentMethods returns the snapshot of the current session. The flag is
// false when the session has no snapshot yet.
func (r *repository) PaymentMethods(ctx context.Context) ([]model.PaymentMethod, bool) {
	methods, ok := r.snapshots.Get(session.Key(ctx))
	if !ok {
		return nil, false
	}
	return slices.Clone(methods), true
}

func (r *repository) Fetch(ctx context.Context) error {
	const op = "paymentmethod.repository.Fetch"

	methods, err := r.client.ListPaymentMethods(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return r.Replace(ctx, methods)
}

// Replace swaps the snapshot of the current session. Short names must be
// unique; empty short names are not compared.
func (r *repository) Replace(ctx context.Context, methods []model.PaymentMethod) error {
	const op = "paymentmethod.repository.Replace"

	named := lo.Filter(methods, func(m model.PaymentMethod, _ int) bool {
		return m.ShortName != ""
	})
	dups := lo.FindDuplicatesBy(named, func(m model.PaymentMethod) string {
		return m.ShortName
	})
	if len(dups) > 0 {
		return fmt.Errorf("%s: %w: %s", op, model.ErrDuplicateShortName, dups[0].ShortName)
	}

	r.snapshots.Add(session.Key(ctx), slices.Clone(methods))

	return nil
}
