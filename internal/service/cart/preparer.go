package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/platform/logger"
)

type CartClient interface {
	DeleteCart(ctx context.Context) error
	Cart(ctx context.Context) (*model.Cart, error)
	AddProduct(ctx context.Context, productID string, quantity int) (*model.Cart, error)
}

type preparer struct {
	client CartClient
}

func NewCartPreparer(client CartClient) *preparer {
	return &preparer{client: client}
}

// CollapseToSingleProduct replaces the whole cart with one unit of
// productID. Steps run strictly in order; a failed step aborts and the
// deleted cart is not restored.
func (p *preparer) CollapseToSingleProduct(ctx context.Context, productID string) error {
	const op = "cart.preparer.CollapseToSingleProduct"
	log := logger.With(logger.String("product_id", productID))

	if strings.TrimSpace(productID) == "" {
		log.Error(ctx, "empty product id")
		return fmt.Errorf("%s: %w: product_id is required", op, model.ErrValidation)
	}

	if err := p.client.DeleteCart(ctx); err != nil {
		log.Error(ctx, "delete cart", logger.ErrorF(err))
		return fmt.Errorf("%s: delete cart: %w", op, err)
	}

	refreshed, err := p.client.Cart(ctx)
	if err != nil {
		log.Error(ctx, "refresh cart", logger.ErrorF(err))
		return fmt.Errorf("%s: refresh cart: %w", op, err)
	}
	if refreshed != nil && len(refreshed.LineItems) > 0 {
		log.Warn(ctx, "cart not empty after delete",
			logger.Int("line_items", len(refreshed.LineItems)),
		)
	}

	if _, err := p.client.AddProduct(ctx, productID, 1); err != nil {
		log.Error(ctx, "add product", logger.ErrorF(err))
		return fmt.Errorf("%s: add product: %w", op, err)
	}

	return nil
}
