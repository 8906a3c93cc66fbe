package navigation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/platform/logger"
)

func TestRouter_Push(t *testing.T) {
	logger.SetNopLogger()

	t.Run("records confirm route", func(t *testing.T) {
		ctx, rec := WithRecorder(context.Background())

		require.NoError(t, NewRouter().Push(ctx, model.ConfirmRoute("X")))

		route, ok := rec.Route()
		require.True(t, ok)
		assert.Equal(t, "/express-checkout/confirm?paypalOrderId=X", route.String())
	})

	t.Run("no recorder", func(t *testing.T) {
		err := NewRouter().Push(context.Background(), model.ConfirmRoute("X"))
		assert.ErrorIs(t, err, ErrNoRecorder)
	})
}
