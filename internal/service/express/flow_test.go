package express

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/paypal-express/internal/model"
)

func TestFlowAdvance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		start   model.FlowState
		path    []model.FlowState
		wantErr bool
	}{
		{
			name:  "create order without cart",
			start: model.FlowIdle,
			path:  []model.FlowState{model.FlowMethodSelected, model.FlowOrderCreated, model.FlowAwaitingApproval},
		},
		{
			name:  "create order on product page",
			start: model.FlowIdle,
			path: []model.FlowState{
				model.FlowMethodSelected,
				model.FlowCartPrepared,
				model.FlowOrderCreated,
				model.FlowAwaitingApproval,
			},
		},
		{
			name:  "approve",
			start: model.FlowAwaitingApproval,
			path:  []model.FlowState{model.FlowFinalized, model.FlowNavigated},
		},
		{
			name:    "order cannot be created before method selection",
			start:   model.FlowIdle,
			path:    []model.FlowState{model.FlowOrderCreated},
			wantErr: true,
		},
		{
			name:    "navigated is terminal",
			start:   model.FlowAwaitingApproval,
			path:    []model.FlowState{model.FlowFinalized, model.FlowNavigated, model.FlowFailed},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFlow(tt.start)
			require.NotEqual(t, uuid.Nil, f.ID())

			var err error
			for _, to := range tt.path {
				if err = f.advance(to); err != nil {
					break
				}
			}

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrIllegalTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.path[len(tt.path)-1], f.State())
		})
	}
}

func TestFlowFail(t *testing.T) {
	t.Parallel()

	f := newFlow(model.FlowIdle)
	require.NoError(t, f.advance(model.FlowMethodSelected))

	assert.True(t, f.fail())
	assert.Equal(t, model.FlowFailed, f.State())
	assert.False(t, f.fail(), "failed is terminal")
}
