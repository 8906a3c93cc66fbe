package express

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/you-humble/paypal-express/internal/model"
)

var transitions = map[model.FlowState][]model.FlowState{
	model.FlowIdle:             {model.FlowMethodSelected, model.FlowFailed},
	model.FlowMethodSelected:   {model.FlowCartPrepared, model.FlowOrderCreated, model.FlowFailed},
	model.FlowCartPrepared:     {model.FlowOrderCreated, model.FlowFailed},
	model.FlowOrderCreated:     {model.FlowAwaitingApproval, model.FlowFailed},
	model.FlowAwaitingApproval: {model.FlowFinalized, model.FlowFailed},
	model.FlowFinalized:        {model.FlowNavigated, model.FlowFailed},
}

// flow tracks one express checkout attempt. Navigated and Failed are
// terminal.
type flow struct {
	id    uuid.UUID
	state model.FlowState
}

func newFlow(start model.FlowState) *flow {
	return &flow{id: uuid.New(), state: start}
}

func (f *flow) ID() uuid.UUID { return f.id }

func (f *flow) State() model.FlowState { return f.state }

func (f *flow) advance(to model.FlowState) error {
	if !slices.Contains(transitions[f.state], to) {
		return fmt.Errorf("%w: %s -> %s", model.ErrIllegalTransition, f.state, to)
	}
	f.state = to
	return nil
}

// fail moves the flow to Failed. It reports false when the flow already
// ended.
func (f *flow) fail() bool {
	return f.advance(model.FlowFailed) == nil
}
