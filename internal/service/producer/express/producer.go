package expressproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/platform/kafka"
)

type Converter interface {
	ExpressOrderApprovedToPayload(m model.ExpressOrderApproved) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewExpressProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendExpressOrderApproved(ctx context.Context, event model.ExpressOrderApproved) error {
	payload, err := s.conv.ExpressOrderApprovedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter express_order_approved error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.FlowID.String()), payload); err != nil {
		return fmt.Errorf("producer to express.order.approved topic error: %w", err)
	}

	return nil
}
