package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/paypal-express/internal/model"
)

type expressOrderApprovedRecord struct {
	EventID       string    `json:"event_id"`
	FlowID        string    `json:"flow_id"`
	PayPalOrderID string    `json:"paypal_order_id"`
	ApprovedAt    time.Time `json:"approved_at"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) ExpressOrderApprovedToPayload(m model.ExpressOrderApproved) ([]byte, error) {
	payload, err := json.Marshal(expressOrderApprovedRecord{
		EventID:       m.EventID.String(),
		FlowID:        m.FlowID.String(),
		PayPalOrderID: m.PayPalOrderID,
		ApprovedAt:    m.ApprovedAt.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal express order approved: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PayloadToExpressOrderApproved(data []byte) (model.ExpressOrderApproved, error) {
	var rec expressOrderApprovedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.ExpressOrderApproved{}, fmt.Errorf("failed to unmarshal express order approved: %w", err)
	}

	eventID, err := uuid.Parse(rec.EventID)
	if err != nil {
		return model.ExpressOrderApproved{}, fmt.Errorf("event_id: %w", err)
	}
	flowID, err := uuid.Parse(rec.FlowID)
	if err != nil {
		return model.ExpressOrderApproved{}, fmt.Errorf("flow_id: %w", err)
	}

	return model.ExpressOrderApproved{
		EventID:       eventID,
		FlowID:        flowID,
		PayPalOrderID: rec.PayPalOrderID,
		ApprovedAt:    rec.ApprovedAt,
	}, nil
}
