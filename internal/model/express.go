package model

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PageExpressConfirm       = "/express-checkout/confirm"
	ConfirmOrderIDQueryParam = "paypalOrderId"
)

// OrderToken is the PayPal order id issued by the backend. It is handed to
// the SDK and never stored.
type OrderToken string

type CreateOrderParams struct {
	IsProductPage bool
	ProductID     string
}

func (p CreateOrderParams) Validate() error {
	if p.IsProductPage && strings.TrimSpace(p.ProductID) == "" {
		return errors.New("product_id is required on product pages")
	}
	return nil
}

// ApprovalResult is what the PayPal SDK hands back after the buyer approved
// the payment. OrderID is forwarded to the backend as is.
type ApprovalResult struct {
	OrderID string
}

func (r ApprovalResult) Validate() error {
	if strings.TrimSpace(r.OrderID) == "" {
		return errors.New("orderID is required")
	}
	return nil
}

type Route struct {
	Path  string
	Query url.Values
}

func (r Route) String() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}

func ConfirmRoute(paypalOrderID string) Route {
	return Route{
		Path:  PageExpressConfirm,
		Query: url.Values{ConfirmOrderIDQueryParam: []string{paypalOrderID}},
	}
}

type FlowState string

const (
	FlowIdle             FlowState = "IDLE"
	FlowMethodSelected   FlowState = "METHOD_SELECTED"
	FlowCartPrepared     FlowState = "CART_PREPARED"
	FlowOrderCreated     FlowState = "ORDER_CREATED"
	FlowAwaitingApproval FlowState = "AWAITING_APPROVAL"
	FlowFinalized        FlowState = "FINALIZED"
	FlowNavigated        FlowState = "NAVIGATED"
	FlowFailed           FlowState = "FAILED"
)

type ExpressOrderApproved struct {
	EventID       uuid.UUID
	FlowID        uuid.UUID
	PayPalOrderID string
	ApprovedAt    time.Time
}
