package http

import (
	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/internal/notification"
)

type createOrderRequest struct {
	IsProductPage bool   `json:"is_product_page"`
	ProductID     string `json:"product_id"`
}

func (r createOrderRequest) toParams() model.CreateOrderParams {
	return model.CreateOrderParams{
		IsProductPage: r.IsProductPage,
		ProductID:     r.ProductID,
	}
}

type createOrderResponse struct {
	Token string `json:"token"`
}

// approveRequest mirrors the data object the PayPal SDK passes to onApprove.
type approveRequest struct {
	OrderID string `json:"orderID"`
}

type approveResponse struct {
	Redirect string `json:"redirect"`
}

type sdkResponse struct {
	ScriptURL       string `json:"script_url"`
	ClientID        string `json:"client_id"`
	PaymentMethodID string `json:"payment_method_id"`
	State           string `json:"state"`
}

type errorResponse struct {
	Code          int                         `json:"code"`
	Message       string                      `json:"message"`
	Notifications []notification.Notification `json:"notifications"`
}
