package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/internal/session"
	"github.com/you-humble/paypal-express/platform/logger"
)

const (
	HeaderAccessKey = "sw-access-key"

	EndpointContext                = "/store-api/context"
	EndpointCart                   = "/store-api/checkout/cart"
	EndpointCartLineItem           = "/store-api/checkout/cart/line-item"
	EndpointPaymentMethod          = "/store-api/payment-method"
	EndpointExpressCreateOrder     = "/store-api/paypal/express/create-order"
	EndpointExpressPrepareCheckout = "/store-api/paypal/express/prepare-checkout"

	maxErrorBody = 4 << 10
)

type client struct {
	http      *http.Client
	baseURL   string
	accessKey string
}

func NewClient(httpClient *http.Client, baseURL, accessKey string) *client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		http:      httpClient,
		baseURL:   strings.TrimRight(baseURL, "/"),
		accessKey: accessKey,
	}
}

// RefreshContext reloads the sales channel context of the current session.
func (c *client) RefreshContext(ctx context.Context) (*model.SessionContext, error) {
	var dto salesChannelContextDTO
	if err := c.do(ctx, http.MethodGet, EndpointContext, nil, &dto); err != nil {
		return nil, err
	}
	return sessionContextToModel(dto), nil
}

func (c *client) SetPaymentMethod(ctx context.Context, method model.PaymentMethod) error {
	return c.do(ctx, http.MethodPatch, EndpointContext, updateContextRequest{PaymentMethodID: method.ID}, nil)
}

func (c *client) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	var resp paymentMethodListResponse
	if err := c.do(ctx, http.MethodPost, EndpointPaymentMethod, paymentMethodListRequest{OnlyAvailable: true}, &resp); err != nil {
		return nil, err
	}
	return paymentMethodsToModel(resp.Elements), nil
}

func (c *client) DeleteCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, EndpointCart, nil, nil)
}

func (c *client) Cart(ctx context.Context) (*model.Cart, error) {
	var dto cartDTO
	if err := c.do(ctx, http.MethodGet, EndpointCart, nil, &dto); err != nil {
		return nil, err
	}
	return cartToModel(dto), nil
}

func (c *client) AddProduct(ctx context.Context, productID string, quantity int) (*model.Cart, error) {
	var dto cartDTO
	req := addLineItemsRequest{Items: []lineItemDTO{productLineItem(productID, quantity)}}
	if err := c.do(ctx, http.MethodPost, EndpointCartLineItem, req, &dto); err != nil {
		return nil, err
	}
	return cartToModel(dto), nil
}

func (c *client) CreateExpressOrder(ctx context.Context) (model.OrderToken, error) {
	const op = "storeclient.CreateExpressOrder"

	var resp createOrderResponse
	if err := c.do(ctx, http.MethodPost, EndpointExpressCreateOrder, nil, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%s: %w: empty token", op, model.ErrBadGateway)
	}
	return model.OrderToken(resp.Token), nil
}

func (c *client) PrepareExpressCheckout(ctx context.Context, paypalOrderID string) error {
	return c.do(ctx, http.MethodPost, EndpointExpressPrepareCheckout, prepareCheckoutRequest{Token: paypalOrderID}, nil)
}

func (c *client) do(ctx context.Context, method, path string, in, out any) error {
	op := "storeclient " + method + " " + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(HeaderAccessKey, c.accessKey)

	token, hasToken := session.TokenFromContext(ctx)
	if hasToken && token.Get() != "" {
		req.Header.Set(session.HeaderContextToken, token.Get())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrBadGateway, err)
	}
	defer resp.Body.Close()

	if rotated := resp.Header.Get(session.HeaderContextToken); rotated != "" && hasToken {
		if rotated != token.Get() {
			logger.Info(ctx, "context token rotated", logger.String("path", path))
		}
		token.Set(rotated)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s: %w: %d%s", op, model.ErrUnexpectedStatus, resp.StatusCode, errorDetail(resp.Body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: decode response: %w", op, model.ErrBadGateway, err)
	}
	return nil
}

func errorDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var er errorResponse
	if err := json.Unmarshal(raw, &er); err != nil || len(er.Errors) == 0 {
		return ""
	}

	details := make([]string, 0, len(er.Errors))
	for _, e := range er.Errors {
		details = append(details, strings.TrimSpace(e.Code+" "+e.Detail))
	}
	return " (" + strings.Join(details, "; ") + ")"
}
