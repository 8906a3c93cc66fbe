package express

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/internal/service/express/mocks"
	"github.com/you-humble/paypal-express/platform/logger"
)

type deps struct {
	session  *mocks.MockSessionContext
	methods  *mocks.MockPaymentMethodResolver
	cart     *mocks.MockCartPreparer
	express  *mocks.MockExpressClient
	router   *mocks.MockRouter
	reporter *mocks.MockFailureReporter
	events   *mocks.MockApprovedSender

	mu    sync.Mutex
	calls []string
}

func newDeps(t *testing.T) *deps {
	return &deps{
		session:  mocks.NewMockSessionContext(t),
		methods:  mocks.NewMockPaymentMethodResolver(t),
		cart:     mocks.NewMockCartPreparer(t),
		express:  mocks.NewMockExpressClient(t),
		router:   mocks.NewMockRouter(t),
		reporter: mocks.NewMockFailureReporter(t),
		events:   mocks.NewMockApprovedSender(t),
	}
}

func (d *deps) svc() *service {
	return NewExpressService(d.session, d.methods, d.cart, d.express, d.router, d.reporter, d.events)
}

func (d *deps) record(name string) func(mock.Arguments) {
	return func(mock.Arguments) {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.calls = append(d.calls, name)
	}
}

func (d *deps) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

func expressMethod() model.PaymentMethod {
	return model.PaymentMethod{
		ID:        gofakeit.UUID(),
		Name:      "PayPal",
		ShortName: model.ExpressHandlerShortName,
	}
}

func TestServiceCreateOrder(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	method := expressMethod()
	errDown := errors.New("store-api is down")

	type testCase struct {
		name   string
		params model.CreateOrderParams
		setup  func(d *deps)
		assert func(t *testing.T, token model.OrderToken, err error, d *deps)
	}

	tests := []testCase{
		{
			name:   "validation error: product page without product id",
			params: model.CreateOrderParams{IsProductPage: true},
			setup: func(d *deps) {
				d.reporter.On("ReportError", mock.Anything).Once()
			},
			assert: func(t *testing.T, token model.OrderToken, err error, d *deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Empty(t, token)
			},
		},
		{
			name:   "listing page: cart is left untouched",
			params: model.CreateOrderParams{IsProductPage: false, ProductID: "prod-42"},
			setup: func(d *deps) {
				d.methods.On("Activate", mock.Anything).Return(nil).Once()
				d.methods.On("Express", mock.Anything).Return(method, true).Once()
				d.session.On("SetPaymentMethod", mock.Anything, method).Return(nil).Once()
				d.express.On("CreateExpressOrder", mock.Anything).Return(model.OrderToken("PAYPAL-1"), nil).Once()
			},
			assert: func(t *testing.T, token model.OrderToken, err error, d *deps) {
				require.NoError(t, err)
				assert.Equal(t, model.OrderToken("PAYPAL-1"), token)
				d.cart.AssertNotCalled(t, "CollapseToSingleProduct", mock.Anything, mock.Anything)
				d.reporter.AssertNotCalled(t, "ReportError", mock.Anything)
			},
		},
		{
			name:   "product page: method, cart and order in sequence",
			params: model.CreateOrderParams{IsProductPage: true, ProductID: "prod-42"},
			setup: func(d *deps) {
				d.methods.On("Activate", mock.Anything).Return(nil).Once()
				d.methods.On("Express", mock.Anything).Return(method, true).Once()
				d.session.On("SetPaymentMethod", mock.Anything, method).
					Run(d.record("set_payment_method")).Return(nil).Once()
				d.cart.On("CollapseToSingleProduct", mock.Anything, "prod-42").
					Run(d.record("collapse_cart")).Return(nil).Once()
				d.express.On("CreateExpressOrder", mock.Anything).
					Run(d.record("create_order")).Return(model.OrderToken("PAYPAL-42"), nil).Once()
			},
			assert: func(t *testing.T, token model.OrderToken, err error, d *deps) {
				require.NoError(t, err)
				assert.Equal(t, model.OrderToken("PAYPAL-42"), token)
				assert.Equal(t, []string{"set_payment_method", "collapse_cart", "create_order"}, d.Calls())
			},
		},
		{
			name:   "express method missing from catalog",
			params: model.CreateOrderParams{},
			setup: func(d *deps) {
				d.methods.On("Activate", mock.Anything).Return(nil).Once()
				d.methods.On("Express", mock.Anything).Return(model.PaymentMethod{}, false).Once()
				d.reporter.On("ReportError", mock.Anything).Once()
			},
			assert: func(t *testing.T, token model.OrderToken, err error, d *deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPaymentMethodUnavailable)
				assert.Empty(t, token)
				d.session.AssertNotCalled(t, "SetPaymentMethod", mock.Anything, mock.Anything)
				d.express.AssertNotCalled(t, "CreateExpressOrder", mock.Anything)
			},
		},
		{
			name:   "catalog activation fails",
			params: model.CreateOrderParams{},
			setup: func(d *deps) {
				d.methods.On("Activate", mock.Anything).Return(errDown).Once()
				d.reporter.On("ReportError", mock.Anything).Once()
			},
			assert: func(t *testing.T, token model.OrderToken, err error, d *deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, errDown)
				d.methods.AssertNotCalled(t, "Express", mock.Anything)
			},
		},
		{
			name:   "set payment method fails",
			params: model.CreateOrderParams{},
			setup: func(d *deps) {
				d.methods.On("Activate", mock.Anything).Return(nil).Once()
				d.methods.On("Express", mock.Anything).Return(method, true).Once()
				d.session.On("SetPaymentMethod", mock.Anything, method).Return(model.ErrBadGateway).Once()
				d.reporter.On("ReportError", mock.Anything).Once()
			},
			assert: func(t *testing.T, token model.OrderToken, err error, d *deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrBadGateway)
				d.express.AssertNotCalled(t, "CreateExpressOrder", mock.Anything)
			},
		},
		{
			name:   "cart preparation fails: no order is created",
			params: model.CreateOrderParams{IsProductPage: true, ProductID: "prod-42"},
			setup: func(d *deps) {
				d.methods.On("Activate", mock.Anything).Return(nil).Once()
				d.methods.On("Express", mock.Anything).Return(method, true).Once()
				d.session.On("SetPaymentMethod", mock.Anything, method).Return(nil).Once()
				d.cart.On("CollapseToSingleProduct", mock.Anything, "prod-42").Return(errDown).Once()
				d.reporter.On("ReportError", mock.Anything).Once()
			},
			assert: func(t *testing.T, token model.OrderToken, err error, d *deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, errDown)
				assert.Empty(t, token)
				d.express.AssertNotCalled(t, "CreateExpressOrder", mock.Anything)
			},
		},
		{
			name:   "backend rejects order creation",
			params: model.CreateOrderParams{},
			setup: func(d *deps) {
				d.methods.On("Activate", mock.Anything).Return(nil).Once()
				d.methods.On("Express", mock.Anything).Return(method, true).Once()
				d.session.On("SetPaymentMethod", mock.Anything, method).Return(nil).Once()
				d.express.On("CreateExpressOrder", mock.Anything).Return(model.OrderToken(""), model.ErrUnexpectedStatus).Once()
				d.reporter.On("ReportError", mock.Anything).Once()
			},
			assert: func(t *testing.T, token model.OrderToken, err error, d *deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUnexpectedStatus)
				assert.Empty(t, token)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tc.setup(d)

			token, err := d.svc().CreateOrder(context.Background(), tc.params)
			tc.assert(t, token, err, d)
		})
	}
}

func TestServiceApprove(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	errDown := errors.New("store-api is down")
	orderID := "X"

	type testCase struct {
		name   string
		result model.ApprovalResult
		setup  func(d *deps)
		assert func(t *testing.T, err error, d *deps)
	}

	tests := []testCase{
		{
			name:   "validation error: empty order id",
			result: model.ApprovalResult{OrderID: "  "},
			setup: func(d *deps) {
				d.reporter.On("ReportError", mock.Anything).Once()
			},
			assert: func(t *testing.T, err error, d *deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				d.express.AssertNotCalled(t, "PrepareExpressCheckout", mock.Anything, mock.Anything)
				d.router.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "success: prepare, refresh, navigate, publish",
			result: model.ApprovalResult{OrderID: orderID},
			setup: func(d *deps) {
				d.express.On("PrepareExpressCheckout", mock.Anything, orderID).
					Run(d.record("prepare_checkout")).Return(nil).Once()
				d.session.On("RefreshContext", mock.Anything).
					Run(d.record("refresh_context")).Return(&model.SessionContext{Token: "t"}, nil).Once()
				d.router.On("Push", mock.Anything, model.ConfirmRoute(orderID)).
					Run(d.record("navigate")).Return(nil).Once()
				d.events.On("SendExpressOrderApproved", mock.Anything, mock.MatchedBy(func(e model.ExpressOrderApproved) bool {
					return e.PayPalOrderID == orderID && !e.ApprovedAt.IsZero()
				})).Run(d.record("publish")).Return(nil).Once()
			},
			assert: func(t *testing.T, err error, d *deps) {
				require.NoError(t, err)
				assert.Equal(t, []string{"prepare_checkout", "refresh_context", "navigate", "publish"}, d.Calls())
				assert.Equal(t, "/express-checkout/confirm?paypalOrderId=X", model.ConfirmRoute(orderID).String())
				d.reporter.AssertNotCalled(t, "ReportError", mock.Anything)
			},
		},
		{
			name:   "prepare checkout fails: no refresh and no navigation",
			result: model.ApprovalResult{OrderID: orderID},
			setup: func(d *deps) {
				d.express.On("PrepareExpressCheckout", mock.Anything, orderID).Return(model.ErrUnexpectedStatus).Once()
				d.reporter.On("ReportError", mock.Anything).Once()
			},
			assert: func(t *testing.T, err error, d *deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUnexpectedStatus)
				d.session.AssertNotCalled(t, "RefreshContext", mock.Anything)
				d.router.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
				d.events.AssertNotCalled(t, "SendExpressOrderApproved", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "refresh fails: no navigation",
			result: model.ApprovalResult{OrderID: orderID},
			setup: func(d *deps) {
				d.express.On("PrepareExpressCheckout", mock.Anything, orderID).Return(nil).Once()
				d.session.On("RefreshContext", mock.Anything).Return(nil, errDown).Once()
				d.reporter.On("ReportError", mock.Anything).Once()
			},
			assert: func(t *testing.T, err error, d *deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, errDown)
				d.router.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "navigation fails",
			result: model.ApprovalResult{OrderID: orderID},
			setup: func(d *deps) {
				d.express.On("PrepareExpressCheckout", mock.Anything, orderID).Return(nil).Once()
				d.session.On("RefreshContext", mock.Anything).Return(&model.SessionContext{}, nil).Once()
				d.router.On("Push", mock.Anything, mock.Anything).Return(errDown).Once()
				d.reporter.On("ReportError", mock.Anything).Once()
			},
			assert: func(t *testing.T, err error, d *deps) {
				require.Error(t, err)
				d.events.AssertNotCalled(t, "SendExpressOrderApproved", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "publish failure does not fail the flow",
			result: model.ApprovalResult{OrderID: orderID},
			setup: func(d *deps) {
				d.express.On("PrepareExpressCheckout", mock.Anything, orderID).Return(nil).Once()
				d.session.On("RefreshContext", mock.Anything).Return(&model.SessionContext{}, nil).Once()
				d.router.On("Push", mock.Anything, model.ConfirmRoute(orderID)).Return(nil).Once()
				d.events.On("SendExpressOrderApproved", mock.Anything, mock.Anything).Return(errDown).Once()
			},
			assert: func(t *testing.T, err error, d *deps) {
				require.NoError(t, err)
				d.reporter.AssertNotCalled(t, "ReportError", mock.Anything)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tc.setup(d)

			err := d.svc().Approve(context.Background(), tc.result)
			tc.assert(t, err, d)
		})
	}
}
