package express

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/platform/logger"
)

const tracerName = "github.com/you-humble/paypal-express/internal/service/express"

type SessionContext interface {
	SetPaymentMethod(ctx context.Context, method model.PaymentMethod) error
	RefreshContext(ctx context.Context) (*model.SessionContext, error)
}

type PaymentMethodResolver interface {
	Activate(ctx context.Context) error
	Express(ctx context.Context) (model.PaymentMethod, bool)
}

type CartPreparer interface {
	CollapseToSingleProduct(ctx context.Context, productID string) error
}

type ExpressClient interface {
	CreateExpressOrder(ctx context.Context) (model.OrderToken, error)
	PrepareExpressCheckout(ctx context.Context, paypalOrderID string) error
}

type Router interface {
	Push(ctx context.Context, route model.Route) error
}

type FailureReporter interface {
	ReportError(ctx context.Context)
}

type ApprovedSender interface {
	SendExpressOrderApproved(ctx context.Context, event model.ExpressOrderApproved) error
}

type flowLogger interface {
	Warn(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type service struct {
	session  SessionContext
	methods  PaymentMethodResolver
	cart     CartPreparer
	express  ExpressClient
	router   Router
	reporter FailureReporter
	events   ApprovedSender
	tracer   trace.Tracer
}

func NewExpressService(
	session SessionContext,
	methods PaymentMethodResolver,
	cart CartPreparer,
	express ExpressClient,
	router Router,
	reporter FailureReporter,
	events ApprovedSender,
) *service {
	return &service{
		session:  session,
		methods:  methods,
		cart:     cart,
		express:  express,
		router:   router,
		reporter: reporter,
		events:   events,
		tracer:   otel.Tracer(tracerName),
	}
}

// CreateOrder selects the express payment method for the session, collapses
// the cart to the viewed product on product pages and asks the backend for a
// PayPal order. Concurrent calls for the same session are not de-duplicated
// here.
func (svc *service) CreateOrder(ctx context.Context, params model.CreateOrderParams) (model.OrderToken, error) {
	const op string = "express.service.CreateOrder"
	f := newFlow(model.FlowIdle)
	log := logger.With(
		logger.String("flow_id", f.ID().String()),
		logger.Bool("is_product_page", params.IsProductPage),
		logger.String("product_id", params.ProductID),
	)

	ctx, span := svc.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("flow.id", f.ID().String()),
		attribute.Bool("express.product_page", params.IsProductPage),
	))
	defer span.End()

	if err := params.Validate(); err != nil {
		return "", svc.abort(ctx, f, log, "invalid params", fmt.Errorf("%s: %w: %v", op, model.ErrValidation, err))
	}

	if err := svc.step(ctx, f, "select_payment_method", svc.selectExpressMethod); err != nil {
		return "", svc.abort(ctx, f, log, "select payment method", fmt.Errorf("%s: %w", op, err))
	}
	if err := f.advance(model.FlowMethodSelected); err != nil {
		return "", svc.abort(ctx, f, log, "advance flow", fmt.Errorf("%s: %w", op, err))
	}

	if params.IsProductPage {
		err := svc.step(ctx, f, "prepare_cart", func(ctx context.Context) error {
			return svc.cart.CollapseToSingleProduct(ctx, params.ProductID)
		})
		if err != nil {
			return "", svc.abort(ctx, f, log, "prepare cart", fmt.Errorf("%s: %w", op, err))
		}
		if err := f.advance(model.FlowCartPrepared); err != nil {
			return "", svc.abort(ctx, f, log, "advance flow", fmt.Errorf("%s: %w", op, err))
		}
	}

	var token model.OrderToken
	err := svc.step(ctx, f, "create_order", func(ctx context.Context) error {
		var err error
		token, err = svc.express.CreateExpressOrder(ctx)
		return err
	})
	if err != nil {
		return "", svc.abort(ctx, f, log, "create paypal order", fmt.Errorf("%s: %w", op, err))
	}
	if err := f.advance(model.FlowOrderCreated); err != nil {
		return "", svc.abort(ctx, f, log, "advance flow", fmt.Errorf("%s: %w", op, err))
	}
	if err := f.advance(model.FlowAwaitingApproval); err != nil {
		return "", svc.abort(ctx, f, log, "advance flow", fmt.Errorf("%s: %w", op, err))
	}

	log.Info(ctx, "paypal order created")
	return token, nil
}

// Approve hands the approved PayPal order to the backend, refreshes the
// session and navigates to the express confirm page.
func (svc *service) Approve(ctx context.Context, result model.ApprovalResult) error {
	const op string = "express.service.Approve"
	f := newFlow(model.FlowAwaitingApproval)
	log := logger.With(
		logger.String("flow_id", f.ID().String()),
		logger.String("paypal_order_id", result.OrderID),
	)

	ctx, span := svc.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("flow.id", f.ID().String()),
	))
	defer span.End()

	if err := result.Validate(); err != nil {
		return svc.abort(ctx, f, log, "invalid approval", fmt.Errorf("%s: %w: %v", op, model.ErrValidation, err))
	}

	err := svc.step(ctx, f, "prepare_checkout", func(ctx context.Context) error {
		return svc.express.PrepareExpressCheckout(ctx, result.OrderID)
	})
	if err != nil {
		return svc.abort(ctx, f, log, "prepare checkout", fmt.Errorf("%s: %w", op, err))
	}

	err = svc.step(ctx, f, "refresh_context", func(ctx context.Context) error {
		_, err := svc.session.RefreshContext(ctx)
		return err
	})
	if err != nil {
		return svc.abort(ctx, f, log, "refresh context", fmt.Errorf("%s: %w", op, err))
	}
	if err := f.advance(model.FlowFinalized); err != nil {
		return svc.abort(ctx, f, log, "advance flow", fmt.Errorf("%s: %w", op, err))
	}

	err = svc.step(ctx, f, "navigate", func(ctx context.Context) error {
		return svc.router.Push(ctx, model.ConfirmRoute(result.OrderID))
	})
	if err != nil {
		return svc.abort(ctx, f, log, "navigate", fmt.Errorf("%s: %w", op, err))
	}
	if err := f.advance(model.FlowNavigated); err != nil {
		return svc.abort(ctx, f, log, "advance flow", fmt.Errorf("%s: %w", op, err))
	}

	svc.publishApproved(ctx, f, result.OrderID, log)
	return nil
}

func (svc *service) selectExpressMethod(ctx context.Context) error {
	if err := svc.methods.Activate(ctx); err != nil {
		return err
	}

	method, ok := svc.methods.Express(ctx)
	if !ok {
		return model.ErrPaymentMethodUnavailable
	}

	return svc.session.SetPaymentMethod(ctx, method)
}

// publishApproved never fails the flow: navigation already happened.
func (svc *service) publishApproved(ctx context.Context, f *flow, paypalOrderID string, log flowLogger) {
	err := svc.events.SendExpressOrderApproved(ctx, model.ExpressOrderApproved{
		EventID:       uuid.New(),
		FlowID:        f.ID(),
		PayPalOrderID: paypalOrderID,
		ApprovedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Warn(ctx, "send express order approved", logger.ErrorF(err))
	}
}

func (svc *service) step(
	ctx context.Context,
	f *flow,
	name string,
	fn func(ctx context.Context) error,
) error {
	ctx, span := svc.tracer.Start(ctx, "express."+name, trace.WithAttributes(
		attribute.String("flow.id", f.ID().String()),
		attribute.String("flow.state", string(f.State())),
	))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, name)
		return err
	}
	return nil
}

// abort fails the flow and reports it to the buyer exactly once.
func (svc *service) abort(ctx context.Context, f *flow, log flowLogger, msg string, err error) error {
	state := f.State()
	if f.fail() {
		svc.reporter.ReportError(ctx)
	}

	log.Error(ctx, msg,
		logger.String("state", string(state)),
		logger.ErrorF(err),
	)
	trace.SpanFromContext(ctx).SetStatus(codes.Error, msg)
	return err
}
