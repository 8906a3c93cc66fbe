package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/you-humble/paypal-express/internal/i18n"
	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/internal/navigation"
	"github.com/you-humble/paypal-express/internal/notification"
	"github.com/you-humble/paypal-express/internal/session"
	"github.com/you-humble/paypal-express/platform/logger"
)

const maxBodyBytes = 64 << 10

type ExpressService interface {
	CreateOrder(ctx context.Context, params model.CreateOrderParams) (model.OrderToken, error)
	Approve(ctx context.Context, result model.ApprovalResult) error
}

type SDKLoader interface {
	Ready(ctx context.Context, params model.SDKParams) (*model.LoadEvent, error)
	State() model.ScriptLoadState
	ScriptURL() (string, bool)
}

type PaymentMethodResolver interface {
	Activate(ctx context.Context) error
	Express(ctx context.Context) (model.PaymentMethod, bool)
}

type SessionContext interface {
	RefreshContext(ctx context.Context) (*model.SessionContext, error)
}

type handler struct {
	svc          ExpressService
	loader       SDKLoader
	methods      PaymentMethodResolver
	session      SessionContext
	clientID     string
	readyTimeout time.Duration

	// nil when de-duplication is disabled
	guard *singleflight.Group
}

func NewExpressHandler(
	service ExpressService,
	loader SDKLoader,
	methods PaymentMethodResolver,
	session SessionContext,
	clientID string,
	readyTimeout time.Duration,
	singleFlight bool,
) *handler {
	h := &handler{
		svc:          service,
		loader:       loader,
		methods:      methods,
		session:      session,
		clientID:     clientID,
		readyTimeout: readyTimeout,
	}
	if singleFlight {
		h.guard = &singleflight.Group{}
	}
	return h
}

func (h *handler) Register(r chi.Router, defaultLocale string) {
	r.Route("/express/v1", func(r chi.Router) {
		r.Use(RequestScope(defaultLocale))

		r.Get("/sdk", h.SDK)
		r.Post("/create-order", h.CreateOrder)
		r.Post("/approve", h.Approve)
	})
}

// SDK prepares everything the storefront needs to render the express
// button. The button must stay disabled on any error.
func (h *handler) SDK(w http.ResponseWriter, r *http.Request) {
	const op = "express.http.SDK"
	ctx := r.Context()

	if err := h.methods.Activate(ctx); err != nil {
		writeError(w, r, fmt.Errorf("%s: %w", op, err))
		return
	}

	method, ok := h.methods.Express(ctx)
	if !ok {
		writeError(w, r, fmt.Errorf("%s: %w", op, model.ErrPaymentMethodUnavailable))
		return
	}

	sc, err := h.session.RefreshContext(ctx)
	if err != nil {
		writeError(w, r, fmt.Errorf("%s: %w", op, err))
		return
	}

	readyCtx, cancel := context.WithTimeout(ctx, h.readyTimeout)
	defer cancel()

	_, err = h.loader.Ready(readyCtx, model.SDKParams{
		ClientID: h.clientID,
		Locale:   i18n.LocaleFromContext(ctx),
		Currency: sc.CurrencyISO,
	})
	if err != nil {
		writeError(w, r, fmt.Errorf("%s: %w", op, err))
		return
	}

	src, _ := h.loader.ScriptURL()
	writeJSON(w, r, http.StatusOK, sdkResponse{
		ScriptURL:       src,
		ClientID:        h.clientID,
		PaymentMethodID: method.ID,
		State:           string(h.loader.State()),
	})
}

func (h *handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res := h.guarded(r, "create-order", func(ctx context.Context) (string, error) {
		token, err := h.svc.CreateOrder(ctx, req.toParams())
		return string(token), err
	})
	if res.err != nil {
		writeOutcomeError(w, r, res)
		return
	}

	writeJSON(w, r, http.StatusOK, createOrderResponse{Token: res.value})
}

func (h *handler) Approve(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res := h.guarded(r, "approve", func(ctx context.Context) (string, error) {
		if err := h.svc.Approve(ctx, model.ApprovalResult{OrderID: req.OrderID}); err != nil {
			return "", err
		}
		return redirectFromContext(ctx), nil
	})
	if res.err != nil {
		writeOutcomeError(w, r, res)
		return
	}

	writeJSON(w, r, http.StatusOK, approveResponse{Redirect: res.value})
}

// outcome is what a guarded call hands to every request sharing it. The
// leader's notifications travel with it since followers never ran the flow.
type outcome struct {
	value         string
	err           error
	token         string
	notifications []notification.Notification
}

// guarded runs fn once per operation and context token while a call is in
// flight. Requests without a context token are never merged. A merged call
// runs detached from the leader's cancellation so a leader that goes away
// does not fail the requests waiting on it.
func (h *handler) guarded(r *http.Request, op string, fn func(ctx context.Context) (string, error)) outcome {
	ctx := r.Context()
	call := func(ctx context.Context) outcome {
		value, err := fn(ctx)
		return outcome{
			value:         value,
			err:           err,
			token:         currentToken(ctx),
			notifications: notificationsFromContext(ctx),
		}
	}

	token := currentToken(ctx)
	if h.guard == nil || token == "" {
		return call(ctx)
	}

	v, _, shared := h.guard.Do(op+":"+token, func() (any, error) {
		return call(context.WithoutCancel(ctx)), nil
	})
	res := v.(outcome)
	if shared {
		logger.Info(ctx, "express call shared", logger.String("operation", op))
		if t, ok := session.TokenFromContext(ctx); ok && res.token != "" {
			t.Set(res.token)
		}
	}
	return res
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed body: %v", model.ErrValidation, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	if token := currentToken(r.Context()); token != "" {
		w.Header().Set(session.HeaderContextToken, token)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeOutcomeError(w, r, outcome{err: err, notifications: notificationsFromContext(r.Context())})
}

func writeOutcomeError(w http.ResponseWriter, r *http.Request, res outcome) {
	status := mapErrorToStatus(res.err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "express request failed",
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.ErrorF(res.err),
		)
	}

	notifications := res.notifications
	if notifications == nil {
		notifications = []notification.Notification{}
	}

	writeJSON(w, r, status, errorResponse{
		Code:          status,
		Message:       http.StatusText(status),
		Notifications: notifications,
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrPaymentMethodUnavailable):
		return http.StatusServiceUnavailable // 503
	case errors.Is(err, model.ErrSDKNotReady):
		return http.StatusGatewayTimeout // 504
	case errors.Is(err, model.ErrBadGateway), errors.Is(err, model.ErrUnexpectedStatus):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}

func currentToken(ctx context.Context) string {
	if t, ok := session.TokenFromContext(ctx); ok {
		return t.Get()
	}
	return ""
}

func notificationsFromContext(ctx context.Context) []notification.Notification {
	if b, ok := notification.BagFromContext(ctx); ok {
		return b.Items()
	}
	return nil
}

func redirectFromContext(ctx context.Context) string {
	rec, ok := navigation.RecorderFromContext(ctx)
	if !ok {
		return ""
	}
	route, ok := rec.Route()
	if !ok {
		return ""
	}
	return route.String()
}
