package notification

import (
	"context"
	"sync"

	"github.com/you-humble/paypal-express/platform/logger"
)

const (
	TypeDanger = "danger"
	TypeInfo   = "info"
)

type Notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Bag collects the notifications raised while serving one request.
type Bag struct {
	mu    sync.Mutex
	items []Notification
}

func (b *Bag) push(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, n)
}

func (b *Bag) Items() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notification, len(b.items))
	copy(out, b.items)
	return out
}

type bagKey struct{}

func WithBag(ctx context.Context) (context.Context, *Bag) {
	b := &Bag{}
	return context.WithValue(ctx, bagKey{}, b), b
}

func BagFromContext(ctx context.Context) (*Bag, bool) {
	b, ok := ctx.Value(bagKey{}).(*Bag)
	return b, ok
}

type sink struct{}

func NewSink() *sink { return &sink{} }

func (s *sink) PushError(ctx context.Context, message string) {
	s.push(ctx, Notification{Type: TypeDanger, Message: message})
}

func (s *sink) PushInfo(ctx context.Context, message string) {
	s.push(ctx, Notification{Type: TypeInfo, Message: message})
}

func (s *sink) push(ctx context.Context, n Notification) {
	logger.Info(ctx, "notification pushed",
		logger.String("type", n.Type),
		logger.String("message", n.Message),
	)

	if b, ok := BagFromContext(ctx); ok {
		b.push(n)
	}
}
