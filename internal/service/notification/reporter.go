package notification

import (
	"context"

	"github.com/you-humble/paypal-express/internal/i18n"
)

type Notifier interface {
	PushError(ctx context.Context, message string)
}

type Translator interface {
	T(ctx context.Context, key string) string
}

type reporter struct {
	sink       Notifier
	translator Translator
}

func NewFailureReporter(sink Notifier, translator Translator) *reporter {
	return &reporter{sink: sink, translator: translator}
}

// ReportError pushes the generic payment error. The cause is deliberately
// not inspected: every failed express flow shows the same message.
func (r *reporter) ReportError(ctx context.Context) {
	r.sink.PushError(ctx, r.translator.T(ctx, i18n.KeyPaymentError))
}
