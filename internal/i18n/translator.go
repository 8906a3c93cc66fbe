package i18n

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const KeyPaymentError = "paypal.general.paymentError"

//go:embed messages.yaml
var defaultMessages []byte

type translator struct {
	messages      *viper.Viper
	defaultLocale string
}

// NewTranslator loads the bundled messages and, when path is set, merges
// the file at path over them.
func NewTranslator(defaultLocale, path string) (*translator, error) {
	const op = "i18n.NewTranslator"

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultMessages)); err != nil {
		return nil, fmt.Errorf("%s: read bundled messages: %w", op, err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("%s: merge %s: %w", op, path, err)
		}
	}

	return &translator{messages: v, defaultLocale: defaultLocale}, nil
}

// T resolves key for the locale in ctx, then for the default locale. An
// unknown key resolves to itself.
func (t *translator) T(ctx context.Context, key string) string {
	for _, locale := range []string{LocaleFromContext(ctx), t.defaultLocale} {
		if locale == "" {
			continue
		}
		if msg := t.messages.GetString(locale + "." + key); msg != "" {
			return msg
		}
	}
	return key
}

func (t *translator) DefaultLocale() string { return t.defaultLocale }

type localeKey struct{}

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, strings.TrimSpace(locale))
}

func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(localeKey{}).(string)
	return locale
}
