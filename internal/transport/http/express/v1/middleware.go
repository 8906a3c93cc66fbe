package http

import (
	"net/http"
	"strings"

	"github.com/you-humble/paypal-express/internal/i18n"
	"github.com/you-humble/paypal-express/internal/navigation"
	"github.com/you-humble/paypal-express/internal/notification"
	"github.com/you-humble/paypal-express/internal/session"
)

const (
	QueryLocale          = "locale"
	HeaderLanguageLocale = "sw-language-locale"
)

// RequestScope installs the per-request session token, notification bag,
// navigation recorder and locale.
func RequestScope(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := session.WithToken(r.Context(), session.NewToken(r.Header.Get(session.HeaderContextToken)))
			ctx, _ = notification.WithBag(ctx)
			ctx, _ = navigation.WithRecorder(ctx)
			ctx = i18n.WithLocale(ctx, requestLocale(r, defaultLocale))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestLocale(r *http.Request, fallback string) string {
	if l := strings.TrimSpace(r.URL.Query().Get(QueryLocale)); l != "" {
		return l
	}
	if l := strings.TrimSpace(r.Header.Get(HeaderLanguageLocale)); l != "" {
		return l
	}

	// First tag of Accept-Language, quality values ignored.
	if al := r.Header.Get("Accept-Language"); al != "" {
		tag, _, _ := strings.Cut(al, ",")
		tag, _, _ = strings.Cut(tag, ";")
		if tag = strings.TrimSpace(tag); tag != "" && tag != "*" {
			return tag
		}
	}
	return fallback
}
