package sdkloader

import (
	"net/url"
	"strings"

	"github.com/you-humble/paypal-express/internal/model"
)

const DefaultSDKURL = "https://www.paypal.com/sdk/js"

// BuildScriptURL renders the SDK script URL. Parameters keep a fixed order:
// client-id, components, locale, currency, intent, commit.
func BuildScriptURL(base string, params model.SDKParams) string {
	pairs := [][2]string{
		{"client-id", params.ClientID},
		{"components", model.SDKComponents},
		{"locale", NormalizeLocale(params.Locale)},
		{"currency", params.Currency},
		{"intent", model.SDKIntent},
		{"commit", model.SDKCommit},
	}

	var b strings.Builder
	b.WriteString(base)
	for i, p := range pairs {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}

// NormalizeLocale converts "de-DE" into PayPal's "de_DE".
func NormalizeLocale(locale string) string {
	return strings.Replace(locale, "-", "_", 1)
}
