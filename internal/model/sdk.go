package model

import (
	"errors"
	"strings"
	"time"
)

// ScriptLoadState only moves forward. LOADED and FAILED are terminal: a
// script is never fetched twice.
type ScriptLoadState string

const (
	ScriptNotLoaded ScriptLoadState = "NOT_LOADED"
	ScriptLoading   ScriptLoadState = "LOADING"
	ScriptLoaded    ScriptLoadState = "LOADED"
	ScriptFailed    ScriptLoadState = "FAILED"
)

// Fixed PayPal SDK options. Commit is disabled because the order is
// committed by the prepare-checkout step, not by the SDK.
const (
	SDKComponents = "marks,buttons,messages"
	SDKIntent     = "capture"
	SDKCommit     = "false"
)

// SDKParams configure the SDK script. Locale is in storefront notation,
// e.g. "de-DE".
type SDKParams struct {
	ClientID string
	Locale   string
	Currency string
}

func (p SDKParams) Validate() error {
	if strings.TrimSpace(p.ClientID) == "" {
		return errors.New("client_id is required")
	}
	return nil
}

// LoadEvent is delivered once the SDK script finished loading. A nil
// *LoadEvent means the SDK was already available.
type LoadEvent struct {
	Type     string
	Src      string
	LoadedAt time.Time
}
