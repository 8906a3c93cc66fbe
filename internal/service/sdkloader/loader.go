package sdkloader

import (
	"context"
	"fmt"

	"github.com/you-humble/paypal-express/internal/document"
	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/platform/logger"
)

// scriptID is the registry key of the PayPal SDK; only one SDK script may
// exist per document regardless of client id or options.
const scriptID = "paypal-sdk"

type Document interface {
	AppendScriptOnce(id, src string, onLoad func(*model.LoadEvent)) (*document.Script, bool)
	Script(id string) (*document.Script, bool)
}

type loader struct {
	doc     Document
	baseURL string
}

func NewLoader(doc Document, baseURL string) *loader {
	if baseURL == "" {
		baseURL = DefaultSDKURL
	}
	return &loader{doc: doc, baseURL: baseURL}
}

// EnsureLoaded makes sure the SDK script is in the document and calls
// onReady exactly once after it is usable. The caller that triggers the
// fetch receives the load event; every later caller receives nil. If the
// script never loads, onReady is never called.
func (l *loader) EnsureLoaded(params model.SDKParams, onReady func(*model.LoadEvent)) error {
	const op = "sdkloader.EnsureLoaded"

	if err := params.Validate(); err != nil {
		return fmt.Errorf("%s: %w: %v", op, model.ErrValidation, err)
	}

	src := BuildScriptURL(l.baseURL, params)
	script, inserted := l.doc.AppendScriptOnce(scriptID, src, onReady)
	if inserted {
		logger.Info(context.Background(), "paypal sdk script appended",
			logger.String("locale", params.Locale),
			logger.String("currency", params.Currency),
		)
		return nil
	}

	script.WhenLoaded(func() { onReady(nil) })
	return nil
}

// Ready blocks until the SDK is usable or ctx is done. A script whose fetch
// already failed is reported right away; onReady stays silent either way.
func (l *loader) Ready(ctx context.Context, params model.SDKParams) (*model.LoadEvent, error) {
	const op = "sdkloader.Ready"

	if l.State() == model.ScriptFailed {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrSDKNotReady, model.ErrSDKLoadFailed)
	}

	ready := make(chan *model.LoadEvent, 1)
	if err := l.EnsureLoaded(params, func(ev *model.LoadEvent) { ready <- ev }); err != nil {
		return nil, err
	}

	select {
	case ev := <-ready:
		return ev, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrSDKNotReady, ctx.Err())
	}
}

func (l *loader) State() model.ScriptLoadState {
	script, ok := l.doc.Script(scriptID)
	switch {
	case !ok:
		return model.ScriptNotLoaded
	case script.Loaded():
		return model.ScriptLoaded
	case script.Failed():
		return model.ScriptFailed
	default:
		return model.ScriptLoading
	}
}

// ScriptURL returns the src of the registered SDK script, if any.
func (l *loader) ScriptURL() (string, bool) {
	script, ok := l.doc.Script(scriptID)
	if !ok {
		return "", false
	}
	return script.Src, true
}
