// Package session carries the storefront context token of the current
// request. The store-api rotates the token on some calls; the latest value
// always wins.
package session

import (
	"context"
	"sync"
)

const HeaderContextToken = "sw-context-token"

type Token struct {
	mu    sync.RWMutex
	value string
}

func NewToken(value string) *Token { return &Token{value: value} }

func (t *Token) Get() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.value
}

func (t *Token) Set(value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.value = value
}

type tokenKey struct{}

func WithToken(ctx context.Context, t *Token) context.Context {
	return context.WithValue(ctx, tokenKey{}, t)
}

func TokenFromContext(ctx context.Context) (*Token, bool) {
	t, ok := ctx.Value(tokenKey{}).(*Token)
	return t, ok
}

// Key returns the context token of the current request, or "" when the
// request carries none. Tokenless requests share one key.
func Key(ctx context.Context) string {
	if t, ok := TokenFromContext(ctx); ok {
		return t.Get()
	}
	return ""
}
