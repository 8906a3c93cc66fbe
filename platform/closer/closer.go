package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

type closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFunc
	logger Logger
}

var globalCloser = &closer{logger: noopLogger{}}

func SetLogger(l Logger) {
	globalCloser.mu.Lock()
	defer globalCloser.mu.Unlock()
	globalCloser.logger = l
}

func AddNamed(name string, fn func(context.Context) error) {
	globalCloser.mu.Lock()
	defer globalCloser.mu.Unlock()
	globalCloser.funcs = append(globalCloser.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll runs the registered functions once, in reverse registration order.
func CloseAll(ctx context.Context) error {
	var result error
	globalCloser.once.Do(func() {
		globalCloser.mu.Lock()
		funcs := globalCloser.funcs
		globalCloser.funcs = nil
		log := globalCloser.logger
		globalCloser.mu.Unlock()

		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			if err := ctx.Err(); err != nil {
				result = errors.Join(result, fmt.Errorf("close %s: %w", f.name, err))
				continue
			}
			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "close failed", zap.String("name", f.name), zap.Error(err))
				result = errors.Join(result, fmt.Errorf("close %s: %w", f.name, err))
				continue
			}
			log.Info(ctx, "closed", zap.String("name", f.name))
		}
	})
	return result
}

type noopLogger struct{}

func (noopLogger) Info(context.Context, string, ...zap.Field)  {}
func (noopLogger) Error(context.Context, string, ...zap.Field) {}
