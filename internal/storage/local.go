package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Local guards every access to a Store. Failures, including panics from the
// backend, degrade to "not persisted" and are only logged.
type Local struct {
	store  Store
	logger *slog.Logger
}

func NewLocal(store Store, logger *slog.Logger) *Local {
	return &Local{store: store, logger: logger}
}

// Get reports false when the key is missing or the store failed.
func (l *Local) Get(ctx context.Context, key string) (value string, ok bool) {
	err := l.guard(func() error {
		v, err := l.store.Get(ctx, key)
		value = v
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			l.logger.Warn("storage read failed", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

// Set reports whether the value was persisted.
func (l *Local) Set(ctx context.Context, key, value string) bool {
	if err := l.guard(func() error { return l.store.Set(ctx, key, value) }); err != nil {
		l.logger.Warn("storage write failed", "key", key, "error", err)
		return false
	}
	return true
}

func (l *Local) Delete(ctx context.Context, key string) bool {
	if err := l.guard(func() error { return l.store.Delete(ctx, key) }); err != nil {
		l.logger.Warn("storage delete failed", "key", key, "error", err)
		return false
	}
	return true
}

func (l *Local) guard(fn func() error) (err error) {
	if l == nil || l.store == nil {
		return errors.New("storage unavailable")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("storage panic: %v", r)
		}
	}()
	return fn()
}
