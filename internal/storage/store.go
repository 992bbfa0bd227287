package storage

import (
	"context"
	"errors"
)

// Keys shared with the browser front end.
const (
	KeySessionID = "session_id"
	KeyUserID    = "user_id"
	KeyUserName  = "user_name"
	KeyUserEmail = "user_email"
	KeyRoute     = "kiosk_route"
)

var ErrNotFound = errors.New("key not found")

// Store is a device-scoped string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Factory returns the store for one kiosk device.
type Factory func(deviceID string) Store
