// Package session carries validated form data from the POST that produced it
// to the confirmation page that shows it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	RegistrationKey = "registro_data"
	ReservationKey  = "reserva_data"
)

var ErrNoSession = errors.New("no session id in context")

// Store keeps JSON values per session id and key. A key that was never set,
// or whose session expired, is reported as not found rather than as an error.
type Store interface {
	Get(ctx context.Context, sid, key string, dst any) (bool, error)
	Set(ctx context.Context, sid, key string, value any) error
}

// Load reads key from the session attached to ctx.
func Load(ctx context.Context, store Store, key string, dst any) (bool, error) {
	sid, ok := IDFromContext(ctx)
	if !ok {
		return false, nil
	}
	return store.Get(ctx, sid, key, dst)
}

// Save writes key into the session attached to ctx.
func Save(ctx context.Context, store Store, key string, value any) error {
	sid, ok := IDFromContext(ctx)
	if !ok {
		return ErrNoSession
	}
	return store.Set(ctx, sid, key, value)
}

func encode(value any) ([]byte, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode session value: %w", err)
	}
	return payload, nil
}

func decode(payload []byte, dst any) error {
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decode session value: %w", err)
	}
	return nil
}
