// Package store persists scoreboard snapshots as JSON documents under
// string keys. Writes are fire-and-forget; reads treat any failure as
// "nothing saved".
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// Storage keys, one per game plus app settings.
const (
	KeyTruco    = "@truco_data"
	KeyCacheta  = "@cacheta_data"
	KeyFodinha  = "@fodinha_data"
	KeySettings = "@settings_data"
)

// Keys lists every key the app writes.
var Keys = []string{KeyTruco, KeyCacheta, KeyFodinha, KeySettings}

var ErrNotFound = errors.New("snapshot not found")

type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	// Load returns ErrNotFound when nothing is stored under key.
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// LoadJSON decodes the snapshot stored under key into v. It reports false
// when there is no usable snapshot; read and decode failures are logged and
// treated the same as absence.
func LoadJSON(ctx context.Context, s Store, key string, v any) bool {
	data, err := s.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("load %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("decode %s: %v", key, err)
		return false
	}
	return true
}

// Clear deletes every app key, logging failures.
func Clear(ctx context.Context, s Store) {
	for _, key := range Keys {
		if err := s.Delete(ctx, key); err != nil {
			log.Printf("delete %s: %v", key, err)
		}
	}
}
