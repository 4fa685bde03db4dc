// Package repository defines the document store interface and errors.
package repository

import (
	"context"

	model "github.com/highOnBits/time-guess/internal/domain/model"
)

// Store provides whole-document access to the persisted game state. Every
// mutating operation in the service is a Load, a change, and a Save; the
// store never sees partial updates.
type Store interface {
	// Load reads the full document. A store with no prior state returns an
	// empty document, not an error. Unreadable or malformed state fails
	// with ErrStorageUnavailable.
	Load(ctx context.Context) (model.Document, error)

	// Save writes the full document, replacing whatever was there.
	Save(ctx context.Context, doc model.Document) error

	// Info describes the underlying storage for the stats view.
	Info(ctx context.Context) Info
}

// Info is a snapshot of the storage backing for display purposes.
type Info struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
	Bytes  int64  `json:"bytes"`
}
