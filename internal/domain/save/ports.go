package save

import (
	"context"
	"errors"
)

// ErrNoSave is returned by Store.Load when nothing has been saved yet
var ErrNoSave = errors.New("no saved game")

// Store persists documents
type Store interface {
	Save(ctx context.Context, doc *Document) error
	Load(ctx context.Context) (*Document, error)
}
