package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for the static upload area that car
// images live in. The rest of the system only ever sees the returned URL
// strings; nothing reads the stored bytes back through this interface.
type FileStorage interface {
	// Save writes the content under a generated object name derived from
	// filename and returns the public URL of the stored file.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
