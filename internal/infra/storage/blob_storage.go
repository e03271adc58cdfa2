// Package storage implements the upload file area on top of gocloud.dev blob
// buckets. The default bucket is a local file:// directory served statically
// by the HTTP server, but any blob driver with the same URL scheme works.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // registers the file:// bucket scheme

	"rentcar/config"
	"rentcar/internal/domain/lifecycle"
	"rentcar/internal/domain/service"
)

// blobStorage writes uploads into a blob bucket and hands back the public URL
// the file will be served from.
type blobStorage struct {
	bucket     *blob.Bucket
	publicPath string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a service.FileStorage.
func New(params Params) (service.FileStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Uploads.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open uploads bucket %s", params.Config.Uploads.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:     bucket,
		publicPath: strings.TrimSuffix(params.Config.Uploads.PublicPath, "/"),
	}, nil
}

// Save stores the content under a random object name that keeps the original
// extension, and returns the URL the file is reachable at.
func (s *blobStorage) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	objectName := uuid.New().String() + strings.ToLower(path.Ext(filename))

	writer, err := s.bucket.NewWriter(ctx, objectName, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		// Close to abort the partial write; the copy error is the one that matters.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write upload content")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize upload")
	}

	return s.publicPath + "/" + objectName, nil
}
