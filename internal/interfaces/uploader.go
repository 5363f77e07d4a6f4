package interfaces

import "context"

type Uploader interface {
	// UploadBytes stores a raw file and returns its secure URL.
	UploadBytes(ctx context.Context, folder string, filename string, b []byte) (string, error)

	// Upload stores a value the client sent inline (a base64 data URI or a
	// local path) and returns the asset's public id and secure URL.
	Upload(ctx context.Context, folder string, value string) (publicID string, url string, err error)
}
