package cloudinary

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// New builds a client from the CLOUDINARY_URL-style connection string. An
// empty url returns (nil, nil) so the service can run without uploads.
func New(url string) (*cloudinary.Cloudinary, error) {
	if url == "" {
		return nil, nil
	}
	return cloudinary.NewFromURL(url)
}
