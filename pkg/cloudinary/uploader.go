package cloudinary

import (
	"bytes"
	"context"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func (u *CloudinaryUploader) UploadBytes(
	ctx context.Context,
	folder string,
	filename string,
	b []byte,
) (string, error) {
	res, err := u.cld.Upload.Upload(
		ctx,
		bytes.NewReader(b),
		uploader.UploadParams{
			Folder:       folder,
			PublicID:     filename,
			ResourceType: "auto",
		},
	)
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}

// Upload stores an inline value (base64 data URI or a path the SDK accepts)
// under a generated public id.
func (u *CloudinaryUploader) Upload(
	ctx context.Context,
	folder string,
	value string,
) (string, string, error) {
	res, err := u.cld.Upload.Upload(
		ctx,
		value,
		uploader.UploadParams{
			Folder:       folder,
			PublicID:     uuid.NewString(),
			ResourceType: "auto",
		},
	)
	if err != nil {
		return "", "", err
	}
	return res.PublicID, res.SecureURL, nil
}
