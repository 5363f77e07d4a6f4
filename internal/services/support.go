package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/interfaces"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

var validate = validator.New()

func validateStruct(input any) error {
	if err := validate.Struct(input); err != nil {
		return errBadRequest(err.Error())
	}
	return nil
}

// resolveFileRef turns an inline value (data URI or local path) into a hosted
// asset. Values that are already URLs are kept as-is without re-upload.
func resolveFileRef(ctx context.Context, up interfaces.Uploader, folder, value string) (domain.FileRef, error) {
	if value == "" {
		return domain.FileRef{}, nil
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return domain.FileRef{URL: value}, nil
	}
	if up == nil {
		return domain.FileRef{}, errBadRequest("file uploads are not available")
	}
	publicID, url, err := up.Upload(ctx, folder, value)
	if err != nil {
		return domain.FileRef{}, err
	}
	return domain.FileRef{PublicID: publicID, URL: url}, nil
}

// resolveFileRefs is the best-effort variant: a value that fails to upload is
// logged and skipped instead of failing the whole request.
func resolveFileRefs(ctx context.Context, up interfaces.Uploader, folder string, values []string) []domain.FileRef {
	refs := make([]domain.FileRef, 0, len(values))
	for _, v := range values {
		ref, err := resolveFileRef(ctx, up, folder, v)
		if err != nil {
			log.Warnf("skipping upload to %s: %v", folder, err)
			continue
		}
		if !ref.IsZero() {
			refs = append(refs, ref)
		}
	}
	return refs
}

func publishEvent(p interfaces.ProducerHandler, key string, payload any) {
	if p == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		log.Warnf("marshal event %s: %v", key, err)
		return
	}
	if err := p.PublishMessage([]byte(key), b); err != nil {
		log.Warnf("publish event %s: %v", key, err)
	}
}
