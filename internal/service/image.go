package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/tastebase/backend/config"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageService validates media references handed over by the upload
// layer and resolves them to public URLs. It never reads file contents;
// the object already exists by the time a reference reaches the catalog.
type ImageService struct {
	s3Config *config.S3Config
}

// Ensure ImageService implements MediaValidator
var _ MediaValidator = (*ImageService)(nil)

// NewImageService creates a new ImageService instance. s3Config may be
// nil, in which case only relative upload paths are accepted.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// ValidateReference checks that ref is either a relative uploads path or
// a URL pointing into the configured bucket, with a recognized image
// extension. Relative paths are additionally checked against the bucket
// when storage is configured. The empty reference is valid: recipes may
// be published without an image.
func (s *ImageService) ValidateReference(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	if strings.Contains(ref, "..") {
		return errors.New("reference must not contain path traversal")
	}

	ext := strings.ToLower(path.Ext(ref))
	if !allowedImageExtensions[ext] {
		return fmt.Errorf("unsupported image extension %q", ext)
	}

	if strings.HasPrefix(ref, "/uploads/") {
		if s.s3Config == nil || s.s3Config.Client == nil {
			return nil
		}
		exists, err := s.ReferenceExists(ctx, ref)
		if err != nil {
			return fmt.Errorf("checking reference: %w", err)
		}
		if !exists {
			return fmt.Errorf("reference %q points to a missing object", ref)
		}
		return nil
	}

	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("reference must be an /uploads/ path or an http(s) URL")
	}
	if s.s3Config != nil && !strings.Contains(u.Host, s.s3Config.BucketName) {
		return fmt.Errorf("reference host %q is outside the configured bucket", u.Host)
	}
	return nil
}

// PublicURL resolves a stored reference to the URL served to clients.
// Absolute references pass through unchanged.
func (s *ImageService) PublicURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if s.s3Config == nil {
		return ref
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, strings.TrimPrefix(ref, "/"))
}

// ReferenceExists reports whether the object behind a bucket-relative
// reference is present in S3. A missing object is (false, nil); any
// other HeadObject failure is returned so callers can tell a missing
// object from an unreachable bucket.
func (s *ImageService) ReferenceExists(ctx context.Context, ref string) (bool, error) {
	if s.s3Config == nil || s.s3Config.Client == nil {
		return false, errors.New("no storage configured")
	}
	key := strings.TrimPrefix(ref, "/")
	_, err := s.s3Config.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
