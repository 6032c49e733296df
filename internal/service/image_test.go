package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tastebase/backend/config"
)

func TestValidateReference(t *testing.T) {
	svc := NewImageService(nil)
	ctx := context.Background()

	assert.NoError(t, svc.ValidateReference(ctx, ""))
	assert.NoError(t, svc.ValidateReference(ctx, "/uploads/dinner.jpg"))
	assert.NoError(t, svc.ValidateReference(ctx, "https://cdn.example.com/dinner.png"))

	assert.Error(t, svc.ValidateReference(ctx, "/uploads/notes.txt"))
	assert.Error(t, svc.ValidateReference(ctx, "/uploads/../etc/passwd.png"))
	assert.Error(t, svc.ValidateReference(ctx, "ftp://example.com/dinner.jpg"))
	assert.Error(t, svc.ValidateReference(ctx, "dinner.jpg"))
}

func TestValidateReferenceBucketBound(t *testing.T) {
	svc := NewImageService(&config.S3Config{BucketName: "tastebase-images"})
	ctx := context.Background()

	assert.NoError(t, svc.ValidateReference(ctx, "https://tastebase-images.s3.amazonaws.com/dinner.jpg"))
	assert.Error(t, svc.ValidateReference(ctx, "https://elsewhere.example.com/dinner.jpg"))
}

func TestPublicURL(t *testing.T) {
	plain := NewImageService(nil)
	assert.Equal(t, "/uploads/dinner.jpg", plain.PublicURL("/uploads/dinner.jpg"))

	bucketed := NewImageService(&config.S3Config{BucketName: "tastebase-images"})
	assert.Equal(t,
		"https://tastebase-images.s3.amazonaws.com/uploads/dinner.jpg",
		bucketed.PublicURL("/uploads/dinner.jpg"))
	assert.Equal(t,
		"https://cdn.example.com/dinner.jpg",
		bucketed.PublicURL("https://cdn.example.com/dinner.jpg"))
}

func TestReferenceExistsNoStorage(t *testing.T) {
	svc := NewImageService(nil)
	_, err := svc.ReferenceExists(context.Background(), "/uploads/dinner.jpg")
	assert.Error(t, err)
}
