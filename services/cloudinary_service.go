package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// ImageStore is the blob-storage collaborator surface the product layer
// depends on. It is an interface so repository tests can stand in a fake.
type ImageStore interface {
	UploadFile(ctx context.Context, file multipart.File, fileName, folder string) (string, error)
	UploadBase64(ctx context.Context, base64Payload, fileName, folder string) (string, error)
	Remove(ctx context.Context, publicID string) error
}

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// objectKey derives a collision-resistant storage key:
// {folder}/{epoch-millis}-{random token}{.ext}.
func objectKey(fileName, folder string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	token := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), token, ext)
}

func (s *CloudinaryService) upload(ctx context.Context, payload interface{}, key string) (string, error) {
	unique := false
	overwrite := false
	result, err := s.cld.Upload.Upload(ctx, payload, uploader.UploadParams{
		PublicID:       strings.TrimSuffix(key, filepath.Ext(key)),
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}

// UploadFile uploads a multipart file and returns the public URL. The
// content type is taken from the file itself by the storage backend.
func (s *CloudinaryService) UploadFile(ctx context.Context, file multipart.File, fileName, folder string) (string, error) {
	return s.upload(ctx, file, objectKey(fileName, folder))
}

// UploadBase64 uploads a raw base64 payload. The content type is inferred
// from the original file extension (image/{ext}).
func (s *CloudinaryService) UploadBase64(ctx context.Context, base64Payload, fileName, folder string) (string, error) {
	payload := base64Payload
	if !strings.HasPrefix(payload, "data:") {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
		if ext == "" {
			ext = "png"
		}
		payload = fmt.Sprintf("data:image/%s;base64,%s", ext, base64Payload)
	}
	return s.upload(ctx, payload, objectKey(fileName, folder))
}

// Remove deletes a stored object by its public ID.
func (s *CloudinaryService) Remove(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// PublicIDFromURL extracts the storage key from a public delivery URL.
// Example: https://res.cloudinary.com/demo/image/upload/v1234/products/169-ab12.jpg
// Returns: products/169-ab12
func PublicIDFromURL(url string) string {
	if url == "" {
		return ""
	}

	// Find the position after "/upload/"
	uploadIndex := strings.Index(url, "/upload/")
	if uploadIndex == -1 {
		return ""
	}
	afterUpload := url[uploadIndex+len("/upload/"):]

	// Skip version if present (e.g., "v1234567890/")
	if strings.HasPrefix(afterUpload, "v") {
		versionEndIndex := strings.Index(afterUpload, "/")
		if versionEndIndex != -1 {
			afterUpload = afterUpload[versionEndIndex+1:]
		}
	}

	// Remove file extension
	lastDotIndex := strings.LastIndex(afterUpload, ".")
	if lastDotIndex != -1 {
		afterUpload = afterUpload[:lastDotIndex]
	}

	return afterUpload
}
