// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/config"
)

type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

// UploadResult carries the public URL and a coarse media classification so
// property forms can route the URL into the right field.
type UploadResult struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mime_type"`
	MediaType string `json:"media_type"` // "image" or "video"
}

type UploadOptions struct {
	Folder       string
	MaxSize      int64 // in bytes
	AllowedTypes []string
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".mkv":  true,
}

// NewStorageService builds an S3-backed store. Missing credentials leave the
// service in a disabled state where every operation fails with
// ErrStorageDisabled, so the rest of the API keeps serving.
func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		logrus.Warn("AWS credentials missing; media uploads are disabled")
		return &StorageService{config: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   cfg,
	}, nil
}

func (s *StorageService) Enabled() bool {
	return s.s3Client != nil
}

func (s *StorageService) UploadFile(file multipart.File, header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	if !s.Enabled() {
		return nil, ErrStorageDisabled
	}

	if options.MaxSize > 0 && header.Size > options.MaxSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, options.MaxSize)
	}

	fileExt := strings.ToLower(filepath.Ext(header.Filename))
	if len(options.AllowedTypes) > 0 {
		allowed := false
		for _, allowedType := range options.AllowedTypes {
			if fileExt == allowedType {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("file type %s is not allowed", fileExt)
		}
	}

	key := s.generateFileName(header.Filename, options.Folder)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	}

	if _, err := s.s3Client.PutObject(params); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	mediaType := "image"
	if videoExtensions[fileExt] || strings.HasPrefix(contentType, "video/") {
		mediaType = "video"
	}

	return &UploadResult{
		URL:       s.publicURL(key),
		Key:       key,
		Size:      int64(len(fileBytes)),
		MimeType:  contentType,
		MediaType: mediaType,
	}, nil
}

func (s *StorageService) DeleteFile(key string) error {
	if !s.Enabled() {
		return ErrStorageDisabled
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *StorageService) GetDefaultUploadOptions(category string) UploadOptions {
	switch category {
	case "properties":
		return UploadOptions{
			Folder:       "properties",
			MaxSize:      50 * 1024 * 1024, // 50MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".webp", ".mp4", ".mov", ".webm"},
		}
	case "avatars":
		return UploadOptions{
			Folder:       "avatars",
			MaxSize:      2 * 1024 * 1024, // 2MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".webp"},
		}
	default:
		return UploadOptions{
			Folder:       "misc",
			MaxSize:      10 * 1024 * 1024, // 10MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png"},
		}
	}
}

func (s *StorageService) generateFileName(original, folder string) string {
	ext := strings.ToLower(filepath.Ext(original))
	name := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.New().String(), ext)
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

func (s *StorageService) publicURL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return strings.TrimSuffix(s.config.AWS.CloudFrontURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}
