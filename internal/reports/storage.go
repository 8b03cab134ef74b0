package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"sarthi-backend/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// PlaceholderURL dipakai kalau file tidak disimpan (mock upload)
const PlaceholderURL = "#"

var ErrInvalidPayload = errors.New("report data is not valid base64")

// Upload adalah isi file laporan medis yang mau disimpan
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Storage menyimpan file laporan dan mengembalikan URL-nya
type Storage interface {
	Store(ctx context.Context, ownerID string, up Upload) (string, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Storage struct {
	client objectPutter
	bucket string
	region string
}

// NewS3Storage memakai kredensial default AWS (env / shared config)
func NewS3Storage(ctx context.Context, bucket string) (*S3Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	log.Printf("[Reports] S3 bucket %s (%s)", bucket, cfg.Region)
	return &S3Storage{client: s3.NewFromConfig(cfg), bucket: bucket, region: cfg.Region}, nil
}

func (s *S3Storage) Store(ctx context.Context, ownerID string, up Upload) (string, error) {
	key := objectKey(ownerID, up.FileName)
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(up.Data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// Placeholder tidak menyimpan apa-apa, URL selalu "#"
type Placeholder struct{}

func (Placeholder) Store(context.Context, string, Upload) (string, error) {
	return PlaceholderURL, nil
}

// DecodePayload menerima base64 biasa atau data URL ("data:application/pdf;base64,...").
// Content type dari prefix data URL dipakai kalau fallback kosong.
func DecodePayload(raw, fallbackType string) ([]byte, string, error) {
	data, mime, err := utils.DecodeDataURL(raw)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if fallbackType != "" {
		return data, fallbackType, nil
	}
	return data, mime, nil
}

func objectKey(ownerID, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "report"
	}
	if ownerID == "" {
		ownerID = "anonymous"
	}
	return fmt.Sprintf("reports/%s/%s-%s", ownerID, uuid.NewString(), name)
}
