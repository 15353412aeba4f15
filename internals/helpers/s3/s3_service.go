// file: internals/helpers/s3/s3_service.go
package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	// Presigned PUT URLs are short-lived: the client uploads right away.
	uploadURLTTL = 5 * time.Minute
	// Default TTL for presigned GET links.
	DownloadURLTTL = time.Hour

	keyPrefix = "moonsys-projects"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// IsConfigured reports whether the AWS credentials and bucket are set.
func IsConfigured() bool {
	return getEnv("AWS_ACCESS_KEY_ID") != "" &&
		getEnv("AWS_SECRET_ACCESS_KEY") != "" &&
		getEnv("AWS_S3_BUCKET") != ""
}

// S3Service wraps the project-files bucket.
type S3Service struct {
	Client  *s3.Client
	Presign *s3.PresignClient
	Bucket  string
	Region  string
}

// NewS3ServiceFromEnv builds the service from AWS_* env vars.
func NewS3ServiceFromEnv(ctx context.Context) (*S3Service, error) {
	if !IsConfigured() {
		return nil, errors.New("s3: AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_S3_BUCKET must be set")
	}

	region := getEnv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			getEnv("AWS_ACCESS_KEY_ID"),
			getEnv("AWS_SECRET_ACCESS_KEY"),
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3Service{
		Client:  client,
		Presign: s3.NewPresignClient(client),
		Bucket:  getEnv("AWS_S3_BUCKET"),
		Region:  region,
	}, nil
}

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

func sanitizeFilename(name string) string {
	return reUnsafeFilename.ReplaceAllString(name, "_")
}

// BuildObjectKey creates a unique key scoped to project and category:
// moonsys-projects/{projectID}/{category}/{millis}-{sanitizedName}
func BuildObjectKey(projectID uint, category, fileName string) string {
	return fmt.Sprintf("%s/%d/%s/%d-%s",
		keyPrefix, projectID, category, time.Now().UnixMilli(), sanitizeFilename(fileName))
}

// PresignPut returns a short-lived URL for a direct client upload.
func (s *S3Service) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	req, err := s.Presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(uploadURLTTL))
	if err != nil {
		return "", fmt.Errorf("s3: presign put: %w", err)
	}
	return req.URL, nil
}

// PresignGet returns a temporary download link for a stored object.
func (s *S3Service) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DownloadURLTTL
	}
	req, err := s.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("s3: presign get: %w", err)
	}
	return req.URL, nil
}

// Put uploads a payload from the server side.
func (s *S3Service) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3: put %s: %w", key, err)
	}
	return nil
}

// Delete removes an object. Missing objects are not an error.
func (s *S3Service) Delete(ctx context.Context, key string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3: delete %s: %w", key, err)
	}
	return nil
}

// PublicURL builds the virtual-hosted URL of an object.
func (s *S3Service) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, key)
}
