package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-resty/resty/v2"
)

var s3Client *s3.Client
var s3Bucket string
var s3Region string

func InitS3() error {
	s3Bucket = os.Getenv("AWS_BUCKET_NAME")
	s3Region = os.Getenv("AWS_REGION")

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(s3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("loading AWS config: %w", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	return nil
}

// UploadToS3 stores body under folder/filename and returns the public URL.
func UploadToS3(body io.Reader, filename string, contentType string, folder string) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("S3 storage not configured")
	}

	key := fmt.Sprintf("%s/%s", folder, filename)

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s3Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s3Bucket, s3Region, key)
	return publicURL, nil
}

// UploadFromURL fetches a remote image and re-hosts it on S3, so imported
// images survive the source going away.
func UploadFromURL(srcURL string, filename string, folder string) (string, error) {
	client := resty.New()
	resp, err := client.R().Get(srcURL)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", srcURL, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetching %s: status %d", srcURL, resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	return UploadToS3(bytes.NewReader(resp.Body()), filename, contentType, folder)
}

func DeleteFromS3(key string) error {
	if s3Client == nil {
		return fmt.Errorf("S3 storage not configured")
	}

	_, err := s3Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting from S3: %w", err)
	}
	return nil
}
