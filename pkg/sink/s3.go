package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectAPI is the subset of the S3 client used by S3Sink
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures the S3 client built by NewS3Client
type S3Options struct {
	Region       string
	Endpoint     string
	UsePathStyle bool
	AccessKey    string
	SecretKey    string
}

// NewS3Client builds an S3 client. Static credentials are used when both keys
// are set (MinIO and friends), otherwise the default credential chain.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		if opts.UsePathStyle {
			o.UsePathStyle = true
		}
	}), nil
}

// S3Sink keeps the output document in an S3 object
type S3Sink struct {
	client ObjectAPI
	bucket string
	key    string
	point  string
}

// NewS3Sink creates a sink for s3://bucket/key using the named insertion point
func NewS3Sink(client ObjectAPI, bucket, key, point string) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		key:    key,
		point:  point,
	}
}

// ParseS3URI splits an s3://bucket/key URI. ok is false for anything else.
func ParseS3URI(uri string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(uri, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// WriteTemplate implements Sink.WriteTemplate
func (s *S3Sink) WriteTemplate(ctx context.Context, content string) error {
	return s.put(ctx, []byte(content))
}

// Append implements Sink.Append
func (s *S3Sink) Append(ctx context.Context, text string) error {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to get s3://%s/%s: %w", ErrWriteFailed, s.bucket, s.key, err)
	}
	defer out.Body.Close()

	doc, err := io.ReadAll(out.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read s3://%s/%s: %w", ErrWriteFailed, s.bucket, s.key, err)
	}

	spliced, err := Splice(doc, s.point, []byte(text))
	if err != nil {
		return fmt.Errorf("s3://%s/%s: %w", s.bucket, s.key, err)
	}

	return s.put(ctx, spliced)
}

func (s *S3Sink) put(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/docbook+xml"),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to put s3://%s/%s: %w", ErrWriteFailed, s.bucket, s.key, err)
	}
	return nil
}
