package archive

import (
	"bytes"
	"context"
	"log/slog"
	"path"
	"strings"

	"pix-funnel/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the slice of *s3.Client the archive needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes contact exports under a fixed key prefix of one bucket.
type S3Store struct {
	api     PutObjectAPI
	bucket  string
	prefix  string
	slogger *slog.Logger
}

func NewS3Store(api PutObjectAPI, bucket, prefix string, slogger *slog.Logger) (*S3Store, error) {
	if api == nil {
		return nil, errs.New("s3 client is required")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errs.New("archive bucket is required")
	}
	if slogger == nil {
		slogger = slog.Default()
	}
	return &S3Store{
		api:     api,
		bucket:  bucket,
		prefix:  strings.Trim(strings.TrimSpace(prefix), "/"),
		slogger: slogger,
	}, nil
}

// Put uploads body as name and returns the object key.
func (s *S3Store) Put(ctx context.Context, name string, body []byte, contentType string) (string, error) {
	key := path.Join(s.prefix, name)

	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", errs.Wrapf(err, "put s3://%s/%s", s.bucket, key)
	}

	s.slogger.Info("archive object written",
		slog.String("bucket", s.bucket),
		slog.String("key", key),
		slog.Int("bytes", len(body)))
	return key, nil
}
