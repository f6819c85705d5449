package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/ardenpalme/app/internal/config/configs"
	"github.com/ardenpalme/app/internal/core/domain"
	"github.com/ardenpalme/app/internal/core/port"
)

var _ port.ObjectStorage = (*ObjectStorage)(nil)

// api is the subset of the S3 client used by ObjectStorage.
type api interface {
	PutObject(ctx context.Context, in *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, in *awss3.HeadBucketInput, optFns ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, in *awss3.CreateBucketInput, optFns ...func(*awss3.Options)) (*awss3.CreateBucketOutput, error)
}

// ObjectStorage implements port.ObjectStorage on top of an S3-compatible
// bucket. It works with AWS S3, Cloudflare R2 and MinIO.
type ObjectStorage struct {
	client  api
	bucket  string
	timeout time.Duration
}

// New builds the S3 client for cfg and makes sure the bucket exists.
func New(ctx context.Context, cfg configs.Storage) (*ObjectStorage, error) {
	slog.Info("initializing object storage",
		"bucket", cfg.Bucket,
		"region", cfg.Region,
		"endpoint", cfg.Endpoint,
	)

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var client *awss3.Client
	if cfg.Endpoint != "" {
		client = awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = awss3.NewFromConfig(awsCfg)
	}

	s := newObjectStorage(client, cfg.Bucket, cfg.Timeout)
	if err = s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func newObjectStorage(client api, bucket string, timeout time.Duration) *ObjectStorage {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ObjectStorage{client: client, bucket: bucket, timeout: timeout}
}

// ensureBucket creates the bucket when HeadBucket cannot see it.
func (s *ObjectStorage) ensureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.HeadBucket(ctx, &awss3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}

	_, err = s.client.CreateBucket(ctx, &awss3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", s.bucket, err)
	}

	slog.Info("created bucket", "bucket", s.bucket)
	return nil
}

// Put uploads body under key. Size may be negative when unknown. Uploads
// are bounded by ctx only since large videos outlive the per-op timeout.
func (s *ObjectStorage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	in := &awss3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if size >= 0 {
		in.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return storageError("put", key, err)
	}
	return nil
}

// Get opens the object stored under key. The caller closes Body.
func (s *ObjectStorage) Get(ctx context.Context, key string) (*port.Object, error) {
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, storageError("get", key, err)
	}
	return &port.Object{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}

// Delete removes the object stored under key. Deleting a missing key
// succeeds, as it does in S3.
func (s *ObjectStorage) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return storageError("delete", key, err)
	}
	return nil
}

// Ping checks that the bucket is reachable.
func (s *ObjectStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.client.HeadBucket(ctx, &awss3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return storageError("ping", s.bucket, err)
	}
	return nil
}

// storageError wraps an SDK failure into a *domain.StorageError carrying
// the upstream status and message. Missing objects also match
// domain.ErrObjectNotFound.
func storageError(op, key string, err error) error {
	se := &domain.StorageError{Op: op, Key: key, Err: err}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		se.Status = respErr.HTTPStatusCode()
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		se.Message = apiErr.ErrorCode()
		if msg := apiErr.ErrorMessage(); msg != "" {
			se.Message += ": " + msg
		}
	}

	if isNotFound(err, apiErr) || se.Status == 404 {
		se.Err = fmt.Errorf("%w: %w", domain.ErrObjectNotFound, err)
	}
	return se
}

func isNotFound(err error, apiErr smithy.APIError) bool {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return true
	}
	if apiErr != nil {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
