package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/gabriel-vasile/mimetype"

	"github.com/concon121/aws-conduit/internal/awsapi"
	cerrors "github.com/concon121/aws-conduit/internal/errors"
)

// deleteBatchSize is the maximum number of keys per DeleteObjects call.
const deleteBatchSize = 1000

// Storage wraps the S3 API for the conduit configuration/artifact bucket.
type Storage struct {
	api    awsapi.S3API
	region string
}

// NewStorage creates a Storage wrapper around the given API implementation.
func NewStorage(api awsapi.S3API, region string) *Storage {
	return &Storage{api: api, region: region}
}

// Region returns the region the storage client operates in.
func (s *Storage) Region() string {
	return s.region
}

// URL returns the https URL for a bucket in the storage region.
func (s *Storage) URL(bucket string) string {
	return fmt.Sprintf("https://s3.%s.amazonaws.com/%s", s.region, bucket)
}

// BucketExists tests whether a bucket exists and is accessible.
func (s *Storage) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := s.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err == nil {
		return true, nil
	}
	var notFound *s3types.NotFound
	if errors.As(err, &notFound) {
		return false, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchBucket") {
		return false, nil
	}
	return false, cerrors.Remote("storage.bucket-exists", err).WithEntity("bucket", bucket)
}

// CreateBucket creates a private, versioned bucket in the storage region.
func (s *Storage) CreateBucket(ctx context.Context, bucket string) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
		ACL:    s3types.BucketCannedACLPrivate,
	}
	// us-east-1 rejects an explicit location constraint.
	if s.region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(s.region),
		}
	}
	if _, err := s.api.CreateBucket(ctx, input); err != nil {
		return cerrors.Remote("storage.create-bucket", err).WithEntity("bucket", bucket)
	}
	_, err := s.api.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
		Bucket: aws.String(bucket),
		VersioningConfiguration: &s3types.VersioningConfiguration{
			Status: s3types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		return cerrors.Remote("storage.enable-versioning", err).WithEntity("bucket", bucket)
	}
	return nil
}

// DeleteBucket empties a bucket and then removes it.
func (s *Storage) DeleteBucket(ctx context.Context, bucket string) error {
	if err := s.DeletePrefix(ctx, bucket, ""); err != nil {
		return err
	}
	if _, err := s.api.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return cerrors.Remote("storage.delete-bucket", err).WithEntity("bucket", bucket)
	}
	return nil
}

// GetObject fetches the full contents of an object.
// Returns ErrNotFound when the key does not exist.
func (s *Storage) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, cerrors.NewEntityError("storage.get", "object", bucket+"/"+key, cerrors.ErrNotFound)
		}
		return nil, cerrors.Remote("storage.get", err).WithEntity("object", bucket+"/"+key)
	}
	defer out.Body.Close()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, cerrors.Remote("storage.get", err).WithEntity("object", bucket+"/"+key)
	}
	return data, nil
}

// PutObject writes data to a key, detecting the content type from the payload.
func (s *Storage) PutObject(ctx context.Context, bucket, key string, data []byte) error {
	contentType := mimetype.Detect(data).String()
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return cerrors.Remote("storage.put", err).WithEntity("object", bucket+"/"+key)
	}
	return nil
}

// UploadFile streams a local file to a key.
func (s *Storage) UploadFile(ctx context.Context, bucket, key, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return cerrors.NewError("storage.upload-file", err).WithEntity("file", path)
	}
	return s.PutObject(ctx, bucket, key, data)
}

// DeleteObject removes a single object.
func (s *Storage) DeleteObject(ctx context.Context, bucket, key string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return cerrors.Remote("storage.delete", err).WithEntity("object", bucket+"/"+key)
	}
	return nil
}

// ListPrefix returns every key under a prefix, following continuation tokens
// until exhausted.
func (s *Storage) ListPrefix(ctx context.Context, bucket, prefix string) ([]string, error) {
	var keys []string
	var token *string
	for {
		out, err := s.api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, cerrors.Remote("storage.list", err).WithEntity("bucket", bucket)
		}
		for _, obj := range out.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
		if !aws.ToBool(out.IsTruncated) {
			return keys, nil
		}
		token = out.NextContinuationToken
	}
}

// ObjectExists tests whether any object exists under the given prefix.
func (s *Storage) ObjectExists(ctx context.Context, bucket, prefix string) (bool, error) {
	out, err := s.api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, cerrors.Remote("storage.object-exists", err).WithEntity("bucket", bucket)
	}
	return len(out.Contents) > 0, nil
}

// DeletePrefix removes every object under a prefix in batches.
func (s *Storage) DeletePrefix(ctx context.Context, bucket, prefix string) error {
	keys, err := s.ListPrefix(ctx, bucket, prefix)
	if err != nil {
		return err
	}
	for start := 0; start < len(keys); start += deleteBatchSize {
		end := start + deleteBatchSize
		if end > len(keys) {
			end = len(keys)
		}
		batch := make([]s3types.ObjectIdentifier, 0, end-start)
		for _, key := range keys[start:end] {
			batch = append(batch, s3types.ObjectIdentifier{Key: aws.String(key)})
		}
		_, err := s.api.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &s3types.Delete{Objects: batch},
		})
		if err != nil {
			return cerrors.Remote("storage.delete-prefix", err).WithEntity("bucket", bucket)
		}
	}
	return nil
}
