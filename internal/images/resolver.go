// Package images resolves uploaded image files into storable reference URLs.
// One resolver is chosen at startup and applies to every image field, so a
// single storage strategy is used consistently across the whole site.
package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Resolver turns raw uploaded image bytes into a URL the stores can persist.
type Resolver interface {
	Resolve(ctx context.Context, filename string, data []byte) (string, error)
}

// DataURIResolver embeds the image inline as a base64 data URI. No external
// storage required; suitable for small portfolio images.
type DataURIResolver struct{}

// NewDataURIResolver creates the inline resolver.
func NewDataURIResolver() *DataURIResolver {
	return &DataURIResolver{}
}

// Resolve encodes the file content as a data: URI with its sniffed MIME type.
func (r *DataURIResolver) Resolve(_ context.Context, _ string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image payload")
	}
	mime := mimetype.Detect(data)
	return fmt.Sprintf("data:%s;base64,%s", mime.String(), base64.StdEncoding.EncodeToString(data)), nil
}

// S3Resolver uploads images to an S3 bucket and returns the object URL.
type S3Resolver struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Resolver creates an S3-backed resolver using the default AWS credential
// chain.
func NewS3Resolver(ctx context.Context, bucket, region string) (*S3Resolver, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Resolver{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Resolve uploads the file under a generated key and returns its public URL.
func (r *S3Resolver) Resolve(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image payload")
	}

	mime := mimetype.Detect(data)
	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), normalizeExt(filename, mime.Extension()))

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mime.String()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", r.bucket, r.region, key), nil
}

// normalizeExt prefers the original file extension, falling back to the one
// derived from content sniffing.
func normalizeExt(filename, sniffed string) string {
	if ext := path.Ext(filename); ext != "" {
		return ext
	}
	return sniffed
}
