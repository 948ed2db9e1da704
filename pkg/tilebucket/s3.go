package tilebucket

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultOpTimeout = 30 * time.Second

// Options are options for the tile bucket.
type Options struct {
	// Bucket is the name of the tile bucket.
	Bucket string

	// Region is the AWS region the bucket lives in.
	Region string

	// Endpoint overrides the S3 endpoint (eg. minio). Optional.
	Endpoint string

	// OpTimeout bounds each remote bucket operation.
	OpTimeout time.Duration
}

func (o *Options) SetDefaults() {
	if o.OpTimeout <= 0 {
		o.OpTimeout = defaultOpTimeout
	}
}

// S3 is a tile bucket on AWS S3.
type S3 struct {
	opts *Options
	cli  *s3.Client
}

// NewS3 returns a tile bucket backed by S3.
func NewS3(ctx context.Context, opts *Options) (*S3, error) {
	opts.SetDefaults()

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	cli := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3{opts: opts, cli: cli}, nil
}

// DeleteTile removes one tile object. S3 deletes are idempotent; a missing
// key is not an error.
func (s *S3) DeleteTile(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.OpTimeout)
	defer cancel()

	_, err := s.cli.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	})
	return err
}

// ARN identifies the bucket for access policies.
func (s *S3) ARN() string {
	return "arn:aws:s3:::" + s.opts.Bucket
}
