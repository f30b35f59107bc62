package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/caarlos0/env/v11"
)

// S3Config holds the bucket that campaign cover images are uploaded to.
type S3Config struct {
	Client *s3.Client
	Bucket string
}

type s3Settings struct {
	Region          string `env:"AWS_REGION" envDefault:"ap-southeast-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	Bucket          string `env:"S3_BUCKET_NAME"`
	// Endpoint is set for S3-compatible stores such as MinIO.
	Endpoint string `env:"S3_ENDPOINT"`
}

// NewS3Config reads the S3 settings and builds a client for them.
func NewS3Config(ctx context.Context) (*S3Config, error) {
	var cfg s3Settings
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse s3 env: %w", err)
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Config{Client: client, Bucket: cfg.Bucket}, nil
}
