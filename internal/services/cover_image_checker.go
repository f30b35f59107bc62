package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// HeadObjectAPI is the subset of the S3 client used to look up cover images.
type HeadObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3CoverImageChecker confirms that a coverImageFileKey refers to an object
// the client already uploaded to the campaign bucket.
type S3CoverImageChecker struct {
	client HeadObjectAPI
	bucket string
}

func NewS3CoverImageChecker(client HeadObjectAPI, bucket string) *S3CoverImageChecker {
	return &S3CoverImageChecker{client: client, bucket: bucket}
}

func (c *S3CoverImageChecker) Exists(ctx context.Context, fileKey string) (bool, error) {
	_, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fileKey),
	})
	if err == nil {
		return true, nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return false, nil
		}
	}
	return false, fmt.Errorf("head cover image %s: %w", fileKey, err)
}
