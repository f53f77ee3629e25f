// Package archive keeps a copy of every generated export in S3-compatible
// object storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/export"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Archive stores a rendered export and returns the key it was stored under.
type Archive interface {
	Store(ctx context.Context, accountID int64, doc *export.Document) (string, error)
}

// Nop discards everything. It is used when no bucket is configured.
type Nop struct{}

func (Nop) Store(context.Context, int64, *export.Document) (string, error) {
	return "", nil
}

// Settings describes the bucket and how to reach it.
type Settings struct {
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
}

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive writes exports to
// exports/{accountID}/{yyyy}/{mm}/{dd}/{uuid}_{filename}.
type S3Archive struct {
	client putObjectAPI
	bucket string
	clock  func() time.Time
	newID  func() string
}

var _ Archive = (*S3Archive)(nil)

// seams for tests
var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
)

// NewS3Archive builds an S3 client from s. Static credentials are used when
// an access key is given, otherwise the default AWS chain applies. A custom
// endpoint (MinIO and friends) switches to path-style addressing.
func NewS3Archive(ctx context.Context, s Settings) (*S3Archive, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(s.Region)}
	if s.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Archive(client, s.Bucket), nil
}

func newS3Archive(client putObjectAPI, bucket string) *S3Archive {
	return &S3Archive{
		client: client,
		bucket: bucket,
		clock:  time.Now,
		newID:  uuid.NewString,
	}
}

func (a *S3Archive) Store(ctx context.Context, accountID int64, doc *export.Document) (string, error) {
	key := Key(accountID, doc.Filename, a.clock(), a.newID())

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(doc.Body),
		ContentType:   aws.String(doc.ContentType),
		ContentLength: aws.Int64(int64(len(doc.Body))),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", a.bucket, key, err)
	}

	return key, nil
}

// Key is the object key for an export generated at t.
func Key(accountID int64, filename string, t time.Time, id string) string {
	t = t.UTC()
	return path.Join(
		"exports",
		fmt.Sprintf("%d", accountID),
		t.Format("2006"), t.Format("01"), t.Format("02"),
		id+"_"+filename,
	)
}
