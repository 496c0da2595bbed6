package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	appconfig "ajcc-portal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archive mirrors uploaded roster spreadsheets to S3-compatible object
// storage so imports can be audited after the fact. Optional: when no bucket
// is configured every method is a cheap no-op.

type Archive struct {
	Endpoint     string
	BaseURL      string
	Bucket       string
	Region       string
	Prefix       string
	UsePathStyle bool

	s3Client *s3.Client
	uploader *manager.Uploader
}

// StoredFile describes an archived object.
type StoredFile struct {
	FileKey     string `json:"file_key"`
	DownloadURL string `json:"download_url"`
}

func New() *Archive {
	cfg := appconfig.Get().S3
	return &Archive{
		Endpoint:     cfg.Endpoint,
		BaseURL:      cfg.BaseURL,
		Bucket:       cfg.Bucket,
		Region:       cfg.Region,
		Prefix:       cfg.Prefix,
		UsePathStyle: cfg.UsePathStyle,
	}
}

// Enabled reports whether object storage is configured.
func (a *Archive) Enabled() bool {
	return a.Bucket != ""
}

func (a *Archive) initS3(ctx context.Context) error {
	if a.s3Client != nil {
		return nil
	}

	cfg := appconfig.Get().S3
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(a.Region),
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("load s3 config: %w", err)
	}

	a.s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if a.Endpoint != "" {
			o.BaseEndpoint = aws.String(a.Endpoint)
		}
		o.UsePathStyle = a.UsePathStyle
	})
	a.uploader = manager.NewUploader(a.s3Client)
	return nil
}

// Store uploads the raw file bytes and returns the object key plus a
// presigned download URL valid for one hour.
func (a *Archive) Store(ctx context.Context, filename, contentType string, data []byte) (*StoredFile, error) {
	if !a.Enabled() {
		return nil, nil
	}
	if err := a.initS3(ctx); err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(filename))
	key := path.Join(strings.Trim(a.Prefix, "/"), fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	key = strings.TrimLeft(key, "/")

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("archive upload: %w", err)
	}

	url, err := a.presignDownload(ctx, key, 3600)
	if err != nil {
		return nil, err
	}

	return &StoredFile{FileKey: key, DownloadURL: url}, nil
}

func (a *Archive) presignDownload(ctx context.Context, key string, expiresIn int64) (string, error) {
	presignClient := s3.NewPresignClient(a.s3Client)

	presignedReq, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.Bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(expiresIn) * time.Second
	})
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}

	return presignedReq.URL, nil
}
