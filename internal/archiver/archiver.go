/**
* Name: 			archiver.go
* Description: 		업로드된 이력서 원본 보관 (로컬 디렉터리 또는 S3 호환 버킷)
* Workflow: 		NewResumeKey로 키 생성, Put으로 저장. 저장 실패는 분석 응답에 영향 없음
 */

package archiver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Archiver interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._@-]+`)

// resumes/<email>/<yyyymmdd>-<uuid><ext>
func NewResumeKey(email, filename string, now time.Time) string {
	owner := unsafeKeyChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(email)), "_")
	if owner == "" {
		owner = "anonymous"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 6 {
		ext = ""
	}
	return fmt.Sprintf("resumes/%s/%s-%s%s", owner, now.UTC().Format("20060102"), uuid.NewString(), ext)
}

type LocalArchiver struct {
	dir string
	log *zap.Logger
}

func NewLocalArchiver(dir string, log *zap.Logger) (*LocalArchiver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewLocalArchiver(): failed to create directory: %w", err)
	}
	return &LocalArchiver{dir: dir, log: log}, nil
}

func (a *LocalArchiver) Put(_ context.Context, key, _ string, data []byte) error {
	path := filepath.Join(a.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	a.log.Debug("resume archived", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type S3Archiver struct {
	client *s3.Client
	bucket string
	log    *zap.Logger
}

// 키가 비어 있으면 기본 자격 증명 체인 사용. Endpoint가 있으면 path-style (R2, MinIO)
func NewS3Archiver(ctx context.Context, opts S3Options, log *zap.Logger) (*S3Archiver, error) {
	loaders := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loaders = append(loaders, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("NewS3Archiver(): failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Archiver{client: client, bucket: opts.Bucket, log: log}, nil
}

func (a *S3Archiver) Put(ctx context.Context, key, contentType string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := a.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	a.log.Debug("resume archived", zap.String("bucket", a.bucket), zap.String("key", key))
	return nil
}
