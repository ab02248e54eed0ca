package objectstore

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/amirrezaask/setadt/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	_MINIO_HEALTH_CHECK_AFTER = time.Second * 2
)

var ErrNoObject = errors.New("no such object")

type Config struct {
	Endpoint       string
	BucketName     string
	AccessID       string
	SecretAccessID string
	Region         string
	Secure         bool
}

type MinioClient struct {
	bucketName string

	c               *minio.Client
	stopHealthCheck func()
}

func NewMinio(ctx context.Context, cfg Config) (*MinioClient, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Region: region,
		Creds:  credentials.NewStaticV4(cfg.AccessID, cfg.SecretAccessID, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, errors.Wrap(err, "minio client cannot be created")
	}
	stop, err := client.HealthCheck(_MINIO_HEALTH_CHECK_AFTER)
	if err != nil {
		return nil, errors.Wrap(err, "cannot start minio health check")
	}
	m := &MinioClient{c: client, bucketName: cfg.BucketName, stopHealthCheck: stop}

	if !client.IsOnline() {
		m.Close()
		return nil, errors.Newf("minio endpoint %s is offline", cfg.Endpoint)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		m.Close()
		return nil, errors.Wrap(err, "minio bucket exists failed")
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: region})
		if err != nil {
			m.Close()
			return nil, errors.Wrap(err, "cannot make new minio bucket")
		}
	}

	return m, nil
}

// Close stops the background health check.
func (m *MinioClient) Close() {
	if m.stopHealthCheck != nil {
		m.stopHealthCheck()
	}
}

func (m *MinioClient) Put(ctx context.Context, name string, data []byte) error {
	_, err := m.c.PutObject(ctx, m.bucketName, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return errors.Wrap(err, "cannot put object %s/%s", m.bucketName, name)
}

func (m *MinioClient) Get(ctx context.Context, name string) ([]byte, error) {
	obj, err := m.c.GetObject(ctx, m.bucketName, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "cannot get object %s/%s", m.bucketName, name)
	}
	defer obj.Close()

	bs, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNoObject
		}
		return nil, errors.Wrap(err, "cannot read object %s/%s", m.bucketName, name)
	}
	return bs, nil
}
