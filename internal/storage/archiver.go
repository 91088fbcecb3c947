// Package storage 把生成的文档包归档到 S3 兼容的对象存储。
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/share_registry/configs"
)

const (
	bundlePrefix   = "bundles"
	zipContentType = "application/zip"
)

// ObjectPutter 是归档所需的最小对象存储接口，*minio.Client 满足它
type ObjectPutter interface {
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// BundleArchiver 把 zip 上传到 <bucket>/bundles/<文件名>
type BundleArchiver struct {
	client ObjectPutter
	bucket string
}

// NewBundleArchiver 使用已有客户端
func NewBundleArchiver(client ObjectPutter, bucket string) *BundleArchiver {
	return &BundleArchiver{client: client, bucket: bucket}
}

// NewMinioArchiver 连接对象存储，bucket 不存在时创建
func NewMinioArchiver(ctx context.Context, cfg configs.ObjectStoreConfig) (*BundleArchiver, error) {
	if !cfg.Enabled() {
		return nil, errors.New("对象存储未配置")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建对象存储客户端失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("检查 bucket %s 失败: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("创建 bucket %s 失败: %w", cfg.Bucket, err)
		}
	}
	return NewBundleArchiver(client, cfg.Bucket), nil
}

// Archive 上传 zipPath 并返回对象键
func (a *BundleArchiver) Archive(ctx context.Context, zipPath string) (string, error) {
	key := path.Join(bundlePrefix, filepath.Base(zipPath))
	if _, err := a.client.FPutObject(ctx, a.bucket, key, zipPath, minio.PutObjectOptions{ContentType: zipContentType}); err != nil {
		return "", fmt.Errorf("上传 %s 失败: %w", key, err)
	}
	return key, nil
}
