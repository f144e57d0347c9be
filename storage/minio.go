package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"AmbientFM/config"
	"AmbientFM/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectInfo 文件信息
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// SyncResult 同步结果
type SyncResult struct {
	Downloaded []string
	Skipped    []string
	Failed     []string
}

// MinioClient 封装了 MinIO 客户端，只读访问音频存储桶
type MinioClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinioClient 创建 MinIO 客户端并确认存储桶存在
func NewMinioClient(ctx context.Context, cfg *config.Config) (*MinioClient, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
		Region: cfg.MinioRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 MinIO 客户端失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("检查存储桶失败: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("存储桶 %s 不存在", cfg.MinioBucket)
	}

	return &MinioClient{client: client, bucketName: cfg.MinioBucket}, nil
}

// ListSounds 列出 prefix 下可作为音频同步的对象
func (m *MinioClient) ListSounds(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo
	for object := range m.client.ListObjects(ctx, m.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("列出对象时出错: %w", object.Err)
		}
		if _, ok := localName(prefix, object.Key); !ok {
			continue
		}
		objects = append(objects, ObjectInfo{
			Key:          object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}
	return objects, nil
}

// SyncSounds downloads every object under prefix into dir. Files already present
// with the same size are left alone.
func (m *MinioClient) SyncSounds(ctx context.Context, prefix, dir string) (*SyncResult, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sound directory %s: %w", dir, err)
	}

	objects, err := m.ListSounds(ctx, prefix)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, object := range objects {
		name, _ := localName(prefix, object.Key)
		target := filepath.Join(dir, name)

		if !needsDownload(target, object.Size) {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		if err := m.client.FGetObject(ctx, m.bucketName, object.Key, target, minio.GetObjectOptions{}); err != nil {
			logger.Error("[Storage] 下载音频失败", logger.String("key", object.Key), logger.ErrorField(err))
			result.Failed = append(result.Failed, name)
			continue
		}
		logger.Info("[Storage] 音频已下载", logger.String("key", object.Key), logger.String("path", target))
		result.Downloaded = append(result.Downloaded, name)
	}
	return result, nil
}

// localName maps an object key to a flat file name in the sound directory.
// Folder markers, nested keys and hidden files are not synced.
func localName(prefix, key string) (string, bool) {
	if !strings.HasPrefix(key, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(key, prefix)
	if name == "" || strings.Contains(name, "/") || strings.HasPrefix(name, ".") {
		return "", false
	}
	return name, true
}

func needsDownload(path string, size int64) bool {
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.IsDir() || info.Size() != size
}
