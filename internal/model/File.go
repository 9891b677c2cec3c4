package model

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
)

type File struct {
	BaseModel
	FileName       string `gorm:"type:text;not null" json:"fileName"`
	UniqueFileName string `gorm:"type:text;not null;uniqueIndex" json:"uniqueFileName"`
	BucketName     string `gorm:"type:text;not null" json:"bucketName"`
	Size           int64  `gorm:"type:bigint;not null" json:"size"`
}

func (f File) TableName() string {
	return "files"
}

func (f File) ToPresignedUrl(ctx context.Context, s3 *minio.Client) (string, error) {
	if f.BucketName == "" || f.UniqueFileName == "" {
		return "", errors.New("bucket name and unique file name cannot be empty")
	}

	// 60min expiration time
	presignedURL, err := s3.PresignedGetObject(ctx, f.BucketName, f.UniqueFileName, time.Minute*60, nil)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}

func (f File) Delete(ctx context.Context, s3 *minio.Client) error {
	if f.BucketName == "" || f.UniqueFileName == "" {
		return errors.New("bucket name and unique file name cannot be empty")
	}

	return s3.RemoveObject(ctx, f.BucketName, f.UniqueFileName, minio.RemoveObjectOptions{})
}

func (f File) ToBaseFilename() string {
	return filepath.Base(f.FileName)
}
