package util

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// GetOfferDirectoryPath is the object-storage namespace for submitted offer
// letters, keyed per offer.
func GetOfferDirectoryPath(offerId uint) string {
	return fmt.Sprintf("offers/%d", offerId)
}

func ToOfferDirectoryPath(offerId uint, filename string) string {
	return filepath.Join(GetOfferDirectoryPath(offerId), filepath.Base(filename))
}

// AddUniquePrefixToFileName prevents overwrites when two uploads share a name.
func AddUniquePrefixToFileName(filename string) string {
	return uuid.NewString() + "_" + filepath.Base(filename)
}

func createBucketIfNotExists(ctx context.Context, s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err = s3.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

type FileUploadOptions struct {
	// DirectoryPath prefixes the object key. For example "offers/123" with file
	// "letter.pdf" results in "offers/123/letter.pdf".
	DirectoryPath string
	UniquePrefix  bool
	Bucket        string
	S3            *minio.Client
}

func UploadFileToS3ByFileHeader(ctx context.Context, fileHeader *multipart.FileHeader, fuo *FileUploadOptions) (minio.UploadInfo, error) {
	if err := createBucketIfNotExists(ctx, fuo.S3, fuo.Bucket); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fileName := prepareFileName(fileHeader.Filename, fuo)

	info, err := fuo.S3.PutObject(
		ctx,
		fuo.Bucket,
		fileName,
		file,
		fileHeader.Size,
		minio.PutObjectOptions{
			ContentType: fileHeader.Header.Get("Content-Type"),
		},
	)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return info, nil
}

// Generates the final file name with uniqueness and prefix
func prepareFileName(originalName string, fuo *FileUploadOptions) string {
	fileName := originalName

	if fuo != nil {
		if fuo.UniquePrefix {
			fileName = AddUniquePrefixToFileName(originalName)
		}

		if fuo.DirectoryPath != "" {
			fileName = filepath.Join(fuo.DirectoryPath, fileName)
		}
	}

	return fileName
}
