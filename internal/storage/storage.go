package storage

import (
	"context"
	"mime/multipart"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/model"
	"github.com/renovalte/renovalte/internal/util"
)

// OfferLetterStore persists submitted offer letters under the "offers"
// namespace of the object store. It is an interface so the upload flow can be
// exercised without a live minio endpoint.
type OfferLetterStore interface {
	SaveOfferLetter(ctx context.Context, offerId uint, fileHeader *multipart.FileHeader) (*model.File, error)
	RemoveOfferLetter(ctx context.Context, file *model.File) error
}

func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: "us-east-1",
	})
}

type MinioOfferLetterStore struct {
	s3     *minio.Client
	bucket string
}

func NewMinioOfferLetterStore(s3 *minio.Client, bucket string) *MinioOfferLetterStore {
	return &MinioOfferLetterStore{s3: s3, bucket: bucket}
}

func (s MinioOfferLetterStore) SaveOfferLetter(ctx context.Context, offerId uint, fileHeader *multipart.FileHeader) (*model.File, error) {
	info, err := util.UploadFileToS3ByFileHeader(ctx, fileHeader, &util.FileUploadOptions{
		DirectoryPath: util.GetOfferDirectoryPath(offerId),
		UniquePrefix:  true,
		Bucket:        s.bucket,
		S3:            s.s3,
	})
	if err != nil {
		return nil, err
	}

	return &model.File{
		FileName:       util.ToOfferDirectoryPath(offerId, fileHeader.Filename),
		UniqueFileName: info.Key,
		BucketName:     info.Bucket,
		Size:           info.Size,
	}, nil
}

func (s MinioOfferLetterStore) RemoveOfferLetter(ctx context.Context, file *model.File) error {
	return file.Delete(ctx, s.s3)
}
