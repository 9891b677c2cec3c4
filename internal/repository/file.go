package repository

import (
	"context"

	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/model"
	"gorm.io/gorm"
)

type FileRepository struct {
	*baseRepository
}

func (fr FileRepository) Create(ctx context.Context, tx *gorm.DB, file *model.File) (*model.File, error) {
	fr.logger.Debugf("Create file record: %s \n", file.UniqueFileName)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.File{}).Create(file).Error; err != nil {
		return file, err
	}

	return file, nil
}
