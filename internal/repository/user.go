package repository

import (
	"context"

	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId uint) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %d \n", userId)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s \n", email)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser *model.User) error {
	ur.logger.Debugf("Create user with email: %s \n", newUser.Email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Create(newUser).Error; err != nil {
		return err
	}

	return nil
}
