package repository

import (
	"context"
	"errors"

	"github.com/renovalte/renovalte/internal/apperror"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Create project %q for user: %d \n", project.Name, project.UserID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Project{}).Create(project).Error; err != nil {
		return project, err
	}

	return project, nil
}

// GetByIdForUser resolves a project only within its owner's scope. A project
// owned by someone else is reported the same way as a missing one.
func (pr ProjectRepository) GetByIdForUser(ctx context.Context, tx *gorm.DB, projectId, userId uint) (*model.Project, error) {
	pr.logger.Debugf("Get project by id: %d for user: %d \n", projectId, userId)

	db := pr.getDB(tx)
	var project *model.Project

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND user_id = ?", projectId, userId).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("project", projectId)
		}
		return nil, err
	}

	return project, nil
}

func (pr ProjectRepository) ListForUser(ctx context.Context, tx *gorm.DB, userId uint) ([]model.Project, error) {
	pr.logger.Debugf("List projects for user: %d \n", userId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projects []model.Project
	err := db.WithContext(ctx).Model(&model.Project{}).
		Where("user_id = ?", userId).Order("id ASC").Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (pr ProjectRepository) Update(ctx context.Context, tx *gorm.DB, project *model.Project) error {
	pr.logger.Debugf("Update project: %d \n", project.ID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Save(project).Error
}

// Delete removes the project within the owner's scope; dependent offers go with
// it through the foreign-key cascade.
func (pr ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, projectId, userId uint) error {
	pr.logger.Debugf("Delete project: %d for user: %d \n", projectId, userId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Where("id = ? AND user_id = ?", projectId, userId).Delete(&model.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("project", projectId)
	}

	return nil
}
