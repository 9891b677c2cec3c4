package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/renovalte/renovalte/internal/apperror"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/model"
	"gorm.io/gorm"
)

type ContractorRepository struct {
	*baseRepository
}

func (cr ContractorRepository) GetById(ctx context.Context, tx *gorm.DB, contractorId uint) (*model.Contractor, error) {
	cr.logger.Debugf("Get contractor by id: %d \n", contractorId)

	db := cr.getDB(tx)
	var contractor *model.Contractor

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := db.WithContext(ctx).Model(&model.Contractor{}).Preload("ProjectTypes").
		Where("id = ?", contractorId).First(&contractor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("contractor", contractorId)
		}
		return nil, err
	}

	return contractor, nil
}

// FindMatching returns the contractors whose capability set contains the given
// project type, optionally narrowed by case-insensitive city/state substring
// filters (combined with AND). Results are ordered by rating descending with
// unrated contractors last, ties broken by name ascending.
//
// Blank filters are skipped, so FindMatching("", "", "") lists the whole
// directory.
func (cr ContractorRepository) FindMatching(ctx context.Context, tx *gorm.DB, projectType, city, state string) ([]model.Contractor, error) {
	cr.logger.Debugf("Find matching contractors, projectType: %q city: %q state: %q \n", projectType, city, state)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Contractor{}).Preload("ProjectTypes")

	if pt := constant.NormalizeProjectType(projectType); pt != "" {
		query = query.
			Joins("JOIN contractor_project_types ON contractor_project_types.contractor_id = contractors.id").
			Where("contractor_project_types.project_type = ?", pt)
	}

	if city = strings.TrimSpace(city); city != "" {
		query = query.Where("LOWER(contractors.city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}

	if state = strings.TrimSpace(state); state != "" {
		query = query.Where("LOWER(contractors.state) LIKE ?", "%"+strings.ToLower(state)+"%")
	}

	var contractors []model.Contractor
	err := query.
		Order("contractors.rating DESC NULLS LAST").
		Order("contractors.name ASC").
		Find(&contractors).Error
	if err != nil {
		return nil, err
	}

	return contractors, nil
}

// UpsertByName creates the contractor or updates the existing row with the same
// name, replacing its capability set. Used by the CSV importer and seed tooling.
func (cr ContractorRepository) UpsertByName(ctx context.Context, tx *gorm.DB, contractor *model.Contractor, projectTypes []constant.ProjectType) (created bool, err error) {
	cr.logger.Debugf("Upsert contractor by name: %s \n", contractor.Name)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	txErr := cr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		var existing model.Contractor
		err := tx.Model(&model.Contractor{}).Where("name = ?", contractor.Name).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if existing.ID != 0 {
			contractor.ID = existing.ID
			if err := tx.Where("contractor_id = ?", existing.ID).Delete(&model.ContractorProjectType{}).Error; err != nil {
				return err
			}
		} else {
			created = true
		}

		contractor.ProjectTypes = nil
		for _, pt := range projectTypes {
			contractor.ProjectTypes = append(contractor.ProjectTypes, model.ContractorProjectType{ProjectType: pt})
		}

		return tx.Save(contractor).Error
	})

	return created, txErr
}
