package repository

import (
	"context"
	"errors"
	"time"

	"github.com/renovalte/renovalte/internal/apperror"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/model"
	"github.com/renovalte/renovalte/internal/util"
	"gorm.io/gorm"
)

type OfferRepository struct {
	*baseRepository
}

// tokenIssueAttempts bounds the retry loop on a unique-index collision.
const tokenIssueAttempts = 3

// EnsureOffer get-or-creates the offer for a (contractor, project) pair. An
// existing row is returned unchanged, whoever invited it and whatever state it
// is in. Two concurrent calls for the same pair race on the unique index; the
// loser re-reads the winner's row.
func (or OfferRepository) EnsureOffer(ctx context.Context, tx *gorm.DB, contractorId, projectId, userId uint) (*model.Offer, error) {
	or.logger.Debugf("Ensure offer for contractor: %d project: %d \n", contractorId, projectId)

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var contractorCount int64
	if err := db.WithContext(ctx).Model(&model.Contractor{}).Where("id = ?", contractorId).Count(&contractorCount).Error; err != nil {
		return nil, err
	}
	if contractorCount == 0 {
		return nil, apperror.NewNotFoundError("contractor", contractorId)
	}

	var projectCount int64
	if err := db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", projectId).Count(&projectCount).Error; err != nil {
		return nil, err
	}
	if projectCount == 0 {
		return nil, apperror.NewNotFoundError("project", projectId)
	}

	var offer model.Offer
	err := db.WithContext(ctx).Model(&model.Offer{}).
		Where("contractor_id = ? AND project_id = ?", contractorId, projectId).
		First(&offer).Error
	if err == nil {
		return &offer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	offer = model.Offer{
		ContractorID: contractorId,
		ProjectID:    projectId,
		UserID:       userId,
		Status:       constant.OfferStatusPending,
	}
	err = db.WithContext(ctx).Create(&offer).Error
	if err == nil {
		return &offer, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	// Lost the race; the winner's row is the offer.
	err = db.WithContext(ctx).Model(&model.Offer{}).
		Where("contractor_id = ? AND project_id = ?", contractorId, projectId).
		First(&offer).Error
	if err != nil {
		return nil, err
	}

	return &offer, nil
}

// IssueToken returns the offer's upload token, generating and persisting a
// fresh one only if the offer does not hold one. A link already mailed out
// stays valid across invitation retries.
func (or OfferRepository) IssueToken(ctx context.Context, tx *gorm.DB, offer *model.Offer) (string, error) {
	or.logger.Debugf("Issue upload token for offer: %d \n", offer.ID)

	if offer.HasToken() {
		return *offer.Token, nil
	}

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var lastErr error
	for range tokenIssueAttempts {
		token, err := util.GenerateUploadToken()
		if err != nil {
			return "", err
		}

		err = db.WithContext(ctx).Model(&model.Offer{}).
			Where("id = ?", offer.ID).Update("token", token).Error
		if err == nil {
			offer.Token = &token
			return token, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}

// GetByToken resolves the offer currently holding the given upload token.
// Unknown and already-consumed tokens are indistinguishable to the caller.
func (or OfferRepository) GetByToken(ctx context.Context, tx *gorm.DB, token string) (*model.Offer, error) {
	or.logger.Debug("Get offer by upload token")

	if token == "" {
		return nil, apperror.ErrInvalidToken
	}

	db := or.getDB(tx)
	var offer *model.Offer

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := db.WithContext(ctx).Model(&model.Offer{}).
		Preload("Contractor").Preload("Project").
		Where("token = ?", token).First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrInvalidToken
		}
		return nil, err
	}

	return offer, nil
}

// Consume submits the offer: it attaches the letter file, appends notes, marks
// the offer submitted and clears the token, all in one conditional update
// guarded on the token still being in place. Of any concurrent submissions for
// the same token, exactly one succeeds; the rest see ErrInvalidToken.
func (or OfferRepository) Consume(ctx context.Context, tx *gorm.DB, offer *model.Offer, letterFile *model.File, notes string) (*model.Offer, error) {
	or.logger.Debugf("Consume upload token for offer: %d \n", offer.ID)

	if !offer.HasToken() {
		return nil, apperror.ErrInvalidToken
	}

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	newNotes := offer.Notes
	if notes != "" {
		if newNotes != "" {
			newNotes += "\n"
		}
		newNotes += notes
	}

	now := time.Now()
	res := db.WithContext(ctx).Model(&model.Offer{}).
		Where("id = ? AND token = ?", offer.ID, *offer.Token).
		Updates(map[string]any{
			"token":          nil,
			"status":         constant.OfferStatusSubmitted,
			"submitted_at":   now,
			"letter_file_id": letterFile.ID,
			"notes":          newNotes,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// A concurrent submission won; this token is spent.
		return nil, apperror.ErrInvalidToken
	}

	offer.Token = nil
	offer.Status = constant.OfferStatusSubmitted
	offer.SubmittedAt = &now
	offer.LetterFileID = &letterFile.ID
	offer.LetterFile = letterFile
	offer.Notes = newNotes

	return offer, nil
}

// ListForProject returns a project's offers for the owner's review.
func (or OfferRepository) ListForProject(ctx context.Context, tx *gorm.DB, projectId, userId uint) ([]model.Offer, error) {
	or.logger.Debugf("List offers for project: %d \n", projectId)

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var offers []model.Offer
	err := db.WithContext(ctx).Model(&model.Offer{}).
		Preload("Contractor").Preload("LetterFile").
		Where("project_id = ? AND user_id = ?", projectId, userId).
		Order("id ASC").Find(&offers).Error
	if err != nil {
		return nil, err
	}

	return offers, nil
}
