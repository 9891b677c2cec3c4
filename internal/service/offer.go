package service

import (
	"context"
	"mime/multipart"

	"github.com/renovalte/renovalte/internal/model"
	"github.com/renovalte/renovalte/internal/repository"
	"github.com/renovalte/renovalte/internal/storage"
	"github.com/renovalte/renovalte/internal/util"
	"go.uber.org/zap"
)

// OfferSubmissionService handles the token-gated upload flow.
type OfferSubmissionService struct {
	repo   *repository.Repository
	store  storage.OfferLetterStore
	logger *zap.SugaredLogger
}

func NewOfferSubmissionService(repo *repository.Repository, store storage.OfferLetterStore, logger *zap.SugaredLogger) *OfferSubmissionService {
	// For unit test
	if logger == nil {
		logger = util.NewTestLogger()
	}

	return &OfferSubmissionService{repo: repo, store: store, logger: logger}
}

// ResolveToken looks up the offer a live upload token points at, for rendering
// the upload form. Returns apperror.ErrInvalidToken for anything that does not
// resolve.
func (s *OfferSubmissionService) ResolveToken(ctx context.Context, token string) (*model.Offer, error) {
	return s.repo.Offer.GetByToken(ctx, nil, token)
}

// SubmitOffer consumes the token: stores the letter, records the file and
// transitions the offer to submitted. If a concurrent submission wins the
// conditional update, the stored object is removed again and the caller sees
// apperror.ErrInvalidToken.
func (s *OfferSubmissionService) SubmitOffer(ctx context.Context, token string, fileHeader *multipart.FileHeader, notes string) (*model.Offer, error) {
	offer, err := s.repo.Offer.GetByToken(ctx, nil, token)
	if err != nil {
		return nil, err
	}

	letterFile, err := s.store.SaveOfferLetter(ctx, offer.ID, fileHeader)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.File.Create(ctx, nil, letterFile); err != nil {
		if removeErr := s.store.RemoveOfferLetter(ctx, letterFile); removeErr != nil {
			s.logger.Errorf("Failed to remove orphaned offer letter %s: %v", letterFile.UniqueFileName, removeErr)
		}
		return nil, err
	}

	submitted, err := s.repo.Offer.Consume(ctx, nil, offer, letterFile, notes)
	if err != nil {
		if removeErr := s.store.RemoveOfferLetter(ctx, letterFile); removeErr != nil {
			s.logger.Errorf("Failed to remove orphaned offer letter %s: %v", letterFile.UniqueFileName, removeErr)
		}
		return nil, err
	}

	s.logger.Infof("Offer %d submitted by contractor %d", submitted.ID, submitted.ContractorID)

	return submitted, nil
}
