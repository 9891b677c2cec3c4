package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/renovalte/renovalte/internal/apperror"
	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/mailer"
	"github.com/renovalte/renovalte/internal/repository"
	"github.com/renovalte/renovalte/internal/util"
	"go.uber.org/zap"
)

// InvitationService ensures an offer and upload token exist per invited
// contractor and hands the upload link to the mailer.
type InvitationService struct {
	repo   *repository.Repository
	mailer mailer.Client
	cfg    *config.Config
	logger *zap.SugaredLogger
}

func NewInvitationService(repo *repository.Repository, mail mailer.Client, cfg *config.Config, logger *zap.SugaredLogger) *InvitationService {
	// For unit test
	if logger == nil {
		logger = util.NewTestLogger()
	}

	return &InvitationService{repo: repo, mailer: mail, cfg: cfg, logger: logger}
}

type InviteResult struct {
	ContractorID uint   `json:"contractorId"`
	OfferID      uint   `json:"offerId"`
	UploadURL    string `json:"uploadUrl"`
}

// UploadURL builds the absolute single-use upload link for a token.
func (s InvitationService) UploadURL(token string) string {
	return fmt.Sprintf("%s/offers/upload/%s/", strings.TrimRight(s.cfg.App.SITE_URL, "/"), token)
}

// GenerateUploadLinks ensures an offer and token per contractor and returns the
// upload links without sending any mail. The project must belong to the caller.
func (s *InvitationService) GenerateUploadLinks(ctx context.Context, userId, projectId uint, contractorIds []uint) ([]InviteResult, error) {
	if len(contractorIds) == 0 {
		return nil, apperror.NewValidationError("contractorIds", "no contractors selected")
	}

	if _, err := s.repo.Project.GetByIdForUser(ctx, nil, projectId, userId); err != nil {
		return nil, err
	}

	results := make([]InviteResult, 0, len(contractorIds))
	for _, contractorId := range dedupe(contractorIds) {
		offer, err := s.repo.Offer.EnsureOffer(ctx, nil, contractorId, projectId, userId)
		if err != nil {
			return nil, err
		}

		token, err := s.repo.Offer.IssueToken(ctx, nil, offer)
		if err != nil {
			return nil, err
		}

		results = append(results, InviteResult{
			ContractorID: contractorId,
			OfferID:      offer.ID,
			UploadURL:    s.UploadURL(token),
		})
	}

	return results, nil
}

// InviteContractors runs the full invitation batch: per contractor it
// get-or-creates the offer, issues (or reuses) the upload token and emails the
// link. A missing contractor aborts the batch with NotFoundError; a failed
// delivery aborts it with DeliveryError naming the recipient. Offers and tokens
// created before the failure stay committed, so a retry resends the same links
// instead of minting new ones.
//
// Returns the per-contractor results processed before any failure.
func (s *InvitationService) InviteContractors(ctx context.Context, userId, projectId uint, contractorIds []uint, subject, body string) ([]InviteResult, error) {
	if len(contractorIds) == 0 {
		return nil, apperror.NewValidationError("contractor_ids", "no contractors selected")
	}

	project, err := s.repo.Project.GetByIdForUser(ctx, nil, projectId, userId)
	if err != nil {
		return nil, err
	}

	results := make([]InviteResult, 0, len(contractorIds))
	for _, contractorId := range dedupe(contractorIds) {
		contractor, err := s.repo.Contractor.GetById(ctx, nil, contractorId)
		if err != nil {
			return results, err
		}

		offer, err := s.repo.Offer.EnsureOffer(ctx, nil, contractorId, projectId, userId)
		if err != nil {
			return results, err
		}

		token, err := s.repo.Offer.IssueToken(ctx, nil, offer)
		if err != nil {
			return results, err
		}

		uploadURL := s.UploadURL(token)

		// A stuck mail provider fails one recipient, not the whole process.
		sendCtx, cancel := context.WithTimeout(ctx, s.cfg.Mail.SendTimeout)
		_, err = s.mailer.Send(sendCtx, mailer.TemplateOfferInvitation, contractor.Name, contractor.Email, mailer.OfferInvitationData{
			ContractorName: contractor.Name,
			ProjectName:    project.Name,
			Subject:        subject,
			Body:           body,
			UploadURL:      uploadURL,
		})
		cancel()
		if err != nil {
			s.logger.Errorf("Invitation mail failed for contractor %d (%s): %v", contractorId, contractor.Email, err)
			return results, apperror.NewDeliveryError(contractor.Email, err)
		}

		s.logger.Infof("Invitation sent to contractor %d (%s) for project %d", contractorId, contractor.Email, projectId)
		results = append(results, InviteResult{
			ContractorID: contractorId,
			OfferID:      offer.ID,
			UploadURL:    uploadURL,
		})
	}

	return results, nil
}

// dedupe keeps first occurrences in the caller-supplied order.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
