package appcontext

import (
	"github.com/minio/minio-go/v7"
	"github.com/renovalte/renovalte/internal/auth"
	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/mailer"
	"github.com/renovalte/renovalte/internal/plan"
	"github.com/renovalte/renovalte/internal/repository"
	"github.com/renovalte/renovalte/internal/service"
	"github.com/renovalte/renovalte/internal/storage"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	// Invitation runs the offer-invitation batches.
	Invitation *service.InvitationService

	// Submission runs the token-gated offer upload flow.
	Submission *service.OfferSubmissionService

	// PlanGenerator is the injected external renovation-plan provider.
	PlanGenerator plan.Generator

	// LetterStore persists submitted offer letters.
	LetterStore storage.OfferLetterStore

	S3 *minio.Client
}
