package appcontext

import (
	"github.com/piddash/pidgen/internal/auth"
	"github.com/piddash/pidgen/internal/config"
	"github.com/piddash/pidgen/internal/mailer"
	"github.com/piddash/pidgen/internal/refcache"
	"github.com/piddash/pidgen/internal/repository"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	// Logger lol....
	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	// RefCache serves the reference collections the dashboard joins against.
	RefCache *refcache.Cache
}
