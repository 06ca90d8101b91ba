package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gatherly/gatherly/internal/config"
	"github.com/gatherly/gatherly/internal/helpers"
	"github.com/gatherly/gatherly/internal/models"
	"github.com/gatherly/gatherly/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger          *slog.Logger
	MongoDBClient   *mongo.Client
	TokenIssuer     *helpers.TokenIssuer
	AccountService  *services.AccountService
	EventService    *services.EventService
	BookingService  *services.BookingService
	FavoriteService *services.FavoriteService
	ReviewService   *services.ReviewService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
	issuer *helpers.TokenIssuer,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)
	google := helpers.NewGoogleVerifier(cfg.GoogleJWKSURL)

	return &Container{
		Logger:          logger,
		MongoDBClient:   mongoDBClient,
		TokenIssuer:     issuer,
		AccountService:  services.NewAccountService(repo, issuer, google, cld, cfg.BcryptCost),
		EventService:    services.NewEventService(repo),
		BookingService:  services.NewBookingService(repo),
		FavoriteService: services.NewFavoriteService(repo),
		ReviewService:   services.NewReviewService(repo),
	}
}
