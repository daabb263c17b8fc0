package bootstrap

import (
	"log"

	"wisenotes-be/internal/config"
	"wisenotes-be/internal/controller"
	"wisenotes-be/internal/pkg/identity"
	"wisenotes-be/internal/pkg/logger"
	"wisenotes-be/internal/pkg/serverutils"
	"wisenotes-be/internal/repository/unitofwork"
	"wisenotes-be/internal/service"
	"wisenotes-be/internal/validation"
	pktNats "wisenotes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const activityTopic = "resource-activity"

type Container struct {
	// Controllers
	NotebookController controller.INotebookController
	NoteController     controller.INoteController

	// Request middleware
	AuthMiddleware fiber.Handler

	// Background services (main.go runs these)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	policy := validation.NewPolicy(cfg.Validation.TitleMaxLength, cfg.Validation.ContentMaxLength)
	resolver := identity.NewClaimsResolver(cfg.Auth.IdentityClaim)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional; without it lifecycle events stay in-process only.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, activityTopic)
	consumerService := service.NewConsumerService(pubSub, activityTopic, uowFactory, sysLogger)

	notebookService := service.NewNotebookService(uowFactory, policy, publisherService, natsPub, sysLogger)
	noteService := service.NewNoteService(uowFactory, policy, publisherService, natsPub, sysLogger)

	// 4. Controllers
	notebookController := controller.NewNotebookController(notebookService, resolver)
	noteController := controller.NewNoteController(noteService, resolver)

	return &Container{
		NotebookController: notebookController,
		NoteController:     noteController,
		AuthMiddleware:     serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}
