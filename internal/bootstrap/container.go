package bootstrap

import (
	"dental-assistant-be/internal/config"
	"dental-assistant-be/internal/controller"
	"dental-assistant-be/internal/pkg/logger"
	"dental-assistant-be/internal/repository/unitofwork"
	"dental-assistant-be/internal/service"
	"dental-assistant-be/pkg/assistant"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PatientController controller.IPatientController
	ChatController    controller.IChatController

	// Background services (exposed for main.go to run)
	AuditService service.IAuditService

	// Shared infrastructure
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	publisherService := service.NewPublisherService(cfg.App.AuditTopic, pubSub)
	auditService := service.NewAuditService(pubSub, cfg.App.AuditTopic, auditLogger)

	// 3. Assistant client
	aiClient := assistant.NewHTTPClient(
		cfg.Assistant.BaseURL,
		cfg.Assistant.Enabled,
		cfg.Assistant.Timeout,
	)

	// 4. Services
	patientService := service.NewPatientService(uowFactory, publisherService, sysLogger)
	chatService := service.NewChatService(uowFactory, aiClient, publisherService, sysLogger)

	// 5. Controllers
	return &Container{
		PatientController: controller.NewPatientController(patientService),
		ChatController:    controller.NewChatController(chatService),

		AuditService: auditService,
		Logger:       sysLogger,
	}
}
