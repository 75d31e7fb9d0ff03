package bootstrap

import (
	"log"

	"twin-chat-be/internal/config"
	"twin-chat-be/internal/constant"
	"twin-chat-be/internal/controller"
	"twin-chat-be/internal/pkg/logger"
	"twin-chat-be/internal/repository/memory"
	"twin-chat-be/internal/repository/unitofwork"
	"twin-chat-be/internal/service"
	"twin-chat-be/pkg/llm/factory"
	"twin-chat-be/pkg/transcript"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	ChatController    controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider (credentials already checked at startup)
	llmProvider, err := factory.NewLLMProvider(cfg)
	if err != nil {
		log.Panicf("Unable to initialize LLM provider: %v", err)
	}

	// 4. Services
	sessionCache := memory.NewSessionCache()
	sessionService := service.NewSessionService(uowFactory, sessionCache)

	assembler := transcript.NewAssembler(uowFactory, constant.ChatHistoryWindow)
	chatService := service.NewChatService(uowFactory, sessionService, assembler, llmProvider, pubSub, sysLogger)

	consumerService := service.NewConsumerService(pubSub, constant.ChatTurnCompletedTopic, uowFactory, sysLogger)

	// 5. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		ChatController:    controller.NewChatController(chatService),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
