package app

import (
	"context"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/slack-onboarding-bot/internal/clients/slackapi"
	"github.com/DIMO-Network/slack-onboarding-bot/internal/config"
	"github.com/DIMO-Network/slack-onboarding-bot/internal/controllers/slackevents"
	"github.com/DIMO-Network/slack-onboarding-bot/internal/dispatcher"
	"github.com/DIMO-Network/slack-onboarding-bot/internal/services/onboarding"
	"github.com/DIMO-Network/slack-onboarding-bot/internal/services/responder"
	"github.com/DIMO-Network/slack-onboarding-bot/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// CreateServers builds the service graph. The returned Worker must be drained
// with Wait after the HTTP server stops.
func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, *dispatcher.Worker) {
	client := slackapi.New(settings)

	onboardingSvc := onboarding.NewService(onboarding.NewStore(), client)
	d := dispatcher.New(dispatcher.Config{
		VerificationToken: settings.SlackVerificationToken,
		DedupTTL:          settings.EventDedupTTL,
	}, responder.New(client), onboardingSvc, logger)

	worker := dispatcher.NewWorker(ctx, settings.WorkerLimit, logger)
	eventsController := slackevents.NewEventsController(d, worker)

	return CreateFiberApp(logger, eventsController, settings), worker
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, eventsController *slackevents.EventsController, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Slack Onboarding Bot...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	handlers := []fiber.Handler{eventsController.HandleEvent}
	if settings.SlackSigningSecret != "" {
		handlers = append([]fiber.Handler{middleware.SlackSignature(settings.SlackSigningSecret)}, handlers...)
	} else {
		logger.Warn().Msg("SLACK_SIGNING_SECRET not set, relying on the verification token only")
	}
	app.Post("/slack/events", handlers...)

	return app
}
