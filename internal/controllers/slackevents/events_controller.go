package slackevents

import (
	"bytes"
	"context"

	"github.com/DIMO-Network/slack-onboarding-bot/internal/dispatcher"
	"github.com/gofiber/fiber/v2"
)

type Dispatcher interface {
	Receive(body []byte) (dispatcher.Ack, *dispatcher.Job)
	Run(ctx context.Context, job *dispatcher.Job) error
}

type Executor interface {
	Submit(fn func(ctx context.Context))
}

// EventsController receives Slack Events API deliveries.
type EventsController struct {
	dispatcher Dispatcher
	executor   Executor
}

// NewEventsController creates a new EventsController.
func NewEventsController(d Dispatcher, executor Executor) *EventsController {
	return &EventsController{
		dispatcher: d,
		executor:   executor,
	}
}

// HandleEvent answers a delivery right away and hands any resulting work to the executor,
// so a failing handler never changes the status Slack sees.
func (e *EventsController) HandleEvent(c *fiber.Ctx) error {
	// fiber reuses the request buffer once the handler returns
	body := bytes.Clone(c.Body())

	ack, job := e.dispatcher.Receive(body)
	if job != nil {
		e.executor.Submit(func(ctx context.Context) {
			_ = e.dispatcher.Run(ctx, job)
		})
	}

	if len(ack.Body) == 0 {
		// SendStatus would fill the body with the status text
		c.Status(ack.Status)
		return nil
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(ack.Status).Send(ack.Body)
}
