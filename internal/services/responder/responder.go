package responder

import (
	"context"
	"fmt"
	"sort"

	"github.com/DIMO-Network/slack-onboarding-bot/internal/clients/slackapi"
)

type SlackClient interface {
	PostMessage(ctx context.Context, msg slackapi.Message) (string, error)
	ListPinnedItems(ctx context.Context, channel string) ([]slackapi.PinnedItem, error)
}

// Responder answers the canned chat commands.
type Responder struct {
	client SlackClient
}

func New(client SlackClient) *Responder {
	return &Responder{client: client}
}

// Greet says hello to user in channel.
func (r *Responder) Greet(ctx context.Context, user, channel string) error {
	_, err := r.client.PostMessage(ctx, slackapi.Message{
		Channel: channel,
		Text:    greeting(user),
	})
	if err != nil {
		return fmt.Errorf("failed to greet: %w", err)
	}
	return nil
}

// ListPinnedShows posts every pinned message of channel as "text - permalink",
// one message each, ordered by text. Items with equal text keep Slack's order.
func (r *Responder) ListPinnedShows(ctx context.Context, channel string) error {
	items, err := r.client.ListPinnedItems(ctx, channel)
	if err != nil {
		return err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Text < items[j].Text
	})
	for i, item := range items {
		_, err := r.client.PostMessage(ctx, slackapi.Message{
			Channel: channel,
			Text:    item.Text + " - " + item.Permalink,
		})
		if err != nil {
			return fmt.Errorf("failed to post pinned show %d of %d: %w", i+1, len(items), err)
		}
	}
	return nil
}

func greeting(user string) string {
	return "Hello <@" + user + "> :wave:"
}
