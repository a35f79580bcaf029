package slackapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DIMO-Network/slack-onboarding-bot/internal/config"
	"github.com/slack-go/slack"
)

// Message is a chat message addressed to a channel.
type Message struct {
	Channel   string
	Text      string
	Blocks    []slack.Block
	Username  string
	IconEmoji string
}

func (m Message) options() []slack.MsgOption {
	opts := []slack.MsgOption{slack.MsgOptionText(m.Text, false)}
	if len(m.Blocks) > 0 {
		opts = append(opts, slack.MsgOptionBlocks(m.Blocks...))
	}
	if m.Username != "" {
		opts = append(opts, slack.MsgOptionUsername(m.Username))
	}
	if m.IconEmoji != "" {
		opts = append(opts, slack.MsgOptionIconEmoji(m.IconEmoji))
	}
	return opts
}

// PinnedItem is a pinned message as returned by pins.list.
type PinnedItem struct {
	Text      string
	Permalink string
}

// Client for the Slack Web API.
type Client struct {
	api *slack.Client
}

// New creates a new instance of Client authorized with the bot token.
func New(settings *config.Settings) *Client {
	var opts []slack.Option
	if settings.SlackAPIURL != "" {
		opts = append(opts, slack.OptionAPIURL(settings.SlackAPIURL))
	}
	if settings.SlackHTTPTimeout > 0 {
		opts = append(opts, slack.OptionHTTPClient(&http.Client{Timeout: settings.SlackHTTPTimeout}))
	}
	return &Client{
		api: slack.New(settings.SlackBotToken, opts...),
	}
}

// PostMessage posts msg to its channel and returns the new message timestamp.
func (c *Client) PostMessage(ctx context.Context, msg Message) (string, error) {
	_, ts, err := c.api.PostMessageContext(ctx, msg.Channel, msg.options()...)
	if err != nil {
		return "", fmt.Errorf("failed to post message to channel %s: %w", msg.Channel, err)
	}
	return ts, nil
}

// UpdateMessage replaces the message identified by ts and returns the timestamp Slack reports for it.
func (c *Client) UpdateMessage(ctx context.Context, ts string, msg Message) (string, error) {
	_, newTS, _, err := c.api.UpdateMessageContext(ctx, msg.Channel, ts, msg.options()...)
	if err != nil {
		return "", fmt.Errorf("failed to update message %s in channel %s: %w", ts, msg.Channel, err)
	}
	return newTS, nil
}

// ListPinnedItems returns the pinned messages of a channel in the order Slack returns them.
// Pinned files carry no message and are skipped.
func (c *Client) ListPinnedItems(ctx context.Context, channel string) ([]PinnedItem, error) {
	items, _, err := c.api.ListPinsContext(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("failed to list pins for channel %s: %w", channel, err)
	}
	pinned := make([]PinnedItem, 0, len(items))
	for _, item := range items {
		if item.Message == nil {
			continue
		}
		pinned = append(pinned, PinnedItem{
			Text:      item.Message.Text,
			Permalink: item.Message.Permalink,
		})
	}
	return pinned, nil
}
