package onboarding

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/slack-onboarding-bot/internal/clients/slackapi"
)

type SlackClient interface {
	PostMessage(ctx context.Context, msg slackapi.Message) (string, error)
	UpdateMessage(ctx context.Context, ts string, msg slackapi.Message) (string, error)
}

// Service runs the welcome message lifecycle: post it on start, then tick off
// the reaction and pin tasks by editing the same message.
type Service struct {
	store  *Store
	client SlackClient
}

// NewService creates a new Service.
func NewService(store *Store, client SlackClient) *Service {
	return &Service{store: store, client: client}
}

// StartOnboarding posts a fresh checklist to channel and tracks it for user.
// Starting again resets any progress.
func (s *Service) StartOnboarding(ctx context.Context, user, channel string) error {
	_, err := s.store.Start(Key{Channel: channel, User: user}, func() (string, error) {
		ts, err := s.client.PostMessage(ctx, BuildWelcomeMessage(channel, false, false))
		if err != nil {
			return "", fmt.Errorf("failed to post welcome message: %w", err)
		}
		return ts, nil
	})
	return err
}

// UpdateEmojiTask marks the reaction task done for the session in channel.
func (s *Service) UpdateEmojiTask(ctx context.Context, user, channel string) error {
	return s.completeTask(ctx, Key{Channel: channel, User: user}, func(sess *Session) {
		sess.ReactionTaskCompleted = true
	})
}

// UpdatePinTask marks the pin task done for the session in channel.
func (s *Service) UpdatePinTask(ctx context.Context, user, channel string) error {
	return s.completeTask(ctx, Key{Channel: channel, User: user}, func(sess *Session) {
		sess.PinTaskCompleted = true
	})
}

// Session returns a copy of the session for channel and user.
func (s *Service) Session(channel, user string) (Session, bool) {
	return s.store.Get(Key{Channel: channel, User: user})
}

func (s *Service) completeTask(ctx context.Context, key Key, mark func(*Session)) error {
	_, err := s.store.Update(key, func(sess *Session) error {
		mark(sess)
		msg := BuildWelcomeMessage(sess.Channel, sess.ReactionTaskCompleted, sess.PinTaskCompleted)
		ts, err := s.client.UpdateMessage(ctx, sess.MessageTS, msg)
		if err != nil {
			return fmt.Errorf("failed to update welcome message: %w", err)
		}
		sess.MessageTS = ts
		return nil
	})
	if err != nil {
		return fmt.Errorf("channel %s user %s: %w", key.Channel, key.User, err)
	}
	return nil
}
