package config

import (
	"errors"
	"time"
)

const (
	defaultEventDedupTTL = 10 * time.Minute
	defaultWorkerLimit   = 16
	defaultSlackTimeout  = 10 * time.Second
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	SlackBotToken          string `env:"SLACK_BOT_TOKEN"`
	SlackVerificationToken string `env:"SLACK_VERIFICATION_TOKEN"`
	// SlackSigningSecret enables X-Slack-Signature checks when set.
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET"`
	// SlackAPIURL overrides the Web API base URL. Must end with a slash.
	SlackAPIURL string `env:"SLACK_API_URL"`
	// SlackHTTPTimeout bounds every Web API call.
	SlackHTTPTimeout time.Duration `env:"SLACK_HTTP_TIMEOUT"`

	EventDedupTTL time.Duration `env:"EVENT_DEDUP_TTL"`
	WorkerLimit   int           `env:"WORKER_LIMIT"`
}

// ApplyDefaults fills in optional settings that were left empty.
func (s *Settings) ApplyDefaults() {
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = "slack-onboarding-bot"
	}
	if s.EventDedupTTL <= 0 {
		s.EventDedupTTL = defaultEventDedupTTL
	}
	if s.WorkerLimit <= 0 {
		s.WorkerLimit = defaultWorkerLimit
	}
	if s.SlackHTTPTimeout <= 0 {
		s.SlackHTTPTimeout = defaultSlackTimeout
	}
}

// Validate reports settings the service cannot start without.
func (s *Settings) Validate() error {
	var errs []error
	if s.SlackBotToken == "" {
		errs = append(errs, errors.New("SLACK_BOT_TOKEN is required"))
	}
	if s.SlackVerificationToken == "" {
		errs = append(errs, errors.New("SLACK_VERIFICATION_TOKEN is required"))
	}
	return errors.Join(errs...)
}
