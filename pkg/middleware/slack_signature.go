package middleware

import (
	"net/http"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/slack-go/slack"
)

const (
	headerSignature = "X-Slack-Signature"
	headerTimestamp = "X-Slack-Request-Timestamp"
)

// SlackSignature rejects requests whose X-Slack-Signature does not match the
// body signed with signingSecret, or whose timestamp is too old.
func SlackSignature(signingSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := http.Header{}
		header.Set(headerSignature, c.Get(headerSignature))
		header.Set(headerTimestamp, c.Get(headerTimestamp))

		verifier, err := slack.NewSecretsVerifier(header, signingSecret)
		if err != nil {
			return invalidSignature(err)
		}
		if _, err := verifier.Write(c.Body()); err != nil {
			return invalidSignature(err)
		}
		if err := verifier.Ensure(); err != nil {
			return invalidSignature(err)
		}
		return c.Next()
	}
}

func invalidSignature(err error) error {
	return richerrors.Error{
		ExternalMsg: "Invalid request signature",
		Err:         err,
		Code:        fiber.StatusForbidden,
	}
}
