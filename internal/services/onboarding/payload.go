package onboarding

import (
	"github.com/DIMO-Network/slack-onboarding-bot/internal/clients/slackapi"
	"github.com/slack-go/slack"
)

const (
	welcomeUsername  = "Welcome Robot!"
	welcomeIconEmoji = ":robot_face:"
	welcomeFallback  = "Welcome to Slack! Complete the steps below to get started."

	welcomeText = "Welcome to Slack! :wave: We're so glad you're here. :blush:\n\n" +
		"*Get started by completing the steps below:*"
	reactionTaskText = "*Add an emoji reaction to this message* :thinking_face:\n" +
		"You can quickly respond to any message on Slack with an emoji reaction. " +
		"Reactions can be used for voting, checking off to-do items or showing excitement."
	pinTaskText = "*Pin this message* :round_pushpin:\n" +
		"Important messages and files can be pinned to the details pane in any channel or " +
		"direct message, including group messages, for easy reference."
	pinHelpText = ":information_source: *<https://get.slack.help/hc/en-us/articles/205239997-Pinning-messages-and-files|Learn How to Pin a Message>*"

	taskComplete   = ":white_check_mark:"
	taskIncomplete = ":white_large_square:"
)

// BuildWelcomeMessage renders the onboarding checklist for channel.
// The output depends only on its arguments.
func BuildWelcomeMessage(channel string, reactionDone, pinDone bool) slackapi.Message {
	return slackapi.Message{
		Channel:   channel,
		Text:      welcomeFallback,
		Username:  welcomeUsername,
		IconEmoji: welcomeIconEmoji,
		Blocks: []slack.Block{
			markdownSection(welcomeText),
			slack.NewDividerBlock(),
			markdownSection(checkmark(reactionDone) + " " + reactionTaskText),
			markdownSection(checkmark(pinDone) + " " + pinTaskText),
			slack.NewDividerBlock(),
			slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType, pinHelpText, false, false)),
		},
	}
}

func markdownSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

func checkmark(done bool) string {
	if done {
		return taskComplete
	}
	return taskIncomplete
}
