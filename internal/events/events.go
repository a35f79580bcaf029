package events

import (
	"github.com/slack-go/slack/slackevents"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is what the dispatcher should do with an event.
type Kind int

const (
	KindUnknown Kind = iota
	KindBotMessage
	KindGreet
	KindListPinnedShows
	KindStartOnboarding
	KindUpdateEmojiTask
	KindUpdatePinTask
)

func (k Kind) String() string {
	switch k {
	case KindBotMessage:
		return "bot_message"
	case KindGreet:
		return "greet"
	case KindListPinnedShows:
		return "list_pinned_shows"
	case KindStartOnboarding:
		return "start_onboarding"
	case KindUpdateEmojiTask:
		return "update_emoji_task"
	case KindUpdatePinTask:
		return "update_pin_task"
	default:
		return "unknown"
	}
}

const (
	subtypeBotMessage = "bot_message"

	commandGreet = "hi"
	commandShows = "shows"
	commandStart = "start"
)

// InboundEvent is the classified form of an event callback.
type InboundEvent struct {
	Kind      Kind
	Type      string
	Subtype   string
	User      string
	Text      string
	Channel   string
	ChannelID string
	// ItemChannel is event.item.channel, where reaction events carry their channel.
	ItemChannel string
}

// Envelope holds the top level fields of a request body.
type Envelope struct {
	Token    string
	Type     string
	EventID  string
	HasEvent bool
	Event    InboundEvent
}

// IsURLVerification reports whether the body is the endpoint challenge handshake.
func (e Envelope) IsURLVerification() bool {
	return e.Type == string(slackevents.URLVerification)
}

// Parse reads an Events API request body. Fields that are missing or not strings
// are left empty; a body that is not a JSON object yields a zero Envelope.
func Parse(body []byte) Envelope {
	if !gjson.ValidBytes(body) {
		return Envelope{}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return Envelope{}
	}
	env := Envelope{
		Token:   str(root, "token"),
		Type:    str(root, "type"),
		EventID: str(root, "event_id"),
	}
	if event := root.Get("event"); event.Exists() {
		env.HasEvent = true
		env.Event = Classify(event)
	}
	return env
}

// Classify decides which handler an event callback goes to.
// Events missing the identifiers their handler needs are KindUnknown.
func Classify(event gjson.Result) InboundEvent {
	if !event.IsObject() {
		return InboundEvent{Kind: KindUnknown}
	}
	ev := InboundEvent{
		Type:        str(event, "type"),
		Subtype:     str(event, "subtype"),
		User:        str(event, "user"),
		Text:        str(event, "text"),
		Channel:     str(event, "channel"),
		ChannelID:   str(event, "channel_id"),
		ItemChannel: str(event, "item.channel"),
	}
	if ev.Subtype == subtypeBotMessage {
		ev.Kind = KindBotMessage
		return ev
	}
	if ev.Channel == "" {
		ev.Channel = ev.ItemChannel
	}

	// full case mapping: "Hİ" lowers to "hi\u0307", not "hi"
	switch cases.Lower(language.Und).String(ev.Text) {
	case commandGreet:
		ev.Kind = requireFields(KindGreet, ev.User, ev.Channel)
	case commandShows:
		ev.Kind = requireFields(KindListPinnedShows, ev.Channel)
	case commandStart:
		ev.Kind = requireFields(KindStartOnboarding, ev.User, ev.Channel)
	default:
		switch ev.Type {
		case string(slackevents.ReactionAdded):
			ev.Kind = requireFields(KindUpdateEmojiTask, ev.User, ev.ItemChannel)
		case string(slackevents.PinAdded):
			ev.Kind = requireFields(KindUpdatePinTask, ev.User, ev.ChannelID)
		}
	}
	return ev
}

func requireFields(kind Kind, fields ...string) Kind {
	for _, f := range fields {
		if f == "" {
			return KindUnknown
		}
	}
	return kind
}

func str(r gjson.Result, path string) string {
	v := r.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}
