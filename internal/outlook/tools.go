package outlook

import (
	_ "embed"
	"fmt"

	"github.com/philipdalen/mcp-workspace/internal/common"
	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

// ToolID names an Outlook tool.
type ToolID string

const (
	GetCalendarEvents             ToolID = "get-calendar-events"
	CreateCalendarEvent           ToolID = "create-calendar-event"
	UpdateCalendarEvent           ToolID = "update-calendar-event"
	CreateCalendarEventWithInvite ToolID = "create-calendar-event-with-invite"
	GetOutlookMessages            ToolID = "get-outlook-messages"
	SearchOutlookMessages         ToolID = "search-outlook-messages"
	GetOutlookMessageContent      ToolID = "get-outlook-message-content"
	SendOutlookMessage            ToolID = "send-outlook-message"
	ReplyOutlookMessage           ToolID = "reply-outlook-message"
)

// AllTools lists every tool in registration order.
var AllTools = []ToolID{
	GetCalendarEvents,
	CreateCalendarEvent,
	UpdateCalendarEvent,
	CreateCalendarEventWithInvite,
	GetOutlookMessages,
	SearchOutlookMessages,
	GetOutlookMessageContent,
	SendOutlookMessage,
	ReplyOutlookMessage,
}

//go:embed groups.yaml
var groupsYAML []byte

// Groups returns the Calendar and Mail tool groups.
func Groups() (toolkit.Groups, error) {
	return toolkit.ParseGroups(groupsYAML)
}

type getCalendarEventsArgs struct {
	StartDateTime string `json:"startDateTime,omitempty" jsonschema_description:"Optional start date and time to filter events from. If not provided, defaults to the current date and time. Format: 'YYYY-MM-DDTHH:mm:ss' in local time zone (e.g., '2025-12-25T09:00:00')"`
	EndDateTime   string `json:"endDateTime,omitempty" jsonschema_description:"Optional end date and time to filter events until. If not provided, defaults to 7 days from the start date. Format: 'YYYY-MM-DDTHH:mm:ss' in local time zone (e.g., '2025-12-25T17:00:00')"`
	Limit         int    `json:"limit,omitempty" jsonschema_description:"Maximum number of events to return (default: 25, maximum allowed: 50)."`
	Skip          int    `json:"skip,omitempty" jsonschema_description:"Number of events to skip for pagination purposes (default: 0). Useful for retrieving additional pages of results."`
}

type createCalendarEventArgs struct {
	Subject       string `json:"subject" jsonschema_description:"The title/subject of the calendar event"`
	StartDateTime string `json:"startDateTime" jsonschema_description:"The event start date and time in ISO format using local time zone. Format: 'YYYY-MM-DDTHH:mm:ss' (e.g., '2025-12-25T14:30:00')"`
	EndDateTime   string `json:"endDateTime,omitempty" jsonschema_description:"The event end date and time in ISO format using local time zone. Optional - if not provided, the event will last 30 minutes. Format: 'YYYY-MM-DDTHH:mm:ss' (e.g., '2025-12-25T15:00:00')"`
	Location      string `json:"location,omitempty" jsonschema_description:"Optional location or venue for the event (e.g., 'Conference Room A', 'Airport', 'Central Park')"`
	Content       string `json:"content,omitempty" jsonschema_description:"Optional description or body content for the event. Must be in markdown or plain text format."`
}

type createCalendarEventWithInviteArgs struct {
	UserEmails    []string `json:"userEmails" jsonschema_description:"Array of email addresses to invite as attendees. Each attendee will receive a calendar invitation. Use empty array [] if no attendees should be invited."`
	Subject       string   `json:"subject" jsonschema_description:"The title/subject of the calendar event"`
	StartDateTime string   `json:"startDateTime" jsonschema_description:"The event start date and time in ISO format using local time zone. Format: 'YYYY-MM-DDTHH:mm:ss' (e.g., '2025-12-25T14:30:00')"`
	EndDateTime   string   `json:"endDateTime,omitempty" jsonschema_description:"The event end date and time in ISO format using local time zone. Optional - if not provided, the event will last 30 minutes. Format: 'YYYY-MM-DDTHH:mm:ss' (e.g., '2025-12-25T15:00:00')"`
	Location      string   `json:"location,omitempty" jsonschema_description:"Optional location or venue for the event (e.g., 'Conference Room A', 'Zoom Meeting', 'Central Park')"`
	Content       string   `json:"content,omitempty" jsonschema_description:"Optional description or body content for the event. Must be in markdown or plain text format."`
	IsMeeting     bool     `json:"isMeeting,omitempty" jsonschema_description:"Optional flag to mark this event as a meeting. When true, this enables meeting-specific features like online meeting links."`
}

// updateCalendarEventArgs uses pointers so an empty location can be told
// apart from an absent one.
type updateCalendarEventArgs struct {
	ID            string  `json:"id" jsonschema_description:"This is a base64-encoded string that uniquely identifies the calendar event to update. Preserve the exact ID format including any trailing '=' padding characters."`
	Subject       *string `json:"subject,omitempty" jsonschema_description:"Optional new title/subject for the calendar event"`
	StartDateTime *string `json:"startDateTime,omitempty" jsonschema_description:"Optional new start date and time in ISO format using local time zone. Format: 'YYYY-MM-DDTHH:mm:ss' (e.g., '2025-12-25T14:30:00')"`
	EndDateTime   *string `json:"endDateTime,omitempty" jsonschema_description:"Optional new end date and time in ISO format using local time zone. Format: 'YYYY-MM-DDTHH:mm:ss' (e.g., '2025-12-25T15:00:00')"`
	Location      *string `json:"location,omitempty" jsonschema_description:"Optional new location or venue for the event (e.g., 'Conference Room A', 'Airport', 'Central Park'). Use empty string to remove location."`
	Content       *string `json:"content,omitempty" jsonschema_description:"Optional new description or body content for the event. Must be in markdown or plain text format."`
}

type getOutlookMessagesArgs struct {
	ReceivedDateTime string `json:"receivedDateTime,omitempty" jsonschema_description:"Optional start date and time to filter messages from. If not provided, defaults to the start of the current day. Format: 'YYYY-MM-DDTHH:mm:ss' in local time zone (e.g., '2025-12-25T09:00:00')"`
	Limit            int    `json:"limit,omitempty" jsonschema_description:"Maximum number of messages to return (default: 25, maximum allowed: 50)."`
	Skip             int    `json:"skip,omitempty" jsonschema_description:"Number of messages to skip for pagination purposes (default: 0). Useful for retrieving additional pages of results."`
}

type searchOutlookMessagesArgs struct {
	Keywords string `json:"keywords" jsonschema_description:"Search keywords to find messages. Can include sender names, subject text, or message content."`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum number of messages to return (default: 25, maximum allowed: 50)."`
}

type getOutlookMessageContentArgs struct {
	ID string `json:"id" jsonschema_description:"The unique identifier of the mail message to retrieve the content for. This is a base64-encoded string that uniquely identifies the message in the user's mailbox. Preserve the exact ID format including any trailing '=' padding characters."`
}

type sendOutlookMessageArgs struct {
	Subject         string   `json:"subject" jsonschema_description:"The subject line of the email message."`
	Content         string   `json:"content" jsonschema_description:"The content/body of the email message. Must be in markdown or plain text format."`
	RecipientEmails []string `json:"recipientEmails" jsonschema_description:"Array of email addresses to send the message to."`
}

type replyOutlookMessageArgs struct {
	MessageID string `json:"messageId" jsonschema_description:"The unique identifier of the mail message to reply to. This is a base64-encoded string that uniquely identifies the message in the user's mailbox. Preserve the exact ID format including any trailing '=' padding characters."`
	Content   string `json:"content" jsonschema_description:"The reply content/body of the email message. Supports Markdown formatting which will be converted to HTML."`
}

// Register adds every Outlook tool to reg.
func Register(reg *toolkit.Registry, h *Handlers) {
	reg.Add(toolkit.Typed(string(GetCalendarEvents),
		"Retrieve a list of calendar events from Outlook within a specified date range. Returns both personal events and meetings with attendees.",
		h.GetCalendarEvents, toolkit.WithTitle("Get calendar events"), toolkit.ReadOnly()))
	reg.Add(toolkit.Typed(string(CreateCalendarEvent),
		"Create a personal calendar event in Outlook without sending invitations to other attendees. This creates a private event only on the user's calendar.",
		h.CreateCalendarEvent, toolkit.WithTitle("Create calendar event")))
	reg.Add(toolkit.Typed(string(UpdateCalendarEvent),
		"Update an existing calendar event in Outlook. You can modify the subject, content, start/end times, or location. At least one field must be provided to update.",
		h.UpdateCalendarEvent, toolkit.WithTitle("Update calendar event"), toolkit.Idempotent()))
	reg.Add(toolkit.Typed(string(CreateCalendarEventWithInvite),
		"Create a calendar event in Outlook and send invitations to specified attendees. Use this tool when you need to invite other people to the event.",
		h.CreateCalendarEventWithInvite, toolkit.WithTitle("Create calendar event with invite")))
	reg.Add(toolkit.Typed(string(GetOutlookMessages),
		"Retrieve a list of mail messages from Outlook received since a specified date and time.",
		h.GetOutlookMessages, toolkit.WithTitle("Get Outlook messages"), toolkit.ReadOnly()))
	reg.Add(toolkit.Typed(string(SearchOutlookMessages),
		"Search for mail messages in Outlook based on keywords.",
		h.SearchOutlookMessages, toolkit.WithTitle("Search Outlook messages"), toolkit.ReadOnly()))
	reg.Add(toolkit.Typed(string(GetOutlookMessageContent),
		"Retrieve the full content of a specific Outlook mail message by its ID.",
		h.GetOutlookMessageContent, toolkit.WithTitle("Get Outlook message content"), toolkit.ReadOnly()))
	reg.Add(toolkit.Typed(string(SendOutlookMessage),
		"Send a new mail message through Outlook to specified recipients.",
		h.SendOutlookMessage, toolkit.WithTitle("Send Outlook message")))
	reg.Add(toolkit.Typed(string(ReplyOutlookMessage),
		"Reply to an existing Outlook mail message with new content.",
		h.ReplyOutlookMessage, toolkit.WithTitle("Reply to Outlook message")))
}

// NewDispatcher builds the Outlook registry and wraps it with the allow and
// deny lists. Group names are accepted in either list.
func NewDispatcher(h *Handlers, allow, deny []string, logger *common.Logger) (*toolkit.Dispatcher, error) {
	reg := toolkit.NewRegistry()
	Register(reg, h)

	groups, err := Groups()
	if err != nil {
		return nil, fmt.Errorf("failed to parse outlook tool groups: %w", err)
	}
	if err := groups.Validate(reg); err != nil {
		return nil, err
	}
	return toolkit.NewDispatcher(reg, toolkit.NewFilter(groups, allow, deny), logger), nil
}
