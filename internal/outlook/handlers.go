package outlook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/common"
	"github.com/philipdalen/mcp-workspace/internal/graph"
	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

const (
	defaultCalendarEventsLimit = 25
	maxCalendarEventsLimit     = 50
	defaultCalendarRange       = 7 * 24 * time.Hour
	defaultEventDuration       = 30 * time.Minute

	defaultMessagesLimit = 25
	maxMessagesLimit     = 50
)

// MailService is the Graph surface the handlers use.
type MailService interface {
	CalendarEvents(ctx context.Context, rng graph.TimeRange, limit, skip int) ([]graph.Event, error)
	CreateEvent(ctx context.Context, ev graph.NewEvent) (*graph.Event, error)
	UpdateEvent(ctx context.Context, id string, u graph.EventUpdate) (*graph.Event, error)
	Messages(ctx context.Context, mq graph.MessageQuery) ([]graph.Message, error)
	MessageByID(ctx context.Context, id string) (*graph.Message, error)
	SendMail(ctx context.Context, subject, content string, recipients []string) error
	Reply(ctx context.Context, id, content string) error
}

// Handlers implements the Outlook tools.
type Handlers struct {
	svc    MailService
	logger *common.Logger
	now    func() time.Time
	loc    *time.Location
}

// NewHandlers returns handlers that interpret datetimes in time.Local.
func NewHandlers(svc MailService, logger *common.Logger) *Handlers {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Handlers{svc: svc, logger: logger, now: time.Now, loc: time.Local}
}

func (h *Handlers) toUTC(value string) (string, error) {
	t, err := parseDateTime(value, h.loc)
	if err != nil {
		return "", err
	}
	return graph.FormatUTC(t), nil
}

func (h *Handlers) GetCalendarEvents(ctx context.Context, _ mcp.CallToolRequest, args getCalendarEventsArgs) (*mcp.CallToolResult, error) {
	if args.Limit > maxCalendarEventsLimit {
		return toolkit.ErrorResultf("limit is more than max number of events allowed: %d.", maxCalendarEventsLimit), nil
	}
	var start time.Time
	if args.StartDateTime != "" {
		t, err := parseDateTime(args.StartDateTime, h.loc)
		if err != nil {
			return toolkit.ErrorResult(err.Error()), nil
		}
		start = t
	} else {
		now := h.now().In(h.loc)
		start = time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, h.loc)
	}

	end := start.Add(defaultCalendarRange)
	if args.EndDateTime != "" {
		t, err := parseDateTime(args.EndDateTime, h.loc)
		if err != nil {
			return toolkit.ErrorResult(err.Error()), nil
		}
		end = t
	}

	events, err := h.svc.CalendarEvents(ctx, graph.TimeRange{
		Start: graph.FormatUTC(start),
		End:   graph.FormatUTC(end),
	}, limitOrDefault(args.Limit, defaultCalendarEventsLimit), max(args.Skip, 0))
	if err != nil {
		return failure(err, "Failed to get calendar events."), nil
	}
	if len(events) == 0 {
		return toolkit.TextResult("No calendar events found."), nil
	}

	results := make([]calendarEventResult, 0, len(events))
	for _, e := range events {
		results = append(results, toCalendarEventResult(e, h.loc))
	}
	return toolkit.Lines(
		"Do not show the event ID to the user.",
		fmt.Sprintf("There are %d calendar events found:", len(events)),
		compactJSON(results),
	), nil
}

func (h *Handlers) CreateCalendarEvent(ctx context.Context, _ mcp.CallToolRequest, args createCalendarEventArgs) (*mcp.CallToolResult, error) {
	return h.createEvent(ctx, args, nil, false)
}

func (h *Handlers) CreateCalendarEventWithInvite(ctx context.Context, _ mcp.CallToolRequest, args createCalendarEventWithInviteArgs) (*mcp.CallToolResult, error) {
	base := createCalendarEventArgs{
		Subject:       args.Subject,
		StartDateTime: args.StartDateTime,
		EndDateTime:   args.EndDateTime,
		Location:      args.Location,
		Content:       args.Content,
	}
	attendees := args.UserEmails
	if attendees == nil {
		attendees = []string{}
	}
	return h.createEvent(ctx, base, attendees, args.IsMeeting)
}

func (h *Handlers) createEvent(ctx context.Context, args createCalendarEventArgs, attendees []string, isMeeting bool) (*mcp.CallToolResult, error) {
	start, err := parseDateTime(args.StartDateTime, h.loc)
	if err != nil {
		return toolkit.ErrorResult(err.Error()), nil
	}
	end := start.Add(defaultEventDuration)
	if args.EndDateTime != "" {
		if end, err = parseDateTime(args.EndDateTime, h.loc); err != nil {
			return toolkit.ErrorResult(err.Error()), nil
		}
	}

	event, err := h.svc.CreateEvent(ctx, graph.NewEvent{
		Subject:   args.Subject,
		Content:   args.Content,
		Start:     graph.FormatUTC(start),
		End:       graph.FormatUTC(end),
		Location:  args.Location,
		Attendees: attendees,
		IsMeeting: isMeeting,
	})
	if err != nil {
		return failure(err, "Failed to create calendar event."), nil
	}
	return toolkit.Lines(
		"Do not show the event ID to the user.",
		"Event created successfully:",
		compactJSON(toCalendarEventResult(*event, h.loc)),
	), nil
}

func (h *Handlers) UpdateCalendarEvent(ctx context.Context, _ mcp.CallToolRequest, args updateCalendarEventArgs) (*mcp.CallToolResult, error) {
	update := graph.EventUpdate{
		Subject:  args.Subject,
		Content:  args.Content,
		Location: args.Location,
	}
	for _, pair := range []struct {
		in  *string
		out **string
	}{
		{args.StartDateTime, &update.Start},
		{args.EndDateTime, &update.End},
	} {
		if pair.in == nil || *pair.in == "" {
			continue
		}
		utc, err := h.toUTC(*pair.in)
		if err != nil {
			return toolkit.ErrorResult(err.Error()), nil
		}
		*pair.out = &utc
	}

	event, err := h.svc.UpdateEvent(ctx, args.ID, update)
	if err != nil {
		return failure(err, "Failed to update calendar event."), nil
	}
	return toolkit.Lines(
		"Do not show the event ID to the user.",
		"Calendar event updated successfully:",
		compactJSON(toCalendarEventResult(*event, h.loc)),
	), nil
}

func (h *Handlers) GetOutlookMessages(ctx context.Context, _ mcp.CallToolRequest, args getOutlookMessagesArgs) (*mcp.CallToolResult, error) {
	if args.Limit > maxMessagesLimit {
		return toolkit.ErrorResultf("limit is more than max number of messages allowed: %d.", maxMessagesLimit), nil
	}

	var since time.Time
	if args.ReceivedDateTime != "" {
		t, err := parseDateTime(args.ReceivedDateTime, h.loc)
		if err != nil {
			return toolkit.ErrorResult(err.Error()), nil
		}
		since = t
	} else {
		now := h.now().In(h.loc)
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	}
	sinceUTC := graph.FormatUTC(since)

	messages, err := h.svc.Messages(ctx, graph.MessageQuery{
		Received: graph.TimeRange{Start: sinceUTC},
		Limit:    limitOrDefault(args.Limit, defaultMessagesLimit),
		Skip:     max(args.Skip, 0),
	})
	if err != nil {
		return failure(err, "Failed to get Outlook messages."), nil
	}
	if len(messages) == 0 {
		return toolkit.TextResult("No Outlook messages found."), nil
	}
	return toolkit.Lines(
		"Do not show the message ID to the user.",
		fmt.Sprintf("There are %d Outlook messages since %s:", len(messages), utcToLocal(sinceUTC, h.loc)),
		compactJSON(h.messageResults(messages)),
	), nil
}

func (h *Handlers) SearchOutlookMessages(ctx context.Context, _ mcp.CallToolRequest, args searchOutlookMessagesArgs) (*mcp.CallToolResult, error) {
	if strings.TrimSpace(args.Keywords) == "" {
		return toolkit.ErrorResult("Provide 'keywords' to search messages."), nil
	}
	if args.Limit > maxMessagesLimit {
		return toolkit.ErrorResultf("limit is more than max number of messages allowed: %d.", maxMessagesLimit), nil
	}

	messages, err := h.svc.Messages(ctx, graph.MessageQuery{
		Search: args.Keywords,
		Limit:  limitOrDefault(args.Limit, defaultMessagesLimit),
	})
	if err != nil {
		return failure(err, "Failed to search Outlook messages."), nil
	}
	if len(messages) == 0 {
		return toolkit.TextResult("No Outlook messages found."), nil
	}
	return toolkit.Lines(
		"Do not show the message ID to the user.",
		fmt.Sprintf("There are %d Outlook messages matching keywords [%s]:", len(messages), args.Keywords),
		compactJSON(h.messageResults(messages)),
	), nil
}

func (h *Handlers) GetOutlookMessageContent(ctx context.Context, _ mcp.CallToolRequest, args getOutlookMessageContentArgs) (*mcp.CallToolResult, error) {
	msg, err := h.svc.MessageByID(ctx, args.ID)
	if err != nil {
		return failure(err, "Failed to get Outlook message content."), nil
	}
	if msg == nil {
		return toolkit.ErrorResult("Failed to get Outlook message content."), nil
	}

	m := toMailMessageResult(*msg, h.loc)
	var to string
	if len(m.ToRecipients) > 0 {
		names := make([]string, 0, len(m.ToRecipients))
		for _, r := range m.ToRecipients {
			names = append(names, fmt.Sprintf("%s <%s>", r.Name, r.Email))
		}
		to = "To: " + strings.Join(names, ", ")
	}
	content := m.Content
	if content == "" {
		content = "No content available"
	}

	return toolkit.Lines(
		"Subject: "+m.Subject,
		fmt.Sprintf("From: %s <%s>", m.From.Name, m.From.Email),
		"Received: "+m.ReceivedDateTime,
		"Importance: "+m.Importance,
		"Read: "+yesNo(m.IsRead),
		"Draft: "+yesNo(m.IsDraft),
		to,
		"Content:",
		content,
	), nil
}

func (h *Handlers) SendOutlookMessage(ctx context.Context, _ mcp.CallToolRequest, args sendOutlookMessageArgs) (*mcp.CallToolResult, error) {
	var recipients []string
	for _, r := range args.RecipientEmails {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	if len(recipients) == 0 {
		return toolkit.ErrorResult("At least one recipient email address is required."), nil
	}

	if err := h.svc.SendMail(ctx, args.Subject, args.Content, recipients); err != nil {
		return failure(err, "Failed to send Outlook message."), nil
	}
	return toolkit.TextResult("Successfully sent Outlook message."), nil
}

func (h *Handlers) ReplyOutlookMessage(ctx context.Context, _ mcp.CallToolRequest, args replyOutlookMessageArgs) (*mcp.CallToolResult, error) {
	if strings.TrimSpace(args.MessageID) == "" {
		return toolkit.ErrorResult("Message ID is required to reply to a message."), nil
	}
	if strings.TrimSpace(args.Content) == "" {
		return toolkit.ErrorResult("Reply content cannot be empty."), nil
	}

	if err := h.svc.Reply(ctx, args.MessageID, args.Content); err != nil {
		return failure(err, "Failed to reply to Outlook message."), nil
	}
	return toolkit.Lines(
		"Do not show the message ID to the user.",
		"Successfully sent reply to Outlook message with ID: "+args.MessageID,
	), nil
}

func (h *Handlers) messageResults(messages []graph.Message) []mailMessageResult {
	results := make([]mailMessageResult, 0, len(messages))
	for _, m := range messages {
		results = append(results, toMailMessageResult(m, h.loc))
	}
	return results
}

func limitOrDefault(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
