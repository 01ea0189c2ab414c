package graph

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/philipdalen/mcp-workspace/internal/cache"
	"github.com/philipdalen/mcp-workspace/internal/common"
	"github.com/philipdalen/mcp-workspace/internal/markup"
)

var (
	calendarEventProps = []string{
		"id", "createdDateTime", "type", "subject", "start", "end", "body", "organizer",
		"categories", "iCalUId", "hasAttachments", "showAs", "isOnlineMeeting",
		"isOrganizer", "attendees", "onlineMeeting",
	}
	mailFolderProps  = []string{"id", "displayName", "wellKnownName"}
	mailMessageProps = []string{
		"id", "receivedDateTime", "createdDateTime", "sentDateTime", "subject", "importance",
		"sender", "from", "toRecipients", "replyTo", "parentFolderId", "isRead", "isDraft",
		"categories",
	}
	mailPreviewProps = append(append([]string{}, mailMessageProps...), "bodyPreview")
	mailBodyProps    = append(append([]string{}, mailMessageProps...), "body")
)

const (
	defaultMailFoldersLimit = 100

	deletedFolderName = "deleteditems"
	junkFolderName    = "junkemail"

	excludedFoldersKey = "excluded-folders"
	folderCacheTTL     = time.Hour

	utcLayout = "2006-01-02T15:04:05.000Z"
)

// Service exposes the Graph operations the mail tools need. HTML bodies are
// returned as Markdown and Markdown input is sent as sanitized HTML.
type Service struct {
	client  *Client
	logger  *common.Logger
	folders *cache.TTLCache[[]string]
	loc     *time.Location
}

// NewService wraps client. Dates quoted in replies render in time.Local.
func NewService(client *Client, logger *common.Logger) *Service {
	return &Service{
		client:  client,
		logger:  logger,
		folders: cache.New[[]string](folderCacheTTL),
		loc:     time.Local,
	}
}

// CalendarEvents lists events. With both bounds set the calendar view is
// queried so recurring instances are expanded.
func (s *Service) CalendarEvents(ctx context.Context, rng TimeRange, limit, skip int) ([]Event, error) {
	q := url.Values{}
	q.Set("$select", strings.Join(calendarEventProps, ","))
	q.Set("$top", strconv.Itoa(limit))
	q.Set("$skip", strconv.Itoa(skip))

	path := "/me/calendar/events"
	if rng.Start != "" && rng.End != "" {
		path = "/me/calendar/calendarView"
		q.Set("startDateTime", rng.Start)
		q.Set("endDateTime", rng.End)
	} else {
		var filters []string
		if rng.Start != "" {
			filters = append(filters, fmt.Sprintf("start/dateTime ge '%s'", rng.Start))
		}
		if rng.End != "" {
			filters = append(filters, fmt.Sprintf("start/dateTime lt '%s'", rng.End))
		}
		if len(filters) > 0 {
			q.Set("$filter", strings.Join(filters, " and "))
		}
	}

	var page collection[Event]
	if err := s.client.get(ctx, path, q, &page); err != nil {
		return nil, err
	}
	if page.Value == nil {
		return nil, errors.New("Failed to get events.")
	}

	events := make([]Event, 0, len(page.Value))
	for _, e := range page.Value {
		if !e.valid() {
			continue
		}
		events = append(events, withMarkdownBody(e))
	}
	return events, nil
}

// CreateEvent creates an event on the user's default calendar.
func (s *Service) CreateEvent(ctx context.Context, ev NewEvent) (*Event, error) {
	req := map[string]any{
		"subject": ev.Subject,
		"body": ItemBody{
			ContentType: "html",
			Content:     markup.ToHTML(ev.Content),
		},
		"isOnlineMeeting": ev.IsMeeting,
		"start":           DateTimeTimeZone{DateTime: ev.Start, TimeZone: "UTC"},
		"end":             DateTimeTimeZone{DateTime: ev.End, TimeZone: "UTC"},
	}
	if ev.Location != "" {
		req["location"] = Location{DisplayName: ev.Location}
	}
	if ev.Attendees != nil {
		attendees := make([]Attendee, 0, len(ev.Attendees))
		for _, email := range ev.Attendees {
			attendees = append(attendees, Attendee{EmailAddress: &EmailAddress{Address: email}, Type: "required"})
		}
		req["attendees"] = attendees
	}

	var created Event
	if err := s.client.post(ctx, "/me/events", req, &created); err != nil {
		return nil, err
	}
	if !created.valid() {
		return nil, errors.New("Create event failed.")
	}
	created = withMarkdownBody(created)
	return &created, nil
}

// UpdateEvent patches an existing event.
func (s *Service) UpdateEvent(ctx context.Context, id string, u EventUpdate) (*Event, error) {
	if u.empty() {
		return nil, errors.New("At least one property must be provided to update the calendar event.")
	}

	req := map[string]any{}
	if u.Subject != nil {
		req["subject"] = *u.Subject
	}
	if u.Content != nil {
		req["body"] = ItemBody{ContentType: "html", Content: markup.ToHTML(*u.Content)}
	}
	if u.Start != nil {
		req["start"] = DateTimeTimeZone{DateTime: *u.Start, TimeZone: "UTC"}
	}
	if u.End != nil {
		req["end"] = DateTimeTimeZone{DateTime: *u.End, TimeZone: "UTC"}
	}
	if u.Location != nil {
		if *u.Location == "" {
			req["location"] = nil
		} else {
			req["location"] = Location{DisplayName: *u.Location}
		}
	}

	var updated Event
	if err := s.client.patch(ctx, "/me/events/"+url.PathEscape(id), req, &updated); err != nil {
		return nil, err
	}
	if !updated.valid() {
		return nil, errors.New("Update event failed.")
	}
	updated = withMarkdownBody(updated)
	return &updated, nil
}

// Messages lists or searches messages outside the deleted and junk folders.
func (s *Service) Messages(ctx context.Context, mq MessageQuery) ([]Message, error) {
	excluded := s.excludedFolderIDs(ctx)
	excludedSet := make(map[string]bool, len(excluded))
	for _, id := range excluded {
		excludedSet[id] = true
	}

	q := url.Values{}
	q.Set("$select", strings.Join(mailPreviewProps, ","))
	q.Set("$top", strconv.Itoa(mq.Limit))

	if mq.Search != "" {
		// $search cannot be combined with $filter on messages
		q.Set("$search", fmt.Sprintf(`"subject:%[1]s OR body:%[1]s OR from:%[1]s"`, escapeSearch(mq.Search)))
	} else {
		var filters []string
		if mq.Received.Start != "" {
			filters = append(filters, "receivedDateTime ge "+mq.Received.Start)
		}
		if mq.Received.End != "" {
			filters = append(filters, "receivedDateTime lt "+mq.Received.End)
		}
		for _, id := range excluded {
			filters = append(filters, fmt.Sprintf("parentFolderId ne '%s'", id))
		}
		if len(filters) > 0 {
			q.Set("$filter", strings.Join(filters, " and "))
		}
		q.Set("$skip", strconv.Itoa(mq.Skip))
		q.Set("$orderby", "receivedDateTime desc")
	}

	var page collection[Message]
	if err := s.client.get(ctx, "/me/messages", q, &page); err != nil {
		return nil, err
	}
	if page.Value == nil {
		return nil, errors.New("Failed to get messages.")
	}

	messages := make([]Message, 0, len(page.Value))
	for _, m := range page.Value {
		if !m.valid() {
			continue
		}
		if mq.Search != "" && !inRange(m, mq.Received, excludedSet) {
			continue
		}
		messages = append(messages, withMarkdownMessage(m))
	}
	return messages, nil
}

var searchEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// escapeSearch backslash-escapes a keyword for a quoted $search clause.
func escapeSearch(keyword string) string {
	return searchEscaper.Replace(keyword)
}

// inRange applies the folder and date filters that $search cannot express.
func inRange(m Message, rng TimeRange, excluded map[string]bool) bool {
	if m.ParentFolderID != "" && excluded[m.ParentFolderID] {
		return false
	}
	if rng.Start == "" && rng.End == "" {
		return true
	}
	received, err := time.Parse(time.RFC3339, m.ReceivedDateTime)
	if err != nil {
		return true
	}
	if rng.Start != "" {
		if start, err := time.Parse(time.RFC3339, rng.Start); err == nil && received.Before(start) {
			return false
		}
	}
	if rng.End != "" {
		if end, err := time.Parse(time.RFC3339, rng.End); err == nil && !received.Before(end) {
			return false
		}
	}
	return true
}

// MessageByID fetches one message with its body.
func (s *Service) MessageByID(ctx context.Context, id string) (*Message, error) {
	q := url.Values{}
	q.Set("$select", strings.Join(mailBodyProps, ","))

	var m Message
	if err := s.client.get(ctx, "/me/messages/"+url.PathEscape(id), q, &m); err != nil {
		return nil, err
	}
	if !m.valid() {
		return nil, errors.New("Get Outlook message failed.")
	}
	m = withMarkdownMessage(m)
	return &m, nil
}

// SendMail sends a new message. content is Markdown.
func (s *Service) SendMail(ctx context.Context, subject, content string, recipients []string) error {
	to := make([]Recipient, 0, len(recipients))
	for _, email := range recipients {
		to = append(to, Recipient{EmailAddress: &EmailAddress{Address: email}})
	}
	req := map[string]any{
		"message": map[string]any{
			"subject":      subject,
			"body":         ItemBody{ContentType: "html", Content: markup.ToHTML(content)},
			"toRecipients": to,
		},
	}
	return s.client.post(ctx, "/me/sendMail", req, nil)
}

// Reply answers a message, quoting the original below content.
func (s *Service) Reply(ctx context.Context, id, content string) error {
	original, err := s.MessageByID(ctx, id)
	if err != nil {
		return err
	}

	sender := "Unknown Sender"
	if original.From != nil && original.From.EmailAddress != nil {
		if original.From.EmailAddress.Name != "" {
			sender = original.From.EmailAddress.Name
		} else if original.From.EmailAddress.Address != "" {
			sender = original.From.EmailAddress.Address
		}
	}
	date := original.SentDateTime
	if date == "" {
		date = original.ReceivedDateTime
	}
	subject := original.Subject
	if subject == "" {
		subject = "(No Subject)"
	}
	var originalContent string
	if original.Body != nil {
		originalContent = original.Body.Content
	}

	reply := fmt.Sprintf("%s\n\n\n\n---\n\n**From:** %s  \n**Date:** %s  \n**Subject:** %s  \n\n\n%s",
		content, sender, s.formatQuotedDate(date), subject, originalContent)

	req := map[string]any{
		"message": map[string]any{
			"body": ItemBody{ContentType: "html", Content: markup.ToHTML(reply)},
		},
	}
	return s.client.post(ctx, "/me/messages/"+url.PathEscape(id)+"/reply", req, nil)
}

func (s *Service) formatQuotedDate(value string) string {
	if value == "" {
		return "Unknown"
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.In(s.loc).Format("1/2/2006, 3:04:05 PM")
}

// MailFolders lists the user's top-level mail folders.
func (s *Service) MailFolders(ctx context.Context, limit int) ([]MailFolder, error) {
	if limit <= 0 {
		limit = defaultMailFoldersLimit
	}
	q := url.Values{}
	q.Set("$select", strings.Join(mailFolderProps, ","))
	q.Set("$top", strconv.Itoa(limit))

	var page collection[MailFolder]
	if err := s.client.get(ctx, "/me/mailFolders", q, &page); err != nil {
		return nil, err
	}
	if page.Value == nil {
		return nil, errors.New("Failed to get mail folders.")
	}

	folders := make([]MailFolder, 0, len(page.Value))
	for _, f := range page.Value {
		if f.valid() {
			folders = append(folders, f)
		}
	}
	return folders, nil
}

// excludedFolderIDs returns the deleted and junk folder ids. A lookup
// failure is logged and yields no exclusions.
func (s *Service) excludedFolderIDs(ctx context.Context) []string {
	if ids, ok := s.folders.Get(excludedFoldersKey); ok {
		return ids
	}

	folders, err := s.MailFolders(ctx, defaultMailFoldersLimit)
	if err != nil {
		s.logger.Error().Str("error", err.Error()).Msg("failed to get mail folders")
		return nil
	}

	ids := []string{}
	for _, f := range folders {
		if f.WellKnownName == deletedFolderName || f.WellKnownName == junkFolderName {
			ids = append(ids, f.ID)
		}
	}
	s.folders.Set(excludedFoldersKey, ids)
	return ids
}

func withMarkdownBody(e Event) Event {
	if e.Body != nil && e.Body.Content != "" && e.Body.ContentType == "html" {
		e.Body = &ItemBody{ContentType: e.Body.ContentType, Content: markup.ToMarkdown(e.Body.Content)}
	}
	return e
}

func withMarkdownMessage(m Message) Message {
	if m.Body != nil && m.Body.Content != "" && m.Body.ContentType == "html" {
		m.Body = &ItemBody{ContentType: m.Body.ContentType, Content: markup.ToMarkdown(m.Body.Content)}
	}
	return m
}

// FormatUTC renders t the way Graph expects UTC input datetimes.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(utcLayout)
}
