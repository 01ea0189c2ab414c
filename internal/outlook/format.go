package outlook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/graph"
	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

const maxMailMessageRecipients = 10

// localLayout mirrors the long date form agents already recognise.
const localLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

var inputLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDateTime reads an agent-supplied datetime. Values without an offset
// are taken in loc.
func parseDateTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date and time %q, expected format YYYY-MM-DDTHH:mm:ss", value)
}

// utcToLocal renders a Graph UTC datetime, which may lack its Z suffix, in
// loc. Unparseable values are returned as given.
func utcToLocal(value string, loc *time.Location) string {
	if value == "" {
		return ""
	}
	if !strings.HasSuffix(value, "Z") {
		value += "Z"
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return strings.TrimSuffix(value, "Z")
	}
	return t.In(loc).Format(localLayout)
}

type nameWithEmail struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toNameWithEmail(addr *graph.EmailAddress, fallback *nameWithEmail) nameWithEmail {
	res := nameWithEmail{Name: "Unknown User"}
	if fallback != nil {
		if fallback.Name != "" {
			res.Name = fallback.Name
		}
		res.Email = fallback.Email
	}
	if addr != nil {
		if addr.Name != "" {
			res.Name = addr.Name
		}
		if addr.Address != "" {
			res.Email = addr.Address
		}
	}
	return res
}

func recipientAddress(r *graph.Recipient) *graph.EmailAddress {
	if r == nil {
		return nil
	}
	return r.EmailAddress
}

type calendarEventResult struct {
	ID                       string          `json:"id"`
	Type                     string          `json:"type"`
	Subject                  string          `json:"subject"`
	Content                  string          `json:"content,omitempty"`
	StartDateTime            string          `json:"startDateTime"`
	EndDateTime              string          `json:"endDateTime,omitempty"`
	Organizer                nameWithEmail   `json:"organizer"`
	IsOnlineMeeting          bool            `json:"isOnlineMeeting"`
	IsOrganizedByCurrentUser bool            `json:"isOrganizedByCurrentUser"`
	Attendees                []nameWithEmail `json:"attendees,omitempty"`
}

func toCalendarEventResult(e graph.Event, loc *time.Location) calendarEventResult {
	res := calendarEventResult{
		ID:                       e.ID,
		Type:                     e.Type,
		Subject:                  e.Subject,
		Organizer:                toNameWithEmail(recipientAddress(e.Organizer), nil),
		IsOnlineMeeting:          e.IsOnlineMeeting,
		IsOrganizedByCurrentUser: e.IsOrganizer,
	}
	if res.Subject == "" {
		res.Subject = "No subject"
	}
	if e.Body != nil {
		res.Content = e.Body.Content
	}
	if e.Start != nil {
		res.StartDateTime = utcToLocal(e.Start.DateTime, loc)
	}
	if e.End != nil {
		res.EndDateTime = utcToLocal(e.End.DateTime, loc)
	}
	for _, a := range e.Attendees {
		res.Attendees = append(res.Attendees, toNameWithEmail(a.EmailAddress, nil))
	}
	return res
}

type mailMessageResult struct {
	ID               string          `json:"id"`
	From             nameWithEmail   `json:"from"`
	Subject          string          `json:"subject"`
	ContentPreview   string          `json:"contentPreview,omitempty"`
	Content          string          `json:"content,omitempty"`
	ReceivedDateTime string          `json:"receivedDateTime"`
	ToRecipients     []nameWithEmail `json:"toRecipients,omitempty"`
	Importance       string          `json:"importance,omitempty"`
	IsRead           bool            `json:"isRead"`
	IsDraft          bool            `json:"isDraft"`
}

func toMailMessageResult(m graph.Message, loc *time.Location) mailMessageResult {
	sender := toNameWithEmail(recipientAddress(m.Sender), nil)
	res := mailMessageResult{
		ID:               m.ID,
		From:             toNameWithEmail(recipientAddress(m.From), &sender),
		Subject:          m.Subject,
		ContentPreview:   m.BodyPreview,
		ReceivedDateTime: utcToLocal(m.ReceivedDateTime, loc),
		Importance:       m.Importance,
		IsRead:           m.IsRead,
		IsDraft:          m.IsDraft,
	}
	if res.Subject == "" {
		res.Subject = "No subject"
	}
	if m.Body != nil {
		res.Content = m.Body.Content
	}
	for i, r := range m.ToRecipients {
		if i == maxMailMessageRecipients {
			break
		}
		res.ToRecipients = append(res.ToRecipients, toNameWithEmail(r.EmailAddress, nil))
	}
	return res
}

// compactJSON encodes v on one line without HTML escaping.
func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// failure reports err, or fallback when err carries no message.
func failure(err error, fallback string) *mcp.CallToolResult {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	var apiErr *graph.APIError
	if errors.As(err, &apiErr) && apiErr.Message == "" {
		msg = ""
	}
	if msg == "" {
		msg = fallback
	}
	return toolkit.ErrorResult(msg)
}
