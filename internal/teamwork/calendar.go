package teamwork

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

type getCalendarEventsArgs struct {
	StartDate        string `json:"startDate,omitempty" jsonschema_description:"Start date for calendar events in YYYYMMDD format (e.g., 20250101)"`
	EndDate          string `json:"endDate,omitempty" jsonschema_description:"End date for calendar events in YYYYMMDD format (e.g., 20251231)"`
	ShowDeleted      *bool  `json:"showDeleted,omitempty" jsonschema_description:"Include deleted calendar events in the results"`
	UpdatedAfterDate string `json:"updatedAfterDate,omitempty" jsonschema_description:"Filter events updated after this date (YYYYMMDD format)"`
	EventTypeID      int    `json:"eventTypeId,omitempty" jsonschema_description:"Filter by event type ID"`
	Page             int    `json:"page,omitempty" jsonschema_description:"Page number for pagination"`
	UserID           int    `json:"userId,omitempty" jsonschema_description:"Filter by user ID - only show events for this user"`
	AttendingOnly    *bool  `json:"attendingOnly,omitempty" jsonschema_description:"Only show events where the user is attending"`
}

type calendarEventIDArgs struct {
	EventID int `json:"eventId" jsonschema_description:"The ID of the calendar event"`
}

type createCalendarEventArgs struct {
	Event *CalendarEvent `json:"event" jsonschema_description:"The calendar event. title, start and end are required."`
}

type updateCalendarEventArgs struct {
	EventID int            `json:"eventId" jsonschema_description:"The ID of the calendar event to update"`
	Event   *CalendarEvent `json:"event" jsonschema_description:"The calendar event fields to change"`
}

// GetCalendarEvents lists v1 calendar events. The API spells the start
// filter in lowercase.
func (h *Handlers) GetCalendarEvents(ctx context.Context, _ mcp.CallToolRequest, args getCalendarEventsArgs) (*mcp.CallToolResult, error) {
	const failure = "Error getting calendar events"
	query, err := queryFrom(args, "startDate")
	if err != nil {
		return h.fail(failure, err), nil
	}
	if args.StartDate != "" {
		query.Set("startdate", args.StartDate)
	}
	data, err := h.v1.Get(ctx, "calendarevents.json", query)
	if err == nil && len(data) == 0 {
		return toolkit.JSONResult(map[string]any{
			"success": true,
			"message": "No calendar events found",
			"events":  []any{},
		}), nil
	}
	return h.respond(data, err, failure), nil
}

func (h *Handlers) GetCalendarEventByID(ctx context.Context, _ mcp.CallToolRequest, args calendarEventIDArgs) (*mcp.CallToolResult, error) {
	if args.EventID == 0 {
		return toolkit.ErrorResult("Error: eventId is required"), nil
	}
	data, err := h.v1.Get(ctx, fmt.Sprintf("calendarevents/%d.json", args.EventID), nil)
	return h.respond(data, err, "Error getting calendar event"), nil
}

func (h *Handlers) CreateCalendarEvent(ctx context.Context, _ mcp.CallToolRequest, args createCalendarEventArgs) (*mcp.CallToolResult, error) {
	ev := args.Event
	switch {
	case ev == nil:
		return toolkit.ErrorResult("Error: event object is required"), nil
	case ev.Title == "":
		return toolkit.ErrorResult("Error: event.title is required"), nil
	case ev.Start == "":
		return toolkit.ErrorResult("Error: event.start is required (format: YYYY-MM-DDTHH:MM)"), nil
	case ev.End == "":
		return toolkit.ErrorResult("Error: event.end is required (format: YYYY-MM-DDTHH:MM)"), nil
	}
	data, err := h.v1.Post(ctx, "calendarevents.json", map[string]any{"event": ev})
	return h.respond(data, err, "Error creating calendar event"), nil
}

func (h *Handlers) UpdateCalendarEvent(ctx context.Context, _ mcp.CallToolRequest, args updateCalendarEventArgs) (*mcp.CallToolResult, error) {
	if args.EventID == 0 {
		return toolkit.ErrorResult("Error: eventId is required"), nil
	}
	if args.Event == nil {
		return toolkit.ErrorResult("Error: event object is required"), nil
	}
	data, err := h.v1.Put(ctx, fmt.Sprintf("calendarevents/%d.json", args.EventID), map[string]any{"event": args.Event})
	return h.respond(data, err, "Error updating calendar event"), nil
}

func (h *Handlers) DeleteCalendarEvent(ctx context.Context, _ mcp.CallToolRequest, args calendarEventIDArgs) (*mcp.CallToolResult, error) {
	if args.EventID == 0 {
		return toolkit.ErrorResult("Error: eventId is required"), nil
	}
	data, err := h.v1.Delete(ctx, fmt.Sprintf("calendarevents/%d.json", args.EventID))
	if err != nil {
		return h.fail("Error deleting calendar event", err), nil
	}
	if len(data) == 0 {
		return toolkit.JSONResult(map[string]any{
			"success": true,
			"message": "Calendar event deleted successfully",
		}), nil
	}
	return toolkit.JSONResult(data), nil
}
