package outlook

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestNewDispatcher_RegistersAllTools(t *testing.T) {
	d, err := NewDispatcher(newTestHandlers(&fakeService{}, time.Now()), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	tools := d.ListTools()
	if len(tools) != len(AllTools) {
		t.Fatalf("expected %d tools, got %d", len(AllTools), len(tools))
	}
	for i, id := range AllTools {
		if tools[i].Name != string(id) {
			t.Errorf("tool %d = %q, want %q", i, tools[i].Name, id)
		}
	}
}

func TestNewDispatcher_DenyGroup(t *testing.T) {
	d, err := NewDispatcher(newTestHandlers(&fakeService{}, time.Now()), nil, []string{"mail"}, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	for _, tool := range d.ListTools() {
		if strings.Contains(tool.Name, "message") {
			t.Errorf("mail tool %q should be denied", tool.Name)
		}
	}
	if got := len(d.ListTools()); got != 4 {
		t.Errorf("expected 4 calendar tools, got %d", got)
	}
}

func TestDispatcher_RequiredFieldMissing(t *testing.T) {
	svc := &fakeService{}
	d, err := NewDispatcher(newTestHandlers(svc, time.Now()), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	res := d.CallTool(context.Background(), callRequest(string(CreateCalendarEvent), map[string]any{
		"subject": "Standup",
	}))
	if !res.IsError {
		t.Fatal("expected error result")
	}
	if svc.calls != 0 {
		t.Error("service should not be called")
	}
}

func TestDispatcher_CreateCalendarEvent(t *testing.T) {
	svc := &fakeService{}
	d, err := NewDispatcher(newTestHandlers(svc, time.Now()), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	res := d.CallTool(context.Background(), callRequest(string(CreateCalendarEvent), map[string]any{
		"subject":       "Standup",
		"startDateTime": "2025-12-25T09:00:00",
	}))
	if res.IsError {
		t.Fatalf("unexpected error: %v", res.Content)
	}
	if svc.gotNew.End != "2025-12-25T09:30:00.000Z" {
		t.Errorf("end = %q", svc.gotNew.End)
	}
}

func TestReadOnlyAnnotations(t *testing.T) {
	d, _ := NewDispatcher(newTestHandlers(&fakeService{}, time.Now()), nil, nil, nil)
	readOnly := map[string]bool{
		string(GetCalendarEvents):        true,
		string(GetOutlookMessages):       true,
		string(SearchOutlookMessages):    true,
		string(GetOutlookMessageContent): true,
	}
	for _, tool := range d.ListTools() {
		hint := tool.Annotations.ReadOnlyHint != nil && *tool.Annotations.ReadOnlyHint
		if hint != readOnly[tool.Name] {
			t.Errorf("%s readOnlyHint = %v", tool.Name, hint)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	cases := map[string]string{
		"2025-12-25T09:00:00":       "2025-12-25T14:00:00.000Z",
		"2025-12-25T09:00":          "2025-12-25T14:00:00.000Z",
		"2025-12-25":                "2025-12-25T05:00:00.000Z",
		"2025-12-25T09:00:00Z":      "2025-12-25T09:00:00.000Z",
		"2025-12-25T09:00:00+01:00": "2025-12-25T08:00:00.000Z",
	}
	for in, want := range cases {
		got, err := parseDateTime(in, loc)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if s := got.UTC().Format("2006-01-02T15:04:05.000Z"); s != want {
			t.Errorf("%s = %s, want %s", in, s, want)
		}
	}
	if _, err := parseDateTime("tomorrow", loc); err == nil {
		t.Error("expected error")
	}
}
