package teamwork

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func noServer(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}
}

func TestNewDispatcher_RegistersAllTools(t *testing.T) {
	d, err := NewDispatcher(newTestHandlers(t, t.TempDir(), noServer(t)), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	tools := d.ListTools()
	if len(tools) != 51 {
		t.Fatalf("expected 51 tools, got %d", len(tools))
	}

	groups, err := Groups()
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if got := groups.Names(); len(got) != 9 {
		t.Errorf("groups = %v", got)
	}
	grouped := map[string]bool{}
	for _, name := range groups.Names() {
		for _, tool := range groups[name] {
			grouped[tool] = true
		}
	}
	for _, tool := range tools {
		if !grouped[tool.Name] {
			t.Errorf("tool %q belongs to no group", tool.Name)
		}
	}
}

func TestNewDispatcher_AllowGroupDenyTool(t *testing.T) {
	d, err := NewDispatcher(newTestHandlers(t, t.TempDir(), noServer(t)), []string{"Tasks"}, []string{"deleteTask"}, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	var names []string
	for _, tool := range d.ListTools() {
		names = append(names, tool.Name)
	}
	for _, want := range []string{string(GetTasks), string(CreateTask), string(GetTaskList)} {
		if !slices.Contains(names, want) {
			t.Errorf("expected %s to be listed", want)
		}
	}
	for _, unwanted := range []string{string(DeleteTask), string(GetProjects), string(CreateComment), string(ListNotebooks)} {
		if slices.Contains(names, unwanted) {
			t.Errorf("%s should be filtered", unwanted)
		}
	}

	res := d.CallTool(context.Background(), callRequest(string(DeleteTask), map[string]any{"taskId": 1}))
	if !res.IsError {
		t.Fatal("denied tool should be rejected")
	}
	if got := resultText(t, res); !strings.Contains(got, "not available") {
		t.Errorf("text = %q", got)
	}
}

func TestDispatcher_RequiredFieldMissing(t *testing.T) {
	d, err := NewDispatcher(newTestHandlers(t, t.TempDir(), noServer(t)), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	res := d.CallTool(context.Background(), callRequest(string(GetTaskByID), map[string]any{}))
	if !res.IsError {
		t.Fatal("expected error result")
	}
}

func TestDispatcher_EnumRejected(t *testing.T) {
	d, err := NewDispatcher(newTestHandlers(t, t.TempDir(), noServer(t)), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	res := d.CallTool(context.Background(), callRequest(string(CreateComment), map[string]any{
		"resource":   "projects",
		"resourceId": "1",
		"body":       "hi",
	}))
	if !res.IsError {
		t.Fatal("expected error result")
	}
}

func TestDispatcher_GetTaskByID(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/api/v3/tasks/12.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"task":{"id":12}}`))
	})
	d, err := NewDispatcher(h, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	res := d.CallTool(context.Background(), callRequest(string(GetTaskByID), map[string]any{"taskId": 12}))
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
}

func TestAnnotations(t *testing.T) {
	d, _ := NewDispatcher(newTestHandlers(t, t.TempDir(), noServer(t)), nil, nil, nil)
	for _, tool := range d.ListTools() {
		readOnly := tool.Annotations.ReadOnlyHint != nil && *tool.Annotations.ReadOnlyHint
		destructive := tool.Annotations.DestructiveHint != nil && *tool.Annotations.DestructiveHint
		switch {
		case strings.HasPrefix(tool.Name, "get") || strings.HasPrefix(tool.Name, "list"):
			if !readOnly {
				t.Errorf("%s should be read-only", tool.Name)
			}
		case strings.HasPrefix(tool.Name, "delete"):
			if !destructive || readOnly {
				t.Errorf("%s should be destructive", tool.Name)
			}
		default:
			if readOnly {
				t.Errorf("%s should not be read-only", tool.Name)
			}
		}
	}

	tool := d.ListTools()[slices.IndexFunc(d.ListTools(), func(x mcp.Tool) bool { return x.Name == string(GetTasks) })]
	if tool.Annotations.IdempotentHint == nil || !*tool.Annotations.IdempotentHint {
		t.Error("getTasks should be idempotent")
	}
}
