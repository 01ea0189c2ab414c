package teamwork

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/common"
)

// newTestHandlers serves both API versions from one mock: v1 at the root
// and v3 under /projects/api/v3/.
func newTestHandlers(t *testing.T, root string, handler http.HandlerFunc) *Handlers {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := common.NewSilentLogger()
	clients := &Clients{
		V1: NewClient(srv.URL+"/", "user", "pass", logger),
		V3: NewClient(srv.URL+"/projects/api/v3/", "user", "pass", logger),
	}
	return NewHandlers(clients, Options{SolutionRoot: root}, logger)
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) != 1 {
		t.Fatalf("expected a single content item, got %+v", res)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func readBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decode body %q: %v", data, err)
	}
	return body
}

func TestGetTasks_PageSizeAboveMaximum(t *testing.T) {
	var hits atomic.Int32
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	res, err := h.GetTasks(context.Background(), mcp.CallToolRequest{}, getTasksArgs{PageSize: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Error("expected isError")
	}
	if got := resultText(t, res); !strings.Contains(got, "250") {
		t.Errorf("error should name the maximum, got %q", got)
	}
	if hits.Load() != 0 {
		t.Error("the API should not be called")
	}
}

func TestGetTasks_TranslatesFilters(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/api/v3/tasks.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("tagIds") != "4,5" {
			t.Errorf("tagIds = %q", q.Get("tagIds"))
		}
		if q.Get("fields[tasks]") != "id,name" {
			t.Errorf("fields[tasks] = %q", q.Get("fields[tasks]"))
		}
		w.Write([]byte(`{"tasks":[]}`))
	})

	res, _ := h.GetTasks(context.Background(), mcp.CallToolRequest{}, getTasksArgs{
		TagIDs:      []int{4, 5},
		FieldsTasks: []string{"id", "name"},
	})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
}

func TestGetProjects_FallsBackToV1(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects/api/v3/projects.json":
			w.WriteHeader(http.StatusInternalServerError)
		case "/projects.json":
			w.Write([]byte(`{"projects":[{"id":"1","name":"Website"}]}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})

	res, _ := h.GetProjects(context.Background(), mcp.CallToolRequest{}, getProjectsArgs{})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	if got := resultText(t, res); !strings.Contains(got, "Website") {
		t.Errorf("expected v1 projects, got %q", got)
	}
}

func TestGetProjects_BothVersionsFail(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"MESSAGE":"Unauthorized"}`))
	})

	res, _ := h.GetProjects(context.Background(), mcp.CallToolRequest{}, getProjectsArgs{})
	if !res.IsError {
		t.Fatal("expected isError")
	}
	if got := resultText(t, res); got != "Error retrieving projects: teamwork returned 401: Unauthorized" {
		t.Errorf("text = %q", got)
	}
}

func TestGetProjects_Empty(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"projects":[],"meta":{}}`))
	})

	res, _ := h.GetProjects(context.Background(), mcp.CallToolRequest{}, getProjectsArgs{})
	if got := resultText(t, res); got != "No projects found. The API returned an empty projects array." {
		t.Errorf("text = %q", got)
	}
}

func TestGetCurrentProject_DefaultsFromMarker(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, MarkerFile), []byte("PROJECTID=77\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newTestHandlers(t, root, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/api/v3/projects/77.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"project":{"id":77}}`))
	})

	res, _ := h.GetCurrentProject(context.Background(), mcp.CallToolRequest{}, getCurrentProjectArgs{})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
}

func TestCreateTask_ResolvesSingleTaskListFromMarker(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, MarkerFile), []byte("PROJECTID=7"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newTestHandlers(t, root, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/projects/api/v3/projects/7/tasklists.json":
			w.Write([]byte(`{"tasklists":[{"id":42,"name":"Backlog"}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/projects/api/v3/tasklists/42/tasks.json":
			body := readBody(t, r)
			task, _ := body["task"].(map[string]any)
			if task["name"] != "Write docs" {
				t.Errorf("task body = %v", body)
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"task":{"id":1001,"name":"Write docs"}}`))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	res, _ := h.CreateTask(context.Background(), mcp.CallToolRequest{}, createTaskArgs{
		TaskRequest: &TaskRequest{Task: &Task{Name: "Write docs"}},
	})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}

	marker, err := ReadMarker(root)
	if err != nil {
		t.Fatal(err)
	}
	if marker.TaskListID != 42 {
		t.Errorf("expected TASKLISTID=42 appended, got %+v", marker)
	}
}

func TestCreateTask_MultipleTaskLists(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, MarkerFile), []byte("PROJECTID=7"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newTestHandlers(t, root, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tasklists":[{"id":1},{"id":2}]}`))
	})

	res, _ := h.CreateTask(context.Background(), mcp.CallToolRequest{}, createTaskArgs{
		TaskRequest: &TaskRequest{Task: &Task{Name: "x"}},
	})
	want := "Multiple tasklists found for project 7. Please specify a tasklistId in your request."
	if got := resultText(t, res); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestCreateTask_NoTaskList(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	res, _ := h.CreateTask(context.Background(), mcp.CallToolRequest{}, createTaskArgs{
		TaskRequest: &TaskRequest{Task: &Task{Name: "x"}},
	})
	if !res.IsError {
		t.Fatal("expected isError")
	}
	if got := resultText(t, res); !strings.HasPrefix(got, "No tasklistId provided") {
		t.Errorf("text = %q", got)
	}
}

func TestCreateTask_MissingName(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	res, _ := h.CreateTask(context.Background(), mcp.CallToolRequest{}, createTaskArgs{
		TasklistID:  3,
		TaskRequest: &TaskRequest{Task: &Task{}},
	})
	if got := resultText(t, res); got != "Invalid task request: missing task name. Please provide taskRequest.task.name." {
		t.Errorf("text = %q", got)
	}
}

func TestUpdateTask_ReportsName(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/projects/api/v3/tasks/9.json" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"task":{"id":9,"name":"Ship it"}}`))
	})

	res, _ := h.UpdateTask(context.Background(), mcp.CallToolRequest{}, updateTaskArgs{
		TaskID:      9,
		TaskRequest: &TaskRequest{Task: &Task{Priority: "high"}},
	})
	if got := resultText(t, res); got != "Task 'Ship it' updated successfully" {
		t.Errorf("text = %q", got)
	}
}

func TestDeleteTask(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	res, _ := h.DeleteTask(context.Background(), mcp.CallToolRequest{}, taskIDArgs{TaskID: 3})
	var got map[string]bool
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if !got["success"] {
		t.Errorf("expected success, got %v", got)
	}
}

func TestUpdateTaskList_RequiresAField(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	res, _ := h.UpdateTaskList(context.Background(), mcp.CallToolRequest{}, updateTaskListArgs{ID: 4})
	if !res.IsError {
		t.Fatal("expected isError")
	}
	if got := resultText(t, res); !strings.Contains(got, "at least one field (name, description, or milestoneId)") {
		t.Errorf("text = %q", got)
	}
}

func TestCreateTaskList_Payload(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		body := readBody(t, r)
		list, _ := body["todo-list"].(map[string]any)
		if list["name"] != "Sprint 1" || list["milestone-id"] != float64(12) {
			t.Errorf("payload = %v", body)
		}
		w.Write([]byte(`{"TASKLISTID":"88","STATUS":"OK"}`))
	})

	res, _ := h.CreateTaskList(context.Background(), mcp.CallToolRequest{}, createTaskListArgs{
		ProjectID:   5,
		Name:        "Sprint 1",
		MilestoneID: 12,
	})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
}

func TestCreateComment_HTMLConvertsMarkdown(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks/15/comments.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		body := readBody(t, r)
		comment, _ := body["comment"].(map[string]any)
		if comment["content-type"] != "html" {
			t.Errorf("content-type = %v", comment["content-type"])
		}
		text, _ := comment["body"].(string)
		if !strings.Contains(text, "<strong>done</strong>") {
			t.Errorf("expected HTML body, got %q", text)
		}
		if strings.Contains(text, "<script") {
			t.Errorf("body should be sanitized, got %q", text)
		}
		w.Write([]byte(`{"commentId":"1","STATUS":"OK"}`))
	})

	res, _ := h.CreateComment(context.Background(), mcp.CallToolRequest{}, createCommentArgs{
		Resource:    "tasks",
		ResourceID:  "15",
		Body:        "This is **done**<script>alert(1)</script>",
		ContentType: "html",
	})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
}

func TestCreateComment_InvalidResource(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	res, _ := h.CreateComment(context.Background(), mcp.CallToolRequest{}, createCommentArgs{
		Resource:   "projects",
		ResourceID: "1",
		Body:       "hi",
	})
	if !res.IsError {
		t.Fatal("expected isError")
	}
	if got := resultText(t, res); !strings.Contains(got, "Invalid resource type. Must be one of: tasks, milestones, notebooks, links, fileversions") {
		t.Errorf("text = %q", got)
	}
}

func TestUpdatePerson_UsesV1HyphenatedKeys(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/people/21.json" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		body := readBody(t, r)
		person, _ := body["person"].(map[string]any)
		if person["first-name"] != "Ada" {
			t.Errorf("person = %v", person)
		}
		if _, ok := person["personId"]; ok {
			t.Error("personId belongs in the path")
		}
		w.Write([]byte(`{"STATUS":"OK"}`))
	})

	first := "Ada"
	res, _ := h.UpdatePerson(context.Background(), mcp.CallToolRequest{}, updatePersonArgs{PersonID: 21, FirstName: &first})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
}

func TestUpdatePerson_RequiresAField(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	res, _ := h.UpdatePerson(context.Background(), mcp.CallToolRequest{}, updatePersonArgs{PersonID: 21})
	if got := resultText(t, res); got != "Error updating person: At least one field to update must be provided" {
		t.Errorf("text = %q", got)
	}
}

func TestAddPeopleToProject_RequiresUsers(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	res, _ := h.AddPeopleToProject(context.Background(), mcp.CallToolRequest{}, addPeopleToProjectArgs{ProjectID: 3})
	if !res.IsError {
		t.Fatal("expected isError")
	}
}

func TestCreateCompany_WrapsBody(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		body := readBody(t, r)
		company, _ := body["company"].(map[string]any)
		if company["name"] != "Acme" {
			t.Errorf("payload = %v", body)
		}
		w.Write([]byte(`{"company":{"id":3,"name":"Acme"}}`))
	})

	res, _ := h.CreateCompany(context.Background(), mcp.CallToolRequest{}, createCompanyArgs{
		CompanyRequest: &CompanyRequest{Name: "Acme"},
	})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
}

func TestGetCalendarEvents_LowercaseStartDate(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("startdate") != "20250101" || q.Has("startDate") {
			t.Errorf("query = %v", q)
		}
		if q.Get("endDate") != "20250131" {
			t.Errorf("endDate = %q", q.Get("endDate"))
		}
		w.Write([]byte(`{"events":[]}`))
	})

	res, _ := h.GetCalendarEvents(context.Background(), mcp.CallToolRequest{}, getCalendarEventsArgs{
		StartDate: "20250101",
		EndDate:   "20250131",
	})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
}

func TestCreateCalendarEvent_RequiresStart(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	res, _ := h.CreateCalendarEvent(context.Background(), mcp.CallToolRequest{}, createCalendarEventArgs{
		Event: &CalendarEvent{Title: "Retro"},
	})
	if got := resultText(t, res); got != "Error: event.start is required (format: YYYY-MM-DDTHH:MM)" {
		t.Errorf("text = %q", got)
	}
}

func TestDeleteCalendarEvent_EmptyResponse(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	res, _ := h.DeleteCalendarEvent(context.Background(), mcp.CallToolRequest{}, calendarEventIDArgs{EventID: 8})
	if got := resultText(t, res); !strings.Contains(got, "Calendar event deleted successfully") {
		t.Errorf("text = %q", got)
	}
}

func TestUtilizationReport_Formats(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects/api/v3/reporting/precanned/utilization.csv":
			if r.URL.Query().Has("format") {
				t.Error("format belongs in the path")
			}
			w.Header().Set("Content-Type", "text/csv")
			w.Write([]byte("name,utilization\nAda,80\n"))
		case "/projects/api/v3/reporting/precanned/utilization.pdf":
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte("%PDF-1.4"))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})

	res, _ := h.GetUtilizationReport(context.Background(), mcp.CallToolRequest{}, getUtilizationReportArgs{Format: "CSV"})
	if got := resultText(t, res); !strings.HasPrefix(got, "name,utilization") {
		t.Errorf("csv text = %q", got)
	}

	res, _ = h.GetUtilizationReport(context.Background(), mcp.CallToolRequest{}, getUtilizationReportArgs{Format: "pdf"})
	var pdf map[string]string
	if err := json.Unmarshal([]byte(resultText(t, res)), &pdf); err != nil {
		t.Fatal(err)
	}
	if pdf["encoding"] != "base64" || pdf["content"] != "JVBERi0xLjQ=" {
		t.Errorf("pdf = %v", pdf)
	}

	res, _ = h.GetUtilizationReport(context.Background(), mcp.CallToolRequest{}, getUtilizationReportArgs{Format: "docx"})
	if !res.IsError {
		t.Error("unsupported format should be an error")
	}
}

func TestCreateNotebook_Validation(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	res, _ := h.CreateNotebook(context.Background(), mcp.CallToolRequest{}, createNotebookArgs{
		Name:      "Runbook",
		ProjectID: 1,
		Contents:  "# Steps",
		Type:      "TEXT",
	})
	if got := resultText(t, res); got != "Error: type must be either MARKDOWN or HTML" {
		t.Errorf("text = %q", got)
	}
}

func TestCreateNotebook_JoinsTagIDs(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/api/v3/projects/1/notebooks.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		body := readBody(t, r)
		nb, _ := body["notebook"].(map[string]any)
		if nb["tagIds"] != "3,4" || nb["type"] != "MARKDOWN" {
			t.Errorf("notebook = %v", nb)
		}
		w.Write([]byte(`{"notebook":{"id":6}}`))
	})

	res, _ := h.CreateNotebook(context.Background(), mcp.CallToolRequest{}, createNotebookArgs{
		Name:      "Runbook",
		ProjectID: 1,
		Contents:  "# Steps",
		Type:      "MARKDOWN",
		TagIDs:    []int{3, 4},
	})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
}

func TestListNotebooks_IncludesContentsByDefault(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("includeContents"); got != "true" {
			t.Errorf("includeContents = %q", got)
		}
		w.Write([]byte(`{"notebooks":[]}`))
	})

	h.ListNotebooks(context.Background(), mcp.CallToolRequest{}, listNotebooksArgs{})
}

func TestGetTaskByID_Stable(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"task":{"id":5,"name":"Same"}}`))
	})

	first, _ := h.GetTaskByID(context.Background(), mcp.CallToolRequest{}, taskIDArgs{TaskID: 5})
	second, _ := h.GetTaskByID(context.Background(), mcp.CallToolRequest{}, taskIDArgs{TaskID: 5})
	if resultText(t, first) != resultText(t, second) {
		t.Error("repeated reads should render identically")
	}
}

func TestGetAllocationTime_PathAndFilters(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/api/v3/allocations/31/time.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Has("allocationId") {
			t.Error("allocationId belongs in the path")
		}
		if q.Get("orderBy") != "date" || q.Get("includeTotals") != "true" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"timelogs":[]}`))
	})

	yes := true
	res, _ := h.GetAllocationTime(context.Background(), mcp.CallToolRequest{}, getAllocationTimeArgs{
		AllocationID:  31,
		OrderBy:       "date",
		IncludeTotals: &yes,
	})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
}

func TestGetTimezones_UsesV1(t *testing.T) {
	h := newTestHandlers(t, t.TempDir(), func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/timezones.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadGateway)
	})

	res, _ := h.GetTimezones(context.Background(), mcp.CallToolRequest{}, noArgs{})
	if got := resultText(t, res); got != "Error retrieving timezones: teamwork returned 502" {
		t.Errorf("text = %q", got)
	}
}
