package teamwork

import (
	"testing"
)

func TestQueryKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fieldsTaskSequences", "fields[taskSequences]"},
		{"fieldsUsers", "fields[users]"},
		{"fieldsProjectPermissions", "fields[ProjectPermissions]"},
		{"fields[utilizations]", "fields[utilizations]"},
		{"fields", "fields"},
		{"fieldset", "fieldset"},
		{"pageSize", "pageSize"},
	}
	for _, tt := range tests {
		if got := queryKey(tt.in); got != tt.want {
			t.Errorf("queryKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQueryFrom(t *testing.T) {
	yes, no := true, false
	args := getTasksArgs{
		SearchTerm:            "bug",
		PageSize:              50,
		IncludeCompletedTasks: &yes,
		OnlyUntaggedTasks:     &no,
		ProjectIDs:            []int{1, 2, 3},
		FieldsTaskSequences:   []string{"id", "rrule"},
		ResponsiblePartyIDs:   7,
	}
	q, err := queryFrom(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"searchTerm":            "bug",
		"pageSize":              "50",
		"includeCompletedTasks": "true",
		"onlyUntaggedTasks":     "false",
		"projectIds":            "1,2,3",
		"fields[taskSequences]": "id,rrule",
		"responsiblePartyIds":   "7",
	}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if len(q) != len(want) {
		t.Errorf("unexpected extra keys: %v", q)
	}
}

func TestQueryFrom_OmitsPathKeys(t *testing.T) {
	q, err := queryFrom(getTaskSubtasksArgs{TaskID: 9, Page: 2}, "taskId")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Has("taskId") {
		t.Error("taskId should not be a query parameter")
	}
	if q.Get("page") != "2" {
		t.Errorf("page = %q", q.Get("page"))
	}
}

func TestCheckPageSize(t *testing.T) {
	if err := checkPageSize(250); err != nil {
		t.Errorf("250 should be allowed: %v", err)
	}
	err := checkPageSize(251)
	if err == nil {
		t.Fatal("expected error above maximum")
	}
	if err.Error() != "pageSize is more than max number of items allowed: 250" {
		t.Errorf("error = %q", err.Error())
	}
}
