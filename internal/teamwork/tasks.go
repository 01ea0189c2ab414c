package teamwork

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

type projectIDArgs struct {
	ProjectID int `json:"projectId" jsonschema_description:"The ID of the project"`
}

type taskIDArgs struct {
	TaskID int `json:"taskId" jsonschema_description:"The ID of the task"`
}

type taskListIDArgs struct {
	ID int `json:"id" jsonschema_description:"The ID of the task list"`
}

type noArgs struct{}

type getTasksByTaskListIDArgs struct {
	TasklistID            int   `json:"tasklistId" jsonschema_description:"The ID of the task list to get tasks from"`
	Page                  int   `json:"page,omitempty" jsonschema_description:"Page number for pagination"`
	PageSize              int   `json:"pageSize,omitempty" jsonschema_description:"Number of items per page"`
	IncludeCompletedTasks *bool `json:"includeCompletedTasks,omitempty" jsonschema_description:"Include completed tasks in the results"`
}

type getTaskSubtasksArgs struct {
	TaskID                int   `json:"taskId" jsonschema_description:"The ID of the task to get subtasks from"`
	Page                  int   `json:"page,omitempty" jsonschema_description:"Page number for pagination"`
	PageSize              int   `json:"pageSize,omitempty" jsonschema_description:"Number of items per page"`
	IncludeCompletedTasks *bool `json:"includeCompletedTasks,omitempty" jsonschema_description:"Include completed tasks in the results"`
}

type getTaskCommentsArgs struct {
	TaskID        int    `json:"taskId" jsonschema_description:"The ID of the task to get comments for"`
	Page          int    `json:"page,omitempty" jsonschema_description:"Page number for pagination"`
	PageSize      int    `json:"pageSize,omitempty" jsonschema_description:"Number of items per page"`
	OrderBy       string `json:"orderBy,omitempty" jsonschema:"enum=all,enum=date,enum=project,enum=user,enum=type" jsonschema_description:"Order by field"`
	OrderMode     string `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"Order mode"`
	SearchTerm    string `json:"searchTerm,omitempty" jsonschema_description:"Filter by comment content"`
	UpdatedAfter  string `json:"updatedAfter,omitempty" jsonschema_description:"Filter by updated after date"`
	CommentStatus string `json:"commentStatus,omitempty" jsonschema:"enum=all,enum=read,enum=unread" jsonschema_description:"Filter by comment status"`
}

type createTaskArgs struct {
	TasklistID  int          `json:"tasklistId,omitempty" jsonschema_description:"The ID of the task list to create the task in. Defaults to TASKLISTID in the .teamwork file, or the only task list of its PROJECTID."`
	TaskRequest *TaskRequest `json:"taskRequest" jsonschema_description:"The task to create. taskRequest.task.name is required."`
}

type createSubTaskArgs struct {
	TaskID      int          `json:"taskId" jsonschema_description:"The ID of the parent task"`
	TaskRequest *TaskRequest `json:"taskRequest" jsonschema_description:"The subtask to create. taskRequest.task.name is required."`
}

type updateTaskArgs struct {
	TaskID      int          `json:"taskId" jsonschema_description:"The ID of the task to update"`
	TaskRequest *TaskRequest `json:"taskRequest" jsonschema_description:"The task fields to change"`
}

type createTaskListArgs struct {
	ProjectID   int    `json:"projectId" jsonschema_description:"The ID of the project to create the task list in"`
	Name        string `json:"name" jsonschema_description:"The name of the task list"`
	Description string `json:"description,omitempty" jsonschema_description:"The description of the task list"`
	MilestoneID int    `json:"milestoneId,omitempty" jsonschema_description:"The ID of a milestone to associate with the task list"`
}

type updateTaskListArgs struct {
	ID          int     `json:"id" jsonschema_description:"The ID of the task list to update"`
	Name        *string `json:"name,omitempty" jsonschema_description:"The new name of the task list"`
	Description *string `json:"description,omitempty" jsonschema_description:"The new description of the task list"`
	MilestoneID *int    `json:"milestoneId,omitempty" jsonschema_description:"The ID of a milestone to associate with the task list"`
}

// GetTasks lists tasks across projects.
func (h *Handlers) GetTasks(ctx context.Context, _ mcp.CallToolRequest, args getTasksArgs) (*mcp.CallToolResult, error) {
	return h.list(ctx, h.v3, "tasks.json", args, args.PageSize, "Error retrieving tasks"), nil
}

func (h *Handlers) GetTasksByProjectID(ctx context.Context, _ mcp.CallToolRequest, args projectIDArgs) (*mcp.CallToolResult, error) {
	data, err := h.v3.Get(ctx, fmt.Sprintf("projects/%d/tasks.json", args.ProjectID), nil)
	return h.respond(data, err, "Error retrieving tasks for project"), nil
}

func (h *Handlers) GetTaskListsByProjectID(ctx context.Context, _ mcp.CallToolRequest, args projectIDArgs) (*mcp.CallToolResult, error) {
	data, err := h.v3.Get(ctx, fmt.Sprintf("projects/%d/tasklists.json", args.ProjectID), nil)
	return h.respond(data, err, "Error retrieving task lists"), nil
}

func (h *Handlers) GetTasksByTaskListID(ctx context.Context, _ mcp.CallToolRequest, args getTasksByTaskListIDArgs) (*mcp.CallToolResult, error) {
	return h.list(ctx, h.v3, fmt.Sprintf("tasklists/%d/tasks.json", args.TasklistID), args, args.PageSize, "Error", "tasklistId"), nil
}

func (h *Handlers) GetTaskByID(ctx context.Context, _ mcp.CallToolRequest, args taskIDArgs) (*mcp.CallToolResult, error) {
	data, err := h.v3.Get(ctx, fmt.Sprintf("tasks/%d.json", args.TaskID), nil)
	return h.respond(data, err, "Error retrieving task"), nil
}

func (h *Handlers) GetTaskSubtasks(ctx context.Context, _ mcp.CallToolRequest, args getTaskSubtasksArgs) (*mcp.CallToolResult, error) {
	return h.list(ctx, h.v3, fmt.Sprintf("tasks/%d/subtasks.json", args.TaskID), args, args.PageSize, "Error", "taskId"), nil
}

func (h *Handlers) GetTaskComments(ctx context.Context, _ mcp.CallToolRequest, args getTaskCommentsArgs) (*mcp.CallToolResult, error) {
	return h.list(ctx, h.v3, fmt.Sprintf("tasks/%d/comments.json", args.TaskID), args, args.PageSize, "Error retrieving task comments", "taskId"), nil
}

func (h *Handlers) GetTasksMetricsComplete(ctx context.Context, _ mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, error) {
	data, err := h.v3.Get(ctx, "tasks/metrics/complete.json", nil)
	return h.respond(data, err, "Error"), nil
}

func (h *Handlers) GetTasksMetricsLate(ctx context.Context, _ mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, error) {
	data, err := h.v3.Get(ctx, "tasks/metrics/late.json", nil)
	return h.respond(data, err, "Error"), nil
}

// validateTaskRequest checks the fields every task write needs.
func validateTaskRequest(req *TaskRequest) string {
	if req == nil || req.Task == nil {
		return "Invalid task request: missing task object. Please provide a taskRequest.task object."
	}
	if req.Task.Name == "" {
		return "Invalid task request: missing task name. Please provide taskRequest.task.name."
	}
	return ""
}

// CreateTask creates a task, defaulting the task list from the marker file.
func (h *Handlers) CreateTask(ctx context.Context, _ mcp.CallToolRequest, args createTaskArgs) (*mcp.CallToolResult, error) {
	tasklistID := args.TasklistID
	if tasklistID == 0 {
		id, msg := h.resolveTaskList(ctx)
		if msg != "" {
			return toolkit.ErrorResult(msg), nil
		}
		tasklistID = id
	}
	if msg := validateTaskRequest(args.TaskRequest); msg != "" {
		return toolkit.ErrorResult(msg), nil
	}

	h.logger.Info().Int("tasklist_id", tasklistID).Str("name", args.TaskRequest.Task.Name).Msg("creating task")
	data, err := h.v3.Post(ctx, fmt.Sprintf("tasklists/%d/tasks.json", tasklistID), args.TaskRequest)
	return h.respond(data, err, "Error creating task"), nil
}

// resolveTaskList reads TASKLISTID from the marker file. Without one it
// looks up the task lists of the marker's PROJECTID and, when exactly one
// exists, records it for next time.
func (h *Handlers) resolveTaskList(ctx context.Context) (int, string) {
	const missing = "No tasklistId provided and couldn't find one in .teamwork file. Please provide a tasklistId."

	marker, err := ReadMarker(h.solutionRoot)
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("failed to read .teamwork file")
		return 0, missing
	}
	if marker.TaskListID != 0 {
		return marker.TaskListID, ""
	}
	if marker.ProjectID == 0 {
		return 0, missing
	}

	data, err := h.v3.Get(ctx, fmt.Sprintf("projects/%d/tasklists.json", marker.ProjectID), nil)
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Int("project_id", marker.ProjectID).Msg("failed to list task lists")
		return 0, missing
	}
	ids := taskListIDs(data)
	switch {
	case len(ids) == 1:
		if err := AppendTaskListID(h.solutionRoot, ids[0]); err != nil {
			h.logger.Warn().Str("error", err.Error()).Msg("failed to update .teamwork file")
		}
		return ids[0], ""
	case len(ids) > 1:
		return 0, fmt.Sprintf("Multiple tasklists found for project %d. Please specify a tasklistId in your request.", marker.ProjectID)
	}
	return 0, missing
}

// taskListIDs accepts both a bare array and the {"tasklists": [...]} shape.
func taskListIDs(data json.RawMessage) []int {
	type item struct {
		ID int `json:"id"`
	}
	var items []item
	if err := json.Unmarshal(data, &items); err != nil {
		var envelope struct {
			Tasklists []item `json:"tasklists"`
		}
		if json.Unmarshal(data, &envelope) != nil {
			return nil
		}
		items = envelope.Tasklists
	}
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func (h *Handlers) CreateSubTask(ctx context.Context, _ mcp.CallToolRequest, args createSubTaskArgs) (*mcp.CallToolResult, error) {
	if args.TaskID == 0 {
		return toolkit.ErrorResult("No taskId provided. Please provide a taskId of the parent task."), nil
	}
	if msg := validateTaskRequest(args.TaskRequest); msg != "" {
		return toolkit.ErrorResult(msg), nil
	}
	data, err := h.v3.Post(ctx, fmt.Sprintf("tasks/%d/subtasks.json", args.TaskID), args.TaskRequest)
	return h.respond(data, err, "Error creating subtask"), nil
}

// UpdateTask patches a task and reports its name.
func (h *Handlers) UpdateTask(ctx context.Context, _ mcp.CallToolRequest, args updateTaskArgs) (*mcp.CallToolResult, error) {
	if args.TaskID == 0 {
		return toolkit.ErrorResult("Invalid request: missing taskId. Please provide a taskId."), nil
	}
	if args.TaskRequest == nil || args.TaskRequest.Task == nil {
		return toolkit.ErrorResult("Invalid request: missing taskRequest.task. Please provide task data to update."), nil
	}
	data, err := h.v3.Patch(ctx, fmt.Sprintf("tasks/%d.json", args.TaskID), args.TaskRequest)
	if err != nil {
		return h.fail("Error", err), nil
	}
	var updated struct {
		Task struct {
			Name string `json:"name"`
		} `json:"task"`
	}
	if json.Unmarshal(data, &updated) == nil && updated.Task.Name != "" {
		return toolkit.TextResult(fmt.Sprintf("Task '%s' updated successfully", updated.Task.Name)), nil
	}
	return toolkit.TextResult("Task updated successfully"), nil
}

func (h *Handlers) DeleteTask(ctx context.Context, _ mcp.CallToolRequest, args taskIDArgs) (*mcp.CallToolResult, error) {
	_, err := h.v3.Delete(ctx, fmt.Sprintf("tasks/%d.json", args.TaskID))
	if err != nil {
		return h.fail("Error deleting task", err), nil
	}
	return toolkit.JSONResult(map[string]bool{"success": true}), nil
}

func (h *Handlers) CreateTaskList(ctx context.Context, _ mcp.CallToolRequest, args createTaskListArgs) (*mcp.CallToolResult, error) {
	if args.Name == "" {
		return toolkit.ErrorResult("Error creating task list: Invalid task list data: missing name"), nil
	}
	list := map[string]any{
		"name":        args.Name,
		"description": args.Description,
	}
	if args.MilestoneID != 0 {
		list["milestone-id"] = args.MilestoneID
	}
	data, err := h.v3.Post(ctx, fmt.Sprintf("projects/%d/tasklists.json", args.ProjectID), map[string]any{"todo-list": list})
	if err != nil {
		return h.fail("Error creating task list", err), nil
	}
	if len(data) == 0 {
		return toolkit.JSONResult(map[string]any{
			"success": true,
			"message": "Task list created successfully, but no details returned",
		}), nil
	}
	return toolkit.JSONResult(data), nil
}

func (h *Handlers) UpdateTaskList(ctx context.Context, _ mcp.CallToolRequest, args updateTaskListArgs) (*mcp.CallToolResult, error) {
	list := map[string]any{}
	if args.Name != nil {
		list["name"] = *args.Name
	}
	if args.Description != nil {
		list["description"] = *args.Description
	}
	if args.MilestoneID != nil {
		list["milestone-id"] = *args.MilestoneID
	}
	if len(list) == 0 {
		return toolkit.ErrorResult("Error updating task list: Invalid task list data: at least one field (name, description, or milestoneId) must be provided"), nil
	}
	_, err := h.v3.Put(ctx, fmt.Sprintf("tasklists/%d.json", args.ID), map[string]any{"todo-list": list})
	if err != nil {
		return h.fail("Error updating task list", err), nil
	}
	return toolkit.TextResult("Task list updated successfully"), nil
}

func (h *Handlers) DeleteTaskList(ctx context.Context, _ mcp.CallToolRequest, args taskListIDArgs) (*mcp.CallToolResult, error) {
	_, err := h.v3.Delete(ctx, fmt.Sprintf("tasklists/%d.json", args.ID))
	if err != nil {
		return h.fail("Error deleting task list", err), nil
	}
	return toolkit.TextResult("Task list deleted successfully"), nil
}

func (h *Handlers) GetTaskList(ctx context.Context, _ mcp.CallToolRequest, args taskListIDArgs) (*mcp.CallToolResult, error) {
	data, err := h.v3.Get(ctx, fmt.Sprintf("tasklists/%d.json", args.ID), nil)
	return h.respond(data, err, "Error retrieving task list"), nil
}
