package teamwork

import (
	_ "embed"
	"fmt"

	"github.com/philipdalen/mcp-workspace/internal/common"
	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

// ToolID names a Teamwork tool.
type ToolID string

const (
	GetProjects                            ToolID = "getProjects"
	GetCurrentProject                      ToolID = "getCurrentProject"
	CreateProject                          ToolID = "createProject"
	GetTasks                               ToolID = "getTasks"
	GetTasksByProjectID                    ToolID = "getTasksByProjectId"
	GetTaskListsByProjectID                ToolID = "getTaskListsByProjectId"
	GetTasksByTaskListID                   ToolID = "getTasksByTaskListId"
	GetTaskByID                            ToolID = "getTaskById"
	CreateTask                             ToolID = "createTask"
	CreateSubTask                          ToolID = "createSubTask"
	UpdateTask                             ToolID = "updateTask"
	DeleteTask                             ToolID = "deleteTask"
	GetTasksMetricsComplete                ToolID = "getTasksMetricsComplete"
	GetTasksMetricsLate                    ToolID = "getTasksMetricsLate"
	GetTaskSubtasks                        ToolID = "getTaskSubtasks"
	GetTaskComments                        ToolID = "getTaskComments"
	CreateTaskList                         ToolID = "createTaskList"
	UpdateTaskList                         ToolID = "updateTaskList"
	DeleteTaskList                         ToolID = "deleteTaskList"
	GetTaskList                            ToolID = "getTaskList"
	CreateComment                          ToolID = "createComment"
	GetPeople                              ToolID = "getPeople"
	GetPersonByID                          ToolID = "getPersonById"
	GetProjectPeople                       ToolID = "getProjectPeople"
	AddPeopleToProject                     ToolID = "addPeopleToProject"
	DeletePerson                           ToolID = "deletePerson"
	UpdatePerson                           ToolID = "updatePerson"
	GetMe                                  ToolID = "getMe"
	GetProjectPerson                       ToolID = "getProjectPerson"
	GetProjectsPeopleMetricsPerformance    ToolID = "getProjectsPeopleMetricsPerformance"
	GetProjectsPeopleUtilization           ToolID = "getProjectsPeopleUtilization"
	CreateCompany                          ToolID = "createCompany"
	UpdateCompany                          ToolID = "updateCompany"
	DeleteCompany                          ToolID = "deleteCompany"
	GetCompanies                           ToolID = "getCompanies"
	GetCompanyByID                         ToolID = "getCompanyById"
	GetProjectsReportingUserTaskCompletion ToolID = "getProjectsReportingUserTaskCompletion"
	GetProjectsReportingUtilization        ToolID = "getProjectsReportingUtilization"
	GetTime                                ToolID = "getTime"
	GetProjectsAllocationsTime             ToolID = "getProjectsAllocationsTime"
	GetTimezones                           ToolID = "getTimezones"
	GetCalendarEvents                      ToolID = "getCalendarEvents"
	GetCalendarEventByID                   ToolID = "getCalendarEventById"
	CreateCalendarEvent                    ToolID = "createCalendarEvent"
	UpdateCalendarEvent                    ToolID = "updateCalendarEvent"
	DeleteCalendarEvent                    ToolID = "deleteCalendarEvent"
	CreateNotebook                         ToolID = "createNotebook"
	UpdateNotebook                         ToolID = "updateNotebook"
	DeleteNotebook                         ToolID = "deleteNotebook"
	GetNotebook                            ToolID = "getNotebook"
	ListNotebooks                          ToolID = "listNotebooks"
)

//go:embed groups.yaml
var groupsYAML []byte

// Groups returns the Teamwork tool groups.
func Groups() (toolkit.Groups, error) {
	return toolkit.ParseGroups(groupsYAML)
}

const taskListDescription = " In the context of Teamwork.com, a task list is a way to group related tasks within a project, " +
	"helping teams organize their work into meaningful sections such as phases, categories, or deliverables. Each task list " +
	"belongs to a specific project and can include multiple tasks that are typically aligned with a common goal. Task lists " +
	"can be associated with milestones, and they support privacy settings that control who can view or interact with the " +
	"tasks they contain. This structure helps teams manage progress, assign responsibilities, and maintain clarity across " +
	"complex projects."

const userDescription = " A user is an individual who has access to one or more projects within a Teamwork site, " +
	"typically as a team member, collaborator, or administrator. Users can be assigned tasks, participate in discussions, " +
	"log time, share files, and interact with other members depending on their permission levels."

// Register adds every Teamwork tool to reg in group order.
func Register(reg *toolkit.Registry, h *Handlers) {
	ro := toolkit.ReadOnly()
	title := toolkit.WithTitle

	// Projects
	reg.Add(toolkit.Typed(string(GetProjects), "Get all projects from Teamwork",
		h.GetProjects, title("Get Projects"), ro))
	reg.Add(toolkit.Typed(string(GetCurrentProject),
		"Get the current solution's Teamwork project, always check the `.teamwork` file in the root of the solution for the Teamwork project ID or ask the user which project they are working on.",
		h.GetCurrentProject, title("Get the Current Project"), ro))
	reg.Add(toolkit.Typed(string(CreateProject), "Create a new project in Teamwork",
		h.CreateProject, title("Create a Project")))

	// Tasks
	reg.Add(toolkit.Typed(string(GetTasks), "Get tasks, Return multiple tasks according to the optional provided filter.",
		h.GetTasks, title("Get Tasks from Teamwork"), ro))
	reg.Add(toolkit.Typed(string(GetTasksByProjectID), "Get all tasks from a specific project in Teamwork",
		h.GetTasksByProjectID, title("Get Tasks by Project ID"), ro))
	reg.Add(toolkit.Typed(string(GetTaskListsByProjectID), "Get all task lists by project ID",
		h.GetTaskListsByProjectID, title("Get Task Lists by Project ID"), ro))
	reg.Add(toolkit.Typed(string(GetTasksByTaskListID), "Get all tasks from a specific task list in Teamwork",
		h.GetTasksByTaskListID, title("Get Tasks by Task List ID"), ro))
	reg.Add(toolkit.Typed(string(GetTaskByID), "Get a specific task by ID from Teamwork",
		h.GetTaskByID, title("Get a Task by its ID"), ro))
	reg.Add(toolkit.Typed(string(CreateTask), "Creates a task. Create a new task in the provided task list.",
		h.CreateTask, title("Create a Task")))
	reg.Add(toolkit.Typed(string(CreateSubTask), "Creates a subtask. Create a new subtask under the provided parent task.",
		h.CreateSubTask, title("Create a Subtask")))
	reg.Add(toolkit.Typed(string(UpdateTask), "Update an existing task. Modify the properties of an existing task.",
		h.UpdateTask, title("Update a Task"), toolkit.Idempotent()))
	reg.Add(toolkit.Typed(string(DeleteTask), "Delete a task from Teamwork",
		h.DeleteTask, title("Delete a Task"), toolkit.Destructive()))
	reg.Add(toolkit.Typed(string(GetTasksMetricsComplete), "Get the total count of completed tasks in Teamwork",
		h.GetTasksMetricsComplete, title("Get the Total Count of Completed Tasks"), ro))
	reg.Add(toolkit.Typed(string(GetTasksMetricsLate), "Get the total count of late tasks in Teamwork",
		h.GetTasksMetricsLate, title("Get the Total Count of Late Tasks"), ro))
	reg.Add(toolkit.Typed(string(GetTaskSubtasks), "Get all subtasks for a specific task in Teamwork",
		h.GetTaskSubtasks, title("Get Task Subtasks"), ro))
	reg.Add(toolkit.Typed(string(GetTaskComments), "Get comments for a specific task from Teamwork",
		h.GetTaskComments, title("Get Task Comments"), ro))
	reg.Add(toolkit.Typed(string(CreateTaskList), "Create a new task list in Teamwork.com."+taskListDescription,
		h.CreateTaskList, title("Create Task List")))
	reg.Add(toolkit.Typed(string(UpdateTaskList), "Update an existing task list in Teamwork.com."+taskListDescription,
		h.UpdateTaskList, title("Update Task List"), toolkit.Idempotent()))
	reg.Add(toolkit.Typed(string(DeleteTaskList), "Delete an existing task list in Teamwork.com."+taskListDescription,
		h.DeleteTaskList, title("Delete Task List"), toolkit.Destructive()))
	reg.Add(toolkit.Typed(string(GetTaskList), "Get an existing task list in Teamwork.com by ID."+taskListDescription,
		h.GetTaskList, title("Get Task List"), ro))

	// Comments
	reg.Add(toolkit.Typed(string(CreateComment),
		"Creates a new comment for a specific resource (tasks, milestones, notebooks, links, fileversions) in Teamwork",
		h.CreateComment, title("Create a Comment")))

	// People
	reg.Add(toolkit.Typed(string(GetPeople), "Get all people from Teamwork",
		h.GetPeople, title("Get People"), ro))
	reg.Add(toolkit.Typed(string(GetPersonByID), "Get a specific person by ID from Teamwork",
		h.GetPersonByID, title("Get a Person by their ID"), ro))
	reg.Add(toolkit.Typed(string(GetProjectPeople), "Get all people assigned to a specific project from Teamwork",
		h.GetProjectPeople, title("Get People in a Project"), ro))
	reg.Add(toolkit.Typed(string(AddPeopleToProject), "Add people to a specific project in Teamwork",
		h.AddPeopleToProject, title("Add People to Project"), toolkit.Idempotent()))
	reg.Add(toolkit.Typed(string(DeletePerson), "Delete a person from Teamwork",
		h.DeletePerson, title("Delete Person"), toolkit.Destructive()))
	reg.Add(toolkit.Typed(string(UpdatePerson),
		"Update a person in Teamwork. This endpoint allows you to modify user information like timezone, name, email, etc.",
		h.UpdatePerson, title("Update a Person"), toolkit.Idempotent()))
	reg.Add(toolkit.Typed(string(GetMe), "Get the logged user in Teamwork.com."+userDescription,
		h.GetMe, title("Get Logged User"), ro))
	reg.Add(toolkit.Typed(string(GetProjectPerson), "Returns one or more people on a project. Retrieve a person(s) record.",
		h.GetProjectPerson, title("Get a Person(s) on a Project"), ro))
	reg.Add(toolkit.Typed(string(GetProjectsPeopleMetricsPerformance),
		"Performance of users completing the most tasks. Count the number of completed tasks by user for the provided period. By default the user with the most completed tasks is shown first.",
		h.GetPeopleMetricsPerformance, title("Get the Metrics of People's Performance in Projects"), ro))
	reg.Add(toolkit.Typed(string(GetProjectsPeopleUtilization),
		"Return the user utilization data. This endpoint provides detailed information about user utilization, including billable and non-billable time, availability, and various utilization metrics.",
		h.GetPeopleUtilization, title("Get the Utilization of People in Projects"), ro))

	// Companies
	reg.Add(toolkit.Typed(string(CreateCompany),
		"Create a new company. This tool allows you to create a company. The request requires a companyRequest object with various properties like addressOne, emailOne, name, and tags.",
		h.CreateCompany, title("Create Company")))
	reg.Add(toolkit.Typed(string(UpdateCompany),
		"This tool allows you to update a company. It requires parameters: companyId and companyRequest.",
		h.UpdateCompany, title("Update Company"), toolkit.Idempotent()))
	reg.Add(toolkit.Typed(string(DeleteCompany),
		"This tool allows you to delete a company, be careful with this tool as it will delete the company and all associated data. It requires the following parameters: companyId.",
		h.DeleteCompany, title("Delete Company"), toolkit.Destructive()))
	reg.Add(toolkit.Typed(string(GetCompanies),
		"Get a list of companies, retrieve all companies for the provided filters. This endpoint allows you to filter companies by various parameters including custom fields, tags, search terms, and more.",
		h.GetCompanies, title("Get Companies"), ro))
	reg.Add(toolkit.Typed(string(GetCompanyByID),
		"Get a specific company by ID. Retrieves detailed information about a company identified by its ID.",
		h.GetCompanyByID, title("Get Company by ID"), ro))

	// Reporting
	reg.Add(toolkit.Typed(string(GetProjectsReportingUserTaskCompletion),
		"Returns task completions for a given user. Retrieve a person record and its task completion stats.",
		h.GetUserTaskCompletion, title("Get the Tasks Completed by a User"), ro))
	reg.Add(toolkit.Typed(string(GetProjectsReportingUtilization),
		"Generate utilization report in various formats (CSV, HTML, PDF, XLSX). Generates a utilization report containing all people for the provided filters. Only the people that the logged-in user can access will be returned.",
		h.GetUtilizationReport, title("Get the Utilization Report"), ro))

	// Time
	reg.Add(toolkit.Typed(string(GetTime),
		"Get all time entries. Return all logged time entries for all projects. Only the time entries that the logged-in user can access will be returned.",
		h.GetTime, title("Get Time Entries"), ro))
	reg.Add(toolkit.Typed(string(GetProjectsAllocationsTime),
		"Get time entries for a specific allocation. Return logged time entries for a specific allocation. Only the time entries that the logged-in user can access will be returned.",
		h.GetAllocationTime, title("Get Time Entries for a Specific Allocation"), ro))
	reg.Add(toolkit.Typed(string(GetTimezones),
		"Get all timezones available in Teamwork. This is useful when you need to update a user's timezone and need to know the available options.",
		h.GetTimezones, title("Get Timezones"), ro))

	// Calendar
	reg.Add(toolkit.Typed(string(GetCalendarEvents),
		"Get calendar events from Teamwork. Retrieve calendar events within a specified date range. Returns events with fields like 'start', 'end', 'all-day', 'where', 'attending-user-ids', 'notify-user-ids', etc.",
		h.GetCalendarEvents, title("Get Calendar Events"), ro))
	reg.Add(toolkit.Typed(string(GetCalendarEventByID),
		"Get a specific calendar event by ID from Teamwork. Returns an event with fields like 'start', 'end', 'all-day', 'where', 'attending-user-ids', 'notify-user-ids', etc.",
		h.GetCalendarEventByID, title("Get Calendar Event by ID"), ro))
	reg.Add(toolkit.Typed(string(CreateCalendarEvent),
		"Create a new calendar event in Teamwork. Calendar events can be meetings, appointments, or any time-based activities. Use ISO 8601 datetime format (YYYY-MM-DDTHH:MM) for start and end times.",
		h.CreateCalendarEvent, title("Create Calendar Event")))
	reg.Add(toolkit.Typed(string(UpdateCalendarEvent),
		"Update an existing calendar event in Teamwork. Use ISO 8601 datetime format (YYYY-MM-DDTHH:MM) for start and end times. All fields are optional except eventId.",
		h.UpdateCalendarEvent, title("Update Calendar Event"), toolkit.Idempotent()))
	reg.Add(toolkit.Typed(string(DeleteCalendarEvent),
		"Delete a calendar event from Teamwork. This action cannot be undone.",
		h.DeleteCalendarEvent, title("Delete Calendar Event"), toolkit.Destructive()))

	// Notebooks
	reg.Add(toolkit.Typed(string(CreateNotebook), "Create a new notebook in Teamwork.com. "+notebookDescription,
		h.CreateNotebook, title("Create Notebook")))
	reg.Add(toolkit.Typed(string(UpdateNotebook), "Update an existing notebook in Teamwork.com. "+notebookDescription,
		h.UpdateNotebook, title("Update Notebook"), toolkit.Idempotent()))
	reg.Add(toolkit.Typed(string(DeleteNotebook), "Delete an existing notebook in Teamwork.com. "+notebookDescription,
		h.DeleteNotebook, title("Delete Notebook"), toolkit.Destructive()))
	reg.Add(toolkit.Typed(string(GetNotebook), "Get an existing notebook in Teamwork.com. "+notebookDescription,
		h.GetNotebook, title("Get Notebook"), ro))
	reg.Add(toolkit.Typed(string(ListNotebooks), "List notebooks in Teamwork.com. "+notebookDescription,
		h.ListNotebooks, title("List Notebooks"), ro))
}

// NewDispatcher builds the Teamwork registry and wraps it with the allow
// and deny lists.
func NewDispatcher(h *Handlers, allow, deny []string, logger *common.Logger) (*toolkit.Dispatcher, error) {
	reg := toolkit.NewRegistry()
	Register(reg, h)

	groups, err := Groups()
	if err != nil {
		return nil, fmt.Errorf("failed to parse teamwork tool groups: %w", err)
	}
	if err := groups.Validate(reg); err != nil {
		return nil, err
	}
	return toolkit.NewDispatcher(reg, toolkit.NewFilter(groups, allow, deny), logger), nil
}
