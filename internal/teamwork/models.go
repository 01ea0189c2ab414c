package teamwork

// UserGroups selects users, companies and teams.
type UserGroups struct {
	UserIDs    []int `json:"userIds,omitempty" jsonschema_description:"List of user IDs"`
	CompanyIDs []int `json:"companyIds,omitempty" jsonschema_description:"List of company IDs"`
	TeamIDs    []int `json:"teamIds,omitempty" jsonschema_description:"List of team IDs"`
}

// CustomFieldValue sets one custom field on a task.
type CustomFieldValue struct {
	CountryCode      string `json:"countryCode,omitempty"`
	CurrencySymbol   string `json:"currencySymbol,omitempty"`
	CustomFieldID    int    `json:"customfieldId,omitempty"`
	URLTextToDisplay string `json:"urlTextToDisplay,omitempty"`
	Value            any    `json:"value,omitempty"`
}

// TaskCustomFields wraps the custom field values.
type TaskCustomFields struct {
	Values []CustomFieldValue `json:"Values,omitempty"`
}

// TaskReminder is a reminder attached to a task.
type TaskReminder struct {
	IsRelative         *bool  `json:"isRelative,omitempty"`
	Note               string `json:"note,omitempty"`
	RelativeNumberDays int    `json:"relativeNumberDays,omitempty"`
	RemindAt           string `json:"remindAt,omitempty"`
	Type               string `json:"type,omitempty"`
	UserID             int    `json:"userId,omitempty"`
}

// TaskRepeatOptions describes a recurring task.
type TaskRepeatOptions struct {
	Duration          int      `json:"duration,omitempty"`
	EditOption        string   `json:"editOption,omitempty"`
	EndsAt            string   `json:"endsAt,omitempty"`
	Frequency         string   `json:"frequency,omitempty"`
	MonthlyRepeatType string   `json:"monthlyRepeatType,omitempty"`
	RRule             string   `json:"rrule,omitempty"`
	SelectedDays      []string `json:"selectedDays,omitempty"`
}

// Task is the writable part of a task.
type Task struct {
	Assignees              *UserGroups        `json:"assignees,omitempty" jsonschema_description:"Users, companies or teams assigned to the task"`
	AttachmentIDs          []int              `json:"attachmentIds,omitempty"`
	ChangeFollowers        *UserGroups        `json:"changeFollowers,omitempty"`
	CommentFollowers       *UserGroups        `json:"commentFollowers,omitempty"`
	CompletedAt            string             `json:"completedAt,omitempty"`
	CompletedBy            int                `json:"completedBy,omitempty"`
	CreatedAt              string             `json:"createdAt,omitempty"`
	CreatedBy              int                `json:"createdBy,omitempty"`
	CRMDealIDs             []int              `json:"crmDealIds,omitempty"`
	CustomFields           *TaskCustomFields  `json:"customFields,omitempty"`
	Description            string             `json:"description,omitempty" jsonschema_description:"Task description. Markdown is accepted."`
	DescriptionContentType string             `json:"descriptionContentType,omitempty"`
	DueAt                  string             `json:"dueAt,omitempty" jsonschema_description:"Due date (YYYY-MM-DD)"`
	EstimatedMinutes       int                `json:"estimatedMinutes,omitempty"`
	GrantAccessTo          *UserGroups        `json:"grantAccessTo,omitempty"`
	HasDeskTickets         *bool              `json:"hasDeskTickets,omitempty"`
	Name                   string             `json:"name,omitempty" jsonschema_description:"The name of the task"`
	OriginalDueDate        string             `json:"originalDueDate,omitempty"`
	ParentTaskID           int                `json:"parentTaskId,omitempty"`
	Priority               string             `json:"priority,omitempty" jsonschema:"enum=low,enum=normal,enum=high" jsonschema_description:"Task priority"`
	Private                *bool              `json:"private,omitempty"`
	Progress               int                `json:"progress,omitempty"`
	Reminders              []TaskReminder     `json:"reminders,omitempty"`
	RepeatOptions          *TaskRepeatOptions `json:"repeatOptions,omitempty"`
	StartAt                string             `json:"startAt,omitempty" jsonschema_description:"Start date (YYYY-MM-DD)"`
	Status                 string             `json:"status,omitempty"`
	TagIDs                 []int              `json:"tagIds,omitempty"`
	TaskgroupID            int                `json:"taskgroupId,omitempty"`
	TasklistID             int                `json:"tasklistId,omitempty"`
	TemplateRoleName       string             `json:"templateRoleName,omitempty"`
	TicketID               int                `json:"ticketId,omitempty"`
}

// TaskOptions are per-request switches for task writes.
type TaskOptions struct {
	AppendAssignees     *bool `json:"appendAssignees,omitempty"`
	CheckInvalidUsers   *bool `json:"checkInvalidusers,omitempty"`
	EveryoneMustDo      *bool `json:"everyoneMustDo,omitempty"`
	FireWebhook         *bool `json:"fireWebhook,omitempty"`
	IsTemplate          *bool `json:"isTemplate,omitempty"`
	LogActivity         *bool `json:"logActivity,omitempty"`
	Notify              *bool `json:"notify,omitempty"`
	ParseInlineTags     *bool `json:"parseInlineTags,omitempty"`
	PositionAfterTaskID int   `json:"positionAfterTaskId,omitempty"`
	PushDependents      *bool `json:"pushDependents,omitempty"`
	PushSubtasks        *bool `json:"pushSubtasks,omitempty"`
	ShiftProjectDates   *bool `json:"shiftProjectDates,omitempty"`
	UseDefaults         *bool `json:"useDefaults,omitempty"`
	UseNotifyViaTWIM    *bool `json:"useNotifyViaTWIM,omitempty"`
}

// TaskFile references an uploaded or pending attachment.
type TaskFile struct {
	CategoryID int    `json:"categoryId,omitempty"`
	ID         int    `json:"id,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

// TaskAttachments lists existing and pending files.
type TaskAttachments struct {
	Files        []TaskFile `json:"files,omitempty"`
	PendingFiles []TaskFile `json:"pendingFiles,omitempty"`
}

// TaskPredecessor is a dependency on another task.
type TaskPredecessor struct {
	ID   int    `json:"id,omitempty"`
	Type string `json:"type,omitempty"`
}

// TaskTag is an inline tag to create and attach.
type TaskTag struct {
	Color     string `json:"color,omitempty"`
	Name      string `json:"name,omitempty"`
	ProjectID int    `json:"projectId,omitempty"`
}

// TaskWorkflows places the task on a workflow board.
type TaskWorkflows struct {
	PositionAfterTask int `json:"positionAfterTask,omitempty"`
	StageID           int `json:"stageId,omitempty"`
	WorkflowID        int `json:"workflowId,omitempty"`
}

// TaskCard places the task on a board column.
type TaskCard struct {
	ColumnID int `json:"columnId,omitempty"`
}

// AttachmentOptions controls how attachments are merged.
type AttachmentOptions struct {
	RemoveOtherFiles *bool `json:"removeOtherFiles,omitempty"`
}

// TaskRequest is the body of task create and update calls.
type TaskRequest struct {
	AttachmentOptions *AttachmentOptions `json:"attachmentOptions,omitempty"`
	Attachments       *TaskAttachments   `json:"attachments,omitempty"`
	Card              *TaskCard          `json:"card,omitempty"`
	Predecessors      []TaskPredecessor  `json:"predecessors,omitempty"`
	Tags              []TaskTag          `json:"tags,omitempty"`
	Task              *Task              `json:"task,omitempty" jsonschema_description:"The task fields"`
	TaskOptions       *TaskOptions       `json:"taskOptions,omitempty"`
	Workflows         *TaskWorkflows     `json:"workflows,omitempty"`
}

// CompanyRequest is the writable part of a company.
type CompanyRequest struct {
	AddressOne  string   `json:"addressOne,omitempty"`
	AddressTwo  string   `json:"addressTwo,omitempty"`
	City        string   `json:"city,omitempty"`
	CountryCode string   `json:"countryCode,omitempty"`
	EmailOne    string   `json:"emailOne,omitempty"`
	EmailTwo    string   `json:"emailTwo,omitempty"`
	Fax         string   `json:"fax,omitempty"`
	Name        string   `json:"name,omitempty" jsonschema_description:"Company name"`
	Phone       string   `json:"phone,omitempty"`
	State       string   `json:"state,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Website     string   `json:"website,omitempty"`
	Zip         string   `json:"zip,omitempty"`
}

// CalendarEventType categorises a calendar event.
type CalendarEventType struct {
	ID    int    `json:"id,omitempty"`
	Color string `json:"color,omitempty"`
	Name  string `json:"name,omitempty"`
}

// CalendarRepeat describes a recurring calendar event.
type CalendarRepeat struct {
	Frequency string `json:"frequency,omitempty" jsonschema:"enum=noRepeat,enum=daily,enum=weekdays,enum=weekly,enum=fortnightly,enum=monthly,enum=yearly"`
	EndsOn    string `json:"endsOn,omitempty"`
}

// CalendarPrivacy restricts who can see a calendar event.
type CalendarPrivacy struct {
	Type string `json:"type,omitempty"`
}

// CalendarReminder fires before a calendar event.
type CalendarReminder struct {
	Type           string `json:"type,omitempty"`
	Amount         int    `json:"amount,omitempty"`
	RemindUsing    string `json:"remindUsing,omitempty"`
	RemindUsingInt int    `json:"remindUsingInt,omitempty"`
}

// CalendarEvent is the v1 hyphenated calendar event body.
type CalendarEvent struct {
	Title               string             `json:"title,omitempty" jsonschema_description:"Event title"`
	Start               string             `json:"start,omitempty" jsonschema_description:"Start (YYYY-MM-DDTHH:MM)"`
	End                 string             `json:"end,omitempty" jsonschema_description:"End (YYYY-MM-DDTHH:MM)"`
	AllDay              *bool              `json:"all-day,omitempty"`
	Description         string             `json:"description,omitempty"`
	Where               string             `json:"where,omitempty"`
	Repeat              *CalendarRepeat    `json:"repeat,omitempty"`
	Privacy             *CalendarPrivacy   `json:"privacy,omitempty"`
	ShowAsBusy          *bool              `json:"show-as-busy,omitempty"`
	Type                *CalendarEventType `json:"type,omitempty"`
	Notify              *bool              `json:"notify,omitempty"`
	AttendeesCanEdit    *bool              `json:"attendees-can-edit,omitempty"`
	ProjectUsersCanEdit *bool              `json:"project-users-can-edit,omitempty"`
	NotifyCurrentUser   *bool              `json:"notify-current-user,omitempty"`
	Reminders           []CalendarReminder `json:"reminders,omitempty"`
	AttendingUserIDs    string             `json:"attending-user-ids,omitempty" jsonschema_description:"Comma separated user IDs"`
	NotifyUserIDs       string             `json:"notify-user-ids,omitempty"`
	EmailUserIDs        string             `json:"email-user-ids,omitempty"`
	ProjectID           int                `json:"projectId,omitempty"`
}
