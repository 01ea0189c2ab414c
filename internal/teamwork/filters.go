package teamwork

// Filter arguments for the list endpoints. Each json key is sent as a query
// parameter by queryFrom, except the path parameters named at the call site.

type getTasksArgs struct {
	UpdatedBefore                    string   `json:"updatedBefore,omitempty" jsonschema_description:"filter by updated before date"`
	UpdatedAfter                     string   `json:"updatedAfter,omitempty" jsonschema_description:"filter by updated after date"`
	Today                            string   `json:"today,omitempty" jsonschema_description:"filter by today"`
	TaskFilter                       string   `json:"taskFilter,omitempty" jsonschema:"enum=all,enum=anytime,enum=completed,enum=created,enum=overdue,enum=today,enum=yesterday,enum=started,enum=tomorrow,enum=thisweek,enum=within7,enum=within14,enum=within30,enum=within365,enum=nodate,enum=noduedate,enum=nostartdate,enum=newTaskDefaults,enum=hasDate" jsonschema_description:"filter by a taskFilter"`
	StartDate                        string   `json:"startDate,omitempty" jsonschema_description:"filter on start date"`
	SearchTerm                       string   `json:"searchTerm,omitempty" jsonschema_description:"filter by search term"`
	ReportType                       string   `json:"reportType,omitempty" jsonschema:"enum=plannedvsactual,enum=task,enum=tasktime" jsonschema_description:"define the type of the report"`
	ReportFormat                     string   `json:"reportFormat,omitempty" jsonschema:"enum=html,enum=pdf" jsonschema_description:"define the format of the report"`
	Priority                         string   `json:"priority,omitempty" jsonschema_description:"filter by task priority"`
	OrderMode                        string   `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"order mode"`
	OrderBy                          string   `json:"orderBy,omitempty" jsonschema:"enum=startdate,enum=createdat,enum=priority,enum=project,enum=flattenedtasklist,enum=company,enum=manual,enum=active,enum=completedat,enum=duestartdate,enum=alldates,enum=tasklistname,enum=tasklistdisplayorder,enum=tasklistid,enum=duedate,enum=updatedat,enum=taskname,enum=createdby,enum=completedby,enum=assignedto,enum=taskstatus,enum=taskduedate,enum=customfield,enum=estimatedtime,enum=boardcolumn,enum=taskgroupid,enum=taskgroupname,enum=taskgroup,enum=displayorder,enum=projectmanual,enum=stagedisplayorder,enum=stage" jsonschema_description:"order by"`
	NotCompletedBefore               string   `json:"notCompletedBefore,omitempty" jsonschema_description:"filter by projects that have not been completed before the given date"`
	EndDate                          string   `json:"endDate,omitempty" jsonschema_description:"filter on end date"`
	DueBefore                        string   `json:"dueBefore,omitempty" jsonschema_description:"filter before a due date"`
	DueAfter                         string   `json:"dueAfter,omitempty" jsonschema_description:"filter after a due date"`
	DeletedAfter                     string   `json:"deletedAfter,omitempty" jsonschema_description:"filter on deleted after date"`
	CreatedFilter                    string   `json:"createdFilter,omitempty" jsonschema:"enum=anytime,enum=today,enum=yesterday,enum=custom" jsonschema_description:"filter by created filter"`
	CreatedDateCode                  string   `json:"createdDateCode,omitempty" jsonschema_description:"filter by created date code"`
	CreatedBefore                    string   `json:"createdBefore,omitempty" jsonschema_description:"filter by created before date"`
	CreatedAfter                     string   `json:"createdAfter,omitempty" jsonschema_description:"filter by created after date"`
	CompletedBefore                  string   `json:"completedBefore,omitempty" jsonschema_description:"filter by completed before date"`
	CompletedAfter                   string   `json:"completedAfter,omitempty" jsonschema_description:"filter by completed after date"`
	UpdatedByUserID                  int      `json:"updatedByUserId,omitempty" jsonschema_description:"filter by updated user id"`
	ParentTaskID                     int      `json:"parentTaskId,omitempty" jsonschema_description:"filter by parent task ids"`
	PageSize                         int      `json:"pageSize,omitempty" jsonschema_description:"number of items in a page"`
	Page                             int      `json:"page,omitempty" jsonschema_description:"page number"`
	OrderByCustomFieldID             int      `json:"orderByCustomFieldId,omitempty" jsonschema_description:"order by custom field id when orderBy is equal to custom field"`
	IncludeTaskID                    int      `json:"includeTaskId,omitempty" jsonschema_description:"include task id"`
	FilterID                         int      `json:"filterId,omitempty" jsonschema_description:"provide a user saved filter ID"`
	CompletedByUserID                int      `json:"completedByUserId,omitempty" jsonschema_description:"filter by completed user id"`
	UseTaskDateRange                 *bool    `json:"useTaskDateRange,omitempty" jsonschema_description:"use date range logic from table when getting the tasks"`
	UseStartDatesForTodaysTasks      *bool    `json:"useStartDatesForTodaysTasks,omitempty" jsonschema_description:"use start dates for todays tasks"`
	UseFormulaFields                 *bool    `json:"useFormulaFields,omitempty" jsonschema_description:"use formula fields"`
	UseAllProjects                   *bool    `json:"useAllProjects,omitempty" jsonschema_description:"filter on all projects"`
	SortActiveFirst                  *bool    `json:"sortActiveFirst,omitempty" jsonschema_description:"sort active tasks first"`
	SkipCounts                       *bool    `json:"skipCounts,omitempty" jsonschema_description:"Skip counts allows you to skip doing counts on a list API endpoint for performance reasons."`
	ShowDeleted                      *bool    `json:"showDeleted,omitempty" jsonschema_description:"include deleted items"`
	ShowCompletedLists               *bool    `json:"showCompletedLists,omitempty" jsonschema_description:"include tasks from completed lists"`
	SearchCompaniesTeams             *bool    `json:"searchCompaniesTeams,omitempty" jsonschema_description:"include companies and teams in the search term"`
	SearchAssignees                  *bool    `json:"searchAssignees,omitempty" jsonschema_description:"include assignees in the search"`
	OnlyUntaggedTasks                *bool    `json:"onlyUntaggedTasks,omitempty" jsonschema_description:"only untagged tasks"`
	OnlyUnplanned                    *bool    `json:"onlyUnplanned,omitempty" jsonschema_description:"only return tasks that are unplanned. Not assigned, no due date or missing estimated time."`
	OnlyTasksWithUnreadComments      *bool    `json:"onlyTasksWithUnreadComments,omitempty" jsonschema_description:"filter by only tasks with unread comments"`
	OnlyTasksWithTickets             *bool    `json:"onlyTasksWithTickets,omitempty" jsonschema_description:"filter by only tasks with tickets"`
	OnlyTasksWithEstimatedTime       *bool    `json:"onlyTasksWithEstimatedTime,omitempty" jsonschema_description:"only return tasks with estimated time"`
	OnlyStarredProjects              *bool    `json:"onlyStarredProjects,omitempty" jsonschema_description:"filter by starred projects only"`
	OnlyAdminProjects                *bool    `json:"onlyAdminProjects,omitempty" jsonschema_description:"only include tasks from projects where the user is strictly a project admin. site admins have visibility to all projects."`
	NestSubTasks                     *bool    `json:"nestSubTasks,omitempty" jsonschema_description:"nest sub tasks"`
	MatchAllTags                     *bool    `json:"matchAllTags,omitempty" jsonschema_description:"match all tags"`
	MatchAllProjectTags              *bool    `json:"matchAllProjectTags,omitempty" jsonschema_description:"match all project tags"`
	MatchAllExcludedTags             *bool    `json:"matchAllExcludedTags,omitempty" jsonschema_description:"match all exclude tags"`
	IsReportDownload                 *bool    `json:"isReportDownload,omitempty" jsonschema_description:"generate a report export."`
	IncludeUpdate                    *bool    `json:"includeUpdate,omitempty" jsonschema_description:"include tasks latest update action"`
	IncludeUntaggedTasks             *bool    `json:"includeUntaggedTasks,omitempty" jsonschema_description:"include untagged tasks"`
	IncludeTomorrow                  *bool    `json:"includeTomorrow,omitempty" jsonschema_description:"filter by include tomorrow"`
	IncludeToday                     *bool    `json:"includeToday,omitempty" jsonschema_description:"filter by include today"`
	IncludeTeamUserIDs               *bool    `json:"includeTeamUserIds,omitempty" jsonschema_description:"include members of the given teams"`
	IncludeTasksWithoutDueDates      *bool    `json:"includeTasksWithoutDueDates,omitempty" jsonschema_description:"include tasks without due dates"`
	IncludeTasksWithCards            *bool    `json:"includeTasksWithCards,omitempty" jsonschema_description:"include tasks with cards"`
	IncludeTasksFromDeletedLists     *bool    `json:"includeTasksFromDeletedLists,omitempty" jsonschema_description:"include tasks from deleted lists"`
	IncludeTasksCount                *bool    `json:"includeTasksCount,omitempty" jsonschema_description:"include total count of tasks for given filter"`
	IncludeRelatedTasks              *bool    `json:"includeRelatedTasks,omitempty" jsonschema_description:"include ids of active subtasks, dependencies, predecessors"`
	IncludePrivateItems              *bool    `json:"includePrivateItems,omitempty" jsonschema_description:"include private items"`
	IncludeOverdueTasks              *bool    `json:"includeOverdueTasks,omitempty" jsonschema_description:"include overdue tasks"`
	IncludeOriginalDueDate           *bool    `json:"includeOriginalDueDate,omitempty" jsonschema_description:"include original due date of a task"`
	IncludeCustomFields              *bool    `json:"includeCustomFields,omitempty" jsonschema_description:"include custom fields"`
	IncludeCompletedTasks            *bool    `json:"includeCompletedTasks,omitempty" jsonschema_description:"include completed tasks"`
	IncludeCompletedPredecessors     *bool    `json:"includeCompletedPredecessors,omitempty" jsonschema_description:"include ids of completed predecessors. It must be provided with includeRelatedTasks flag or with the predecessors sideload."`
	IncludeCompanyUserIDs            *bool    `json:"includeCompanyUserIds,omitempty" jsonschema_description:"include members of the given companies"`
	IncludeCommentStats              *bool    `json:"includeCommentStats,omitempty" jsonschema_description:"include number of unread and read comments for each task"`
	IncludeBlocked                   *bool    `json:"includeBlocked,omitempty" jsonschema_description:"filter by include blocked"`
	IncludeAttachmentCommentStats    *bool    `json:"includeAttachmentCommentStats,omitempty" jsonschema_description:"include number of unread and read comments for each file attachment"`
	IncludeAssigneeTeams             *bool    `json:"includeAssigneeTeams,omitempty" jsonschema_description:"include teams related to the responsible user ids"`
	IncludeAssigneeCompanies         *bool    `json:"includeAssigneeCompanies,omitempty" jsonschema_description:"include companies related to the responsible user ids"`
	IncludeArchivedProjects          *bool    `json:"includeArchivedProjects,omitempty" jsonschema_description:"include archived projects"`
	IncludeAllComments               *bool    `json:"includeAllComments,omitempty" jsonschema_description:"include all comments"`
	GroupByTasklist                  *bool    `json:"groupByTasklist,omitempty" jsonschema_description:"group by tasklist"`
	GroupByTaskgroup                 *bool    `json:"groupByTaskgroup,omitempty" jsonschema_description:"group by taskgroup"`
	GetSubTasks                      *bool    `json:"getSubTasks,omitempty" jsonschema_description:"get sub tasks"`
	GetFiles                         *bool    `json:"getFiles,omitempty" jsonschema_description:"get files"`
	FallbackToMilestoneDueDate       *bool    `json:"fallbackToMilestoneDueDate,omitempty" jsonschema_description:"set due date as milestone due date if due date is null and there's a related milestone"`
	ExtractTemplateRoleName          *bool    `json:"extractTemplateRoleName,omitempty" jsonschema_description:"For tasks created in a project template it's possible to assign a role instead of people, companies or teams. This role is then stored with the task name as a prefix. When this flag is enabled it will extract the role name and return it inside a special field."`
	ExcludeAssigneeNotOnProjectTeams *bool    `json:"excludeAssigneeNotOnProjectTeams,omitempty" jsonschema_description:"exclude assignee not on project teams"`
	CompletedOnly                    *bool    `json:"completedOnly,omitempty" jsonschema_description:"only completed tasks"`
	CheckForReminders                *bool    `json:"checkForReminders,omitempty" jsonschema_description:"check if task has reminders"`
	AllowAssigneesOutsideProject     *bool    `json:"allowAssigneesOutsideProject,omitempty" jsonschema_description:"when filtering by assigned or unassigned tasks, include assignees that are not in the project."`
	TasksSelectedColumns             []string `json:"tasksSelectedColumns,omitempty" jsonschema_description:"customize the report by selecting columns to be displayed for tasks report"`
	TasklistIDs                      []int    `json:"tasklistIds,omitempty" jsonschema_description:"filter by tasklist ids"`
	TaskgroupIDs                     []int    `json:"taskgroupIds,omitempty" jsonschema_description:"filter by taskgroup ids"`
	TaskIncludedSet                  []string `json:"taskIncludedSet,omitempty" jsonschema_description:"filter by task included set"`
	Tags                             []string `json:"tags,omitempty" jsonschema_description:"filter by tag values"`
	TagIDs                           []int    `json:"tagIds,omitempty" jsonschema_description:"filter by tag ids"`
	Status                           []string `json:"status,omitempty" jsonschema_description:"filter by list of task status"`
	SkipCRMDealIDs                   []int    `json:"skipCRMDealIds,omitempty" jsonschema_description:"skip crm deal ids"`
	SelectedColumns                  []string `json:"selectedColumns,omitempty" jsonschema_description:"customize the report by selecting columns to be displayed for planned vs actual."`
	ResponsiblePartyIDs              any      `json:"responsiblePartyIds,omitempty" jsonschema_description:"filter by responsible party ids (single ID or array of IDs)"`
	ProjectTagIDs                    []int    `json:"projectTagIds,omitempty" jsonschema_description:"filter by project tag ids"`
	ProjectStatuses                  []string `json:"projectStatuses,omitempty" jsonschema_description:"filter by project status"`
	ProjectOwnerIDs                  []int    `json:"projectOwnerIds,omitempty" jsonschema_description:"filter by project owner ids"`
	ProjectIDs                       []int    `json:"projectIds,omitempty" jsonschema_description:"filter by project ids"`
	ProjectHealths                   []string `json:"projectHealths,omitempty" jsonschema_description:"filter by project healths 0: not set 1: bad 2: ok 3: good"`
	ProjectFeaturesEnabled           []string `json:"projectFeaturesEnabled,omitempty" jsonschema_description:"filter by projects that have features enabled"`
	ProjectCompanyIDs                []int    `json:"projectCompanyIds,omitempty" jsonschema_description:"filter by company ids"`
	ProjectCategoryIDs               []int    `json:"projectCategoryIds,omitempty" jsonschema_description:"filter by project category ids"`
	IncludeCustomFieldIDs            []int    `json:"includeCustomFieldIds,omitempty" jsonschema_description:"include specific custom fields"`
	Include                          []string `json:"include,omitempty" jsonschema_description:"include"`
	IDs                              []int    `json:"ids,omitempty" jsonschema_description:"filter by task ids"`
	FollowedByUserIDs                []int    `json:"followedByUserIds,omitempty" jsonschema_description:"filter by followed by user ids"`
	FilterBoardColumnIDs             []int    `json:"filterBoardColumnIds,omitempty" jsonschema_description:"filter by board column ids"`
	FieldsUsers                      []string `json:"fieldsUsers,omitempty" jsonschema_description:"Query parameter: fields[users]"`
	FieldsTimers                     []string `json:"fieldsTimers,omitempty" jsonschema_description:"Query parameter: fields[timers]"`
	FieldsTeams                      []string `json:"fieldsTeams,omitempty" jsonschema_description:"Query parameter: fields[teams]"`
	FieldsTasks                      []string `json:"fieldsTasks,omitempty" jsonschema_description:"Query parameter: fields[tasks]"`
	FieldsTasklists                  []string `json:"fieldsTasklists,omitempty" jsonschema_description:"Query parameter: fields[tasklists]"`
	FieldsTaskgroups                 []string `json:"fieldsTaskgroups,omitempty" jsonschema_description:"Query parameter: fields[taskgroups]"`
	FieldsTaskSequences              []string `json:"fieldsTaskSequences,omitempty" jsonschema_description:"Query parameter: fields[taskSequences]"`
	FieldsTags                       []string `json:"fieldsTags,omitempty" jsonschema_description:"Query parameter: fields[tags]"`
	FieldsProjects                   []string `json:"fieldsProjects,omitempty" jsonschema_description:"Query parameter: fields[projects]"`
	FieldsMilestones                 []string `json:"fieldsMilestones,omitempty" jsonschema_description:"Query parameter: fields[milestones]"`
	FieldsLockdowns                  []string `json:"fieldsLockdowns,omitempty" jsonschema_description:"Query parameter: fields[lockdowns]"`
	FieldsGroups                     []string `json:"fieldsGroups,omitempty" jsonschema_description:"Query parameter: fields[groups]"`
	FieldsFiles                      []string `json:"fieldsFiles,omitempty" jsonschema_description:"Query parameter: fields[files]"`
	FieldsCustomfields               []string `json:"fieldsCustomfields,omitempty" jsonschema_description:"Query parameter: fields[customfields]"`
	FieldsCustomfieldTasks           []string `json:"fieldsCustomfieldTasks,omitempty" jsonschema_description:"Query parameter: fields[customfieldTasks]"`
	FieldsCompanies                  []string `json:"fieldsCompanies,omitempty" jsonschema_description:"Query parameter: fields[companies]"`
	FieldsComments                   []string `json:"fieldsComments,omitempty" jsonschema_description:"Query parameter: fields[comments]"`
	FieldsColumns                    []string `json:"fieldsColumns,omitempty" jsonschema_description:"Query parameter: fields[columns]"`
	FieldsCards                      []string `json:"fieldsCards,omitempty" jsonschema_description:"Query parameter: fields[cards]"`
	FieldsProjectPermissions         []string `json:"fieldsProjectPermissions,omitempty" jsonschema_description:"Query parameter: fields[ProjectPermissions]"`
	ExpandedIDs                      []int    `json:"expandedIds,omitempty" jsonschema_description:"the ids of the expanded tasks"`
	ExcludeTagIDs                    []int    `json:"excludeTagIds,omitempty" jsonschema_description:"filter by excluded tag ids"`
	CRMDealIDs                       []int    `json:"crmDealIds,omitempty" jsonschema_description:"filter by crm deal ids"`
	CreatedByUserIDs                 []int    `json:"createdByUserIds,omitempty" jsonschema_description:"filter by creator user ids"`
	AssigneeTeamIDs                  []int    `json:"assigneeTeamIds,omitempty" jsonschema_description:"filter by assignee team ids"`
	AssigneeCompanyIDs               []int    `json:"assigneeCompanyIds,omitempty" jsonschema_description:"filter by assignee company ids"`
	CustomFields                     []string `json:"CustomFields,omitempty" jsonschema_description:"filter by custom fields"`
}

type getProjectsArgs struct {
	UpdatedAfter                         string `json:"updatedAfter,omitempty" jsonschema_description:"Filter projects updated after this date-time (format: ISO 8601)"`
	TimeMode                             string `json:"timeMode,omitempty" jsonschema:"enum=timelogs,enum=estimated" jsonschema_description:"Profitability time mode"`
	SearchTerm                           string `json:"searchTerm,omitempty" jsonschema_description:"Filter by project name"`
	ReportType                           string `json:"reportType,omitempty" jsonschema:"enum=project,enum=health" jsonschema_description:"Define the type of the report"`
	ReportTimezone                       string `json:"reportTimezone,omitempty" jsonschema_description:"Configure the report dates displayed in a timezone"`
	ReportFormat                         string `json:"reportFormat,omitempty" jsonschema:"enum=csv,enum=html,enum=pdf,enum=xls" jsonschema_description:"Define the format of the report"`
	ProjectType                          string `json:"projectType,omitempty" jsonschema_description:"Filter by project type"`
	OrderMode                            string `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"Order mode"`
	OrderBy                              string `json:"orderBy,omitempty" jsonschema:"enum=companyname,enum=datecreated,enum=duedate,enum=lastactivity,enum=name,enum=namecaseinsensitive,enum=ownercompany,enum=starred,enum=categoryname" jsonschema_description:"Order by field"`
	NotCompletedBefore                   string `json:"notCompletedBefore,omitempty" jsonschema_description:"Filter by projects that have not been completed before the given date (format: YYYY-MM-DD)"`
	MinLastActivityDate                  string `json:"minLastActivityDate,omitempty" jsonschema_description:"Filter by min last activity date (format: YYYY-MM-DD)"`
	MaxLastActivityDate                  string `json:"maxLastActivityDate,omitempty" jsonschema_description:"Filter by max last activity date (format: YYYY-MM-DD)"`
	UserID                               int    `json:"userId,omitempty" jsonschema_description:"Filter by user id"`
	PageSize                             int    `json:"pageSize,omitempty" jsonschema_description:"Number of items in a page (not used when generating reports)"`
	Page                                 int    `json:"page,omitempty" jsonschema_description:"Page number (not used when generating reports)"`
	OrderByCustomFieldID                 int    `json:"orderByCustomFieldId,omitempty" jsonschema_description:"Order by custom field id when orderBy is equal to customfield"`
	MinBudgetCapacityUsedPercent         int    `json:"minBudgetCapacityUsedPercent,omitempty" jsonschema_description:"Filter by minimum budget capacity used"`
	MaxBudgetCapacityUsedPercent         int    `json:"maxBudgetCapacityUsedPercent,omitempty" jsonschema_description:"Filter by maximum budget capacity used"`
	IncludeArchivedProjects              *bool  `json:"includeArchivedProjects,omitempty" jsonschema_description:"Include archived projects"`
	IncludeCompletedProjects             *bool  `json:"includeCompletedProjects,omitempty" jsonschema_description:"Include completed projects"`
	IncludeProjectOwner                  *bool  `json:"includeProjectOwner,omitempty" jsonschema_description:"Include project owner"`
	IncludeProjectCreator                *bool  `json:"includeProjectCreator,omitempty" jsonschema_description:"Include project creator"`
	IncludeProjectCompany                *bool  `json:"includeProjectCompany,omitempty" jsonschema_description:"Include project company"`
	IncludeProjectCategory               *bool  `json:"includeProjectCategory,omitempty" jsonschema_description:"Include project category"`
	IncludeProjectTags                   *bool  `json:"includeProjectTags,omitempty" jsonschema_description:"Include project tags"`
	IncludeProjectStatus                 *bool  `json:"includeProjectStatus,omitempty" jsonschema_description:"Include project status"`
	IncludeProjectHealth                 *bool  `json:"includeProjectHealth,omitempty" jsonschema_description:"Include project health"`
	IncludeProjectBudget                 *bool  `json:"includeProjectBudget,omitempty" jsonschema_description:"Include project budget"`
	IncludeProjectProfitability          *bool  `json:"includeProjectProfitability,omitempty" jsonschema_description:"Include project profitability"`
	IncludeProjectCustomFields           *bool  `json:"includeProjectCustomFields,omitempty" jsonschema_description:"Include project custom fields"`
	IncludeProjectBillingMethod          *bool  `json:"includeProjectBillingMethod,omitempty" jsonschema_description:"Include project billing method"`
	IncludeProjectRateCards              *bool  `json:"includeProjectRateCards,omitempty" jsonschema_description:"Include project rate cards"`
	IncludeProjectRateCardRates          *bool  `json:"includeProjectRateCardRates,omitempty" jsonschema_description:"Include project rate card rates"`
	IncludeProjectRateCardCurrencies     *bool  `json:"includeProjectRateCardCurrencies,omitempty" jsonschema_description:"Include project rate card currencies"`
	IncludeProjectRateCardUsers          *bool  `json:"includeProjectRateCardUsers,omitempty" jsonschema_description:"Include project rate card users"`
	IncludeProjectRateCardUserRates      *bool  `json:"includeProjectRateCardUserRates,omitempty" jsonschema_description:"Include project rate card user rates"`
	IncludeProjectRateCardUserCurrencies *bool  `json:"includeProjectRateCardUserCurrencies,omitempty" jsonschema_description:"Include project rate card user currencies"`
	IncludeProjectRateCardTasks          *bool  `json:"includeProjectRateCardTasks,omitempty" jsonschema_description:"Include project rate card tasks"`
	IncludeProjectRateCardTaskRates      *bool  `json:"includeProjectRateCardTaskRates,omitempty" jsonschema_description:"Include project rate card task rates"`
	IncludeProjectRateCardTaskCurrencies *bool  `json:"includeProjectRateCardTaskCurrencies,omitempty" jsonschema_description:"Include project rate card task currencies"`
}

type getPeopleArgs struct {
	UserType             string `json:"userType,omitempty" jsonschema:"enum=account,enum=collaborator,enum=contact" jsonschema_description:"Filter by user type"`
	UpdatedAfter         string `json:"updatedAfter,omitempty" jsonschema_description:"Filter by users updated after this date-time (format: ISO 8601)"`
	SearchTerm           string `json:"searchTerm,omitempty" jsonschema_description:"Filter by name or email"`
	OrderMode            string `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"Order mode"`
	OrderBy              string `json:"orderBy,omitempty" jsonschema:"enum=name,enum=namecaseinsensitive,enum=company" jsonschema_description:"Order by field"`
	LastLoginAfter       string `json:"lastLoginAfter,omitempty" jsonschema_description:"Filter by users who logged in after this date-time"`
	PageSize             int    `json:"pageSize,omitempty" jsonschema_description:"Number of items per page"`
	Page                 int    `json:"page,omitempty" jsonschema_description:"Page number"`
	IncludeCollaborators *bool  `json:"includeCollaborators,omitempty" jsonschema_description:"Include collaborator users"`
	IncludeClients       *bool  `json:"includeClients,omitempty" jsonschema_description:"Include client users"`
	TeamIDs              []int  `json:"teamIds,omitempty" jsonschema_description:"Filter by team IDs"`
	ProjectIDs           []int  `json:"projectIds,omitempty" jsonschema_description:"Filter by project IDs"`
	CompanyIDs           []int  `json:"companyIds,omitempty" jsonschema_description:"Filter by company IDs"`
}

type getPeopleUtilizationArgs struct {
	Zoom                    string   `json:"zoom,omitempty" jsonschema:"enum=week,enum=month,enum=last3months,enum=quarterbyweek,enum=quarterbymonth" jsonschema_description:"determine the type of zoom filter used to display on the report"`
	StartDate               string   `json:"startDate,omitempty" jsonschema_description:"filter by start date"`
	SortOrder               string   `json:"sortOrder,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"order mode"`
	Sort                    string   `json:"sort,omitempty" jsonschema:"enum=name,enum=percentutilization,enum=percentestimatedutilization,enum=availableminutes,enum=unavailableminutes,enum=loggedminutes,enum=billableminutes,enum=unbillableminutes,enum=billableutilization,enum=nonbillableutilization" jsonschema_description:"sort by (deprecated, use orderBy)"`
	SearchTerm              string   `json:"searchTerm,omitempty" jsonschema_description:"filter by user first or last name"`
	ReportFormat            string   `json:"reportFormat,omitempty" jsonschema:"enum=pdf" jsonschema_description:"define the format of the report"`
	OrderMode               string   `json:"orderMode,omitempty" jsonschema:"enum=weekly,enum=monthly" jsonschema_description:"group by"`
	OrderBy                 string   `json:"orderBy,omitempty" jsonschema:"enum=name,enum=percentutilization,enum=percentestimatedutilization,enum=availableminutes,enum=unavailableminutes,enum=loggedminutes,enum=billableminutes,enum=unbillableminutes,enum=companycount,enum=achieved,enum=target,enum=allocatedutilization,enum=totalworkingminutes,enum=availableutilization,enum=unavailableutilization" jsonschema_description:"sort by"`
	GroupBy                 string   `json:"groupBy,omitempty" jsonschema:"enum=day,enum=week,enum=month" jsonschema_description:"group by"`
	EndDate                 string   `json:"endDate,omitempty" jsonschema_description:"filter by end date"`
	PageSize                int      `json:"pageSize,omitempty" jsonschema_description:"number of items in a page"`
	Page                    int      `json:"page,omitempty" jsonschema_description:"page number"`
	SkipCounts              *bool    `json:"skipCounts,omitempty" jsonschema_description:"skip doing counts on a list API endpoint for performance reasons"`
	LegacyResponse          *bool    `json:"legacyResponse,omitempty" jsonschema_description:"return response without summary and its legacy body structure"`
	IsReportDownload        *bool    `json:"isReportDownload,omitempty" jsonschema_description:"generate a report document"`
	IsCustomDateRange       *bool    `json:"isCustomDateRange,omitempty" jsonschema_description:"determine if the query is for a custom date range"`
	IncludeUtilizations     *bool    `json:"includeUtilizations,omitempty" jsonschema_description:"adds report rows for individual entities"`
	IncludeTotals           *bool    `json:"includeTotals,omitempty" jsonschema_description:"adds report summary to response"`
	IncludeCollaborators    *bool    `json:"includeCollaborators,omitempty" jsonschema_description:"include collaborators"`
	IncludeClients          *bool    `json:"includeClients,omitempty" jsonschema_description:"include client users"`
	IncludeArchivedProjects *bool    `json:"includeArchivedProjects,omitempty" jsonschema_description:"include archived projects"`
	IncludeCompletedTasks   *bool    `json:"IncludeCompletedTasks,omitempty" jsonschema_description:"include completed tasks"`
	UserIDs                 []int    `json:"userIds,omitempty" jsonschema_description:"filter by userIds"`
	TeamIDs                 []int    `json:"teamIds,omitempty" jsonschema_description:"filter by team ids"`
	SelectedColumns         []string `json:"selectedColumns,omitempty" jsonschema_description:"customise the report by selecting columns to be displayed"`
	ProjectIDs              []int    `json:"projectIds,omitempty" jsonschema_description:"filter by project ids"`
	JobRoleIDs              []int    `json:"jobRoleIds,omitempty" jsonschema_description:"filter by jobrole ids"`
	Include                 []string `json:"include,omitempty" jsonschema_description:"include additional data"`
	FieldsUtilizations      []string `json:"fields[utilizations],omitempty" jsonschema_description:"specific utilization fields to include"`
	FieldsUsers             []string `json:"fields[users],omitempty" jsonschema_description:"specific user fields to include"`
	CompanyIDs              []int    `json:"companyIds,omitempty" jsonschema_description:"filter by company ids"`
}

type getProjectPersonArgs struct {
	ProjectID                  int      `json:"projectId" jsonschema_description:"Path parameter: projectId"`
	PersonID                   int      `json:"personId" jsonschema_description:"Path parameter: personId"`
	UserType                   string   `json:"userType,omitempty" jsonschema:"enum=account,enum=collaborator,enum=contact" jsonschema_description:"user type"`
	UpdatedAfter               string   `json:"updatedAfter,omitempty" jsonschema_description:"date time"`
	SearchTerm                 string   `json:"searchTerm,omitempty" jsonschema_description:"filter by comment content"`
	OrderMode                  string   `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"order mode"`
	OrderBy                    string   `json:"orderBy,omitempty" jsonschema:"enum=name,enum=namecaseinsensitive,enum=company" jsonschema_description:"order by"`
	LastLoginAfter             string   `json:"lastLoginAfter,omitempty" jsonschema_description:"Query parameter: lastLoginAfter"`
	PageSize                   int      `json:"pageSize,omitempty" jsonschema_description:"number of items in a page (not used when generating reports)"`
	Page                       int      `json:"page,omitempty" jsonschema_description:"page number (not used when generating reports)"`
	SkipCounts                 *bool    `json:"skipCounts,omitempty" jsonschema_description:"SkipCounts allows you to skip doing counts on a list API endpoint for performance reasons."`
	ShowDeleted                *bool    `json:"showDeleted,omitempty" jsonschema_description:"include deleted items"`
	SearchUserJobRole          *bool    `json:"searchUserJobRole,omitempty" jsonschema_description:"Include user job role in search"`
	OrderPrioritiseCurrentUser *bool    `json:"orderPrioritiseCurrentUser,omitempty" jsonschema_description:"Force to have the current/session user in the response"`
	OnlySiteOwner              *bool    `json:"onlySiteOwner,omitempty" jsonschema_description:"Query parameter: onlySiteOwner"`
	OnlyOwnerCompany           *bool    `json:"onlyOwnerCompany,omitempty" jsonschema_description:"return people only from the owner company. This will replace any provided company ID."`
	InclusiveFilter            *bool    `json:"inclusiveFilter,omitempty" jsonschema_description:"make the filter inclusive for user ids, teamIds, companyIds"`
	IncludeServiceAccounts     *bool    `json:"includeServiceAccounts,omitempty" jsonschema_description:"include service accounts"`
	IncludePlaceholders        *bool    `json:"includePlaceholders,omitempty" jsonschema_description:"include placeholder users"`
	IncludeCollaborators       *bool    `json:"includeCollaborators,omitempty" jsonschema_description:"exclude collaborators types, returning only account and contact."`
	IncludeClients             *bool    `json:"includeClients,omitempty" jsonschema_description:"include clients"`
	FilterByNoCostRate         *bool    `json:"filterByNoCostRate,omitempty" jsonschema_description:"Returns users who are missing cost rates(OCA only)"`
	ExcludeContacts            *bool    `json:"excludeContacts,omitempty" jsonschema_description:"exclude contact types, returning only account and collaborator."`
	TeamIDs                    []int    `json:"teamIds,omitempty" jsonschema_description:"team ids"`
	ProjectIDs                 []int    `json:"projectIds,omitempty" jsonschema_description:"filter by project ids"`
	Include                    []string `json:"include,omitempty" jsonschema_description:"include (not used when generating reports)"`
	IDs                        []int    `json:"ids,omitempty" jsonschema_description:"filter by user ids"`
	FieldsTeams                []string `json:"fieldsTeams,omitempty" jsonschema_description:"Query parameter: fields[teams]"`
	FieldsPerson               []string `json:"fieldsPerson,omitempty" jsonschema_description:"Query parameter: fields[person]"`
	FieldsPeople               []string `json:"fieldsPeople,omitempty" jsonschema_description:"Query parameter: fields[people]"`
	FieldsCompanies            []string `json:"fieldsCompanies,omitempty" jsonschema_description:"Query parameter: fields[companies]"`
	FieldsProjectPermissions   []string `json:"fieldsProjectPermissions,omitempty" jsonschema_description:"Query parameter: fields[ProjectPermissions]"`
	ExcludeProjectIDs          []int    `json:"excludeProjectIds,omitempty" jsonschema_description:"exclude people assigned to certain project id"`
	ExcludeIDs                 []int    `json:"excludeIds,omitempty" jsonschema_description:"exclude certain user ids"`
	CompanyIDs                 []int    `json:"companyIds,omitempty" jsonschema_description:"company ids"`
}

type getUtilizationReportArgs struct {
	Format                  string   `json:"format" jsonschema_description:"The format of the report: csv, html, pdf or xlsx"`
	Zoom                    string   `json:"zoom,omitempty" jsonschema:"enum=week,enum=month,enum=last3months,enum=quarterbyweek,enum=quarterbymonth" jsonschema_description:"determine the type of zoom filter used to display on the report"`
	StartDate               string   `json:"startDate,omitempty" jsonschema_description:"filter by start date"`
	SortOrder               string   `json:"sortOrder,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"order mode"`
	Sort                    string   `json:"sort,omitempty" jsonschema:"enum=name,enum=percentutilization,enum=percentestimatedutilization,enum=availableminutes,enum=unavailableminutes,enum=loggedminutes,enum=billableminutes,enum=unbillableminutes,enum=billableutilization,enum=nonbillableutilization" jsonschema_description:"sort by (deprecated, use orderBy)"`
	SearchTerm              string   `json:"searchTerm,omitempty" jsonschema_description:"filter by user first or last name"`
	ReportFormat            string   `json:"reportFormat,omitempty" jsonschema:"enum=pdf" jsonschema_description:"define the format of the report"`
	OrderMode               string   `json:"orderMode,omitempty" jsonschema:"enum=weekly,enum=monthly" jsonschema_description:"group by"`
	OrderBy                 string   `json:"orderBy,omitempty" jsonschema:"enum=name,enum=percentutilization,enum=percentestimatedutilization,enum=availableminutes,enum=unavailableminutes,enum=loggedminutes,enum=billableminutes,enum=unbillableminutes,enum=companycount,enum=achieved,enum=target,enum=allocatedutilization,enum=totalworkingminutes,enum=availableutilization,enum=unavailableutilization" jsonschema_description:"sort by"`
	GroupBy                 string   `json:"groupBy,omitempty" jsonschema:"enum=day,enum=week,enum=month" jsonschema_description:"group by"`
	EndDate                 string   `json:"endDate,omitempty" jsonschema_description:"filter by end date"`
	PageSize                int      `json:"pageSize,omitempty" jsonschema_description:"number of items in a page"`
	Page                    int      `json:"page,omitempty" jsonschema_description:"page number"`
	SkipCounts              *bool    `json:"skipCounts,omitempty" jsonschema_description:"SkipCounts allows you to skip doing counts on a list API endpoint for performance reasons."`
	LegacyResponse          *bool    `json:"legacyResponse,omitempty" jsonschema_description:"return response without summary and its legacy body structure"`
	IsReportDownload        *bool    `json:"isReportDownload,omitempty" jsonschema_description:"generate a report document"`
	IsCustomDateRange       *bool    `json:"isCustomDateRange,omitempty" jsonschema_description:"determine if the query is for a custom date range"`
	IncludeUtilizations     *bool    `json:"includeUtilizations,omitempty" jsonschema_description:"adds report rows for individual entities"`
	IncludeTotals           *bool    `json:"includeTotals,omitempty" jsonschema_description:"adds report summary to response"`
	IncludeCollaborators    *bool    `json:"includeCollaborators,omitempty" jsonschema_description:"include collaborators"`
	IncludeClients          *bool    `json:"includeClients,omitempty" jsonschema_description:"include client users"`
	IncludeArchivedProjects *bool    `json:"includeArchivedProjects,omitempty" jsonschema_description:"include archived projects"`
	IncludeCompletedTasks   *bool    `json:"IncludeCompletedTasks,omitempty" jsonschema_description:"include completed tasks"`
	UserIDs                 []int    `json:"userIds,omitempty" jsonschema_description:"filter by userIds"`
	TeamIDs                 []int    `json:"teamIds,omitempty" jsonschema_description:"filter by team ids"`
	SelectedColumns         []string `json:"selectedColumns,omitempty" jsonschema_description:"customise the report by selecting columns to be displayed."`
	ProjectIDs              []int    `json:"projectIds,omitempty" jsonschema_description:"filter by project ids"`
	JobRoleIDs              []int    `json:"jobRoleIds,omitempty" jsonschema_description:"filter by jobrole ids"`
	Include                 []string `json:"include,omitempty" jsonschema_description:"include"`
	FieldsUtilizations      []string `json:"fieldsUtilizations,omitempty" jsonschema_description:"Query parameter: fields[utilizations]"`
	FieldsUsers             []string `json:"fieldsUsers,omitempty" jsonschema_description:"Query parameter: fields[users]"`
	CompanyIDs              []int    `json:"companyIds,omitempty" jsonschema_description:"filter by company ids"`
}

type getUserTaskCompletionArgs struct {
	UserID                     int      `json:"userId" jsonschema_description:"Path parameter: userId"`
	UserType                   string   `json:"userType,omitempty" jsonschema:"enum=account,enum=collaborator,enum=contact" jsonschema_description:"user type"`
	UpdatedAfter               string   `json:"updatedAfter,omitempty" jsonschema_description:"date time"`
	StartDate                  string   `json:"startDate,omitempty" jsonschema_description:"start date for task completion report"`
	EndDate                    string   `json:"endDate,omitempty" jsonschema_description:"end date for task completion report"`
	SearchTerm                 string   `json:"searchTerm,omitempty" jsonschema_description:"filter by comment content"`
	ReportFormat               string   `json:"reportFormat,omitempty" jsonschema_description:"define the format of the report"`
	OrderMode                  string   `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"order mode"`
	OrderBy                    string   `json:"orderBy,omitempty" jsonschema:"enum=id,enum=name,enum=namecaseinsensitive,enum=overduetasks,enum=assignedtasks,enum=completedtasks,enum=projects,enum=activeprojects" jsonschema_description:"order by"`
	LastLoginAfter             string   `json:"lastLoginAfter,omitempty" jsonschema_description:"Query parameter: lastLoginAfter"`
	PageSize                   int      `json:"pageSize,omitempty" jsonschema_description:"number of items in a page (not used when generating reports)"`
	Page                       int      `json:"page,omitempty" jsonschema_description:"page number (not used when generating reports)"`
	SkipCounts                 *bool    `json:"skipCounts,omitempty" jsonschema_description:"SkipCounts allows you to skip doing counts on a list API endpoint for performance reasons."`
	ShowDeleted                *bool    `json:"showDeleted,omitempty" jsonschema_description:"include deleted items"`
	SearchUserJobRole          *bool    `json:"searchUserJobRole,omitempty" jsonschema_description:"Include user job role in search"`
	OrderPrioritiseCurrentUser *bool    `json:"orderPrioritiseCurrentUser,omitempty" jsonschema_description:"Force to have the current/session user in the response"`
	OnlySiteOwner              *bool    `json:"onlySiteOwner,omitempty" jsonschema_description:"Query parameter: onlySiteOwner"`
	OnlyOwnerCompany           *bool    `json:"onlyOwnerCompany,omitempty" jsonschema_description:"return people only from the owner company. This will replace any provided company ID."`
	IsReportDownload           *bool    `json:"isReportDownload,omitempty" jsonschema_description:"generate a report document"`
	InclusiveFilter            *bool    `json:"inclusiveFilter,omitempty" jsonschema_description:"make the filter inclusive for user ids, teamIds, companyIds"`
	IncludeServiceAccounts     *bool    `json:"includeServiceAccounts,omitempty" jsonschema_description:"include service accounts"`
	IncludePlaceholders        *bool    `json:"includePlaceholders,omitempty" jsonschema_description:"include placeholder users"`
	IncludeCollaborators       *bool    `json:"includeCollaborators,omitempty" jsonschema_description:"exclude collaborators types, returning only account and contact."`
	IncludeClients             *bool    `json:"includeClients,omitempty" jsonschema_description:"include clients"`
	IncludeArchivedProjects    *bool    `json:"includeArchivedProjects,omitempty" jsonschema_description:"include archived projects in the report"`
	FilterByNoCostRate         *bool    `json:"filterByNoCostRate,omitempty" jsonschema_description:"Returns users who are missing cost rates(OCA only)"`
	ExcludeContacts            *bool    `json:"excludeContacts,omitempty" jsonschema_description:"exclude contact types, returning only account and collaborator."`
	TeamIDs                    []int    `json:"teamIds,omitempty" jsonschema_description:"team ids"`
	SelectedColumns            []string `json:"selectedColumns,omitempty" jsonschema_description:"customise the report by selecting columns"`
	ProjectIDs                 []int    `json:"projectIds,omitempty" jsonschema_description:"filter by project ids"`
	JobRoleIDs                 []int    `json:"jobRoleIds,omitempty" jsonschema_description:"filter by job role ids"`
	Include                    []string `json:"include,omitempty" jsonschema_description:"include (not used when generating reports)"`
	IDs                        []int    `json:"ids,omitempty" jsonschema_description:"filter by user ids"`
	FieldsTeams                []string `json:"fieldsTeams,omitempty" jsonschema_description:"Query parameter: fields[teams]"`
	FieldsPerson               []string `json:"fieldsPerson,omitempty" jsonschema_description:"Query parameter: fields[person]"`
	FieldsPeople               []string `json:"fieldsPeople,omitempty" jsonschema_description:"Query parameter: fields[people]"`
	FieldsCompanies            []string `json:"fieldsCompanies,omitempty" jsonschema_description:"Query parameter: fields[companies]"`
	FieldsProjectPermissions   []string `json:"fieldsProjectPermissions,omitempty" jsonschema_description:"Query parameter: fields[ProjectPermissions]"`
	ExcludeProjectIDs          []int    `json:"excludeProjectIds,omitempty" jsonschema_description:"exclude people assigned to certain project id"`
	ExcludeIDs                 []int    `json:"excludeIds,omitempty" jsonschema_description:"exclude certain user ids"`
	CompanyIDs                 []int    `json:"companyIds,omitempty" jsonschema_description:"company ids"`
}

type getTimeArgs struct {
	UpdatedAfter  string `json:"updatedAfter,omitempty" jsonschema_description:"filter by updated after date"`
	StartDate     string `json:"startDate,omitempty" jsonschema_description:"filter by a starting date"`
	ReportFormat  string `json:"reportFormat,omitempty" jsonschema_description:"define the format of the report"`
	ProjectStatus string `json:"projectStatus,omitempty" jsonschema:"enum=active,enum=current,enum=late,enum=upcoming,enum=completed,enum=deleted" jsonschema_description:"filter by project status"`
	OrderMode     string `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"order mode"`
	OrderBy       string `json:"orderBy,omitempty" jsonschema:"enum=company,enum=date,enum=dateupdated,enum=project,enum=task,enum=tasklist,enum=user,enum=description,enum=billed,enum=billable,enum=timespent" jsonschema_description:"sort order"`
	InvoicedType  string `json:"invoicedType,omitempty" jsonschema:"enum=all,enum=invoiced,enum=noninvoiced" jsonschema_description:"filter by invoiced type"`
	EndDate       string `json:"endDate,omitempty" jsonschema_description:"filter by an ending date"`
	BillableType  string `json:"billableType,omitempty" jsonschema:"enum=all,enum=billable,enum=non-billable" jsonschema_description:"filter by billable type"`
	UpdatedBy     int    `json:"updatedBy,omitempty" jsonschema_description:"filter by the user who updated the timelog"`
	TicketID      int    `json:"ticketId,omitempty" jsonschema_description:"filter by ticket id"`
	TasklistID    int    `json:"tasklistId,omitempty" jsonschema_description:"filter by tasklist id"`
	TaskID        int    `json:"taskId,omitempty" jsonschema_description:"filter by task id (deprecated, use taskIds)"`
	ProjectID     int    `json:"projectId,omitempty" jsonschema_description:"filter by project id (deprecated, use projectIds)"`
	PageSize      int    `json:"pageSize,omitempty" jsonschema_description:"number of items in a page"`
	Page          int    `json:"page,omitempty" jsonschema_description:"page number"`
	InvoiceID     int    `json:"invoiceId,omitempty" jsonschema_description:"filter by invoice id"`
	BudgetID      int    `json:"budgetId,omitempty" jsonschema_description:"filter by budget id"`
	AllocationID  int    `json:"allocationId,omitempty" jsonschema_description:"filter by allocation id"`
}

