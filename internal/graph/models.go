package graph

// EmailAddress is a Graph emailAddress resource.
type EmailAddress struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}

// Recipient is a Graph recipient resource.
type Recipient struct {
	EmailAddress *EmailAddress `json:"emailAddress,omitempty"`
}

// Attendee is an event attendee.
type Attendee struct {
	EmailAddress *EmailAddress `json:"emailAddress,omitempty"`
	Type         string        `json:"type,omitempty"`
}

// ItemBody holds message or event content.
type ItemBody struct {
	ContentType string `json:"contentType,omitempty"`
	Content     string `json:"content"`
}

// DateTimeTimeZone is a Graph dateTimeTimeZone value.
type DateTimeTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Location is an event location.
type Location struct {
	DisplayName string `json:"displayName,omitempty"`
}

// OnlineMeeting carries the join details of an online event.
type OnlineMeeting struct {
	JoinURL string `json:"joinUrl,omitempty"`
}

// Event is the subset of the Graph event resource this server reads.
type Event struct {
	ID              string            `json:"id"`
	CreatedDateTime string            `json:"createdDateTime,omitempty"`
	Type            string            `json:"type,omitempty"`
	Subject         string            `json:"subject,omitempty"`
	Start           *DateTimeTimeZone `json:"start,omitempty"`
	End             *DateTimeTimeZone `json:"end,omitempty"`
	Body            *ItemBody         `json:"body,omitempty"`
	Organizer       *Recipient        `json:"organizer,omitempty"`
	Categories      []string          `json:"categories,omitempty"`
	ICalUID         string            `json:"iCalUId,omitempty"`
	HasAttachments  bool              `json:"hasAttachments,omitempty"`
	ShowAs          string            `json:"showAs,omitempty"`
	IsOnlineMeeting bool              `json:"isOnlineMeeting,omitempty"`
	IsOrganizer     bool              `json:"isOrganizer,omitempty"`
	Attendees       []Attendee        `json:"attendees,omitempty"`
	OnlineMeeting   *OnlineMeeting    `json:"onlineMeeting,omitempty"`
	Location        *Location         `json:"location,omitempty"`
}

func (e Event) valid() bool {
	return e.ID != "" && e.Type != "" && e.Start != nil
}

// Message is the subset of the Graph message resource this server reads.
type Message struct {
	ID               string      `json:"id"`
	ReceivedDateTime string      `json:"receivedDateTime,omitempty"`
	CreatedDateTime  string      `json:"createdDateTime,omitempty"`
	SentDateTime     string      `json:"sentDateTime,omitempty"`
	Subject          string      `json:"subject,omitempty"`
	Importance       string      `json:"importance,omitempty"`
	BodyPreview      string      `json:"bodyPreview,omitempty"`
	Body             *ItemBody   `json:"body,omitempty"`
	Sender           *Recipient  `json:"sender,omitempty"`
	From             *Recipient  `json:"from,omitempty"`
	ToRecipients     []Recipient `json:"toRecipients,omitempty"`
	ReplyTo          []Recipient `json:"replyTo,omitempty"`
	ParentFolderID   string      `json:"parentFolderId,omitempty"`
	IsRead           bool        `json:"isRead"`
	IsDraft          bool        `json:"isDraft"`
	Categories       []string    `json:"categories,omitempty"`
}

func (m Message) valid() bool {
	return m.ID != "" && m.ReceivedDateTime != ""
}

// MailFolder is a Graph mailFolder resource.
type MailFolder struct {
	ID            string `json:"id"`
	DisplayName   string `json:"displayName"`
	WellKnownName string `json:"wellKnownName,omitempty"`
}

func (f MailFolder) valid() bool {
	return f.ID != "" && f.DisplayName != ""
}

// collection is a Graph OData collection page.
type collection[T any] struct {
	Value    []T    `json:"value"`
	NextLink string `json:"@odata.nextLink,omitempty"`
}

// TimeRange bounds a query. Values are UTC ISO-8601 strings; empty means
// unbounded.
type TimeRange struct {
	Start string
	End   string
}

// NewEvent describes an event to create. Times are UTC ISO-8601.
type NewEvent struct {
	Subject   string
	Content   string
	Start     string
	End       string
	Location  string
	Attendees []string
	IsMeeting bool
}

// EventUpdate carries the fields to change; nil leaves a field untouched.
// An empty Location removes the location.
type EventUpdate struct {
	Subject  *string
	Content  *string
	Start    *string
	End      *string
	Location *string
}

func (u EventUpdate) empty() bool {
	return u.Subject == nil && u.Content == nil && u.Start == nil && u.End == nil && u.Location == nil
}

// MessageQuery selects messages. With Search set the date range and folder
// exclusions are applied client side.
type MessageQuery struct {
	Received TimeRange
	Search   string
	Limit    int
	Skip     int
}
