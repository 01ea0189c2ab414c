package graph

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"github.com/philipdalen/mcp-workspace/internal/common"
)

func testLogger() *common.Logger {
	return common.NewSilentLogger()
}

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}), testLogger())
	svc := NewService(client, testLogger())
	svc.loc = time.UTC
	return svc
}

const foldersJSON = `{"value":[
	{"id":"inbox-id","displayName":"Inbox","wellKnownName":"inbox"},
	{"id":"del-id","displayName":"Deleted Items","wellKnownName":"deleteditems"},
	{"id":"junk-id","displayName":"Junk Email","wellKnownName":"junkemail"}
]}`

func TestClient_SendsAuthAndUserAgent(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected bearer token, got %q", got)
		}
		if got := r.Header.Get("User-Agent"); !strings.HasPrefix(got, "simply-outlook-mcp/") {
			t.Errorf("expected simply-outlook-mcp user agent, got %q", got)
		}
		w.Write([]byte(foldersJSON))
	})

	folders, err := svc.MailFolders(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(folders) != 3 {
		t.Errorf("expected 3 folders, got %d", len(folders))
	}
}

func TestClient_APIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"ErrorItemNotFound","message":"The specified object was not found in the store."}}`))
	})

	_, err := svc.MessageByID(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Code != "ErrorItemNotFound" {
		t.Errorf("unexpected error fields: %+v", apiErr)
	}
	if err.Error() != "The specified object was not found in the store." {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestCalendarEvents_CalendarView(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/calendar/calendarView" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("startDateTime") != "2025-12-25T09:00:00.000Z" || q.Get("endDateTime") != "2026-01-01T09:00:00.000Z" {
			t.Errorf("unexpected range: %v", q)
		}
		if q.Get("$top") != "25" || q.Get("$skip") != "0" {
			t.Errorf("unexpected paging: %v", q)
		}
		if !strings.Contains(q.Get("$select"), "isOrganizer") {
			t.Errorf("expected $select with event props, got %s", q.Get("$select"))
		}
		w.Write([]byte(`{"value":[
			{"id":"e1","type":"singleInstance","subject":"Standup","start":{"dateTime":"2025-12-25T09:00:00.0000000","timeZone":"UTC"},
			 "body":{"contentType":"html","content":"<p>Daily <b>sync</b></p>"}},
			{"id":"broken"}
		]}`))
	})

	events, err := svc.CalendarEvents(context.Background(), TimeRange{Start: "2025-12-25T09:00:00.000Z", End: "2026-01-01T09:00:00.000Z"}, 25, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected invalid event to be dropped, got %d events", len(events))
	}
	if events[0].Body.Content != "Daily **sync**" {
		t.Errorf("expected markdown body, got %q", events[0].Body.Content)
	}
}

func TestCalendarEvents_FilterWhenOneBound(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/calendar/events" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("$filter"); got != "start/dateTime ge '2025-12-25T09:00:00.000Z'" {
			t.Errorf("unexpected filter %q", got)
		}
		w.Write([]byte(`{"value":[]}`))
	})

	events, err := svc.CalendarEvents(context.Background(), TimeRange{Start: "2025-12-25T09:00:00.000Z"}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestCalendarEvents_MissingValue(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	_, err := svc.CalendarEvents(context.Background(), TimeRange{}, 10, 0)
	if err == nil || err.Error() != "Failed to get events." {
		t.Errorf("expected Failed to get events., got %v", err)
	}
}

func TestCreateEvent_Payload(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/me/events" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)

		start := body["start"].(map[string]any)
		if start["timeZone"] != "UTC" || start["dateTime"] != "2025-12-25T09:00:00.000Z" {
			t.Errorf("unexpected start: %v", start)
		}
		content := body["body"].(map[string]any)["content"].(string)
		if !strings.Contains(content, "<strong>agenda</strong>") {
			t.Errorf("expected html body, got %s", content)
		}
		attendees := body["attendees"].([]any)
		first := attendees[0].(map[string]any)
		if first["type"] != "required" {
			t.Errorf("expected required attendee, got %v", first)
		}
		if body["isOnlineMeeting"] != true {
			t.Errorf("expected online meeting flag")
		}
		if body["location"].(map[string]any)["displayName"] != "Room 1" {
			t.Errorf("unexpected location: %v", body["location"])
		}
		w.Write([]byte(`{"id":"new","type":"singleInstance","subject":"Standup","start":{"dateTime":"2025-12-25T09:00:00"}}`))
	})

	ev, err := svc.CreateEvent(context.Background(), NewEvent{
		Subject:   "Standup",
		Content:   "**agenda**",
		Start:     "2025-12-25T09:00:00.000Z",
		End:       "2025-12-25T09:30:00.000Z",
		Location:  "Room 1",
		Attendees: []string{"a@example.com"},
		IsMeeting: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.ID != "new" {
		t.Errorf("unexpected event id %s", ev.ID)
	}
}

func TestUpdateEvent_RequiresField(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	_, err := svc.UpdateEvent(context.Background(), "e1", EventUpdate{})
	if err == nil || !strings.Contains(err.Error(), "At least one property") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateEvent_EmptyLocationSendsNull(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/me/events/e1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		loc, ok := body["location"]
		if !ok || loc != nil {
			t.Errorf("expected explicit null location, got %v (present=%v)", loc, ok)
		}
		if _, ok := body["subject"]; ok {
			t.Error("subject should not be sent")
		}
		w.Write([]byte(`{"id":"e1","type":"singleInstance","start":{"dateTime":"2025-12-25T09:00:00"}}`))
	})
	empty := ""
	if _, err := svc.UpdateEvent(context.Background(), "e1", EventUpdate{Location: &empty}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMessages_ExcludesFoldersAndCachesLookup(t *testing.T) {
	var folderCalls int32
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/me/mailFolders":
			atomic.AddInt32(&folderCalls, 1)
			w.Write([]byte(foldersJSON))
		case "/me/messages":
			q := r.URL.Query()
			want := "receivedDateTime ge 2025-12-25T00:00:00.000Z and parentFolderId ne 'del-id' and parentFolderId ne 'junk-id'"
			if q.Get("$filter") != want {
				t.Errorf("unexpected filter:\n got %s\nwant %s", q.Get("$filter"), want)
			}
			if q.Get("$orderby") != "receivedDateTime desc" {
				t.Errorf("unexpected orderby %s", q.Get("$orderby"))
			}
			w.Write([]byte(`{"value":[{"id":"m1","receivedDateTime":"2025-12-25T08:00:00Z","subject":"Hi"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	mq := MessageQuery{Received: TimeRange{Start: "2025-12-25T00:00:00.000Z"}, Limit: 25}
	for i := 0; i < 2; i++ {
		msgs, err := svc.Messages(context.Background(), mq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgs) != 1 {
			t.Fatalf("expected 1 message, got %d", len(msgs))
		}
	}
	if n := atomic.LoadInt32(&folderCalls); n != 1 {
		t.Errorf("expected folder lookup to be cached, got %d calls", n)
	}
}

func TestMessages_SearchFiltersClientSide(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/me/mailFolders":
			w.Write([]byte(foldersJSON))
		case "/me/messages":
			q := r.URL.Query()
			if q.Get("$search") != `"subject:invoice OR body:invoice OR from:invoice"` {
				t.Errorf("unexpected search %q", q.Get("$search"))
			}
			if q.Get("$filter") != "" {
				t.Errorf("search must not send $filter")
			}
			w.Write([]byte(`{"value":[
				{"id":"m1","receivedDateTime":"2025-12-25T08:00:00Z","parentFolderId":"inbox-id"},
				{"id":"m2","receivedDateTime":"2025-12-25T08:00:00Z","parentFolderId":"junk-id"}
			]}`))
		}
	})

	msgs, err := svc.Messages(context.Background(), MessageQuery{Search: "invoice", Limit: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != "m1" {
		t.Errorf("expected only inbox message, got %+v", msgs)
	}
}

func TestMessages_SearchEscapesQuotes(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/me/mailFolders":
			w.Write([]byte(foldersJSON))
		case "/me/messages":
			want := `"subject:say \"hi\" OR body:say \"hi\" OR from:say \"hi\""`
			if got := r.URL.Query().Get("$search"); got != want {
				t.Errorf("$search = %q, want %q", got, want)
			}
			w.Write([]byte(`{"value":[]}`))
		}
	})

	if _, err := svc.Messages(context.Background(), MessageQuery{Search: `say "hi"`, Limit: 25}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMessages_FolderLookupFailureIsNotFatal(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/me/mailFolders" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if strings.Contains(r.URL.Query().Get("$filter"), "parentFolderId") {
			t.Error("no folder exclusions expected")
		}
		w.Write([]byte(`{"value":[]}`))
	})

	msgs, err := svc.Messages(context.Background(), MessageQuery{Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected no messages, got %d", len(msgs))
	}
}

func TestSendMail_Payload(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/sendMail" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body struct {
			Message struct {
				Subject      string      `json:"subject"`
				Body         ItemBody    `json:"body"`
				ToRecipients []Recipient `json:"toRecipients"`
			} `json:"message"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Message.Subject != "Hello" || len(body.Message.ToRecipients) != 2 {
			t.Errorf("unexpected message: %+v", body.Message)
		}
		if body.Message.Body.ContentType != "html" {
			t.Errorf("expected html body")
		}
		w.WriteHeader(http.StatusAccepted)
	})

	if err := svc.SendMail(context.Background(), "Hello", "Hi *there*", []string{"a@example.com", "b@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReply_QuotesOriginal(t *testing.T) {
	var replyBody string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/me/messages/m1":
			w.Write([]byte(`{"id":"m1","receivedDateTime":"2025-12-24T10:00:00Z","sentDateTime":"2025-12-24T09:59:00Z",
				"subject":"Plans","from":{"emailAddress":{"name":"Ada","address":"ada@example.com"}},
				"body":{"contentType":"html","content":"<p>Original text</p>"}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/me/messages/m1/reply":
			data, _ := io.ReadAll(r.Body)
			replyBody = string(data)
			w.WriteHeader(http.StatusAccepted)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	if err := svc.Reply(context.Background(), "m1", "Sounds good"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Sounds good", "Ada", "Plans", "Original text", "12/24/2025, 9:59:00 AM"} {
		if !strings.Contains(replyBody, want) {
			t.Errorf("reply body missing %q: %s", want, replyBody)
		}
	}
}

func TestFormatUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	got := FormatUTC(time.Date(2025, 12, 25, 10, 0, 0, 0, loc))
	if got != "2025-12-25T09:00:00.000Z" {
		t.Errorf("FormatUTC = %s", got)
	}
}
