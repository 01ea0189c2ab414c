package teamwork

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/philipdalen/mcp-workspace/internal/common"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"acme", "acme"},
		{"acme.teamwork.com", "acme"},
		{"https://acme.teamwork.com", "acme"},
		{"http://acme.teamwork.com/", "acme"},
		{"https://acme.teamwork.com//", "acme"},
		{"  acme  ", "acme"},
		{"acme.teamwork.com/", "acme"},
		{"https://acme.teamwork.com/", "acme"},
	}
	for _, tt := range tests {
		if got := NormalizeDomain(tt.in); got != tt.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBaseURL(t *testing.T) {
	if got := BaseURL("https://acme.teamwork.com/", "v3"); got != "https://acme.teamwork.com/projects/api/v3/" {
		t.Errorf("v3 base = %q", got)
	}
	if got := BaseURL("acme", "v1"); got != "https://acme.teamwork.com/" {
		t.Errorf("v1 base = %q", got)
	}
	if got := BaseURL("acme.teamwork.com/", "v1"); got != "https://acme.teamwork.com/" {
		t.Errorf("v1 base with trailing slash = %q", got)
	}
}

func TestNewClients_RejectsEmptyDomain(t *testing.T) {
	if _, err := NewClients("https://", "u", "p", nil); err == nil {
		t.Fatal("expected error for empty domain")
	}
}

func TestClient_BasicAuthAndPath(t *testing.T) {
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:secret"))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != want {
			t.Errorf("Authorization = %q, want %q", got, want)
		}
		if r.URL.Path != "/projects/api/v3/tasks/5.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"task":{"id":5}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/projects/api/v3", "alice", "secret", common.NewSilentLogger())
	data, err := c.Get(context.Background(), "/tasks/5.json", url.Values{"page": {"2"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"task":{"id":5}}` {
		t.Errorf("body = %s", data)
	}
}

func TestClient_ErrorShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"v3", `{"errors":[{"title":"Bad","detail":"name is required"}]}`, "teamwork returned 422: name is required"},
		{"v1", `{"MESSAGE":"Project not found","STATUS":"Error"}`, "teamwork returned 422: Project not found"},
		{"text", `boom`, "teamwork returned 422: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "u", "p", nil).Delete(context.Background(), "x.json")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.Status != http.StatusUnprocessableEntity {
				t.Errorf("status = %d", apiErr.Status)
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestClient_EmptyBodyIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	data, err := NewClient(srv.URL, "u", "p", nil).Delete(context.Background(), "tasks/1.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil body, got %q", data)
	}
}
