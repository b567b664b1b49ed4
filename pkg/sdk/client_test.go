package faqdex

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAsk(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-Session-ID"); got != "widget-42" {
			t.Errorf("unexpected session header: %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Question != "library hours?" {
			t.Errorf("unexpected question: %q", req.Question)
		}
		_ = json.NewEncoder(w).Encode(Reply{
			Answer:   "9am to 5pm.",
			Outcome:  "answered",
			Score:    2,
			Keywords: []string{"library", "hours"},
		})
	}))
	defer ts.Close()

	client := New(ts.URL, WithSessionID("widget-42"))
	reply, err := client.Ask(context.Background(), "library hours?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Answer != "9am to 5pm." || reply.Outcome != "answered" || reply.Score != 2 {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestCreateRecord_SendsAPIKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Record{ID: "r1", Answer: "A", Keywords: []string{"k"}})
	}))
	defer ts.Close()

	client := New(ts.URL, WithAPIKey("secret"))
	rec, err := client.CreateRecord(context.Background(), Record{ID: "r1", Answer: "A", Keywords: []string{"k"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "r1" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestImportRecords(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/records/import" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(importResponse{Results: []ImportResult{
			{ID: "a", Created: true},
			{ID: "b", Created: false, Error: "answer is required"},
		}})
	}))
	defer ts.Close()

	client := New(ts.URL)
	results, err := client.ImportRecords(context.Background(), []Record{
		{ID: "a", Answer: "A", Keywords: []string{"k"}},
		{ID: "b"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 || !results[0].Created || results[1].Error == "" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		code   string
		want   error
	}{
		{"not found", http.StatusNotFound, "record_not_found", ErrRecordNotFound},
		{"turn in flight", http.StatusTooManyRequests, "turn_in_flight", ErrTurnInFlight},
		{"unauthorized", http.StatusUnauthorized, "bad_request", ErrUnauthorized},
		{"bad request", http.StatusBadRequest, "bad_request", ErrBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(errorResponse{Code: tc.code, Message: "nope"})
			}))
			defer ts.Close()

			client := New(ts.URL)
			_, err := client.GetRecord(context.Background(), "r1")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %T", err)
			}
			if apiErr.StatusCode != tc.status || apiErr.Code != tc.code {
				t.Fatalf("unexpected APIError: %+v", apiErr)
			}
		})
	}
}

func TestDeleteRecord(t *testing.T) {
	var gotMethod, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
	}))
	defer ts.Close()

	client := New(ts.URL)
	if err := client.DeleteRecord(context.Background(), "r1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/records/r1" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(Health{Status: "ok", Checks: map[string]string{"database": "ok"}})
	}))
	defer ts.Close()

	client := New(ts.URL)
	h, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Status != "ok" || h.Checks["database"] != "ok" {
		t.Fatalf("unexpected health: %+v", h)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(Health{Status: "ok"})
	}))
	defer ts.Close()

	client := New(ts.URL + "/")
	if _, err := client.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/health" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
}
