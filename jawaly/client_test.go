package jawaly

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"missing key", Config{APISecret: "s", Sender: "TEST"}, ErrMissingCredentials},
		{"missing secret", Config{APIKey: "k", Sender: "TEST"}, ErrMissingCredentials},
		{"missing sender", Config{APIKey: "k", APISecret: "s"}, ErrMissingSender},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.cfg); !errors.Is(err, tc.wantErr) {
				t.Errorf("New(%+v) error = %v, want %v", tc.cfg, err, tc.wantErr)
			}
		})
	}

	c, err := New(Config{APIKey: "k", APISecret: "s", Sender: "TEST"})
	if err != nil {
		t.Fatalf("New with full config returned error: %v", err)
	}
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want default %q", c.baseURL, DefaultBaseURL)
	}
	if c.Sender() != "TEST" {
		t.Errorf("Sender() = %q, want TEST", c.Sender())
	}
}

func TestClient_RequestHeaders(t *testing.T) {
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("key:secret"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != wantAuth {
			t.Errorf("Authorization = %q, want %q", got, wantAuth)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}

		w.Header().Set("Content-Type", "application/json")
		writeJSONBody(t, w, `{"balance":1.0}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	if _, err := c.GetBalance(context.Background()); err != nil {
		t.Fatalf("GetBalance returned error: %v", err)
	}
}

func TestGetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/account/area/me/packages" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		q := r.URL.Query()
		if q.Get("is_active") != "1" || q.Get("return_collection") != "1" {
			t.Errorf("missing expected query params: %v", q)
		}

		w.Header().Set("Content-Type", "application/json")
		writeJSONBody(t, w, `{
			"balance": 1250.5,
			"packages": [
				{"id": 7, "package_points": 2000, "current_points": 1250,
				 "expire_at": "2027-01-01", "is_active": true}
			]
		}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	balance, err := c.GetBalance(context.Background())
	if err != nil {
		t.Fatalf("GetBalance returned error: %v", err)
	}

	if balance.Balance != 1250.5 {
		t.Errorf("Balance = %v, want 1250.5", balance.Balance)
	}
	if len(balance.Packages) != 1 || balance.Packages[0].CurrentPoints != 1250 {
		t.Errorf("unexpected packages: %+v", balance.Packages)
	}
}

func TestGetBalance_HardFailures(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		if _, err := c.GetBalance(context.Background()); err == nil {
			t.Fatal("expected an error for a 401 response")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSONBody(t, w, `not json`)
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		if _, err := c.GetBalance(context.Background()); err == nil {
			t.Fatal("expected an error for a malformed body")
		}
	})
}

func TestGetSenders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/account/area/senders" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("status") != "1" {
			t.Errorf("missing status query param: %v", r.URL.Query())
		}

		w.Header().Set("Content-Type", "application/json")
		writeJSONBody(t, w, `{
			"success": true,
			"total": 2,
			"data": [
				{"id": 1, "name": "TEST", "status": "active",
				 "created_at": "2025-01-01", "updated_at": "2025-01-02"},
				{"id": 2, "name": "PROMO", "status": "active",
				 "created_at": "2025-02-01", "updated_at": "2025-02-02"}
			]
		}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	senders, err := c.GetSenders(context.Background())
	if err != nil {
		t.Fatalf("GetSenders returned error: %v", err)
	}

	if !senders.Success || senders.Total != 2 {
		t.Errorf("unexpected response envelope: %+v", senders)
	}
	if len(senders.Data) != 2 || senders.Data[1].Name != "PROMO" {
		t.Errorf("unexpected sender list: %+v", senders.Data)
	}
}

func TestSendResponse_ErrText(t *testing.T) {
	var empty SendResponse
	if _, found := empty.ErrText(); found {
		t.Error("empty response should not report an err_text")
	}

	clean := SendResponse{Messages: []MessagePayload{{Text: "x"}}}
	if _, found := clean.ErrText(); found {
		t.Error("clean response should not report an err_text")
	}

	failed := SendResponse{Messages: []MessagePayload{{ErrText: "invalid sender"}}}
	if reason, found := failed.ErrText(); !found || reason != "invalid sender" {
		t.Errorf("ErrText() = %q, %v; want invalid sender, true", reason, found)
	}
}
