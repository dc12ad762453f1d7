// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/notify"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func newTestRouter(t *testing.T, cfg cliparse.Config) *http.ServeMux {
	t.Helper()

	hub := notify.NewHub(16)
	l, err := ledger.Open(context.Background(), testutil.SetupTestDB(t), cfg.SessionConfig(), hub)
	if err != nil {
		t.Fatalf("Failed to open ledger: %v", err)
	}
	return NewRouter(l, hub, cfg)
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "quickly-vote API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t, testutil.GetTestConfig())

	// 400, 401, 403, 404, 409 are all valid responses depending on handler logic
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"GET", "/phase"},
		{"POST", "/phase/advance"},
		{"POST", "/pause"},
		{"POST", "/unpause"},

		{"POST", "/voters"},
		{"GET", "/voters/alice"},
		{"GET", "/voters/alice/registered"},
		{"GET", "/voters/alice/voted"},
		{"GET", "/voters/alice/vote"},

		{"POST", "/proposals"},
		{"GET", "/proposals"},
		{"GET", "/proposals/0"},
		{"GET", "/proposals/0/votes"},

		{"POST", "/votes"},
		{"POST", "/winner/resolve"},
		{"GET", "/winner"},

		{"POST", "/funds/deposit"},
		{"POST", "/funds/withdraw"},
		{"GET", "/funds"},

		{"GET", "/events"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},       // Only GET is defined
		{"DELETE", "/proposals/0"}, // Only GET is defined
		{"PUT", "/votes"},          // Only POST is defined
		{"GET", "/phase/advance"},  // Only POST is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := newTestRouter(t, cfg)

	register := testutil.MakeRequest("POST", "/voters", models.RegisterVoterRequest{Identity: "alice"}, testutil.IdentityHeaders(cfg, testutil.TestAdmin))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, register)
	testutil.AssertStatus(t, w, http.StatusCreated)

	t.Run("identity extraction", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/voters/alice/registered", nil, testutil.IdentityHeaders(cfg, "alice"))
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.VoterStatus
		testutil.AssertJSON(t, w, &resp)
		if resp.Identity != "alice" || !resp.Registered {
			t.Errorf("Expected alice registered, got %+v", resp)
		}
	})

	t.Run("proposal id extraction", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/proposals/not-a-number", nil, testutil.IdentityHeaders(cfg, "alice"))
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestMutationRateLimit(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.RateLimit = 0.001
	mux := newTestRouter(t, cfg)

	var codes []int
	for i := 0; i < mutationBurst+1; i++ {
		req := testutil.MakeRequest("POST", "/votes", models.CastVoteRequest{}, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[len(codes)-1] != http.StatusTooManyRequests {
		t.Errorf("Expected request past the burst to be limited, got %v", codes)
	}

	// Reads are not limited.
	req := httptest.NewRequest("GET", "/phase", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}
