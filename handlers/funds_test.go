// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func TestFunds(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewFundsHandler(env.ledger, env.cfg)

	deposit := func(headers map[string]string, amount uint64) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/funds/deposit", models.DepositRequest{Amount: amount}, headers)
		w := httptest.NewRecorder()
		handler.Deposit(w, req)
		return w
	}
	funds := func(caller string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/funds", nil, env.headers(caller))
		w := httptest.NewRecorder()
		handler.GetFunds(w, req)
		return w
	}

	t.Run("deposits", func(t *testing.T) {
		testutil.AssertStatus(t, deposit(env.headers("donor"), 40), http.StatusOK)
		testutil.AssertStatus(t, deposit(env.headers("alice"), 2), http.StatusOK)
		testutil.AssertStatus(t, deposit(env.headers("donor"), 0), http.StatusBadRequest)
		testutil.AssertStatus(t, deposit(nil, 5), http.StatusUnauthorized)
	})

	t.Run("deposits are allowed while paused", func(t *testing.T) {
		env.exec(t, ledger.Pause(admin))
		defer env.exec(t, ledger.Unpause(admin))
		testutil.AssertStatus(t, deposit(env.headers("donor"), 8), http.StatusOK)
	})

	t.Run("balance is admin only", func(t *testing.T) {
		testutil.AssertStatus(t, funds("donor"), http.StatusForbidden)

		w := funds(admin)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.FundsResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Held != 50 || resp.PaidOut != 0 {
			t.Errorf("Expected held 50 paid_out 0, got %+v", resp)
		}
	})

	t.Run("withdraw sweeps the balance", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/funds/withdraw", nil, env.headers("donor"))
		w := httptest.NewRecorder()
		handler.Withdraw(w, req)
		testutil.AssertStatus(t, w, http.StatusForbidden)

		req = testutil.MakeRequest("POST", "/funds/withdraw", nil, env.headers(admin))
		w = httptest.NewRecorder()
		handler.Withdraw(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var withdrawn models.AmountResponse
		testutil.AssertJSON(t, w, &withdrawn)
		if withdrawn.Amount != 50 {
			t.Errorf("Expected 50 withdrawn, got %d", withdrawn.Amount)
		}

		w = funds(admin)
		var resp models.FundsResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Held != 0 || resp.PaidOut != 50 {
			t.Errorf("Expected held 0 paid_out 50, got %+v", resp)
		}
	})
}
