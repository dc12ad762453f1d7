// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/notify"
)

const (
	maxEventPage   = 500
	writeTimeout   = 10 * time.Second
	pongTimeout    = 60 * time.Second
	pingInterval   = pongTimeout * 9 / 10
	maxMessageSize = 512
)

type EventsHandler struct {
	ledger   *ledger.Ledger
	hub      *notify.Hub
	cfg      cliparse.Config
	upgrader websocket.Upgrader
}

func NewEventsHandler(l *ledger.Ledger, hub *notify.Hub, cfg cliparse.Config) *EventsHandler {
	h := &EventsHandler{ledger: l, hub: hub, cfg: cfg}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if cfg.AllowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == cfg.AllowedOrigin
		},
	}
	return h
}

// ListEvents handles GET /events?after=N&limit=M
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	after, ok := queryInt(w, r, "after", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", 100)
	if !ok {
		return
	}
	if limit <= 0 || limit > maxEventPage {
		middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be between 1 and 500")
		return
	}

	records, err := h.ledger.Events(r.Context(), after, int(limit))
	if err != nil {
		writeError(w, r, err)
		return
	}

	next := after
	if len(records) > 0 {
		next = records[len(records)-1].Seq
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventsResponse{Events: records, Next: next})
}

// StreamEvents handles GET /events/stream?after=N
// It sends the persisted backlog after N, then live records. A listener
// that falls behind is disconnected and resumes with the last seq it saw.
func (h *EventsHandler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	after, ok := queryInt(w, r, "after", 0)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err, "client", middleware.GetClientIP(r))
		return
	}
	defer conn.Close()

	// Subscribe before reading the backlog so nothing committed in between
	// is missed; duplicates are skipped by seq.
	sub := h.hub.Subscribe()
	defer sub.Close()

	slog.Info("event stream opened", "subscription", sub.ID(), "after", after, "client", middleware.GetClientIP(r))

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(maxMessageSize)
		conn.SetReadDeadline(time.Now().Add(pongTimeout))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongTimeout))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	last := after
	send := func(rec ledger.Record) error {
		if rec.Seq <= last {
			return nil
		}
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(rec); err != nil {
			return err
		}
		last = rec.Seq
		return nil
	}

	for {
		backlog, err := h.ledger.Events(r.Context(), last, maxEventPage)
		if err != nil {
			slog.Error("failed to read event backlog", "subscription", sub.ID(), "error", err)
			closeStream(conn, websocket.CloseInternalServerErr, "backlog unavailable")
			return
		}
		for _, rec := range backlog {
			if err := send(rec); err != nil {
				return
			}
		}
		if len(backlog) < maxEventPage {
			break
		}
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case rec, open := <-sub.C():
			if !open {
				closeStream(conn, websocket.CloseTryAgainLater, "listener fell behind")
				return
			}
			if err := send(rec); err != nil {
				slog.Debug("event stream write failed", "subscription", sub.ID(), "error", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		case <-done:
			slog.Info("event stream closed", "subscription", sub.ID(), "last_seq", last)
			return
		}
	}
}

func closeStream(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout))
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, fallback int64) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" must be a non-negative integer")
		return 0, false
	}
	return v, true
}
