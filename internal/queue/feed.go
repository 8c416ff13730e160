// Package queue subscribes to the backend's live queue feed and maintains an
// in-memory snapshot of today's patient queue for the console to render.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/evizor/console/internal/logging"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192

	reconnectInterval = 5 * time.Second
)

// ErrUnauthorized means the feed rejected our token on dial. The session is
// stale or revoked and reconnecting will not help.
var ErrUnauthorized = errors.New("queue feed: unauthorized")

// Entry is one patient waiting in (or called from) the queue.
type Entry struct {
	AppointmentID string `json:"appointmentId"`
	PatientName   string `json:"patientName"`
	Position      int    `json:"position"`
	Status        string `json:"status"`
}

// Event is a single feed message.
//
// Types: "queue_state" carries the full queue in Entries, the rest carry a
// single Entry: "patient_joined", "patient_called", "patient_done".
type Event struct {
	Type    string  `json:"type"`
	Entry   Entry   `json:"entry"`
	Entries []Entry `json:"entries"`
}

// Feed keeps a websocket subscription to the queue endpoint alive and folds
// incoming events into a snapshot.
type Feed struct {
	url   string
	token func() string
	log   logging.Logger

	mu      sync.Mutex
	entries map[string]Entry

	updates chan struct{}
}

// NewFeed builds a feed for url. token is read at every dial so a refreshed
// access token is picked up on reconnect.
func NewFeed(url string, token func() string, log logging.Logger) *Feed {
	return &Feed{
		url:     url,
		token:   token,
		log:     log,
		entries: make(map[string]Entry),
		updates: make(chan struct{}, 1),
	}
}

// Updates signals after every applied event. Notifications are coalesced;
// readers should re-read Snapshot on each tick.
func (f *Feed) Updates() <-chan struct{} {
	return f.updates
}

// Snapshot returns the current queue ordered by position.
func (f *Feed) Snapshot() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Entry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// Run dials the feed and reconnects with a fixed backoff until ctx is
// cancelled. An unauthorized dial is terminal.
func (f *Feed) Run(ctx context.Context) error {
	attempt := 0

	for {
		select {
		case <-ctx.Done():
			f.log.Info(ctx, "queue feed stopped")
			return ctx.Err()
		default:
		}

		f.log.Info(ctx, "connecting to queue feed", "attempt", attempt+1)

		err := f.session(ctx)
		if errors.Is(err, ErrUnauthorized) {
			f.log.Error(ctx, "queue feed rejected token, giving up", "error", err)
			return err
		}
		if err != nil {
			f.log.Warn(ctx, "queue feed session failed, will retry", "error", err)
		}

		attempt++

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectInterval):
		}
	}
}

func (f *Feed) session(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}

	header := make(http.Header)
	header.Set("Authorization", "Bearer "+f.token())

	conn, resp, err := dialer.DialContext(ctx, f.url, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return ErrUnauthorized
		}
		return fmt.Errorf("queue feed dial: %w", err)
	}
	f.log.Info(ctx, "queue feed connected", "url", f.url)

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pumpDone := make(chan error, 2)
	go func() { pumpDone <- f.readPump(sessionCtx, conn) }()
	go func() { pumpDone <- f.pingPump(sessionCtx, conn) }()

	var finalErr error
	select {
	case finalErr = <-pumpDone:
	case <-ctx.Done():
		finalErr = ctx.Err()
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "shutting down"),
	)
	conn.Close()

	return finalErr
}

func (f *Feed) readPump(ctx context.Context, conn *websocket.Conn) error {
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return err
		}

		var ev Event
		if err := json.Unmarshal(message, &ev); err != nil {
			f.log.Error(ctx, "invalid queue feed message", "error", err)
			continue
		}

		f.apply(ctx, ev)
	}
}

func (f *Feed) pingPump(ctx context.Context, conn *websocket.Conn) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

func (f *Feed) apply(ctx context.Context, ev Event) {
	f.mu.Lock()
	switch ev.Type {
	case "queue_state":
		f.entries = make(map[string]Entry, len(ev.Entries))
		for _, e := range ev.Entries {
			f.entries[e.AppointmentID] = e
		}
	case "patient_joined", "patient_called":
		f.entries[ev.Entry.AppointmentID] = ev.Entry
	case "patient_done":
		delete(f.entries, ev.Entry.AppointmentID)
	default:
		f.mu.Unlock()
		f.log.Debug(ctx, "ignoring unknown queue event", "type", ev.Type)
		return
	}
	f.mu.Unlock()

	select {
	case f.updates <- struct{}{}:
	default:
	}
}
