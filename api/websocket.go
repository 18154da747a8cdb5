package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/questpath/genetic"
	"github.com/katalvlaran/questpath/mission"
	"github.com/katalvlaran/questpath/service"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to receive the plan request.
	readWait = 30 * time.Second

	// Maximum plan request size.
	maxMessageSize = 1 << 20
)

// newUpgrader accepts same-origin handshakes (and clients that send no
// Origin) plus the listed origins; "*" allows every origin.
func newUpgrader(origins []string) *websocket.Upgrader {
	u := &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if len(origins) == 0 {
		return u // gorilla's default same-origin check
	}

	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[strings.TrimSuffix(o, "/")] = true
	}
	u.CheckOrigin = func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowed["*"] || allowed[origin] {
			return true
		}
		o, err := url.Parse(origin)
		return err == nil && strings.EqualFold(o.Host, r.Host)
	}

	return u
}

// Message kinds sent on /ws/plan.
const (
	EventGeneration = "generation"
	EventPlan       = "plan"
	EventError      = "error"
)

// Message is one frame sent on /ws/plan.
type Message struct {
	Event      string          `json:"event"`
	RequestID  string          `json:"request_id"`
	Generation *genetic.Stats  `json:"generation,omitempty"`
	Plan       *mission.Result `json:"plan,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// handlePlanWS reads one plan request, streams generations, then the plan.
func (s *Server) handlePlanWS(w http.ResponseWriter, r *http.Request) {
	id := RequestID(r.Context())
	conn, err := s.upgrader.Upgrade(w, r, http.Header{RequestIDHeader: []string{id}})
	if err != nil {
		s.logger.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := func(m Message) error {
		m.RequestID = id
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(m)
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(readWait))
	var req service.PlanRequest
	if err := conn.ReadJSON(&req); err != nil {
		send(Message{Event: EventError, Error: "Invalid request body"})
		return
	}

	ctx, cancel := s.context(r)
	defer cancel()

	// Generations are reported on this goroutine, so writes never overlap.
	var writeErr error
	plan, err := s.service.Plan(ctx, req, func(st genetic.Stats) {
		if writeErr != nil {
			return
		}
		if writeErr = send(Message{Event: EventGeneration, Generation: &st}); writeErr != nil {
			cancel()
		}
	})
	if writeErr != nil {
		s.logger.Printf("[WS] id=%s client gone: %v", id, writeErr)
		return
	}
	if err != nil {
		send(Message{Event: EventError, Error: err.Error()})
		return
	}

	s.logger.Printf("[WS] id=%s strategy=%s cost=%d generations=%d", id, plan.Strategy, plan.Cost, plan.Generations)
	send(Message{Event: EventPlan, Plan: plan})
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}
