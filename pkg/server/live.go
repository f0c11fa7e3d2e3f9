package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

// Message types accepted on the live channel.
const (
	EventInput  = "input"
	EventFocus  = "focus"
	EventSubmit = "submit"
)

// LiveEvent is a browser event sent over the live channel.
type LiveEvent struct {
	Type   string       `json:"type"`
	Field  string       `json:"field,omitempty"`
	Value  string       `json:"value,omitempty"`
	Values rules.Values `json:"values"`
}

// LiveReply is sent back for every event.
type LiveReply struct {
	Type     string         `json:"type"`
	Snapshot *form.Snapshot `json:"snapshot,omitempty"`
	Outcome  *form.Outcome  `json:"outcome,omitempty"`
	Notice   string         `json:"notice,omitempty"`
	Error    string         `json:"error,omitempty"`
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		s.logger.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	sess, err := s.newSession(rules.Values{}, false)
	if err != nil {
		s.logger.Error("live session", "error", err)
		_ = conn.Close(websocket.StatusInternalError, "session unavailable")
		return
	}

	s.metrics.sessions.Inc()
	defer s.metrics.sessions.Dec()

	ctx := r.Context()
	logger := s.logger.With("component", "live")
	for {
		var event LiveEvent
		if err := wsjson.Read(ctx, conn, &event); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || websocket.CloseStatus(err) == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				return
			}
			logger.Debug("live read", "error", err)
			return
		}

		reply := sess.handle(ctx, event)
		if err := wsjson.Write(ctx, conn, reply); err != nil {
			logger.Debug("live write", "error", err)
			return
		}
	}
}

func (sess *session) handle(ctx context.Context, event LiveEvent) LiveReply {
	reply := LiveReply{Type: event.Type}
	seen := len(sess.notes.Messages())

	switch event.Type {
	case EventInput, EventFocus:
		field, err := rules.ParseField(event.Field)
		if err != nil {
			reply.Error = err.Error()
			return reply
		}
		if event.Type == EventInput {
			_, err = sess.controller.Input(ctx, field, event.Value)
		} else {
			err = sess.controller.Focus(ctx, field)
		}
		if err != nil {
			reply.Error = err.Error()
			return reply
		}
	case EventSubmit:
		outcome, err := sess.controller.Submit(ctx, event.Values)
		if err != nil {
			reply.Error = err.Error()
			return reply
		}
		reply.Outcome = &outcome
		if notes := sess.notes.Messages(); len(notes) > seen {
			reply.Notice = notes[len(notes)-1]
		}
	default:
		reply.Error = fmt.Sprintf("unknown event type %q", event.Type)
		return reply
	}

	snap := sess.controller.Snapshot()
	reply.Snapshot = &snap
	return reply
}
