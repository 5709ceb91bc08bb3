package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"

	"deskcalc/internal/calc"
	"deskcalc/internal/observability"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// handleCreateSession handles POST /calculator/sessions.
func (m *Manager) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.session.create",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	s := m.Create()
	activeSessions.Add(ctx, 1)

	span.SetAttributes(attribute.String("calculator.session_id", s.ID))
	span.SetStatus(codes.Ok, "")

	logger.Info("session created",
		zap.String("session_id", s.ID),
		zap.String("request_id", requestID),
	)

	writeJSON(w, http.StatusCreated, StateResponse{SessionID: s.ID, Display: s.Display()})
}

// handleGetSession handles GET /calculator/sessions/{sessionID}.
func (m *Manager) handleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	s, ok := m.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		span := trace.SpanFromContext(ctx)
		observability.RecordError(ctx, span, logger, errorCounter, "get", "session not found",
			fmt.Errorf("unknown session %q", chi.URLParam(r, "sessionID")), http.StatusNotFound, w)
		return
	}

	writeJSON(w, http.StatusOK, StateResponse{SessionID: s.ID, Display: s.Display()})
}

// handleEvent handles POST /calculator/sessions/{sessionID}/events — one
// keypad event in, the resulting display text out.
func (m *Manager) handleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.event",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	s, ok := m.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, "event", "session not found",
			fmt.Errorf("unknown session %q", chi.URLParam(r, "sessionID")), http.StatusNotFound, w)
		return
	}

	var ev Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "event", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if ev.Type == EventDigit && ev.Digit == nil {
		observability.RecordError(ctx, span, logger, errorCounter, "event", "digit event without digit",
			fmt.Errorf("missing digit field"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("calculator.session_id", s.ID),
		attribute.String("calculator.event", ev.Type),
	)

	start := time.Now()
	display, evaluated := m.Apply(ctx, s, ev)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	attrs := metric.WithAttributes(attribute.String("event", ev.Type))
	eventCounter.Add(ctx, 1, attrs)
	eventHistogram.Record(ctx, elapsed, attrs)
	if evaluated {
		evalCounter.Add(ctx, 1)
	}

	span.AddEvent("event.handled", trace.WithAttributes(
		attribute.String("display", display),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator event handled",
		zap.String("session_id", s.ID),
		zap.String("event", ev.Type),
		zap.String("display", display),
		zap.Bool("evaluated", evaluated),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	writeJSON(w, http.StatusOK, StateResponse{SessionID: s.ID, Display: display})
}

// handleCloseSession handles DELETE /calculator/sessions/{sessionID}.
func (m *Manager) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	id := chi.URLParam(r, "sessionID")
	if !m.Close(id) {
		span := trace.SpanFromContext(ctx)
		observability.RecordError(ctx, span, logger, errorCounter, "close", "session not found",
			fmt.Errorf("unknown session %q", id), http.StatusNotFound, w)
		return
	}

	activeSessions.Add(ctx, -1)
	logger.Info("session closed", zap.String("session_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// handleHistory handles GET /calculator/sessions/{sessionID}/history.
func (m *Manager) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	s, ok := m.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		span := trace.SpanFromContext(ctx)
		observability.RecordError(ctx, span, logger, errorCounter, "history", "session not found",
			fmt.Errorf("unknown session %q", chi.URLParam(r, "sessionID")), http.StatusNotFound, w)
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := m.Recent(ctx, s.ID, limit)
	if err != nil {
		span := trace.SpanFromContext(ctx)
		observability.RecordError(ctx, span, logger, errorCounter, "history", "reading history failed", err, http.StatusInternalServerError, w)
		return
	}

	resp := HistoryResponse{SessionID: s.ID, Entries: make([]HistoryEntry, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, HistoryEntry{
			Expression: e.Expression,
			Result:     e.Result,
			CreatedAt:  e.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleReplay handles POST /calculator/replay — runs an event sequence
// through a throwaway engine, creating a child span for every step. This
// produces a multi-level trace that is ideal for visualising the engine's
// transitions.
func (m *Manager) handleReplay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.replay",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req ReplayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "replay", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Events) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "replay", "no events provided",
			fmt.Errorf("events array is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("replay.events_count", len(req.Events)))

	engine := calc.New(nil)
	steps := make([]ReplayStep, 0, len(req.Events))

	for i, ev := range req.Events {
		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.replay.step.%d.%s", i, ev.Type),
			trace.WithAttributes(
				attribute.Int("replay.step.index", i),
				attribute.String("replay.step.event", ev.Type),
			),
		)

		stepStart := time.Now()
		changed := ev.apply(engine)
		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0

		attrs := metric.WithAttributes(attribute.String("event", ev.Type))
		eventCounter.Add(ctx, 1, attrs)
		eventHistogram.Record(ctx, stepElapsed, attrs)
		if ev.Type == EventEquals {
			evalCounter.Add(ctx, 1)
		}

		stepSpan.AddEvent("step.handled", trace.WithAttributes(
			attribute.String("display", engine.Text()),
			attribute.Bool("changed", changed),
		))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		steps = append(steps, ReplayStep{Index: i, Type: ev.Type, Display: engine.Text()})
	}

	span.AddEvent("replay.complete", trace.WithAttributes(
		attribute.String("final_display", engine.Text()),
		attribute.Int("total_events", len(req.Events)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("replay completed",
		zap.Int("events", len(req.Events)),
		zap.String("display", engine.Text()),
		zap.String("request_id", requestID),
	)

	writeJSON(w, http.StatusOK, ReplayResponse{Steps: steps, Display: engine.Text()})
}
