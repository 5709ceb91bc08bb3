package session

import "time"

// Event kinds accepted by the events endpoint.
const (
	EventDigit    = "digit"
	EventPoint    = "point"
	EventOperator = "operator"
	EventUnary    = "unary"
	EventEquals   = "equals"
	EventClear    = "clear"
)

// Event is the JSON body for POST /calculator/sessions/{sessionID}/events
// and the element type of a replay request.
type Event struct {
	Type     string `json:"type"`
	Digit    *int   `json:"digit,omitempty"`    // 0-9, required for "digit"
	Operator string `json:"operator,omitempty"` // operator glyph ("÷", "×", "+", "-"), for "operator"
	Function string `json:"function,omitempty"` // unary function name ("sqrt", "negate", ...), for "unary"
}

// StateResponse is the JSON response for session creation, event delivery
// and display reads.
type StateResponse struct {
	SessionID string `json:"session_id"`
	Display   string `json:"display"`
}

// ReplayRequest is the JSON body for POST /calculator/replay.
type ReplayRequest struct {
	Events []Event `json:"events"`
}

// ReplayStep records the display after one replayed event.
type ReplayStep struct {
	Index   int    `json:"index"`
	Type    string `json:"type"`
	Display string `json:"display"`
}

// ReplayResponse is the JSON response for POST /calculator/replay.
type ReplayResponse struct {
	Steps   []ReplayStep `json:"steps"`
	Display string       `json:"display"`
}

// HistoryEntry is one recorded evaluation in a history response.
type HistoryEntry struct {
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryResponse is the JSON response for GET
// /calculator/sessions/{sessionID}/history.
type HistoryResponse struct {
	SessionID string         `json:"session_id"`
	Entries   []HistoryEntry `json:"entries"`
}
