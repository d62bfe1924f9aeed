package server

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/lotto-forge/internal/draw"
	"github.com/danielpatrickdp/lotto-forge/internal/filter"
	"github.com/danielpatrickdp/lotto-forge/internal/search"
)

// #region envelope
// Message is the envelope for all client/server traffic: a type for routing
// and a raw payload decoded by the receiver.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message types.
const (
	TypeRunRequest  = "run_request"
	TypeProgress    = "progress"
	TypeResult      = "result"
	TypeNoCandidate = "no_candidate"
	TypeConfigError = "config_error"
	TypeHistory     = "history"
	TypeDailyDraw   = "daily_draw"
	TypeError       = "error"
)

// NewMessage marshals v into an envelope of the given type.
func NewMessage(msgType string, v any) (Message, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s payload: %w", msgType, err)
	}
	return Message{Type: msgType, Payload: payload}, nil
}
// #endregion envelope

// #region payloads
// RunRequest asks the server to run one search. Exclude is free text; Fixed
// holds 0-2 pinned balls.
type RunRequest struct {
	Filters    filter.Config `json:"filters"`
	Fixed      []int         `json:"fixed"`
	Exclude    string        `json:"exclude"`
	MonteCarlo bool          `json:"monte_carlo"`
	Weighted   bool          `json:"weighted"`
}

// ResultPayload carries the final candidate of a successful run.
type ResultPayload struct {
	Result search.Result `json:"result"`
}

// ErrorPayload carries a rejection or failure with a machine-readable code.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
// #endregion payloads

// #region parse
// ParseExclusions turns free text like "4, 13, x, 29" into a ball list.
// Non-numeric tokens are dropped silently; out-of-range values too.
func ParseExclusions(text string) []int {
	var out []int
	seen := make(map[int]bool)
	for _, tok := range strings.Split(text, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n < draw.MinBall || n > draw.MaxBall || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
// #endregion parse
