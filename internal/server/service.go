package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/danielpatrickdp/lotto-forge/internal/config"
	"github.com/danielpatrickdp/lotto-forge/internal/draw"
	"github.com/danielpatrickdp/lotto-forge/internal/history"
	"github.com/danielpatrickdp/lotto-forge/internal/search"
)

// #region service
// runTimeout bounds a single search run; the context cancels at the next
// batch boundary.
const runTimeout = 2 * time.Minute

// Service implements EventHandler: it turns run requests into engine runs and
// streams progress back to the requesting client.
type Service struct {
	engine *search.Engine
	store  *history.Store
	cfg    config.Config
}

// NewService creates the engine-side handler. store may be nil to disable
// persistence.
func NewService(engine *search.Engine, store *history.Store, cfg config.Config) *Service {
	return &Service{engine: engine, store: store, cfg: cfg}
}

// OnConnect sends the stored history so a fresh client can render it.
func (s *Service) OnConnect(c *Client) {
	log.Printf("[SERVE] client connected")
	s.sendHistory(c)
}

// OnDisconnect is bookkeeping only; per-run goroutines notice the closed send channel.
func (s *Service) OnDisconnect(c *Client) {
	log.Printf("[SERVE] client disconnected")
}

// OnMessage routes one incoming envelope.
func (s *Service) OnMessage(c *Client, msg Message) {
	switch msg.Type {
	case TypeRunRequest:
		var req RunRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			s.send(c, TypeError, ErrorPayload{Code: "bad_request", Message: err.Error()})
			return
		}
		// Each run gets its own goroutine so the hub keeps routing while the
		// search is in flight.
		go s.runSearch(c, req)
	case TypeHistory:
		s.sendHistory(c)
	default:
		s.send(c, TypeError, ErrorPayload{Code: "unknown_type", Message: msg.Type})
	}
}
// #endregion service

// #region run-search
func (s *Service) runSearch(c *Client, req RunRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	total := s.cfg.QuickDraws
	if req.MonteCarlo {
		total = s.cfg.TotalDraws
	}
	mode := draw.Uniform
	if req.Weighted {
		mode = draw.Weighted
	}
	params := search.Params{
		TotalDraws: total,
		BatchSize:  s.cfg.BatchSize,
		Filters:    req.Filters,
		Fixed:      req.Fixed,
		Excluded:   ParseExclusions(req.Exclude),
		Mode:       mode,
	}

	res, err := s.engine.Run(ctx, params, func(p search.Progress) {
		s.send(c, TypeProgress, p)
	})
	switch {
	case err == nil:
		s.send(c, TypeResult, ResultPayload{Result: res})
		s.persist(res)
		s.sendHistory(c)
	case search.IsConfigError(err):
		s.send(c, TypeConfigError, ErrorPayload{Code: "config", Message: err.Error()})
	case errors.Is(err, search.ErrNoCandidate):
		s.send(c, TypeNoCandidate, ErrorPayload{
			Code:    "no_candidate",
			Message: "no acceptable candidate found; try relaxing the fixed/excluded configuration",
		})
	default:
		s.send(c, TypeError, ErrorPayload{Code: "run_failed", Message: err.Error()})
	}
}

func (s *Service) persist(res search.Result) {
	if s.store == nil {
		return
	}
	rec := history.Record{
		RunID:       res.RunID,
		Combination: res.Combination,
		Score:       res.Score,
		Metrics:     res.Metrics,
	}
	if err := s.store.Append(rec); err != nil {
		log.Printf("[SERVE] history append failed: %v", err)
	}
}
// #endregion run-search

// #region send
func (s *Service) sendHistory(c *Client) {
	if s.store == nil {
		return
	}
	records, err := s.store.Load()
	if err != nil {
		log.Printf("[SERVE] history load failed: %v", err)
		return
	}
	s.send(c, TypeHistory, records)
}

// send marshals and queues an envelope, dropping it if the client is gone.
func (s *Service) send(c *Client, msgType string, v any) {
	msg, err := NewMessage(msgType, v)
	if err != nil {
		log.Printf("[SERVE] %v", err)
		return
	}
	defer func() {
		// The hub closes the send channel on disconnect; a queued run may
		// still try to report afterwards.
		_ = recover()
	}()
	select {
	case c.send <- msg:
	default:
	}
}
// #endregion send
