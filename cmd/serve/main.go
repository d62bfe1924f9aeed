package main

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/danielpatrickdp/lotto-forge/internal/config"
	"github.com/danielpatrickdp/lotto-forge/internal/filter"
	"github.com/danielpatrickdp/lotto-forge/internal/history"
	"github.com/danielpatrickdp/lotto-forge/internal/search"
	"github.com/danielpatrickdp/lotto-forge/internal/server"
)

// #region main

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := history.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("open history: %v", err)
	}
	defer store.Close()

	engine := search.Default()
	svc := server.NewService(engine, store, cfg)
	srv := server.NewServer(svc)

	if cfg.DailyDraw {
		startDailyDraw(cfg, engine, store, srv)
	}

	if err := srv.Listen(cfg.ListenAddr); err != nil {
		log.Fatalf("listen: %v", err)
	}
}

// #endregion main

// #region daily-draw

// startDailyDraw schedules an exhaustive weighted run and broadcasts the
// result to every connected client.
func startDailyDraw(cfg config.Config, engine *search.Engine, store *history.Store, srv *server.Server) {
	c := cron.New()
	_, err := c.AddFunc(cfg.DailyDrawCron, func() {
		params := search.Params{
			TotalDraws: cfg.TotalDraws,
			BatchSize:  cfg.BatchSize,
			Filters:    filter.AllEnabled(),
		}
		res, err := engine.Run(context.Background(), params, nil)
		if err != nil {
			log.Printf("[SERVE] daily draw failed: %v", err)
			return
		}
		rec := history.Record{
			RunID:       res.RunID,
			Combination: res.Combination,
			Score:       res.Score,
			Metrics:     res.Metrics,
		}
		if err := store.Append(rec); err != nil {
			log.Printf("[SERVE] daily draw append failed: %v", err)
		}
		msg, err := server.NewMessage(server.TypeDailyDraw, server.ResultPayload{Result: res})
		if err != nil {
			log.Printf("[SERVE] %v", err)
			return
		}
		srv.Hub().Broadcast(msg)
		log.Printf("[SERVE] daily draw %v score=%.2f", res.Combination, res.Score)
	})
	if err != nil {
		log.Fatalf("daily draw schedule %q: %v", cfg.DailyDrawCron, err)
	}
	c.Start()
	log.Printf("[SERVE] daily draw scheduled: %s", cfg.DailyDrawCron)
}

// #endregion daily-draw
