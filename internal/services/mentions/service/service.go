// Package service implements the mentions service
package service

import (
	"context"
	"sync"

	"wtwm/internal/core/recognizer"
	perr "wtwm/internal/platform/errors"
	"wtwm/internal/platform/logger"
	"wtwm/internal/platform/validate"
	dom "wtwm/internal/services/mentions/domain"

	"github.com/google/uuid"
)

// Config for the mentions service
type Config struct {
	Workers int
}

// Service implements domain.RunnerPort
type Service struct {
	Rec recognizer.Recognizer
	Cfg Config
}

// New constructs a new mentions service
func New(rec recognizer.Recognizer, cfg Config) *Service {
	w := cfg.Workers
	if w <= 0 {
		w = 1
	}
	return &Service{
		Rec: rec,
		Cfg: Config{Workers: w},
	}
}

var newBatchID = uuid.NewString

// RunOne implements domain.RunnerPort. Text reaches the recognizer as submitted
// so mention offsets index the caller's comment
func (s *Service) RunOne(_ context.Context, it dom.Item) ([]recognizer.Record, error) {
	if err := validate.Struct(it); err != nil {
		return nil, perr.WithOp(err, "mentions.RunOne")
	}
	return recognizer.Recognize(s.Rec, it.Text, it.SourceID)
}

// Run implements domain.RunnerPort
func (s *Service) Run(ctx context.Context, items []dom.Item) ([]dom.Result, dom.Stats, error) {
	stats := dom.Stats{BatchID: newBatchID(), Items: len(items)}
	ctx = logger.WithBatch(ctx, stats.BatchID, s.Rec.Kind().String())
	log := logger.C(ctx)

	out := make([]dom.Result, len(items))

	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}

	for i := range items {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			it := items[i]
			out[i].SourceID = it.SourceID
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return
			}
			out[i].Records, out[i].Err = s.RunOne(ctx, it)
		}(i)
	}
	wg.Wait()

	// items never started because ctx ended
	for i := range out {
		if out[i].Err == nil && out[i].Records == nil && ctx.Err() != nil {
			out[i].SourceID = items[i].SourceID
			out[i].Err = ctx.Err()
		}
	}

	for i, r := range out {
		if r.Err == nil {
			stats.Mentions += len(r.Records)
			continue
		}
		stats.Skipped++
		ev := log.Warn()
		if !recognizer.IsPreprocessing(r.Err) && !perr.IsCode(r.Err, perr.ErrorCodeValidation) {
			ev = log.Error()
		}
		ev.Err(r.Err).Int("index", i).Str("source_id", r.SourceID).Msg("skipping item")
	}

	log.Info().
		Int("items", stats.Items).
		Int("mentions", stats.Mentions).
		Int("skipped", stats.Skipped).
		Msg("batch done")

	return out, stats, ctx.Err()
}
