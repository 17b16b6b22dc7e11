package service

import (
	"context"
	"sync"

	"wtwm/internal/core/recognizer"
	"wtwm/internal/core/vocab"
	"wtwm/internal/platform/logger"
)

// Reloader implements domain.ReloaderPort over a recognizer.Handle
type Reloader struct {
	h    *recognizer.Handle
	path string
	mu   sync.Mutex // serializes reloads; scans never take it
}

// NewReloader returns a reloader reading path into h
func NewReloader(h *recognizer.Handle, path string) *Reloader {
	return &Reloader{h: h, path: path}
}

// Path implements domain.ReloaderPort
func (r *Reloader) Path() string { return r.path }

// Reload implements domain.ReloaderPort
func (r *Reloader) Reload(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logger.C(ctx)
	v, err := vocab.LoadFile(r.path)
	if err != nil {
		log.Warn().Err(err).Str("path", r.path).Msg("vocabulary reload failed; keeping current")
		return r.h.Load().Len(), err
	}
	old := r.h.Rebuild(v)
	log.Info().
		Str("path", r.path).
		Int("patterns", v.Len()).
		Int("previous", old.Len()).
		Msg("vocabulary reloaded")
	return v.Len(), nil
}
