package worker

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/edfast/edfast-backend/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CleanupWorker consumes the file-cleanup queue and removes uploaded
// timetable files whose owning timetable was deleted or never persisted.
type CleanupWorker struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewCleanupWorker creates a new CleanupWorker.
func NewCleanupWorker(rdb *redis.Client, log zerolog.Logger) *CleanupWorker {
	return &CleanupWorker{
		rdb: rdb,
		log: log.With().Str("component", "cleanup_worker").Logger(),
	}
}

type cleanupPayload struct {
	Path        string `json:"path"`
	TimetableID string `json:"timetable_id"`
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *CleanupWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *CleanupWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.FileCleanupQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}
	w.remove(result[1])
}

func (w *CleanupWorker) remove(raw string) {
	var payload cleanupPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	if err := os.Remove(payload.Path); err != nil && !os.IsNotExist(err) {
		w.log.Error().Err(err).
			Str("path", payload.Path).
			Str("timetable_id", payload.TimetableID).
			Msg("Remove failed")
		return
	}

	w.log.Debug().
		Str("path", payload.Path).
		Str("timetable_id", payload.TimetableID).
		Msg("Upload file removed")
}

// drain processes all remaining items in the queue before shutdown.
func (w *CleanupWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.FileCleanupQueue).Result()
		if err != nil {
			break
		}
		w.remove(result)
		drained++
	}
	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Queue drained")
	}
}
