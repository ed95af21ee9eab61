package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/edfast/edfast-backend/internal/config"
	"github.com/edfast/edfast-backend/internal/ingest"
	"github.com/edfast/edfast-backend/internal/model"
	"github.com/edfast/edfast-backend/internal/repository"
	"github.com/edfast/edfast-backend/internal/timetable"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Sentinel errors for timetable operations.
var (
	ErrTimetableNotFound   = errors.New("timetable not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrNoUsableEntries     = errors.New("no usable entries in uploaded files")
)

// UploadResult reports what an upload produced: the stored timetable, the
// per-row warnings, and per-file statistics.
type UploadResult struct {
	Timetable model.Timetable            `json:"timetable"`
	Warnings  []timetable.RowWarning     `json:"warnings"`
	FileStats map[string]timetable.Stats `json:"file_stats"`
}

// ConflictReport pairs detected conflicts with their recommendations.
type ConflictReport struct {
	Conflicts       []timetable.Conflict       `json:"conflicts"`
	Recommendations []timetable.Recommendation `json:"recommendations"`
}

// cleanupJob is the payload pushed onto the file-cleanup queue.
type cleanupJob struct {
	Path        string `json:"path"`
	TimetableID string `json:"timetable_id"`
}

// TimetableService orchestrates upload ingestion, persistence, caching,
// and the pure scheduling core. All conflict/filter computations run over
// an immutable entry snapshot loaded per request.
type TimetableService struct {
	repo *repository.TimetableRepository
	rdb  *redis.Client
	cfg  *config.Config
	log  zerolog.Logger
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(repo *repository.TimetableRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *TimetableService {
	return &TimetableService{
		repo: repo,
		rdb:  rdb,
		cfg:  cfg,
		log:  log.With().Str("component", "timetable_service").Logger(),
	}
}

// Upload saves the files, extracts and normalizes their rows, and persists
// the result as a new timetable. Malformed rows are skipped with warnings;
// malformed files abort only their own processing. The whole upload fails
// only when nothing usable remains.
func (s *TimetableService) Upload(ctx context.Context, userID int, files []*multipart.FileHeader) (*UploadResult, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	result := &UploadResult{FileStats: make(map[string]timetable.Stats)}
	var allEntries []model.TimetableEntry
	var savedPaths []string

	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if ext != ".csv" && ext != ".xlsx" {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, fh.Filename)
		}
		if fh.Size > s.cfg.MaxUploadBytes {
			return nil, fmt.Errorf("%w: %s (%d bytes)", ErrFileTooLarge, fh.Filename, fh.Size)
		}

		path, err := s.saveFile(fh, ext)
		if err != nil {
			return nil, err
		}
		savedPaths = append(savedPaths, path)

		rows, err := s.readRows(path, fh.Filename)
		if err != nil {
			s.log.Warn().Err(err).Str("file", fh.Filename).Msg("File ingestion failed, skipping")
			continue
		}

		entries, warnings := timetable.Normalize(rows, fh.Filename)
		allEntries = append(allEntries, entries...)
		result.Warnings = append(result.Warnings, warnings...)
		result.FileStats[fh.Filename] = timetable.Summarize(entries)
	}

	if len(allEntries) == 0 {
		s.enqueueCleanup(ctx, savedPaths, "")
		return nil, ErrNoUsableEntries
	}

	t := model.Timetable{
		ID:          uuid.New(),
		UserID:      userID,
		SourceFiles: savedPaths,
	}
	if err := s.repo.Create(ctx, &t, allEntries); err != nil {
		s.enqueueCleanup(ctx, savedPaths, "")
		return nil, fmt.Errorf("persist timetable: %w", err)
	}

	s.cacheEntries(ctx, t.ID, allEntries)

	s.log.Info().
		Str("timetable_id", t.ID.String()).
		Int("user_id", userID).
		Int("entries", len(allEntries)).
		Int("warnings", len(result.Warnings)).
		Msg("Timetable uploaded")

	result.Timetable = t
	return result, nil
}

// List returns a user's timetables.
func (s *TimetableService) List(ctx context.Context, userID int) ([]model.Timetable, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Entries loads one timetable's entry snapshot, Redis-cached.
func (s *TimetableService) Entries(ctx context.Context, userID int, id uuid.UUID) ([]model.TimetableEntry, error) {
	if _, err := s.repo.Get(ctx, id, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTimetableNotFound
		}
		return nil, err
	}

	cacheKey := config.CacheKey.TimetableEntriesKey(id.String())
	if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var entries []model.TimetableEntry
		if err := json.Unmarshal(cached, &entries); err == nil {
			return entries, nil
		}
	}

	entries, err := s.repo.Entries(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheEntries(ctx, id, entries)
	return entries, nil
}

// Filtered projects a timetable onto the selected courses/departments.
func (s *TimetableService) Filtered(ctx context.Context, userID int, id uuid.UUID, courses, departments []string) ([]model.TimetableEntry, error) {
	entries, err := s.Entries(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return timetable.Filter(entries, courses, departments), nil
}

// Conflicts runs conflict detection over the selected courses and attaches
// a recommendation to every conflict found, including negative findings.
func (s *TimetableService) Conflicts(ctx context.Context, userID int, id uuid.UUID, courses []string) (*ConflictReport, error) {
	entries, err := s.Entries(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	report := &ConflictReport{
		Conflicts:       timetable.FindConflicts(entries, courses),
		Recommendations: []timetable.Recommendation{},
	}
	for _, c := range report.Conflicts {
		report.Recommendations = append(report.Recommendations, timetable.Recommend(c, entries, courses))
	}
	return report, nil
}

// BuildSchedule searches section combinations for a minimal-conflict
// personal schedule.
func (s *TimetableService) BuildSchedule(ctx context.Context, userID int, id uuid.UUID, courses []string) (*timetable.BuiltSchedule, error) {
	entries, err := s.Entries(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	built := timetable.BuildSchedule(entries, courses)
	return &built, nil
}

// Stats summarizes one timetable.
func (s *TimetableService) Stats(ctx context.Context, userID int, id uuid.UUID) (*timetable.Stats, error) {
	entries, err := s.Entries(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	stats := timetable.Summarize(entries)
	return &stats, nil
}

// Courses lists the distinct course codes in one timetable.
func (s *TimetableService) Courses(ctx context.Context, userID int, id uuid.UUID) ([]string, error) {
	entries, err := s.Entries(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return timetable.Courses(entries), nil
}

// Delete removes a timetable and queues its source files for removal by
// the cleanup worker.
func (s *TimetableService) Delete(ctx context.Context, userID int, id uuid.UUID) error {
	t, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTimetableNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.rdb.Del(ctx, config.CacheKey.TimetableEntriesKey(id.String()))
	s.enqueueCleanup(ctx, t.SourceFiles, id.String())

	s.log.Info().Str("timetable_id", id.String()).Int("user_id", userID).Msg("Timetable deleted")
	return nil
}

func (s *TimetableService) saveFile(fh *multipart.FileHeader, ext string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.cfg.UploadDir, uuid.New().String()+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

func (s *TimetableService) readRows(path, originalName string) ([]timetable.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ingest.Read(f, originalName)
}

func (s *TimetableService) cacheEntries(ctx context.Context, id uuid.UUID, entries []model.TimetableEntry) {
	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}
	key := config.CacheKey.TimetableEntriesKey(id.String())
	if err := s.rdb.Set(ctx, key, payload, s.cfg.EntryCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("timetable_id", id.String()).Msg("Entry cache write failed")
	}
}

func (s *TimetableService) enqueueCleanup(ctx context.Context, paths []string, timetableID string) {
	for _, p := range paths {
		payload, err := json.Marshal(cleanupJob{Path: p, TimetableID: timetableID})
		if err != nil {
			continue
		}
		if err := s.rdb.RPush(ctx, config.WorkerKey.FileCleanupQueue, payload).Err(); err != nil {
			s.log.Warn().Err(err).Str("path", p).Msg("Cleanup enqueue failed")
		}
	}
}
