package repository

import (
	"context"
	"fmt"

	"github.com/edfast/edfast-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TimetableRepository persists uploaded timetables and their entries.
type TimetableRepository struct {
	pool *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(pool *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{pool: pool}
}

// Create inserts a timetable and its entries in one transaction. A
// timetable becomes visible only once all of its entries are committed, so
// readers never observe a half-loaded set.
func (r *TimetableRepository) Create(ctx context.Context, t *model.Timetable, entries []model.TimetableEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO timetables (id, user_id, source_files)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		t.ID, t.UserID, t.SourceFiles,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert timetable: %w", err)
	}

	rows := make([][]interface{}, len(entries))
	for i, e := range entries {
		rows[i] = []interface{}{
			t.ID, i, e.CourseCode, e.Section, string(e.Day),
			e.StartMin, e.EndMin, e.Room, string(e.Type), e.Instructor, e.Department,
		}
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"timetable_entries"},
		[]string{"timetable_id", "position", "course_code", "section", "day",
			"start_min", "end_min", "room", "type", "instructor", "department"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy entries: %w", err)
	}

	t.EntryCount = len(entries)
	return tx.Commit(ctx)
}

// Get retrieves a timetable by ID, scoped to its owner.
func (r *TimetableRepository) Get(ctx context.Context, id uuid.UUID, userID int) (*model.Timetable, error) {
	t := &model.Timetable{}
	err := r.pool.QueryRow(ctx,
		`SELECT t.id, t.user_id, t.source_files, t.created_at,
		        (SELECT COUNT(*) FROM timetable_entries e WHERE e.timetable_id = t.id)
		 FROM timetables t WHERE t.id = $1 AND t.user_id = $2`, id, userID,
	).Scan(&t.ID, &t.UserID, &t.SourceFiles, &t.CreatedAt, &t.EntryCount)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListByUser retrieves a user's timetables, newest first.
func (r *TimetableRepository) ListByUser(ctx context.Context, userID int) ([]model.Timetable, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.user_id, t.source_files, t.created_at,
		        (SELECT COUNT(*) FROM timetable_entries e WHERE e.timetable_id = t.id)
		 FROM timetables t WHERE t.user_id = $1 ORDER BY t.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timetables []model.Timetable
	for rows.Next() {
		var t model.Timetable
		if err := rows.Scan(&t.ID, &t.UserID, &t.SourceFiles, &t.CreatedAt, &t.EntryCount); err != nil {
			return nil, err
		}
		timetables = append(timetables, t)
	}
	return timetables, rows.Err()
}

// Entries retrieves a timetable's entries in original upload order.
func (r *TimetableRepository) Entries(ctx context.Context, id uuid.UUID) ([]model.TimetableEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT course_code, section, day, start_min, end_min, room, type, instructor, department
		 FROM timetable_entries WHERE timetable_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.TimetableEntry
	for rows.Next() {
		var e model.TimetableEntry
		var day, classType string
		if err := rows.Scan(&e.CourseCode, &e.Section, &day, &e.StartMin, &e.EndMin,
			&e.Room, &classType, &e.Instructor, &e.Department); err != nil {
			return nil, err
		}
		e.Day = model.Day(day)
		e.Type = model.ClassType(classType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes a timetable (entries cascade). Returns pgx.ErrNoRows if
// the timetable does not exist or belongs to another user.
func (r *TimetableRepository) Delete(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM timetables WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
