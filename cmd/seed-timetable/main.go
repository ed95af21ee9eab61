package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/edfast/edfast-backend/internal/config"
	"github.com/edfast/edfast-backend/internal/database"
	"github.com/edfast/edfast-backend/internal/logger"
	"github.com/edfast/edfast-backend/internal/model"
	"github.com/edfast/edfast-backend/internal/repository"
	"github.com/edfast/edfast-backend/internal/timetable"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// seedRow mirrors the canonical timetable CSV layout.
type seedRow struct {
	Course     string `csv:"Course"`
	Section    string `csv:"Section"`
	Day        string `csv:"Day"`
	Time       string `csv:"Time"`
	Room       string `csv:"Class"`
	Type       string `csv:"Type"`
	Instructor string `csv:"Instructor"`
}

func main() {
	var csvPath string
	var userID int
	flag.StringVar(&csvPath, "file", "testdata/timetable.csv", "Path to canonical timetable CSV")
	flag.IntVar(&userID, "user", 1, "Owner user ID")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", csvPath).Msg("Failed to open CSV")
	}
	defer f.Close()

	var rows []*seedRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		log.Fatal().Err(err).Str("file", csvPath).Msg("Failed to parse CSV")
	}

	fmt.Printf("=== Seeding timetable from %s (%d rows) ===\n", csvPath, len(rows))

	entries := make([]model.TimetableEntry, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		entry, err := toEntry(row)
		if err != nil {
			fmt.Printf("row %d skipped: %v\n", i+1, err)
			skipped++
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		log.Fatal().Msg("No usable rows in CSV")
	}

	timetableRepo := repository.NewTimetableRepository(pool)
	t := model.Timetable{
		ID:          uuid.New(),
		UserID:      userID,
		SourceFiles: []string{csvPath},
	}
	if err := timetableRepo.Create(ctx, &t, entries); err != nil {
		log.Fatal().Err(err).Msg("Failed to persist timetable")
	}

	fmt.Printf("Seeded timetable %s: %d entries, %d rows skipped\n", t.ID, len(entries), skipped)
}

func toEntry(row *seedRow) (model.TimetableEntry, error) {
	day, ok := model.ParseDay(row.Day)
	if !ok {
		return model.TimetableEntry{}, fmt.Errorf("unrecognized day %q", row.Day)
	}

	start, end, err := timetable.ParseTimeRange(row.Time)
	if err != nil {
		return model.TimetableEntry{}, err
	}

	classType := model.Theory
	if row.Type == "Lab" {
		classType = model.Lab
	}

	dept := ""
	if len(row.Section) >= 2 {
		dept = row.Section[:2]
	}

	return model.TimetableEntry{
		CourseCode: row.Course,
		Section:    row.Section,
		Day:        day,
		StartMin:   start,
		EndMin:     end,
		Room:       row.Room,
		Type:       classType,
		Instructor: row.Instructor,
		Department: dept,
	}, nil
}
