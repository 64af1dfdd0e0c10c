package db

import (
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/dasdy/foamslides/model"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
create table if not exists visits(slide int not null, name text not null, ts integer not null);
create index if not exists visits_tsix on visits (ts ASC);
create table if not exists render_cache(key text primary key, svg blob not null, created integer not null);`

type SQLiteStorage struct {
	db *sql.DB
}

func NewStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db}
}

func InitDbStorage(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}

	return nil
}

// ConnectDB opens the sqlite database at path and creates the schema.
// ":memory:" keeps a single connection so every query sees the same data.
func ConnectDB(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database %s: %w", path, err)
	}

	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := InitDbStorage(db); err != nil {
		db.Close()

		return nil, err
	}

	slog.Debug("Connected to database", "path", path)

	return &SQLiteStorage{db}, nil
}

func (s *SQLiteStorage) StoreVisit(visit model.SlideVisit) error {
	ts := visit.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := s.db.Exec(`insert into visits(slide, name, ts) values(?, ?, ?)`,
		visit.Slide, visit.Name, ts.UnixMilli())
	if err != nil {
		return fmt.Errorf("could not store visit: %w", err)
	}

	return nil
}

// GatherAll returns visit counts per slide, ordered by slide. The name is
// the one recorded with the latest visit.
func (s *SQLiteStorage) GatherAll() ([]model.SlideStat, error) {
	rows, err := s.db.Query(
		`select slide, name, count(*) as cnt, max(ts)
        from visits
        group by slide
        order by slide`)
	if err != nil {
		return nil, fmt.Errorf("could not gather visits: %w", err)
	}

	defer rows.Close()

	result := make([]model.SlideStat, 0)

	for rows.Next() {
		var (
			stat model.SlideStat
			last int64
		)

		if err := rows.Scan(&stat.Slide, &stat.Name, &stat.Count, &last); err != nil {
			return nil, fmt.Errorf("could not scan visit stats: %w", err)
		}

		stat.Last = time.UnixMilli(last)
		result = append(result, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not gather visits: %w", err)
	}

	return result, nil
}

// AllIterator yields every visit in time order.
func (s *SQLiteStorage) AllIterator() (iter.Seq[model.SlideVisit], error) {
	rows, err := s.db.Query(`select slide, name, ts from visits order by ts, rowid`)
	if err != nil {
		return nil, fmt.Errorf("could not read visits: %w", err)
	}

	return func(yield func(model.SlideVisit) bool) {
		defer rows.Close()

		for rows.Next() {
			var (
				v  model.SlideVisit
				ts int64
			)

			if err := rows.Scan(&v.Slide, &v.Name, &ts); err != nil {
				slog.Error("Could not scan visit", "error", err)

				return
			}

			v.Timestamp = time.UnixMilli(ts)
			if !yield(v) {
				return
			}
		}
	}, nil
}

func (s *SQLiteStorage) Get(key string) ([]byte, bool, error) {
	var svg []byte

	err := s.db.QueryRow(`select svg from render_cache where key = ?`, key).Scan(&svg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("could not read cache entry %s: %w", key, err)
	}

	return svg, true, nil
}

func (s *SQLiteStorage) Put(key string, svg []byte) error {
	_, err := s.db.Exec(`insert into render_cache(key, svg, created) values(?, ?, ?)
        on conflict(key) do update set svg = excluded.svg, created = excluded.created`,
		key, svg, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("could not write cache entry %s: %w", key, err)
	}

	return nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.Error("Could not close database", "error", err)
	}
}
