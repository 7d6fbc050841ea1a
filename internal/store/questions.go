package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
)

const (
	questionsTable = "questions"
	importsTable   = "imports"
)

// Import is one row of the import log.
type Import struct {
	ID         int
	Source     string
	Count      int
	ImportedAt time.Time
}

// ReplaceQuestions swaps the stored bank for records inside one
// transaction. Insertion order is kept in the position column.
func (s *Store) ReplaceQuestions(ctx context.Context, source string, records []question.Record) error {
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Delete(questionsTable).Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear questions: %w", err)
	}

	for i, r := range records {
		query, args := b.Insert(questionsTable).
			Columns("id", "position", "question", "answer", "category").
			Values(r.ID, i, r.Question, r.Answer, r.Category).
			Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert question %d: %w", r.ID, err)
		}
	}

	query, args = b.Insert(importsTable).
		Columns("source", "count", "imported_at").
		Values(source, len(records), time.Now().UTC()).
		Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		tx.Rollback()
		return fmt.Errorf("log import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// Questions returns the stored bank in insertion order.
func (s *Store) Questions(ctx context.Context) ([]question.Record, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id", "question", "answer", "category").
		From(entsql.Table(questionsTable)).
		OrderBy("position").
		Query()

	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	records := []question.Record{}
	for rows.Next() {
		var r question.Record
		if err := rows.Scan(&r.ID, &r.Question, &r.Answer, &r.Category); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return records, nil
}

// CountQuestions returns the number of stored questions.
func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*")).
		From(entsql.Table(questionsTable)).
		Query()

	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	defer rows.Close()

	n, err := entsql.ScanInt(rows)
	if err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return n, nil
}

// LastImport returns the most recent import, or nil if none exist.
func (s *Store) LastImport(ctx context.Context) (*Import, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id", "source", "count", "imported_at").
		From(entsql.Table(importsTable)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query last import: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var imp Import
	if err := rows.Scan(&imp.ID, &imp.Source, &imp.Count, &imp.ImportedAt); err != nil {
		return nil, fmt.Errorf("scan import: %w", err)
	}
	return &imp, nil
}
