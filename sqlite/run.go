package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/serpclean"
)

// Compile-time interface verification.
var _ serpclean.RunArchive = (*RunService)(nil)

// RunService implements serpclean.RunArchive using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// SaveRun stores a cleaned result set and all of its results in a
// single transaction.
func (s *RunService) SaveRun(ctx context.Context, set *serpclean.CleanedResultSet) error {
	if set.ProcessingMetadata.RunID == "" {
		return serpclean.Errorf(serpclean.EINVALID, "run ID required")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, query, answer, response_time, processed_at, version)
		VALUES (?, ?, ?, ?, ?, ?)
	`, set.ProcessingMetadata.RunID, set.Query, set.Answer, set.ResponseTime,
		set.ProcessingMetadata.ProcessedAt.Format(time.RFC3339), set.ProcessingMetadata.Version)
	if err != nil {
		return err
	}

	for i := range set.Results {
		r := &set.Results[i]
		m := &r.ExtractionMetadata
		_, err = tx.ExecContext(ctx, `
			INSERT INTO results (
				run_id, position, title, url, content, score, cleaned_content,
				strategy, truncated, original_length, cleaned_length,
				processing_time_ms, publication_date, author, content_type
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, set.ProcessingMetadata.RunID, i, r.Title, r.URL, r.Content, r.Score, r.CleanedContent,
			m.Strategy, m.Truncated, m.OriginalLength, m.CleanedLength,
			m.ProcessingTimeMS, nullable(m.PublicationDate), nullable(m.Author), m.ContentType)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a previously saved run with its results in
// original order.
func (s *RunService) FindRunByID(ctx context.Context, runID string) (*serpclean.CleanedResultSet, error) {
	var set serpclean.CleanedResultSet
	var processedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, query, answer, response_time, processed_at, version
		FROM runs
		WHERE id = ?
	`, runID).Scan(&set.ProcessingMetadata.RunID, &set.Query, &set.Answer,
		&set.ResponseTime, &processedAt, &set.ProcessingMetadata.Version)

	if err == sql.ErrNoRows {
		return nil, serpclean.Errorf(serpclean.ENOTFOUND, "run %q not found", runID)
	}
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse(time.RFC3339, processedAt); err == nil {
		set.ProcessingMetadata.ProcessedAt = t
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT title, url, content, score, cleaned_content,
			strategy, truncated, original_length, cleaned_length,
			processing_time_ms, publication_date, author, content_type
		FROM results
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set.Results = []serpclean.CleanedResult{}
	for rows.Next() {
		var r serpclean.CleanedResult
		var pubDate, author sql.NullString

		err := rows.Scan(&r.Title, &r.URL, &r.Content, &r.Score, &r.CleanedContent,
			&r.ExtractionMetadata.Strategy, &r.ExtractionMetadata.Truncated,
			&r.ExtractionMetadata.OriginalLength, &r.ExtractionMetadata.CleanedLength,
			&r.ExtractionMetadata.ProcessingTimeMS, &pubDate, &author,
			&r.ExtractionMetadata.ContentType)
		if err != nil {
			return nil, err
		}

		if pubDate.Valid {
			r.ExtractionMetadata.PublicationDate = &pubDate.String
		}
		if author.Valid {
			r.ExtractionMetadata.Author = &author.String
		}
		set.Results = append(set.Results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &set, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
