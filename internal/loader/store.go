package loader

import (
	"database/sql"
	"fmt"

	"wordbot/internal/domain"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// BatchSize is the number of pairs sent in one INSERT
const BatchSize = 500

const insertWordsQuery = `
	INSERT INTO words (english, russian)
	VALUES (:english, :russian)
	ON CONFLICT (english) DO NOTHING`

// Store writes dictionary pairs into the shared words table
type Store struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewStore wraps an open postgres connection
func NewStore(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{
		db:     sqlx.NewDb(db, "postgres"),
		logger: logger,
	}
}

// Insert stores pairs in batches inside one transaction and returns the
// number of new words. Words already in the dictionary are left unchanged.
func (s *Store) Insert(pairs []domain.WordPair) (int64, error) {
	if len(pairs) == 0 {
		return 0, nil
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var inserted int64
	for start := 0; start < len(pairs); start += BatchSize {
		end := start + BatchSize
		if end > len(pairs) {
			end = len(pairs)
		}

		res, err := tx.NamedExec(insertWordsQuery, pairs[start:end])
		if err != nil {
			return 0, fmt.Errorf("failed to insert batch %d-%d: %w", start, end, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected: %w", err)
		}
		inserted += n

		s.logger.Debug("Batch inserted",
			zap.Int("from", start),
			zap.Int("to", end),
			zap.Int64("inserted", n),
		)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return inserted, nil
}
