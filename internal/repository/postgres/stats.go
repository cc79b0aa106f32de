package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"wordbot/internal/domain"
)

// StatsRepo implements repository.StatsRepository
type StatsRepo struct {
	db *sql.DB
}

// NewStatsRepo creates a new statistics repository
func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// RecordOutcome increments the matching answer counter, creating the record
// on the first answer for the pair
func (r *StatsRepo) RecordOutcome(userID, wordID int64, outcome domain.Outcome) error {
	var query string
	switch outcome {
	case domain.OutcomeCorrect:
		query = `
			INSERT INTO learning_statistics (user_id, word_id, correct_answers, updated_at)
			VALUES ($1, $2, 1, NOW())
			ON CONFLICT (user_id, word_id)
			DO UPDATE SET correct_answers = learning_statistics.correct_answers + 1, updated_at = NOW()
		`
	case domain.OutcomeIncorrect:
		query = `
			INSERT INTO learning_statistics (user_id, word_id, incorrect_answers, updated_at)
			VALUES ($1, $2, 1, NOW())
			ON CONFLICT (user_id, word_id)
			DO UPDATE SET incorrect_answers = learning_statistics.incorrect_answers + 1, updated_at = NOW()
		`
	default:
		return fmt.Errorf("unknown outcome %q", outcome)
	}

	if _, err := r.db.Exec(query, userID, wordID); err != nil {
		return fmt.Errorf("record %s answer for word %d: %w", outcome, wordID, err)
	}
	return nil
}

// GetTotals returns summed counters of the user, zeros when nothing recorded
func (r *StatsRepo) GetTotals(userID int64) (domain.Stats, error) {
	query := `
		SELECT
			COALESCE(SUM(correct_answers), 0),
			COALESCE(SUM(incorrect_answers), 0)
		FROM learning_statistics
		WHERE user_id = $1
	`

	var stats domain.Stats
	err := r.db.QueryRow(query, userID).Scan(&stats.Correct, &stats.Incorrect)
	if err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}

// ListIdleLearners returns users that have words to practise but have not
// answered anything since idleSince
func (r *StatsRepo) ListIdleLearners(idleSince time.Time) ([]int64, error) {
	query := `
		SELECT u.user_id
		FROM users u
		WHERE EXISTS (SELECT 1 FROM user_words uw WHERE uw.user_id = u.user_id)
			AND u.created_at < $1
			AND NOT EXISTS (
				SELECT 1 FROM learning_statistics ls
				WHERE ls.user_id = u.user_id AND ls.updated_at >= $1
			)
		ORDER BY u.user_id
	`

	rows, err := r.db.Query(query, idleSince)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
