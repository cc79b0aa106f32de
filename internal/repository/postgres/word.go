package postgres

import (
	"database/sql"
	"fmt"

	"wordbot/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// FindWordByEnglish returns the shared word or nil if it does not exist
func (r *WordRepo) FindWordByEnglish(english string) (*domain.Word, error) {
	query := `SELECT word_id, english, russian, created_at FROM words WHERE english = $1`
	return r.scanWord(r.db.QueryRow(query, english))
}

// GetWordByID returns the shared word or nil if it does not exist
func (r *WordRepo) GetWordByID(wordID int64) (*domain.Word, error) {
	query := `SELECT word_id, english, russian, created_at FROM words WHERE word_id = $1`
	return r.scanWord(r.db.QueryRow(query, wordID))
}

func (r *WordRepo) scanWord(row *sql.Row) (*domain.Word, error) {
	var w domain.Word
	err := row.Scan(&w.ID, &w.English, &w.Russian, &w.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// CreateWord inserts a shared word and returns its id.
// When the english word already exists the existing id is returned and the
// stored translation is left untouched.
func (r *WordRepo) CreateWord(english, russian string) (int64, error) {
	query := `
		INSERT INTO words (english, russian)
		VALUES ($1, $2)
		ON CONFLICT (english)
		DO UPDATE SET english = EXCLUDED.english
		RETURNING word_id
	`
	var wordID int64
	if err := r.db.QueryRow(query, english, russian).Scan(&wordID); err != nil {
		return 0, fmt.Errorf("create word %q: %w", english, err)
	}
	return wordID, nil
}

// LinkUserWord adds a word to the user's study list
func (r *WordRepo) LinkUserWord(userID, wordID int64) error {
	query := `
		INSERT INTO user_words (user_id, word_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, word_id) DO NOTHING
	`
	res, err := r.db.Exec(query, userID, wordID)
	if err != nil {
		return fmt.Errorf("link word %d: %w", wordID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyLinked
	}
	return nil
}

// UnlinkUserWord removes a word from the user's study list
func (r *WordRepo) UnlinkUserWord(userID, wordID int64) error {
	query := `DELETE FROM user_words WHERE user_id = $1 AND word_id = $2`
	res, err := r.db.Exec(query, userID, wordID)
	if err != nil {
		return fmt.Errorf("unlink word %d: %w", wordID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotInList
	}
	return nil
}

// ListUserWordIDs returns ids of all words in the user's study list
func (r *WordRepo) ListUserWordIDs(userID int64) ([]int64, error) {
	query := `SELECT word_id FROM user_words WHERE user_id = $1 ORDER BY word_id`

	rows, err := r.db.Query(query, userID)
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

// CountUserWords returns the size of the user's study list
func (r *WordRepo) CountUserWords(userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM user_words WHERE user_id = $1`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// ListDistractors returns up to limit random words from the shared dictionary
// whose translation differs from the given one, one word per translation
func (r *WordRepo) ListDistractors(translation string, limit int) ([]domain.Word, error) {
	query := `
		SELECT word_id, english, russian, created_at
		FROM (
			SELECT DISTINCT ON (russian) word_id, english, russian, created_at
			FROM words
			WHERE russian <> $1
			ORDER BY russian, word_id
		) AS pool
		ORDER BY RANDOM()
		LIMIT $2
	`

	rows, err := r.db.Query(query, translation, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.English, &w.Russian, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}
