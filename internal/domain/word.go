package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// MaxWordBytes bounds a single english or russian word so that any answer
// token for it still fits into Telegram callback data
const MaxWordBytes = 40

// Word represents a shared english-russian pair
type Word struct {
	ID        int64
	English   string
	Russian   string
	CreatedAt time.Time
}

// WordPair is a pair that has not been stored yet
type WordPair struct {
	English string `db:"english"`
	Russian string `db:"russian"`
}

// NormalizeWord lowercases and trims a word
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateWord checks that a word can be stored and carried in an answer token
func ValidateWord(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	if len(s) > MaxWordBytes {
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidWord, s, MaxWordBytes)
	}
	if strings.ContainsAny(s, tokenReserved) {
		return fmt.Errorf("%w: %q contains one of %q", ErrInvalidWord, s, tokenReserved)
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidWord, s)
	}
	return nil
}

// NewWordPair normalizes and validates both sides of a pair
func NewWordPair(english, russian string) (WordPair, error) {
	pair := WordPair{
		English: NormalizeWord(english),
		Russian: NormalizeWord(russian),
	}
	if err := ValidateWord(pair.English); err != nil {
		return WordPair{}, err
	}
	if err := ValidateWord(pair.Russian); err != nil {
		return WordPair{}, err
	}
	return pair, nil
}
