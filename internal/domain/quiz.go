package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxAnswerTokenLen is the room left in Telegram's 64-byte callback data
	// after the "\fans|" button prefix
	MaxAnswerTokenLen = 58

	tokenSeparator = "|"
	tokenSame      = "="
	tokenReserved  = tokenSeparator + tokenSame
)

// Outcome is the result of a submitted answer
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// AnswerToken is the answer state echoed back by an option button.
// It carries everything needed to score the answer without a session store.
// The chosen candidate is identified by its word id, so any two stored
// words fit into one token.
type AnswerToken struct {
	WordID   int64
	Correct  string
	ChosenID int64
}

// Encode returns the callback payload for the token
func (t AnswerToken) Encode() string {
	chosen := tokenSame
	if t.ChosenID != t.WordID {
		chosen = strconv.FormatInt(t.ChosenID, 36)
	}
	return strings.Join([]string{
		strconv.FormatInt(t.WordID, 36),
		t.Correct,
		chosen,
	}, tokenSeparator)
}

// Fits reports whether the encoded token fits into callback data.
// Ids below 36^8 always fit next to a MaxWordBytes translation.
func (t AnswerToken) Fits() bool {
	return len(t.Encode()) <= MaxAnswerTokenLen
}

// Outcome scores the chosen candidate against the target word.
// Distractors never share the correct translation, so the ids decide.
func (t AnswerToken) Outcome() Outcome {
	if t.ChosenID == t.WordID {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

// DecodeAnswerToken parses a callback payload produced by Encode
func DecodeAnswerToken(data string) (AnswerToken, error) {
	parts := strings.Split(data, tokenSeparator)
	if len(parts) != 3 {
		return AnswerToken{}, fmt.Errorf("%w: %q", ErrInvalidToken, data)
	}

	wordID, err := parseTokenID(parts[0])
	if err != nil {
		return AnswerToken{}, err
	}

	correct := parts[1]
	if correct == "" {
		return AnswerToken{}, fmt.Errorf("%w: empty answer in %q", ErrInvalidToken, data)
	}

	chosenID := wordID
	if parts[2] != tokenSame {
		if chosenID, err = parseTokenID(parts[2]); err != nil {
			return AnswerToken{}, err
		}
	}

	return AnswerToken{WordID: wordID, Correct: correct, ChosenID: chosenID}, nil
}

func parseTokenID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 36, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad word id %q", ErrInvalidToken, s)
	}
	return id, nil
}

// Option is one candidate translation of a question
type Option struct {
	Text  string
	Token AnswerToken
}

// Question is a single multiple-choice question
type Question struct {
	Word    Word
	Options []Option
}

// Correct returns the correct translation
func (q *Question) Correct() string {
	return q.Word.Russian
}

// AnswerResult is the outcome of an answer and the question that follows it.
// Next is nil when the study list became empty.
type AnswerResult struct {
	Outcome Outcome
	Correct string
	Next    *Question
}
