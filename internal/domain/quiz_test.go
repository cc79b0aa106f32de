package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerToken_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		token AnswerToken
	}{
		{
			name:  "correct choice",
			token: AnswerToken{WordID: 1, Correct: "кот", ChosenID: 1},
		},
		{
			name:  "wrong choice",
			token: AnswerToken{WordID: 42, Correct: "кот", ChosenID: 7},
		},
		{
			name:  "large id",
			token: AnswerToken{WordID: 9223372036854775807, Correct: "луна", ChosenID: 9223372036854775806},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeAnswerToken(tt.token.Encode())
			assert.NoError(t, err)
			assert.Equal(t, tt.token, decoded)
		})
	}
}

func TestAnswerToken_EncodeCompactsCorrectChoice(t *testing.T) {
	token := AnswerToken{WordID: 35, Correct: "кот", ChosenID: 35}
	assert.Equal(t, "z|кот|=", token.Encode())
}

func TestAnswerToken_EncodeWrongChoiceByID(t *testing.T) {
	token := AnswerToken{WordID: 35, Correct: "кот", ChosenID: 36}
	assert.Equal(t, "z|кот|10", token.Encode())
}

func TestAnswerToken_Outcome(t *testing.T) {
	correct := AnswerToken{WordID: 1, Correct: "кот", ChosenID: 1}
	wrong := AnswerToken{WordID: 1, Correct: "кот", ChosenID: 2}

	// same input, same outcome
	for i := 0; i < 3; i++ {
		assert.Equal(t, OutcomeCorrect, correct.Outcome())
		assert.Equal(t, OutcomeIncorrect, wrong.Outcome())
	}
}

func TestAnswerToken_Fits(t *testing.T) {
	longest := strings.Repeat("я", MaxWordBytes/2)
	maxID := int64(2821109907455) // 36^8 - 1, "zzzzzzzz"

	assert.True(t, AnswerToken{WordID: maxID, Correct: longest, ChosenID: maxID - 1}.Fits())
	assert.False(t, AnswerToken{WordID: maxID + 1, Correct: longest, ChosenID: maxID + 2}.Fits())
}

func TestDecodeAnswerToken_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "too few parts", data: "1|кот"},
		{name: "too many parts", data: "1|кот|=|x"},
		{name: "bad id", data: "!|кот|="},
		{name: "zero id", data: "0|кот|="},
		{name: "empty correct", data: "1||="},
		{name: "empty chosen", data: "1|кот|"},
		{name: "chosen is text", data: "1|кот|собака"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAnswerToken(tt.data)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}
