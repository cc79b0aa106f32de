package domain

import "errors"

var (
	// ErrNoWords is returned when the user's study list is empty
	ErrNoWords = errors.New("no words in study list")
	// ErrAlreadyLinked is returned when the word is already in the study list
	ErrAlreadyLinked = errors.New("word already in study list")
	// ErrWordNotFound is returned when the word is not in the shared dictionary
	ErrWordNotFound = errors.New("word not found")
	// ErrNotInList is returned when the word exists but is not in the study list
	ErrNotInList = errors.New("word not in study list")
	ErrInvalidWord  = errors.New("invalid word")
	ErrInvalidToken = errors.New("invalid answer token")
)
