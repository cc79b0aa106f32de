package domain

import "time"

// User represents a bot user
type User struct {
	UserID    int64
	Username  string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

// DisplayName returns the name used in greetings
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	default:
		return "друг"
	}
}

// Stats holds answer totals of a user
type Stats struct {
	Correct   int
	Incorrect int
}

// Empty reports whether the user has not answered anything yet
func (s Stats) Empty() bool {
	return s.Correct == 0 && s.Incorrect == 0
}
