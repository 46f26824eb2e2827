package models

import "time"

// Exercise is a single logged activity owned by a user.
type Exercise struct {
	ID          string    `json:"-"`
	UserID      string    `json:"-"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes
	Date        time.Time `json:"-"`        // calendar date, midnight UTC
}

// LogFilter narrows an exercise log. Zero values mean "unbounded".
type LogFilter struct {
	From  time.Time // inclusive
	To    time.Time // inclusive
	Limit int       // <= 0 means no cap
}
