package models

// User is a tracked person. Username is not unique.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
