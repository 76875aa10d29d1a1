package models

// Caretaker is a person allowed to record readings and care events.
type Caretaker struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
