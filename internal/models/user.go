package models

// User is a registered account that exercises are logged against.
type User struct {
	ID       string `json:"_id"` // uuid, assigned by the store
	Username string `json:"username"`
}
