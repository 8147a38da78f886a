package models

import "time"

// User is a registered account. Password holds the bcrypt hash and is
// serialized on purpose: the register endpoint echoes the stored record,
// which is the API's observed contract.
type User struct {
	Username     string    `json:"username"`
	Password     string    `json:"password"`
	Email        string    `json:"email,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}
