package entity

import (
	"time"
)

// User is the aggregate root for the user domain. ID is the ObjectId hex
// string assigned by storage on insert and never accepted from client input;
// the document shape itself lives in the storage layer.
//
// Status is free-form text (ACTIVE, INACTIVE, SUSPENDED, ...); creation
// defaults it to DefaultStatus when blank.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultStatus is applied when a user is created without an explicit status.
const DefaultStatus = "ACTIVE"
