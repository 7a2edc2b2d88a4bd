package entity

import "time"

// User is an admin panel account.
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
}
