package entity

import "time"

// Contact is a lead captured by the public contact form.
type Contact struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Category  string
	Message   string
	CreatedAt time.Time
}
