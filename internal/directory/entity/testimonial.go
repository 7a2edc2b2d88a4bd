package entity

import "time"

// Testimonial is a public review. New entries start unapproved and only show
// up on the site after admin approval.
type Testimonial struct {
	ID         string
	Name       string
	Profession string
	Testimony  string
	Rating     int
	IsApproved bool
	CreatedAt  time.Time
}
