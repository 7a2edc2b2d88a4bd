package entity

import "time"

// TermsOfUse is the single editable terms-of-use document.
type TermsOfUse struct {
	ID        int64
	Content   string
	UpdatedAt time.Time
	UpdatedBy *int64
}
