package entity

import "time"

// Profession is a selectable occupation managed by the admin panel.
type Profession struct {
	ID        int64
	Name      string
	Category  string
	IsActive  bool
	CreatedAt time.Time
}

// ProfessionPatch carries optional field updates. Nil means "leave unchanged".
type ProfessionPatch struct {
	Name     *string
	Category *string
	IsActive *bool
}

// ImportReport summarizes a bulk profession import.
type ImportReport struct {
	Added        int
	Skipped      int
	Errors       int
	Total        int
	ErrorDetails []string
}
