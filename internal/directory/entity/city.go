package entity

import "time"

// City is a selectable service area managed by the admin panel.
type City struct {
	ID        int64
	Name      string
	State     string
	IsActive  bool
	CreatedAt time.Time
}

// CityPatch carries optional field updates. Nil means "leave unchanged".
type CityPatch struct {
	Name     *string
	State    *string
	IsActive *bool
}
