package entity

import "time"

// Submission is a service-provider registration record.
//
// The JSON names mirror the public form's generated field names, which are
// also the webhook payload contract. They cannot be renamed without breaking
// the receiving automations.
type Submission struct {
	ID                string
	SerialNumber      int64
	FullName          string        // names
	Email             string
	Phone             string        // input_mask_3, canonical +55(AA)NNNNNNNNN
	RegistrationType  string        // input_radio_1
	Gender            string        // checkbox
	CPF               string        // numeric_field
	DisplayName       string        // input_text
	ProfessionCount   string        // input_radio
	Service1          string        // multi_select
	Service2          string        // multi_select_2
	Service3          string        // multi_select_1
	State             string        // dropdown_2
	CityRJ            string        // dropdown_1
	CityMG            string        // dropdown_3
	Street            string        // input_text_1
	Description       string
	IP                string
	AcceptedTerms     bool
	WebhookStatus     WebhookStatus
	WebhookTestStatus WebhookStatus
	CreatedAt         time.Time
}

// QueryFilter narrows admin submission listings.
type QueryFilter struct {
	Limit      int32
	Offset     int32
	State      string
	Profession string
}

// CountByKey is one row of a grouped count (per state, per profession).
type CountByKey struct {
	Key   string
	Count int64
}

// Stats aggregates submission and directory counters for the admin dashboard.
type Stats struct {
	TotalSubmissions          int64
	TotalContacts             int64
	TotalTestimonials         int64
	TotalTestimonialsApproved int64
	ProfessionStats           []CountByKey
	StateStats                []CountByKey
}
