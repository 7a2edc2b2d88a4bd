package inbound

import (
	"time"

	"github.com/ManecoGomes/busca-social/internal/registration/entity"
)

// SubmitRequest mirrors the public form payload, honeypot field included.
type SubmitRequest struct {
	Website          string `json:"website"`
	FullName         string `json:"names"`
	Email            string `json:"email"`
	Phone            string `json:"input_mask_3"`
	RegistrationType string `json:"input_radio_1"`
	Gender           string `json:"checkbox"`
	CPF              string `json:"numeric_field"`
	DisplayName      string `json:"input_text"`
	ProfessionCount  string `json:"input_radio"`
	Service1         string `json:"multi_select"`
	Service2         string `json:"multi_select_2"`
	Service3         string `json:"multi_select_1"`
	State            string `json:"dropdown_2"`
	CityRJ           string `json:"dropdown_1"`
	CityMG           string `json:"dropdown_3"`
	Street           string `json:"input_text_1"`
	Description      string `json:"description"`
	AcceptedTerms    bool   `json:"accepted_terms"`
}

// SubmissionResponse mirrors the stored record with its legacy column names.
type SubmissionResponse struct {
	ID                string    `json:"id"`
	FullName          string    `json:"names"`
	Email             string    `json:"email"`
	Phone             string    `json:"input_mask_3"`
	RegistrationType  string    `json:"input_radio_1"`
	Gender            string    `json:"checkbox"`
	CPF               string    `json:"numeric_field"`
	DisplayName       string    `json:"input_text"`
	ProfessionCount   string    `json:"input_radio"`
	Service1          string    `json:"multi_select"`
	Service2          string    `json:"multi_select_2"`
	Service3          string    `json:"multi_select_1"`
	State             string    `json:"dropdown_2"`
	CityRJ            string    `json:"dropdown_1"`
	CityMG            string    `json:"dropdown_3"`
	Street            string    `json:"input_text_1"`
	Description       string    `json:"description"`
	SerialNumber      int64     `json:"serial_number"`
	IP                string    `json:"ip"`
	AcceptedTerms     int       `json:"accepted_terms"`
	WebhookStatus     string    `json:"webhook_status"`
	WebhookTestStatus string    `json:"webhook_test_status"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toSubmissionResponse(sub entity.Submission) SubmissionResponse {
	accepted := 0
	if sub.AcceptedTerms {
		accepted = 1
	}

	return SubmissionResponse{
		ID:                sub.ID,
		FullName:          sub.FullName,
		Email:             sub.Email,
		Phone:             sub.Phone,
		RegistrationType:  sub.RegistrationType,
		Gender:            sub.Gender,
		CPF:               sub.CPF,
		DisplayName:       sub.DisplayName,
		ProfessionCount:   sub.ProfessionCount,
		Service1:          sub.Service1,
		Service2:          sub.Service2,
		Service3:          sub.Service3,
		State:             sub.State,
		CityRJ:            sub.CityRJ,
		CityMG:            sub.CityMG,
		Street:            sub.Street,
		Description:       sub.Description,
		SerialNumber:      sub.SerialNumber,
		IP:                sub.IP,
		AcceptedTerms:     accepted,
		WebhookStatus:     sub.WebhookStatus.String(),
		WebhookTestStatus: sub.WebhookTestStatus.String(),
		CreatedAt:         sub.CreatedAt,
	}
}

func toSubmissionResponses(items []entity.Submission) []SubmissionResponse {
	resp := make([]SubmissionResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toSubmissionResponse(item))
	}
	return resp
}

type CountByProfessionResponse struct {
	Profession string `json:"profession"`
	Count      int64  `json:"count"`
}

type CountByStateResponse struct {
	State string `json:"state"`
	Count int64  `json:"count"`
}

type StatsResponse struct {
	TotalPrestadores          int64                       `json:"totalPrestadores"`
	TotalContacts             int64                       `json:"totalContacts"`
	TotalTestimonials         int64                       `json:"totalTestimonials"`
	TotalTestimonialsApproved int64                       `json:"totalTestimonialsApproved"`
	ProfessionStats           []CountByProfessionResponse `json:"professionStats"`
	StateStats                []CountByStateResponse      `json:"stateStats"`
}

type TestEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
