package entity

// WebhookStatus tracks the delivery state of the registration webhook.
type WebhookStatus string

const (
	WebhookStatusPending WebhookStatus = "pending"
	WebhookStatusSent    WebhookStatus = "sent"
	WebhookStatusFailed  WebhookStatus = "failed"
)

func (w WebhookStatus) String() string {
	return string(w)
}
