package requests

// EmailPayload is the message published to the mailer queue; an external
// consumer renders and delivers it.
type EmailPayload struct {
	Type      string            `json:"type"`
	Recipient string            `json:"recipient"`
	Subject   string            `json:"subject"`
	Variables map[string]string `json:"variables,omitempty"`
}
