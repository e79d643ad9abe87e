package sms

import "strings"

// SuccessClassifier decides whether a provider response body means the message
// was accepted. Providers answer 200 for almost everything and encode the real
// outcome in free text, so each provider variant carries its own exact token
// set. Swapping providers means picking another classifier, not touching the
// gateway.
type SuccessClassifier interface {
	Name() string
	Successful(body string) bool
}

// SMSLoginClassifier matches the smslogin.co response dialect: a successful
// send echoes a MessageID, some deployments answer a plain "success" line.
type SMSLoginClassifier struct{}

func (SMSLoginClassifier) Name() string { return "smslogin" }

func (SMSLoginClassifier) Successful(body string) bool {
	return strings.Contains(body, "MessageID") || strings.Contains(body, "success")
}

// DLTClassifier matches the DLT bulk-gateway dialect: accepted messages answer
// with a "1701|<jobid>" status prefix or a body containing "submitted".
type DLTClassifier struct{}

func (DLTClassifier) Name() string { return "dlt" }

func (DLTClassifier) Successful(body string) bool {
	return strings.HasPrefix(body, "1701|") || strings.Contains(body, "submitted")
}

// ClassifierFor resolves a provider name from configuration. Unknown names
// fall back to the smslogin variant.
func ClassifierFor(provider string) SuccessClassifier {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "dlt":
		return DLTClassifier{}
	default:
		return SMSLoginClassifier{}
	}
}
