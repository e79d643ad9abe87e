package sms

import (
	"log"
	"os"
)

const defaultAPIURL = "https://smslogin.co/v3/api.php"

// Config carries everything the gateway needs to talk to the provider. It is
// built once at process start and injected, instead of each component reading
// the environment ad hoc.
type Config struct {
	APIURL   string
	Username string
	APIKey   string
	SenderID string

	// DLT registration identifiers, required by Indian providers for
	// transactional routes. TemplateID must match the registered template of
	// the message being sent.
	TemplateID string
	EntityID   string

	// Provider selects the success-classification variant. Empty selects the
	// smslogin variant.
	Provider string

	// MessageTemplate overrides the default notification text. It must stay
	// aligned with the provider-registered template.
	MessageTemplate string
}

// ConfigFromEnv reads the provider settings from the environment.
//
// Missing credentials are tolerated at startup (logged, not fatal): the
// service still accepts submissions, the provider will just reject the
// malformed notification calls.
func ConfigFromEnv() Config {
	cfg := Config{
		APIURL:          getenvDefault("SMS_API_URL", defaultAPIURL),
		Username:        os.Getenv("SMS_USERNAME"),
		APIKey:          os.Getenv("SMS_API_KEY"),
		SenderID:        os.Getenv("SMS_SENDER"),
		TemplateID:      os.Getenv("SMS_TEMPLATE_ID"),
		EntityID:        os.Getenv("SMS_ENTITY_ID"),
		Provider:        os.Getenv("SMS_PROVIDER"),
		MessageTemplate: os.Getenv("SMS_MESSAGE_TEMPLATE"),
	}

	for _, v := range []struct{ key, val string }{
		{"SMS_USERNAME", cfg.Username},
		{"SMS_API_KEY", cfg.APIKey},
		{"SMS_SENDER", cfg.SenderID},
		{"SMS_TEMPLATE_ID", cfg.TemplateID},
	} {
		if v.val == "" {
			log.Printf("[sms][config] %s not set, provider calls will be rejected", v.key)
		}
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
