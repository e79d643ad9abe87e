package sms

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"member_registry/internal/domain/entities"
	"member_registry/internal/usecase/interfaces"
	"member_registry/pkg/phone"
)

const requestTimeout = 10 * time.Second

// Gateway sends one SMS per call through a GET-style bulk provider API.
//
// The provider contract is loose: every outcome comes back as HTTP 200 with a
// free-text body, so the transport never treats a status code as an error and
// the body is handed to the configured SuccessClassifier. Transport failures
// are folded into the result rather than returned, per ISMSGateway.
type Gateway struct {
	cfg        Config
	classifier SuccessClassifier
	httpClient *http.Client
}

var _ interfaces.ISMSGateway = (*Gateway)(nil)

// NewGateway builds a gateway for the configured provider variant. httpClient
// may be nil, in which case a client with the fixed 10s timeout is used.
func NewGateway(cfg Config, httpClient *http.Client) *Gateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	g := &Gateway{
		cfg:        cfg,
		classifier: ClassifierFor(cfg.Provider),
		httpClient: httpClient,
	}
	log.Printf("[sms][gateway] initialized provider=%s url=%s", g.classifier.Name(), cfg.APIURL)
	return g
}

// Send issues the provider call and classifies the response body. The raw
// body is always retained in the result for audit, success or not.
func (g *Gateway) Send(ctx context.Context, to, message string) entities.SMSResult {
	params := url.Values{}
	params.Set("username", g.cfg.Username)
	params.Set("apikey", g.cfg.APIKey)
	params.Set("senderid", g.cfg.SenderID)
	params.Set("mobile", phone.Normalize(to))
	params.Set("message", message)
	params.Set("templateid", g.cfg.TemplateID)
	if g.cfg.EntityID != "" {
		params.Set("entityid", g.cfg.EntityID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.APIURL+"?"+params.Encode(), nil)
	if err != nil {
		log.Printf("[sms][gateway] failed building request err=%v", err)
		return entities.SMSResult{OK: false, Error: err.Error()}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[sms][gateway] transport failure err=%v", err)
		return entities.SMSResult{OK: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[sms][gateway] failed reading response status=%d err=%v", resp.StatusCode, err)
		return entities.SMSResult{OK: false, Error: err.Error()}
	}

	result := entities.SMSResult{
		OK:               g.classifier.Successful(string(body)),
		ProviderResponse: string(body),
	}
	if result.OK {
		log.Printf("[sms][gateway] send accepted status=%d", resp.StatusCode)
	} else {
		log.Printf("[sms][gateway] send rejected status=%d body=%q", resp.StatusCode, truncate(string(body), 200))
	}
	return result
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
