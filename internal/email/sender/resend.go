// internal/email/sender/resend.go
package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"salt-notifier/internal/common/httpclient"
	"salt-notifier/internal/common/logger"
)

// ResendSender delivers mail through the Resend HTTP API.
type ResendSender struct {
	client   *httpclient.Client
	apiKey   string
	endpoint string
	logger   logger.Logger
}

func NewResendSender(client *httpclient.Client, apiKey, endpoint string, log logger.Logger) *ResendSender {
	return &ResendSender{
		client:   client,
		apiKey:   apiKey,
		endpoint: endpoint,
		logger:   log.WithFields(map[string]interface{}{"component": "resend"}),
	}
}

type resendResponse struct {
	ID string `json:"id"`
}

// Send posts the message to the Resend API. A non-2xx response is not an
// error here: it yields OK=false with the provider body in Raw, so the
// caller can mark the notification failed with the provider's reason.
func (s *ResendSender) Send(ctx context.Context, msg Message) (*Result, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.DoWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("post to email provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("provider rejected email", map[string]interface{}{
			"status":    resp.StatusCode,
			"recipient": msg.To,
		})
		return &Result{OK: false, Raw: body}, nil
	}

	var parsed resendResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		// Accepted but unparseable; treat as sent without a provider ID.
		s.logger.Warn("unparseable provider response", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &Result{OK: true, ID: parsed.ID, Raw: body}, nil
}
