package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock

// Notifier is a fire-and-forget sink for human-readable summaries. Callers
// never treat a send failure as their own failure.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type webhookPayload struct {
	Content string `json:"content"`
}

type webhookNotifier struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

func NewWebhookNotifier(url string, logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notify.webhook")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.webhook")
	}
	return &webhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
		logger: l,
	}
}

func (n *webhookNotifier) Send(ctx context.Context, text string) error {
	if n.url == "" {
		n.logger.Debug("webhook url not configured, dropping notification")
		return nil
	}

	body, err := json.Marshal(webhookPayload{Content: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}
