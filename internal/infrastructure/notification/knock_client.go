package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"tokohub/internal/domain/service"
)

const defaultBaseURL = "https://api.knock.app/v1"

// KnockClient triggers Knock workflows over the REST API. The embedded
// http.Client timeout bounds every delivery attempt on top of the caller's
// context deadline.
type KnockClient struct {
	apiKey      string
	workflowKey string
	baseURL     string
	httpClient  *http.Client
}

func NewKnockClient(apiKey, workflowKey string, timeout time.Duration) *KnockClient {
	return &KnockClient{
		apiKey:      apiKey,
		workflowKey: workflowKey,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type triggerRecipient struct {
	ID string `json:"id"`
}

type triggerRequest struct {
	Recipients []triggerRecipient `json:"recipients"`
	Data       map[string]string  `json:"data"`
}

func (k *KnockClient) NotifyProductLiked(ctx context.Context, recipientUserID string, event service.LikeEvent) error {
	payload := triggerRequest{
		Recipients: []triggerRecipient{{ID: recipientUserID}},
		Data: map[string]string{
			"productName": event.ProductName,
			"userName":    event.ActorName,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal trigger request: %w", err)
	}

	url := fmt.Sprintf("%s/workflows/%s/trigger", k.baseURL, k.workflowKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build trigger request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+k.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.New().String())

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("trigger workflow %s: %w", k.workflowKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("trigger workflow %s: status %d: %s", k.workflowKey, resp.StatusCode, string(respBody))
	}

	return nil
}
