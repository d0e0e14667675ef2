package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/welbinator/therepo/internal/config"
	"github.com/welbinator/therepo/internal/models"
)

// SendSubmissionNotice posts a JSON notice about a new pending submission to
// the moderation webhook. If MODERATION_WEBHOOK_URL is empty, it no-ops.
func SendSubmissionNotice(ctx context.Context, sub *models.Submission) error {
	if config.Current.WebhookURL == "" || sub == nil {
		return nil
	}
	payload := map[string]interface{}{
		"id":        sub.ID,
		"kind":      sub.Kind,
		"title":     sub.Title,
		"status":    sub.Status,
		"author_id": sub.AuthorID,
	}
	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.Current.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// response body intentionally ignored
	return nil
}
