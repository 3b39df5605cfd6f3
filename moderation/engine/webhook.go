package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/workincz/moderator/moderation/reportstore"
)

// Sends moderation action notices to a slack-style "incoming webhook" URL.
type WebhookNotifier struct {
	WebhookURL string
	Client     *http.Client
}

var _ Notifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string) *WebhookNotifier {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	client := retryClient.StandardClient()
	client.Timeout = 20 * time.Second
	return &WebhookNotifier{
		WebhookURL: url,
		Client:     client,
	}
}

func (n *WebhookNotifier) SendResult(ctx context.Context, service string, result *ModerationResult) error {
	if service != "webhook" {
		return nil
	}
	msg := "⚠️ Auto-Moderation Action ⚠️\n"
	msg += fmt.Sprintf("`%s` (%s) by `%s`\n", result.ContentID, result.ContentType, result.AuthorID)
	if len(result.Flags) > 0 {
		msg += fmt.Sprintf("Flags: `%s`\n", strings.Join(result.Flags, ", "))
	}
	msg += fmt.Sprintf("Score: %d\n", result.Score)
	if result.Rejected {
		msg += fmt.Sprintf("REJECTED: %s\n", result.RejectReason)
	}
	if result.ReviewRequired {
		msg += "Needs manual review\n"
	}
	return n.sendMsg(ctx, msg)
}

func (n *WebhookNotifier) SendReport(ctx context.Context, service string, report *reportstore.Report) error {
	if service != "webhook" {
		return nil
	}
	msg := "⚠️ High-Priority Report ⚠️\n"
	msg += fmt.Sprintf("`%s` (%s) reported by `%s`: %s\n", report.ContentID, report.ContentType, report.ReporterID, report.Reason)
	if report.Description != "" {
		msg += report.Description + "\n"
	}
	return n.sendMsg(ctx, msg)
}

type webhookBody struct {
	Text string `json:"text"`
}

// Sends a simple text message via "incoming webhook".
//
// The incoming webhook must be already configured in the target workspace.
func (n *WebhookNotifier) sendMsg(ctx context.Context, msg string) error {
	body, err := json.Marshal(webhookBody{Text: msg})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.WebhookURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")
	client := n.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("failed webhook POST request. status=%d", resp.StatusCode)
	}
	return nil
}
