package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"worddumb/internal/config"
)

const userAgent = "WordDumb-Go/0.1.0"

// Service defines the push-notification surface exposed to transfer components.
type Service interface {
	NotifySendCompleted(ctx context.Context, title, target string) error
	NotifyDictionaryExported(ctx context.Context, dest string) error
	NotifyError(ctx context.Context, err error, context string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifySendCompleted(ctx context.Context, title, target string) error {
	title = strings.TrimSpace(title)
	target = strings.TrimSpace(target)
	data := payload{
		title:   "WordDumb - Send Complete",
		message: fmt.Sprintf("Sent %s to %s", title, target),
		tags:    []string{"worddumb", "send", "completed"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyDictionaryExported(ctx context.Context, dest string) error {
	data := payload{
		title:   "WordDumb - Dictionary Exported",
		message: fmt.Sprintf("Dictionary exported to %s", strings.TrimSpace(dest)),
		tags:    []string{"worddumb", "dictionary"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyError(ctx context.Context, err error, context string) error {
	message := "Transfer error"
	if context = strings.TrimSpace(context); context != "" {
		message = context
	}
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	data := payload{
		title:    "WordDumb - Error",
		message:  message,
		tags:     []string{"worddumb", "error"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:   "WordDumb - Test",
		message: "Notifications are configured correctly",
		tags:    []string{"worddumb", "test"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification rejected: %s", resp.Status)
	}
	return nil
}

type noopService struct{}

func (noopService) NotifySendCompleted(context.Context, string, string) error { return nil }
func (noopService) NotifyDictionaryExported(context.Context, string) error    { return nil }
func (noopService) NotifyError(context.Context, error, string) error          { return nil }
func (noopService) TestNotification(context.Context) error                    { return nil }
