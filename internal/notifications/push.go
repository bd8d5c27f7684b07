package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"matchreel/internal/config"
)

const userAgent = "matchreel/0.1.0"

// PushService announces terminal run outcomes to an external topic.
type PushService interface {
	NotifyRunCompleted(ctx context.Context, outputPath string) error
	NotifyRunAborted(ctx context.Context) error
	NotifyRunFailed(ctx context.Context, reason string) error
}

// NewPushService builds a push service backed by ntfy when configured. When
// no topic is configured, a noop implementation is returned.
func NewPushService(cfg *config.Config) PushService {
	topic := strings.TrimSpace(cfg.NtfyTopic)
	if topic == "" {
		return noopPush{}
	}

	timeout := time.Duration(cfg.NtfyRequestTimeout) * time.Second
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

func (n *ntfyService) NotifyRunCompleted(ctx context.Context, outputPath string) error {
	return n.send(ctx, payload{
		title:   "matchreel - Done",
		message: fmt.Sprintf("Saved: %s", outputPath),
		tags:    []string{"matchreel", "run", "completed"},
	})
}

func (n *ntfyService) NotifyRunAborted(ctx context.Context) error {
	return n.send(ctx, payload{
		title:   "matchreel - Aborted",
		message: "Run aborted by user",
		tags:    []string{"matchreel", "run", "aborted"},
	})
}

func (n *ntfyService) NotifyRunFailed(ctx context.Context, reason string) error {
	return n.send(ctx, payload{
		title:    "matchreel - Failed",
		message:  fmt.Sprintf("Run failed: %s", reason),
		tags:     []string{"matchreel", "run", "failed"},
		priority: "high",
	})
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopPush struct{}

func (noopPush) NotifyRunCompleted(context.Context, string) error { return nil }
func (noopPush) NotifyRunAborted(context.Context) error           { return nil }
func (noopPush) NotifyRunFailed(context.Context, string) error    { return nil }
