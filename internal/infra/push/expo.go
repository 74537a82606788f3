package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

const (
	defaultEndpoint = "https://exp.host/--/api/v2/push/send"
	defaultTimeout  = 20 * time.Second
)

type ExpoConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// Expo sends notifications through the Expo push service, looking up the
// recipient's push token on each send.
type Expo struct {
	users    domain.UserRepository
	client   *http.Client
	endpoint string
}

func NewExpo(users domain.UserRepository, cfg ExpoConfig) *Expo {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Expo{
		users:    users,
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}
}

type expoMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (e *Expo) PlanGenerated(ctx context.Context, userID string, blockCount int) error {
	user, err := e.users.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user.ExpoPushToken == "" {
		// nothing to deliver to; not an error
		return nil
	}

	msg := expoMessage{
		To:    user.ExpoPushToken,
		Title: "Your plan is ready",
		Body:  fmt.Sprintf("Raigen scheduled %d block(s) for today. Open the app to review.", blockCount),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push service returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
