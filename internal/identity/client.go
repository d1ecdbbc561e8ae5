package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Hebelub/train-booker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Client talks to the auth provider's user API. The provider is the
// sole owner of identity; this service only reads profiles from it.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        logger.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (c *Client) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/users/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrProfileNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("auth provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var p domain.Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &p, nil
}

// GetProfiles resolves a batch of user ids. A single failed lookup never
// aborts the batch; the failing entry is logged and omitted.
func (c *Client) GetProfiles(ctx context.Context, userIDs []string) ([]*domain.Profile, error) {
	profiles := make([]*domain.Profile, 0, len(userIDs))
	for _, id := range userIDs {
		p, err := c.GetProfile(ctx, id)
		if err != nil {
			c.log.Warn("profile lookup failed, entry omitted",
				logger.String("user_id", id),
				logger.String("error", err.Error()),
			)
			continue
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
