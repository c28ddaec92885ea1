package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	config "github.com/tradeflows/promoflow/configs"
)

type instagramAdapter struct {
	creds         config.InstagramCredentials
	client        *http.Client
	authenticated bool
}

func NewInstagramAdapter(creds config.InstagramCredentials) Adapter {
	return &instagramAdapter{
		creds:  creds,
		client: http.DefaultClient,
	}
}

func (a *instagramAdapter) Name() string { return "instagram" }

func (a *instagramAdapter) IsConfigured() bool {
	return a.creds.AccessToken != "" && a.creds.AccountID != ""
}

func (a *instagramAdapter) IsAuthenticated() bool { return a.authenticated }

func (a *instagramAdapter) Authenticate(ctx context.Context) error {
	probeURL := fmt.Sprintf("%s/%s?fields=id,username&access_token=%s",
		facebookGraphBase, a.creds.AccountID, url.QueryEscape(a.creds.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.authenticated = false
		return fmt.Errorf("instagram auth check returned status %d", resp.StatusCode)
	}

	a.authenticated = true
	return nil
}

// Publish always fails for text-only content: the Graph API requires an image
// or video container for every instagram post. The scheduler records the
// failure and moves on, same as the other rejection paths.
func (a *instagramAdapter) Publish(ctx context.Context, content string) (string, error) {
	return "", errors.New("instagram posts require at least one image or video")
}

func (a *instagramAdapter) Engagement(ctx context.Context, externalID string) (*Metrics, error) {
	fields := "like_count,comments_count"
	metricsURL := fmt.Sprintf("%s/%s?fields=%s&access_token=%s",
		facebookGraphBase, externalID, url.QueryEscape(fields), url.QueryEscape(a.creds.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, metricsURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("instagram returned status %d", resp.StatusCode)
	}

	var result struct {
		LikeCount     int64 `json:"like_count"`
		CommentsCount int64 `json:"comments_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &Metrics{
		Likes:    result.LikeCount,
		Comments: result.CommentsCount,
	}, nil
}
