package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	config "github.com/tradeflows/promoflow/configs"
)

const facebookGraphBase = "https://graph.facebook.com/v19.0"

type facebookAdapter struct {
	creds         config.FacebookCredentials
	client        *http.Client
	authenticated bool
}

func NewFacebookAdapter(creds config.FacebookCredentials) Adapter {
	return &facebookAdapter{
		creds:  creds,
		client: http.DefaultClient,
	}
}

func (a *facebookAdapter) Name() string { return "facebook" }

func (a *facebookAdapter) IsConfigured() bool {
	return a.creds.AccessToken != "" && a.creds.PageID != ""
}

func (a *facebookAdapter) IsAuthenticated() bool { return a.authenticated }

func (a *facebookAdapter) Authenticate(ctx context.Context) error {
	probeURL := fmt.Sprintf("%s/%s?fields=id,name&access_token=%s",
		facebookGraphBase, a.creds.PageID, url.QueryEscape(a.creds.AccessToken))

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
		return fmt.Errorf("facebook auth check returned status %d", resp.StatusCode)
	}

	a.authenticated = true
	return nil
}

func (a *facebookAdapter) Publish(ctx context.Context, content string) (string, error) {
	form := url.Values{}
	form.Set("message", content)
	form.Set("access_token", a.creds.AccessToken)

	feedURL := fmt.Sprintf("%s/%s/feed", facebookGraphBase, a.creds.PageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, feedURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("facebook returned status %d", resp.StatusCode)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", errors.New("facebook response missing post id")
	}

	return result.ID, nil
}

func (a *facebookAdapter) Engagement(ctx context.Context, externalID string) (*Metrics, error) {
	fields := "likes.summary(true),comments.summary(true),shares"
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
		return nil, fmt.Errorf("facebook returned status %d", resp.StatusCode)
	}

	var result struct {
		Likes struct {
			Summary struct {
				TotalCount int64 `json:"total_count"`
			} `json:"summary"`
		} `json:"likes"`
		Comments struct {
			Summary struct {
				TotalCount int64 `json:"total_count"`
			} `json:"summary"`
		} `json:"comments"`
		Shares struct {
			Count int64 `json:"count"`
		} `json:"shares"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &Metrics{
		Likes:    result.Likes.Summary.TotalCount,
		Comments: result.Comments.Summary.TotalCount,
		Shares:   result.Shares.Count,
	}, nil
}
