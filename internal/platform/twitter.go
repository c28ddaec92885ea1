package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	config "github.com/tradeflows/promoflow/configs"
	"golang.org/x/oauth2"
)

const twitterAPIBase = "https://api.twitter.com/2"

type twitterAdapter struct {
	creds         config.TwitterCredentials
	client        *http.Client
	authenticated bool
}

func NewTwitterAdapter(creds config.TwitterCredentials) Adapter {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.BearerToken})
	return &twitterAdapter{
		creds:  creds,
		client: oauth2.NewClient(context.Background(), src),
	}
}

func (a *twitterAdapter) Name() string { return "twitter" }

func (a *twitterAdapter) IsConfigured() bool {
	return a.creds.APIKey != "" && a.creds.APISecret != "" && a.creds.BearerToken != ""
}

func (a *twitterAdapter) IsAuthenticated() bool { return a.authenticated }

func (a *twitterAdapter) Authenticate(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twitterAPIBase+"/users/me", nil)
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
		return fmt.Errorf("twitter auth check returned status %d", resp.StatusCode)
	}

	a.authenticated = true
	return nil
}

func (a *twitterAdapter) Publish(ctx context.Context, content string) (string, error) {
	body, err := json.Marshal(map[string]string{"text": content})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twitterAPIBase+"/tweets", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("twitter returned status %d", resp.StatusCode)
	}

	var result struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Data.ID == "" {
		return "", errors.New("twitter response missing tweet id")
	}

	return result.Data.ID, nil
}

func (a *twitterAdapter) Engagement(ctx context.Context, externalID string) (*Metrics, error) {
	url := fmt.Sprintf("%s/tweets/%s?tweet.fields=public_metrics", twitterAPIBase, externalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
		return nil, fmt.Errorf("twitter returned status %d", resp.StatusCode)
	}

	var result struct {
		Data struct {
			PublicMetrics struct {
				LikeCount       int64 `json:"like_count"`
				ReplyCount      int64 `json:"reply_count"`
				RetweetCount    int64 `json:"retweet_count"`
				ImpressionCount int64 `json:"impression_count"`
			} `json:"public_metrics"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	m := result.Data.PublicMetrics
	return &Metrics{
		Likes:    m.LikeCount,
		Comments: m.ReplyCount,
		Shares:   m.RetweetCount,
		Views:    m.ImpressionCount,
	}, nil
}
