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

const linkedinAPIBase = "https://api.linkedin.com/v2"

type linkedinAdapter struct {
	creds         config.LinkedinCredentials
	client        *http.Client
	authenticated bool
}

func NewLinkedinAdapter(creds config.LinkedinCredentials) Adapter {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.AccessToken})
	return &linkedinAdapter{
		creds:  creds,
		client: oauth2.NewClient(context.Background(), src),
	}
}

func (a *linkedinAdapter) Name() string { return "linkedin" }

func (a *linkedinAdapter) IsConfigured() bool {
	return a.creds.AccessToken != "" && a.creds.AuthorURN != ""
}

func (a *linkedinAdapter) IsAuthenticated() bool { return a.authenticated }

func (a *linkedinAdapter) Authenticate(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, linkedinAPIBase+"/userinfo", nil)
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
		return fmt.Errorf("linkedin auth check returned status %d", resp.StatusCode)
	}

	a.authenticated = true
	return nil
}

func (a *linkedinAdapter) Publish(ctx context.Context, content string) (string, error) {
	payload := map[string]interface{}{
		"author":         a.creds.AuthorURN,
		"lifecycleState": "PUBLISHED",
		"specificContent": map[string]interface{}{
			"com.linkedin.ugc.ShareContent": map[string]interface{}{
				"shareCommentary":    map[string]string{"text": content},
				"shareMediaCategory": "NONE",
			},
		},
		"visibility": map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, linkedinAPIBase+"/ugcPosts", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("linkedin returned status %d", resp.StatusCode)
	}

	postID := resp.Header.Get("X-Restli-Id")
	if postID == "" {
		return "", errors.New("linkedin response missing post id")
	}

	return postID, nil
}

func (a *linkedinAdapter) Engagement(ctx context.Context, externalID string) (*Metrics, error) {
	url := fmt.Sprintf("%s/socialActions/%s", linkedinAPIBase, externalID)
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
		return nil, fmt.Errorf("linkedin returned status %d", resp.StatusCode)
	}

	var result struct {
		LikesSummary struct {
			TotalLikes int64 `json:"totalLikes"`
		} `json:"likesSummary"`
		CommentsSummary struct {
			TotalComments int64 `json:"aggregatedTotalComments"`
		} `json:"commentsSummary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	// LinkedIn's UGC API exposes no share or impression counts on this edge.
	return &Metrics{
		Likes:    result.LikesSummary.TotalLikes,
		Comments: result.CommentsSummary.TotalComments,
	}, nil
}
