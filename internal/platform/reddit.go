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

const (
	redditTokenURL = "https://www.reddit.com/api/v1/access_token"
	redditAPIBase  = "https://oauth.reddit.com"
	redditUA       = "promoflow/1.0"
)

type redditAdapter struct {
	creds       config.RedditCredentials
	client      *http.Client
	accessToken string
}

func NewRedditAdapter(creds config.RedditCredentials) Adapter {
	return &redditAdapter{
		creds:  creds,
		client: http.DefaultClient,
	}
}

func (a *redditAdapter) Name() string { return "reddit" }

func (a *redditAdapter) IsConfigured() bool {
	return a.creds.ClientID != "" && a.creds.ClientSecret != "" &&
		a.creds.Username != "" && a.creds.Password != "" && a.creds.Subreddit != ""
}

func (a *redditAdapter) IsAuthenticated() bool { return a.accessToken != "" }

// Authenticate performs the script-app password grant. Reddit tokens expire
// after an hour; a failed sweep call just surfaces as a failed post and the
// next AuthenticateAll picks up a fresh token.
func (a *redditAdapter) Authenticate(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", a.creds.Username)
	form.Set("password", a.creds.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, redditTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(a.creds.ClientID, a.creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", redditUA)

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.accessToken = ""
		return fmt.Errorf("reddit token endpoint returned status %d", resp.StatusCode)
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if result.AccessToken == "" {
		return errors.New("reddit token response missing access_token")
	}

	a.accessToken = result.AccessToken
	return nil
}

func (a *redditAdapter) Publish(ctx context.Context, content string) (string, error) {
	title, body := splitRedditPost(content)

	form := url.Values{}
	form.Set("sr", a.creds.Subreddit)
	form.Set("kind", "self")
	form.Set("title", title)
	form.Set("text", body)
	form.Set("api_type", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, redditAPIBase+"/api/submit", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+a.accessToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", redditUA)

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reddit returned status %d", resp.StatusCode)
	}

	var result struct {
		JSON struct {
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
			Errors [][]interface{} `json:"errors"`
		} `json:"json"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.JSON.Errors) > 0 {
		return "", fmt.Errorf("reddit submit rejected: %v", result.JSON.Errors[0])
	}
	if result.JSON.Data.ID == "" {
		return "", errors.New("reddit response missing post id")
	}

	return result.JSON.Data.ID, nil
}

func (a *redditAdapter) Engagement(ctx context.Context, externalID string) (*Metrics, error) {
	infoURL := fmt.Sprintf("%s/api/info?id=t3_%s", redditAPIBase, externalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, infoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.accessToken)
	req.Header.Set("User-Agent", redditUA)

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit returned status %d", resp.StatusCode)
	}

	var result struct {
		Data struct {
			Children []struct {
				Data struct {
					Score       int64 `json:"score"`
					NumComments int64 `json:"num_comments"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if len(result.Data.Children) == 0 {
		return nil, errors.New("reddit post not found")
	}

	post := result.Data.Children[0].Data
	return &Metrics{
		Likes:    post.Score,
		Comments: post.NumComments,
	}, nil
}

// splitRedditPost uses the first line as the submission title and the rest as
// the self-text body, since reddit has no single-field post format.
func splitRedditPost(content string) (string, string) {
	title, body, found := strings.Cut(content, "\n")
	title = strings.TrimSpace(title)
	if len(title) > 300 {
		title = title[:297] + "..."
	}
	if !found {
		return title, content
	}
	return title, strings.TrimSpace(body)
}
