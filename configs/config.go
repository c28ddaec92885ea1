package config

import (
	"os"
	"strconv"
)

type TwitterCredentials struct {
	APIKey      string
	APISecret   string
	AccessToken string
	BearerToken string
}

type LinkedinCredentials struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	AuthorURN    string
}

type FacebookCredentials struct {
	AppID       string
	AppSecret   string
	AccessToken string
	PageID      string
}

type RedditCredentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	Subreddit    string
}

type InstagramCredentials struct {
	AccessToken string
	AccountID   string
}

type Config struct {
	PostgresURI    string
	RedisURI       string
	Port           string
	SecretKey      string
	OperatorKey    string
	FrontendURL    string
	Twitter        TwitterCredentials
	Linkedin       LinkedinCredentials
	Facebook       FacebookCredentials
	Reddit         RedditCredentials
	Instagram      InstagramCredentials
	PostsPerDayMin int
	PostsPerDayMax int
	Timezone       string
	SiteURL        string
}

func LoadConfig() *Config {
	cfg := &Config{
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", "127.0.0.1:6379"),
		Port:        getEnv("PORT", "3000"),
		SecretKey:   getEnv("SECRET_KEY", ""),
		OperatorKey: getEnv("OPERATOR_KEY", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		Twitter: TwitterCredentials{
			APIKey:      getEnv("TWITTER_API_KEY", ""),
			APISecret:   getEnv("TWITTER_API_SECRET", ""),
			AccessToken: getEnv("TWITTER_ACCESS_TOKEN", ""),
			BearerToken: getEnv("TWITTER_BEARER_TOKEN", ""),
		},
		Linkedin: LinkedinCredentials{
			ClientID:     getEnv("LINKEDIN_CLIENT_ID", ""),
			ClientSecret: getEnv("LINKEDIN_CLIENT_SECRET", ""),
			AccessToken:  getEnv("LINKEDIN_ACCESS_TOKEN", ""),
			AuthorURN:    getEnv("LINKEDIN_AUTHOR_URN", ""),
		},
		Facebook: FacebookCredentials{
			AppID:       getEnv("FACEBOOK_APP_ID", ""),
			AppSecret:   getEnv("FACEBOOK_APP_SECRET", ""),
			AccessToken: getEnv("FACEBOOK_ACCESS_TOKEN", ""),
			PageID:      getEnv("FACEBOOK_PAGE_ID", ""),
		},
		Reddit: RedditCredentials{
			ClientID:     getEnv("REDDIT_CLIENT_ID", ""),
			ClientSecret: getEnv("REDDIT_CLIENT_SECRET", ""),
			Username:     getEnv("REDDIT_USERNAME", ""),
			Password:     getEnv("REDDIT_PASSWORD", ""),
			Subreddit:    getEnv("REDDIT_SUBREDDIT", ""),
		},
		Instagram: InstagramCredentials{
			AccessToken: getEnv("INSTAGRAM_ACCESS_TOKEN", ""),
			AccountID:   getEnv("INSTAGRAM_ACCOUNT_ID", ""),
		},
		PostsPerDayMin: getEnvInt("POSTS_PER_DAY_MIN", 3),
		PostsPerDayMax: getEnvInt("POSTS_PER_DAY_MAX", 6),
		Timezone:       getEnv("TIMEZONE", "America/New_York"),
		SiteURL:        getEnv("SITE_URL", "https://tradeflows.net"),
	}

	if cfg.PostsPerDayMin < 1 {
		cfg.PostsPerDayMin = 1
	}
	if cfg.PostsPerDayMax < cfg.PostsPerDayMin {
		cfg.PostsPerDayMax = cfg.PostsPerDayMin
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
