package transfer

type PostCreation struct {
	Content       string `json:"content"`
	Platform      string `json:"platform"`
	Category      string `json:"category"`
	ScheduledTime string `json:"scheduled_time"` // RFC 3339; empty means now
}
