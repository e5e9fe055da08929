package twitter

import "encoding/json"

// tweetPayload is a status object of the standard search API.
type tweetPayload struct {
	ID    json.Number `json:"id" validate:"required"`
	IDStr string      `json:"id_str"`
	Text  string      `json:"text" validate:"required"`
	User  struct {
		Name       string `json:"name" validate:"required"`
		ScreenName string `json:"screen_name"`
	} `json:"user"`
	CreatedAt       string          `json:"created_at"`
	RetweetedStatus json.RawMessage `json:"retweeted_status"`
}

// validTweet is what a tweet needs to be kept in the registry.
type validTweet struct {
	ID        string `validate:"required,numeric"`
	Text      string `validate:"required"`
	User      string `validate:"required"`
	CreatedAt string `validate:"required"`
}
