package youtube

type thumbnail struct {
	URL    string `json:"url" validate:"required"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// videoPayload is a videos or search resource. The id is a string on videos
// and an object holding videoId on search results.
type videoPayload struct {
	ID      any `json:"id" validate:"required"`
	Snippet struct {
		Title        string               `json:"title" validate:"required"`
		ChannelTitle string               `json:"channelTitle"`
		Description  string               `json:"description"`
		PublishedAt  string               `json:"publishedAt"`
		Thumbnails   map[string]thumbnail `json:"thumbnails" validate:"dive"`
	} `json:"snippet"`
}

// validVideo is what a video needs to be kept in the registry.
type validVideo struct {
	VideoID   string `validate:"required"`
	Title     string `validate:"required"`
	Channel   string `validate:"required"`
	Thumbnail string `validate:"required,url"`
}
