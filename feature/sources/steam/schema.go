package steam

// gamePayload is the data object of the store appdetails endpoint.
type gamePayload struct {
	Name             string `json:"name" validate:"required"`
	SteamAppID       int    `json:"steam_appid"`
	ShortDescription string `json:"short_description"`
	HeaderImage      string `json:"header_image"`
	Website          string `json:"website"`
	Screenshots      []struct {
		PathFull string `json:"path_full" validate:"required"`
	} `json:"screenshots" validate:"dive"`
	PriceOverview *struct {
		Final int `json:"final"`
	} `json:"price_overview"`
	ReleaseDate struct {
		ComingSoon bool   `json:"coming_soon"`
		Date       string `json:"date"`
	} `json:"release_date"`
	Genres []struct {
		Description string `json:"description" validate:"required"`
	} `json:"genres" validate:"dive"`
	Platforms map[string]bool `json:"platforms"`
}

// articlePayload is one news item of the GetNewsForApp endpoint.
type articlePayload struct {
	GID       string `json:"gid"`
	Title     string `json:"title" validate:"required"`
	URL       string `json:"url" validate:"required"`
	Author    string `json:"author"`
	Contents  string `json:"contents"`
	FeedLabel string `json:"feedlabel"`
	Date      int64  `json:"date"`
}

// validArticle is what an article needs to be kept in the registry.
type validArticle struct {
	Title    string `validate:"required"`
	URL      string `validate:"required,url"`
	Contents string `validate:"required,min=10"`
	Date     int64  `validate:"gt=0"`
}
