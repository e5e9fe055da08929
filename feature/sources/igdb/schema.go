package igdb

// image is an IGDB image reference. URLs are protocol-relative and point at
// the thumbnail size.
type image struct {
	URL    string `json:"url" validate:"required"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type website struct {
	URL string `json:"url" validate:"required"`
}

// gamePayload is one entry of the games endpoint.
type gamePayload struct {
	ID               int       `json:"id" validate:"required"`
	Name             string    `json:"name" validate:"required"`
	Summary          string    `json:"summary"`
	Cover            *image    `json:"cover"`
	Screenshots      []image   `json:"screenshots" validate:"dive"`
	Websites         []website `json:"websites" validate:"dive"`
	FirstReleaseDate int64     `json:"first_release_date"`
	TotalRating      *float64  `json:"total_rating"`
	Developers       []int     `json:"developers"`
}

// developerPayload is one entry of the companies endpoint.
type developerPayload struct {
	ID          int    `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Logo        *image `json:"logo"`
	Website     string `json:"website"`
	Country     *int   `json:"country"`
	StartDate   int64  `json:"start_date"`
	Developed   []int  `json:"developed"`
}
