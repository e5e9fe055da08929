package newsapi

// articlePayload is one entry of the everything endpoint.
type articlePayload struct {
	Source struct {
		ID   *string `json:"id"`
		Name string  `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// validArticle is what an article needs to be kept in the registry.
type validArticle struct {
	Outlet      string `validate:"required"`
	Author      string `validate:"required"`
	Title       string `validate:"required"`
	Description string `validate:"required"`
	URL         string `validate:"required,url"`
	Cover       string `validate:"required,url"`
	PublishedAt string `validate:"required,datetime=2006-01-02T15:04:05Z"`
}
