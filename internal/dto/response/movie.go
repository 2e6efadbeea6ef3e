package response

type MovieSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	Runtime   string `json:"runtime"`
	PosterURL string `json:"posterUrl"`
	Synopsis  string `json:"synopsis"`
	Score     string `json:"score"`
	Director  string `json:"director"`
}

type MovieDetail struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	Year          string `json:"year"`
	Runtime       string `json:"runtime"`
	PosterURL     string `json:"posterUrl"`
	BannerURL     string `json:"bannerUrl"`
	Synopsis      string `json:"synopsis"`
	Score         string `json:"score"`
	Director      string `json:"director"`
	Producer      string `json:"producer"`
	URL           string `json:"url"`
}

type MovieListResponse struct {
	Items []MovieSummary `json:"items"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
	Next  *string        `json:"next"`
}
