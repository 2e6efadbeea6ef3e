package request

// MovieListRequest carries catalogue query parameters. Sort is
// "title|year|score" with an optional ":asc" or ":desc" suffix.
type MovieListRequest struct {
	Query string
	Year  int
	Sort  string
	Page  int
	Limit int
}
