package request

type CreateReviewRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Body    string `json:"body" validate:"required,min=1"`
}

type UpdateReviewRequest struct {
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Body   *string `json:"body,omitempty" validate:"omitempty,min=1"`
}
