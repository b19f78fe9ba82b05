package review

import (
	"time"

	"garagehub/internal/domain"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Response struct {
	ID        int64        `json:"id"`
	User      UserResponse `json:"user"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"created_at"`
}

func NewResponse(rv *domain.Review) Response {
	resp := Response{
		ID:        rv.ID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	}
	if rv.User != nil {
		resp.User = UserResponse{
			ID:       rv.User.ID,
			Username: rv.User.Username,
			Email:    rv.User.Email,
		}
	}
	return resp
}

func NewResponseList(reviews []domain.Review) []Response {
	out := make([]Response, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewResponse(&reviews[i]))
	}
	return out
}
