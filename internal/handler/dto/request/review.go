package request

import "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{Rating: r.Rating, Comment: r.Comment}
}
