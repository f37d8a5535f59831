package request

import "github.com/Guyuepp/social-feed/domain"

type Post struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"required"`
}

// ToUpdate: Request -> Domain
func (r *Post) ToUpdate() domain.UpdatePostRequest {
	return domain.UpdatePostRequest{
		Title: r.Title,
		Body:  r.Body,
	}
}
