package response

import "github.com/Guyuepp/social-feed/domain"

func NewPostList(posts []domain.PostDTO, limit, skip int) domain.PostList {
	if posts == nil {
		posts = []domain.PostDTO{}
	}
	return domain.PostList{
		Posts: posts,
		Total: len(posts),
		Skip:  skip,
		Limit: limit,
	}
}

// Message is the body of mutations that return no resource
type Message struct {
	Message string `json:"message"`
}
