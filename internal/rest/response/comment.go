package response

import "github.com/Guyuepp/social-feed/domain"

// NewCommentList wraps comments the way the upstream does, so the UI reads both alike
func NewCommentList(comments []domain.CommentDTO) domain.CommentList {
	if comments == nil {
		comments = []domain.CommentDTO{}
	}
	return domain.CommentList{
		Comments: comments,
		Total:    len(comments),
		Limit:    len(comments),
	}
}
