package domain

import "unicode/utf8"

const CommentBodyMaxLength = 100

// CommentBody is the validated text of a comment
type CommentBody struct {
	text string
}

func NewCommentBody(text string) (CommentBody, error) {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return CommentBody{}, NewValidationError("Comment body cannot be empty")
	}
	if n > CommentBodyMaxLength {
		return CommentBody{}, NewValidationError("Comment body cannot exceed 100 characters")
	}
	return CommentBody{text: text}, nil
}

func (b CommentBody) Text() string {
	return b.text
}
