package domain

import (
	"bytes"
	"encoding/json"
)

// StringID decodes both "12" and 12, the upstream API is not consistent about id types
type StringID string

func (s StringID) String() string {
	return string(s)
}

func (s *StringID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = StringID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = StringID(n.String())
	return nil
}

// CommentDTO is the wire shape of a comment
type CommentDTO struct {
	ID        StringID       `json:"id"`
	Body      string         `json:"body"`
	User      *UserReference `json:"user"`
	PostID    StringID       `json:"postId"`
	Likes     int64          `json:"likes"`
	CreatedAt int64          `json:"createdAt"`
	UpdatedAt int64          `json:"updatedAt"`
}

type PostDTO struct {
	ID            StringID      `json:"id"`
	User          UserReference `json:"user"`
	Title         string        `json:"title"`
	Body          string        `json:"body"`
	Image         string        `json:"image"`
	Likes         int64         `json:"likes"`
	TotalComments int64         `json:"totalComments"`
	CreatedAt     int64         `json:"createdAt"`
	UpdatedAt     int64         `json:"updatedAt"`
}

type UserDTO struct {
	ID           StringID `json:"id"`
	Username     string   `json:"username"`
	ProfileImage string   `json:"profileImage"`
	Age          int      `json:"age"`
	Email        string   `json:"email"`
}

// PostWithComments is the read model returned for a single post
type PostWithComments struct {
	PostDTO
	Comments []CommentDTO `json:"comments"`
}

// CommentRecord is the plain entity shape, also the input of NewComment
type CommentRecord struct {
	ID        string
	Body      string
	User      *UserReference
	PostID    string
	Likes     int64
	CreatedAt int64
	UpdatedAt int64
}

type PostRecord struct {
	ID            string
	User          UserReference
	Title         string
	Body          string
	Image         string
	Likes         int64
	TotalComments int64
	CreatedAt     int64
	UpdatedAt     int64
}

type UserRecord struct {
	ID           string
	Username     string
	ProfileImage string
	Age          int
	Email        string
}

// Request bodies sent upstream

type CreateCommentRequest struct {
	Body   string `json:"body"`
	PostID string `json:"postId"`
	UserID string `json:"userId"`
}

type UpdateCommentRequest struct {
	Body string `json:"body"`
}

type CreatePostRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID string `json:"userId"`
}

type UpdatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type LikeRequest struct {
	UserID string `json:"userId"`
}

// List envelopes returned by the upstream collection endpoints

type CommentList struct {
	Comments []CommentDTO `json:"comments"`
	Total    int          `json:"total"`
	Skip     int          `json:"skip"`
	Limit    int          `json:"limit"`
}

type PostList struct {
	Posts []PostDTO `json:"posts"`
	Total int       `json:"total"`
	Skip  int       `json:"skip"`
	Limit int       `json:"limit"`
}
