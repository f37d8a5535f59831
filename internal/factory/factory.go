// Package factory builds domain entities, either brand new (id "" until the
// upstream assigns one) or from wire data with defaults for missing fields.
package factory

import "github.com/Guyuepp/social-feed/domain"

// or returns fallback when v is the zero value; zero and absent are treated alike.
func or[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

func CreateNewComment(body string, user domain.UserReference, postID string) (*domain.Comment, error) {
	now := domain.NowMillis()
	return domain.NewComment(domain.CommentRecord{
		Body:      body,
		User:      &user,
		PostID:    postID,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func CreateCommentFromDTO(dto domain.CommentDTO) (*domain.Comment, error) {
	now := domain.NowMillis()
	return domain.NewComment(domain.CommentRecord{
		ID:        dto.ID.String(),
		Body:      dto.Body,
		User:      dto.User,
		PostID:    dto.PostID.String(),
		Likes:     or(dto.Likes, 0),
		CreatedAt: or(dto.CreatedAt, now),
		UpdatedAt: or(dto.UpdatedAt, now),
	})
}

func CreateNewPost(title, body, image string, user domain.UserReference) *domain.Post {
	now := domain.NowMillis()
	return domain.NewPost(domain.PostRecord{
		User:      user,
		Title:     title,
		Body:      body,
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func CreatePostFromDTO(dto domain.PostDTO) *domain.Post {
	now := domain.NowMillis()
	return domain.NewPost(domain.PostRecord{
		ID:            dto.ID.String(),
		User:          dto.User,
		Title:         dto.Title,
		Body:          dto.Body,
		Image:         or(dto.Image, ""),
		Likes:         or(dto.Likes, 0),
		TotalComments: or(dto.TotalComments, 0),
		CreatedAt:     or(dto.CreatedAt, now),
		UpdatedAt:     or(dto.UpdatedAt, now),
	})
}

func CreateNewUser(username, email, profileImage string, age int) *domain.User {
	return domain.NewUser(domain.UserRecord{
		Username:     username,
		ProfileImage: profileImage,
		Age:          age,
		Email:        email,
	})
}

func CreateUserFromDTO(dto domain.UserDTO) *domain.User {
	return domain.NewUser(domain.UserRecord{
		ID:           dto.ID.String(),
		Username:     dto.Username,
		ProfileImage: or(dto.ProfileImage, ""),
		Age:          or(dto.Age, 0),
		Email:        or(dto.Email, ""),
	})
}
