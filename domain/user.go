package domain

import (
	"context"
	"regexp"
)

const ResourceUser = "User"

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,20}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// User domain model
type User struct {
	id           string
	username     string
	profileImage string
	age          int
	email        string
}

func NewUser(r UserRecord) *User {
	return &User{
		id:           r.ID,
		username:     r.Username,
		profileImage: r.ProfileImage,
		age:          r.Age,
		email:        r.Email,
	}
}

func (u *User) ID() string { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) ProfileImage() string { return u.profileImage }
func (u *User) Age() int { return u.age }
func (u *User) Email() string { return u.email }

// Reference returns the author shape used by posts and comments
func (u *User) Reference() UserReference {
	return UserReference{
		ID:           u.id,
		Username:     u.username,
		ProfileImage: u.profileImage,
	}
}

func (u *User) UpdateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return NewValidationError("Invalid username format")
	}
	u.username = username
	return nil
}

func (u *User) UpdateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return NewValidationError("Invalid email format")
	}
	u.email = email
	return nil
}

type UserAdapter interface {
	GetCurrent(ctx context.Context) (*UserDTO, error)
}

// UserRepository resolves the user the upstream session belongs to
type UserRepository interface {
	GetCurrent(ctx context.Context) (*User, error)
}
