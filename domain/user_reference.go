package domain

import (
	"encoding/json"
	"strings"
)

// UserReference is the author shape embedded in posts and comments
type UserReference struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage"`
}

// UnmarshalJSON accepts numeric ids from the upstream API
func (u *UserReference) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID           StringID `json:"id"`
		Username     string   `json:"username"`
		ProfileImage string   `json:"profileImage"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*u = UserReference{
		ID:           raw.ID.String(),
		Username:     raw.Username,
		ProfileImage: raw.ProfileImage,
	}
	return nil
}

// UserReferenceVO is the validated, immutable form of UserReference
type UserReferenceVO struct {
	id           string
	username     string
	profileImage string
}

func NewUserReferenceVO(value *UserReference) (UserReferenceVO, error) {
	if value == nil {
		return UserReferenceVO{}, NewValidationError("User reference is required")
	}
	if strings.TrimSpace(value.Username) == "" {
		return UserReferenceVO{}, NewValidationError("Username is required")
	}
	return UserReferenceVO{
		id:           value.ID,
		username:     value.Username,
		profileImage: value.ProfileImage,
	}, nil
}

func (v UserReferenceVO) ID() string { return v.id }
func (v UserReferenceVO) Username() string { return v.username }
func (v UserReferenceVO) ProfileImage() string { return v.profileImage }

// ToDTO returns a fresh copy
func (v UserReferenceVO) ToDTO() UserReference {
	return UserReference{
		ID:           v.id,
		Username:     v.username,
		ProfileImage: v.profileImage,
	}
}

func (v UserReferenceVO) Equals(other *UserReferenceVO) bool {
	if other == nil {
		return false
	}
	return v.id == other.id &&
		v.username == other.username &&
		v.profileImage == other.profileImage
}
