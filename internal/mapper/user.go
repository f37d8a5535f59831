package mapper

import "github.com/Guyuepp/social-feed/domain"

func UserToDTO(u *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:           domain.StringID(u.ID()),
		Username:     u.Username(),
		ProfileImage: u.ProfileImage(),
		Age:          u.Age(),
		Email:        u.Email(),
	}
}

func UserToDomain(dto domain.UserDTO) *domain.User {
	return domain.NewUser(domain.UserRecord{
		ID:           dto.ID.String(),
		Username:     dto.Username,
		ProfileImage: dto.ProfileImage,
		Age:          dto.Age,
		Email:        dto.Email,
	})
}

func UserFromRecord(r domain.UserRecord) *domain.User {
	return domain.NewUser(r)
}

func UsersToDomain(dtos []domain.UserDTO) []*domain.User {
	res := make([]*domain.User, 0, len(dtos))
	for _, dto := range dtos {
		res = append(res, UserToDomain(dto))
	}
	return res
}

func UsersToDTO(users []*domain.User) []domain.UserDTO {
	res := make([]domain.UserDTO, 0, len(users))
	for _, u := range users {
		res = append(res, UserToDTO(u))
	}
	return res
}
