package mapper

import "github.com/Guyuepp/social-feed/domain"

func PostToDTO(p *domain.Post) domain.PostDTO {
	return domain.PostDTO{
		ID:            domain.StringID(p.ID()),
		User:          p.User(),
		Title:         p.Title(),
		Body:          p.Body(),
		Image:         p.Image(),
		Likes:         p.Likes(),
		TotalComments: p.TotalComments(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func PostToDomain(dto domain.PostDTO) *domain.Post {
	return PostFromRecord(domain.PostRecord{
		ID:            dto.ID.String(),
		User:          dto.User,
		Title:         dto.Title,
		Body:          dto.Body,
		Image:         dto.Image,
		Likes:         dto.Likes,
		TotalComments: dto.TotalComments,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}

func PostFromRecord(r domain.PostRecord) *domain.Post {
	now := domain.NowMillis()
	if r.CreatedAt == 0 {
		r.CreatedAt = now
	}
	if r.UpdatedAt == 0 {
		r.UpdatedAt = now
	}
	return domain.NewPost(r)
}

func PostsToDomain(dtos []domain.PostDTO) []*domain.Post {
	res := make([]*domain.Post, 0, len(dtos))
	for _, dto := range dtos {
		res = append(res, PostToDomain(dto))
	}
	return res
}

func PostsFromRecords(records []domain.PostRecord) []*domain.Post {
	res := make([]*domain.Post, 0, len(records))
	for _, r := range records {
		res = append(res, PostFromRecord(r))
	}
	return res
}

func PostsToDTO(posts []*domain.Post) []domain.PostDTO {
	res := make([]domain.PostDTO, 0, len(posts))
	for _, p := range posts {
		res = append(res, PostToDTO(p))
	}
	return res
}
