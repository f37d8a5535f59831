package mapper

import "github.com/Guyuepp/social-feed/domain"

// CommentToDTO: Domain -> DTO
func CommentToDTO(c *domain.Comment) domain.CommentDTO {
	user := c.User()
	return domain.CommentDTO{
		ID:        domain.StringID(c.ID()),
		Body:      c.Body(),
		User:      &user,
		PostID:    domain.StringID(c.PostID()),
		Likes:     c.Likes(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

// CommentToDomain: DTO -> Domain
func CommentToDomain(dto domain.CommentDTO) (*domain.Comment, error) {
	now := domain.NowMillis()
	createdAt := dto.CreatedAt
	if createdAt == 0 {
		createdAt = now
	}
	updatedAt := dto.UpdatedAt
	if updatedAt == 0 {
		updatedAt = now
	}
	return domain.NewComment(domain.CommentRecord{
		ID:        dto.ID.String(),
		Body:      dto.Body,
		User:      dto.User,
		PostID:    dto.PostID.String(),
		Likes:     dto.Likes,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	})
}

// CommentFromRecord builds from data already in entity shape
func CommentFromRecord(r domain.CommentRecord) (*domain.Comment, error) {
	now := domain.NowMillis()
	if r.CreatedAt == 0 {
		r.CreatedAt = now
	}
	if r.UpdatedAt == 0 {
		r.UpdatedAt = now
	}
	return domain.NewComment(r)
}

// CommentsToDomain stops at the first invalid element
func CommentsToDomain(dtos []domain.CommentDTO) ([]*domain.Comment, error) {
	res := make([]*domain.Comment, 0, len(dtos))
	for _, dto := range dtos {
		c, err := CommentToDomain(dto)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func CommentsFromRecords(records []domain.CommentRecord) ([]*domain.Comment, error) {
	res := make([]*domain.Comment, 0, len(records))
	for _, r := range records {
		c, err := CommentFromRecord(r)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func CommentsToDTO(comments []*domain.Comment) []domain.CommentDTO {
	res := make([]domain.CommentDTO, 0, len(comments))
	for _, c := range comments {
		res = append(res, CommentToDTO(c))
	}
	return res
}
