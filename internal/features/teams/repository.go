package teams

import (
	"time"

	"builderspace-backend/internal/features/posts"
	"builderspace-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMemberRepository struct{}

func (r *TeamMemberRepository) CreateTeamMember(member *TeamMember) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}

	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now().UTC()
	}

	return storage.TranslateError(storage.GetDb().Create(member).Error)
}

func (r *TeamMemberRepository) GetTeamMember(
	postType posts.PostType,
	postID, userID uuid.UUID,
) (*TeamMember, error) {
	var member TeamMember

	if err := storage.GetDb().
		Where("post_type = ? AND post_id = ? AND user_id = ?", postType, postID, userID).
		First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &member, nil
}

func (r *TeamMemberRepository) GetTeamMembersByPost(
	postType posts.PostType,
	postID uuid.UUID,
) ([]*TeamMember, error) {
	var members []*TeamMember

	err := storage.GetDb().
		Where("post_type = ? AND post_id = ?", postType, postID).
		Order("joined_at ASC").
		Find(&members).Error

	return members, err
}

func (r *TeamMemberRepository) GetTeamMembersByUser(
	userID uuid.UUID,
) ([]*TeamMember, error) {
	var members []*TeamMember

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("joined_at ASC").
		Find(&members).Error

	return members, err
}

func (r *TeamMemberRepository) DeleteTeamMember(memberID uuid.UUID) error {
	return storage.TranslateError(
		storage.GetDb().
			Where("id = ?", memberID).
			Delete(&TeamMember{}).Error,
	)
}
