package teams

import (
	"time"

	"builderspace-backend/internal/features/posts"

	"github.com/google/uuid"
)

type TeamRole string

const (
	TeamRoleFounder TeamRole = "FOUNDER"
	TeamRoleMember  TeamRole = "MEMBER"
)

// TeamMember ties a user to a post's team. The founder row is created with
// the post itself and can never be removed.
type TeamMember struct {
	ID       uuid.UUID      `json:"id"       gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID      `json:"userId"   gorm:"type:uuid;uniqueIndex:idx_team_members_user_post"`
	PostType posts.PostType `json:"postType" gorm:"uniqueIndex:idx_team_members_user_post"`
	PostID   uuid.UUID      `json:"postId"   gorm:"type:uuid;uniqueIndex:idx_team_members_user_post"`
	Role     TeamRole       `json:"role"     gorm:"not null"`
	JoinedAt time.Time      `json:"joinedAt" gorm:"not null"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
