package workspaces_interfaces

import (
	"time"

	"builderspace-backend/internal/features/posts"

	"github.com/google/uuid"
)

type TeamMemberInfo struct {
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// MembershipSource answers team membership questions for a post. Implemented
// by the teams feature and injected to avoid a package cycle (teams depends
// on workspaces for workspace creation).
type MembershipSource interface {
	IsTeamMember(postType posts.PostType, postID, userID uuid.UUID) (bool, error)
	GetTeamMemberIDs(postType posts.PostType, postID uuid.UUID) ([]uuid.UUID, error)
	GetTeamMembers(postType posts.PostType, postID uuid.UUID) ([]TeamMemberInfo, error)
	GetUserPostRefs(userID uuid.UUID) ([]PostRef, error)
}

type PostRef struct {
	PostType posts.PostType `json:"postType"`
	PostID   uuid.UUID      `json:"postId"`
}
