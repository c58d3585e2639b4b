package applications

import (
	"time"

	"builderspace-backend/internal/features/posts"

	"github.com/google/uuid"
)

// Application is a student's request to join a startup or hackathon team.
// A user can apply to a given post at most once.
type Application struct {
	ID          uuid.UUID         `json:"id"          gorm:"type:uuid;primaryKey"`
	ApplicantID uuid.UUID         `json:"applicantId" gorm:"type:uuid;uniqueIndex:idx_applications_applicant_post"`
	PostType    posts.PostType    `json:"postType"    gorm:"uniqueIndex:idx_applications_applicant_post"`
	PostID      uuid.UUID         `json:"postId"      gorm:"type:uuid;uniqueIndex:idx_applications_applicant_post"`
	Message     string            `json:"message"     gorm:"type:text"`
	Status      ApplicationStatus `json:"status"      gorm:"not null"`
	CreatedAt   time.Time         `json:"createdAt"   gorm:"not null"`
	ReviewedAt  *time.Time        `json:"reviewedAt"`
}

func (Application) TableName() string {
	return "applications"
}

// ScreeningMessage is a private chat message between an applicant and the
// post owner, scoped to a single application.
type ScreeningMessage struct {
	ID            uuid.UUID `json:"id"            gorm:"type:uuid;primaryKey"`
	ApplicationID uuid.UUID `json:"applicationId" gorm:"type:uuid;index"`
	SenderID      uuid.UUID `json:"senderId"      gorm:"type:uuid"`
	Content       string    `json:"content"       gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt"     gorm:"not null"`
}

func (ScreeningMessage) TableName() string {
	return "screening_messages"
}
