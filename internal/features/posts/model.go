package posts

import (
	"time"

	"github.com/google/uuid"
)

type Startup struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey"`
	FounderID   uuid.UUID `json:"founderId"   gorm:"column:founder_id"`
	Name        string    `json:"name"        gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description"`
	Stage       string    `json:"stage"       gorm:"column:stage"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Startup) TableName() string {
	return "startups"
}

type Hackathon struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey"`
	OrganizerID uuid.UUID `json:"organizerId" gorm:"column:organizer_id"`
	Name        string    `json:"name"        gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description"`
	Location    string    `json:"location"    gorm:"column:location"`
	StartsAt    time.Time `json:"startsAt"    gorm:"column:starts_at"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Hackathon) TableName() string {
	return "hackathons"
}

// PostInfo is the uniform view of a startup or hackathon used by the
// applications, teams and workspaces features.
type PostInfo struct {
	ID      uuid.UUID `json:"id"`
	Type    PostType  `json:"type"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"ownerId"`
}
