package posts

import (
	"time"

	"builderspace-backend/internal/storage"
	"builderspace-backend/internal/util/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository struct{}

func (r *PostRepository) CreateStartup(startup *Startup) error {
	if startup.ID == uuid.Nil {
		startup.ID = uuid.New()
	}

	if startup.CreatedAt.IsZero() {
		startup.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(startup).Error
}

func (r *PostRepository) CreateHackathon(hackathon *Hackathon) error {
	if hackathon.ID == uuid.Nil {
		hackathon.ID = uuid.New()
	}

	if hackathon.CreatedAt.IsZero() {
		hackathon.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(hackathon).Error
}

func (r *PostRepository) GetStartupByID(startupID uuid.UUID) (*Startup, error) {
	var startup Startup

	if err := storage.GetDb().Where("id = ?", startupID).First(&startup).Error; err != nil {
		return nil, err
	}

	return &startup, nil
}

func (r *PostRepository) GetHackathonByID(hackathonID uuid.UUID) (*Hackathon, error) {
	var hackathon Hackathon

	if err := storage.GetDb().Where("id = ?", hackathonID).First(&hackathon).Error; err != nil {
		return nil, err
	}

	return &hackathon, nil
}

// ResolvePost looks up the post behind a (type, id) pair and returns its
// uniform view, or a not-found error if no such post exists.
func (r *PostRepository) ResolvePost(postType PostType, postID uuid.UUID) (*PostInfo, error) {
	switch postType {
	case PostTypeStartup:
		startup, err := r.GetStartupByID(postID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errs.NotFound("startup not found")
			}
			return nil, err
		}

		return &PostInfo{
			ID:      startup.ID,
			Type:    PostTypeStartup,
			Name:    startup.Name,
			OwnerID: startup.FounderID,
		}, nil
	case PostTypeHackathon:
		hackathon, err := r.GetHackathonByID(postID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errs.NotFound("hackathon not found")
			}
			return nil, err
		}

		return &PostInfo{
			ID:      hackathon.ID,
			Type:    PostTypeHackathon,
			Name:    hackathon.Name,
			OwnerID: hackathon.OrganizerID,
		}, nil
	default:
		return nil, errs.Validation("invalid post type")
	}
}
