package posts

import (
	"fmt"

	users_models "builderspace-backend/internal/features/users/models"
	sanitize_utils "builderspace-backend/internal/util/sanitize"

	"github.com/google/uuid"
)

// PostCreatedListener is notified after a startup or hackathon is created.
// The teams feature registers itself here to seed the founder membership and
// the post's workspace.
type PostCreatedListener interface {
	OnPostCreated(post *PostInfo, creator *users_models.User) error
}

type PostService struct {
	postRepository       *PostRepository
	postCreatedListeners []PostCreatedListener
}

func (s *PostService) AddPostCreatedListener(listener PostCreatedListener) {
	s.postCreatedListeners = append(s.postCreatedListeners, listener)
}

func (s *PostService) CreateStartup(
	request *CreateStartupRequestDTO,
	creator *users_models.User,
) (*Startup, error) {
	name, err := sanitize_utils.CleanAndValidate(request.Name, "name", 200)
	if err != nil {
		return nil, err
	}

	description, err := sanitize_utils.CleanOptional(request.Description, "description", 2000)
	if err != nil {
		return nil, err
	}

	startup := &Startup{
		ID:          uuid.New(),
		FounderID:   creator.ID,
		Name:        name,
		Description: description,
		Stage:       request.Stage,
	}

	if err := s.postRepository.CreateStartup(startup); err != nil {
		return nil, fmt.Errorf("failed to create startup: %w", err)
	}

	if err := s.notifyPostCreated(&PostInfo{
		ID:      startup.ID,
		Type:    PostTypeStartup,
		Name:    startup.Name,
		OwnerID: startup.FounderID,
	}, creator); err != nil {
		return nil, err
	}

	return startup, nil
}

func (s *PostService) CreateHackathon(
	request *CreateHackathonRequestDTO,
	creator *users_models.User,
) (*Hackathon, error) {
	name, err := sanitize_utils.CleanAndValidate(request.Name, "name", 200)
	if err != nil {
		return nil, err
	}

	description, err := sanitize_utils.CleanOptional(request.Description, "description", 2000)
	if err != nil {
		return nil, err
	}

	hackathon := &Hackathon{
		ID:          uuid.New(),
		OrganizerID: creator.ID,
		Name:        name,
		Description: description,
		Location:    request.Location,
		StartsAt:    request.StartsAt,
	}

	if err := s.postRepository.CreateHackathon(hackathon); err != nil {
		return nil, fmt.Errorf("failed to create hackathon: %w", err)
	}

	if err := s.notifyPostCreated(&PostInfo{
		ID:      hackathon.ID,
		Type:    PostTypeHackathon,
		Name:    hackathon.Name,
		OwnerID: hackathon.OrganizerID,
	}, creator); err != nil {
		return nil, err
	}

	return hackathon, nil
}

func (s *PostService) GetPost(postType PostType, postID uuid.UUID) (*PostInfo, error) {
	return s.postRepository.ResolvePost(postType, postID)
}

func (s *PostService) notifyPostCreated(post *PostInfo, creator *users_models.User) error {
	for _, listener := range s.postCreatedListeners {
		if err := listener.OnPostCreated(post, creator); err != nil {
			return fmt.Errorf("post creation listener failed: %w", err)
		}
	}

	return nil
}
