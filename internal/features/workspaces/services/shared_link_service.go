package workspaces_services

import (
	"fmt"

	"builderspace-backend/internal/features/realtime"
	users_models "builderspace-backend/internal/features/users/models"
	workspaces_dto "builderspace-backend/internal/features/workspaces/dto"
	workspaces_models "builderspace-backend/internal/features/workspaces/models"
	workspaces_repositories "builderspace-backend/internal/features/workspaces/repositories"
	"builderspace-backend/internal/util/errs"
	sanitize_utils "builderspace-backend/internal/util/sanitize"
	"builderspace-backend/internal/util/urlcheck"

	"github.com/google/uuid"
)

const (
	maxLinkTitleLength       = 200
	maxLinkDescriptionLength = 1000
)

type SharedLinkService struct {
	workspaceService *WorkspaceService
	linkRepository   *workspaces_repositories.LinkRepository
	stateSyncService *realtime.StateSyncService
}

// AddSharedLink validates the URL against the phishing heuristics, saves
// the link and broadcasts it to the rest of the team.
func (s *SharedLinkService) AddSharedLink(
	creator *users_models.User,
	workspaceID uuid.UUID,
	request *workspaces_dto.AddLinkRequestDTO,
) (*workspaces_models.SharedLink, error) {
	if _, err := s.workspaceService.GetWorkspaceForMember(workspaceID, creator.ID); err != nil {
		return nil, err
	}

	title, err := sanitize_utils.CleanAndValidate(request.Title, "title", maxLinkTitleLength)
	if err != nil {
		return nil, err
	}

	if err := urlcheck.ValidateURL(request.URL); err != nil {
		return nil, err
	}

	description, err := sanitize_utils.CleanOptional(
		request.Description,
		"description",
		maxLinkDescriptionLength,
	)
	if err != nil {
		return nil, err
	}

	link := &workspaces_models.SharedLink{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		CreatorID:   creator.ID,
		Title:       title,
		URL:         request.URL,
		Description: description,
	}

	if err := s.linkRepository.CreateLink(link); err != nil {
		return nil, fmt.Errorf("failed to save link: %w", err)
	}

	s.stateSyncService.BroadcastUpdate(
		workspaceID,
		realtime.StateUpdate{
			EntityType: realtime.EntityTypeLink,
			Action:     realtime.ActionCreate,
			Data:       link,
		},
		&creator.ID,
	)

	return link, nil
}

func (s *SharedLinkService) GetSharedLinks(
	userID, workspaceID uuid.UUID,
) ([]*workspaces_models.SharedLink, error) {
	if _, err := s.workspaceService.GetWorkspaceForMember(workspaceID, userID); err != nil {
		return nil, err
	}

	links, err := s.linkRepository.GetLinksByWorkspace(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}

	return links, nil
}

// DeleteSharedLink removes a link. Only the member who shared it may
// delete it.
func (s *SharedLinkService) DeleteSharedLink(
	userID, workspaceID, linkID uuid.UUID,
) error {
	if _, err := s.workspaceService.GetWorkspaceForMember(workspaceID, userID); err != nil {
		return err
	}

	link, err := s.linkRepository.GetLinkByID(linkID)
	if err != nil {
		return fmt.Errorf("failed to get link: %w", err)
	}
	if link == nil || link.WorkspaceID != workspaceID {
		return errs.NotFound("link not found")
	}

	if link.CreatorID != userID {
		return errs.Unauthorized("only the link creator can delete it")
	}

	if err := s.linkRepository.DeleteLink(linkID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	s.stateSyncService.BroadcastUpdate(
		workspaceID,
		realtime.StateUpdate{
			EntityType: realtime.EntityTypeLink,
			Action:     realtime.ActionDelete,
			Data:       link,
		},
		&userID,
	)

	return nil
}
