package workspaces_services

import (
	"fmt"

	"builderspace-backend/internal/features/audit_logs"
	"builderspace-backend/internal/features/posts"
	workspaces_interfaces "builderspace-backend/internal/features/workspaces/interfaces"
	workspaces_models "builderspace-backend/internal/features/workspaces/models"
	workspaces_repositories "builderspace-backend/internal/features/workspaces/repositories"
	"builderspace-backend/internal/util/errs"

	"github.com/google/uuid"
)

type WorkspaceService struct {
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	auditLogService     *audit_logs.AuditLogService
	membershipSource    workspaces_interfaces.MembershipSource
}

func (s *WorkspaceService) SetMembershipSource(
	source workspaces_interfaces.MembershipSource,
) {
	s.membershipSource = source
}

// EnsureWorkspaceForPost returns the post's workspace, creating it on first
// use. Creation is idempotent: a concurrent insert losing the unique-index
// race falls back to the winner's row.
func (s *WorkspaceService) EnsureWorkspaceForPost(
	post *posts.PostInfo,
) (*workspaces_models.Workspace, error) {
	existing, err := s.workspaceRepository.GetWorkspaceByPost(post.Type, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up workspace: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	workspace := &workspaces_models.Workspace{
		ID:       uuid.New(),
		PostType: post.Type,
		PostID:   post.ID,
		Name:     fmt.Sprintf("%s Workspace", post.Name),
	}

	if err := s.workspaceRepository.CreateWorkspace(workspace); err != nil {
		if errs.IsKind(err, errs.KindConflict) {
			winner, getErr := s.workspaceRepository.GetWorkspaceByPost(post.Type, post.ID)
			if getErr != nil || winner == nil {
				return nil, fmt.Errorf("failed to resolve workspace after conflict: %w", err)
			}
			return winner, nil
		}

		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace created: %s", workspace.Name),
		nil,
		&workspace.ID,
	)

	return workspace, nil
}

// GetWorkspaceForMember resolves a workspace and enforces the membership
// gate. Not-found and not-a-member are reported distinctly.
func (s *WorkspaceService) GetWorkspaceForMember(
	workspaceID, userID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return nil, errs.NotFound("workspace not found")
	}

	isMember, err := s.membershipSource.IsTeamMember(workspace.PostType, workspace.PostID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, errs.Unauthorized("user is not a team member")
	}

	return workspace, nil
}

// GetUserWorkspaces lists the workspaces of every post the user is a team
// member of.
func (s *WorkspaceService) GetUserWorkspaces(
	userID uuid.UUID,
) ([]*workspaces_models.Workspace, error) {
	refs, err := s.membershipSource.GetUserPostRefs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user teams: %w", err)
	}

	workspaces := make([]*workspaces_models.Workspace, 0, len(refs))
	for _, ref := range refs {
		workspace, err := s.workspaceRepository.GetWorkspaceByPost(ref.PostType, ref.PostID)
		if err != nil {
			return nil, fmt.Errorf("failed to get workspace: %w", err)
		}
		if workspace != nil {
			workspaces = append(workspaces, workspace)
		}
	}

	return workspaces, nil
}

// GetWorkspaceMembers returns the team member list behind a workspace,
// membership-gated like every other read.
func (s *WorkspaceService) GetWorkspaceMembers(
	workspaceID, userID uuid.UUID,
) ([]workspaces_interfaces.TeamMemberInfo, error) {
	workspace, err := s.GetWorkspaceForMember(workspaceID, userID)
	if err != nil {
		return nil, err
	}

	return s.membershipSource.GetTeamMembers(workspace.PostType, workspace.PostID)
}
