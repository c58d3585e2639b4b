package teams

import (
	"fmt"

	"builderspace-backend/internal/features/applications"
	"builderspace-backend/internal/features/audit_logs"
	"builderspace-backend/internal/features/posts"
	"builderspace-backend/internal/features/realtime"
	users_models "builderspace-backend/internal/features/users/models"
	users_repositories "builderspace-backend/internal/features/users/repositories"
	workspaces_interfaces "builderspace-backend/internal/features/workspaces/interfaces"
	workspaces_services "builderspace-backend/internal/features/workspaces/services"
	"builderspace-backend/internal/util/errs"

	"github.com/google/uuid"
)

type TeamService struct {
	teamMemberRepository *TeamMemberRepository
	userRepository       *users_repositories.UserRepository
	applicationService   *applications.ApplicationService
	postService          *posts.PostService
	workspaceService     *workspaces_services.WorkspaceService
	stateSyncService     *realtime.StateSyncService
	auditLogService      *audit_logs.AuditLogService
}

// OnPostCreated seeds the founder membership and the post's workspace the
// moment a startup or hackathon is published.
func (s *TeamService) OnPostCreated(post *posts.PostInfo, creator *users_models.User) error {
	member := &TeamMember{
		ID:       uuid.New(),
		UserID:   creator.ID,
		PostType: post.Type,
		PostID:   post.ID,
		Role:     TeamRoleFounder,
	}

	if err := s.teamMemberRepository.CreateTeamMember(member); err != nil {
		return fmt.Errorf("failed to create founder membership: %w", err)
	}

	if _, err := s.workspaceService.EnsureWorkspaceForPost(post); err != nil {
		return err
	}

	return nil
}

// InviteToTeam turns an accepted application into a team membership. Only
// the post owner can invite, and only applicants whose application was
// accepted can join.
func (s *TeamService) InviteToTeam(
	inviterID uuid.UUID,
	request *InviteToTeamRequestDTO,
) (*TeamMember, error) {
	applicationID, err := uuid.Parse(request.ApplicationID)
	if err != nil {
		return nil, errs.Validation("invalid application ID")
	}

	application, err := s.applicationService.GetApplicationByID(applicationID)
	if err != nil {
		return nil, err
	}

	post, err := s.postService.GetPost(application.PostType, application.PostID)
	if err != nil {
		return nil, err
	}

	if post.OwnerID != inviterID {
		return nil, errs.Unauthorized("only the post owner can invite team members")
	}

	if application.Status != applications.ApplicationStatusAccepted {
		return nil, errs.Validation("only accepted applications can be invited")
	}

	existing, err := s.teamMemberRepository.GetTeamMember(
		post.Type,
		post.ID,
		application.ApplicantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, errs.Conflict("user is already a team member")
	}

	member := &TeamMember{
		ID:       uuid.New(),
		UserID:   application.ApplicantID,
		PostType: post.Type,
		PostID:   post.ID,
		Role:     TeamRoleMember,
	}

	if err := s.teamMemberRepository.CreateTeamMember(member); err != nil {
		if errs.IsKind(err, errs.KindConflict) {
			return nil, errs.Conflict("user is already a team member")
		}

		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	workspace, err := s.workspaceService.EnsureWorkspaceForPost(post)
	if err != nil {
		return nil, err
	}

	joined, err := s.memberInfo(member)
	if err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Team member joined: %s", joined.Name),
		&member.UserID,
		&workspace.ID,
	)

	s.stateSyncService.BroadcastUpdate(
		workspace.ID,
		realtime.StateUpdate{
			EntityType: realtime.EntityTypeMember,
			Action:     realtime.ActionCreate,
			Data:       joined,
		},
		nil,
	)

	return member, nil
}

// RemoveMember removes a non-founder member from the team. Only the founder
// may remove members, and the founder row itself is immutable.
func (s *TeamService) RemoveMember(
	removerID uuid.UUID,
	postType posts.PostType,
	postID, memberUserID uuid.UUID,
) error {
	remover, err := s.teamMemberRepository.GetTeamMember(postType, postID, removerID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if remover == nil || remover.Role != TeamRoleFounder {
		return errs.Unauthorized("only the founder can remove team members")
	}

	member, err := s.teamMemberRepository.GetTeamMember(postType, postID, memberUserID)
	if err != nil {
		return fmt.Errorf("failed to get team member: %w", err)
	}
	if member == nil {
		return errs.NotFound("team member not found")
	}

	if member.Role == TeamRoleFounder {
		return errs.Validation("the founder cannot be removed from the team")
	}

	if err := s.teamMemberRepository.DeleteTeamMember(member.ID); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}

	return nil
}

func (s *TeamService) GetTeam(
	userID uuid.UUID,
	postType posts.PostType,
	postID uuid.UUID,
) ([]workspaces_interfaces.TeamMemberInfo, error) {
	isMember, err := s.IsTeamMember(postType, postID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errs.Unauthorized("user is not a team member")
	}

	return s.GetTeamMembers(postType, postID)
}

// IsTeamMember implements workspaces_interfaces.MembershipSource.
func (s *TeamService) IsTeamMember(
	postType posts.PostType,
	postID, userID uuid.UUID,
) (bool, error) {
	member, err := s.teamMemberRepository.GetTeamMember(postType, postID, userID)
	if err != nil {
		return false, err
	}

	return member != nil, nil
}

// GetTeamMemberIDs implements workspaces_interfaces.MembershipSource.
func (s *TeamService) GetTeamMemberIDs(
	postType posts.PostType,
	postID uuid.UUID,
) ([]uuid.UUID, error) {
	members, err := s.teamMemberRepository.GetTeamMembersByPost(postType, postID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.UserID)
	}

	return ids, nil
}

// GetTeamMembers implements workspaces_interfaces.MembershipSource.
func (s *TeamService) GetTeamMembers(
	postType posts.PostType,
	postID uuid.UUID,
) ([]workspaces_interfaces.TeamMemberInfo, error) {
	members, err := s.teamMemberRepository.GetTeamMembersByPost(postType, postID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.UserID)
	}

	users, err := s.userRepository.GetUsersByIDs(ids)
	if err != nil {
		return nil, err
	}

	namesByID := make(map[uuid.UUID]string, len(users))
	for _, user := range users {
		namesByID[user.ID] = user.Name
	}

	infos := make([]workspaces_interfaces.TeamMemberInfo, 0, len(members))
	for _, member := range members {
		infos = append(infos, workspaces_interfaces.TeamMemberInfo{
			UserID:   member.UserID,
			Name:     namesByID[member.UserID],
			Role:     string(member.Role),
			JoinedAt: member.JoinedAt,
		})
	}

	return infos, nil
}

// GetUserPostRefs implements workspaces_interfaces.MembershipSource.
func (s *TeamService) GetUserPostRefs(
	userID uuid.UUID,
) ([]workspaces_interfaces.PostRef, error) {
	members, err := s.teamMemberRepository.GetTeamMembersByUser(userID)
	if err != nil {
		return nil, err
	}

	refs := make([]workspaces_interfaces.PostRef, 0, len(members))
	for _, member := range members {
		refs = append(refs, workspaces_interfaces.PostRef{
			PostType: member.PostType,
			PostID:   member.PostID,
		})
	}

	return refs, nil
}

func (s *TeamService) memberInfo(
	member *TeamMember,
) (*workspaces_interfaces.TeamMemberInfo, error) {
	user, err := s.userRepository.GetUserByID(member.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &workspaces_interfaces.TeamMemberInfo{
		UserID:   member.UserID,
		Name:     user.Name,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}, nil
}
