package applications

import (
	"fmt"
	"time"

	"builderspace-backend/internal/features/posts"
	"builderspace-backend/internal/features/realtime"
	users_models "builderspace-backend/internal/features/users/models"
	"builderspace-backend/internal/util/errs"
	sanitize_utils "builderspace-backend/internal/util/sanitize"

	"github.com/google/uuid"
)

const (
	maxApplicationMessageLength = 2000
	maxScreeningMessageLength   = 5000
)

type ApplicationService struct {
	applicationRepository      *ApplicationRepository
	screeningMessageRepository *ScreeningMessageRepository
	postService                *posts.PostService
	connectionRegistry         *realtime.ConnectionRegistry
}

// Apply submits an application to a startup or hackathon. Owners cannot
// apply to their own post, and a user can apply to a post at most once.
func (s *ApplicationService) Apply(
	applicant *users_models.User,
	request *ApplyRequestDTO,
) (*Application, error) {
	postID, err := uuid.Parse(request.PostID)
	if err != nil {
		return nil, errs.Validation("invalid post ID")
	}

	if !request.PostType.IsValid() {
		return nil, errs.Validation("invalid post type")
	}

	post, err := s.postService.GetPost(request.PostType, postID)
	if err != nil {
		return nil, err
	}

	if post.OwnerID == applicant.ID {
		return nil, errs.Validation("cannot apply to your own post")
	}

	message, err := sanitize_utils.CleanOptional(
		request.Message,
		"message",
		maxApplicationMessageLength,
	)
	if err != nil {
		return nil, err
	}

	application := &Application{
		ID:          uuid.New(),
		ApplicantID: applicant.ID,
		PostType:    post.Type,
		PostID:      post.ID,
		Message:     message,
		Status:      ApplicationStatusPending,
	}

	if err := s.applicationRepository.CreateApplication(application); err != nil {
		if errs.IsKind(err, errs.KindConflict) {
			return nil, errs.Conflict("you have already applied to this post")
		}

		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return application, nil
}

func (s *ApplicationService) GetApplicationByID(
	applicationID uuid.UUID,
) (*Application, error) {
	application, err := s.applicationRepository.GetApplicationByID(applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if application == nil {
		return nil, errs.NotFound("application not found")
	}

	return application, nil
}

// GetApplicationsForPost lists a post's applications. Only the post owner
// may see them.
func (s *ApplicationService) GetApplicationsForPost(
	userID uuid.UUID,
	postType posts.PostType,
	postID uuid.UUID,
) ([]*Application, error) {
	post, err := s.postService.GetPost(postType, postID)
	if err != nil {
		return nil, err
	}

	if post.OwnerID != userID {
		return nil, errs.Unauthorized("only the post owner can view applications")
	}

	return s.applicationRepository.GetApplicationsByPost(postType, postID)
}

func (s *ApplicationService) GetMyApplications(
	userID uuid.UUID,
) ([]*Application, error) {
	return s.applicationRepository.GetApplicationsByApplicant(userID)
}

// ReviewApplication accepts or rejects a pending application. Only the post
// owner may review, and a review decision is final.
func (s *ApplicationService) ReviewApplication(
	reviewerID, applicationID uuid.UUID,
	request *ReviewApplicationRequestDTO,
) (*Application, error) {
	if request.Status != ApplicationStatusAccepted && request.Status != ApplicationStatusRejected {
		return nil, errs.Validation("status must be ACCEPTED or REJECTED")
	}

	application, err := s.applicationRepository.GetApplicationByID(applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if application == nil {
		return nil, errs.NotFound("application not found")
	}

	post, err := s.postService.GetPost(application.PostType, application.PostID)
	if err != nil {
		return nil, err
	}

	if post.OwnerID != reviewerID {
		return nil, errs.Unauthorized("only the post owner can review applications")
	}

	if application.Status != ApplicationStatusPending {
		return nil, errs.Conflict("application has already been reviewed")
	}

	now := time.Now().UTC()
	application.Status = request.Status
	application.ReviewedAt = &now

	if err := s.applicationRepository.UpdateApplication(application); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	return application, nil
}

// SendScreeningMessage posts a message in the private applicant/owner chat
// and pushes it to the other party's open connections.
func (s *ApplicationService) SendScreeningMessage(
	sender *users_models.User,
	applicationID uuid.UUID,
	request *SendScreeningMessageRequestDTO,
) (*ScreeningMessage, error) {
	application, counterpartyID, err := s.getApplicationForParticipant(applicationID, sender.ID)
	if err != nil {
		return nil, err
	}

	content, err := sanitize_utils.CleanAndValidate(
		request.Content,
		"message",
		maxScreeningMessageLength,
	)
	if err != nil {
		return nil, err
	}

	message := &ScreeningMessage{
		ID:            uuid.New(),
		ApplicationID: application.ID,
		SenderID:      sender.ID,
		Content:       content,
	}

	if err := s.screeningMessageRepository.CreateMessage(message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	s.connectionRegistry.SendToUser(
		counterpartyID,
		realtime.NewOutboundMessage(realtime.MessageTypeScreeningMessage, message, &sender.ID),
	)

	return message, nil
}

// GetScreeningMessages returns the chat history, oldest first. Only the
// applicant and the post owner may read it.
func (s *ApplicationService) GetScreeningMessages(
	userID, applicationID uuid.UUID,
) ([]*ScreeningMessage, error) {
	application, _, err := s.getApplicationForParticipant(applicationID, userID)
	if err != nil {
		return nil, err
	}

	return s.screeningMessageRepository.GetMessagesByApplication(application.ID)
}

// getApplicationForParticipant resolves an application and verifies the user
// is one of its two parties, returning the other party's ID.
func (s *ApplicationService) getApplicationForParticipant(
	applicationID, userID uuid.UUID,
) (*Application, uuid.UUID, error) {
	application, err := s.applicationRepository.GetApplicationByID(applicationID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("failed to get application: %w", err)
	}
	if application == nil {
		return nil, uuid.Nil, errs.NotFound("application not found")
	}

	post, err := s.postService.GetPost(application.PostType, application.PostID)
	if err != nil {
		return nil, uuid.Nil, err
	}

	switch userID {
	case application.ApplicantID:
		return application, post.OwnerID, nil
	case post.OwnerID:
		return application, application.ApplicantID, nil
	default:
		return nil, uuid.Nil, errs.Unauthorized("user is not part of this screening chat")
	}
}
