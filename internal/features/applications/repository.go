package applications

import (
	"time"

	"builderspace-backend/internal/features/posts"
	"builderspace-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository struct{}

func (r *ApplicationRepository) CreateApplication(application *Application) error {
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}

	if application.CreatedAt.IsZero() {
		application.CreatedAt = time.Now().UTC()
	}

	return storage.TranslateError(storage.GetDb().Create(application).Error)
}

func (r *ApplicationRepository) GetApplicationByID(
	applicationID uuid.UUID,
) (*Application, error) {
	var application Application

	if err := storage.GetDb().
		Where("id = ?", applicationID).
		First(&application).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &application, nil
}

func (r *ApplicationRepository) GetApplicationByApplicantAndPost(
	applicantID uuid.UUID,
	postType posts.PostType,
	postID uuid.UUID,
) (*Application, error) {
	var application Application

	if err := storage.GetDb().
		Where("applicant_id = ? AND post_type = ? AND post_id = ?", applicantID, postType, postID).
		First(&application).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &application, nil
}

func (r *ApplicationRepository) GetApplicationsByPost(
	postType posts.PostType,
	postID uuid.UUID,
) ([]*Application, error) {
	var applications []*Application

	err := storage.GetDb().
		Where("post_type = ? AND post_id = ?", postType, postID).
		Order("created_at DESC").
		Find(&applications).Error

	return applications, err
}

func (r *ApplicationRepository) GetApplicationsByApplicant(
	applicantID uuid.UUID,
) ([]*Application, error) {
	var applications []*Application

	err := storage.GetDb().
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error

	return applications, err
}

func (r *ApplicationRepository) UpdateApplication(application *Application) error {
	return storage.TranslateError(storage.GetDb().Save(application).Error)
}

type ScreeningMessageRepository struct{}

func (r *ScreeningMessageRepository) CreateMessage(message *ScreeningMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	return storage.TranslateError(storage.GetDb().Create(message).Error)
}

func (r *ScreeningMessageRepository) GetMessagesByApplication(
	applicationID uuid.UUID,
) ([]*ScreeningMessage, error) {
	var messages []*ScreeningMessage

	err := storage.GetDb().
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&messages).Error

	return messages, err
}
