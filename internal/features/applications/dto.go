package applications

import "builderspace-backend/internal/features/posts"

type ApplyRequestDTO struct {
	PostType posts.PostType `json:"postType" binding:"required"`
	PostID   string         `json:"postId"   binding:"required"`
	Message  string         `json:"message"`
}

type ReviewApplicationRequestDTO struct {
	Status ApplicationStatus `json:"status" binding:"required"`
}

type SendScreeningMessageRequestDTO struct {
	Content string `json:"content" binding:"required"`
}
