package applications

import (
	"builderspace-backend/internal/features/posts"
	"builderspace-backend/internal/features/realtime"
)

var applicationRepository = &ApplicationRepository{}
var screeningMessageRepository = &ScreeningMessageRepository{}

var applicationService = &ApplicationService{
	applicationRepository:      applicationRepository,
	screeningMessageRepository: screeningMessageRepository,
	postService:                posts.GetPostService(),
	connectionRegistry:         realtime.GetConnectionRegistry(),
}

var applicationController = &ApplicationController{
	applicationService,
}

func GetApplicationService() *ApplicationService {
	return applicationService
}

func GetApplicationController() *ApplicationController {
	return applicationController
}
