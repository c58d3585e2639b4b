package posts

var postRepository = &PostRepository{}

var postService = &PostService{
	postRepository,
	nil,
}

var postController = &PostController{
	postService,
}

func GetPostService() *PostService {
	return postService
}

func GetPostController() *PostController {
	return postController
}
