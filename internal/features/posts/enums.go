package posts

type PostType string

const (
	PostTypeStartup   PostType = "STARTUP"
	PostTypeHackathon PostType = "HACKATHON"
)

func (t PostType) IsValid() bool {
	switch t {
	case PostTypeStartup, PostTypeHackathon:
		return true
	default:
		return false
	}
}
