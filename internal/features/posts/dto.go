package posts

import "time"

type CreateStartupRequestDTO struct {
	Name        string `json:"name"        binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Stage       string `json:"stage"       binding:"max=100"`
}

type CreateHackathonRequestDTO struct {
	Name        string    `json:"name"        binding:"required,min=1,max=200"`
	Description string    `json:"description" binding:"max=2000"`
	Location    string    `json:"location"    binding:"max=200"`
	StartsAt    time.Time `json:"startsAt"`
}
