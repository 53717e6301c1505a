package dto

// ProfileDTO는 /api/social/profile/{username} 응답 스키마를 나타낸다.
type ProfileDTO struct {
	Username    string `json:"username" example:"alice"`
	Name        string `json:"name" example:"Alice A"`
	AvatarURL   string `json:"avatar_url" example:"https://pbs.twimg.com/profile_images/1/a.jpg"`
	Description string `json:"description" example:"bio"`
}
