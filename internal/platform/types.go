package platform

// Channel is a postable community channel.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserInfo is the platform profile of an authenticated member.
type UserInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
