package domain

// User is the authenticated account or a comment/blog author.
type User struct {
	ID        string
	Username  string
	Email     string
	Bio       string
	AvatarURL string
	IsAdmin   bool
}
