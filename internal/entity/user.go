package entity

type User struct {
	Email    string `json:"email"`
	Password string `json:"password"` // In production, you'd store hashed passwords.
	// CreatedAt is the RFC3339 signup time.
	CreatedAt string `json:"timestamp"`
}
