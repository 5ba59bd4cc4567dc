package dto

// RegisterDTO is the request body for account registration.
type RegisterDTO struct {
	Username   string `json:"username" binding:"required"`
	Credential string `json:"credential" binding:"required"`
	Role       string `json:"role" binding:"required,oneof=teacher student"`
}

// LoginDTO is the request body for authentication.
type LoginDTO struct {
	Username   string `json:"username" binding:"required"`
	Credential string `json:"credential" binding:"required"`
}

// UserDTO is the public view of an account. The stored credential never
// leaves the service layer.
type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
