package auth

type LoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	LoginID     string `json:"login_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}
