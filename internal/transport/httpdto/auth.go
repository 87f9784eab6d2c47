package httpdto

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse keeps the adminToken key the published API uses for every
// role; the role lives inside the token itself.
type LoginResponse struct {
	AdminToken string `json:"adminToken"`
}
