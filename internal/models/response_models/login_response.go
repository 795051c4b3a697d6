package response_models

type LoginUser struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	IsFirstLogin bool   `json:"isFirstLogin"`
}

type LoginResponse struct {
	User    LoginUser `json:"user"`
	Message string    `json:"message,omitempty"`
}
