package response

import "sweethomes-api/internal/pkg/jwt"

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func FromClaims(claims *jwt.Claims) UserResponse {
	return UserResponse{
		Name:  claims.Name,
		Email: claims.Email,
		Phone: claims.Phone,
	}
}
