package contracts

import "github.com/EduardoCSampaio/financas-app/internal/domain/user"

type UserCreateRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UserUpdateNameRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UserUpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type UserCreateResponse struct {
	Message string     `json:"message"`
	User    *user.User `json:"user"`
}

type UserSingleResponse struct {
	User *user.User `json:"user"`
}
