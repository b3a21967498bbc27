package dto

import authdomain "taskmanager-api/internal/auth/domain"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string           `json:"token"`
	User  *authdomain.User `json:"user"`
}
