// Package dto provides data transfer objects for the customer-facing HTTP
// layer.
package dto

import (
	validation "github.com/jellydator/validation"

	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	customValidation "github.com/pointward/gateway/internal/validation"
)

// LoginRequest contains customer login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password, validation.Required),
	)
}

// CreateUserRequest contains a registration request. UID is optional and
// links the account to a temporary identity allocated during face enrollment.
type CreateUserRequest struct {
	UID         string `json:"uid"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	Nationality string `json:"nationality" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// Validate checks if the create user request is valid.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UID, customValidation.UUIDString),
		validation.Field(&r.FirstName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.LastName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
			validation.Length(5, 255),
		),
		validation.Field(&r.DateOfBirth,
			validation.Required,
			validation.Date("2006-01-02"),
		),
		validation.Field(&r.Gender, validation.Required),
		validation.Field(&r.Nationality, validation.Required),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(8, 128),
		),
	)
}

// ToCreateUserParams converts the request to backend parameters.
func (r *CreateUserRequest) ToCreateUserParams() identityBackend.CreateUserParams {
	return identityBackend.CreateUserParams{
		UID:         r.UID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		DateOfBirth: r.DateOfBirth,
		Gender:      r.Gender,
		Nationality: r.Nationality,
		Password:    r.Password,
	}
}
