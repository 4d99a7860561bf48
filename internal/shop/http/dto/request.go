// Package dto provides data transfer objects for the store-management HTTP
// layer.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/pointward/gateway/internal/validation"
)

// LoginRequest contains shop login credentials.
type LoginRequest struct {
	AccountName string `json:"account_name" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.AccountName, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Password, validation.Required),
	)
}

// CreateCashierRequest contains the new cashier account's credentials. The
// shop binding comes from the caller's token, never from the body.
type CreateCashierRequest struct {
	AccountName string `json:"account_name" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// Validate checks if the create cashier request is valid.
func (r *CreateCashierRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.AccountName, validation.Required, customValidation.NotBlank, validation.Length(1, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 128)),
	)
}
