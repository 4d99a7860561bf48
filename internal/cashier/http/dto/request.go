// Package dto provides data transfer objects for the register-side HTTP
// layer.
package dto

import (
	validation "github.com/jellydator/validation"

	cashierDomain "github.com/pointward/gateway/internal/cashier/domain"
	customValidation "github.com/pointward/gateway/internal/validation"
)

// LoginRequest contains cashier login credentials.
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

// OrderLineRequest is one requested item with its quantity.
type OrderLineRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// Validate checks if the order line is valid.
func (r OrderLineRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ItemID, validation.Required, customValidation.UUIDString),
		validation.Field(&r.Quantity, customValidation.PositiveQuantity),
	)
}

// CreateTransactionRequest contains the ordered item list for one sale. The
// buyer is identified by the customer token header, never by the body.
type CreateTransactionRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required"`
}

// Validate checks if the transaction request is valid.
func (r *CreateTransactionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Items, validation.Required, validation.Length(1, 0)),
	)
}

// ToOrderLines converts the request items to domain order lines, preserving
// order.
func (r *CreateTransactionRequest) ToOrderLines() []cashierDomain.OrderLine {
	lines := make([]cashierDomain.OrderLine, len(r.Items))
	for i, item := range r.Items {
		lines[i] = cashierDomain.OrderLine{ItemID: item.ItemID, Quantity: item.Quantity}
	}
	return lines
}
