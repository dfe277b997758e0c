package model

import "time"

type Customer struct {
	ID        string    `json:"id" db:"id"`
	FullName  string    `json:"fullName" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	City      string    `json:"city" db:"city"`
	Province  string    `json:"province" db:"province"`
	ZipCode   string    `json:"zipCode" db:"zip_code"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type CustomerInput struct {
	FullName string `json:"fullName" validate:"required,max=255"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"max=32"`
	Address  string `json:"address"`
	City     string `json:"city" validate:"max=128"`
	Province string `json:"province" validate:"max=128"`
	ZipCode  string `json:"zipCode" validate:"max=16"`
}

// CustomerPatch - частичное обновление клиента.
type CustomerPatch struct {
	FullName *string `json:"fullName" validate:"omitnil,min=1,max=255"`
	Email    *string `json:"email" validate:"omitnil,omitempty,email"`
	Phone    *string `json:"phone" validate:"omitnil,max=32"`
	Address  *string `json:"address"`
	City     *string `json:"city" validate:"omitnil,max=128"`
	Province *string `json:"province" validate:"omitnil,max=128"`
	ZipCode  *string `json:"zipCode" validate:"omitnil,max=16"`
}
