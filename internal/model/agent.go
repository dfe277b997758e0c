package model

import "time"

// DeliveryAgent - курьер. Неактивные агенты не попадают в список
// кандидатов на назначение.
type DeliveryAgent struct {
	ID         string    `json:"id" db:"id"`
	FullName   string    `json:"fullName" db:"full_name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	EmployeeID string    `json:"employeeId" db:"employee_id"`
	Region     string    `json:"region" db:"region"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

type AgentInput struct {
	FullName   string `json:"fullName" validate:"required,max=255"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"required,max=32"`
	EmployeeID string `json:"employeeId" validate:"required,max=64"`
	Region     string `json:"region" validate:"required,max=64"`
	IsActive   *bool  `json:"isActive"`
}

// NewAgent собирает агента из входных данных. По умолчанию агент активен.
func NewAgent(in AgentInput) DeliveryAgent {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return DeliveryAgent{
		FullName:   in.FullName,
		Email:      in.Email,
		Phone:      in.Phone,
		EmployeeID: in.EmployeeID,
		Region:     in.Region,
		IsActive:   active,
	}
}

type AgentPatch struct {
	FullName   *string `json:"fullName" validate:"omitnil,min=1,max=255"`
	Email      *string `json:"email" validate:"omitnil,omitempty,email"`
	Phone      *string `json:"phone" validate:"omitnil,min=1,max=32"`
	EmployeeID *string `json:"employeeId" validate:"omitnil,min=1,max=64"`
	Region     *string `json:"region" validate:"omitnil,min=1,max=64"`
	IsActive   *bool   `json:"isActive"`
}
