package service

import (
	"context"

	"courier_oms/internal/model"
	"courier_oms/internal/validator"
)

// ListCustomers возвращает всех клиентов или, если задан query, результаты поиска.
func (s *OrderService) ListCustomers(ctx context.Context, query string) ([]model.Customer, error) {
	if query != "" {
		return s.storage.SearchCustomers(ctx, query)
	}
	return s.storage.ListCustomers(ctx)
}

func (s *OrderService) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	return s.storage.GetCustomer(ctx, id)
}

func (s *OrderService) CreateCustomer(ctx context.Context, in *model.CustomerInput) (*model.Customer, error) {
	if err := validator.ValidateStruct(in); err != nil {
		return nil, err
	}

	now := s.now()
	customer := &model.Customer{
		ID:        s.newID(),
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		Province:  in.Province,
		ZipCode:   in.ZipCode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.storage.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *OrderService) UpdateCustomer(ctx context.Context, id string, patch *model.CustomerPatch) (*model.Customer, error) {
	if err := validator.ValidateStruct(patch); err != nil {
		return nil, err
	}
	return s.storage.UpdateCustomer(ctx, id, patch)
}

func (s *OrderService) DeleteCustomer(ctx context.Context, id string) error {
	return s.storage.DeleteCustomer(ctx, id)
}

// ListAgents возвращает всех агентов или только активных (по имени).
func (s *OrderService) ListAgents(ctx context.Context, activeOnly bool) ([]model.DeliveryAgent, error) {
	if activeOnly {
		return s.storage.ListActiveAgents(ctx)
	}
	return s.storage.ListAgents(ctx)
}

func (s *OrderService) GetAgent(ctx context.Context, id string) (*model.DeliveryAgent, error) {
	return s.storage.GetAgent(ctx, id)
}

func (s *OrderService) CreateAgent(ctx context.Context, in *model.AgentInput) (*model.DeliveryAgent, error) {
	if err := validator.ValidateStruct(in); err != nil {
		return nil, err
	}

	agent := model.NewAgent(*in)
	agent.ID = s.newID()
	agent.CreatedAt = s.now()
	agent.UpdatedAt = agent.CreatedAt

	if err := s.storage.CreateAgent(ctx, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (s *OrderService) UpdateAgent(ctx context.Context, id string, patch *model.AgentPatch) (*model.DeliveryAgent, error) {
	if err := validator.ValidateStruct(patch); err != nil {
		return nil, err
	}
	return s.storage.UpdateAgent(ctx, id, patch)
}

// DeleteAgent удаляет агента; его заказы остаются без назначения.
func (s *OrderService) DeleteAgent(ctx context.Context, id string) error {
	return s.storage.DeleteAgent(ctx, id)
}
