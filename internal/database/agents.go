package database

import (
	"context"
	"time"

	"courier_oms/internal/model"
)

const agentColumns = `id, full_name, email, phone, employee_id, region, is_active, created_at, updated_at`

func (s *postgresStorage) ListAgents(ctx context.Context) ([]model.DeliveryAgent, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListAgents")
	defer span.End()

	agents := []model.DeliveryAgent{}
	if err := s.db.SelectContext(ctx, &agents, `SELECT `+agentColumns+` FROM delivery_agents ORDER BY created_at DESC`); err != nil {
		return nil, fail("list_agents", "ошибка получения агентов", err)
	}
	return agents, nil
}

// ListActiveAgents возвращает кандидатов на назначение, по имени.
func (s *postgresStorage) ListActiveAgents(ctx context.Context) ([]model.DeliveryAgent, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListActiveAgents")
	defer span.End()

	agents := []model.DeliveryAgent{}
	if err := s.db.SelectContext(ctx, &agents, `SELECT `+agentColumns+` FROM delivery_agents WHERE is_active = TRUE ORDER BY full_name`); err != nil {
		return nil, fail("list_active_agents", "ошибка получения активных агентов", err)
	}
	return agents, nil
}

func (s *postgresStorage) GetAgent(ctx context.Context, id string) (*model.DeliveryAgent, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetAgent")
	defer span.End()

	var agent model.DeliveryAgent
	if err := s.db.GetContext(ctx, &agent, `SELECT `+agentColumns+` FROM delivery_agents WHERE id = $1`, id); err != nil {
		return nil, fail("get_agent", "не удалось получить агента", err)
	}
	return &agent, nil
}

func (s *postgresStorage) CreateAgent(ctx context.Context, a *model.DeliveryAgent) error {
	ctx, span := s.tracer.Start(ctx, "DB.CreateAgent")
	defer span.End()

	query := `INSERT INTO delivery_agents (id, full_name, email, phone, employee_id, region, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := s.db.ExecContext(ctx, query, a.ID, a.FullName, a.Email, a.Phone, a.EmployeeID, a.Region, a.IsActive, a.CreatedAt, a.UpdatedAt); err != nil {
		return fail("create_agent", "не удалось создать агента", err)
	}
	return nil
}

func (s *postgresStorage) UpdateAgent(ctx context.Context, id string, p *model.AgentPatch) (*model.DeliveryAgent, error) {
	ctx, span := s.tracer.Start(ctx, "DB.UpdateAgent")
	defer span.End()

	b := &updateBuilder{}
	if p.FullName != nil {
		b.set("full_name", *p.FullName)
	}
	if p.Email != nil {
		b.set("email", *p.Email)
	}
	if p.Phone != nil {
		b.set("phone", *p.Phone)
	}
	if p.EmployeeID != nil {
		b.set("employee_id", *p.EmployeeID)
	}
	if p.Region != nil {
		b.set("region", *p.Region)
	}
	if p.IsActive != nil {
		b.set("is_active", *p.IsActive)
	}
	b.set("updated_at", time.Now().UTC())
	query, args := b.query("delivery_agents", id, agentColumns)

	var agent model.DeliveryAgent
	if err := s.db.GetContext(ctx, &agent, query, args...); err != nil {
		return nil, fail("update_agent", "не удалось обновить агента", err)
	}
	return &agent, nil
}

// DeleteAgent удаляет агента. Назначенные ему заказы остаются,
// ссылка обнуляется внешним ключом ON DELETE SET NULL.
func (s *postgresStorage) DeleteAgent(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "DB.DeleteAgent")
	defer span.End()

	res, err := s.db.ExecContext(ctx, `DELETE FROM delivery_agents WHERE id = $1`, id)
	if err != nil {
		return fail("delete_agent", "не удалось удалить агента", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
