package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"courier_oms/internal/model"

	"github.com/jmoiron/sqlx"
)

const orderColumns = `o.id, o.order_number,
	o.sender_name, o.sender_phone, o.sender_email, o.sender_address,
	o.recipient_name, o.recipient_phone, o.recipient_email, o.recipient_address,
	o.package_type, o.weight, o.declared_value, o.description,
	o.service_type, o.from_region, o.to_region,
	o.is_cod, o.cod_amount, o.has_insurance, o.has_sms_notification,
	o.shipping_rate, o.total_amount,
	o.status, o.assigned_agent_id,
	o.created_at, o.updated_at, o.estimated_delivery, o.actual_delivery`

const agentJoinColumns = `a.id "agent.id", a.full_name "agent.full_name", a.email "agent.email",
	a.phone "agent.phone", a.employee_id "agent.employee_id", a.region "agent.region",
	a.is_active "agent.is_active", a.created_at "agent.created_at", a.updated_at "agent.updated_at"`

// joinedAgent - колонки агента из LEFT JOIN, могут быть NULL.
type joinedAgent struct {
	ID         sql.NullString `db:"id"`
	FullName   sql.NullString `db:"full_name"`
	Email      sql.NullString `db:"email"`
	Phone      sql.NullString `db:"phone"`
	EmployeeID sql.NullString `db:"employee_id"`
	Region     sql.NullString `db:"region"`
	IsActive   sql.NullBool   `db:"is_active"`
	CreatedAt  sql.NullTime   `db:"created_at"`
	UpdatedAt  sql.NullTime   `db:"updated_at"`
}

func (a joinedAgent) toModel() *model.DeliveryAgent {
	if !a.ID.Valid {
		return nil
	}
	return &model.DeliveryAgent{
		ID:         a.ID.String,
		FullName:   a.FullName.String,
		Email:      a.Email.String,
		Phone:      a.Phone.String,
		EmployeeID: a.EmployeeID.String,
		Region:     a.Region.String,
		IsActive:   a.IsActive.Bool,
		CreatedAt:  a.CreatedAt.Time,
		UpdatedAt:  a.UpdatedAt.Time,
	}
}

type orderRow struct {
	model.Order
	Agent joinedAgent `db:"agent"`
}

func (r orderRow) toModel() model.OrderWithDetails {
	return model.OrderWithDetails{Order: r.Order, AssignedAgent: r.Agent.toModel()}
}

// CreateOrder сохраняет заказ и его первое событие трекинга в одной транзакции.
// Номер заказа берется из последовательности order_number_seq.
func (s *postgresStorage) CreateOrder(ctx context.Context, order *model.Order, initial *model.TrackingEvent) error {
	ctx, span := s.tracer.Start(ctx, "DB.CreateOrder")
	defer span.End()

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var seq int64
		if err := tx.GetContext(ctx, &seq, `SELECT nextval('order_number_seq')`); err != nil {
			return fmt.Errorf("ошибка получения номера заказа: %w", err)
		}
		order.OrderNumber = model.FormatOrderNumber(order.CreatedAt.Year(), seq)

		orderQuery := `INSERT INTO orders (id, order_number,
			sender_name, sender_phone, sender_email, sender_address,
			recipient_name, recipient_phone, recipient_email, recipient_address,
			package_type, weight, declared_value, description,
			service_type, from_region, to_region,
			is_cod, cod_amount, has_insurance, has_sms_notification,
			shipping_rate, total_amount, status, assigned_agent_id,
			created_at, updated_at, estimated_delivery, actual_delivery)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)`
		if _, err := tx.ExecContext(ctx, orderQuery, order.ID, order.OrderNumber,
			order.SenderName, order.SenderPhone, order.SenderEmail, order.SenderAddress,
			order.RecipientName, order.RecipientPhone, order.RecipientEmail, order.RecipientAddress,
			order.PackageType, order.Weight, order.DeclaredValue, order.Description,
			order.ServiceType, order.FromRegion, order.ToRegion,
			order.IsCOD, order.CODAmount, order.HasInsurance, order.HasSMSNotification,
			order.ShippingRate, order.TotalAmount, order.Status, order.AssignedAgentID,
			order.CreatedAt, order.UpdatedAt, order.EstimatedDelivery, order.ActualDelivery); err != nil {
			return fmt.Errorf("ошибка сохранения заказа: %w", err)
		}

		initial.OrderID = order.ID
		if err := insertTracking(ctx, tx, initial); err != nil {
			return fmt.Errorf("ошибка сохранения события трекинга: %w", err)
		}
		return nil
	})
	if err != nil {
		order.OrderNumber = ""
		return fail("create_order", "не удалось создать заказ", err)
	}
	return nil
}

// UpdateOrder применяет частичное обновление и, если передано событие,
// добавляет его в историю в той же транзакции.
func (s *postgresStorage) UpdateOrder(ctx context.Context, id string, patch *model.OrderPatch, event *model.TrackingEvent) (*model.Order, error) {
	ctx, span := s.tracer.Start(ctx, "DB.UpdateOrder")
	defer span.End()

	b := &updateBuilder{}
	setOrderPatch(b, patch)
	b.set("updated_at", time.Now().UTC())
	query, args := b.query("orders o", id, orderColumns)

	var updated model.Order
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &updated, query, args...); err != nil {
			return err
		}
		if event != nil {
			event.OrderID = id
			if err := insertTracking(ctx, tx, event); err != nil {
				return fmt.Errorf("ошибка сохранения события трекинга: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fail("update_order", "не удалось обновить заказ", err)
	}
	return &updated, nil
}

func setOrderPatch(b *updateBuilder, p *model.OrderPatch) {
	if p.SenderName != nil {
		b.set("sender_name", *p.SenderName)
	}
	if p.SenderPhone != nil {
		b.set("sender_phone", *p.SenderPhone)
	}
	if p.SenderEmail != nil {
		b.set("sender_email", *p.SenderEmail)
	}
	if p.SenderAddress != nil {
		b.set("sender_address", *p.SenderAddress)
	}
	if p.RecipientName != nil {
		b.set("recipient_name", *p.RecipientName)
	}
	if p.RecipientPhone != nil {
		b.set("recipient_phone", *p.RecipientPhone)
	}
	if p.RecipientEmail != nil {
		b.set("recipient_email", *p.RecipientEmail)
	}
	if p.RecipientAddress != nil {
		b.set("recipient_address", *p.RecipientAddress)
	}
	if p.PackageType != nil {
		b.set("package_type", *p.PackageType)
	}
	if p.Weight != nil {
		b.set("weight", *p.Weight)
	}
	if p.DeclaredValue != nil {
		b.set("declared_value", *p.DeclaredValue)
	}
	if p.Description != nil {
		b.set("description", *p.Description)
	}
	if p.ServiceType != nil {
		b.set("service_type", *p.ServiceType)
	}
	if p.FromRegion != nil {
		b.set("from_region", *p.FromRegion)
	}
	if p.ToRegion != nil {
		b.set("to_region", *p.ToRegion)
	}
	if p.IsCOD != nil {
		b.set("is_cod", *p.IsCOD)
	}
	if p.CODAmount != nil {
		b.set("cod_amount", *p.CODAmount)
	}
	if p.HasInsurance != nil {
		b.set("has_insurance", *p.HasInsurance)
	}
	if p.HasSMSNotification != nil {
		b.set("has_sms_notification", *p.HasSMSNotification)
	}
	if p.ShippingRate != nil {
		b.set("shipping_rate", *p.ShippingRate)
	}
	if p.TotalAmount != nil {
		b.set("total_amount", *p.TotalAmount)
	}
	if p.Status != nil {
		b.set("status", *p.Status)
	}
	if p.AssignedAgentID != nil {
		// Пустая строка снимает назначение
		if *p.AssignedAgentID == "" {
			b.set("assigned_agent_id", nil)
		} else {
			b.set("assigned_agent_id", *p.AssignedAgentID)
		}
	}
	if p.EstimatedDelivery != nil {
		b.set("estimated_delivery", *p.EstimatedDelivery)
	}
	if p.ActualDelivery != nil {
		b.set("actual_delivery", *p.ActualDelivery)
	}
}

// DeleteOrder удаляет историю трекинга, затем сам заказ, в одной транзакции.
func (s *postgresStorage) DeleteOrder(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "DB.DeleteOrder")
	defer span.End()

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_tracking WHERE order_id = $1`, id); err != nil {
			return fmt.Errorf("ошибка удаления истории трекинга: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("ошибка удаления заказа: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fail("delete_order", "не удалось удалить заказ", err)
	}
	return nil
}

// GetOrder возвращает заказ с назначенным агентом и полной историей.
func (s *postgresStorage) GetOrder(ctx context.Context, id string) (*model.OrderWithDetails, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetOrder")
	defer span.End()

	return s.getOrderWhere(ctx, "o.id = $1", id)
}

// GetOrderByNumber возвращает заказ по публичному номеру.
func (s *postgresStorage) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.OrderWithDetails, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetOrderByNumber")
	defer span.End()

	return s.getOrderWhere(ctx, "o.order_number = $1", orderNumber)
}

func (s *postgresStorage) getOrderWhere(ctx context.Context, where string, arg string) (*model.OrderWithDetails, error) {
	query := `SELECT ` + orderColumns + `, ` + agentJoinColumns + `
		FROM orders o
		LEFT JOIN delivery_agents a ON o.assigned_agent_id = a.id
		WHERE ` + where

	var row orderRow
	if err := s.db.GetContext(ctx, &row, query, arg); err != nil {
		return nil, fail("get_order", "не удалось получить заказ", err)
	}

	details := row.toModel()
	history, err := s.GetTracking(ctx, details.ID)
	if err != nil {
		return nil, err
	}
	details.TrackingHistory = history

	return &details, nil
}

// ListOrders возвращает страницу заказов (новые первыми) и общее число
// подходящих под фильтры записей.
func (s *postgresStorage) ListOrders(ctx context.Context, filter model.OrderFilter) (*model.OrderList, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListOrders")
	defer span.End()

	var where []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if filter.AgentID != "" {
		args = append(args, filter.AgentID)
		where = append(where, fmt.Sprintf("o.assigned_agent_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		where = append(where, fmt.Sprintf("(o.order_number ILIKE $%d OR o.sender_name ILIKE $%d OR o.recipient_name ILIKE $%d)", n, n, n))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM orders o`+whereClause, args...); err != nil {
		return nil, fail("count_orders", "ошибка подсчета заказов", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = model.DefaultOrderLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	pageArgs := append(append([]interface{}{}, args...), limit, offset)
	query := `SELECT ` + orderColumns + `, ` + agentJoinColumns + `
		FROM orders o
		LEFT JOIN delivery_agents a ON o.assigned_agent_id = a.id` + whereClause +
		fmt.Sprintf(" ORDER BY o.created_at DESC, o.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	var rows []orderRow
	if err := s.db.SelectContext(ctx, &rows, query, pageArgs...); err != nil {
		return nil, fail("list_orders", "ошибка получения списка заказов", err)
	}

	orders := make([]model.OrderWithDetails, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toModel())
	}

	return &model.OrderList{Orders: orders, Total: total}, nil
}

// OrderStats считает заказы по статусам одним запросом.
func (s *postgresStorage) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	ctx, span := s.tracer.Start(ctx, "DB.OrderStats")
	defer span.End()

	query := `
		SELECT
			COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending_orders,
			COUNT(*) FILTER (WHERE status = 'in-transit') AS in_transit_orders,
			COUNT(*) FILTER (WHERE status = 'delivered') AS delivered_orders
		FROM orders`

	var stats model.OrderStats
	if err := s.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fail("order_stats", "ошибка получения статистики", err)
	}
	return &stats, nil
}
