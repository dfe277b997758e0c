package database

import (
	"context"
	"errors"

	"courier_oms/internal/model"

	"github.com/jmoiron/sqlx"
)

const insertTrackingQuery = `INSERT INTO order_tracking (id, order_id, status, location, notes, timestamp, updated_by) VALUES ($1, $2, $3, $4, $5, $6, $7)`

func insertTracking(ctx context.Context, tx *sqlx.Tx, e *model.TrackingEvent) error {
	_, err := tx.ExecContext(ctx, insertTrackingQuery, e.ID, e.OrderID, e.Status, e.Location, e.Notes, e.Timestamp, e.UpdatedBy)
	return err
}

// AddTracking добавляет событие в историю заказа. События только добавляются.
func (s *postgresStorage) AddTracking(ctx context.Context, event *model.TrackingEvent) error {
	ctx, span := s.tracer.Start(ctx, "DB.AddTracking")
	defer span.End()

	_, err := s.db.ExecContext(ctx, insertTrackingQuery, event.ID, event.OrderID, event.Status, event.Location, event.Notes, event.Timestamp, event.UpdatedBy)
	if err != nil {
		err = fail("add_tracking", "не удалось добавить событие трекинга", err)
		// Нарушение внешнего ключа означает, что заказа нет
		if errors.Is(err, ErrInvalidReference) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// GetTracking возвращает историю заказа, новые события первыми.
func (s *postgresStorage) GetTracking(ctx context.Context, orderID string) ([]model.TrackingEvent, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetTracking")
	defer span.End()

	events := []model.TrackingEvent{}
	query := `SELECT id, order_id, status, location, notes, timestamp, updated_by FROM order_tracking WHERE order_id = $1 ORDER BY timestamp DESC`
	if err := s.db.SelectContext(ctx, &events, query, orderID); err != nil {
		return nil, fail("get_tracking", "не удалось получить историю трекинга", err)
	}
	return events, nil
}
