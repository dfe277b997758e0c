package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"courier_oms/internal/database"
	"courier_oms/internal/metrics"
	"courier_oms/internal/model"
	"courier_oms/internal/rate"
	"courier_oms/internal/validator"

	"github.com/shopspring/decimal"
)

// CreateOrder проверяет черновик, при отсутствии тарифа рассчитывает его и
// сохраняет заказ вместе с первым событием трекинга.
func (s *OrderService) CreateOrder(ctx context.Context, draft *model.OrderDraft, source string) (*model.Order, error) {
	if err := validator.ValidateStruct(draft); err != nil {
		return nil, err
	}
	if err := checkDraftAmounts(draft); err != nil {
		return nil, err
	}

	order := model.NewOrder(*draft)
	if err := s.price(&order); err != nil {
		return nil, err
	}

	var initial *model.TrackingEvent
	var err error
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		now := s.now()
		order.ID = s.newID()
		order.CreatedAt = now
		order.UpdatedAt = now
		initial = &model.TrackingEvent{
			ID:        s.newID(),
			Status:    string(model.StatusPending),
			Notes:     strPtr("Order created"),
			Timestamp: now,
			UpdatedBy: SystemActor,
		}

		err = s.storage.CreateOrder(ctx, &order, initial)
		if !errors.Is(err, database.ErrDuplicateOrderNumber) {
			break
		}
		log.Printf("Коллизия номера заказа (попытка %d из %d), повтор", attempt, maxNumberAttempts)
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось создать заказ: %w", err)
	}

	metrics.OrdersCreated.WithLabelValues(source).Inc()
	s.invalidate(ctx, order.OrderNumber)
	s.publish(ctx, order.OrderNumber, initial)

	return &order, nil
}

// price заполняет тариф, итог и ожидаемую дату доставки, если клиент их не передал.
func (s *OrderService) price(order *model.Order) error {
	if order.ShippingRate.Valid || !order.Weight.Valid {
		return nil
	}

	quote, err := rate.Calculate(string(order.FromRegion), string(order.ToRegion), order.Weight.Decimal, string(order.ServiceType))
	if err != nil {
		if errors.Is(err, rate.ErrInvalidInput) {
			return validator.NewError("weight", "значение должно быть больше нуля")
		}
		return err
	}
	metrics.RateQuotes.WithLabelValues(rate.Tier(string(order.ServiceType))).Inc()

	order.ShippingRate = decimal.NewNullDecimal(quote.Rate)
	if !order.TotalAmount.Valid {
		order.TotalAmount = decimal.NewNullDecimal(quote.Total(order.HasInsurance))
	}
	if order.EstimatedDelivery == nil && quote.MaxDays() > 0 {
		eta := s.now().AddDate(0, 0, quote.MaxDays())
		order.EstimatedDelivery = &eta
	}
	return nil
}

func checkDraftAmounts(d *model.OrderDraft) error {
	c := &amountChecker{}
	c.positive("weight", d.Weight)
	c.nonNegative("declaredValue", d.DeclaredValue)
	c.nonNegative("codAmount", d.CODAmount)
	c.nonNegative("shippingRate", d.ShippingRate)
	c.nonNegative("totalAmount", d.TotalAmount)
	return c.err()
}

func checkPatchAmounts(p *model.OrderPatch) error {
	c := &amountChecker{}
	c.positive("weight", derefNull(p.Weight))
	c.nonNegative("declaredValue", derefNull(p.DeclaredValue))
	c.nonNegative("codAmount", derefNull(p.CODAmount))
	c.nonNegative("shippingRate", derefNull(p.ShippingRate))
	c.nonNegative("totalAmount", derefNull(p.TotalAmount))
	return c.err()
}

// UpdateOrder применяет частичное обновление. Если в патче есть статус,
// в той же транзакции добавляется событие трекинга, даже если статус не изменился.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, patch *model.OrderPatch, actor string) (*model.Order, error) {
	if err := validator.ValidateStruct(patch); err != nil {
		return nil, err
	}
	if err := checkPatchAmounts(patch); err != nil {
		return nil, err
	}

	var event *model.TrackingEvent
	if patch.Status != nil {
		event = &model.TrackingEvent{
			ID:        s.newID(),
			Status:    string(*patch.Status),
			Notes:     strPtr(fmt.Sprintf("Status updated to %s", *patch.Status)),
			Timestamp: s.now(),
			UpdatedBy: actorOrDefault(actor),
		}
	}

	order, err := s.storage.UpdateOrder(ctx, id, patch, event)
	if err != nil {
		return nil, fmt.Errorf("не удалось обновить заказ %s: %w", id, err)
	}

	s.invalidate(ctx, order.OrderNumber)
	s.publish(ctx, order.OrderNumber, event)

	return order, nil
}

// DeleteOrder удаляет заказ вместе с историей трекинга.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	order, err := s.storage.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, order.OrderNumber)
	return nil
}

// ListOrders возвращает страницу заказов. Фильтр по агенту с id не в формате
// UUID не может ничего найти, поэтому в БД не уходит.
func (s *OrderService) ListOrders(ctx context.Context, filter model.OrderFilter) (*model.OrderList, error) {
	if filter.AgentID != "" && !validID(filter.AgentID) {
		return &model.OrderList{Orders: []model.OrderWithDetails{}}, nil
	}
	return s.storage.ListOrders(ctx, filter)
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*model.OrderWithDetails, error) {
	return s.storage.GetOrder(ctx, id)
}

func (s *OrderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.OrderWithDetails, error) {
	return s.storage.GetOrderByNumber(ctx, orderNumber)
}

// TrackOrder возвращает публичную проекцию заказа: сначала из кэша, затем из БД.
func (s *OrderService) TrackOrder(ctx context.Context, orderNumber string) (*model.PublicTracking, error) {
	if tracking, found := s.cache.Get(ctx, orderNumber); found {
		log.Printf("КЭШ ХИТ: %s", orderNumber)
		metrics.CacheHits.Inc()
		return tracking, nil
	}

	log.Printf("КЭШ ПРОМАХ: %s. Запрос к БД.", orderNumber)
	metrics.CacheMisses.Inc()

	gen := s.cacheGeneration()
	order, err := s.storage.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	tracking := order.Public()
	s.fillCache(ctx, &tracking, gen)
	return &tracking, nil
}

// AddTracking добавляет событие в историю заказа вручную.
// Статус самого заказа при этом не меняется.
func (s *OrderService) AddTracking(ctx context.Context, orderID string, in *model.TrackingInput, actor string) (*model.TrackingEvent, error) {
	if err := validator.ValidateStruct(in); err != nil {
		return nil, err
	}

	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	event := &model.TrackingEvent{
		ID:        s.newID(),
		OrderID:   orderID,
		Status:    in.Status,
		Location:  in.Location,
		Notes:     in.Notes,
		Timestamp: s.now(),
		UpdatedBy: actorOrDefault(actor),
	}
	if err := s.storage.AddTracking(ctx, event); err != nil {
		return nil, err
	}

	s.invalidate(ctx, order.OrderNumber)
	s.publish(ctx, order.OrderNumber, event)

	return event, nil
}

// GetTracking возвращает историю заказа, новые события первыми.
// Для удаленного или неизвестного заказа история пуста.
func (s *OrderService) GetTracking(ctx context.Context, orderID string) ([]model.TrackingEvent, error) {
	if !validID(orderID) {
		return []model.TrackingEvent{}, nil
	}
	return s.storage.GetTracking(ctx, orderID)
}

func (s *OrderService) Stats(ctx context.Context) (*model.OrderStats, error) {
	return s.storage.OrderStats(ctx)
}

// Quote рассчитывает тариф для формы калькулятора.
func (s *OrderService) Quote(req *model.RateRequest) (rate.Quote, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return rate.Quote{}, err
	}

	quote, err := rate.Calculate(req.FromRegion, req.ToRegion, req.Weight, req.ServiceType)
	if err != nil {
		if errors.Is(err, rate.ErrInvalidInput) {
			return rate.Quote{}, validator.NewError("weight", "значение должно быть больше нуля")
		}
		return rate.Quote{}, err
	}
	metrics.RateQuotes.WithLabelValues(rate.Tier(req.ServiceType)).Inc()
	return quote, nil
}

func strPtr(s string) *string {
	return &s
}
