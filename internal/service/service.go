package service

import (
	"context"
	"log"
	"sync"
	"time"

	"courier_oms/internal/cache"
	"courier_oms/internal/database"
	"courier_oms/internal/model"
	"courier_oms/internal/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=./mocks/publisher_mock.go -package=mocks EventPublisher

// Источники создания заказов (метка метрики OrdersCreated).
const (
	SourceAPI   = "api"
	SourceKafka = "kafka"
	SourceSeed  = "seed"
)

const (
	// SystemActor записывается в событие, созданное вместе с заказом.
	SystemActor = "system"
	// DefaultActor используется, если автор изменения неизвестен.
	DefaultActor = "admin"

	maxNumberAttempts = 3
)

// EventPublisher получает события трекинга после фиксации транзакции.
type EventPublisher interface {
	PublishTracking(ctx context.Context, orderNumber string, event model.TrackingEvent) error
}

// OrderService реализует операции над заказами, клиентами и агентами.
type OrderService struct {
	storage   database.Storage
	cache     cache.Cache
	publisher EventPublisher // nil - публикация отключена

	// cacheMu защищает cacheGen. cacheGen растет при каждой инвалидации:
	// проекция, прочитанная до инвалидации, в кэш не попадает.
	cacheMu  sync.Mutex
	cacheGen uint64

	now   func() time.Time
	newID func() string
}

// New создает сервис. publisher может быть nil.
func New(storage database.Storage, cache cache.Cache, publisher EventPublisher) *OrderService {
	return &OrderService{
		storage:   storage,
		cache:     cache,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// publish отправляет событие. Ошибка не откатывает уже зафиксированную запись.
func (s *OrderService) publish(ctx context.Context, orderNumber string, event *model.TrackingEvent) {
	if s.publisher == nil || event == nil {
		return
	}
	if err := s.publisher.PublishTracking(ctx, orderNumber, *event); err != nil {
		log.Printf("Не удалось опубликовать событие трекинга заказа %s: %v", orderNumber, err)
	}
}

func (s *OrderService) invalidate(ctx context.Context, orderNumber string) {
	if orderNumber == "" {
		return
	}
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cacheGen++
	s.cache.Delete(ctx, orderNumber)
}

func (s *OrderService) cacheGeneration() uint64 {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return s.cacheGen
}

// fillCache кладет проекцию в кэш, только если с момента чтения gen
// не было инвалидаций.
func (s *OrderService) fillCache(ctx context.Context, tracking *model.PublicTracking, gen uint64) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.cacheGen != gen {
		log.Printf("Проекция %s устарела во время чтения, в кэш не кладем.", tracking.OrderNumber)
		return
	}
	s.cache.Set(ctx, tracking.OrderNumber, tracking)
}

func actorOrDefault(actor string) string {
	if actor == "" {
		return DefaultActor
	}
	return actor
}

// amountChecker собирает ошибки по отрицательным суммам и весу.
type amountChecker struct {
	errs []validator.FieldError
}

func (c *amountChecker) nonNegative(field string, v decimal.NullDecimal) {
	if v.Valid && v.Decimal.IsNegative() {
		c.errs = append(c.errs, validator.FieldError{Field: field, Message: "значение не может быть отрицательным"})
	}
}

func (c *amountChecker) positive(field string, v decimal.NullDecimal) {
	if v.Valid && !v.Decimal.IsPositive() {
		c.errs = append(c.errs, validator.FieldError{Field: field, Message: "значение должно быть больше нуля"})
	}
}

func (c *amountChecker) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return &validator.ValidationError{Fields: c.errs}
}

func derefNull(v *decimal.NullDecimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return *v
}

// validID сообщает, может ли строка быть идентификатором записи.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
