package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"courier_oms/internal/cache"
	cache_mocks "courier_oms/internal/cache/mocks"
	"courier_oms/internal/database"
	db_mocks "courier_oms/internal/database/mocks"
	"courier_oms/internal/model"
	"courier_oms/internal/service/mocks"
	"courier_oms/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

type serviceMocks struct {
	storage   *db_mocks.MockStorage
	cache     *cache_mocks.MockCache
	publisher *mocks.MockEventPublisher
}

// setupServiceAndMocks создает сервис с моками и детерминированными id/временем.
func setupServiceAndMocks(t *testing.T) (*OrderService, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		storage:   db_mocks.NewMockStorage(ctrl),
		cache:     cache_mocks.NewMockCache(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
	}
	svc := New(m.storage, m.cache, m.publisher)
	svc.now = func() time.Time { return fixedNow }
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return svc, m
}

func validDraft() *model.OrderDraft {
	return &model.OrderDraft{
		SenderName:       "Juan Dela Cruz",
		SenderPhone:      "+639171234567",
		SenderEmail:      "juan@example.ph",
		SenderAddress:    "123 Rizal Ave, Manila",
		RecipientName:    "Maria Santos",
		RecipientAddress: "88 Roxas Ave, Davao City",
		PackageType:      model.PackageParcel,
		Weight:           decimal.NewNullDecimal(decimal.NewFromInt(5)),
		ServiceType:      model.ServiceRegular,
		FromRegion:       model.RegionNCR,
		ToRegion:         model.RegionMindanao,
		HasInsurance:     true,
	}
}

var orderNumberPattern = regexp.MustCompile(`^LBC-\d{4}-\d{6}$`)

func TestCreateOrder_PricesAndEmitsInitialEvent(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.storage.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *model.Order, e *model.TrackingEvent) error {
			// Тариф рассчитан сервером: 100*2.2 + 4*30 = 340, страховка +10%
			assert.Equal(t, "340", o.ShippingRate.Decimal.String())
			assert.Equal(t, "374", o.TotalAmount.Decimal.String())
			if assert.NotNil(t, o.EstimatedDelivery) {
				assert.Equal(t, fixedNow.AddDate(0, 0, 6), *o.EstimatedDelivery)
			}
			assert.Equal(t, model.StatusPending, o.Status)
			assert.Equal(t, fixedNow, o.CreatedAt)

			assert.Equal(t, "pending", e.Status)
			assert.Equal(t, "Order created", *e.Notes)
			assert.Equal(t, SystemActor, e.UpdatedBy)
			assert.Equal(t, fixedNow, e.Timestamp)

			o.OrderNumber = model.FormatOrderNumber(o.CreatedAt.Year(), 1)
			e.OrderID = o.ID
			return nil
		})
	m.cache.EXPECT().Delete(ctx, "LBC-2025-000001")
	m.publisher.EXPECT().PublishTracking(ctx, "LBC-2025-000001", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, e model.TrackingEvent) error {
			assert.Equal(t, "pending", e.Status)
			return nil
		})

	order, err := svc.CreateOrder(ctx, validDraft(), SourceAPI)
	assert.NoError(t, err)
	assert.Regexp(t, orderNumberPattern, order.OrderNumber)
	assert.Equal(t, "id-1", order.ID)
}

func TestCreateOrder_KeepsClientRate(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()
	draft := validDraft()
	draft.ShippingRate = decimal.NewNullDecimal(decimal.NewFromInt(999))

	m.storage.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *model.Order, _ *model.TrackingEvent) error {
			assert.Equal(t, "999", o.ShippingRate.Decimal.String())
			assert.False(t, o.TotalAmount.Valid)
			assert.Nil(t, o.EstimatedDelivery)
			o.OrderNumber = "LBC-2025-000002"
			return nil
		})
	m.cache.EXPECT().Delete(ctx, "LBC-2025-000002")
	m.publisher.EXPECT().PublishTracking(ctx, "LBC-2025-000002", gomock.Any()).Return(nil)

	_, err := svc.CreateOrder(ctx, draft, SourceAPI)
	assert.NoError(t, err)
}

func TestCreateOrder_RetriesOnDuplicateNumber(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	var seenIDs []string
	gomock.InOrder(
		m.storage.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *model.Order, _ *model.TrackingEvent) error {
				seenIDs = append(seenIDs, o.ID)
				return fmt.Errorf("не удалось создать заказ: %w", database.ErrDuplicateOrderNumber)
			}),
		m.storage.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *model.Order, _ *model.TrackingEvent) error {
				seenIDs = append(seenIDs, o.ID)
				o.OrderNumber = "LBC-2025-000043"
				return nil
			}),
	)
	m.cache.EXPECT().Delete(ctx, "LBC-2025-000043")
	m.publisher.EXPECT().PublishTracking(ctx, "LBC-2025-000043", gomock.Any()).Return(nil)

	order, err := svc.CreateOrder(ctx, validDraft(), SourceKafka)
	assert.NoError(t, err)
	assert.Equal(t, "LBC-2025-000043", order.OrderNumber)
	if assert.Len(t, seenIDs, 2) {
		assert.NotEqual(t, seenIDs[0], seenIDs[1])
	}
}

func TestCreateOrder_GivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.storage.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).
		Return(database.ErrDuplicateOrderNumber).Times(maxNumberAttempts)

	order, err := svc.CreateOrder(ctx, validDraft(), SourceAPI)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, database.ErrDuplicateOrderNumber)
}

func TestCreateOrder_ValidationError_NoWrite(t *testing.T) {
	svc, _ := setupServiceAndMocks(t)
	draft := validDraft()
	draft.SenderName = ""
	draft.ToRegion = "ATLANTIS"

	// Хранилище не вызывается: gomock упадет на неожиданном вызове
	_, err := svc.CreateOrder(context.Background(), draft, SourceAPI)

	var verr *validator.ValidationError
	if assert.ErrorAs(t, err, &verr) {
		fields := map[string]bool{}
		for _, f := range verr.Fields {
			fields[f.Field] = true
		}
		assert.True(t, fields["senderName"])
		assert.True(t, fields["toRegion"])
	}
}

func TestCreateOrder_RejectsNonPositiveWeight(t *testing.T) {
	svc, _ := setupServiceAndMocks(t)
	draft := validDraft()
	draft.Weight = decimal.NewNullDecimal(decimal.Zero)
	draft.CODAmount = decimal.NewNullDecimal(decimal.NewFromInt(-1))

	_, err := svc.CreateOrder(context.Background(), draft, SourceAPI)

	var verr *validator.ValidationError
	if assert.ErrorAs(t, err, &verr) {
		assert.Len(t, verr.Fields, 2)
		assert.Equal(t, "weight", verr.Fields[0].Field)
		assert.Equal(t, "codAmount", verr.Fields[1].Field)
	}
}

func TestCreateOrder_PublishFailureDoesNotFail(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.storage.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *model.Order, _ *model.TrackingEvent) error {
			o.OrderNumber = "LBC-2025-000005"
			return nil
		})
	m.cache.EXPECT().Delete(ctx, "LBC-2025-000005")
	m.publisher.EXPECT().PublishTracking(ctx, "LBC-2025-000005", gomock.Any()).Return(errors.New("kafka down"))

	order, err := svc.CreateOrder(ctx, validDraft(), SourceAPI)
	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestCreateOrder_WithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := db_mocks.NewMockStorage(ctrl)
	cache := cache_mocks.NewMockCache(ctrl)
	svc := New(storage, cache, nil)
	ctx := context.Background()

	storage.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *model.Order, _ *model.TrackingEvent) error {
			o.OrderNumber = "LBC-2025-000006"
			return nil
		})
	cache.EXPECT().Delete(ctx, "LBC-2025-000006")

	order, err := svc.CreateOrder(ctx, validDraft(), SourceSeed)
	assert.NoError(t, err)
	assert.Len(t, order.ID, 36) // uuid
}

func TestUpdateOrder_SameStatusStillAppendsEvent(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()
	status := model.StatusPending // совпадает с текущим
	patch := &model.OrderPatch{Status: &status}

	m.storage.EXPECT().UpdateOrder(ctx, "o1", patch, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ *model.OrderPatch, e *model.TrackingEvent) (*model.Order, error) {
			if assert.NotNil(t, e) {
				assert.Equal(t, "pending", e.Status)
				assert.Equal(t, "Status updated to pending", *e.Notes)
				assert.Equal(t, DefaultActor, e.UpdatedBy)
			}
			return &model.Order{ID: "o1", OrderNumber: "LBC-2025-000001", Status: model.StatusPending}, nil
		})
	m.cache.EXPECT().Delete(ctx, "LBC-2025-000001")
	m.publisher.EXPECT().PublishTracking(ctx, "LBC-2025-000001", gomock.Any()).Return(nil)

	order, err := svc.UpdateOrder(ctx, "o1", patch, "")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, order.Status)
}

func TestUpdateOrder_ActorRecorded(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()
	status := model.StatusInTransit

	m.storage.EXPECT().UpdateOrder(ctx, "o1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ *model.OrderPatch, e *model.TrackingEvent) (*model.Order, error) {
			assert.Equal(t, "dispatcher-7", e.UpdatedBy)
			return &model.Order{ID: "o1", OrderNumber: "LBC-2025-000001"}, nil
		})
	m.cache.EXPECT().Delete(ctx, "LBC-2025-000001")
	m.publisher.EXPECT().PublishTracking(ctx, "LBC-2025-000001", gomock.Any()).Return(nil)

	_, err := svc.UpdateOrder(ctx, "o1", &model.OrderPatch{Status: &status}, "dispatcher-7")
	assert.NoError(t, err)
}

func TestUpdateOrder_WithoutStatus_NoEvent(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()
	name := "Maria C. Santos"

	m.storage.EXPECT().UpdateOrder(ctx, "o1", gomock.Any(), nil).
		Return(&model.Order{ID: "o1", OrderNumber: "LBC-2025-000001", RecipientName: name}, nil)
	m.cache.EXPECT().Delete(ctx, "LBC-2025-000001")
	// Публикации нет: событие не создавалось

	order, err := svc.UpdateOrder(ctx, "o1", &model.OrderPatch{RecipientName: &name}, "admin")
	assert.NoError(t, err)
	assert.Equal(t, name, order.RecipientName)
}

func TestUpdateOrder_InvalidStatus(t *testing.T) {
	svc, _ := setupServiceAndMocks(t)
	status := model.OrderStatus("lost")

	_, err := svc.UpdateOrder(context.Background(), "o1", &model.OrderPatch{Status: &status}, "")

	var verr *validator.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()
	status := model.StatusDelivered

	m.storage.EXPECT().UpdateOrder(ctx, "missing", gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("не удалось обновить заказ: %w", database.ErrNotFound))

	_, err := svc.UpdateOrder(ctx, "missing", &model.OrderPatch{Status: &status}, "")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDeleteOrder_InvalidatesCache(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	gomock.InOrder(
		m.storage.EXPECT().GetOrder(ctx, "o1").
			Return(&model.OrderWithDetails{Order: model.Order{ID: "o1", OrderNumber: "LBC-2025-000001"}}, nil),
		m.storage.EXPECT().DeleteOrder(ctx, "o1").Return(nil),
		m.cache.EXPECT().Delete(ctx, "LBC-2025-000001"),
	)

	assert.NoError(t, svc.DeleteOrder(ctx, "o1"))
}

func TestDeleteOrder_NotFound(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.storage.EXPECT().GetOrder(ctx, "missing").Return(nil, database.ErrNotFound)

	err := svc.DeleteOrder(ctx, "missing")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestTrackOrder_CacheHit(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()
	cached := &model.PublicTracking{OrderNumber: "LBC-2025-000001", Status: model.StatusInTransit}

	m.cache.EXPECT().Get(ctx, "LBC-2025-000001").Return(cached, true)

	tracking, err := svc.TrackOrder(ctx, "LBC-2025-000001")
	assert.NoError(t, err)
	assert.Equal(t, cached, tracking)
}

func TestTrackOrder_CacheMiss_HidesPrivateFields(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	order := &model.OrderWithDetails{
		Order: model.Order{
			ID:            "o1",
			OrderNumber:   "LBC-2025-000001",
			SenderPhone:   "+639171234567",
			SenderEmail:   "juan@example.ph",
			RecipientName: "Maria Santos",
			ShippingRate:  decimal.NewNullDecimal(decimal.NewFromInt(340)),
			Status:        model.StatusInTransit,
		},
		TrackingHistory: []model.TrackingEvent{{ID: "e1", Status: "in-transit"}},
	}

	m.cache.EXPECT().Get(ctx, "LBC-2025-000001").Return(nil, false)
	m.storage.EXPECT().GetOrderByNumber(ctx, "LBC-2025-000001").Return(order, nil)
	m.cache.EXPECT().Set(ctx, "LBC-2025-000001", gomock.Any())

	tracking, err := svc.TrackOrder(ctx, "LBC-2025-000001")
	assert.NoError(t, err)
	assert.Equal(t, "Maria Santos", tracking.RecipientName)
	assert.Len(t, tracking.TrackingHistory, 1)

	body, _ := json.Marshal(tracking)
	for _, private := range []string{"senderPhone", "senderEmail", "shippingRate", "totalAmount", "codAmount", "+639171234567"} {
		assert.NotContains(t, string(body), private)
	}
}

func TestTrackOrder_NotFound(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.cache.EXPECT().Get(ctx, "LBC-2025-999999").Return(nil, false)
	m.storage.EXPECT().GetOrderByNumber(ctx, "LBC-2025-999999").Return(nil, database.ErrNotFound)

	_, err := svc.TrackOrder(ctx, "LBC-2025-999999")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestAddTracking_Success(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()
	location := "Cebu Hub"

	m.storage.EXPECT().GetOrder(ctx, "o1").
		Return(&model.OrderWithDetails{Order: model.Order{ID: "o1", OrderNumber: "LBC-2025-000001"}}, nil)
	m.storage.EXPECT().AddTracking(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *model.TrackingEvent) error {
			assert.Equal(t, "o1", e.OrderID)
			assert.Equal(t, "arrived at hub", e.Status)
			assert.Equal(t, "courier-1", e.UpdatedBy)
			return nil
		})
	m.cache.EXPECT().Delete(ctx, "LBC-2025-000001")
	m.publisher.EXPECT().PublishTracking(ctx, "LBC-2025-000001", gomock.Any()).Return(nil)

	event, err := svc.AddTracking(ctx, "o1", &model.TrackingInput{Status: "arrived at hub", Location: &location}, "courier-1")
	assert.NoError(t, err)
	assert.Equal(t, fixedNow, event.Timestamp)
	assert.Equal(t, "Cebu Hub", *event.Location)
}

func TestAddTracking_UnknownOrder(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.storage.EXPECT().GetOrder(ctx, "missing").Return(nil, database.ErrNotFound)

	_, err := svc.AddTracking(ctx, "missing", &model.TrackingInput{Status: "lost"}, "")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestAddTracking_RequiresStatus(t *testing.T) {
	svc, _ := setupServiceAndMocks(t)

	_, err := svc.AddTracking(context.Background(), "o1", &model.TrackingInput{}, "")

	var verr *validator.ValidationError
	if assert.ErrorAs(t, err, &verr) {
		assert.Equal(t, "status", verr.Fields[0].Field)
	}
}

func TestQuote(t *testing.T) {
	svc, _ := setupServiceAndMocks(t)

	quote, err := svc.Quote(&model.RateRequest{FromRegion: "VISAYAS", ToRegion: "NCR", Weight: decimal.NewFromInt(2), ServiceType: "economy"})
	assert.NoError(t, err)
	assert.Equal(t, "164", quote.Rate.String())
	assert.Equal(t, "2-5", quote.EstimatedDays)

	_, err = svc.Quote(&model.RateRequest{FromRegion: "NCR", ToRegion: "NCR", Weight: decimal.Zero, ServiceType: "express"})
	var verr *validator.ValidationError
	if assert.ErrorAs(t, err, &verr) {
		assert.Equal(t, "weight", verr.Fields[0].Field)
	}

	_, err = svc.Quote(&model.RateRequest{Weight: decimal.NewFromInt(1)})
	assert.ErrorAs(t, err, &verr)
}

func TestListCustomers_SearchOrAll(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.storage.EXPECT().ListCustomers(ctx).Return([]model.Customer{{ID: "c1"}, {ID: "c2"}}, nil)
	m.storage.EXPECT().SearchCustomers(ctx, "santos").Return([]model.Customer{{ID: "c2"}}, nil)

	all, err := svc.ListCustomers(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := svc.ListCustomers(ctx, "santos")
	assert.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestCreateCustomer(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.storage.EXPECT().CreateCustomer(ctx, gomock.Any()).Return(nil)

	customer, err := svc.CreateCustomer(ctx, &model.CustomerInput{FullName: "Ana Lim", Email: "ana@example.ph"})
	assert.NoError(t, err)
	assert.Equal(t, "id-1", customer.ID)
	assert.Equal(t, fixedNow, customer.CreatedAt)

	_, err = svc.CreateCustomer(ctx, &model.CustomerInput{Email: "not-an-email"})
	var verr *validator.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestListAgents_ActiveOnly(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.storage.EXPECT().ListActiveAgents(ctx).Return([]model.DeliveryAgent{{ID: "a1", IsActive: true}}, nil)
	m.storage.EXPECT().ListAgents(ctx).Return([]model.DeliveryAgent{{ID: "a1"}, {ID: "a2"}}, nil)

	active, err := svc.ListAgents(ctx, true)
	assert.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := svc.ListAgents(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateAgent_DefaultsActive(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.storage.EXPECT().CreateAgent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *model.DeliveryAgent) error {
			assert.True(t, a.IsActive)
			return nil
		})

	agent, err := svc.CreateAgent(ctx, &model.AgentInput{FullName: "Pedro Reyes", Phone: "+639181112222", EmployeeID: "EMP-001", Region: "NCR"})
	assert.NoError(t, err)
	assert.Equal(t, "id-1", agent.ID)
}

func TestCreateAgent_DuplicateEmployeeID(t *testing.T) {
	svc, m := setupServiceAndMocks(t)
	ctx := context.Background()

	m.storage.EXPECT().CreateAgent(ctx, gomock.Any()).Return(fmt.Errorf("не удалось создать агента: %w", database.ErrConflict))

	_, err := svc.CreateAgent(ctx, &model.AgentInput{FullName: "Pedro Reyes", Phone: "+639181112222", EmployeeID: "EMP-001", Region: "NCR"})
	assert.ErrorIs(t, err, database.ErrConflict)
}

func TestTrackOrder_FillsRealCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := db_mocks.NewMockStorage(ctrl)
	svc := New(storage, cache.NewLRUCache(10), nil)
	ctx := context.Background()
	number := "LBC-2025-000001"

	// Второй вызов обслуживается из кэша
	storage.EXPECT().GetOrderByNumber(ctx, number).
		Return(&model.OrderWithDetails{Order: model.Order{ID: "o1", OrderNumber: number, Status: model.StatusInTransit}}, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		tracking, err := svc.TrackOrder(ctx, number)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusInTransit, tracking.Status)
	}
}

func TestTrackOrder_WriteDuringMissIsNotCachedStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := db_mocks.NewMockStorage(ctrl)
	svc := New(storage, cache.NewLRUCache(10), nil)
	ctx := context.Background()
	number := "LBC-2025-000001"
	delivered := model.StatusDelivered

	stale := &model.OrderWithDetails{Order: model.Order{ID: "o1", OrderNumber: number, Status: model.StatusPending}}
	fresh := &model.OrderWithDetails{Order: model.Order{ID: "o1", OrderNumber: number, Status: model.StatusDelivered}}

	storage.EXPECT().UpdateOrder(ctx, "o1", gomock.Any(), gomock.Any()).Return(&fresh.Order, nil)
	gomock.InOrder(
		storage.EXPECT().GetOrderByNumber(ctx, number).
			DoAndReturn(func(ctx context.Context, _ string) (*model.OrderWithDetails, error) {
				// Обновление фиксируется, пока чтение еще не вернулось
				_, err := svc.UpdateOrder(ctx, "o1", &model.OrderPatch{Status: &delivered}, "")
				assert.NoError(t, err)
				return stale, nil
			}),
		storage.EXPECT().GetOrderByNumber(ctx, number).Return(fresh, nil),
	)

	first, err := svc.TrackOrder(ctx, number)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, first.Status)

	// Устаревшая проекция не попала в кэш: второй запрос идет в БД
	second, err := svc.TrackOrder(ctx, number)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusDelivered, second.Status)
}

func TestGetTracking_NonUUIDIsEmpty(t *testing.T) {
	svc, _ := setupServiceAndMocks(t)

	// Хранилище не вызывается
	events, err := svc.GetTracking(context.Background(), "abc")
	assert.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestListOrders_NonUUIDAgentIsEmpty(t *testing.T) {
	svc, _ := setupServiceAndMocks(t)

	list, err := svc.ListOrders(context.Background(), model.OrderFilter{AgentID: "abc", Limit: 50})
	assert.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Orders)
	assert.Empty(t, list.Orders)
}
