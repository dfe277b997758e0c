package main

import (
	"context"
	"fmt"
	"testing"

	"courier_oms/internal/cache"
	"courier_oms/internal/database"
	db_mocks "courier_oms/internal/database/mocks"
	"courier_oms/internal/generator"
	"courier_oms/internal/model"
	"courier_oms/internal/service"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSeedAgents_ContinuesAfterExistingAgents(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := db_mocks.NewMockStorage(ctrl)
	svc := service.New(storage, cache.NewLRUCache(0), nil)
	ctx := context.Background()

	// Прошлый запуск seed уже создал двух агентов
	storage.EXPECT().ListAgents(ctx).Return([]model.DeliveryAgent{{EmployeeID: "EMP-00001"}, {EmployeeID: "EMP-00002"}}, nil)

	var created []string
	gomock.InOrder(
		// EMP-00003 занят агентом, созданным вручную
		storage.EXPECT().CreateAgent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *model.DeliveryAgent) error {
				assert.Equal(t, "EMP-00003", a.EmployeeID)
				return fmt.Errorf("ошибка создания агента: %w", database.ErrConflict)
			}),
		storage.EXPECT().CreateAgent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *model.DeliveryAgent) error {
				created = append(created, a.EmployeeID)
				return nil
			}).Times(2),
	)

	ids, err := seedAgents(ctx, svc, generator.New(1), 2)

	assert.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Equal(t, []string{"EMP-00004", "EMP-00005"}, created)
}

func TestSeedAgents_GivesUpOnOtherErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := db_mocks.NewMockStorage(ctrl)
	svc := service.New(storage, cache.NewLRUCache(0), nil)
	ctx := context.Background()

	storage.EXPECT().ListAgents(ctx).Return([]model.DeliveryAgent{}, nil)
	storage.EXPECT().CreateAgent(ctx, gomock.Any()).Return(fmt.Errorf("db down"))

	_, err := seedAgents(ctx, svc, generator.New(1), 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "EMP-00001")
}
