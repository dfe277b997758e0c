package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"courier_oms/internal/metrics"
	"courier_oms/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=postgres.go -destination=./mocks/storage_mock.go -package=mocks Storage

var (
	// ErrNotFound - запись не найдена.
	ErrNotFound = errors.New("запись не найдена")
	// ErrConflict - нарушено ограничение уникальности.
	ErrConflict = errors.New("конфликт уникальности")
	// ErrDuplicateOrderNumber - сгенерированный номер заказа уже занят.
	ErrDuplicateOrderNumber = fmt.Errorf("номер заказа уже существует: %w", ErrConflict)
	// ErrInvalidReference - ссылка на несуществующую запись (например, агента).
	ErrInvalidReference = errors.New("ссылка на несуществующую запись")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqInvalidText         = "22P02"
	orderNumberConstraint = "orders_order_number_key"
)

// Storage определяет интерфейс хранилища заказов, клиентов и агентов.
type Storage interface {
	// Заказы
	CreateOrder(ctx context.Context, order *model.Order, initial *model.TrackingEvent) error
	UpdateOrder(ctx context.Context, id string, patch *model.OrderPatch, event *model.TrackingEvent) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	GetOrder(ctx context.Context, id string) (*model.OrderWithDetails, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*model.OrderWithDetails, error)
	ListOrders(ctx context.Context, filter model.OrderFilter) (*model.OrderList, error)
	OrderStats(ctx context.Context) (*model.OrderStats, error)

	// Трекинг
	AddTracking(ctx context.Context, event *model.TrackingEvent) error
	GetTracking(ctx context.Context, orderID string) ([]model.TrackingEvent, error)

	// Клиенты
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	SearchCustomers(ctx context.Context, query string) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	UpdateCustomer(ctx context.Context, id string, patch *model.CustomerPatch) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	// Агенты доставки
	ListAgents(ctx context.Context) ([]model.DeliveryAgent, error)
	ListActiveAgents(ctx context.Context) ([]model.DeliveryAgent, error)
	GetAgent(ctx context.Context, id string) (*model.DeliveryAgent, error)
	CreateAgent(ctx context.Context, agent *model.DeliveryAgent) error
	UpdateAgent(ctx context.Context, id string, patch *model.AgentPatch) (*model.DeliveryAgent, error)
	DeleteAgent(ctx context.Context, id string) error

	Close() error
}

// postgresStorage обеспечивает взаимодействие с базой данных PostgreSQL.
// Это конкретная реализация интерфейса Storage.
type postgresStorage struct {
	db     *sqlx.DB
	tracer trace.Tracer // Для трассировки
}

// New создает подключение к БД, применяет миграции и возвращает
// экземпляр, реализующий интерфейс Storage.
func New(dbURL, migrationsPath string) (Storage, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	if err := RunMigrations(dbURL, migrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	return &postgresStorage{
		db:     db,
		tracer: otel.Tracer("postgres-storage"),
	}, nil
}

// RunMigrations выполняет миграции БД до последней версии.
func RunMigrations(dbURL, migrationsPath string) error {
	log.Println("Поиск и применение миграций...")

	// Важно: 'file://' префикс
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр миграции: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось выполнить миграции: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("не удалось получить версию миграции: %w", err)
	}

	if dirty {
		log.Printf("БД в 'грязном' состоянии (dirty). Версия: %d. Рекомендуется проверка.", version)
	}

	log.Printf("Миграции успешно применены. Текущая версия БД: %d", version)
	return nil
}

// withTx выполняет fn в транзакции: коммит при успехе, откат при ошибке или панике.
func (s *postgresStorage) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции (после ошибки: %v): %v", err, rbErr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

// translate переводит ошибки драйвера в ошибки пакета.
func translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			if pqErr.Constraint == orderNumberConstraint {
				return ErrDuplicateOrderNumber
			}
			return fmt.Errorf("%w: %s", ErrConflict, pqErr.Constraint)
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrInvalidReference, pqErr.Constraint)
		case pqInvalidText:
			// id не в формате UUID: такой записи быть не может
			return ErrNotFound
		}
	}
	return err
}

// fail увеличивает счетчик ошибок БД (кроме "не найдено") и оборачивает ошибку.
func fail(operation, message string, err error) error {
	err = translate(err)
	if !errors.Is(err, ErrNotFound) {
		metrics.DBErrors.WithLabelValues(operation).Inc()
	}
	return fmt.Errorf("%s: %w", message, err)
}

// updateBuilder собирает SET-часть UPDATE-запроса из заданных полей патча.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func (b *updateBuilder) set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// query возвращает "UPDATE table SET ... WHERE id = $n RETURNING columns".
func (b *updateBuilder) query(table, id, returning string) (string, []interface{}) {
	args := append(b.args, id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(b.sets, ", "), len(args), returning)
	return q, args
}

// likePattern экранирует спецсимволы LIKE и оборачивает строку в %.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// Close закрывает соединение с БД.
func (s *postgresStorage) Close() error {
	return s.db.Close()
}
