package cache

import (
	"container/list"
	"context"
	"log"
	"sync"

	"courier_oms/internal/database"
	"courier_oms/internal/metrics"
	"courier_oms/internal/model"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=lru.go -destination=./mocks/cache_mock.go -package=mocks Cache

// Cache хранит публичные проекции трекинга по номеру заказа.
// Контекст добавлен для поддержки сквозной трассировки.
type Cache interface {
	Set(ctx context.Context, orderNumber string, value *model.PublicTracking)
	Get(ctx context.Context, orderNumber string) (*model.PublicTracking, bool)
	// Delete инвалидирует запись после любой записи в заказ.
	Delete(ctx context.Context, orderNumber string)
}

// lruCache реализует LRU (Least Recently Used) кэш.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	tracer   trace.Tracer // Для трассировки
}

type cacheItem struct {
	key   string
	value model.PublicTracking
}

// NewLRUCache создает новый LRU-кэш с заданной емкостью.
func NewLRUCache(capacity int) Cache {
	return &lruCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		queue:    list.New(),
		tracer:   otel.Tracer("lru-cache"),
	}
}

func (c *lruCache) Set(ctx context.Context, orderNumber string, value *model.PublicTracking) {
	_, span := c.tracer.Start(ctx, "Cache.Set")
	defer span.End()

	if value == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity <= 0 {
		return
	}

	// Храним копию, чтобы вызывающий код не мог изменить запись
	stored := copyTracking(value)

	if element, exists := c.items[orderNumber]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*cacheItem).value = stored
		return
	}

	if c.queue.Len() >= c.capacity {
		c.removeOldest()
	}

	element := c.queue.PushFront(&cacheItem{key: orderNumber, value: stored})
	c.items[orderNumber] = element

	metrics.CacheSize.Set(float64(c.queue.Len()))
}

func (c *lruCache) Get(ctx context.Context, orderNumber string) (*model.PublicTracking, bool) {
	_, span := c.tracer.Start(ctx, "Cache.Get")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[orderNumber]; exists {
		c.queue.MoveToFront(element)
		value := copyTracking(&element.Value.(*cacheItem).value)
		return &value, true
	}

	return nil, false
}

func (c *lruCache) Delete(ctx context.Context, orderNumber string) {
	_, span := c.tracer.Start(ctx, "Cache.Delete")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[orderNumber]; exists {
		c.queue.Remove(element)
		delete(c.items, orderNumber)
		metrics.CacheSize.Set(float64(c.queue.Len()))
	}
}

// removeOldest удаляет самый старый элемент (внутренняя функция, мьютекс уже захвачен).
func (c *lruCache) removeOldest() {
	element := c.queue.Back()
	if element != nil {
		item := c.queue.Remove(element).(*cacheItem)
		delete(c.items, item.key)

		metrics.CacheEvictions.Inc()
		metrics.CacheSize.Set(float64(c.queue.Len()))
	}
}

func copyTracking(v *model.PublicTracking) model.PublicTracking {
	out := *v
	out.TrackingHistory = append([]model.TrackingEvent{}, v.TrackingHistory...)
	return out
}

// WarmUp загружает в кэш публичный трекинг последних limit заказов.
func WarmUp(ctx context.Context, storage database.Storage, cache Cache, limit int) error {
	log.Println("Выполняется прогрев кэша...")
	list, err := storage.ListOrders(ctx, model.OrderFilter{Limit: limit})
	if err != nil {
		return err
	}

	loaded := 0
	for _, o := range list.Orders {
		history, err := storage.GetTracking(ctx, o.ID)
		if err != nil {
			return err
		}
		o.TrackingHistory = history
		public := o.Public()
		cache.Set(ctx, o.OrderNumber, &public)
		loaded++
	}

	log.Printf("Кэш прогрет. Загружено %d заказов.", loaded)
	return nil
}
