package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus - статус заказа. Переходы между статусами не ограничены.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusInTransit  OrderStatus = "in-transit"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

type ServiceType string

const (
	ServiceExpress ServiceType = "express"
	ServiceRegular ServiceType = "regular"
	ServiceEconomy ServiceType = "economy"
)

type PackageType string

const (
	PackageDocument PackageType = "document"
	PackagePackage  PackageType = "package"
	PackageParcel   PackageType = "parcel"
	PackageCargo    PackageType = "cargo"
)

// Order - центральная сущность: отправление от отправителя к получателю.
type Order struct {
	ID          string `json:"id" db:"id"`
	OrderNumber string `json:"orderNumber" db:"order_number"`

	SenderName    string `json:"senderName" db:"sender_name"`
	SenderPhone   string `json:"senderPhone" db:"sender_phone"`
	SenderEmail   string `json:"senderEmail" db:"sender_email"`
	SenderAddress string `json:"senderAddress" db:"sender_address"`

	RecipientName    string `json:"recipientName" db:"recipient_name"`
	RecipientPhone   string `json:"recipientPhone" db:"recipient_phone"`
	RecipientEmail   string `json:"recipientEmail" db:"recipient_email"`
	RecipientAddress string `json:"recipientAddress" db:"recipient_address"`

	PackageType   PackageType         `json:"packageType" db:"package_type"`
	Weight        decimal.NullDecimal `json:"weight" db:"weight"`
	DeclaredValue decimal.NullDecimal `json:"declaredValue" db:"declared_value"`
	Description   string              `json:"description" db:"description"`

	ServiceType ServiceType `json:"serviceType" db:"service_type"`
	FromRegion  Region      `json:"fromRegion" db:"from_region"`
	ToRegion    Region      `json:"toRegion" db:"to_region"`

	IsCOD              bool                `json:"isCod" db:"is_cod"`
	CODAmount          decimal.NullDecimal `json:"codAmount" db:"cod_amount"`
	HasInsurance       bool                `json:"hasInsurance" db:"has_insurance"`
	HasSMSNotification bool                `json:"hasSmsNotification" db:"has_sms_notification"`

	ShippingRate decimal.NullDecimal `json:"shippingRate" db:"shipping_rate"`
	TotalAmount  decimal.NullDecimal `json:"totalAmount" db:"total_amount"`

	Status          OrderStatus `json:"status" db:"status"`
	AssignedAgentID *string     `json:"assignedAgentId" db:"assigned_agent_id"`

	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery" db:"estimated_delivery"`
	ActualDelivery    *time.Time `json:"actualDelivery" db:"actual_delivery"`
}

// OrderNumberPrefix - префикс публичного номера заказа.
const OrderNumberPrefix = "LBC"

// FormatOrderNumber собирает номер вида LBC-2025-000042 из года создания
// и значения последовательности.
func FormatOrderNumber(year int, seq int64) string {
	return fmt.Sprintf("%s-%04d-%06d", OrderNumberPrefix, year, seq%1_000_000)
}

// OrderDraft - данные для создания заказа. Номер, идентификатор и
// временные метки назначаются сервером.
type OrderDraft struct {
	SenderName    string `json:"senderName" validate:"required,max=255"`
	SenderPhone   string `json:"senderPhone" validate:"max=32"`
	SenderEmail   string `json:"senderEmail" validate:"omitempty,email"`
	SenderAddress string `json:"senderAddress" validate:"required"`

	RecipientName    string `json:"recipientName" validate:"required,max=255"`
	RecipientPhone   string `json:"recipientPhone" validate:"max=32"`
	RecipientEmail   string `json:"recipientEmail" validate:"omitempty,email"`
	RecipientAddress string `json:"recipientAddress" validate:"required"`

	PackageType   PackageType         `json:"packageType" validate:"required,oneof=document package parcel cargo"`
	Weight        decimal.NullDecimal `json:"weight"`
	DeclaredValue decimal.NullDecimal `json:"declaredValue"`
	Description   string              `json:"description"`

	ServiceType ServiceType `json:"serviceType" validate:"required,oneof=express regular economy"`
	FromRegion  Region      `json:"fromRegion" validate:"required,region"`
	ToRegion    Region      `json:"toRegion" validate:"required,region"`

	IsCOD              bool                `json:"isCod"`
	CODAmount          decimal.NullDecimal `json:"codAmount"`
	HasInsurance       bool                `json:"hasInsurance"`
	HasSMSNotification bool                `json:"hasSmsNotification"`

	ShippingRate decimal.NullDecimal `json:"shippingRate"`
	TotalAmount  decimal.NullDecimal `json:"totalAmount"`

	Status          OrderStatus `json:"status" validate:"omitempty,oneof=pending processing in-transit delivered cancelled"`
	AssignedAgentID *string     `json:"assignedAgentId" validate:"omitnil,uuid"`

	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	ActualDelivery    *time.Time `json:"actualDelivery"`
}

// NewOrder собирает заказ из черновика. Статус по умолчанию - pending.
func NewOrder(d OrderDraft) Order {
	status := d.Status
	if status == "" {
		status = StatusPending
	}
	return Order{
		SenderName:         d.SenderName,
		SenderPhone:        d.SenderPhone,
		SenderEmail:        d.SenderEmail,
		SenderAddress:      d.SenderAddress,
		RecipientName:      d.RecipientName,
		RecipientPhone:     d.RecipientPhone,
		RecipientEmail:     d.RecipientEmail,
		RecipientAddress:   d.RecipientAddress,
		PackageType:        d.PackageType,
		Weight:             d.Weight,
		DeclaredValue:      d.DeclaredValue,
		Description:        d.Description,
		ServiceType:        d.ServiceType,
		FromRegion:         d.FromRegion,
		ToRegion:           d.ToRegion,
		IsCOD:              d.IsCOD,
		CODAmount:          d.CODAmount,
		HasInsurance:       d.HasInsurance,
		HasSMSNotification: d.HasSMSNotification,
		ShippingRate:       d.ShippingRate,
		TotalAmount:        d.TotalAmount,
		Status:             status,
		AssignedAgentID:    d.AssignedAgentID,
		EstimatedDelivery:  d.EstimatedDelivery,
		ActualDelivery:     d.ActualDelivery,
	}
}

// OrderPatch - частичное обновление заказа: nil означает "не менять".
// Номер заказа в патч не входит, он неизменяем.
type OrderPatch struct {
	SenderName    *string `json:"senderName" validate:"omitnil,min=1,max=255"`
	SenderPhone   *string `json:"senderPhone" validate:"omitnil,max=32"`
	SenderEmail   *string `json:"senderEmail" validate:"omitnil,omitempty,email"`
	SenderAddress *string `json:"senderAddress" validate:"omitnil,min=1"`

	RecipientName    *string `json:"recipientName" validate:"omitnil,min=1,max=255"`
	RecipientPhone   *string `json:"recipientPhone" validate:"omitnil,max=32"`
	RecipientEmail   *string `json:"recipientEmail" validate:"omitnil,omitempty,email"`
	RecipientAddress *string `json:"recipientAddress" validate:"omitnil,min=1"`

	PackageType   *PackageType         `json:"packageType" validate:"omitnil,oneof=document package parcel cargo"`
	Weight        *decimal.NullDecimal `json:"weight"`
	DeclaredValue *decimal.NullDecimal `json:"declaredValue"`
	Description   *string              `json:"description"`

	ServiceType *ServiceType `json:"serviceType" validate:"omitnil,oneof=express regular economy"`
	FromRegion  *Region      `json:"fromRegion" validate:"omitnil,region"`
	ToRegion    *Region      `json:"toRegion" validate:"omitnil,region"`

	IsCOD              *bool                `json:"isCod"`
	CODAmount          *decimal.NullDecimal `json:"codAmount"`
	HasInsurance       *bool                `json:"hasInsurance"`
	HasSMSNotification *bool                `json:"hasSmsNotification"`

	ShippingRate *decimal.NullDecimal `json:"shippingRate"`
	TotalAmount  *decimal.NullDecimal `json:"totalAmount"`

	Status          *OrderStatus `json:"status" validate:"omitnil,oneof=pending processing in-transit delivered cancelled"`
	AssignedAgentID *string      `json:"assignedAgentId" validate:"omitnil,omitempty,uuid"`

	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	ActualDelivery    *time.Time `json:"actualDelivery"`
}

// OrderWithDetails - заказ вместе с назначенным агентом и историей трекинга.
type OrderWithDetails struct {
	Order
	AssignedAgent   *DeliveryAgent  `json:"assignedAgent,omitempty"`
	TrackingHistory []TrackingEvent `json:"trackingHistory,omitempty"`
}

// PublicTracking - урезанная проекция для публичного трекинга по номеру.
// Контакты отправителя и финансовые поля сюда не попадают.
type PublicTracking struct {
	OrderNumber       string          `json:"orderNumber"`
	Status            OrderStatus     `json:"status"`
	RecipientName     string          `json:"recipientName"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery"`
	TrackingHistory   []TrackingEvent `json:"trackingHistory"`
}

// Public возвращает публичную проекцию заказа.
func (o *OrderWithDetails) Public() PublicTracking {
	history := o.TrackingHistory
	if history == nil {
		history = []TrackingEvent{}
	}
	return PublicTracking{
		OrderNumber:       o.OrderNumber,
		Status:            o.Status,
		RecipientName:     o.RecipientName,
		EstimatedDelivery: o.EstimatedDelivery,
		TrackingHistory:   history,
	}
}

// DefaultOrderLimit - размер страницы по умолчанию.
const DefaultOrderLimit = 50

// OrderFilter - фильтры списка заказов. Заданные фильтры объединяются через AND.
type OrderFilter struct {
	Status  string
	AgentID string
	Search  string
	Limit   int
	Offset  int
}

type OrderList struct {
	Orders []OrderWithDetails `json:"orders"`
	Total  int                `json:"total"`
}

// OrderStats - сводка для дашборда.
type OrderStats struct {
	TotalOrders     int `json:"totalOrders" db:"total_orders"`
	PendingOrders   int `json:"pendingOrders" db:"pending_orders"`
	InTransitOrders int `json:"inTransitOrders" db:"in_transit_orders"`
	DeliveredOrders int `json:"deliveredOrders" db:"delivered_orders"`
}
