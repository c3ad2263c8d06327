package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа.
//
// Переходы движутся только вперёд: processing -> shipped -> delivered,
// с боковой веткой в cancelled из любого нетерминального состояния.
// В текущем объёме API статус выставляется один раз при создании заказа
// и дальше не меняется; цепочка задокументирована для будущих расширений.
type OrderStatus string

const (
	// OrderStatusProcessing — заказ создан и ожидает обработки.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered — заказ доставлен (терминальное состояние).
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled — заказ отменён (терминальное состояние).
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem — снимок позиции заказа на момент оформления.
// Цена и название копируются из товара и не зависят от его последующих изменений.
type OrderItem struct {
	ProductID string
	Title     string
	// Price — цена за единицу на момент оформления.
	Price    float64
	Quantity int
	// Image — URL первого изображения товара; пустая строка, если изображений нет.
	Image string
	// LineTotal = Price * Quantity, округлённый до 2 знаков.
	LineTotal float64
}

// CustomerInfo содержит данные покупателя и адрес доставки.
type CustomerInfo struct {
	Name         string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	// Country по умолчанию "US".
	Country string
}

// ValidateInvariants проверяет обязательные поля покупателя.
func (c *CustomerInfo) ValidateInvariants() []error {
	var errs []error

	required := []struct {
		field, value string
	}{
		{"customer_name", c.Name},
		{"customer_email", c.Email},
		{"address_line1", c.AddressLine1},
		{"address_city", c.City},
		{"address_state", c.State},
		{"address_postal_code", c.PostalCode},
	}
	for _, f := range required {
		if f.value == "" {
			errs = append(errs, NewFieldError(f.field, "must be a non-empty string"))
		}
	}

	return errs
}

// Order агрегирует снимок корзины, суммы и данные покупателя.
type Order struct {
	// ID назначается хранилищем; пустая строка, пока заказ не сохранён.
	ID       string
	Items    []OrderItem
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
	Customer CustomerInfo
	Status   OrderStatus
	// CreatedAt фиксирует момент оформления.
	CreatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if len(o.Items) == 0 {
		errs = append(errs, ErrEmptyCart)
	}
	if o.Subtotal < 0 {
		errs = append(errs, NewFieldError("subtotal", "must be non-negative"))
	}
	if o.Shipping < 0 {
		errs = append(errs, NewFieldError("shipping", "must be non-negative"))
	}
	if o.Tax < 0 {
		errs = append(errs, NewFieldError("tax", "must be non-negative"))
	}
	if o.Total < 0 {
		errs = append(errs, NewFieldError("total", "must be non-negative"))
	}

	// Сверяем итог: total = round(subtotal + shipping + tax, 2).
	calc := decimal.NewFromFloat(o.Subtotal).
		Add(decimal.NewFromFloat(o.Shipping)).
		Add(decimal.NewFromFloat(o.Tax))
	if !RoundMoney(calc).Equal(decimal.NewFromFloat(o.Total)) {
		errs = append(errs, NewFieldError("total", "must equal subtotal + shipping + tax"))
	}

	for idx, item := range o.Items {
		if item.Quantity < 1 {
			errs = append(errs, NewFieldError(fmt.Sprintf("items[%d].quantity", idx), "must be at least 1"))
		}
		if item.Price < 0 {
			errs = append(errs, NewFieldError(fmt.Sprintf("items[%d].price", idx), "must be non-negative"))
		}
	}

	return errs
}
