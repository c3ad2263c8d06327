// Package pricing реализует расчёт стоимости корзины: line totals,
// subtotal, доставка, налог и итог заказа.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
)

// Бизнес-правила фиксированы и не конфигурируются:
// бесплатная доставка от 75.00, иначе плоская ставка 6.99;
// налог 8%, считается от накопленного subtotal ДО его округления.
var (
	freeShippingThreshold = decimal.NewFromFloat(75.00)
	shippingFlatRate      = decimal.NewFromFloat(6.99)
	taxRate               = decimal.NewFromFloat(0.08)
)

// ResolvedItem — позиция корзины с уже загруженным снимком товара.
// Разрешение идентификаторов в товары остаётся за вызывающим кодом,
// поэтому сам расчёт не ходит в хранилище.
type ResolvedItem struct {
	ProductID string
	Title     string
	// Price — авторитетная цена за единицу из каталога.
	Price    decimal.Decimal
	Quantity int
	// Image — URL первого изображения товара, может быть пустым.
	Image string
}

// Quote — результат расчёта корзины. Все суммы округлены до 2 знаков.
type Quote struct {
	Items    []domain.OrderItem
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Compute считает суммы по позициям корзины в порядке их следования.
//
// Порядок округления важен и зафиксирован:
//  1. line_total = round(price * qty, 2) — только для снимка позиции;
//  2. subtotal накапливается из НЕокруглённых line totals;
//  3. налог берётся от сырого накопленного subtotal;
//  4. порог бесплатной доставки сравнивается с сырым subtotal;
//  5. итог = round(round(subtotal, 2) + shipping + tax, 2).
func Compute(items []ResolvedItem) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, domain.ErrEmptyCart
	}

	rawSubtotal := decimal.Zero
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		rawSubtotal = rawSubtotal.Add(lineTotal)

		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     domain.MoneyFloat(item.Price),
			Quantity:  item.Quantity,
			Image:     item.Image,
			LineTotal: domain.MoneyFloat(lineTotal),
		})
	}

	shipping := shippingFlatRate
	if rawSubtotal.GreaterThanOrEqual(freeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := domain.RoundMoney(rawSubtotal.Mul(taxRate))
	subtotal := domain.RoundMoney(rawSubtotal)
	total := domain.RoundMoney(subtotal.Add(shipping).Add(tax))

	return Quote{
		Items:    orderItems,
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
	}, nil
}

// Order собирает из расчёта снимок заказа со статусом "processing".
func (q Quote) Order(customer domain.CustomerInfo, now time.Time) domain.Order {
	return domain.Order{
		Items:     q.Items,
		Subtotal:  domain.MoneyFloat(q.Subtotal),
		Shipping:  domain.MoneyFloat(q.Shipping),
		Tax:       domain.MoneyFloat(q.Tax),
		Total:     domain.MoneyFloat(q.Total),
		Customer:  customer,
		Status:    domain.OrderStatusProcessing,
		CreatedAt: now,
	}
}
