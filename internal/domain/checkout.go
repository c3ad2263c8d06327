package domain

import "fmt"

// CartItem — позиция корзины во входящем запросе оформления заказа.
type CartItem struct {
	// ProductID — идентификатор товара; должен ссылаться на существующий товар.
	ProductID string
	// Quantity — количество единиц, не меньше 1.
	Quantity int
}

// CheckoutRequest — запрос оформления заказа после декодирования.
type CheckoutRequest struct {
	Items    []CartItem
	Customer CustomerInfo
}

// ValidateInvariants проверяет запрос до того, как он попадёт в расчёт цены.
// Пустая корзина возвращает ErrEmptyCart, остальные нарушения — FieldError.
func (r *CheckoutRequest) ValidateInvariants() []error {
	var errs []error

	if len(r.Items) == 0 {
		errs = append(errs, ErrEmptyCart)
	}
	for idx, item := range r.Items {
		if item.ProductID == "" {
			errs = append(errs, NewFieldError(fmt.Sprintf("items[%d].product_id", idx), "must be a non-empty string"))
		}
		if item.Quantity < 1 {
			errs = append(errs, NewFieldError(fmt.Sprintf("items[%d].quantity", idx), "must be at least 1"))
		}
	}

	errs = append(errs, r.Customer.ValidateInvariants()...)

	return errs
}
