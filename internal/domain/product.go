package domain

import "fmt"

const (
	// DefaultRating присваивается товару, если рейтинг не передан.
	DefaultRating = 4.8
	// DefaultStockQty присваивается товару, если остаток не передан.
	DefaultStockQty = 50
)

// ProductImage описывает одно изображение товара.
type ProductImage struct {
	// URL — публичная ссылка на изображение.
	URL string
	// Alt — альтернативный текст для доступности.
	Alt string
}

// Product описывает товар каталога.
type Product struct {
	// ID назначается хранилищем при создании; hex-строка ObjectID для Mongo.
	ID          string
	Title       string
	Description string
	Price       float64
	Category    string
	Tags        []string
	Images      []ProductImage
	// Rating — средняя оценка в диапазоне 0..5.
	Rating  float64
	InStock bool
	// StockQty — доступный остаток; стор его не декрементирует.
	StockQty int
}

// PrimaryImage возвращает URL первого изображения или пустую строку.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// ValidateInvariants проверяет ограничения полей товара и возвращает список нарушений.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if p.Title == "" {
		errs = append(errs, NewFieldError("title", "must be a non-empty string"))
	}
	if p.Price < 0 {
		errs = append(errs, NewFieldError("price", "must be non-negative"))
	}
	if p.Rating < 0 || p.Rating > 5 {
		errs = append(errs, NewFieldError("rating", "must be within [0, 5]"))
	}
	if p.StockQty < 0 {
		errs = append(errs, NewFieldError("stock_qty", "must be non-negative"))
	}
	for idx, img := range p.Images {
		if img.URL == "" {
			errs = append(errs, NewFieldError(fmt.Sprintf("images[%d].url", idx), "must be a non-empty string"))
		}
	}

	return errs
}
