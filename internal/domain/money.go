package domain

import "github.com/shopspring/decimal"

// Денежная арифметика ведётся в decimal, наружу значения отдаются
// с двумя знаками после запятой. Режим округления — half-up
// (decimal.Round округляет half away from zero, для неотрицательных
// цен это совпадает с half-up); применяется одинаково к line total,
// subtotal, налогу и итогу.

// RoundMoney округляет денежную величину до 2 знаков.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MoneyFloat переводит округлённую денежную величину в float64 для JSON/BSON границы.
func MoneyFloat(d decimal.Decimal) float64 {
	f, _ := RoundMoney(d).Float64()
	return f
}
