// Package seed наполняет пустой каталог демонстрационными товарами.
package seed

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
)

// Products идемпотентно записывает демо-товары: сидирование выполняется
// только когда каталог полностью пуст, повторные запуски ничего не меняют.
func Products(ctx context.Context, repo domain.ProductRepository, logger *log.Entry) error {
	if logger == nil {
		logger = log.WithField("component", "seed")
	}

	existing, err := repo.Find(ctx, domain.ProductFilter{})
	if err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if len(existing) > 0 {
		logger.WithField("products", len(existing)).Debug("catalog is not empty, skipping seed")
		return nil
	}

	for _, product := range DemoProducts() {
		if _, err := repo.Insert(ctx, product); err != nil {
			return fmt.Errorf("seed product %q: %w", product.Title, err)
		}
	}

	logger.WithField("products", len(DemoProducts())).Info("seeded demo catalog")
	return nil
}

// DemoProducts возвращает стартовый ассортимент магазина подарков.
func DemoProducts() []domain.Product {
	return []domain.Product{
		{
			Title:       "Rose Luxe Perfume Gift Set",
			Description: "An elegant duo of eau de parfum and travel spray in a velvet keepsake box.",
			Price:       89.0,
			Category:    "Fragrances",
			Tags:        []string{"perfume", "valentine", "luxury", "gift"},
			Images: []domain.ProductImage{
				{URL: "https://images.unsplash.com/photo-1611930022073-b7a4ba5fcccd", Alt: "Perfume bottle"},
			},
			Rating:   4.9,
			InStock:  true,
			StockQty: 120,
		},
		{
			Title:       "Artisanal Chocolate Hamper",
			Description: "Curated Belgian chocolates with roasted nuts, sea salt caramels and truffles.",
			Price:       59.0,
			Category:    "Gourmet",
			Tags:        []string{"chocolate", "hamper", "birthday"},
			Images: []domain.ProductImage{
				{URL: "https://images.unsplash.com/photo-1541976076758-347942db1970", Alt: "Chocolate gift"},
			},
			Rating:   4.7,
			InStock:  true,
			StockQty: 80,
		},
		{
			Title:       "Personalized Bamboo Organizer",
			Description: "Engraved desk organizer crafted from sustainable bamboo.",
			Price:       35.0,
			Category:    "Personalized",
			Tags:        []string{"desk", "bamboo", "personalized"},
			Images: []domain.ProductImage{
				{URL: "https://images.unsplash.com/photo-1524758631624-e2822e304c36", Alt: "Desk organizer"},
			},
			Rating:   4.6,
			InStock:  true,
			StockQty: 50,
		},
	}
}
