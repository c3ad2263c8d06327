package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
	"github.com/vladislavdragonenkov/giftnama/internal/storage/memory"
)

func seedProducts(t *testing.T, repo domain.ProductRepository) []string {
	t.Helper()
	ctx := context.Background()

	products := []domain.Product{
		{Title: "Rose Luxe Perfume Gift Set", Price: 89.00, Category: "Fragrances"},
		{Title: "Artisanal Chocolate Hamper", Price: 59.00, Category: "Gourmet"},
		{Title: "Personalized Bamboo Organizer", Price: 35.00, Category: "Personalized"},
	}

	ids := make([]string, 0, len(products))
	for _, p := range products {
		id, err := repo.Insert(ctx, p)
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestProductRepository_InsertAndGet(t *testing.T) {
	repo := memory.NewProductRepository()
	ids := seedProducts(t, repo)

	got, err := repo.Get(context.Background(), ids[0])
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "Rose Luxe Perfume Gift Set" {
		t.Errorf("unexpected title %q", got.Title)
	}
	if got.ID != ids[0] {
		t.Errorf("expected assigned id %s, got %s", ids[0], got.ID)
	}
}

func TestProductRepository_GetUnknown(t *testing.T) {
	repo := memory.NewProductRepository()

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_Find(t *testing.T) {
	repo := memory.NewProductRepository()
	seedProducts(t, repo)
	ctx := context.Background()

	cases := []struct {
		name       string
		filter     domain.ProductFilter
		wantTitles []string
	}{
		{
			name:       "no filter returns all in insertion order",
			filter:     domain.ProductFilter{},
			wantTitles: []string{"Rose Luxe Perfume Gift Set", "Artisanal Chocolate Hamper", "Personalized Bamboo Organizer"},
		},
		{
			name:       "title substring is case-insensitive",
			filter:     domain.ProductFilter{TitleSubstring: "rose"},
			wantTitles: []string{"Rose Luxe Perfume Gift Set"},
		},
		{
			name:       "category is exact match",
			filter:     domain.ProductFilter{Category: "Fragrances"},
			wantTitles: []string{"Rose Luxe Perfume Gift Set"},
		},
		{
			name:       "category match is case-sensitive",
			filter:     domain.ProductFilter{Category: "fragrances"},
			wantTitles: nil,
		},
		{
			name:       "combined filters",
			filter:     domain.ProductFilter{TitleSubstring: "HAMPER", Category: "Gourmet"},
			wantTitles: []string{"Artisanal Chocolate Hamper"},
		},
		{
			name:       "no matches",
			filter:     domain.ProductFilter{TitleSubstring: "tea"},
			wantTitles: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.Find(ctx, tc.filter)
			if err != nil {
				t.Fatalf("find failed: %v", err)
			}
			if len(got) != len(tc.wantTitles) {
				t.Fatalf("expected %d products, got %d", len(tc.wantTitles), len(got))
			}
			for i, title := range tc.wantTitles {
				if got[i].Title != title {
					t.Errorf("product %d: expected %q, got %q", i, title, got[i].Title)
				}
			}
		})
	}
}

func TestProductRepository_InsertCopiesSlices(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()

	tags := []string{"perfume", "gift"}
	images := []domain.ProductImage{{URL: "https://example.com/a.jpg", Alt: "A"}}
	id, err := repo.Insert(ctx, domain.Product{
		Title:  "Rose Luxe Perfume Gift Set",
		Price:  89.00,
		Tags:   tags,
		Images: images,
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	// Мутация слайсов вызывающего не должна менять сохранённый товар.
	tags[0] = "mutated"
	images[0].URL = "https://example.com/mutated.jpg"

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Tags[0] != "perfume" {
		t.Errorf("stored tags affected by caller mutation: %q", got.Tags[0])
	}
	if got.Images[0].URL != "https://example.com/a.jpg" {
		t.Errorf("stored images affected by caller mutation: %q", got.Images[0].URL)
	}

	// И наоборот: мутация возвращённого товара не трогает хранилище.
	got.Tags[0] = "changed"
	again, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if again.Tags[0] != "perfume" {
		t.Errorf("stored tags affected by reader mutation: %q", again.Tags[0])
	}
}

func TestOrderRepository_InsertCopiesItems(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	items := []domain.OrderItem{
		{ProductID: "p1", Title: "Gift", Price: 10, Quantity: 1, LineTotal: 10},
	}
	id, err := repo.Insert(ctx, domain.Order{Items: items, Total: 10, Status: domain.OrderStatusProcessing})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	items[0].Title = "Mutated"

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Items[0].Title != "Gift" {
		t.Errorf("stored items affected by caller mutation: %q", got.Items[0].Title)
	}
}

func TestOrderRepository_InsertAndGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	order := domain.Order{
		Items: []domain.OrderItem{
			{ProductID: "p1", Title: "Gift", Price: 10, Quantity: 1, LineTotal: 10},
		},
		Subtotal: 10,
		Shipping: 6.99,
		Tax:      0.80,
		Total:    17.79,
		Status:   domain.OrderStatusProcessing,
	}

	id, err := repo.Insert(ctx, order)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty order id")
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("expected id %s, got %s", id, got.ID)
	}
	if got.Status != domain.OrderStatusProcessing {
		t.Errorf("expected status processing, got %s", got.Status)
	}

	_, err = repo.Get(ctx, "missing")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
