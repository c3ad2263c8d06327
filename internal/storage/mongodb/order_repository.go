package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
)

// orderDocument — форма документа коллекции "order".
type orderDocument struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Items     []orderItemDocument `bson:"items"`
	Subtotal  float64             `bson:"subtotal"`
	Shipping  float64             `bson:"shipping"`
	Tax       float64             `bson:"tax"`
	Total     float64             `bson:"total"`
	Customer  customerDocument    `bson:"customer"`
	Status    string              `bson:"status"`
	CreatedAt time.Time           `bson:"created_at"`
}

type orderItemDocument struct {
	ProductID string  `bson:"product_id"`
	Title     string  `bson:"title"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
	Image     string  `bson:"image,omitempty"`
	LineTotal float64 `bson:"line_total"`
}

type customerDocument struct {
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	Phone        string `bson:"phone,omitempty"`
	AddressLine1 string `bson:"address_line1"`
	AddressLine2 string `bson:"address_line2,omitempty"`
	City         string `bson:"city"`
	State        string `bson:"state"`
	PostalCode   string `bson:"postal_code"`
	Country      string `bson:"country"`
}

// orderRepository реализует domain.OrderRepository поверх MongoDB.
type orderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository возвращает репозиторий заказов поверх подключённого стора.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{coll: store.db.Collection(orderCollection)}
}

// Insert сохраняет новый заказ и возвращает hex назначенного ObjectID.
func (r *orderRepository) Insert(ctx context.Context, order domain.Order) (string, error) {
	res, err := r.coll.InsertOne(ctx, fromDomainOrder(order))
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert order: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Get возвращает заказ по hex-идентификатору ObjectID.
func (r *orderRepository) Get(ctx context.Context, id string) (domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %q", domain.ErrOrderNotFound, id)
	}

	var doc orderDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, id)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}

	return doc.toDomain(), nil
}

func fromDomainOrder(o domain.Order) orderDocument {
	items := make([]orderItemDocument, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemDocument{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			LineTotal: item.LineTotal,
		})
	}

	return orderDocument{
		Items:    items,
		Subtotal: o.Subtotal,
		Shipping: o.Shipping,
		Tax:      o.Tax,
		Total:    o.Total,
		Customer: customerDocument{
			Name:         o.Customer.Name,
			Email:        o.Customer.Email,
			Phone:        o.Customer.Phone,
			AddressLine1: o.Customer.AddressLine1,
			AddressLine2: o.Customer.AddressLine2,
			City:         o.Customer.City,
			State:        o.Customer.State,
			PostalCode:   o.Customer.PostalCode,
			Country:      o.Customer.Country,
		},
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func (d orderDocument) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			LineTotal: item.LineTotal,
		})
	}

	return domain.Order{
		ID:       d.ID.Hex(),
		Items:    items,
		Subtotal: d.Subtotal,
		Shipping: d.Shipping,
		Tax:      d.Tax,
		Total:    d.Total,
		Customer: domain.CustomerInfo{
			Name:         d.Customer.Name,
			Email:        d.Customer.Email,
			Phone:        d.Customer.Phone,
			AddressLine1: d.Customer.AddressLine1,
			AddressLine2: d.Customer.AddressLine2,
			City:         d.Customer.City,
			State:        d.Customer.State,
			PostalCode:   d.Customer.PostalCode,
			Country:      d.Customer.Country,
		},
		Status:    domain.OrderStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

var _ domain.OrderRepository = (*orderRepository)(nil)
