package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
)

// productDocument — форма документа коллекции "product".
// Схема закрыта: обязательные поля без omitempty, чтобы пропуски
// не маскировались значениями по умолчанию при записи.
type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category,omitempty"`
	Tags        []string           `bson:"tags"`
	Images      []imageDocument    `bson:"images"`
	Rating      float64            `bson:"rating"`
	InStock     bool               `bson:"in_stock"`
	StockQty    int                `bson:"stock_qty"`
}

type imageDocument struct {
	URL string `bson:"url"`
	Alt string `bson:"alt,omitempty"`
}

// productRepository реализует domain.ProductRepository поверх MongoDB.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository возвращает репозиторий товаров поверх подключённого стора.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{coll: store.db.Collection(productCollection)}
}

// Find возвращает товары по фильтру: подстрока названия без учёта регистра
// и/или точное совпадение категории.
func (r *productRepository) Find(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := bson.M{}
	if filter.TitleSubstring != "" {
		// QuoteMeta: ищем именно подстроку, а не пользовательский regex.
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.TitleSubstring), Options: "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, doc.toDomain())
	}
	return products, nil
}

// Get возвращает товар по hex-идентификатору ObjectID.
func (r *productRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: %q", domain.ErrInvalidProductID, id)
	}

	var doc productDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}

	return doc.toDomain(), nil
}

// Insert сохраняет товар и возвращает hex назначенного ObjectID.
func (r *productRepository) Insert(ctx context.Context, product domain.Product) (string, error) {
	res, err := r.coll.InsertOne(ctx, fromDomainProduct(product))
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert product: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (d productDocument) toDomain() domain.Product {
	images := make([]domain.ProductImage, 0, len(d.Images))
	for _, img := range d.Images {
		images = append(images, domain.ProductImage{URL: img.URL, Alt: img.Alt})
	}

	return domain.Product{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Tags:        d.Tags,
		Images:      images,
		Rating:      d.Rating,
		InStock:     d.InStock,
		StockQty:    d.StockQty,
	}
}

func fromDomainProduct(p domain.Product) productDocument {
	images := make([]imageDocument, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, imageDocument{URL: img.URL, Alt: img.Alt})
	}

	return productDocument{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Tags:        p.Tags,
		Images:      images,
		Rating:      p.Rating,
		InStock:     p.InStock,
		StockQty:    p.StockQty,
	}
}

var _ domain.ProductRepository = (*productRepository)(nil)
