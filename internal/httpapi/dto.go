package httpapi

import "github.com/vladislavdragonenkov/giftnama/internal/domain"

// productPayload — тело POST /api/products. Указатели отличают
// «поле не передано» от явного нулевого значения, чтобы корректно
// применять значения по умолчанию.
type productPayload struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       *float64       `json:"price"`
	Category    string         `json:"category"`
	Tags        []string       `json:"tags"`
	Images      []imagePayload `json:"images"`
	Rating      *float64       `json:"rating"`
	InStock     *bool          `json:"in_stock"`
	StockQty    *int           `json:"stock_qty"`
}

type imagePayload struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// toDomain применяет значения по умолчанию: rating 4.8, in_stock true, stock_qty 50.
func (p *productPayload) toDomain() domain.Product {
	product := domain.Product{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Tags:        p.Tags,
		Rating:      domain.DefaultRating,
		InStock:     true,
		StockQty:    domain.DefaultStockQty,
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Rating != nil {
		product.Rating = *p.Rating
	}
	if p.InStock != nil {
		product.InStock = *p.InStock
	}
	if p.StockQty != nil {
		product.StockQty = *p.StockQty
	}
	if p.Tags == nil {
		product.Tags = []string{}
	}
	for _, img := range p.Images {
		product.Images = append(product.Images, domain.ProductImage{URL: img.URL, Alt: img.Alt})
	}
	return product
}

type productResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    string          `json:"category,omitempty"`
	Tags        []string        `json:"tags"`
	Images      []imagePayload  `json:"images"`
	Rating      float64         `json:"rating"`
	InStock     bool            `json:"in_stock"`
	StockQty    int             `json:"stock_qty"`
}

func mapProductToResponse(p domain.Product) productResponse {
	images := make([]imagePayload, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, imagePayload{URL: img.URL, Alt: img.Alt})
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return productResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Tags:        tags,
		Images:      images,
		Rating:      p.Rating,
		InStock:     p.InStock,
		StockQty:    p.StockQty,
	}
}

// checkoutRequest — тело POST /api/checkout; адресные поля плоские.
type checkoutRequest struct {
	Items             []cartItemPayload `json:"items"`
	CustomerName      string            `json:"customer_name"`
	CustomerEmail     string            `json:"customer_email"`
	AddressLine1      string            `json:"address_line1"`
	AddressCity       string            `json:"address_city"`
	AddressState      string            `json:"address_state"`
	AddressPostalCode string            `json:"address_postal_code"`
	AddressCountry    string            `json:"address_country"`
}

type cartItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r *checkoutRequest) toDomain() domain.CheckoutRequest {
	items := make([]domain.CartItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	country := r.AddressCountry
	if country == "" {
		country = "US"
	}

	return domain.CheckoutRequest{
		Items: items,
		Customer: domain.CustomerInfo{
			Name:         r.CustomerName,
			Email:        r.CustomerEmail,
			AddressLine1: r.AddressLine1,
			City:         r.AddressCity,
			State:        r.AddressState,
			PostalCode:   r.AddressPostalCode,
			Country:      country,
		},
	}
}

type checkoutResponse struct {
	OrderID  string              `json:"order_id,omitempty"`
	Items    []orderItemResponse `json:"items"`
	Subtotal float64             `json:"subtotal"`
	Shipping float64             `json:"shipping"`
	Tax      float64             `json:"tax"`
	Total    float64             `json:"total"`
	Status   string              `json:"status"`
	Message  string              `json:"message"`
}

type orderItemResponse struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	LineTotal float64 `json:"line_total"`
}

func mapOrderToResponse(orderID string, order domain.Order, message string) checkoutResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			LineTotal: item.LineTotal,
		})
	}

	return checkoutResponse{
		OrderID:  orderID,
		Items:    items,
		Subtotal: order.Subtotal,
		Shipping: order.Shipping,
		Tax:      order.Tax,
		Total:    order.Total,
		Status:   string(order.Status),
		Message:  message,
	}
}

// diagnosticsResponse — ответ GET /test с состоянием окружения и хранилища.
type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type healthMessage struct {
	Message string `json:"message"`
}
