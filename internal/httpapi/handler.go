// Package httpapi реализует публичный HTTP/JSON интерфейс магазина.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
	"github.com/vladislavdragonenkov/giftnama/internal/service/catalog"
	"github.com/vladislavdragonenkov/giftnama/internal/service/checkout"
	"github.com/vladislavdragonenkov/giftnama/internal/storage/mongodb"
)

// Diagnostics — источники данных для GET /test.
type Diagnostics struct {
	// Store nil, когда хранилище не сконфигурировано или недоступно.
	Store           *mongodb.Store
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// Handler связывает HTTP-маршруты с сервисами каталога и оформления заказа.
type Handler struct {
	catalog     *catalog.Service
	checkout    *checkout.Service
	diagnostics Diagnostics
	logger      *log.Entry
}

// NewHandler конструирует HTTP-обработчик.
func NewHandler(catalogSvc *catalog.Service, checkoutSvc *checkout.Service, diag Diagnostics, logger *log.Entry) *Handler {
	if logger == nil {
		logger = log.WithField("component", "http-api")
	}
	return &Handler{
		catalog:     catalogSvc,
		checkout:    checkoutSvc,
		diagnostics: diag,
		logger:      logger,
	}
}

// Root — GET /: сообщение о живости сервиса.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthMessage{Message: "Giftnama API running"})
}

// ListProducts — GET /api/products с опциональными фильтрами q и category.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProductFilter{
		TitleSubstring: r.URL.Query().Get("q"),
		Category:       r.URL.Query().Get("category"),
	}

	products, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, mapProductToResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateProduct — POST /api/products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	id, err := h.catalog.Create(r.Context(), payload.toDomain())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	// Тело ответа — назначенный идентификатор как JSON-строка.
	writeJSON(w, http.StatusCreated, id)
}

// Checkout — POST /api/checkout.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var payload checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	result, err := h.checkout.Checkout(r.Context(), payload.toDomain())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapOrderToResponse(result.OrderID, result.Order, result.Message))
}

// Test — GET /test: диагностика окружения и подключения к хранилищу.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	resp := diagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "MongoDB",
		DatabaseURL:      envStatus(h.diagnostics.DatabaseURLSet),
		DatabaseName:     envStatus(h.diagnostics.DatabaseNameSet),
		ConnectionStatus: "❌ Not Connected",
		Collections:      []string{},
	}

	if h.diagnostics.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.diagnostics.Store.Ping(ctx); err != nil {
			resp.ConnectionStatus = "❌ Error: " + err.Error()
		} else {
			resp.ConnectionStatus = "✅ Connected"
			names, err := h.diagnostics.Store.CollectionNames(ctx)
			if err != nil {
				h.logger.WithError(err).Warn("failed to list collections")
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				resp.Collections = names
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeServiceError переводит доменные ошибки в HTTP-статусы:
// ошибки клиента в 400/404, недоступность хранилища в 503, прочее в 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	var field *domain.FieldError

	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, "validation_failed", validation.Error())
	case errors.As(err, &field):
		writeError(w, http.StatusBadRequest, "validation_failed", field.Error())
	case errors.Is(err, domain.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "empty_cart", "cart must contain at least one item")
	case errors.Is(err, domain.ErrInvalidProductID):
		writeError(w, http.StatusBadRequest, "invalid_product_id", err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "product_not_found", err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "store_unavailable", err.Error())
	default:
		h.logger.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func envStatus(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{
		Error:   code,
		Message: msg,
	})
}
