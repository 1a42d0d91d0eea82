package server

import (
	"time"

	"github.com/brightcomgroup/storefront/internal/domain"
)

// orderResponse — форма заказа в ответах API.
type orderResponse struct {
	OrderID            string    `json:"order_id"`
	UserID             string    `json:"user_id"`
	ProductID          string    `json:"product_id"`
	Title              string    `json:"title"`
	Address            string    `json:"address"`
	ImagePath          string    `json:"image_path"`
	Price              float64   `json:"price"`
	Quantity           int32     `json:"quantity"`
	Status             string    `json:"status"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func mapOrderToResponse(order domain.Order) orderResponse {
	return orderResponse{
		OrderID:            order.OrderID,
		UserID:             order.UserID,
		ProductID:          order.ProductID,
		Title:              order.Title,
		Address:            order.Address,
		ImagePath:          order.ImagePath,
		Price:              order.Price,
		Quantity:           order.Quantity,
		Status:             string(order.Status),
		CancellationReason: order.CancellationReason,
		CreatedAt:          order.CreatedAt,
	}
}

func mapOrdersToResponse(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, order := range orders {
		out[i] = mapOrderToResponse(order)
	}
	return out
}

// taxResponse — форма налоговой записи в ответах API.
type taxResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	ProductCost   float64 `json:"product_cost"`
	GSTPercentage float64 `json:"gst_percentage"`
}

func mapTaxRecordsToResponse(records []domain.TaxRecord) []taxResponse {
	out := make([]taxResponse, len(records))
	for i, record := range records {
		out[i] = taxResponse{
			ID:            record.ID,
			Title:         record.Title,
			Brand:         record.Brand,
			Category:      record.Category,
			ProductCost:   record.ProductCost,
			GSTPercentage: record.GSTPercentage,
		}
	}
	return out
}

// cancelRequest — тело PUT-запроса на отмену заказа.
type cancelRequest struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason"`
}

// errorResponse — машинно-читаемая ошибка API.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
