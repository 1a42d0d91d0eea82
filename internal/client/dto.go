package client

import (
	"time"

	"github.com/brightcomgroup/storefront/internal/domain"
)

// orderPayload — форма заказа на проводе. Схема явная: payload валидируется
// и приводится к доменному типу на границе, а не в точках использования.
type orderPayload struct {
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

func (p orderPayload) toDomain() domain.Order {
	return domain.Order{
		OrderID:            p.OrderID,
		UserID:             p.UserID,
		ProductID:          p.ProductID,
		Title:              p.Title,
		Address:            p.Address,
		ImagePath:          p.ImagePath,
		Price:              p.Price,
		Quantity:           p.Quantity,
		Status:             domain.OrderStatus(p.Status),
		CancellationReason: p.CancellationReason,
		CreatedAt:          p.CreatedAt,
	}
}

// taxPayload — форма налоговой записи на проводе.
type taxPayload struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	ProductCost   float64 `json:"product_cost"`
	GSTPercentage float64 `json:"gst_percentage"`
}

func (p taxPayload) toDomain() domain.TaxRecord {
	return domain.TaxRecord{
		ID:            p.ID,
		Title:         p.Title,
		Brand:         p.Brand,
		Category:      p.Category,
		ProductCost:   p.ProductCost,
		GSTPercentage: p.GSTPercentage,
	}
}

// cancelPayload — тело PUT-запроса на отмену заказа.
type cancelPayload struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason"`
}
