package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает маршруты API сервиса заказов.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/userorders", handler.ListUserOrders)
	r.Put("/cancel/{orderID}", handler.CancelOrder)
	r.Get("/gstdetails", handler.ListTaxRecords)
	r.Get("/invoices/{orderID}", handler.DownloadInvoice)

	return r
}
