package app

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/brightcomgroup/storefront/internal/domain"
)

// seedDemoData наполняет хранилища небольшим набором заказов и налоговых
// записей. Используется для локальной разработки и демо-стендов.
func seedDemoData(orders domain.OrderRepository, taxes domain.TaxRepository, logger *log.Entry) {
	demoUserID := "demo-user"
	now := time.Now().UTC()

	products := []struct {
		id     string
		title  string
		brand  string
		cost   float64
		gstPct float64
	}{
		{id: uuid.NewString(), title: "Water Purifier Classic", brand: "AquaPure", cost: 8000, gstPct: 18},
		{id: uuid.NewString(), title: "Sediment Filter Pack", brand: "AquaPure", cost: 600, gstPct: 12},
		{id: uuid.NewString(), title: "Copper Cartridge", brand: "HydroMax", cost: 1500, gstPct: 18},
	}

	for _, p := range products {
		if err := taxes.Put(domain.TaxRecord{
			ID:            p.id,
			Title:         p.title,
			Brand:         p.brand,
			Category:      "water-purifiers",
			ProductCost:   p.cost,
			GSTPercentage: p.gstPct,
		}); err != nil {
			logger.WithError(err).WithField("product_id", p.id).Warn("failed to seed tax record")
		}
	}

	demoOrders := []domain.Order{
		{
			OrderID:   uuid.NewString(),
			UserID:    demoUserID,
			ProductID: products[0].id,
			Title:     products[0].title,
			Address:   "42 Brigade Road\nBengaluru 560001",
			ImagePath: "/images/purifier-classic.jpg",
			Price:     9440,
			Quantity:  1,
			Status:    domain.OrderStatusDelivering,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			OrderID:   uuid.NewString(),
			UserID:    demoUserID,
			ProductID: products[1].id,
			Title:     products[1].title,
			Address:   "42 Brigade Road\nBengaluru 560001",
			ImagePath: "/images/sediment-pack.jpg",
			Price:     672,
			Quantity:  2,
			Status:    domain.OrderStatusDelivered,
			CreatedAt: now.Add(-72 * time.Hour),
		},
		{
			OrderID:   uuid.NewString(),
			UserID:    demoUserID,
			ProductID: products[2].id,
			Title:     products[2].title,
			Address:   "42 Brigade Road\nBengaluru 560001",
			ImagePath: "/images/copper-cartridge.jpg",
			Price:     1770,
			Quantity:  1,
			Status:    domain.OrderStatusCancelled,
			CreatedAt: now.Add(-120 * time.Hour),
		},
	}

	seeded := 0
	for _, order := range demoOrders {
		if err := orders.Create(order); err != nil {
			logger.WithError(err).WithField("order_id", order.OrderID).Warn("failed to seed order")
			continue
		}
		seeded++
	}

	logger.WithFields(log.Fields{
		"orders":  seeded,
		"user_id": demoUserID,
	}).Info("demo data seeded")
}
