package integration

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/brightcomgroup/storefront/internal/client"
	"github.com/brightcomgroup/storefront/internal/domain"
	"github.com/brightcomgroup/storefront/internal/server"
	"github.com/brightcomgroup/storefront/internal/session"
	"github.com/brightcomgroup/storefront/internal/storage/memory"
)

// OrderLifecycleTestSuite тестирует полный жизненный цикл заказов:
// HTTP-сервис поверх in-memory хранилища и клиентская сессия поверх него.
type OrderLifecycleTestSuite struct {
	suite.Suite
	httpServer *httptest.Server
	orders     domain.OrderRepository
	taxes      domain.TaxRepository
	session    *session.Session
}

func (s *OrderLifecycleTestSuite) SetupTest() {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)

	s.orders = memory.NewOrderRepository()
	s.taxes = memory.NewTaxRepository()

	handler := server.NewHandler(s.orders, s.taxes, nil, nil, nil, nil, logger)
	s.httpServer = httptest.NewServer(server.NewRouter(handler))

	api := client.New(s.httpServer.URL, logger.WithField("component", "client"))
	s.session = session.New("user-1", api, api, nil, nil, logger)
}

func (s *OrderLifecycleTestSuite) TearDownTest() {
	s.session.Close()
	s.httpServer.Close()
}

func (s *OrderLifecycleTestSuite) seedOrder(orderID string, status domain.OrderStatus, createdAt time.Time) {
	s.T().Helper()

	require.NoError(s.T(), s.orders.Create(domain.Order{
		OrderID:   orderID,
		UserID:    "user-1",
		ProductID: "prod-" + orderID,
		Title:     "Water Purifier",
		Address:   "12 MG Road, Bengaluru",
		Price:     1180,
		Quantity:  1,
		Status:    status,
		CreatedAt: createdAt,
	}))
}

func (s *OrderLifecycleTestSuite) TestCancellationLifecycle() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	s.seedOrder("O1", domain.OrderStatusDelivering, base)
	s.seedOrder("O2", domain.OrderStatusDelivered, base.Add(-time.Hour))

	require.NoError(s.T(), s.session.Load(ctx))

	rows := s.session.Rows()
	require.Len(s.T(), rows, 2)
	require.Equal(s.T(), "O1", rows[0].Order.OrderID)
	require.True(s.T(), rows[0].Actions.Contains(domain.ActionCancel))
	require.True(s.T(), rows[1].Actions.Contains(domain.ActionDownloadInvoice))

	require.NoError(s.T(), s.session.BeginCancellation("O1"))
	require.NoError(s.T(), s.session.UpdateReason("wrong size"))
	require.NoError(s.T(), s.session.SubmitCancellation(ctx))

	// После успешной отмены список перечитан и статус обновлён.
	rows = s.session.Rows()
	require.Equal(s.T(), domain.OrderStatusCancelled, rows[0].Order.Status)
	require.Empty(s.T(), rows[0].Actions)
	require.True(s.T(), s.session.Notification().Visible())

	stored, err := s.orders.Get("O1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), domain.OrderStatusCancelled, stored.Status)
	require.Equal(s.T(), "wrong size", stored.CancellationReason)

	// Повторная отмена уже отменённого заказа отклоняется сервисом.
	require.NoError(s.T(), s.session.BeginCancellation("O1"))
	err = s.session.SubmitCancellation(ctx)
	require.Error(s.T(), err)
	state := s.session.Cancellation()
	require.Equal(s.T(), session.CancellationReasonEntry, state.State)
	s.session.DismissCancellation()
}

func (s *OrderLifecycleTestSuite) TestInvoiceLifecycle() {
	ctx := context.Background()

	s.seedOrder("O1", domain.OrderStatusDelivered, time.Now().UTC())
	require.NoError(s.T(), s.taxes.Put(domain.TaxRecord{
		ID:            "prod-O1",
		Title:         "Water Purifier",
		Brand:         "Aqua",
		Category:      "appliances",
		ProductCost:   1000,
		GSTPercentage: 18,
	}))

	require.NoError(s.T(), s.session.Load(ctx))
	require.NoError(s.T(), s.session.LoadTaxRecords(ctx))

	document, err := s.session.GenerateInvoice("O1")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), document)
	require.Equal(s.T(), "invoice_O1.pdf", document.Filename)
	require.True(s.T(), len(document.Data) > 0)
	require.Equal(s.T(), "%PDF", string(document.Data[:4]))
}

func (s *OrderLifecycleTestSuite) TestFailedLoadKeepsLastGoodList() {
	ctx := context.Background()

	s.seedOrder("O1", domain.OrderStatusDelivering, time.Now().UTC())
	require.NoError(s.T(), s.session.Load(ctx))
	require.Len(s.T(), s.session.Orders(), 1)

	// Падение сервиса не должно стирать уже показанный список.
	s.httpServer.Close()
	require.Error(s.T(), s.session.Load(ctx))
	require.Len(s.T(), s.session.Orders(), 1)
}

func TestOrderLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(OrderLifecycleTestSuite))
}
