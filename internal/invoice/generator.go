package invoice

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	log "github.com/sirupsen/logrus"

	"github.com/brightcomgroup/storefront/internal/domain"
)

// Фиксированные реквизиты компании в шапке счёта-фактуры.
const (
	companyName    = "Company Name: Brightcomgroup."
	companyAddress = "Address: 1234 Street, City, State"
	companyPhone   = "Phone: (123) 456-7890"
	companyEmail   = "Email: contact@abccorp.com"
	companyGSTIN   = "GST Number: 29ABCDE1234F1Z5"

	documentTitle = "TaxInvoice"
	thankYouLine  = "Thank you for your business!"

	// Отступ снизу: если курсор заходит в эту зону, хвост уезжает на новую страницу.
	bottomGuard = 20.0
)

// Document — готовый к выгрузке счёт-фактура.
type Document struct {
	// Filename детерминированно выводится из идентификатора заказа.
	Filename string
	// InvoiceNumber — отображаемый номер; глобальная уникальность не гарантируется.
	InvoiceNumber string
	Data          []byte
}

// Generator синтезирует налоговый счёт-фактуру по заказу и справочной записи.
// Вся раскладка детерминирована входными данными; генерация синхронна и локальна.
type Generator struct {
	logger *log.Entry

	// now и randInt подменяются в тестах.
	now     func() time.Time
	randInt func(n int) int
}

// NewGenerator создаёт генератор счетов-фактур.
func NewGenerator(logger *log.Entry) *Generator {
	if logger == nil {
		logger = log.New().WithField("component", "invoice")
	}
	return &Generator{
		logger:  logger,
		now:     time.Now,
		randInt: rand.Intn,
	}
}

// Generate выпускает документ для заказа, сопоставляя налоговую запись по product_id.
// Отсутствие записи — тихий no-op: ни документа, ни ошибки (известное ограничение).
func (g *Generator) Generate(order domain.Order, taxRecords []domain.TaxRecord) (*Document, error) {
	record, ok := domain.FindTaxRecord(taxRecords, order.ProductID)
	if !ok {
		g.logger.WithFields(log.Fields{
			"order_id":   order.OrderID,
			"product_id": order.ProductID,
		}).Debug("tax record missing, invoice skipped")
		return nil, nil
	}

	cgst, sgst := record.SplitGST()
	// Итог строки — сохранённая цена заказа; разбивка CGST/SGST носит
	// справочный характер и к цене не прибавляется.
	totalPrice := order.Price

	invoiceNumber := g.invoiceNumber()
	now := g.now()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	// Заголовок по центру.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text((pageW-pdf.GetStringWidth(documentTitle))/2, 20, documentTitle)

	// Верхняя горизонтальная линия.
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(10, 25, pageW-10, 25)

	// Блок реквизитов компании.
	pdf.SetFont("Helvetica", "", 7)
	for i, line := range []string{companyName, companyAddress, companyPhone, companyEmail, companyGSTIN} {
		pdf.Text(14, 30+float64(i)*5, line)
	}

	// Метаданные счёта в правом верхнем блоке.
	pdf.Text(150, 30, fmt.Sprintf("Invoice Number: %s", invoiceNumber))
	pdf.Text(150, 35, fmt.Sprintf("Order ID: %s", order.OrderID))
	pdf.Text(150, 40, fmt.Sprintf("Date: %s", now.Format("02/01/2006")))

	// Адрес доставки по центру на фиксированном отступе.
	pdf.SetFont("Helvetica", "", 9)
	shippingLines := append([]string{"Shipping Address:"}, strings.Split(order.Address, "\n")...)
	for i, line := range shippingLines {
		pdf.Text((pageW-pdf.GetStringWidth(line))/2, 60+float64(i)*5, line)
	}

	g.drawItemsTable(pdf, order, cgst, sgst, totalPrice)

	// Страховка от обрезанного хвоста: если курсор вышел за нижний отступ,
	// замыкающая линия и благодарность уходят на новую страницу.
	if pdf.GetY() > pageH-bottomGuard {
		pdf.AddPage()
	}

	ruleY := pdf.GetY() + 10
	pdf.Line(10, ruleY, pageW-10, ruleY)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text((pageW-pdf.GetStringWidth(thankYouLine))/2, ruleY+10, thankYouLine)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}

	return &Document{
		Filename:      fmt.Sprintf("invoice_%s.pdf", order.OrderID),
		InvoiceNumber: invoiceNumber,
		Data:          buf.Bytes(),
	}, nil
}

// drawItemsTable рисует таблицу позиций: шапка, единственная строка данных и
// итоговая строка, где заполнена только последняя колонка.
func (g *Generator) drawItemsTable(pdf *gofpdf.Fpdf, order domain.Order, cgst, sgst, totalPrice float64) {
	headers := []string{"Order ID", "Title", "Quantity", "Price", "CGST", "SGST", "Total Price"}
	widths := []float64{26, 36, 20, 26, 24, 24, 26}

	pdf.SetXY(14, 80)
	pdf.SetFont("Helvetica", "B", 8)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "CM", false, 0, "")
	}
	pdf.Ln(-1)

	row := []string{
		order.OrderID,
		order.Title,
		fmt.Sprintf("%d", order.Quantity),
		fmt.Sprintf("%.2f", order.Price),
		fmt.Sprintf("%.2f", cgst),
		fmt.Sprintf("%.2f", sgst),
		fmt.Sprintf("%.2f", totalPrice),
	}

	pdf.SetX(14)
	pdf.SetFont("Helvetica", "", 8)
	for i, cell := range row {
		pdf.CellFormat(widths[i], 10, cell, "1", 0, "CM", false, 0, "")
	}
	pdf.Ln(-1)

	// Итоговая строка: сумма выровнена под колонкой Total Price.
	pdf.SetX(14)
	for i := range widths {
		text := ""
		if i == len(widths)-1 {
			text = fmt.Sprintf("Total Amount = %.2f", totalPrice)
		}
		pdf.CellFormat(widths[i], 10, text, "1", 0, "CM", false, 0, "")
	}
	pdf.Ln(-1)
}

// invoiceNumber собирает отображаемый номер из текущего года и случайного
// суффикса 0–9999. Номер нигде не сохраняется; коллизии допустимы.
func (g *Generator) invoiceNumber() string {
	return fmt.Sprintf("INV-%d-%d", g.now().Year(), g.randInt(10000))
}
