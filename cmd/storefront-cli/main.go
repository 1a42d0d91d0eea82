package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/brightcomgroup/storefront/internal/client"
	"github.com/brightcomgroup/storefront/internal/session"
)

const usageText = `usage: storefront-cli [flags] <command> [args]

commands:
  orders                 print the user's orders with available actions
  cancel <orderID>       cancel a delivering order (use -reason)
  invoice <orderID>      render the tax invoice PDF into the current directory
`

func main() {
	var (
		baseURL string
		userID  string
		reason  string
	)

	flag.StringVar(&baseURL, "base-url", "http://localhost:8080", "order service base URL")
	flag.StringVar(&userID, "user", "demo-user", "user identifier")
	flag.StringVar(&reason, "reason", "", "cancellation reason")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger.SetLevel(log.WarnLevel)

	api := client.New(baseURL, logger.WithField("component", "client"))
	sess := session.New(userID, api, api, nil, nil, logger)
	defer sess.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, sess, flag.Args(), reason); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, sess *session.Session, args []string, reason string) error {
	switch args[0] {
	case "orders":
		return printOrders(ctx, sess)
	case "cancel":
		if len(args) < 2 {
			return fmt.Errorf("cancel requires an order id")
		}
		return cancelOrder(ctx, sess, args[1], reason)
	case "invoice":
		if len(args) < 2 {
			return fmt.Errorf("invoice requires an order id")
		}
		return downloadInvoice(ctx, sess, args[1])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printOrders(ctx context.Context, sess *session.Session) error {
	if err := sess.Load(ctx); err != nil {
		return err
	}

	rows := sess.Rows()
	if len(rows) == 0 {
		fmt.Println("no orders")
		return nil
	}

	for _, row := range rows {
		fmt.Printf("%s  %s  %.2f x%d  %s  actions=%v\n",
			row.Order.OrderID,
			row.Order.CreatedAt.Format("2006-01-02 15:04"),
			row.Order.Price,
			row.Order.Quantity,
			row.Order.Status,
			row.Actions,
		)
	}
	return nil
}

func cancelOrder(ctx context.Context, sess *session.Session, orderID, reason string) error {
	if err := sess.Load(ctx); err != nil {
		return err
	}

	if err := sess.BeginCancellation(orderID); err != nil {
		return err
	}
	if err := sess.UpdateReason(reason); err != nil {
		return err
	}
	if err := sess.SubmitCancellation(ctx); err != nil {
		return err
	}

	fmt.Printf("order %s cancelled\n", orderID)
	return nil
}

func downloadInvoice(ctx context.Context, sess *session.Session, orderID string) error {
	if err := sess.Load(ctx); err != nil {
		return err
	}
	if err := sess.LoadTaxRecords(ctx); err != nil {
		return err
	}

	document, err := sess.GenerateInvoice(orderID)
	if err != nil {
		return err
	}
	if document == nil {
		fmt.Printf("no tax record for order %s, invoice not available\n", orderID)
		return nil
	}

	if err := os.WriteFile(document.Filename, document.Data, 0o644); err != nil {
		return fmt.Errorf("write invoice file: %w", err)
	}

	fmt.Printf("invoice %s saved to %s\n", document.InvoiceNumber, document.Filename)
	return nil
}
