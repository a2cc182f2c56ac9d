package invoice

import (
	"context"
	"fmt"
	"time"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/id"
	"avtoservice/internal/core/tx"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/catalogs/car"
	"avtoservice/internal/domain/catalogs/customer"
	"avtoservice/internal/domain/documents/order"
	"avtoservice/pkg/logger"
	"avtoservice/pkg/numerator"
)

// Invoice numbers come from a strict DB sequence: plain unpadded
// digits, never reset, never reused. The first invoice is "1".
var (
	numberingConfig  = numerator.PlainConfig("invoice")
	numberingOptions = &numerator.Options{Strategy: numerator.StrategyStrict}
)

// ConvertRequest holds the conversion parameters.
type ConvertRequest struct {
	OrderID     id.ID
	InvoiceDate time.Time
	// DueDate overrides the default InvoiceDate + 30d when set
	DueDate *time.Time
}

// Service issues invoices from orders.
type Service struct {
	repo      Repository
	orders    *order.Service
	customers customer.Repository
	cars      car.Repository
	numerator numerator.Generator
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Invoice]
}

// NewService creates a new invoice service.
func NewService(
	repo Repository,
	orders *order.Service,
	customers customer.Repository,
	cars car.Repository,
	gen numerator.Generator,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		orders:    orders,
		customers: customers,
		cars:      cars,
		numerator: gen,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Invoice](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Invoice] {
	return s.hooks
}

// ConvertOrder creates an invoice snapshot of the order, assigns the
// next invoice number, and flips the order status - all in one
// transaction. The snapshot is taken as of now; later edits to the
// customer or car never touch it.
func (s *Service) ConvertOrder(ctx context.Context, req ConvertRequest) (*Invoice, error) {
	if req.InvoiceDate.IsZero() {
		req.InvoiceDate = time.Now().UTC()
	}

	var inv *Invoice
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		// Row lock first: two concurrent conversions of the same order
		// serialize here, so the loser sees the winner's invoice in the
		// existence check below.
		if err := s.orders.Lock(ctx, req.OrderID); err != nil {
			return err
		}

		doc, err := s.orders.GetByID(ctx, req.OrderID)
		if err != nil {
			return err
		}

		if doc.Status == order.StatusInvoice {
			return apperror.NewConflict("order is already invoiced").
				WithDetail("orderNumber", doc.Number)
		}
		if existing, err := s.repo.GetByOrderID(ctx, req.OrderID); err == nil {
			return apperror.NewConflict("order already has an invoice").
				WithDetail("invoiceNumber", existing.Number)
		} else if !apperror.IsNotFound(err) {
			return err
		}

		inv = &Invoice{
			BaseDocument: entity.NewBaseDocument(),
			OrderID:      doc.ID,
			InvoiceDate:  req.InvoiceDate,
			DueDate:      DefaultDueDate(req.InvoiceDate),
		}
		if req.DueDate != nil {
			inv.DueDate = *req.DueDate
		}

		if err := s.snapshotClient(ctx, doc, inv); err != nil {
			return err
		}
		if err := s.snapshotCar(ctx, doc, inv); err != nil {
			return err
		}

		totals := doc.Totals()
		inv.Subtotal = totals.Subtotal
		inv.VATAmount = totals.VATAmount
		inv.TotalAmount = totals.Total

		number, err := s.numerator.GetNextNumber(ctx, numberingConfig, numberingOptions, req.InvoiceDate)
		if err != nil {
			return fmt.Errorf("generate invoice number: %w", err)
		}
		// The sequence is monotonic, but a pre-insert check gives a
		// clean error if numbering was manually re-seeded backwards.
		taken, err := s.repo.ExistsByNumber(ctx, number)
		if err != nil {
			return err
		}
		if taken {
			return apperror.NewDuplicate("invoice", "number", number)
		}
		inv.Number = number

		if err := inv.Validate(ctx); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, inv); err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}
		return s.orders.MarkInvoiced(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	if err := s.hooks.RunAfterCreate(ctx, inv); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "invoice issued",
		"id", inv.ID,
		"number", inv.Number,
		"orderId", inv.OrderID,
		"total", inv.TotalAmount.StringFixed(2))
	return inv, nil
}

// snapshotClient copies client fields from the catalog or from the
// order's standalone fields.
func (s *Service) snapshotClient(ctx context.Context, doc *order.Order, inv *Invoice) error {
	if doc.CustomerID == nil || id.IsNil(*doc.CustomerID) {
		inv.ClientName = doc.ClientName
		inv.ClientAddress = doc.ClientAddress
		inv.ClientPhone = doc.ClientPhone
		return nil
	}

	cust, err := s.customers.GetByID(ctx, *doc.CustomerID)
	if err != nil {
		return err
	}
	inv.ClientName = cust.Name
	if cust.Address != nil {
		inv.ClientAddress = *cust.Address
	}
	if cust.Phone != nil {
		inv.ClientPhone = *cust.Phone
	}
	if cust.TaxNumber != nil {
		inv.ClientTaxNum = *cust.TaxNumber
	}
	if cust.Bulstat != nil {
		inv.ClientBulstat = *cust.Bulstat
	}
	return nil
}

// snapshotCar copies car fields. Standalone free-text car info lands
// in the brand field, which doubles as the display line.
func (s *Service) snapshotCar(ctx context.Context, doc *order.Order, inv *Invoice) error {
	if doc.CarID == nil || id.IsNil(*doc.CarID) {
		inv.CarBrand = doc.CarInfo
		return nil
	}

	c, err := s.cars.GetByID(ctx, *doc.CarID)
	if err != nil {
		return err
	}
	inv.CarBrand = c.Brand
	inv.CarModel = c.Model
	inv.CarPlate = c.Plate
	inv.CarVIN = c.VIN
	return nil
}

// GetByID retrieves an invoice.
func (s *Service) GetByID(ctx context.Context, invID id.ID) (*Invoice, error) {
	return s.repo.GetByID(ctx, invID)
}

// GetByNumber retrieves an invoice by its number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Invoice, error) {
	if number == "" {
		return nil, apperror.NewValidation("number is required")
	}
	return s.repo.GetByNumber(ctx, number)
}

// GetByOrderID retrieves the invoice issued for an order.
func (s *Service) GetByOrderID(ctx context.Context, orderID id.ID) (*Invoice, error) {
	return s.repo.GetByOrderID(ctx, orderID)
}

// List retrieves invoices with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error) {
	return s.repo.List(ctx, filter)
}
