package invoice

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/core/types"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/documents/order"
	"avtoservice/pkg/numerator"
)

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// callLog records repository calls across the fakes so tests can
// assert ordering.
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) { l.calls = append(l.calls, name) }

func (l *callLog) index(name string) int {
	for i, c := range l.calls {
		if c == name {
			return i
		}
	}
	return -1
}

type fakeOrders struct {
	log    *callLog
	orders map[id.ID]*order.Order
}

func newFakeOrders(log *callLog, docs ...*order.Order) *fakeOrders {
	f := &fakeOrders{log: log, orders: make(map[id.ID]*order.Order)}
	for _, d := range docs {
		f.orders[d.ID] = d
	}
	return f
}

func (f *fakeOrders) Create(ctx context.Context, doc *order.Order) error {
	f.orders[doc.ID] = doc
	return nil
}

func (f *fakeOrders) GetByID(ctx context.Context, docID id.ID) (*order.Order, error) {
	if d, ok := f.orders[docID]; ok {
		return d, nil
	}
	return nil, apperror.NewNotFound("order", docID.String())
}

func (f *fakeOrders) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	for _, d := range f.orders {
		if d.Number == number {
			return d, nil
		}
	}
	return nil, apperror.NewNotFound("order", number)
}

func (f *fakeOrders) Update(ctx context.Context, doc *order.Order) error {
	f.orders[doc.ID] = doc
	return nil
}

func (f *fakeOrders) Delete(ctx context.Context, docID id.ID) error {
	delete(f.orders, docID)
	return nil
}

func (f *fakeOrders) List(ctx context.Context, filter order.ListFilter) (domain.ListResult[*order.Order], error) {
	return domain.ListResult[*order.Order]{}, nil
}

func (f *fakeOrders) Lock(ctx context.Context, docID id.ID) error {
	f.log.add("lock")
	if _, ok := f.orders[docID]; !ok {
		return apperror.NewNotFound("order", docID.String())
	}
	return nil
}

func (f *fakeOrders) SaveItems(ctx context.Context, orderID id.ID, items []order.Item) error {
	return nil
}

func (f *fakeOrders) GetItems(ctx context.Context, orderID id.ID) ([]order.Item, error) {
	if d, ok := f.orders[orderID]; ok {
		return d.Items, nil
	}
	return nil, nil
}

func (f *fakeOrders) SaveEmployees(ctx context.Context, orderID id.ID, employeeIDs []id.ID) error {
	return nil
}

func (f *fakeOrders) GetEmployees(ctx context.Context, orderID id.ID) ([]id.ID, error) {
	return nil, nil
}

type fakeInvoices struct {
	log     *callLog
	byOrder map[id.ID]*Invoice
}

func newFakeInvoices(log *callLog) *fakeInvoices {
	return &fakeInvoices{log: log, byOrder: make(map[id.ID]*Invoice)}
}

func (f *fakeInvoices) Create(ctx context.Context, inv *Invoice) error {
	f.byOrder[inv.OrderID] = inv
	return nil
}

func (f *fakeInvoices) GetByID(ctx context.Context, invID id.ID) (*Invoice, error) {
	for _, inv := range f.byOrder {
		if inv.ID == invID {
			return inv, nil
		}
	}
	return nil, apperror.NewNotFound("invoice", invID.String())
}

func (f *fakeInvoices) GetByNumber(ctx context.Context, number string) (*Invoice, error) {
	for _, inv := range f.byOrder {
		if inv.Number == number {
			return inv, nil
		}
	}
	return nil, apperror.NewNotFound("invoice", number)
}

func (f *fakeInvoices) GetByOrderID(ctx context.Context, orderID id.ID) (*Invoice, error) {
	f.log.add("existence check")
	if inv, ok := f.byOrder[orderID]; ok {
		return inv, nil
	}
	return nil, apperror.NewNotFound("invoice", orderID.String())
}

func (f *fakeInvoices) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	for _, inv := range f.byOrder {
		if inv.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInvoices) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error) {
	return domain.ListResult[*Invoice]{}, nil
}

type seqNumerator struct {
	n int
}

func (s *seqNumerator) GetNextNumber(ctx context.Context, cfg numerator.Config, opts *numerator.Options, period time.Time) (string, error) {
	s.n++
	return strconv.Itoa(s.n), nil
}

func walkInOrder() *order.Order {
	doc := order.New()
	doc.Number = "RO-1"
	doc.ClientName = "Иван Петров"
	doc.ClientPhone = "0888123456"
	doc.CarInfo = "Opel Astra H"
	doc.AddItem(order.Item{
		Name:          "Смяна на масло",
		PurchasePrice: types.MustMoney("40.00"),
		Quantity:      types.MustMoney("1"),
		IncludeVAT:    true,
		IsLabor:       true,
	})
	return doc
}

func newTestService(orders *fakeOrders, invoices *fakeInvoices) *Service {
	orderSvc := order.NewService(orders, nil, passthroughTxManager{})
	return NewService(invoices, orderSvc, nil, nil, &seqNumerator{}, passthroughTxManager{})
}

func TestService_ConvertOrder_IssuesInvoice(t *testing.T) {
	log := &callLog{}
	doc := walkInOrder()
	orders := newFakeOrders(log, doc)
	svc := newTestService(orders, newFakeInvoices(log))
	ctx := context.Background()

	invoiceDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	inv, err := svc.ConvertOrder(ctx, ConvertRequest{OrderID: doc.ID, InvoiceDate: invoiceDate})
	require.NoError(t, err)

	assert.Equal(t, "1", inv.Number)
	assert.Equal(t, "Иван Петров", inv.ClientName)
	assert.Equal(t, "Opel Astra H", inv.CarBrand)
	assert.Equal(t, invoiceDate.AddDate(0, 0, 30), inv.DueDate)
	assert.True(t, inv.Subtotal.Equal(types.MustMoney("40.00")), "subtotal = %s", inv.Subtotal)
	assert.True(t, inv.VATAmount.Equal(types.MustMoney("8.00")), "vat = %s", inv.VATAmount)
	assert.True(t, inv.TotalAmount.Equal(types.MustMoney("48.00")), "total = %s", inv.TotalAmount)

	assert.Equal(t, order.StatusInvoice, orders.orders[doc.ID].Status)
}

func TestService_ConvertOrder_SecondConversionConflicts(t *testing.T) {
	log := &callLog{}
	doc := walkInOrder()
	svc := newTestService(newFakeOrders(log, doc), newFakeInvoices(log))
	ctx := context.Background()

	_, err := svc.ConvertOrder(ctx, ConvertRequest{OrderID: doc.ID})
	require.NoError(t, err)

	_, err = svc.ConvertOrder(ctx, ConvertRequest{OrderID: doc.ID})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

// The order row lock is taken before the existing-invoice check, so a
// conversion that lost the race blocks on the lock and then sees the
// winner's invoice.
func TestService_ConvertOrder_LocksOrderBeforeExistenceCheck(t *testing.T) {
	log := &callLog{}
	doc := walkInOrder()
	svc := newTestService(newFakeOrders(log, doc), newFakeInvoices(log))

	_, err := svc.ConvertOrder(context.Background(), ConvertRequest{OrderID: doc.ID})
	require.NoError(t, err)

	lockAt := log.index("lock")
	checkAt := log.index("existence check")
	require.GreaterOrEqual(t, lockAt, 0)
	require.GreaterOrEqual(t, checkAt, 0)
	assert.Less(t, lockAt, checkAt)
}

func TestService_ConvertOrder_ExistingInvoiceConflicts(t *testing.T) {
	log := &callLog{}
	doc := walkInOrder()
	invoices := newFakeInvoices(log)
	invoices.byOrder[doc.ID] = &Invoice{OrderID: doc.ID, Number: "7"}
	svc := newTestService(newFakeOrders(log, doc), invoices)

	_, err := svc.ConvertOrder(context.Background(), ConvertRequest{OrderID: doc.ID})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestService_ConvertOrder_UnknownOrder(t *testing.T) {
	log := &callLog{}
	svc := newTestService(newFakeOrders(log), newFakeInvoices(log))

	_, err := svc.ConvertOrder(context.Background(), ConvertRequest{OrderID: id.New()})
	assert.True(t, apperror.IsNotFound(err))
}
