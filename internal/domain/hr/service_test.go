package hr

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/catalogs/employee"
)

// passthroughTxManager runs the callback without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memRepo is an in-memory DaysOff repository.
type memRepo struct {
	records map[id.ID]*DaysOff
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[id.ID]*DaysOff)}
}

func (r *memRepo) Create(ctx context.Context, d *DaysOff) error {
	cp := *d
	r.records[d.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, daysOffID id.ID) (*DaysOff, error) {
	d, ok := r.records[daysOffID]
	if !ok {
		return nil, apperror.NewNotFound("days_off", daysOffID.String())
	}
	cp := *d
	return &cp, nil
}

func (r *memRepo) Update(ctx context.Context, d *DaysOff) error {
	if _, ok := r.records[d.ID]; !ok {
		return apperror.NewNotFound("days_off", d.ID.String())
	}
	cp := *d
	r.records[d.ID] = &cp
	return nil
}

func (r *memRepo) Delete(ctx context.Context, daysOffID id.ID) error {
	delete(r.records, daysOffID)
	return nil
}

func (r *memRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*DaysOff], error) {
	var items []*DaysOff
	for _, d := range r.records {
		items = append(items, d)
	}
	return domain.ListResult[*DaysOff]{Items: items, TotalCount: int64(len(items))}, nil
}

func (r *memRepo) ListVacationsForYear(ctx context.Context, employeeID id.ID, year int) ([]*DaysOff, error) {
	var out []*DaysOff
	for _, d := range r.records {
		if d.EmployeeID == employeeID && d.CountsAgainstAllowance(year) {
			out = append(out, d)
		}
	}
	return out, nil
}

// memEmployees tracks only what the HR service touches.
type memEmployees struct {
	employee.Repository // unused methods panic if called

	byID      map[id.ID]*employee.Employee
	leaveUsed map[id.ID]int
}

func newMemEmployees(emps ...*employee.Employee) *memEmployees {
	m := &memEmployees{
		byID:      make(map[id.ID]*employee.Employee),
		leaveUsed: make(map[id.ID]int),
	}
	for _, e := range emps {
		m.byID[e.ID] = e
	}
	return m
}

func (m *memEmployees) GetByID(ctx context.Context, employeeID id.ID) (*employee.Employee, error) {
	e, ok := m.byID[employeeID]
	if !ok {
		return nil, apperror.NewNotFound("employee", employeeID.String())
	}
	return e, nil
}

func (m *memEmployees) SetLeaveUsed(ctx context.Context, employeeID id.ID, days int) error {
	m.leaveUsed[employeeID] = days
	if e, ok := m.byID[employeeID]; ok {
		e.CurrentYearLeaveUsed = days
	}
	return nil
}

func newTestService(emps *memEmployees, repo *memRepo, year int) *Service {
	svc := NewService(repo, emps, passthroughTxManager{})
	svc.now = func() time.Time { return date(year, 6, 15) }
	return svc
}

func TestService_CreateRecomputesUsage(t *testing.T) {
	emp := employee.NewEmployee("Иван", "Петров")
	emps := newMemEmployees(emp)
	repo := newMemRepo()
	svc := newTestService(emps, repo, 2025)

	d := NewDaysOff(emp.ID, LeaveVacation, date(2025, 1, 10), date(2025, 1, 12))
	d.Approve("manager")
	require.NoError(t, svc.Create(context.Background(), d))

	assert.Equal(t, 3, emps.leaveUsed[emp.ID])
}

func TestService_UnapprovedDoesNotCount(t *testing.T) {
	emp := employee.NewEmployee("Иван", "Петров")
	emps := newMemEmployees(emp)
	svc := newTestService(emps, newMemRepo(), 2025)

	d := NewDaysOff(emp.ID, LeaveVacation, date(2025, 1, 10), date(2025, 1, 12))
	require.NoError(t, svc.Create(context.Background(), d))

	assert.Equal(t, 0, emps.leaveUsed[emp.ID])
}

func TestService_DeleteDecrementsUsage(t *testing.T) {
	emp := employee.NewEmployee("Иван", "Петров")
	emps := newMemEmployees(emp)
	repo := newMemRepo()
	svc := newTestService(emps, repo, 2025)

	d := NewDaysOff(emp.ID, LeaveVacation, date(2025, 1, 10), date(2025, 1, 12))
	d.Approve("manager")
	require.NoError(t, svc.Create(context.Background(), d))
	require.Equal(t, 3, emps.leaveUsed[emp.ID])

	require.NoError(t, svc.Delete(context.Background(), d.ID))
	assert.Equal(t, 0, emps.leaveUsed[emp.ID])
}

func TestService_RecomputeIsIdempotent(t *testing.T) {
	emp := employee.NewEmployee("Иван", "Петров")
	emps := newMemEmployees(emp)
	repo := newMemRepo()
	svc := newTestService(emps, repo, 2025)

	d := NewDaysOff(emp.ID, LeaveVacation, date(2025, 1, 10), date(2025, 1, 12))
	d.Approve("manager")
	require.NoError(t, svc.Create(context.Background(), d))

	require.NoError(t, svc.Recompute(context.Background(), emp.ID))
	require.NoError(t, svc.Recompute(context.Background(), emp.ID))
	assert.Equal(t, 3, emps.leaveUsed[emp.ID])
}

func TestService_UpdateRecomputesBothEmployeesOnReassignment(t *testing.T) {
	emp1 := employee.NewEmployee("Иван", "Петров")
	emp2 := employee.NewEmployee("Мария", "Георгиева")
	emps := newMemEmployees(emp1, emp2)
	repo := newMemRepo()
	svc := newTestService(emps, repo, 2025)

	d := NewDaysOff(emp1.ID, LeaveVacation, date(2025, 1, 10), date(2025, 1, 12))
	d.Approve("manager")
	require.NoError(t, svc.Create(context.Background(), d))
	require.Equal(t, 3, emps.leaveUsed[emp1.ID])

	// Reassign the record to the second employee.
	d.EmployeeID = emp2.ID
	require.NoError(t, svc.Update(context.Background(), d))

	assert.Equal(t, 0, emps.leaveUsed[emp1.ID], "old employee recomputed")
	assert.Equal(t, 3, emps.leaveUsed[emp2.ID], "new employee recomputed")
}

func TestService_OnlyCurrentYearCounts(t *testing.T) {
	emp := employee.NewEmployee("Иван", "Петров")
	emps := newMemEmployees(emp)
	repo := newMemRepo()
	svc := newTestService(emps, repo, 2025)

	old := NewDaysOff(emp.ID, LeaveVacation, date(2024, 12, 20), date(2024, 12, 24))
	old.Approve("manager")
	require.NoError(t, svc.Create(context.Background(), old))

	assert.Equal(t, 0, emps.leaveUsed[emp.ID])
}

func TestService_Summary(t *testing.T) {
	emp := employee.NewEmployee("Иван", "Петров")
	emps := newMemEmployees(emp)
	repo := newMemRepo()
	svc := newTestService(emps, repo, 2025)

	d := NewDaysOff(emp.ID, LeaveVacation, date(2025, 1, 10), date(2025, 1, 12))
	d.Approve("manager")
	require.NoError(t, svc.Create(context.Background(), d))

	sum, err := svc.Summary(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, sum.AnnualAllowance)
	assert.Equal(t, 3, sum.UsedDays)
	assert.Equal(t, 17, sum.RemainingDays)
	assert.Equal(t, 2025, sum.Year)
}
