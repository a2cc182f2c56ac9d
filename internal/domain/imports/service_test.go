package imports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain"
)

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memRepo struct {
	byIdentifier map[string]*ImportLog
}

func newMemRepo() *memRepo {
	return &memRepo{byIdentifier: make(map[string]*ImportLog)}
}

func (r *memRepo) Create(ctx context.Context, l *ImportLog) error {
	r.byIdentifier[l.ImportIdentifier] = l
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, logID id.ID) (*ImportLog, error) {
	for _, l := range r.byIdentifier {
		if l.ID == logID {
			return l, nil
		}
	}
	return nil, apperror.NewNotFound("import_log", logID.String())
}

func (r *memRepo) GetByIdentifier(ctx context.Context, identifier string) (*ImportLog, error) {
	if l, ok := r.byIdentifier[identifier]; ok {
		return l, nil
	}
	return nil, apperror.NewNotFound("import_log", identifier)
}

func (r *memRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*ImportLog], error) {
	var items []*ImportLog
	for _, l := range r.byIdentifier {
		items = append(items, l)
	}
	return domain.ListResult[*ImportLog]{Items: items, TotalCount: int64(len(items))}, nil
}

func TestService_DuplicateGuard(t *testing.T) {
	svc := NewService(newMemRepo(), passthroughTxManager{})
	ctx := context.Background()

	dup, err := svc.IsDuplicate(ctx, ProviderStarts94, "SR000731088", "")
	require.NoError(t, err)
	assert.False(t, dup, "nothing imported yet")

	l := NewImportLog(ProviderStarts94, "protokol.xls", "SR000731088", "")
	require.NoError(t, svc.Log(ctx, l, false))
	assert.Equal(t, "starts94_SR000731088", l.ImportIdentifier)

	dup, err = svc.IsDuplicate(ctx, ProviderStarts94, "SR000731088", "")
	require.NoError(t, err)
	assert.True(t, dup, "same document again")

	// A different invoice number is not a duplicate.
	dup, err = svc.IsDuplicate(ctx, ProviderStarts94, "SR000999999", "")
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestService_LogRejectsDuplicateUnlessForced(t *testing.T) {
	svc := NewService(newMemRepo(), passthroughTxManager{})
	ctx := context.Background()

	first := NewImportLog(ProviderPeugeot, "first.xls", "0070139042", "")
	require.NoError(t, svc.Log(ctx, first, false))

	second := NewImportLog(ProviderPeugeot, "second.xls", "0070139042", "")
	err := svc.Log(ctx, second, false)
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicateImport(err))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "first.xls", appErr.Details["priorFileName"])

	// Force pushes it through anyway.
	require.NoError(t, svc.Log(ctx, second, true))
}

func TestService_DuplicateDetails(t *testing.T) {
	svc := NewService(newMemRepo(), passthroughTxManager{})
	ctx := context.Background()

	info, err := svc.DuplicateDetails(ctx, ProviderNalichnosti, "", "04/09/2025")
	require.NoError(t, err)
	assert.Nil(t, info)

	l := NewImportLog(ProviderNalichnosti, "nalichnosti.xls", "", "04/09/2025")
	require.NoError(t, svc.Log(ctx, l, false))

	info, err = svc.DuplicateDetails(ctx, ProviderNalichnosti, "", "04/09/2025")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "nalichnosti.xls", info.FileName)
	assert.Equal(t, "04/09/2025", info.InvoiceDate)
}
