package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
	"esteticar/internal/core/id"
)

// testItem is a minimal registry entity for exercising the generic service.
type testItem struct {
	entity.Catalog

	invalid bool
}

func (t *testItem) Validate(ctx context.Context) error {
	if t.invalid {
		return errors.New("broken item")
	}
	return t.Catalog.Validate(ctx)
}

type fakeItemRepo struct {
	items   map[id.ID]*testItem
	created []*testItem
	updated []*testItem
	marked  map[id.ID]bool
	failOn  string
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		items:  make(map[id.ID]*testItem),
		marked: make(map[id.ID]bool),
	}
}

func (r *fakeItemRepo) Create(ctx context.Context, item *testItem) error {
	if r.failOn == "create" {
		return errors.New("insert failed")
	}
	r.items[item.ID] = item
	r.created = append(r.created, item)
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, itemID id.ID) (*testItem, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, apperror.NewNotFound("test item", itemID.String())
	}
	return item, nil
}

func (r *fakeItemRepo) GetByCode(ctx context.Context, code string) (*testItem, error) {
	for _, item := range r.items {
		if item.Code == code {
			return item, nil
		}
	}
	return nil, apperror.NewNotFound("test item", code)
}

func (r *fakeItemRepo) Update(ctx context.Context, item *testItem) error {
	r.updated = append(r.updated, item)
	return nil
}

func (r *fakeItemRepo) SetDeletionMark(ctx context.Context, itemID id.ID, marked bool) error {
	r.marked[itemID] = marked
	return nil
}

func (r *fakeItemRepo) List(ctx context.Context, f ListFilter) (ListResult[*testItem], error) {
	result := ListResult[*testItem]{Limit: f.Limit, Offset: f.Offset}
	for _, item := range r.items {
		result.Items = append(result.Items, item)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func (r *fakeItemRepo) Exists(ctx context.Context, itemID id.ID) (bool, error) {
	_, ok := r.items[itemID]
	return ok, nil
}

func (r *fakeItemRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	return err == nil, nil
}

// passthroughTxManager runs fn directly, no transaction semantics.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *fakeItemRepo) *CatalogService[*testItem] {
	return NewCatalogService(CatalogServiceConfig[*testItem]{
		Repo:       repo,
		TxManager:  passthroughTxManager{},
		EntityName: "test item",
	})
}

func newTestItem(name string) *testItem {
	return &testItem{Catalog: entity.NewCatalog("TI-001", name)}
}

func TestCatalogService_Create_RunsHooksAroundRepo(t *testing.T) {
	repo := newFakeItemRepo()
	svc := newTestService(repo)

	var order []string
	svc.Hooks().OnBeforeCreate(func(ctx context.Context, item *testItem) error {
		order = append(order, "before")
		return nil
	})
	svc.Hooks().OnAfterCreate(func(ctx context.Context, item *testItem) error {
		order = append(order, "after")
		return nil
	})

	err := svc.Create(context.Background(), newTestItem("Polimento"))
	require.NoError(t, err)

	assert.Equal(t, []string{"before", "after"}, order)
	assert.Len(t, repo.created, 1)
}

func TestCatalogService_Create_BeforeHookErrorAborts(t *testing.T) {
	repo := newFakeItemRepo()
	svc := newTestService(repo)

	svc.Hooks().OnBeforeCreate(func(ctx context.Context, item *testItem) error {
		return apperror.NewBusinessRule("HOOK_REJECTED", "not allowed")
	})

	err := svc.Create(context.Background(), newTestItem("Polimento"))
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestCatalogService_Create_NormalizesValidationError(t *testing.T) {
	repo := newFakeItemRepo()
	svc := newTestService(repo)

	item := newTestItem("Polimento")
	item.invalid = true

	err := svc.Create(context.Background(), item)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok, "plain validation errors must be wrapped")
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Empty(t, repo.created)
}

func TestCatalogService_GetByID_MapsNotFoundToEntityName(t *testing.T) {
	svc := newTestService(newFakeItemRepo())

	_, err := svc.GetByID(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCatalogService_Delete_SoftDeletesAndFiresHooks(t *testing.T) {
	repo := newFakeItemRepo()
	svc := newTestService(repo)

	item := newTestItem("Polimento")
	require.NoError(t, svc.Create(context.Background(), item))

	var deleted *testItem
	svc.Hooks().OnAfterDelete(func(ctx context.Context, it *testItem) error {
		deleted = it
		return nil
	})

	require.NoError(t, svc.Delete(context.Background(), item.ID))
	assert.True(t, repo.marked[item.ID])
	assert.Same(t, item, deleted)
}
