package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items  map[int64]*Item
	nextID int64
}

func newFakeRepo(items ...Item) *fakeRepo {
	repo := &fakeRepo{items: map[int64]*Item{}}
	for _, item := range items {
		repo.nextID++
		stored := item
		stored.ID = repo.nextID
		repo.items[stored.ID] = &stored
	}
	return repo
}

func (f *fakeRepo) List(context.Context) ([]Item, error) {
	items := []Item{}
	for id := int64(1); id <= f.nextID; id++ {
		if item, ok := f.items[id]; ok {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (f *fakeRepo) Create(_ context.Context, req CreateItemIn) (*Item, error) {
	f.nextID++
	item := &Item{ID: f.nextID, Name: req.Name, Status: req.Status}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, req UpdateItemIn) (*Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	return item, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func TestService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateItemIn{Name: "", Status: StatusPending})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.Create(ctx, CreateItemIn{Name: "X", Status: "Done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	item, err := svc.Create(ctx, CreateItemIn{Name: "X", Status: StatusPending})
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "X", item.Name)
	assert.Equal(t, StatusPending, item.Status)
}

func TestService_UpdatePartial(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(Item{Name: "X", Status: StatusPending})
	svc := NewService(repo)
	ctx := context.Background()

	status := StatusCompleted
	item, err := svc.Update(ctx, 1, UpdateItemIn{Status: &status})
	require.NoError(t, err)

	// Only the supplied field changes.
	assert.Equal(t, "X", item.Name)
	assert.Equal(t, StatusCompleted, item.Status)
}

func TestService_UpdateValidation(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(Item{Name: "X", Status: StatusPending})
	svc := NewService(repo)
	ctx := context.Background()

	empty := ""
	_, err := svc.Update(ctx, 1, UpdateItemIn{Name: &empty})
	assert.ErrorIs(t, err, ErrEmptyName)

	bad := "Done"
	_, err = svc.Update(ctx, 1, UpdateItemIn{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo())
	ctx := context.Background()

	status := StatusCompleted
	_, err := svc.Update(ctx, 42, UpdateItemIn{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteThenGone(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(Item{Name: "X", Status: StatusPending})
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = svc.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
