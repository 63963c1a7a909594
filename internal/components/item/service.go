package item

import "context"

type (
	servicer interface {
		List(ctx context.Context) ([]Item, error)
		Create(ctx context.Context, req CreateItemIn) (*Item, error)
		Update(ctx context.Context, id int64, req UpdateItemIn) (*Item, error)
		Delete(ctx context.Context, id int64) error
	}

	service struct {
		repo repoer
	}
)

func NewService(repo repoer) servicer {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, req CreateItemIn) (*Item, error) {
	if req.Name == "" {
		return nil, ErrEmptyName
	}
	if !ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	return s.repo.Create(ctx, req)
}

// Update applies only the supplied fields; an unsupplied field keeps its
// stored value.
func (s *service) Update(ctx context.Context, id int64, req UpdateItemIn) (*Item, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, ErrEmptyName
	}
	if req.Status != nil && !ValidStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
