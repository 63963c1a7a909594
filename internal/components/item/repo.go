package item

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	repoer interface {
		List(ctx context.Context) ([]Item, error)
		Create(ctx context.Context, req CreateItemIn) (*Item, error)
		Update(ctx context.Context, id int64, req UpdateItemIn) (*Item, error)
		Delete(ctx context.Context, id int64) error
	}

	repo struct {
		pool *pgxpool.Pool
	}
)

func NewRepo(pool *pgxpool.Pool) repoer {
	return &repo{pool: pool}
}

func (r *repo) List(ctx context.Context) ([]Item, error) {
	stmt := `
	SELECT id, name, status
	FROM items
	ORDER BY id`

	rows, err := r.pool.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Status); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repo) Create(ctx context.Context, req CreateItemIn) (*Item, error) {
	item := new(Item)

	stmt := `
	INSERT INTO items (name, status)
	VALUES ($1, $2)
	RETURNING id, name, status`

	err := r.pool.QueryRow(ctx, stmt, req.Name, req.Status).Scan(
		&item.ID,
		&item.Name,
		&item.Status,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Update performs partial updates by dynamically building SET clauses only
// for the supplied fields. A missing row maps to ErrNotFound.
func (r *repo) Update(ctx context.Context, id int64, req UpdateItemIn) (*Item, error) {
	setParts := []string{}
	args := []interface{}{id}
	argIndex := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIndex))
		args = append(args, *req.Name)
		argIndex++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *req.Status)
		argIndex++
	}

	if len(setParts) == 0 {
		// No fields to update, just return the current item
		return r.getByID(ctx, id)
	}

	stmt := fmt.Sprintf(`
	UPDATE items
	SET %s
	WHERE id = $1
	RETURNING id, name, status`,
		strings.Join(setParts, ", "))

	var item Item
	err := r.pool.QueryRow(ctx, stmt, args...).Scan(&item.ID, &item.Name, &item.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &item, nil
}

func (r *repo) getByID(ctx context.Context, id int64) (*Item, error) {
	stmt := `
	SELECT id, name, status
	FROM items
	WHERE id = $1`

	var item Item
	err := r.pool.QueryRow(ctx, stmt, id).Scan(&item.ID, &item.Name, &item.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &item, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	stmt := `DELETE FROM items WHERE id = $1`

	result, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
