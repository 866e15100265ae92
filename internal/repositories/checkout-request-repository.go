package repositories

import (
	"context"
	"errors"

	"makerspace-system/internal/entities"
	apperrors "makerspace-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const checkoutRequestTable = "checkout_requests"
const checkoutRequestFields = "id, user_name, model, pid, created_at, updated_at"

type CheckoutRequestRepositoryInterface interface {
	GetAllRequests(ctx context.Context) ([]entities.CheckoutRequest, error)
	FindRequest(ctx context.Context, model string, pid int64) (*entities.CheckoutRequest, error)
	CreateRequest(ctx context.Context, request *entities.CheckoutRequest) (*entities.CheckoutRequest, error)
	DeleteRequest(ctx context.Context, model string, pid int64) error
}

type CheckoutRequestRepository struct {
	storage querier
}

func NewCheckoutRequestRepository(storage *pgxpool.Pool) CheckoutRequestRepositoryInterface {
	return &CheckoutRequestRepository{storage: storage}
}

func scanCheckoutRequest(row pgx.Row) (*entities.CheckoutRequest, error) {
	var req entities.CheckoutRequest
	err := row.Scan(&req.ID, &req.UserName, &req.Model, &req.PID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCheckoutRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *CheckoutRequestRepository) GetAllRequests(ctx context.Context) ([]entities.CheckoutRequest, error) {
	query := `
		SELECT ` + checkoutRequestFields + `
		FROM ` + checkoutRequestTable + `
		ORDER BY id ASC
	`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entities.CheckoutRequest, 0)
	for rows.Next() {
		req, err := scanCheckoutRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *CheckoutRequestRepository) FindRequest(ctx context.Context, model string, pid int64) (*entities.CheckoutRequest, error) {
	query := `
		SELECT ` + checkoutRequestFields + `
		FROM ` + checkoutRequestTable + `
		WHERE model = $1 AND pid = $2
		LIMIT 1
	`
	return scanCheckoutRequest(r.storage.QueryRow(ctx, query, model, pid))
}

func (r *CheckoutRequestRepository) CreateRequest(ctx context.Context, request *entities.CheckoutRequest) (*entities.CheckoutRequest, error) {
	query := `
		INSERT INTO ` + checkoutRequestTable + ` (user_name, model, pid)
		VALUES ($1, $2, $3)
		RETURNING ` + checkoutRequestFields + `
	`
	return scanCheckoutRequest(r.storage.QueryRow(ctx, query, request.UserName, request.Model, request.PID))
}

func (r *CheckoutRequestRepository) DeleteRequest(ctx context.Context, model string, pid int64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM "+checkoutRequestTable+" WHERE model = $1 AND pid = $2", model, pid)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrCheckoutRequestNotFound
	}
	return nil
}
