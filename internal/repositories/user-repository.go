package repositories

import (
	"context"
	"errors"

	"makerspace-system/internal/entities"
	apperrors "makerspace-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const userSelectFields = "u.id, u.pid, u.first_name, u.last_name, u.email, u.password, u.role_id, u.signed_equipment_wavier, r.name AS role_name, u.created_at, u.updated_at"
const userJoinClause = "users u JOIN roles r ON u.role_id = r.id"

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByPID(ctx context.Context, pid int64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	SetWaiverSigned(ctx context.Context, pid int64) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID, &user.PID, &user.FirstName, &user.LastName, &user.Email,
		&user.Password, &user.RoleID, &user.SignedEquipmentWavier,
		&user.RoleName, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := "SELECT " + userSelectFields + " FROM " + userJoinClause + " WHERE u.id = $1"
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindUserByPID(ctx context.Context, pid int64) (*entities.User, error) {
	query := "SELECT " + userSelectFields + " FROM " + userJoinClause + " WHERE u.pid = $1"
	return scanUser(r.storage.QueryRow(ctx, query, pid))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := "SELECT " + userSelectFields + " FROM " + userJoinClause + " WHERE u.email = $1"
	return scanUser(r.storage.QueryRow(ctx, query, email))
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users (pid, first_name, last_name, email, password, role_id, signed_equipment_wavier)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.storage.QueryRow(ctx, query,
		user.PID, user.FirstName, user.LastName, user.Email,
		user.Password, user.RoleID, user.SignedEquipmentWavier,
	).Scan(&user.ID)
	if err != nil {
		r.logger.Error("failed to create user", zap.String("email", user.Email), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// SetWaiverSigned flips signed_equipment_wavier to true for the user with the
// given pid and returns the updated record.
func (r *UserRepository) SetWaiverSigned(ctx context.Context, pid int64) (*entities.User, error) {
	query := `
		UPDATE users
		SET signed_equipment_wavier = TRUE, updated_at = CURRENT_TIMESTAMP
		WHERE pid = $1
	`
	result, err := r.storage.Exec(ctx, query, pid)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return r.FindUserByPID(ctx, pid)
}
