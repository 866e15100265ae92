package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"makerspace-system/internal/entities"
	apperrors "makerspace-system/pkg/errors"
	"makerspace-system/pkg/types"

	"github.com/jackc/pgx/v5"
)

// fakeEnforcer grants the actions listed in allowed and denies everything
// else, recording each decision it made.
type fakeEnforcer struct {
	allowed map[string]bool
	calls   []string
}

func newFakeEnforcer(actions ...string) *fakeEnforcer {
	allowed := make(map[string]bool, len(actions))
	for _, a := range actions {
		allowed[a] = true
	}
	return &fakeEnforcer{allowed: allowed}
}

func (f *fakeEnforcer) Enforce(ctx context.Context, subject *entities.User, action string, resource string) error {
	f.calls = append(f.calls, action)
	if subject == nil || !f.allowed[action] {
		return fmt.Errorf("%w: action=%s resource=%s", apperrors.ErrAuthorizationDenied, action, resource)
	}
	return nil
}

type fakeEquipmentRepository struct {
	mu     sync.Mutex
	items  []entities.Equipment
	nextID uint64
}

func newFakeEquipmentRepository(items ...entities.Equipment) *fakeEquipmentRepository {
	repo := &fakeEquipmentRepository{nextID: 1}
	for _, item := range items {
		if item.EquipmentID >= repo.nextID {
			repo.nextID = item.EquipmentID + 1
		}
		repo.items = append(repo.items, item)
	}
	return repo
}

func (r *fakeEquipmentRepository) GetAllEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Equipment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeEquipmentRepository) FindEquipment(ctx context.Context, equipmentID uint64) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].EquipmentID == equipmentID {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, apperrors.ErrEquipmentNotFound
}

func (r *fakeEquipmentRepository) UpdateEquipment(ctx context.Context, item *entities.Equipment) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].EquipmentID == item.EquipmentID {
			r.items[i] = *item
			updated := r.items[i]
			return &updated, nil
		}
	}
	return nil, apperrors.ErrEquipmentNotFound
}

func (r *fakeEquipmentRepository) GetAvailableByModel(ctx context.Context, model string) ([]entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Equipment, 0)
	for _, item := range r.items {
		if item.Model == model && !item.IsCheckedOut {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeEquipmentRepository) CreateEquipment(ctx context.Context, item *entities.Equipment) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.EquipmentID = r.nextID
	r.nextID++
	r.items = append(r.items, *item)
	created := *item
	return &created, nil
}

func (r *fakeEquipmentRepository) CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, item *entities.Equipment) error {
	_, err := r.CreateEquipment(ctx, item)
	return err
}

func (r *fakeEquipmentRepository) DeleteEquipment(ctx context.Context, equipmentID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].EquipmentID == equipmentID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrEquipmentNotFound
}

type fakeCheckoutRequestRepository struct {
	mu       sync.Mutex
	requests []entities.CheckoutRequest
	nextID   uint64
}

func newFakeCheckoutRequestRepository(requests ...entities.CheckoutRequest) *fakeCheckoutRequestRepository {
	repo := &fakeCheckoutRequestRepository{nextID: 1}
	for _, req := range requests {
		if req.ID >= repo.nextID {
			repo.nextID = req.ID + 1
		}
		repo.requests = append(repo.requests, req)
	}
	return repo
}

func (r *fakeCheckoutRequestRepository) GetAllRequests(ctx context.Context) ([]entities.CheckoutRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.CheckoutRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *fakeCheckoutRequestRepository) FindRequest(ctx context.Context, model string, pid int64) (*entities.CheckoutRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].Model == model && r.requests[i].PID == pid {
			req := r.requests[i]
			return &req, nil
		}
	}
	return nil, apperrors.ErrCheckoutRequestNotFound
}

func (r *fakeCheckoutRequestRepository) CreateRequest(ctx context.Context, request *entities.CheckoutRequest) (*entities.CheckoutRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request.ID = r.nextID
	r.nextID++
	r.requests = append(r.requests, *request)
	created := *request
	return &created, nil
}

func (r *fakeCheckoutRequestRepository) DeleteRequest(ctx context.Context, model string, pid int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].Model == model && r.requests[i].PID == pid {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCheckoutRequestNotFound
}

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[int64]*entities.User
}

func newFakeUserRepository(users ...*entities.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[int64]*entities.User)}
	for _, u := range users {
		repo.users[u.PID] = u
	}
	return repo
}

func (r *fakeUserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepository) FindUserByPID(ctx context.Context, pid int64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[pid]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uint64(len(r.users) + 1)
	r.users[user.PID] = user
	return user, nil
}

func (r *fakeUserRepository) SetWaiverSigned(ctx context.Context, pid int64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[pid]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	u.SignedEquipmentWavier = true
	return u, nil
}

type fakePermissionRepository struct {
	byRole map[uint64][]entities.Permission
	calls  int
}

func (r *fakePermissionRepository) GetPermissionsByRoleID(ctx context.Context, roleID uint64) ([]entities.Permission, error) {
	r.calls++
	return r.byRole[roleID], nil
}

type fakeCacheRepository struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{data: make(map[string]string)}
}

func (c *fakeCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = fmt.Sprintf("%v", value)
	return nil
}

func (c *fakeCacheRepository) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("cache miss: %s", key)
}

func (c *fakeCacheRepository) Del(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}
