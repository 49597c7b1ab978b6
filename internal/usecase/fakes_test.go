package usecase

import (
	"context"
	"errors"
	"time"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
)

type fakeOrderRepo struct {
	orders    []*domain.Order
	createErr error
}

func (f *fakeOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.PopulatedOrder, error) {
	var out []domain.PopulatedOrder
	for _, o := range f.orders {
		if o.UserID != userID {
			continue
		}
		p := domain.PopulatedOrder{
			ID: o.ID, UserID: o.UserID, TotalAmount: o.TotalAmount,
			Address: o.Address, Status: o.Status,
			CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt,
		}
		for _, it := range o.Items {
			p.Items = append(p.Items, domain.PopulatedItem{
				Food:     domain.Food{ID: it.FoodID, Name: "food-" + it.FoodID, Price: 10},
				Quantity: it.Quantity,
			})
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, to domain.Status) error {
	for _, o := range f.orders {
		if o.ID == id {
			o.Status = to
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeOrderRepo) UpdateStatusIf(_ context.Context, id string, from, to domain.Status) (bool, error) {
	for _, o := range f.orders {
		if o.ID == id && o.Status == from {
			o.Status = to
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User // keyed by username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Stats(_ context.Context, _ string) (*domain.UserStats, error) {
	return &domain.UserStats{}, nil
}

type fakeFoodRepo struct {
	foods []domain.Food
	calls int
	err   error
}

func (f *fakeFoodRepo) List(_ context.Context) ([]domain.Food, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.foods, nil
}

type fakeFoodCache struct {
	foods  []domain.Food
	hit    bool
	getErr error
	setErr error
	sets   int
}

func (f *fakeFoodCache) Get(_ context.Context) ([]domain.Food, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.foods, f.hit, nil
}

func (f *fakeFoodCache) Set(_ context.Context, foods []domain.Food, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	f.foods = foods
	f.hit = true
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}
	return "token-for-" + userID, nil
}
