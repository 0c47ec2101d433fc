package services

import (
	"context"
	"sort"
	"time"

	"botic/internal/models/db_models"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	users  map[uint]*db_models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*db_models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*db_models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UsernameTaken(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uint, passwordHash string) error {
	if u, ok := f.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

type fakePlanRepo struct {
	plans  map[uint]*db_models.Plan
	nextID uint
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[uint]*db_models.Plan{}, nextID: 1}
}

func (f *fakePlanRepo) GetAll(_ context.Context) ([]db_models.Plan, error) {
	ids := make([]uint, 0, len(f.plans))
	for id := range f.plans {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]db_models.Plan, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.plans[id])
	}
	return out, nil
}

func (f *fakePlanRepo) FindByID(_ context.Context, id uint) (*db_models.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlanRepo) Insert(_ context.Context, plan *db_models.Plan) error {
	plan.ID = f.nextID
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt
	f.nextID++
	cp := *plan
	f.plans[plan.ID] = &cp
	return nil
}

func (f *fakePlanRepo) Save(_ context.Context, plan *db_models.Plan) error {
	plan.UpdatedAt = time.Now()
	cp := *plan
	f.plans[plan.ID] = &cp
	return nil
}

func (f *fakePlanRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := f.plans[id]; !ok {
		return 0, nil
	}
	delete(f.plans, id)
	return 1, nil
}

type fakeAppRepo struct {
	apps   map[uint]*db_models.App
	nextID uint
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: map[uint]*db_models.App{}, nextID: 1}
}

func (f *fakeAppRepo) GetAll(_ context.Context) ([]db_models.App, error) {
	ids := make([]uint, 0, len(f.apps))
	for id := range f.apps {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]db_models.App, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.apps[id])
	}
	return out, nil
}

func (f *fakeAppRepo) FindByID(_ context.Context, id uint) (*db_models.App, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppRepo) Insert(_ context.Context, app *db_models.App) error {
	app.ID = f.nextID
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt
	f.nextID++
	cp := *app
	f.apps[app.ID] = &cp
	return nil
}

func (f *fakeAppRepo) Save(_ context.Context, app *db_models.App) error {
	app.UpdatedAt = time.Now()
	cp := *app
	f.apps[app.ID] = &cp
	return nil
}

func (f *fakeAppRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := f.apps[id]; !ok {
		return 0, nil
	}
	delete(f.apps, id)
	return 1, nil
}

func (f *fakeAppRepo) CountByUser(_ context.Context, userID uint) (int64, error) {
	var count int64
	for _, a := range f.apps {
		if a.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeSubscriptionRepo struct {
	subs   map[uint]*db_models.Subscription
	nextID uint
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: map[uint]*db_models.Subscription{}, nextID: 1}
}

func (f *fakeSubscriptionRepo) GetAll(_ context.Context) ([]db_models.Subscription, error) {
	ids := make([]uint, 0, len(f.subs))
	for id := range f.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]db_models.Subscription, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.subs[id])
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) FindByID(_ context.Context, id uint) (*db_models.Subscription, error) {
	s, ok := f.subs[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSubscriptionRepo) FindByPlanID(_ context.Context, planID uint) (*db_models.Subscription, error) {
	for _, s := range f.subs {
		if s.PlanID == planID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) FindNewestByAppID(_ context.Context, appID uint) (*db_models.Subscription, error) {
	var newest *db_models.Subscription
	for _, s := range f.subs {
		if s.AppID == nil || *s.AppID != appID {
			continue
		}
		if newest == nil || s.CreatedAt.After(newest.CreatedAt) {
			newest = s
		}
	}
	if newest == nil {
		return nil, nil
	}
	cp := *newest
	return &cp, nil
}

func (f *fakeSubscriptionRepo) Insert(_ context.Context, sub *db_models.Subscription) error {
	sub.ID = f.nextID
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = sub.CreatedAt
	f.nextID++
	cp := *sub
	f.subs[sub.ID] = &cp
	return nil
}

func (f *fakeSubscriptionRepo) Save(_ context.Context, sub *db_models.Subscription) error {
	sub.UpdatedAt = time.Now()
	cp := *sub
	f.subs[sub.ID] = &cp
	return nil
}

func (f *fakeSubscriptionRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := f.subs[id]; !ok {
		return 0, nil
	}
	delete(f.subs, id)
	return 1, nil
}

type fakeMailService struct {
	sentTo     []string
	sentTokens []string
}

func (f *fakeMailService) SendMailToResetPassword(to, token string) error {
	f.sentTo = append(f.sentTo, to)
	f.sentTokens = append(f.sentTokens, token)
	return nil
}
