package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

type recorderSpy struct {
	mu   sync.Mutex
	list []entity.Activity
}

func (r *recorderSpy) Record(_ context.Context, a entity.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, a)
}

func (r *recorderSpy) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.list))
	for _, a := range r.list {
		out = append(out, a.ActivityType)
	}
	return out
}

// orderRepoFake guarda pedidos en memoria y actúa también como OrderTxRunner.
// Con failAddItem la "transacción" descarta todo lo escrito.
type orderRepoFake struct {
	repository.OrderRepository
	orders      map[string]*entity.Order
	items       map[string][]entity.OrderItem
	nextItemID  int64
	failAddItem bool
}

func newOrderRepoFake() *orderRepoFake {
	return &orderRepoFake{orders: map[string]*entity.Order{}, items: map[string][]entity.OrderItem{}}
}

func (f *orderRepoFake) RunOrder(ctx context.Context, fn func(orders repository.OrderRepository) error) error {
	snapOrders := make(map[string]*entity.Order, len(f.orders))
	for k, v := range f.orders {
		snapOrders[k] = v
	}
	snapItems := make(map[string][]entity.OrderItem, len(f.items))
	for k, v := range f.items {
		snapItems[k] = v
	}
	if err := fn(f); err != nil {
		f.orders, f.items = snapOrders, snapItems
		return err
	}
	return nil
}

func (f *orderRepoFake) Create(_ context.Context, o *entity.Order) error {
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now()
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *orderRepoFake) AddItem(_ context.Context, it *entity.OrderItem) error {
	if f.failAddItem {
		return errBoom
	}
	f.nextItemID++
	it.ID = f.nextItemID
	f.items[it.OrderID] = append(f.items[it.OrderID], *it)
	return nil
}

func (f *orderRepoFake) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *orderRepoFake) Items(_ context.Context, id string) ([]entity.OrderItem, error) {
	return f.items[id], nil
}

func (f *orderRepoFake) Update(_ context.Context, o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *orderRepoFake) UpdateStatus(_ context.Context, id string, s entity.OrderStatus) (bool, error) {
	o, ok := f.orders[id]
	if !ok {
		return false, nil
	}
	o.Status = s
	return true, nil
}

func (f *orderRepoFake) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	delete(f.orders, id)
	delete(f.items, id)
	return true, nil
}

type receiptStub struct{ rendered *entity.Order }

func (r *receiptStub) RenderOrderReceipt(o *entity.Order) ([]byte, error) {
	r.rendered = o
	return []byte("%PDF-1.3"), nil
}

// categoryRepoFake aplica la unicidad de nombre y slug como lo haría el índice único.
type categoryRepoFake struct {
	repository.CategoryRepository
	byID   map[int64]*entity.Category
	nextID int64
	inUse  map[int64]bool
}

func newCategoryRepoFake() *categoryRepoFake {
	return &categoryRepoFake{byID: map[int64]*entity.Category{}, inUse: map[int64]bool{}}
}

func (f *categoryRepoFake) clash(c *entity.Category) bool {
	for id, other := range f.byID {
		if id != c.ID && (other.Name == c.Name || other.Slug == c.Slug) {
			return true
		}
	}
	return false
}

func (f *categoryRepoFake) Create(_ context.Context, c *entity.Category) error {
	if f.clash(c) {
		return domain.ErrDuplicate
	}
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *categoryRepoFake) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *categoryRepoFake) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range f.byID {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *categoryRepoFake) Update(_ context.Context, c *entity.Category) error {
	if f.clash(c) {
		return domain.ErrDuplicate
	}
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *categoryRepoFake) SoftDeleteUnused(_ context.Context, id int64) error {
	c, ok := f.byID[id]
	if !ok || !c.IsActive {
		return domain.ErrNotFound
	}
	if f.inUse[id] {
		return domain.ErrConflict
	}
	c.IsActive = false
	return nil
}

type ratingRepoFake struct {
	repository.RatingRepository
	eligible  bool
	createErr error
	byID      map[string]*entity.ProductRating
}

func newRatingRepoFake() *ratingRepoFake {
	return &ratingRepoFake{eligible: true, byID: map[string]*entity.ProductRating{}}
}

func (f *ratingRepoFake) CanUserRate(context.Context, string, int64, string) (bool, error) {
	return f.eligible, nil
}

func (f *ratingRepoFake) CreateIfEligible(_ context.Context, r *entity.ProductRating) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, other := range f.byID {
		if other.UserID == r.UserID && other.ProductID == r.ProductID && other.OrderID == r.OrderID {
			return domain.ErrDuplicate
		}
	}
	r.ID = uuid.NewString()
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *ratingRepoFake) GetByID(_ context.Context, id string) (*entity.ProductRating, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *ratingRepoFake) Update(_ context.Context, r *entity.ProductRating) error {
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *ratingRepoFake) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func (f *ratingRepoFake) Moderate(_ context.Context, id string, approved bool, reason string) (bool, error) {
	r, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	r.IsApproved = approved
	r.IsFlagged = !approved
	r.FlagReason = reason
	return true, nil
}

type userRepoFake struct {
	repository.UserRepository
	byID map[string]*entity.User
}

func newUserRepoFake(users ...*entity.User) *userRepoFake {
	f := &userRepoFake{byID: map[string]*entity.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *userRepoFake) Create(_ context.Context, u *entity.User) error {
	for _, other := range f.byID {
		if other.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *userRepoFake) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *userRepoFake) Update(_ context.Context, u *entity.User) error {
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *userRepoFake) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

type identitySpy struct {
	emails  map[string]string
	deleted []string
	err     error
}

var _ ports.IdentityProvider = (*identitySpy)(nil)

func (s *identitySpy) UpdateEmail(_ context.Context, userID, email string) error {
	if s.err != nil {
		return s.err
	}
	if s.emails == nil {
		s.emails = map[string]string{}
	}
	s.emails[userID] = email
	return nil
}

func (s *identitySpy) DeleteUser(_ context.Context, userID string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, userID)
	return nil
}

type analyticsRepoFake struct {
	stored     []*entity.DailyMetrics
	computed   []time.Time
	logged     []*entity.Activity
	logErr     error
	from, to   time.Time
	activities []*entity.Activity
	limit      int
}

func (f *analyticsRepoFake) ComputeDailyMetrics(_ context.Context, day time.Time) (*entity.DailyMetrics, error) {
	f.computed = append(f.computed, day)
	return &entity.DailyMetrics{Date: day, TotalOrders: 2, NewUsers: 1}, nil
}

func (f *analyticsRepoFake) MetricsBetween(_ context.Context, from, to time.Time) ([]*entity.DailyMetrics, error) {
	f.from, f.to = from, to
	return f.stored, nil
}

func (f *analyticsRepoFake) LogActivity(_ context.Context, a *entity.Activity) error {
	if f.logErr != nil {
		return f.logErr
	}
	f.logged = append(f.logged, a)
	return nil
}

func (f *analyticsRepoFake) RecentActivity(_ context.Context, limit int) ([]*entity.Activity, error) {
	f.limit = limit
	return f.activities, nil
}

// textGenStub captura la petición y, con block, espera a que venza el contexto.
type textGenStub struct {
	reply    string
	block    bool
	got      ports.TextRequest
	deadline time.Time
}

func (s *textGenStub) GenerateText(ctx context.Context, req ports.TextRequest) (string, error) {
	s.got = req
	s.deadline, _ = ctx.Deadline()
	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.reply, nil
}

type speechStub struct{ lang, gender string }

func (s *speechStub) Synthesize(_ context.Context, _, lang, gender string) ([]byte, error) {
	s.lang, s.gender = lang, gender
	return []byte("ID3"), nil
}

type qrStub struct{ size int }

func (s *qrStub) GenerateQR(_ string, size int) ([]byte, error) {
	s.size = size
	return []byte{0x89, 'P', 'N', 'G'}, nil
}
