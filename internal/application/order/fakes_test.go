package order

import (
	"context"
	"sort"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/user"
)

// 内存版仓储与事务管理器
// 用例测试不依赖MySQL:仓储行为按接口约定在内存中复现,
// 事务通过"执行前快照、失败回滚"模拟原子性

// fakeBookRepo 内存图书仓储
type fakeBookRepo struct {
	books    map[uint]*book.Book
	nextID   uint
	snapshot map[uint]*book.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*book.Book), nextID: 1}
}

func (r *fakeBookRepo) add(b *book.Book) *book.Book {
	clone := *b
	clone.ID = r.nextID
	r.nextID++
	r.books[clone.ID] = &clone
	return &clone
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error {
	created := r.add(b)
	b.ID = created.ID
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFoundByID(id)
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookRepo) FindByIDs(ctx context.Context, ids []uint) ([]*book.Book, error) {
	var out []*book.Book
	for _, id := range ids {
		if b, ok := r.books[id]; ok {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return book.ErrBookNotFoundByID(b.ID)
	}
	clone := *b
	r.books[b.ID] = &clone
	return nil
}

func (r *fakeBookRepo) Deactivate(ctx context.Context, id uint) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFoundByID(id)
	}
	b.IsActive = false
	return nil
}

func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, error) {
	var out []*book.Book
	for _, b := range r.books {
		if b.IsActive {
			clone := *b
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBookRepo) ListByCategory(ctx context.Context, categoryID uint) ([]*book.Book, error) {
	var out []*book.Book
	for _, b := range r.books {
		if b.IsActive && b.CategoryID == categoryID {
			clone := *b
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFoundByID(id)
	}
	if b.Stock+delta < 0 {
		return book.ErrInsufficientStock(id, -delta, b.Stock)
	}
	b.Stock += delta
	return nil
}

func (r *fakeBookRepo) takeSnapshot() {
	r.snapshot = make(map[uint]*book.Book, len(r.books))
	for id, b := range r.books {
		clone := *b
		r.snapshot[id] = &clone
	}
}

func (r *fakeBookRepo) restoreSnapshot() {
	r.books = r.snapshot
	r.snapshot = nil
}

// fakeOrderRepo 内存订单仓储
type fakeOrderRepo struct {
	orders   map[uint]*order.Order
	nextID   uint
	snapshot map[uint]*order.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*order.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	o.ID = r.nextID
	r.nextID++
	for i := range o.Items {
		o.Items[i].ID = uint(i + 1)
		o.Items[i].OrderID = o.ID
	}
	clone := *o
	clone.Items = append([]order.OrderItem(nil), o.Items...)
	r.orders[o.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	clone := *o
	clone.Items = append([]order.OrderItem(nil), o.Items...)
	return &clone, nil
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range r.orders {
		clone := *o
		clone.Items = append([]order.OrderItem(nil), o.Items...)
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out, nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID uint) ([]*order.Order, error) {
	all, _ := r.List(ctx)
	var out []*order.Order
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, o *order.Order) error {
	stored, ok := r.orders[o.ID]
	if !ok {
		return order.ErrOrderNotFound
	}
	stored.Status = o.Status
	stored.UpdatedAt = o.UpdatedAt
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.orders[id]; !ok {
		return order.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) takeSnapshot() {
	r.snapshot = make(map[uint]*order.Order, len(r.orders))
	for id, o := range r.orders {
		clone := *o
		clone.Items = append([]order.OrderItem(nil), o.Items...)
		r.snapshot[id] = &clone
	}
}

func (r *fakeOrderRepo) restoreSnapshot() {
	r.orders = r.snapshot
	r.snapshot = nil
}

// fakeUserRepo 内存用户仓储
type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*user.User), nextID: 1}
}

func (r *fakeUserRepo) add(u *user.User) *user.User {
	clone := *u
	clone.ID = r.nextID
	r.nextID++
	r.users[clone.ID] = &clone
	return &clone
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailDuplicate
		}
	}
	created := r.add(u)
	u.ID = created.ID
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, user.ErrUserNotFound
}

// snapshotter 支持快照回滚的内存仓储
type snapshotter interface {
	takeSnapshot()
	restoreSnapshot()
}

// fakeTxManager 内存事务管理器
// fn执行前对所有仓储拍快照,fn返回error时整体恢复,模拟事务回滚
type fakeTxManager struct {
	stores []snapshotter
}

func newFakeTxManager(stores ...snapshotter) *fakeTxManager {
	return &fakeTxManager{stores: stores}
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	for _, s := range m.stores {
		s.takeSnapshot()
	}
	if err := fn(ctx); err != nil {
		for _, s := range m.stores {
			s.restoreSnapshot()
		}
		return err
	}
	return nil
}
