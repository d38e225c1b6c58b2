package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
)

// memBookRepo 内存图书仓储
type memBookRepo struct {
	books  map[uint]*book.Book
	nextID uint
}

func newMemBookRepo() *memBookRepo {
	return &memBookRepo{books: make(map[uint]*book.Book), nextID: 1}
}

func (r *memBookRepo) Create(ctx context.Context, b *book.Book) error {
	b.ID = r.nextID
	r.nextID++
	clone := *b
	r.books[b.ID] = &clone
	return nil
}

func (r *memBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	if b, ok := r.books[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, book.ErrBookNotFoundByID(id)
}

func (r *memBookRepo) FindByIDs(ctx context.Context, ids []uint) ([]*book.Book, error) {
	var out []*book.Book
	for _, id := range ids {
		if b, ok := r.books[id]; ok {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memBookRepo) Update(ctx context.Context, b *book.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return book.ErrBookNotFoundByID(b.ID)
	}
	clone := *b
	r.books[b.ID] = &clone
	return nil
}

func (r *memBookRepo) Deactivate(ctx context.Context, id uint) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFoundByID(id)
	}
	b.IsActive = false
	return nil
}

func (r *memBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, error) {
	var out []*book.Book
	for _, b := range r.books {
		if !b.IsActive {
			continue
		}
		if params.CategoryID != 0 && b.CategoryID != params.CategoryID {
			continue
		}
		if params.Keyword != "" &&
			!strings.Contains(b.Title, params.Keyword) && !strings.Contains(b.Author, params.Keyword) {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memBookRepo) ListByCategory(ctx context.Context, categoryID uint) ([]*book.Book, error) {
	return r.List(ctx, book.ListParams{CategoryID: categoryID})
}

func (r *memBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *memBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
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

// memCategoryRepo 内存分类仓储(图书接口测试只用到ExistsByID)
type memCategoryRepo struct {
	categories map[uint]*category.Category
}

func (r *memCategoryRepo) Create(ctx context.Context, c *category.Category) error { return nil }
func (r *memCategoryRepo) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, category.ErrCategoryNotFound
}
func (r *memCategoryRepo) FindByName(ctx context.Context, name string) (*category.Category, error) {
	return nil, category.ErrCategoryNotFound
}
func (r *memCategoryRepo) FindByIDs(ctx context.Context, ids []uint) ([]*category.Category, error) {
	var out []*category.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *memCategoryRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.categories[id]
	return ok, nil
}
func (r *memCategoryRepo) Update(ctx context.Context, c *category.Category) error { return nil }
func (r *memCategoryRepo) Deactivate(ctx context.Context, id uint) error          { return nil }
func (r *memCategoryRepo) List(ctx context.Context) ([]*category.Category, error) { return nil, nil }

// envelope 统一响应信封(测试解码用)
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupBookRouter 组装图书路由(不挂认证中间件,权限逻辑单独测)
func setupBookRouter(bookRepo *memBookRepo, categoryRepo *memCategoryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBookHandler(
		appbook.NewCreateBookUseCase(bookRepo, categoryRepo),
		appbook.NewListBooksUseCase(bookRepo, categoryRepo),
		appbook.NewGetBookUseCase(bookRepo, categoryRepo),
		appbook.NewUpdateBookUseCase(bookRepo, categoryRepo),
		appbook.NewDeleteBookUseCase(bookRepo),
	)

	r := gin.New()
	books := r.Group("/api/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBook)
		books.GET("/category/:id", h.ListBooksByCategory)
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
	return r
}

func seedCategory(repo *memCategoryRepo, id uint, name string) {
	if repo.categories == nil {
		repo.categories = make(map[uint]*category.Category)
	}
	c := category.NewCategory(name, "", "")
	c.ID = id
	repo.categories[id] = c
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestBookHandler_ListBooks 列表只含上架图书
func TestBookHandler_ListBooks(t *testing.T) {
	bookRepo := newMemBookRepo()
	categoryRepo := &memCategoryRepo{}
	seedCategory(categoryRepo, 1, "技术")
	router := setupBookRouter(bookRepo, categoryRepo)

	active := book.NewBook("《Go语言实战》", "威廉", "", 4550, "", 10, 1)
	_ = bookRepo.Create(context.Background(), active)
	inactive := book.NewBook("《旧版教程》", "张三", "", 1200, "", 5, 1)
	_ = bookRepo.Create(context.Background(), inactive)
	_ = bookRepo.Deactivate(context.Background(), inactive.ID)

	w := doRequest(router, http.MethodGet, "/api/books", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var books []appbook.BookResponse
	require.NoError(t, json.Unmarshal(resp.Data, &books))
	require.Len(t, books, 1, "已下架图书不应出现在列表")
	assert.Equal(t, "《Go语言实战》", books[0].Title)

	require.NotNil(t, books[0].Category, "响应应内嵌分类摘要")
	assert.Equal(t, uint(1), books[0].Category.ID)
	assert.Equal(t, "技术", books[0].Category.Name)
}

// TestBookHandler_GetBook 详情接口不过滤上架标记
func TestBookHandler_GetBook(t *testing.T) {
	bookRepo := newMemBookRepo()
	categoryRepo := &memCategoryRepo{}
	seedCategory(categoryRepo, 1, "技术")
	router := setupBookRouter(bookRepo, categoryRepo)

	b := book.NewBook("《Go语言实战》", "威廉", "", 4550, "", 10, 1)
	_ = bookRepo.Create(context.Background(), b)
	_ = bookRepo.Deactivate(context.Background(), b.ID)

	t.Run("已下架图书可按ID查到", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/books/1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		var got appbook.BookResponse
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		assert.False(t, got.IsActive)

		require.NotNil(t, got.Category)
		assert.Equal(t, "技术", got.Category.Name)
		assert.True(t, got.Category.IsActive)
	})

	t.Run("已停用分类仍随图书返回", func(t *testing.T) {
		seedCategory(categoryRepo, 2, "旧分类")
		categoryRepo.categories[2].IsActive = false
		b2 := book.NewBook("《老书》", "佚名", "", 1000, "", 3, 2)
		_ = bookRepo.Create(context.Background(), b2)

		w := doRequest(router, http.MethodGet, "/api/books/2", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		var got appbook.BookResponse
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		require.NotNil(t, got.Category)
		assert.Equal(t, "旧分类", got.Category.Name)
		assert.False(t, got.Category.IsActive)
	})

	t.Run("不存在的图书返回404", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/books/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("非法ID返回400", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/books/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestBookHandler_CreateBook 录入图书
func TestBookHandler_CreateBook(t *testing.T) {
	bookRepo := newMemBookRepo()
	categoryRepo := &memCategoryRepo{}
	seedCategory(categoryRepo, 1, "技术")
	router := setupBookRouter(bookRepo, categoryRepo)

	t.Run("录入成功", func(t *testing.T) {
		body := `{"title":"《Go语言实战》","author":"威廉","price":4550,"stock":10,"categoryId":1}`
		w := doRequest(router, http.MethodPost, "/api/books", body)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		var got appbook.BookResponse
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		assert.NotZero(t, got.ID)
		assert.True(t, got.IsActive)

		require.NotNil(t, got.Category)
		assert.Equal(t, "技术", got.Category.Name)
	})

	t.Run("分类不存在返回400", func(t *testing.T) {
		body := `{"title":"《孤儿书》","author":"无名","price":100,"stock":1,"categoryId":99}`
		w := doRequest(router, http.MethodPost, "/api/books", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("缺少必填字段返回400", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/books", `{"author":"无名"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestBookHandler_DeleteBook 下架后列表不可见、详情可见
func TestBookHandler_DeleteBook(t *testing.T) {
	bookRepo := newMemBookRepo()
	categoryRepo := &memCategoryRepo{}
	seedCategory(categoryRepo, 1, "技术")
	router := setupBookRouter(bookRepo, categoryRepo)

	b := book.NewBook("《Go语言实战》", "威廉", "", 4550, "", 10, 1)
	_ = bookRepo.Create(context.Background(), b)

	w := doRequest(router, http.MethodDelete, "/api/books/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodGet, "/api/books", "")
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var books []appbook.BookResponse
	require.NoError(t, json.Unmarshal(resp.Data, &books))
	assert.Empty(t, books)

	w = doRequest(router, http.MethodGet, "/api/books/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
