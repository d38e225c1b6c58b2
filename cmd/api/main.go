package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	appcart "github.com/xiebiao/bookshop/internal/application/cart"
	appcategory "github.com/xiebiao/bookshop/internal/application/category"
	appfavorite "github.com/xiebiao/bookshop/internal/application/favorite"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/response"
)

// main 主程序入口(手动依赖注入,Wire版本见wire.go)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库与Redis连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 3. 依赖注入（手动组装）
	// 依赖链：Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	favoriteRepo := mysql.NewFavoriteRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	cartStore := redis.NewCartStore(redisClient, cfg.Session.CartTTL)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)

	// 初始化管理员账号(幂等)
	if cfg.Admin.Email != "" {
		if err := userService.EnsureAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatalf("初始化管理员失败: %v", err)
		}
	}

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)

	createBookUseCase := appbook.NewCreateBookUseCase(bookRepo, categoryRepo)
	listBooksUseCase := appbook.NewListBooksUseCase(bookRepo, categoryRepo)
	getBookUseCase := appbook.NewGetBookUseCase(bookRepo, categoryRepo)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookRepo, categoryRepo)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookRepo)

	createCategoryUseCase := appcategory.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := appcategory.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := appcategory.NewDeleteCategoryUseCase(categoryRepo)
	listCategoriesUseCase := appcategory.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := appcategory.NewGetCategoryUseCase(categoryRepo, bookRepo)

	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, bookRepo, userRepo, txManager)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo, bookRepo, userRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo, bookRepo, userRepo)
	listUserOrdersUseCase := apporder.NewListUserOrdersUseCase(orderRepo, bookRepo, userRepo)
	updateStatusUseCase := apporder.NewUpdateOrderStatusUseCase(orderRepo)
	deleteOrderUseCase := apporder.NewDeleteOrderUseCase(orderRepo, bookRepo, txManager)

	addFavoriteUseCase := appfavorite.NewAddFavoriteUseCase(favoriteRepo, bookRepo)
	removeFavoriteUseCase := appfavorite.NewRemoveFavoriteUseCase(favoriteRepo)
	listFavoritesUseCase := appfavorite.NewListFavoritesUseCase(favoriteRepo, bookRepo)

	cartUseCase := appcart.NewCartUseCase(cartStore, bookRepo, createOrderUseCase)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	bookHandler := handler.NewBookHandler(createBookUseCase, listBooksUseCase, getBookUseCase, updateBookUseCase, deleteBookUseCase)
	categoryHandler := handler.NewCategoryHandler(createCategoryUseCase, updateCategoryUseCase, deleteCategoryUseCase, listCategoriesUseCase, getCategoryUseCase)
	orderHandler := handler.NewOrderHandler(createOrderUseCase, getOrderUseCase, listOrdersUseCase, listUserOrdersUseCase, updateStatusUseCase, deleteOrderUseCase)
	favoriteHandler := handler.NewFavoriteHandler(addFavoriteUseCase, removeFavoriteUseCase, listFavoritesUseCase)
	cartHandler := handler.NewCartHandler(cartUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 4. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 5. 注册路由
	registerRoutes(r, userHandler, bookHandler, categoryHandler, orderHandler, favoriteHandler, cartHandler, authMiddleware)

	// 6. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
// 权限约定:
// - 目录读接口公开;目录写接口要求管理员
// - 订单、收藏要求登录;全量订单、改状态、删订单要求管理员
// - 购物车按X-Session-Id识别会话,结算额外要求登录
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	orderHandler *handler.OrderHandler,
	favoriteHandler *handler.FavoriteHandler,
	cartHandler *handler.CartHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Swagger文档(生产环境建议关闭或加访问控制)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		requireAuth := authMiddleware.RequireAuth()
		requireAdmin := authMiddleware.RequireAdmin()

		// 用户模块
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", requireAuth, userHandler.Logout)
		}

		// 图书模块
		books := api.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.GET("/category/:id", bookHandler.ListBooksByCategory)

			books.POST("", requireAuth, requireAdmin, bookHandler.CreateBook)
			books.PUT("/:id", requireAuth, requireAdmin, bookHandler.UpdateBook)
			books.DELETE("/:id", requireAuth, requireAdmin, bookHandler.DeleteBook)
		}

		// 分类模块
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id", categoryHandler.GetCategory)

			categories.POST("", requireAuth, requireAdmin, categoryHandler.CreateCategory)
			categories.PUT("/:id", requireAuth, requireAdmin, categoryHandler.UpdateCategory)
			categories.DELETE("/:id", requireAuth, requireAdmin, categoryHandler.DeleteCategory)
		}

		// 订单模块(全部需要登录)
		orders := api.Group("/orders")
		orders.Use(requireAuth)
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/user/:userId", orderHandler.ListUserOrders)

			orders.GET("", requireAdmin, orderHandler.ListOrders)
			orders.PUT("/:id/status", requireAdmin, orderHandler.UpdateOrderStatus)
			orders.DELETE("/:id", requireAdmin, orderHandler.DeleteOrder)
		}

		// 收藏模块(需要登录)
		favorites := api.Group("/favorites")
		favorites.Use(requireAuth)
		{
			favorites.POST("", favoriteHandler.AddFavorite)
			favorites.DELETE("/:id", favoriteHandler.RemoveFavorite)
			favorites.GET("/user/:userId", favoriteHandler.ListUserFavorites)
		}

		// 购物车模块(会话识别,结算需要登录)
		cart := api.Group("/cart")
		cart.Use(middleware.RequireSession())
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:bookId", cartHandler.UpdateItem)
			cart.DELETE("/items/:bookId", cartHandler.RemoveItem)
			cart.POST("/checkout", requireAuth, cartHandler.Checkout)
		}
	}
}
