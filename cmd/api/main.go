package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/Yughie/Phylab-System/internal/adapter/http"
	"github.com/Yughie/Phylab-System/internal/adapter/middleware"
	"github.com/Yughie/Phylab-System/internal/adapter/mirror"
	"github.com/Yughie/Phylab-System/internal/adapter/repository/mysql"
	"github.com/Yughie/Phylab-System/internal/config"
	accountDomain "github.com/Yughie/Phylab-System/internal/domain/account"
	inventoryDomain "github.com/Yughie/Phylab-System/internal/domain/inventory"
	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"
	"github.com/Yughie/Phylab-System/internal/infrastructure/cache"
	"github.com/Yughie/Phylab-System/internal/infrastructure/db"
	accountUC "github.com/Yughie/Phylab-System/internal/usecase/account"
	"github.com/Yughie/Phylab-System/internal/usecase/history"
	inventoryUC "github.com/Yughie/Phylab-System/internal/usecase/inventory"
	"github.com/Yughie/Phylab-System/internal/usecase/lifecycle"
	requestUC "github.com/Yughie/Phylab-System/internal/usecase/request"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&requestDomain.BorrowRequest{},
		&requestDomain.BorrowRequestItem{},
		&inventoryDomain.Item{},
		&accountDomain.User{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	requests := mysql.NewRequestRepository(gdb)
	inventoryRepo := mysql.NewInventoryRepository(gdb)
	accounts := mysql.NewAccountRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	stockMirror := mirror.New(cfg.StockMirrorURL)

	lifecycleUC := lifecycle.NewUsecase(requests, uow)
	reqUC := requestUC.NewUsecase(requests)
	histUC := history.NewUsecase(requests)
	invUC := inventoryUC.NewUsecase(inventoryRepo, requests, stockMirror)
	acctUC := accountUC.NewUsecase(accounts)

	h := httpadp.NewHandler()
	reqH := httpadp.NewRequestHandler(reqUC)
	lcH := httpadp.NewLifecycleHandler(lifecycleUC)
	histH := httpadp.NewHistoryHandler(histUC)
	invH := httpadp.NewInventoryHandler(invUC)
	acctH := httpadp.NewAccountHandler(acctUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")
	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api.POST("/borrow-requests", reqH.Submit, idemp)
	api.GET("/borrow-requests", reqH.List)
	api.GET("/borrow-requests/:ref", reqH.Get)
	api.PATCH("/borrow-requests/:ref/items", lcH.UpdateItems, idemp)
	api.POST("/borrow-requests/:ref/approve", lcH.Approve, idemp)
	api.POST("/borrow-requests/:ref/reject", lcH.Reject, idemp)
	api.POST("/borrow-requests/:ref/return", lcH.MarkReturned, idemp)

	api.GET("/loans", lcH.ListBorrowed)
	api.GET("/history", histH.List)

	api.GET("/inventory", invH.List)
	api.POST("/inventory", invH.Create)
	api.GET("/inventory/:item_key", invH.Get)
	api.PUT("/inventory/:item_key", invH.Update)
	api.DELETE("/inventory/:item_key", invH.Delete)
	api.POST("/inventory/:item_key/stock", invH.AdjustStock)

	api.POST("/register", acctH.Register)
	api.GET("/students", acctH.ListStudents)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
