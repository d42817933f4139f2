package handler

import (
	"coin-ledger/internal/adapter/http/middleware"
	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	AccountSvc     ports.AccountService
	LedgerSvc      ports.LedgerService
	PurchaseSvc    ports.PurchaseService
	BookSvc        ports.BookkeepingService
	ReportSvc      ports.ReportService
	AdminSvc       ports.AdminService
	TokenSvc       ports.TokenService
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	HistoryLimit   int
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth", rl(middleware.GroupAuth))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc)
	authed := v1.Group("", jwtAuth)

	coinHandler := NewCoinHandler(deps.LedgerSvc, deps.PurchaseSvc, deps.HistoryLimit)
	coins := authed.Group("/coins")
	{
		coins.GET("/balance", coinHandler.GetBalance)
		coins.GET("/history", coinHandler.History)
		coins.GET("/summary", coinHandler.Summary)
		coins.POST("/purchase", rl(middleware.GroupPurchase), coinHandler.Purchase)
	}

	accountHandler := NewAccountHandler(deps.AccountSvc)
	authed.GET("/account", accountHandler.GetProfile)
	authed.PUT("/account", accountHandler.UpdateProfile)

	records := NewRecordsHandler(deps.BookSvc)
	authed.GET("/invoices", records.ListInvoices)
	authed.POST("/invoices", records.CreateInvoice)
	authed.DELETE("/invoices/:id", records.DeleteRecord(domain.RecordKindInvoice))
	authed.GET("/inventory", records.ListInventory)
	authed.POST("/inventory", records.AddInventory)
	authed.PUT("/inventory/:id", records.UpdateInventory)
	authed.DELETE("/inventory/:id", records.DeleteRecord(domain.RecordKindInventory))
	authed.GET("/debtors", records.ListContacts(domain.ContactTypeDebtor))
	authed.POST("/debtors", records.CreateContact(domain.ContactTypeDebtor))
	authed.PUT("/debtors/:id", records.UpdateContact(domain.ContactTypeDebtor))
	authed.DELETE("/debtors/:id", records.DeleteRecord(domain.RecordKindDebtor))
	authed.GET("/creditors", records.ListContacts(domain.ContactTypeCreditor))
	authed.POST("/creditors", records.CreateContact(domain.ContactTypeCreditor))
	authed.PUT("/creditors/:id", records.UpdateContact(domain.ContactTypeCreditor))
	authed.DELETE("/creditors/:id", records.DeleteRecord(domain.RecordKindCreditor))
	authed.GET("/receipts", records.ListCashflows(domain.CashflowTypeReceipt))
	authed.POST("/receipts", records.RecordCashflow(domain.CashflowTypeReceipt))
	authed.PUT("/receipts/:id", records.UpdateCashflow(domain.CashflowTypeReceipt))
	authed.DELETE("/receipts/:id", records.DeleteRecord(domain.RecordKindReceipt))
	authed.GET("/payments", records.ListCashflows(domain.CashflowTypePayment))
	authed.POST("/payments", records.RecordCashflow(domain.CashflowTypePayment))
	authed.PUT("/payments/:id", records.UpdateCashflow(domain.CashflowTypePayment))
	authed.DELETE("/payments/:id", records.DeleteRecord(domain.RecordKindPayment))
	authed.POST("/feedback", records.SubmitFeedback)

	reportHandler := NewReportHandler(deps.ReportSvc)
	reports := authed.Group("/reports")
	{
		reports.GET("/profit-loss", reportHandler.ProfitLoss)
		reports.GET("/inventory", reportHandler.Inventory)
	}

	// --- Admin override channel ---
	adminHandler := NewAdminHandler(deps.AdminSvc)
	admin := authed.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/credits", rl(middleware.GroupAdminCredit), adminHandler.Credit)
		admin.GET("/accounts", adminHandler.ListAccounts)
		admin.PUT("/accounts/:id/suspend", rl(middleware.GroupAdminSuspend), adminHandler.Suspend)
		admin.DELETE("/accounts/:id", rl(middleware.GroupAdminDelete), adminHandler.Delete)
		admin.DELETE("/records/:kind/:id", rl(middleware.GroupAdminRecord), adminHandler.DeleteRecord)
		admin.GET("/accounts/:id/reconcile", adminHandler.Reconcile)
		admin.GET("/audit-logs", adminHandler.AuditLogs)
		admin.GET("/ledger", adminHandler.Ledger)
		admin.GET("/dashboard", adminHandler.Dashboard)
	}

	return r
}
