package api

import (
	"net/http"

	adminHandler "engage-server/internal/admin/handler"
	authHandler "engage-server/internal/auth/handler"
	campaignHandler "engage-server/internal/campaign/handler"
	courtIssueHandler "engage-server/internal/courtissue/handler"
	"engage-server/internal/ratelimit"
	reportsHandler "engage-server/internal/reports/handler"
	rewardAccountsHandler "engage-server/internal/rewardaccounts/handler"
	segmentsHandler "engage-server/internal/segments/handler"
	"engage-server/internal/store"
	tablesHandler "engage-server/internal/tables/handler"
	tasksHandler "engage-server/internal/tasks/handler"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler the API mounts.
type Handlers struct {
	Auth           authHandler.Handler
	Admin          adminHandler.Handler
	Campaign       campaignHandler.Handler
	Segments       segmentsHandler.Handler
	Reports        reportsHandler.Handler
	RewardAccounts rewardAccountsHandler.Handler
	Tables         tablesHandler.Handler
	Tasks          tasksHandler.Handler
	CourtIssue     courtIssueHandler.Handler
	AuthLimiter    *ratelimit.Service
}

type API struct {
	router   *gin.RouterGroup
	handlers Handlers
}

func New(router *gin.RouterGroup, handlers Handlers) API {
	return API{
		router:   router,
		handlers: handlers,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	h := &a.handlers

	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth", h.AuthLimiter.Middleware("auth"))
		authGroup.POST("/login", h.Auth.HandleEmailLogin)
		authGroup.POST("/forgot-password", h.Auth.HandleForgotPassword)
	}

	protected := apiGroup.Group("", h.Auth.HandleJWTMiddleware)
	protected.GET("/auth/me", h.Auth.GetUserInfo)

	approvers := authHandler.RequireRole(store.RoleAdmin, store.RoleApprover)
	admins := authHandler.RequireRole(store.RoleAdmin)

	campaigns := protected.Group("/campaigns")
	{
		campaigns.GET("/", h.Campaign.HandleListCampaigns)
		campaigns.POST("/create/", h.Campaign.HandleCreateCampaign)
		campaigns.GET("/:campaign_id/", h.Campaign.HandleGetCampaign)
		campaigns.PUT("/:campaign_id/", h.Campaign.HandleUpdateCampaign)
		campaigns.DELETE("/:campaign_id/delete/", h.Campaign.HandleDeleteCampaign)
		campaigns.POST("/:campaign_id/actions/:action/", h.Campaign.HandlePerformAction)
		campaigns.POST("/:campaign_id/resubmit/", h.Campaign.HandleResubmit)
	}

	approvals := protected.Group("/approvals")
	{
		approvals.GET("/", approvers, h.Campaign.HandleApprovalQueue)
		approvals.GET("/:campaign_id/", h.Campaign.HandleGetApproval)
		approvals.POST("/:campaign_id/preview/", approvers, h.Campaign.HandlePreviewDecision)
		approvals.POST("/:campaign_id/decision/", approvers, h.Campaign.HandleRecordDecision)
	}

	segments := protected.Group("/segments")
	{
		segments.GET("/", h.Segments.HandleListSegments)
		segments.POST("/create/", h.Segments.HandleCreateSegment)
		segments.POST("/preview/", h.Segments.HandlePreviewSegment)
		segments.GET("/:segment_id/", h.Segments.HandleGetSegment)
		segments.PUT("/:segment_id/", h.Segments.HandleUpdateSegment)
		segments.POST("/:segment_id/refresh/", h.Segments.HandleRefreshSegment)
		segments.DELETE("/:segment_id/delete/", h.Segments.HandleDeleteSegment)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/", h.Reports.HandleListReports)
		reports.POST("/create/", h.Reports.HandleCreateReport)
		reports.GET("/:report_id/", h.Reports.HandleGetReport)
		reports.DELETE("/:report_id/delete/", h.Reports.HandleDeleteReport)
	}

	rewardAccounts := protected.Group("/reward-accounts")
	{
		rewardAccounts.GET("/", h.RewardAccounts.HandleListRewardAccounts)
		rewardAccounts.GET("/export/", h.RewardAccounts.HandleExportRewardAccounts)
		rewardAccounts.POST("/create/", h.RewardAccounts.HandleCreateRewardAccount)
		rewardAccounts.GET("/:account_id/", h.RewardAccounts.HandleGetRewardAccount)
		rewardAccounts.PUT("/:account_id/", h.RewardAccounts.HandleUpdateRewardAccount)
		rewardAccounts.DELETE("/:account_id/delete/", h.RewardAccounts.HandleDeleteRewardAccount)
	}

	admin := protected.Group("/admin", admins)
	{
		admin.GET("/users/", h.Admin.HandleListUsers)
		admin.POST("/users/create/", h.Admin.HandleCreateUser)
		admin.GET("/users/:user_id/", h.Admin.HandleGetUser)
		admin.PUT("/users/:user_id/", h.Admin.HandleUpdateUser)
		admin.DELETE("/users/:user_id/delete/", h.Admin.HandleDeleteUser)
		admin.GET("/roles/", h.Admin.HandleListRoles)
		admin.GET("/permissions/", h.Admin.HandleGetPermissions)
		admin.GET("/audit-logs/", h.Admin.HandleListAuditLogs)
	}

	tables := protected.Group("/tables")
	{
		for route, template := range tablesHandler.Templates {
			tables.POST("/"+route, h.Tables.HandleCreateFromTemplate(template))
		}
		tables.POST("/create_table_from_sql", h.Tables.HandleCreateFromSQL)
		tables.POST("/create_table_from_file", h.Tables.HandleCreateFromFile)
	}

	tasks := protected.Group("/task")
	{
		tasks.GET("/get", h.Tasks.HandleListTasks)
		tasks.POST("/add", h.Tasks.HandleCreateTask)
		tasks.PUT("/update_status", h.Tasks.HandleUpdateTaskStatus)
		tasks.DELETE("/delete", h.Tasks.HandleDeleteTask)
	}

	protected.POST("/court_issue", h.CourtIssue.HandleQuery)
	protected.POST("/court_issue/export", h.CourtIssue.HandleExport)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
