package routes

import (
	"specs-nexus-web/internal/adapters/http/handlers"
	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/config"
	"specs-nexus-web/internal/core/services"
	"specs-nexus-web/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, client *nexus.Client, store *session.Store, cfg *config.Config, log *zap.Logger, chatService *services.ChatService) {
	// Initialize services
	authService := services.NewAuthService(client, log)
	dashboardService := services.NewDashboardService(client, log)
	eventsService := services.NewEventsService(client, log)
	announcementsService := services.NewAnnouncementsService(client, log)
	membershipService := services.NewMembershipService(client, log)
	directoryService := services.NewOfficerDirectoryService(client, log)
	analyticsService := services.NewAnalyticsService(client, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, store)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	eventsHandler := handlers.NewEventsHandler(eventsService)
	announcementsHandler := handlers.NewAnnouncementsHandler(announcementsService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	chatHandler := handlers.NewChatHandler(chatService)
	officerDashboardHandler := handlers.NewOfficerDashboardHandler(analyticsService)
	officerEventsHandler := handlers.NewOfficerEventsHandler(eventsService)
	officerAnnouncementsHandler := handlers.NewOfficerAnnouncementsHandler(announcementsService)
	officerMembershipHandler := handlers.NewOfficerMembershipHandler(membershipService)
	adminOfficersHandler := handlers.NewAdminOfficersHandler(directoryService)

	app.Get("/health", healthHandler.HealthCheck)

	// Login pages
	app.Get("/", authHandler.LoginPage)
	app.Post("/login", middleware.LoginRateLimiter(), authHandler.Login)
	app.Get("/officer-login", authHandler.OfficerLoginPage)
	app.Post("/officer-login", middleware.LoginRateLimiter(), authHandler.OfficerLogin)

	// Auth middlewares attach per-route. The member and officer cookie
	// slots are independent; neither principal's pages may demand the
	// other's session, so no catch-all group wraps them.
	memberAuth := middleware.MemberAuth(store)
	officerAuth := middleware.OfficerAuth(store)
	adminOnly := middleware.AdminOnly()
	noCache := middleware.NoCache()

	// Member portal
	app.Post("/logout", memberAuth, noCache, authHandler.Logout)
	app.Get("/dashboard", memberAuth, noCache, dashboardHandler.Dashboard)
	app.Get("/profile", memberAuth, noCache, dashboardHandler.Profile)
	app.Get("/events", memberAuth, noCache, eventsHandler.List)
	app.Post("/events/join/:id", memberAuth, noCache, eventsHandler.Join)
	app.Post("/events/leave/:id", memberAuth, noCache, eventsHandler.Leave)
	app.Get("/announcements", memberAuth, noCache, announcementsHandler.List)
	app.Get("/membership", memberAuth, noCache, membershipHandler.Page)
	app.Get("/membership/qrcode", memberAuth, noCache, membershipHandler.QRCode)
	app.Post("/membership/receipt/:id", memberAuth, noCache, membershipHandler.SubmitReceipt)

	// Support chat (member pages only)
	chat := app.Group("/api/chat", memberAuth)
	chat.Post("/start", chatHandler.Start)
	chat.Post("/", chatHandler.Send)

	// Officer portal
	app.Post("/officer-logout", officerAuth, noCache, authHandler.OfficerLogout)
	app.Get("/officer-dashboard", officerAuth, noCache, officerDashboardHandler.Dashboard)

	events := app.Group("/officer-manage-events", officerAuth, noCache)
	events.Get("/", officerEventsHandler.Manage)
	events.Post("/create", officerEventsHandler.Create)
	events.Post("/update/:id", officerEventsHandler.Update)
	events.Post("/delete/:id", officerEventsHandler.Delete)
	events.Get("/participants/:id", officerEventsHandler.Participants)

	announcements := app.Group("/officer-manage-announcements", officerAuth, noCache)
	announcements.Get("/", officerAnnouncementsHandler.Manage)
	announcements.Post("/create", officerAnnouncementsHandler.Create)
	announcements.Post("/update/:id", officerAnnouncementsHandler.Update)
	announcements.Post("/delete/:id", officerAnnouncementsHandler.Delete)

	membership := app.Group("/officer-manage-membership", officerAuth, noCache)
	membership.Get("/", officerMembershipHandler.Manage)
	membership.Post("/create", officerMembershipHandler.Create)
	membership.Post("/update/:id", officerMembershipHandler.Update)
	membership.Post("/delete/:id", officerMembershipHandler.Delete)
	membership.Post("/verify/:id", officerMembershipHandler.Verify)
	membership.Post("/requirements/create", officerMembershipHandler.CreateRequirement)
	membership.Post("/requirements/update", officerMembershipHandler.UpdateRequirement)
	membership.Post("/requirements/delete", officerMembershipHandler.DeleteRequirement)
	membership.Post("/requirements/qrcode", officerMembershipHandler.UploadRequirementQR)

	// Admin-only officer directory
	admin := app.Group("/admin-manage-officers", officerAuth, adminOnly, noCache)
	admin.Get("/", adminOfficersHandler.Manage)
	admin.Post("/create", adminOfficersHandler.Create)
	admin.Post("/update/:id", adminOfficersHandler.Update)
	admin.Post("/delete/:id", adminOfficersHandler.Delete)
	admin.Post("/import", adminOfficersHandler.Import)
}
