package routes

import (
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/handlers"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// Register binds every route with its middleware chain. RequireAuth always
// runs before any role guard.
func Register(app *fiber.App, authH *handlers.AuthHandler, userH *handlers.UserHandler, donationH *handlers.DonationHandler, requireAuth fiber.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is running")
	})

	app.Post("/jwt", authH.IssueToken)

	// users
	app.Post("/users", userH.Create)
	app.Put("/users/update/:id", requireAuth, userH.UpdateProfile)
	app.Patch("/users/block/:id", requireAuth, middleware.RequireAdmin(), userH.Block)
	app.Patch("/users/unblock/:id", requireAuth, middleware.RequireAdmin(), userH.Unblock)
	app.Patch("/users/volunteer/:id", requireAuth, middleware.RequireAdmin(), userH.MakeVolunteer)
	app.Patch("/users/donor/:id", requireAuth, middleware.RequireAdmin(), userH.MakeDonor)
	app.Patch("/users/admin/:id", requireAuth, middleware.RequireAdmin(), userH.MakeAdmin)
	app.Get("/users", requireAuth, middleware.RequireAdmin(), userH.List)
	app.Get("/users/data/:email", requireAuth, userH.GetByEmail)
	app.Get("/users/admin/:email", requireAuth, middleware.RequireAdmin(), userH.AdminFlag)
	app.Get("/users/donor/:email", requireAuth, middleware.RequireDonor(), userH.DonorFlag)

	// donation requests
	app.Post("/donation-requests", donationH.Create)
	app.Get("/donation-requests", donationH.List)
	app.Get("/donation-requests/:id", donationH.GetByID)
	app.Put("/donation-requests/inprogress/:id", requireAuth, donationH.Assign)
	app.Patch("/donation-requests/patch-done/:id", requireAuth, donationH.MarkDone)
	app.Patch("/donation-requests/patch-cancel/:id", requireAuth, donationH.MarkCancelled)
	app.Delete("/donation-requests/delete/:id", requireAuth, middleware.RequireDonorOrAdmin(), donationH.Delete)
	app.Put("/donation-requests/update/:id", requireAuth, middleware.RequireDonorOrAdmin(), donationH.Update)

	app.Get("/user/donation-requests", requireAuth, middleware.RequireDonor(), donationH.ListMine)
	app.Get("/user/donation-requests/recent", requireAuth, middleware.RequireDonor(), donationH.RecentMine)
	app.Get("/user/donation-requests/count", requireAuth, middleware.RequireDonor(), donationH.CountMine)

	app.Get("/admin/donation-requests", requireAuth, middleware.RequireVolunteerOrAdmin(), donationH.ListAll)
	app.Get("/admin/donation-requests/count", requireAuth, middleware.RequireVolunteerOrAdmin(), donationH.CountAll)
}
