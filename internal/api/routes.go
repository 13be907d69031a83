package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	registerPublicAPIRoutes(app, handler)
	registerMemberAPIRoutes(app, handler)
}

func registerPublicAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")
	api.Get("/home", handler.Home)
	api.Get("/products", handler.ListProducts)
	api.Get("/products/:id", handler.GetProduct)
	api.Get("/subscription-plans", handler.ListSubscriptionPlans)
	api.Get("/subscription-plans/:id", handler.GetSubscriptionPlan)
	api.Get("/content", handler.ContentLibrary)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
}

func registerMemberAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.AuthRequired)

	api.Get("/account", handler.GetAccount)
	api.Put("/account", handler.UpdateAccount)
	api.Put("/account/password", handler.ChangePassword)

	api.Get("/profile", handler.GetProfile)
	api.Put("/profile", handler.UpdateProfile)
	api.Get("/dashboard", handler.Dashboard)

	api.Post("/subscription-plans/:id/subscribe", handler.Subscribe)
	api.Get("/subscriptions", handler.MySubscriptions)

	api.Get("/cart", handler.GetCart)
	api.Post("/cart/items/:productID", handler.AddToCart)
	api.Patch("/cart/items/:itemID", handler.UpdateCartItem)
	api.Delete("/cart/items/:itemID", handler.RemoveCartItem)
	api.Post("/checkout", handler.Checkout)

	api.Get("/orders", handler.ListOrders)
	api.Get("/orders/:id", handler.GetOrder)
	api.Post("/orders/:id/pay", handler.RequestPayment)

	api.Get("/wishlist", handler.GetWishlist)
	api.Post("/wishlist/:productID", handler.AddToWishlist)
	api.Delete("/wishlist/:itemID", handler.RemoveFromWishlist)

	api.Get("/progress", handler.ListProgress)
	api.Post("/progress", handler.RecordProgress)

	forum := api.Group("/forum")
	forum.Get("", handler.ForumOverview)
	forum.Get("/topics/:id/threads", handler.ForumTopic)
	forum.Post("/topics/:id/threads", handler.CreateForumThread)
	forum.Get("/threads/:id", handler.ForumThread)
	forum.Post("/threads/:id/replies", handler.ReplyForumThread)

	api.Get("/recipes/:id", handler.GetRecipe)

	exercisePlan := api.Group("/exercise-plan", handler.RequireActiveSubscription)
	exercisePlan.Get("", handler.GetExercisePlan)
	exercisePlan.Post("", handler.RequireCompletedProfile, handler.SaveExercisePlan)
	exercisePlan.Get("/days/:id", handler.GetWorkoutDay)

	mealPlan := api.Group("/meal-plan", handler.RequireActiveSubscription)
	mealPlan.Get("", handler.GetMealPlan)
	mealPlan.Get("/suggestion", handler.RequireCompletedProfile, handler.MealPlanSuggestion)
	mealPlan.Post("", handler.RequireCompletedProfile, handler.SaveMealPlan)
	mealPlan.Get("/days/:id", handler.GetDailyMeal)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
