package route

import (
	"github.com/gofiber/fiber/v2"

	authCtrl "moonsys_backend/internals/features/users/auth/controller"
	"moonsys_backend/internals/middlewares"
)

// AuthRoutes registers the public login endpoint with its own tighter
// rate limit.
func AuthRoutes(r fiber.Router) {
	ctrl := authCtrl.NewAuthController()
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// SessionRoutes registers the JWT-guarded session probe.
func SessionRoutes(r fiber.Router) {
	ctrl := authCtrl.NewAuthController()
	r.Get("/me", ctrl.Me)
}
