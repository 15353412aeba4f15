// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"crypto/subtle"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"moonsys_backend/internals/configs"
	"moonsys_backend/internals/features/users/auth/dto"
	helper "moonsys_backend/internals/helpers"
)

const tokenTTL = 24 * time.Hour

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

/* ===================== LOGIN ===================== */
// POST /login
//
// Single-operator dashboard: the only account is the admin credential
// from the environment.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	if configs.AdminPassword == "" || configs.JWTSecret == "" {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Login is not configured")
	}

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(configs.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(configs.AdminPassword)) == 1
	if !emailOK || !passOK {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  configs.AdminEmail,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenTTL.Seconds()),
		User:        dto.User{Email: configs.AdminEmail, Role: "admin"},
	})
}

/* ===================== SESSION ===================== */
// GET /api/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)
	return helper.Success(c, "OK", dto.User{Email: email, Role: "admin"})
}
