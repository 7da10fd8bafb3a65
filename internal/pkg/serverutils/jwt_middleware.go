package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/pkg/apperror"
	"thrapy-be/internal/repository/contract"
	"thrapy-be/internal/repository/specification"
)

const currentUserKey = "current_user"

// AuthMiddleware resolves the bearer token to a user record and stores it in
// request locals for handlers downstream.
func AuthMiddleware(userRepo contract.UserRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperror.Auth("Missing token")
		}

		userId, err := ResolveToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return err
		}

		user, err := userRepo.FindOne(ctx.Context(), specification.ById{Id: userId})
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.Auth("User not found")
		}

		ctx.Locals(currentUserKey, user)
		return ctx.Next()
	}
}

// RequireAdmin guards admin-only routes. Must run after AuthMiddleware.
func RequireAdmin(ctx *fiber.Ctx) error {
	user := CurrentUser(ctx)
	if user == nil || user.Role != entity.UserRoleAdmin {
		return apperror.Forbidden("Admin access required")
	}
	return ctx.Next()
}

// CurrentUser returns the authenticated user stored by AuthMiddleware, or nil.
func CurrentUser(ctx *fiber.Ctx) *entity.User {
	user, _ := ctx.Locals(currentUserKey).(*entity.User)
	return user
}
