package serverutils

import (
	"time"

	"wisenotes-be/internal/pkg/identity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	gocache "github.com/patrickmn/go-cache"
)

const claimsLocalKey = "claims"

// NewJwtMiddleware verifies the bearer token and stores its claim set in
// the request locals. Verified tokens are cached briefly so hot clients
// don't pay signature verification on every request.
func NewJwtMiddleware(secret string) fiber.Handler {
	tokenCache := gocache.New(time.Minute, 5*time.Minute)

	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		if cached, found := tokenCache.Get(tokenStr); found {
			ctx.Locals(claimsLocalKey, cached.(identity.Claims))
			return ctx.Next()
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		mapClaims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		claims := identity.Claims(mapClaims)
		tokenCache.SetDefault(tokenStr, claims)

		ctx.Locals(claimsLocalKey, claims)
		return ctx.Next()
	}
}

// RequestClaims returns the claim set the jwt middleware attached, or
// nil when the request never passed through it.
func RequestClaims(ctx *fiber.Ctx) identity.Claims {
	claims, _ := ctx.Locals(claimsLocalKey).(identity.Claims)
	return claims
}
