package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/dto"
	authsvc "github.com/splitmoney/splitmoney/pkg/service/auth"
)

func testJwtConfig() *config.Jwt {
	return &config.Jwt{
		Secret:        "test-secret",
		ExpiryMinutes: 60,
		CookieName:    "access_token",
	}
}

func issueToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	issuer := authsvc.NewTokenIssuer(testJwtConfig())
	resp, err := issuer.Issue(&dto.UserRead{ID: userID, Email: "test@example.com"}, role)
	require.NoError(t, err)
	return resp.AccessToken
}

// legacyToken builds a token without a role claim.
func legacyToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{Protected(testJwtConfig())}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/t/:id", chain...)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestProtected_MissingToken(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/t/x", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["IsSuccess"])
	assert.NotEmpty(t, body["Message"])
}

func TestProtected_BearerToken(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/t/x", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, uuid.New(), "User"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtected_CookieToken(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/t/x", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: issueToken(t, uuid.New(), "User")})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtected_GarbageToken(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/t/x", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()
	app := newTestApp(RequireAdmin(slog.Default()))

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"admin role", issueToken(t, uuid.New(), "ADMIN"), fiber.StatusOK},
		{"admin role lower case", issueToken(t, uuid.New(), "admin"), fiber.StatusOK},
		{"user role", issueToken(t, uuid.New(), "User"), fiber.StatusForbidden},
		{"missing role claim", legacyToken(t, uuid.New()), fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/t/x", nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
			if tc.want == fiber.StatusForbidden {
				body := decodeBody(t, resp)
				assert.Equal(t, false, body["IsSuccess"])
				assert.Equal(t, "admin access required", body["Message"])
			}
		})
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	t.Parallel()
	app := newTestApp(RequireSelfOrAdmin("id"))
	selfID := uuid.New()

	cases := []struct {
		name  string
		token string
		path  string
		want  int
	}{
		{"self", issueToken(t, selfID, "User"), "/t/" + selfID.String(), fiber.StatusOK},
		{"other account", issueToken(t, uuid.New(), "User"), "/t/" + selfID.String(), fiber.StatusForbidden},
		{"admin", issueToken(t, uuid.New(), "ADMIN"), "/t/" + selfID.String(), fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
			if tc.want == fiber.StatusForbidden {
				body := decodeBody(t, resp)
				assert.Equal(t, false, body["IsSuccess"])
				assert.Equal(t, "access denied", body["Message"])
			}
		})
	}
}

func TestCurrentUserID(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	app := fiber.New()
	app.Get("/whoami", Protected(testJwtConfig()), func(c *fiber.Ctx) error {
		id, err := CurrentUserID(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(id.String())
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, userID, "User"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
