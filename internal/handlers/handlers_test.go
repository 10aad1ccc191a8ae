package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Skotchmaster/furniture_store/internal/dbtest"
	"github.com/Skotchmaster/furniture_store/internal/middleware/auth"
	"github.com/Skotchmaster/furniture_store/internal/models"
	"github.com/Skotchmaster/furniture_store/internal/repo"
	"github.com/Skotchmaster/furniture_store/internal/service"
	"github.com/Skotchmaster/furniture_store/internal/transport"
	pkg_hash "github.com/Skotchmaster/furniture_store/pkg/hash"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	DB       *gorm.DB
	Repo     *repo.GormRepo
	AuthSvc  *service.AuthService
	Auth     *AuthHandler
	Products *ProductHandler
	Orders   *OrderHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	pkg_hash.Cost = bcrypt.MinCost

	db := dbtest.Open(t)
	r := repo.New(db)
	authSvc := &service.AuthService{Repo: r, JWTSecret: []byte("test-jwt-secret")}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		DB:       db,
		Repo:     r,
		AuthSvc:  authSvc,
		Auth:     &AuthHandler{Svc: authSvc},
		Products: &ProductHandler{Svc: &service.CatalogService{Repo: r}},
		Orders:   &OrderHandler{Svc: &service.CheckoutService{Repo: r}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

func (env *testEnv) register(name, email string) *models.User {
	res, err := env.AuthSvc.Register(context.Background(), name, email, "test1234")
	require.NoError(env.T, err)
	return res.User
}

func requireHTTPError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
	assert.Equal(t, msg, he.Message)
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{"name": "Test User", "email": "test@example.com", "password": "test1234"}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", payload)
	require.NoError(t, env.Auth.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotZero(t, resp.User.ID)
	assert.Equal(t, "Test User", resp.User.Name)
	assert.Equal(t, "test@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
	assert.NotContains(t, rec.Body.String(), "password")

	_, c = env.doJSONRequest(http.MethodPost, "/api/auth/register", payload)
	requireHTTPError(t, env.Auth.Register(c), http.StatusBadRequest, "Email already registered")

	_, c = env.doJSONRequest(http.MethodPost, "/api/auth/register", map[string]string{"email": "x@example.com"})
	requireHTTPError(t, env.Auth.Register(c), http.StatusBadRequest, "All fields are required")

	long := map[string]string{"name": "Long", "email": "long@example.com", "password": strings.Repeat("p", 100)}
	_, c = env.doJSONRequest(http.MethodPost, "/api/auth/register", long)
	requireHTTPError(t, env.Auth.Register(c), http.StatusBadRequest, "Password must be at most 72 bytes")

	var count int64
	require.NoError(t, env.DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	u := env.register("Ann", "ann@example.com")

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "ann@example.com", "password": "test1234"})
	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, u.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	_, c = env.doJSONRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "ann@example.com", "password": "bad"})
	requireHTTPError(t, env.Auth.Login(c), http.StatusUnauthorized, "Invalid credentials")
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	u := env.register("Ann", "ann@example.com")

	rec, c := env.doJSONRequest(http.MethodGet, "/api/auth/me", nil)
	c.Set(auth.CtxUser, u)
	require.NoError(t, env.Auth.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.UserSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, transport.UserSummary{ID: u.ID, Name: "Ann", Email: "ann@example.com"}, resp)

	_, c = env.doJSONRequest(http.MethodGet, "/api/auth/me", nil)
	requireHTTPError(t, env.Auth.Me(c), http.StatusUnauthorized, "Invalid or expired token")
}

func TestCreateAndListProducts(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/products", map[string]any{
		"name":     "Rustic Coffee Table",
		"price":    8499,
		"category": "Tables",
		"imageUrl": "https://example.com/table.jpg",
		"rating":   4.5,
		"stock":    10,
	})
	require.NoError(t, env.Products.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.EqualValues(t, 8499, created["price"])
	assert.Equal(t, "https://example.com/table.jpg", created["imageUrl"])

	_, c = env.doJSONRequest(http.MethodPost, "/api/products", map[string]any{"name": "No price", "category": "X"})
	requireHTTPError(t, env.Products.CreateProduct(c), http.StatusBadRequest, "Missing fields")

	rec, c = env.doJSONRequest(http.MethodGet, "/api/products", nil)
	require.NoError(t, env.Products.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Rustic Coffee Table", list[0].Name)
	assert.True(t, list[0].Price.Equal(decimal.NewFromInt(8499)))
}

func TestGetProducts_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/products", nil)
	require.NoError(t, env.Products.GetProducts(c))
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)
	u := env.register("Buyer", "buyer@example.com")
	p, err := env.Repo.CreateProduct(context.Background(), &models.Product{Name: "Vase", Price: decimal.NewFromInt(1299), Category: "Decor"})
	require.NoError(t, err)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/orders", map[string]any{
		"items":       []map[string]any{{"productId": p.ID, "name": "Vase", "price": 1299, "quantity": 2}},
		"totalAmount": 2598,
	})
	c.Set(auth.CtxUser, u)
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order placed successfully", resp["message"])
	assert.NotZero(t, resp["orderId"])
	assert.EqualValues(t, 2598, resp["totalAmount"])
}

func TestCreateOrder_Errors(t *testing.T) {
	env := newTestEnv(t)
	u := env.register("Buyer", "buyer@example.com")

	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", map[string]any{"items": []any{}, "totalAmount": 0})
	c.Set(auth.CtxUser, u)
	requireHTTPError(t, env.Orders.CreateOrder(c), http.StatusBadRequest, "Cart is empty")

	_, c = env.doJSONRequest(http.MethodPost, "/api/orders", map[string]any{"totalAmount": 0})
	c.Set(auth.CtxUser, u)
	requireHTTPError(t, env.Orders.CreateOrder(c), http.StatusBadRequest, "Cart is empty")

	_, c = env.doJSONRequest(http.MethodPost, "/api/orders", map[string]any{
		"items": []map[string]any{{"productId": 404, "quantity": 1}},
	})
	c.Set(auth.CtxUser, u)
	requireHTTPError(t, env.Orders.CreateOrder(c), http.StatusBadRequest, "Invalid cart items")

	_, c = env.doJSONRequest(http.MethodPost, "/api/orders", nil)
	requireHTTPError(t, env.Orders.CreateOrder(c), http.StatusUnauthorized, "Invalid or expired token")
}

func TestErrorHandler(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	ErrorHandler(echo.NewHTTPError(http.StatusBadRequest, "Cart is empty"), c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Cart is empty"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	ErrorHandler(assert.AnError, c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Server error"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec, c := env.doJSONRequest(http.MethodGet, "/api/health", nil)
	require.NoError(t, Health(c))

	var resp transport.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}
