package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/petcute_backend/internal/es"
	"github.com/Skotchmaster/petcute_backend/internal/handlers"
	"github.com/Skotchmaster/petcute_backend/internal/models"
	"github.com/Skotchmaster/petcute_backend/internal/mykafka"
	"github.com/Skotchmaster/petcute_backend/internal/repo"
	"github.com/Skotchmaster/petcute_backend/internal/service"
	"github.com/Skotchmaster/petcute_backend/internal/transport"
	httpserver "github.com/Skotchmaster/petcute_backend/internal/transport/http"
)

type testEnv struct {
	t  *testing.T
	e  *echo.Echo
	db *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to connect to in-memory db")
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.AccessToken{},
		&models.Category{},
		&models.Product{},
	), "failed to migrate tables")

	rp := &repo.GormRepo{DB: db}
	authService := &service.AuthService{Repo: rp}
	prod := &mykafka.Producer{}

	e := echo.New()
	e.Validator = transport.NewValidator()

	httpserver.Register(e, &httpserver.Deps{
		AuthService:     authService,
		AuthHandler:     &handlers.AuthHandler{Service: authService, Producer: prod},
		CategoryHandler: &handlers.CategoryHandler{Repo: rp, Producer: prod},
		ProductHandler:  &handlers.ProductHandler{Repo: rp, Producer: prod, Indexer: &es.Indexer{}},
	})

	return &testEnv{t: t, e: e, db: db}
}

func (env *testEnv) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	env.t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(env.t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) registerAndLogin(name, email, password string) string {
	env.t.Helper()

	rec := env.request("POST", "/api/register", "", map[string]string{
		"name":                  name,
		"email":                 email,
		"password":              password,
		"password_confirmation": password,
	})
	require.Equal(env.t, 201, rec.Code, rec.Body.String())

	rec = env.request("POST", "/api/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(env.t, 200, rec.Code, rec.Body.String())

	body := decode(env.t, rec)
	token, ok := body["token"].(string)
	require.True(env.t, ok)
	return token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
