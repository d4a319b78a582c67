package handlers_test

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/petcute_backend/internal/models"
)

func TestRegisterLoginLogoutFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/api/register", "", map[string]string{
		"name":                  "Ana",
		"email":                 "ana@test.com",
		"password":              "123456",
		"password_confirmation": "123456",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	user := body["user"].(map[string]interface{})
	require.EqualValues(t, 1, user["id"])
	require.Equal(t, "Ana", user["name"])
	require.Equal(t, "ana@test.com", user["email"])
	require.NotContains(t, rec.Body.String(), "password")

	rec = env.request(http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ana@test.com",
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body = decode(t, rec)
	token := body["token"].(string)
	require.Regexp(t, regexp.MustCompile(`^\d+\|.{40,}$`), token)

	rec = env.request(http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body = decode(t, rec)
	require.EqualValues(t, 1, body["id"])
	require.Equal(t, "ana@test.com", body["email"])
	require.NotContains(t, rec.Body.String(), "password")

	rec = env.request(http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.request(http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Unauthenticated.", decode(t, rec)["message"])
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]struct {
		payload map[string]string
		field   string
	}{
		"missing name": {
			payload: map[string]string{
				"email": "ana@test.com", "password": "123456", "password_confirmation": "123456",
			},
			field: "name",
		},
		"invalid email": {
			payload: map[string]string{
				"name": "Ana", "email": "not-an-email", "password": "123456", "password_confirmation": "123456",
			},
			field: "email",
		},
		"short password": {
			payload: map[string]string{
				"name": "Ana", "email": "ana@test.com", "password": "12345", "password_confirmation": "12345",
			},
			field: "password",
		},
		"confirmation mismatch": {
			payload: map[string]string{
				"name": "Ana", "email": "ana@test.com", "password": "123456", "password_confirmation": "654321",
			},
			field: "password_confirmation",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := env.request(http.MethodPost, "/api/register", "", tc.payload)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

			errs := decode(t, rec)["errors"].(map[string]interface{})
			require.Contains(t, errs, tc.field)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"name":                  "Ana",
		"email":                 "ana@test.com",
		"password":              "123456",
		"password_confirmation": "123456",
	}
	rec := env.request(http.MethodPost, "/api/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(http.MethodPost, "/api/register", "", payload)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	errs := decode(t, rec)["errors"].(map[string]interface{})
	require.Contains(t, errs, "email")
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/api/register", "", map[string]string{
		"name":                  "Ana",
		"email":                 "ana@test.com",
		"password":              "123456",
		"password_confirmation": "123456",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := env.request(http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ana@test.com",
		"password": "wrong-password",
	})
	noSuchUser := env.request(http.MethodPost, "/api/login", "", map[string]string{
		"email":    "nobody@test.com",
		"password": "123456",
	})

	require.Equal(t, http.StatusUnprocessableEntity, wrongPassword.Code)
	require.Equal(t, http.StatusUnprocessableEntity, noSuchUser.Code)
	// the two failure modes must be indistinguishable to the caller
	require.Equal(t, wrongPassword.Body.String(), noSuchUser.Body.String())
}

func TestProtectedRoutesRejectMissingOrBogusToken(t *testing.T) {
	env := newTestEnv(t)

	for _, token := range []string{"", "garbage", "1|notarealtoken-notarealtoken-notarealtoken"} {
		rec := env.request(http.MethodGet, "/api/user", token, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "token %q", token)

		rec = env.request(http.MethodPost, "/api/logout", token, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "token %q", token)
	}
}

func TestStoreFailuresAreServerErrorsNotAuthErrors(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin("Ana", "ana@test.com", "123456")

	// a broken token store must surface as a server fault, not a 401
	require.NoError(t, env.db.Migrator().DropTable(&models.AccessToken{}))

	rec := env.request(http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code, rec.Body.String())

	// and a broken credential store as a server fault, not a 422
	require.NoError(t, env.db.Migrator().DropTable(&models.User{}))

	rec = env.request(http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ana@test.com",
		"password": "123456",
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code, rec.Body.String())
}

func TestTwoSessionsRevokeIndependently(t *testing.T) {
	env := newTestEnv(t)

	first := env.registerAndLogin("Ana", "ana@test.com", "123456")

	rec := env.request(http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ana@test.com",
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode(t, rec)["token"].(string)

	rec = env.request(http.MethodPost, "/api/logout", first, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(http.MethodGet, "/api/user", first, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(http.MethodGet, "/api/user", second, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
