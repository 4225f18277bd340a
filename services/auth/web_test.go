package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/warungberkah/storefront/lib/mystore"
	"github.com/warungberkah/storefront/lib/mytime"
	"github.com/warungberkah/storefront/lib/myuuid"
)

func setupAuthService(t *testing.T) *mux.Router {
	t.Helper()

	c := context.TODO()
	ctrl := gomock.NewController(t)

	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	uuider := myuuid.NewMockUUIDer(ctrl)
	uuider.EXPECT().Create().Return("session-abc").AnyTimes()

	accountStore, _, err := mystore.NewInMemoryStore[Account](c)
	assert.NoError(t, err)
	sessionStore, _, err := mystore.NewInMemoryStore[Session](c)
	assert.NoError(t, err)

	router := mux.NewRouter()
	err = NewService(accountStore, sessionStore, nower, uuider).RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return router
}

func doAuthRequest(router *mux.Router, method, target, body string) (*httptest.ResponseRecorder, userResponse) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: "session", Value: "session-abc"})
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	resp := userResponse{}
	_ = json.Unmarshal(recorder.Body.Bytes(), &resp)

	return recorder, resp
}

func login(router *mux.Router) {
	doAuthRequest(router, "POST", "/api/auth/login", `{"email":"budi@example.com","password":"rahasia123"}`)
}

func TestLogin(t *testing.T) {

	t.Run("Valid credentials", func(t *testing.T) {
		router := setupAuthService(t)

		recorder, resp := doAuthRequest(router, "POST", "/api/auth/login", `{"email":"budi@example.com","password":"rahasia123"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "user_budi", resp.User.UID)
		assert.Equal(t, "Budi Santoso", resp.User.Name)
	})

	t.Run("Email match is case-insensitive", func(t *testing.T) {
		router := setupAuthService(t)

		recorder, resp := doAuthRequest(router, "POST", "/api/auth/login", `{"email":"BUDI@Example.COM","password":"rahasia123"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "user_budi", resp.User.UID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		router := setupAuthService(t)

		recorder, _ := doAuthRequest(router, "POST", "/api/auth/login", `{"email":"budi@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("Unknown email", func(t *testing.T) {
		router := setupAuthService(t)

		recorder, _ := doAuthRequest(router, "POST", "/api/auth/login", `{"email":"nobody@example.com","password":"rahasia123"}`)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("Missing credentials", func(t *testing.T) {
		router := setupAuthService(t)

		recorder, _ := doAuthRequest(router, "POST", "/api/auth/login", `{"email":"budi@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestProfile(t *testing.T) {

	t.Run("Profile requires a login", func(t *testing.T) {
		router := setupAuthService(t)

		recorder, _ := doAuthRequest(router, "GET", "/api/auth/profile", "")

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("Profile after login", func(t *testing.T) {
		router := setupAuthService(t)
		login(router)

		recorder, resp := doAuthRequest(router, "GET", "/api/auth/profile", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "user_budi", resp.User.UID)
		assert.Equal(t, "081234567890", resp.User.Phone)
	})

	t.Run("Update profile", func(t *testing.T) {
		router := setupAuthService(t)
		login(router)

		recorder, resp := doAuthRequest(router, "PUT", "/api/auth/profile", `{"name":"Budi S.","phone":"089876543210","address":"Jl. Melati No. 7"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Budi S.", resp.User.Name)
		assert.Equal(t, "089876543210", resp.User.Phone)
		assert.Equal(t, "Jl. Melati No. 7", resp.User.Address)

		// The update sticks
		_, fetched := doAuthRequest(router, "GET", "/api/auth/profile", "")
		assert.Equal(t, "Budi S.", fetched.User.Name)
	})

	t.Run("Empty name in an update keeps the current one", func(t *testing.T) {
		router := setupAuthService(t)
		login(router)

		recorder, resp := doAuthRequest(router, "PUT", "/api/auth/profile", `{"phone":"089876543210"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Budi Santoso", resp.User.Name)
		assert.Equal(t, "089876543210", resp.User.Phone)
		assert.Equal(t, "", resp.User.Address)
	})

	t.Run("Update requires a login", func(t *testing.T) {
		router := setupAuthService(t)

		recorder, _ := doAuthRequest(router, "PUT", "/api/auth/profile", `{"name":"X"}`)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestLogout(t *testing.T) {
	router := setupAuthService(t)
	login(router)

	recorder, _ := doAuthRequest(router, "POST", "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder, _ = doAuthRequest(router, "GET", "/api/auth/profile", "")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
