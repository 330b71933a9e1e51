package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/auth"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/handlers"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/middleware"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/models"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type testEnv struct {
	app       *fiber.App
	users     *fakeUserRepo
	donations *fakeDonationRepo
	tokens    *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zap.NewNop()
	users := &fakeUserRepo{}
	donations := &fakeDonationRepo{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	app := fiber.New()
	requireAuth := middleware.RequireAuth(tokens, users, log)
	routes.Register(app,
		handlers.NewAuthHandler(tokens, log),
		handlers.NewUserHandler(users, log),
		handlers.NewDonationHandler(donations, log),
		requireAuth,
	)
	return &testEnv{app: app, users: users, donations: donations, tokens: tokens}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, raw
}

func (e *testEnv) seedUser(t *testing.T, email, role string) *models.User {
	t.Helper()
	user := &models.User{ID: primitive.NewObjectID(), Email: email, Role: role, Status: models.StatusActive}
	e.users.users = append(e.users.users, user)
	return user
}

func (e *testEnv) token(t *testing.T, email string) string {
	t.Helper()
	token, err := e.tokens.Generate(email)
	require.NoError(t, err)
	return token
}

func (e *testEnv) seedRequest(t *testing.T, email, status string, created time.Time) *models.DonationRequest {
	t.Helper()
	req := &models.DonationRequest{
		ID:             primitive.NewObjectID(),
		RequesterEmail: email,
		RequestStatus:  status,
		CreationTime:   created,
	}
	e.donations.requests = append(e.donations.requests, req)
	return req
}
