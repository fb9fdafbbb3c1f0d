package handlers

import (
	"net/http"

	"userapi/internal/models"
	"userapi/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAccounts struct {
	registerUser *models.User
	registerErr  error
	getUser      *models.User
	getErr       error
	listResp     []models.User
	listErr      error

	lastRegisterUsername string
	lastRegisterPassword string
	lastGetUsername      string
	registerCalls        int
}

func (m *mockAccounts) Register(username, password string) (*models.User, error) {
	m.registerCalls++
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerUser, m.registerErr
}

func (m *mockAccounts) GetByUsername(username string) (*models.User, error) {
	m.lastGetUsername = username
	return m.getUser, m.getErr
}

func (m *mockAccounts) List() ([]models.User, error) {
	return m.listResp, m.listErr
}

type mockAuth struct {
	loginToken   string
	loginErr     error
	parseSubject string
	parseErr     error

	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
}

func (m *mockAuth) Login(username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseSubject, m.parseErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
