package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"exercise_tracker/internal/models"
	"exercise_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockUsers struct {
	created   models.User
	createErr error
	list      []models.User
	listErr   error

	lastUsername string
}

func (m *mockUsers) CreateUser(_ context.Context, username string) (models.User, error) {
	m.lastUsername = username
	if m.createErr != nil {
		return models.User{}, m.createErr
	}
	u := m.created
	u.Username = username
	return u, nil
}

func (m *mockUsers) ListUsers(context.Context) ([]models.User, error) {
	return m.list, m.listErr
}

type mockExercises struct {
	logged     service.LoggedExercise
	logErr     error
	history    service.ExerciseLog
	historyErr error

	lastUserID string
	lastInput  service.ExerciseInput
	lastQuery  service.LogQuery
	calls      int
}

func (m *mockExercises) LogExercise(_ context.Context, userID string, in service.ExerciseInput) (service.LoggedExercise, error) {
	m.calls++
	m.lastUserID = userID
	m.lastInput = in
	return m.logged, m.logErr
}

func (m *mockExercises) History(_ context.Context, userID string, q service.LogQuery) (service.ExerciseLog, error) {
	m.calls++
	m.lastUserID = userID
	m.lastQuery = q
	return m.history, m.historyErr
}

// ---- Test helpers ----

func newTestRouter(users service.Users, exercises service.Exercises, opts ...Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{Users: users, Exercises: exercises}, nil, opts...)
	return h.InitRoutes()
}

func doRequest(r http.Handler, method, target string, body *strings.Reader, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, target, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func postJSON(r http.Handler, target, body string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, target, strings.NewReader(body), "application/json")
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodGet, target, nil, "")
}

func doRequestWithHeaders(r http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
