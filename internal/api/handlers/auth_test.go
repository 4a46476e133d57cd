package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/haoyu/ai-notebook/internal/domain"
	"github.com/haoyu/ai-notebook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"username": "newuser",
				"email":    "newuser@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing username",
			request: map[string]string{
				"email":    "nouser@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			request: map[string]string{
				"username": "noemail",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			request: map[string]string{
				"username": "nopass",
				"email":    "nopass@example.com",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			request: map[string]string{
				"username": "existinguser",
				"email":    "fresh@example.com",
				"password": "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			request: map[string]string{
				"username": "freshuser",
				"email":    "taken@example.com",
				"password": "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@example.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty request body",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.URL("/register"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus != http.StatusCreated {
				// Failed registration must not leave a row behind
				var count int64
				ts.DB.DB.Model(&domain.User{}).
					Where("username = ?", tt.request["username"]).
					Count(&count)
				assert.Zero(t, count)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("loginuser").
		WithEmail("loginuser@example.com").
		WithPassword("correctpassword").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful login",
			request: map[string]string{
				"email":    user.Email,
				"password": rawPassword,
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				raw, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				var result testutil.LoginResponse
				require.NoError(t, json.Unmarshal(raw, &result))
				assert.Equal(t, user.Username, result.User.Username)
				assert.Equal(t, user.Email, result.User.Email)
				assert.NotEmpty(t, result.Token)

				// The credential hash must never appear in a response
				assert.NotContains(t, string(raw), "password")
				assert.NotContains(t, string(raw), user.PasswordHash)
			},
		},
		{
			name: "wrong password",
			request: map[string]string{
				"email":    user.Email,
				"password": "wrongpassword",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			request: map[string]string{
				"email":    "nobody@example.com",
				"password": "correctpassword",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			request: map[string]string{
				"email": user.Email,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.URL("/login"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("returns current user", func(t *testing.T) {
		resp := testutil.DoAuthed(t, http.MethodGet, ts.URL("/me"), token, nil)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result struct {
			User struct {
				ID                   string `json:"id"`
				Username             string `json:"username"`
				PomodoroWorkDuration int    `json:"pomodoro_work_duration"`
			} `json:"user"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, user.ID.String(), result.User.ID)
		assert.Equal(t, user.Username, result.User.Username)
		assert.Equal(t, 25, result.User.PomodoroWorkDuration)
	})

	t.Run("rejects missing token", func(t *testing.T) {
		resp, err := http.Get(ts.URL("/me"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		resp := testutil.DoAuthed(t, http.MethodGet, ts.URL("/me"), "not-a-token", nil)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})
}

func TestAuthHandler_UpdatePreferences(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		resp := testutil.DoAuthed(t, http.MethodPut, ts.URL("/me/preferences"), token,
			map[string]int{"pomodoro_work_duration": 50})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result struct {
			User struct {
				PomodoroWorkDuration       int `json:"pomodoro_work_duration"`
				PomodoroShortBreakDuration int `json:"pomodoro_short_break_duration"`
				PomodoroLongBreakDuration  int `json:"pomodoro_long_break_duration"`
			} `json:"user"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, 50, result.User.PomodoroWorkDuration)
		assert.Equal(t, 5, result.User.PomodoroShortBreakDuration)
		assert.Equal(t, 15, result.User.PomodoroLongBreakDuration)
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		resp := testutil.DoAuthed(t, http.MethodPut, ts.URL("/me/preferences"), token,
			map[string]int{"pomodoro_short_break_duration": 0})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "positive")
	})
}

func TestAuthHandler_DeleteAccount(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	// Give the account one of each resource
	createResp := testutil.DoAuthed(t, http.MethodPost, ts.URL("/api/notes"), token,
		map[string]string{"title": "doomed", "content": "going away"})
	createResp.Body.Close()
	require.Equal(t, http.StatusCreated, createResp.StatusCode)

	testutil.NewTodoBuilder(user.ID).Build(t, ts.DB.DB)

	chatResp := testutil.DoAuthed(t, http.MethodPost, ts.URL("/api/chat"), token,
		map[string]string{"message": "hello"})
	chatResp.Body.Close()
	require.Equal(t, http.StatusOK, chatResp.StatusCode)

	resp := testutil.DoAuthed(t, http.MethodDelete, ts.URL("/me"), token, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	// Cascade removed every owned row
	for table, model := range map[string]interface{}{
		"users":         &domain.User{},
		"notes":         &domain.Note{},
		"todos":         &domain.Todo{},
		"chat_messages": &domain.ChatMessage{},
	} {
		var count int64
		require.NoError(t, ts.DB.DB.Model(model).Count(&count).Error)
		assert.Zero(t, count, "expected no rows left in %s", table)
	}
}
