package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/haoyu/ai-notebook/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:                         uuid.New(),
		Username:                   b.username,
		Email:                      b.email,
		PasswordHash:               string(hashedPassword),
		PomodoroWorkDuration:       25,
		PomodoroShortBreakDuration: 5,
		PomodoroLongBreakDuration:  15,
		CreatedAt:                  time.Now(),
		UpdatedAt:                  time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// LoginResponse matches the API login response
type LoginResponse struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
	Token string `json:"token"`
}

// BuildAndAuthenticate creates a user in the database, logs in through the
// API and returns the user together with a valid bearer token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": password,
	})

	resp, err := http.Post(ts.URL("/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected login status %d: %s", resp.StatusCode, raw)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return user, loginResp.Token
}

// TodoBuilder inserts todos directly, bypassing the API, so tests can place
// creation dates in the past.
type TodoBuilder struct {
	userID      uuid.UUID
	text        string
	isCompleted bool
	createdDate time.Time
}

func NewTodoBuilder(userID uuid.UUID) *TodoBuilder {
	return &TodoBuilder{
		userID:      userID,
		text:        fmt.Sprintf("todo_%s", uuid.New().String()[:8]),
		createdDate: time.Now(),
	}
}

func (b *TodoBuilder) WithText(text string) *TodoBuilder {
	b.text = text
	return b
}

func (b *TodoBuilder) Completed() *TodoBuilder {
	b.isCompleted = true
	return b
}

func (b *TodoBuilder) CreatedDaysAgo(days int) *TodoBuilder {
	b.createdDate = time.Now().AddDate(0, 0, -days)
	return b
}

func (b *TodoBuilder) Build(t *testing.T, db *gorm.DB) *domain.Todo {
	t.Helper()

	todo := &domain.Todo{
		ID:          uuid.New(),
		UserID:      b.userID,
		Text:        b.text,
		IsCompleted: b.isCompleted,
		CreatedDate: datatypes.Date(b.createdDate),
		CreatedAt:   b.createdDate,
		UpdatedAt:   b.createdDate,
	}

	if err := db.Create(todo).Error; err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	return todo
}

// DoAuthed performs an HTTP request with a bearer token and JSON body.
func DoAuthed(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	return resp
}
