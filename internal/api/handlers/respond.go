package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/haoyu/ai-notebook/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes the uniform {"message": ...} error body every failure
// path uses.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// UserResponse is the serialized account; the password hash never appears.
type UserResponse struct {
	ID                         string    `json:"id"`
	Username                   string    `json:"username"`
	Email                      string    `json:"email"`
	PomodoroWorkDuration       int       `json:"pomodoro_work_duration"`
	PomodoroShortBreakDuration int       `json:"pomodoro_short_break_duration"`
	PomodoroLongBreakDuration  int       `json:"pomodoro_long_break_duration"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:                         user.ID.String(),
		Username:                   user.Username,
		Email:                      user.Email,
		PomodoroWorkDuration:       user.PomodoroWorkDuration,
		PomodoroShortBreakDuration: user.PomodoroShortBreakDuration,
		PomodoroLongBreakDuration:  user.PomodoroLongBreakDuration,
		CreatedAt:                  user.CreatedAt,
		UpdatedAt:                  user.UpdatedAt,
	}
}

type NoteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteResponse(note *domain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		UserID:    note.UserID.String(),
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

type TodoResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Text        string    `json:"text"`
	IsCompleted bool      `json:"is_completed"`
	CreatedDate string    `json:"created_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTodoResponse(todo *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID.String(),
		UserID:      todo.UserID.String(),
		Text:        todo.Text,
		IsCompleted: todo.IsCompleted,
		CreatedDate: time.Time(todo.CreatedDate).Format("2006-01-02"),
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toChatMessageResponse(msg *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        msg.ID.String(),
		UserID:    msg.UserID.String(),
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}
