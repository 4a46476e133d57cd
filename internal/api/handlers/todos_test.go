package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/haoyu/ai-notebook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type todoResult struct {
	Todo struct {
		ID          string `json:"id"`
		UserID      string `json:"user_id"`
		Text        string `json:"text"`
		IsCompleted bool   `json:"is_completed"`
		CreatedDate string `json:"created_date"`
	} `json:"todo"`
}

type todoListResult struct {
	Todos []struct {
		ID          string `json:"id"`
		Text        string `json:"text"`
		IsCompleted bool   `json:"is_completed"`
	} `json:"todos"`
}

func TestTodoHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("defaults to incomplete with today's date", func(t *testing.T) {
		resp := testutil.DoAuthed(t, http.MethodPost, ts.URL("/api/todos"), token,
			map[string]string{"text": "water the plants"})
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var result todoResult
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, user.ID.String(), result.Todo.UserID)
		assert.Equal(t, "water the plants", result.Todo.Text)
		assert.False(t, result.Todo.IsCompleted)
		assert.Equal(t, time.Now().Format("2006-01-02"), result.Todo.CreatedDate)
	})

	t.Run("missing text", func(t *testing.T) {
		resp := testutil.DoAuthed(t, http.MethodPost, ts.URL("/api/todos"), token,
			map[string]string{})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "required")
	})

	t.Run("empty text", func(t *testing.T) {
		resp := testutil.DoAuthed(t, http.MethodPost, ts.URL("/api/todos"), token,
			map[string]string{"text": ""})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}

func TestTodoHandler_VisibilityFilter(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	// A: incomplete and old, B: completed and stale, C: completed recently,
	// D: completed exactly on the 7-day boundary
	a := testutil.NewTodoBuilder(user.ID).WithText("A").CreatedDaysAgo(10).Build(t, ts.DB.DB)
	testutil.NewTodoBuilder(user.ID).WithText("B").Completed().CreatedDaysAgo(10).Build(t, ts.DB.DB)
	c := testutil.NewTodoBuilder(user.ID).WithText("C").Completed().CreatedDaysAgo(2).Build(t, ts.DB.DB)
	d := testutil.NewTodoBuilder(user.ID).WithText("D").Completed().CreatedDaysAgo(7).Build(t, ts.DB.DB)

	resp := testutil.DoAuthed(t, http.MethodGet, ts.URL("/api/todos"), token, nil)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result todoListResult
	testutil.AssertJSONResponse(t, resp, &result)

	ids := make([]string, 0, len(result.Todos))
	for _, todo := range result.Todos {
		ids = append(ids, todo.ID)
	}

	assert.Contains(t, ids, a.ID.String(), "open todos stay visible regardless of age")
	assert.Contains(t, ids, c.ID.String(), "recently completed todos stay visible")
	assert.Contains(t, ids, d.ID.String(), "the 7-day boundary is inclusive")
	assert.Len(t, result.Todos, 3, "stale completed todos are hidden")

	// Incomplete items come before completed ones
	assert.Equal(t, a.ID.String(), ids[0])
	for _, todo := range result.Todos[1:] {
		assert.True(t, todo.IsCompleted)
	}
}

func TestTodoHandler_Ordering(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	oldOpen := testutil.NewTodoBuilder(user.ID).WithText("old open").CreatedDaysAgo(3).Build(t, ts.DB.DB)
	newOpen := testutil.NewTodoBuilder(user.ID).WithText("new open").CreatedDaysAgo(1).Build(t, ts.DB.DB)
	oldDone := testutil.NewTodoBuilder(user.ID).WithText("old done").Completed().CreatedDaysAgo(4).Build(t, ts.DB.DB)
	newDone := testutil.NewTodoBuilder(user.ID).WithText("new done").Completed().CreatedDaysAgo(2).Build(t, ts.DB.DB)

	resp := testutil.DoAuthed(t, http.MethodGet, ts.URL("/api/todos"), token, nil)
	defer resp.Body.Close()

	var result todoListResult
	testutil.AssertJSONResponse(t, resp, &result)
	require.Len(t, result.Todos, 4)

	// Open first, then completed; newest created first within each group
	assert.Equal(t, newOpen.ID.String(), result.Todos[0].ID)
	assert.Equal(t, oldOpen.ID.String(), result.Todos[1].ID)
	assert.Equal(t, newDone.ID.String(), result.Todos[2].ID)
	assert.Equal(t, oldDone.ID.String(), result.Todos[3].ID)
}

func TestTodoHandler_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	todo := testutil.NewTodoBuilder(user.ID).WithText("toggle me").Build(t, ts.DB.DB)

	t.Run("toggle completion", func(t *testing.T) {
		resp := testutil.DoAuthed(t, http.MethodPut, ts.URL("/api/todos/"+todo.ID.String()), token,
			map[string]bool{"is_completed": true})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result todoResult
		testutil.AssertJSONResponse(t, resp, &result)
		assert.True(t, result.Todo.IsCompleted)
		assert.Equal(t, "toggle me", result.Todo.Text, "text is never mutated")
	})

	t.Run("empty payload changes nothing", func(t *testing.T) {
		resp := testutil.DoAuthed(t, http.MethodPut, ts.URL("/api/todos/"+todo.ID.String()), token,
			map[string]bool{})
		defer resp.Body.Close()

		var result todoResult
		testutil.AssertJSONResponse(t, resp, &result)
		assert.True(t, result.Todo.IsCompleted)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := testutil.DoAuthed(t, http.MethodPut,
			ts.URL("/api/todos/00000000-0000-0000-0000-000000000000"), token,
			map[string]bool{"is_completed": true})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})
}

func TestTodoHandler_OwnershipIsolation(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, _ := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, otherToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	todo := testutil.NewTodoBuilder(owner.ID).WithText("mine").Build(t, ts.DB.DB)

	// Foreign account cannot see or toggle the todo
	updateResp := testutil.DoAuthed(t, http.MethodPut, ts.URL("/api/todos/"+todo.ID.String()), otherToken,
		map[string]bool{"is_completed": true})
	defer updateResp.Body.Close()
	testutil.AssertStatusCode(t, updateResp, http.StatusNotFound)

	listResp := testutil.DoAuthed(t, http.MethodGet, ts.URL("/api/todos"), otherToken, nil)
	defer listResp.Body.Close()

	var result todoListResult
	testutil.AssertJSONResponse(t, listResp, &result)
	assert.Empty(t, result.Todos)
}
