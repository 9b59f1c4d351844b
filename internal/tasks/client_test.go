package tasks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisSalmazs/project-service/internal/projects/domain"
)

func TestClient_Counts(t *testing.T) {
	t.Run("parses the counts envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/v1/tasks/count/project/ALPHA", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success": true, "data": {"completedTaskCount": 4, "nonCompletedTaskCount": 7}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, Options{})
		counts, err := client.Counts(context.Background(), "ALPHA")
		require.NoError(t, err)
		assert.Equal(t, domain.TaskCounts{Completed: 4, NonCompleted: 7}, counts)
	})

	t.Run("reported failure maps to details-not-retrieved", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false, "message": "task store unavailable"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, Options{})
		_, err := client.Counts(context.Background(), "ALPHA")
		assert.ErrorIs(t, err, domain.ErrDetailsNotRetrieved)
		assert.Contains(t, err.Error(), "task store unavailable")
	})

	t.Run("transport failure maps to details-not-retrieved", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", Options{})
		_, err := client.Counts(context.Background(), "ALPHA")
		assert.ErrorIs(t, err, domain.ErrDetailsNotRetrieved)
	})
}

func TestClient_CompleteAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/v1/tasks/complete/project/ALPHA", r.URL.Path)
			w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, Options{})
		require.NoError(t, client.CompleteAll(context.Background(), "ALPHA"))
		assert.Equal(t, 1, calls)
	})

	t.Run("reported failure maps to tasks-cannot-be-completed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false, "message": "nope"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, Options{})
		err := client.CompleteAll(context.Background(), "ALPHA")
		assert.ErrorIs(t, err, domain.ErrTasksNotCompleted)
	})

	t.Run("http error status maps to tasks-cannot-be-completed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, Options{})
		err := client.CompleteAll(context.Background(), "ALPHA")
		assert.ErrorIs(t, err, domain.ErrTasksNotCompleted)
	})
}

func TestClient_DeleteAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/v1/tasks/project/ALPHA", r.URL.Path)
			w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, Options{})
		assert.NoError(t, client.DeleteAll(context.Background(), "ALPHA"))
	})

	t.Run("reported failure maps to tasks-cannot-be-deleted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, Options{})
		err := client.DeleteAll(context.Background(), "ALPHA")
		assert.ErrorIs(t, err, domain.ErrTasksNotDeleted)
	})
}
