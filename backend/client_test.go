package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hnasir/askbook"
	"github.com/hnasir/askbook/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RequestFormat(t *testing.T) {
	t.Parallel()

	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":"ok"}`))
	}))
	defer srv.Close()

	client := backend.New(backend.WithBaseURL(srv.URL))
	res := client.Ask(context.Background(), "What is ROS 2?")
	require.IsType(t, askbook.Answer{}, res)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured, &body))
	assert.Equal(t, "What is ROS 2?", body["query"])
	assert.Equal(t, "ROS 2", body["software"])
	assert.Equal(t, "NVIDIA Jetson", body["hardware"])
}

func TestClient_Answer(t *testing.T) {
	t.Parallel()

	t.Run("answer text is trimmed", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"answer":"  A robotics middleware.\n"}`))
		}))
		defer srv.Close()

		res := backend.New(backend.WithBaseURL(srv.URL)).Ask(context.Background(), "What is ROS 2?")

		answer, ok := res.(askbook.Answer)
		require.True(t, ok)
		assert.Equal(t, "A robotics middleware.", answer.Text)
		assert.Empty(t, answer.Sources)
	})

	t.Run("sources are carried through", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"answer":"See chapter 3.","sources":[{"chapter":"Simulation","section":"Gazebo","url":"https://example.com/ch3"}]}`))
		}))
		defer srv.Close()

		res := backend.New(backend.WithBaseURL(srv.URL)).Ask(context.Background(), "hi")

		answer, ok := res.(askbook.Answer)
		require.True(t, ok)
		require.Len(t, answer.Sources, 1)
		assert.Equal(t, "Simulation", answer.Sources[0].Chapter)
		assert.Equal(t, "Gazebo", answer.Sources[0].Section)
		assert.Equal(t, "https://example.com/ch3", answer.Sources[0].URL)
	})

	t.Run("extra response fields are ignored", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"answer":"yes","conversation_history":[{"role":"user"}],"model":"x"}`))
		}))
		defer srv.Close()

		res := backend.New(backend.WithBaseURL(srv.URL)).Ask(context.Background(), "hi")

		answer, ok := res.(askbook.Answer)
		require.True(t, ok)
		assert.Equal(t, "yes", answer.Text)
	})
}

func TestClient_Failure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("server overloaded"))
	}))
	defer srv.Close()

	res := backend.New(backend.WithBaseURL(srv.URL)).Ask(context.Background(), "hi")

	failure, ok := res.(askbook.Failure)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, failure.Status)
	assert.Equal(t, "server overloaded", failure.Body)
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	// Closing the server first guarantees a transport-level failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	res := backend.New(backend.WithBaseURL(srv.URL)).Ask(context.Background(), "hi")

	assert.IsType(t, askbook.Unreachable{}, res)
}

func TestClient_NoAnswer(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"whitespace answer": `{"answer":"   "}`,
		"missing answer":    `{"sources":[]}`,
		"non-JSON body":     `<html>gateway</html>`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			res := backend.New(backend.WithBaseURL(srv.URL)).Ask(context.Background(), "hi")

			assert.IsType(t, askbook.NoAnswer{}, res)
		})
	}
}
