package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("Day,Plan\n1,Louvre\n"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.Error(w, "not shared", http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	client := NewClient(time.Second, 32)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
		wantErr    string
	}{
		{name: "success", path: "/ok", wantStatus: http.StatusOK, wantBody: "Day,Plan\n1,Louvre\n"},
		{name: "status is data", path: "/private", wantStatus: http.StatusUnauthorized, wantBody: "not shared\n"},
		{name: "too large", path: "/big", wantErr: "sheet export exceeds 32 bytes"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.Fetch(context.Background(), srv.URL+tt.path)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.StatusCode)
			require.Equal(t, tt.wantBody, got.Body)
		})
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(0, 0).Fetch(context.Background(), url)
	require.ErrorContains(t, err, "sheet request failed")
}

func TestFetchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(time.Second, 0).Fetch(ctx, "http://127.0.0.1:1/export")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFetchHonorsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
			_, _ = w.Write([]byte("late"))
		}
	}))
	defer srv.Close()

	_, err := NewClient(50*time.Millisecond, 0).Fetch(context.Background(), srv.URL)
	require.ErrorContains(t, err, "sheet request failed")
}
