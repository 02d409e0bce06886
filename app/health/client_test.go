package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deanos-app/deanos-jobs/app/fetch"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(fetch.NewClient("test", 5*time.Second), "test-token")
	client.SetBaseURL(server.URL)
	return client, server
}

func TestDailySleepRequest(t *testing.T) {
	var gotPath, gotAuth, gotQuery string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[{"day":"2024-05-01","score":82,"contributors":{"deep_sleep":90}}]}`))
	})

	rows, err := client.DailySleep(context.Background(), "2024-02-01", "2024-05-01")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if gotPath != "/daily_sleep" {
		t.Errorf("Expected path '/daily_sleep', got '%s'", gotPath)
	}
	if gotQuery != "start_date=2024-02-01&end_date=2024-05-01" {
		t.Errorf("Unexpected query: %s", gotQuery)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Expected bearer auth, got '%s'", gotAuth)
	}

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Day != "2024-05-01" || *rows[0].Score != 82 {
		t.Errorf("Unexpected row: %+v", rows[0])
	}
}

func TestWorkoutsRenamesDayToDate(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"day":"2024-05-01","activity":"cycling","calories":250.5,"intensity":"moderate"}]}`))
	})

	workouts, err := client.Workouts(context.Background(), "2024-02-01", "2024-05-01")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("Expected 1 workout, got %d", len(workouts))
	}
	if workouts[0].Day != "2024-05-01" {
		t.Errorf("Expected day '2024-05-01', got '%s'", workouts[0].Day)
	}
	if workouts[0].Activity != "cycling" {
		t.Errorf("Expected activity 'cycling', got '%s'", workouts[0].Activity)
	}
	if *workouts[0].Calories != 250.5 {
		t.Errorf("Expected calories 250.5, got %v", *workouts[0].Calories)
	}
}

func TestClientHTTPError(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := client.DailyReadiness(context.Background(), "2024-02-01", "2024-05-01"); err == nil {
		t.Error("Expected error for HTTP 401")
	}
}

func TestClientMalformedBody(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	if _, err := client.DailySpO2(context.Background(), "2024-02-01", "2024-05-01"); err == nil {
		t.Error("Expected decode error")
	}
}
