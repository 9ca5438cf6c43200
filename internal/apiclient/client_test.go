package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcus/rd/internal/models"
)

func TestListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" || r.URL.Path != "/users" {
			t.Errorf("got %s %s, want GET /users", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `[{"id":1,"name":"Alice","role":"admin","points":120},{"id":2,"name":"Bob","role":"user","points":45}]`)
	}))
	defer server.Close()

	c := New(server.URL)
	users, err := c.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].Name != "Alice" || users[0].Role != models.RoleAdmin || users[0].Points != 120 {
		t.Errorf("first user decoded wrong: %+v", users[0])
	}
}

func TestCreateUserPostsWithoutID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/users" {
			t.Errorf("got %s %s, want POST /users", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type: got %q", ct)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, ok := body["id"]; ok {
			t.Error("create request must not carry an id; the server assigns it")
		}
		fmt.Fprint(w, `{"id":7,"name":"Dana","role":"user","points":0}`)
	}))
	defer server.Close()

	c := New(server.URL)
	created, err := c.CreateUser(context.Background(), models.User{Name: "Dana", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("got id %d, want 7 (server-assigned)", created.ID)
	}
}

func TestUpdateUserSendsOnlyChangedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" || r.URL.Path != "/users/3" {
			t.Errorf("got %s %s, want PUT /users/3", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(body) != 1 || body["points"] != float64(90) {
			t.Errorf("request body: got %v, want only points=90", body)
		}
		fmt.Fprint(w, `{"id":3,"name":"Cara","role":"user","points":90}`)
	}))
	defer server.Close()

	c := New(server.URL)
	updated, err := c.UpdateUser(context.Background(), 3, map[string]any{"points": 90})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Points != 90 {
		t.Errorf("got points %d, want 90", updated.Points)
	}
}

func TestDeleteUser(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != "DELETE" || r.URL.Path != "/users/5" {
			t.Errorf("got %s %s, want DELETE /users/5", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	c := New(server.URL)
	if err := c.DeleteUser(context.Background(), 5); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if !called {
		t.Error("server never called")
	}
}

func TestListAdminActionsNullPointsChanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"id":1,"userId":2,"action":"Role change","timestamp":"2026-03-01T10:00:00Z"},
			{"id":2,"userId":2,"action":"Bonus","pointsChanged":25,"timestamp":"2026-03-01T11:00:00Z"}
		]`)
	}))
	defer server.Close()

	c := New(server.URL)
	actions, err := c.ListAdminActions(context.Background())
	if err != nil {
		t.Fatalf("ListAdminActions: %v", err)
	}
	if actions[0].PointsChanged != nil {
		t.Errorf("absent pointsChanged should decode to nil, got %v", *actions[0].PointsChanged)
	}
	if actions[1].PointsChanged == nil || *actions[1].PointsChanged != 25 {
		t.Errorf("pointsChanged: got %v, want 25", actions[1].PointsChanged)
	}
}

func TestRawCollectionRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /rewards":
			fmt.Fprint(w, `[{"id":1,"name":"Mug","category":"merchandise","pointsCost":80}]`)
		case "PUT /rewards/1":
			fmt.Fprint(w, `{"id":1,"name":"Big Mug","category":"merchandise","pointsCost":80}`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL)

	rows, err := c.ListRaw(context.Background(), models.CollectionRewards)
	if err != nil {
		t.Fatalf("ListRaw: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "Mug" {
		t.Fatalf("ListRaw rows: %+v", rows)
	}

	updated, err := c.UpdateRaw(context.Background(), models.CollectionRewards, 1, map[string]any{"name": "Big Mug"})
	if err != nil {
		t.Fatalf("UpdateRaw: %v", err)
	}
	if updated["name"] != "Big Mug" {
		t.Errorf("UpdateRaw result: %+v", updated)
	}
}

func TestTransportError(t *testing.T) {
	// Point at a server that is already closed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := New(url)
	_, err := c.ListUsers(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("got %T, want *TransportError", err)
	}
	if got := Humanize(err); got != "cannot reach server" {
		t.Errorf("Humanize: got %q", got)
	}
}

func TestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.ListUsers(context.Background())
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("got %T, want *ServerError", err)
	}
	if se.Status != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", se.Status)
	}
	if got := Humanize(err); got != "server error (HTTP 500)" {
		t.Errorf("Humanize: got %q", got)
	}
}

func TestDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.ListUsers(context.Background())
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("got %T, want *DecodeError", err)
	}
	if got := Humanize(err); got != "unexpected response from server" {
		t.Errorf("Humanize: got %q", got)
	}
}

func TestEmptyBaseURLFallsBackToDefault(t *testing.T) {
	c := New("")
	if c.BaseURL != DefaultBaseURL {
		t.Errorf("got %q, want %q", c.BaseURL, DefaultBaseURL)
	}
}
