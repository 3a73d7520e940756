package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/dangolsanat/FLog/internal/types"
)

func TestDeviceFeedOmitsEmptySearch(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/rpc/get_device_feed" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	if _, err := DeviceFeed(context.Background(), c, "device-1", ""); err != nil {
		t.Fatalf("DeviceFeed: %v", err)
	}
	if body["target_device_id"] != "device-1" {
		t.Errorf("target_device_id = %v", body["target_device_id"])
	}
	if _, present := body["search_query"]; present {
		t.Error("empty search must not be sent")
	}
}

func TestDeviceFeedSendsSearch(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	if _, err := DeviceFeed(context.Background(), c, "device-1", "oats"); err != nil {
		t.Fatalf("DeviceFeed: %v", err)
	}
	if body["search_query"] != "oats" {
		t.Errorf("search_query = %v", body["search_query"])
	}
}

func TestListEntriesPassesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/food_entries" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("order") != "created_at.desc" || q.Get("limit") != "20" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	q := url.Values{"order": {"created_at.desc"}, "limit": {"20"}}
	if _, err := ListEntries(context.Background(), c, q); err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
}

func TestCreateEntryEchoesRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Prefer"); got != PreferRepresentation {
			t.Errorf("Prefer = %q", got)
		}
		var e types.FoodEntry
		_ = json.NewDecoder(r.Body).Decode(&e)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode([]types.FoodEntry{e})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	in := types.FoodEntry{
		ID:       "e1",
		DeviceID: "device-1",
		Title:    "Oatmeal",
		MealType: types.MealBreakfast,
		MealDate: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	got, err := CreateEntry(context.Background(), c, in)
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if got.ID != "e1" || got.Title != "Oatmeal" {
		t.Fatalf("echoed row = %+v", got)
	}
}

func TestUpdateEntryFiltersByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.URL.Query().Get("id"); got != "eq.e1" {
			t.Errorf("id filter = %q", got)
		}
		var e types.FoodEntry
		_ = json.NewDecoder(r.Body).Decode(&e)
		_ = json.NewEncoder(w).Encode([]types.FoodEntry{e})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	got, err := UpdateEntry(context.Background(), c, types.FoodEntry{ID: "e1", Title: "Porridge"})
	if err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
	if got.Title != "Porridge" {
		t.Fatalf("echoed row = %+v", got)
	}
}

func TestDeleteEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.URL.Query().Get("id"); got != "eq.e1" {
			t.Errorf("id filter = %q", got)
		}
		if got := r.Header.Get("Prefer"); got != PreferMinimal {
			t.Errorf("Prefer = %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	if err := DeleteEntry(context.Background(), c, "e1"); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
}
