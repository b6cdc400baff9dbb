package esi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/industrialist/evemargin/internal/model"
)

func orderJSON(orderID int64, price float64, remain int64) map[string]any {
	return map[string]any{
		"order_id":      orderID,
		"type_id":       34,
		"is_buy_order":  false,
		"price":         price,
		"volume_remain": remain,
		"volume_total":  remain,
		"location_id":   60003760,
		"system_id":     30000142,
	}
}

func TestOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/markets/10000002/orders/" {
			t.Errorf("path = %q, want /markets/10000002/orders/", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("order_type") != "sell" {
			t.Errorf("order_type = %q, want sell", q.Get("order_type"))
		}
		if q.Get("type_id") != "34" {
			t.Errorf("type_id = %q, want 34", q.Get("type_id"))
		}
		if q.Get("datasource") != "tranquility" {
			t.Errorf("datasource = %q, want tranquility", q.Get("datasource"))
		}

		w.Header().Set("X-Pages", "1")
		json.NewEncoder(w).Encode([]map[string]any{
			orderJSON(1, 4.5, 1000),
			orderJSON(2, 4.7, 500),
		})
	}))
	defer server.Close()

	c := NewClient(10000002, WithBaseURL(server.URL))

	orders, err := c.Orders(context.Background(), 34, model.SideSell)
	if err != nil {
		t.Fatalf("Orders failed: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("len(orders) = %d, want 2", len(orders))
	}
	want := model.MarketOrder{
		OrderID:      1,
		TypeID:       34,
		Price:        4.5,
		VolumeRemain: 1000,
		VolumeTotal:  1000,
		LocationID:   60003760,
		SystemID:     30000142,
	}
	if orders[0] != want {
		t.Errorf("orders[0] = %+v, want %+v", orders[0], want)
	}
}

func TestOrdersPagination(t *testing.T) {
	var pagesServed []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pagesServed = append(pagesServed, page)

		w.Header().Set("X-Pages", "3")
		id := int64(0)
		fmt.Sscanf(page, "%d", &id)
		json.NewEncoder(w).Encode([]map[string]any{orderJSON(id, 5, 100)})
	}))
	defer server.Close()

	c := NewClient(10000002, WithBaseURL(server.URL))

	orders, err := c.Orders(context.Background(), 34, model.SideSell)
	if err != nil {
		t.Fatalf("Orders failed: %v", err)
	}

	if len(orders) != 3 {
		t.Errorf("len(orders) = %d, want 3 (one per page)", len(orders))
	}
	if len(pagesServed) != 3 || pagesServed[0] != "1" || pagesServed[2] != "3" {
		t.Errorf("pages requested = %v, want [1 2 3]", pagesServed)
	}
}

func TestOrdersEmptyBook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pages", "1")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(10000002, WithBaseURL(server.URL))

	orders, err := c.Orders(context.Background(), 34, model.SideSell)
	if err != nil {
		t.Fatalf("Orders failed: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("len(orders) = %d, want 0; empty book is not a fault", len(orders))
	}
}

func TestOrdersMissingPagesHeader(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(10000002, WithBaseURL(server.URL))

	if _, err := c.Orders(context.Background(), 34, model.SideSell); err != nil {
		t.Fatalf("Orders failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 when X-Pages is absent", calls)
	}
}
