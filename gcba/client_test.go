package gcba

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("id-123", "secret-456", srv.URL)
}

func TestClient_AuthQueryParams(t *testing.T) {
	var gotID, gotSecret string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("client_id")
		gotSecret = r.URL.Query().Get("client_secret")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"Header":{"timestamp":1},"Entity":[]}`)
	})

	if _, err := client.SubteForecast(context.Background()); err != nil {
		t.Fatalf("SubteForecast: %v", err)
	}
	if gotID != "id-123" || gotSecret != "secret-456" {
		t.Errorf("auth params = %q/%q", gotID, gotSecret)
	}
}

func TestClient_ForecastParsing(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"Header": {"timestamp": 1756720800},
			"Entity": [{
				"ID": "1",
				"Linea": {
					"Trip_Id": "t-1", "Route_Id": "LineaA", "Direction_ID": 0,
					"start_time": "10:00:00", "start_date": "20250901",
					"Estaciones": [{
						"stop_id": "200", "stop_name": "Plaza de Mayo",
						"arrival": {"time": 1756721100, "delay": 30},
						"departure": {"time": 1756721130, "delay": 30}
					}]
				}
			}]
		}`)
	})

	forecast, err := client.SubteForecast(context.Background())
	if err != nil {
		t.Fatalf("SubteForecast: %v", err)
	}
	if len(forecast.Entity) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(forecast.Entity))
	}
	trip := forecast.Entity[0].Linea
	if trip.RouteID != "LineaA" || trip.TripID != "t-1" {
		t.Errorf("unexpected trip: %+v", trip)
	}
	if len(trip.Estaciones) != 1 || trip.Estaciones[0].Arrival.Time != 1756721100 {
		t.Errorf("unexpected stop times: %+v", trip.Estaciones)
	}
}

func TestClient_AlertsParsing(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/subtes/serviceAlerts") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"header": {"gtfs_realtime_version": "2.0", "incrementality": "FULL_DATASET", "timestamp": 1756720800},
			"entity": [{
				"id": "alert-1",
				"alert": {
					"informed_entity": [{"route_id": "LineaB"}],
					"header_text": {"translation": [{"text": "Demoras", "language": "es"}]},
					"description_text": {"translation": [{"text": "Demoras en el servicio", "language": "es"}]}
				}
			}]
		}`)
	})

	feed, err := client.SubteAlerts(context.Background())
	if err != nil {
		t.Fatalf("SubteAlerts: %v", err)
	}
	if len(feed.Entity) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(feed.Entity))
	}
	alert := feed.Entity[0].GetAlert()
	if alert == nil {
		t.Fatal("expected alert payload")
	}
	if got := alert.GetInformedEntity()[0].GetRouteId(); got != "LineaB" {
		t.Errorf("route_id = %s", got)
	}
	if got := alert.GetHeaderText().GetTranslation()[0].GetText(); got != "Demoras" {
		t.Errorf("header text = %s", got)
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		contains string
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			contains: "401",
		},
		{
			name: "non-JSON content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				fmt.Fprint(w, "<html>login</html>")
			},
			contains: "non-JSON",
		},
		{
			name: "provider-reported error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"error":"invalid credentials"}`)
			},
			contains: "invalid credentials",
		},
		{
			name: "unparsable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{not json`)
			},
			contains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, tt.handler)
			_, err := client.SubteForecast(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q should mention %q", err, tt.contains)
			}
		})
	}
}
