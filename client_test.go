package batransit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/baires-transit/batransit/config"
)

const gerenciasJSON = `[
	{"id": 5, "id_empresa": 1, "nombre": "Mitre",
	 "estado": {"id": 13, "mensaje": "Servicio Normal", "color": "#00aa00"}, "alerta": []},
	{"id": 11, "id_empresa": 1, "nombre": "Roca",
	 "estado": {"id": 1, "mensaje": "Demoras en el servicio", "color": "#ff0000"},
	 "alerta": [{"id": 9, "contenido": "Obras en Avellaneda", "criticidad_orden": 2,
	             "vigencia_desde": "2026-08-30 06:00:00", "vigencia_hasta": null}]},
	{"id": 501, "id_empresa": 1, "nombre": "Regionales",
	 "estado": {"id": 13, "mensaje": "Servicio Normal", "color": "#00aa00"}, "alerta": []}
]`

const ramalesMitreJSON = `[
	{"id": 17, "id_gerencia": 5, "nombre": "Retiro - Tigre", "operativo": 1,
	 "cabecera_inicial": {"id": 1, "nombre": "Retiro"},
	 "cabecera_final": {"id": 2, "nombre": "Tigre"}, "alerta": []}
]`

const ramalesRocaJSON = `[
	{"id": 30, "id_gerencia": 11, "nombre": "Constitución - La Plata", "operativo": 0,
	 "cabecera_inicial": {"id": 3, "nombre": "Constitución"},
	 "cabecera_final": {"id": 4, "nombre": "La Plata"},
	 "alerta": [{"id": 10, "contenido": "Servicio limitado", "criticidad_orden": 3,
	             "vigencia_desde": "2026-08-30 06:00:00", "vigencia_hasta": null}]}
]`

// fakeTransit serves canned GCBA and SOFSE responses and counts upstream
// traffic so tests can assert on caching behavior.
type fakeTransit struct {
	mu            sync.Mutex
	gerenciaCalls int
	failRamales   bool

	forecastJSON string
	alertsJSON   string
	stationsJSON string
	arribosJSON  string
}

func (f *fakeTransit) setFailRamales(fail bool) {
	f.mu.Lock()
	f.failRamales = fail
	f.mu.Unlock()
}

func (f *fakeTransit) countGerencias() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gerenciaCalls
}

func (f *fakeTransit) gcbaHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/subtes/forecastGTFS":
			fmt.Fprint(w, f.forecastJSON)
		case "/subtes/serviceAlerts":
			fmt.Fprint(w, f.alertsJSON)
		default:
			http.NotFound(w, r)
		}
	})
}

func (f *fakeTransit) sofseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/auth/authorize":
			fmt.Fprint(w, `{"token": "test-token"}`)
		case r.URL.Path == "/infraestructura/gerencias":
			f.mu.Lock()
			f.gerenciaCalls++
			f.mu.Unlock()
			fmt.Fprint(w, gerenciasJSON)
		case r.URL.Path == "/infraestructura/ramales":
			f.mu.Lock()
			fail := f.failRamales
			f.mu.Unlock()
			if fail {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			switch r.URL.Query().Get("idGerencia") {
			case "5":
				fmt.Fprint(w, ramalesMitreJSON)
			case "11":
				fmt.Fprint(w, ramalesRocaJSON)
			default:
				fmt.Fprint(w, `[]`)
			}
		case r.URL.Path == "/infraestructura/estaciones":
			fmt.Fprint(w, f.stationsJSON)
		case strings.HasPrefix(r.URL.Path, "/arribos/estacion/"):
			fmt.Fprint(w, f.arribosJSON)
		default:
			http.NotFound(w, r)
		}
	})
}

func newTestClient(t *testing.T, f *fakeTransit, base time.Time) *Client {
	t.Helper()

	gcbaSrv := httptest.NewServer(f.gcbaHandler())
	t.Cleanup(gcbaSrv.Close)
	sofseSrv := httptest.NewServer(f.sofseHandler())
	t.Cleanup(sofseSrv.Close)

	c := New(config.AppConfig{
		GCBA: config.GCBAConfig{
			ClientID:     "test-id",
			ClientSecret: "test-secret",
			BaseURL:      gcbaSrv.URL,
		},
		SOFSE: config.SOFSEConfig{BaseURL: sofseSrv.URL},
		Cache: config.CacheConfig{TopologyTTLMinutes: 15},
	})
	c.now = func() time.Time { return base }
	return c
}

func testBase() time.Time {
	return time.Date(2026, time.September, 1, 10, 0, 0, 0, time.Local)
}

func forecastWithStop(base time.Time, minutes int) string {
	arrival := base.Add(time.Duration(minutes) * time.Minute).Unix()
	return fmt.Sprintf(`{
		"Header": {"timestamp": %d},
		"Entity": [{
			"ID": "1",
			"Linea": {
				"Trip_Id": "trip-c-1", "Route_Id": "LineaC", "Direction_ID": 1,
				"start_time": "09:30:00", "start_date": "20260901",
				"Estaciones": [{
					"stop_id": "C05", "stop_name": "Avenida Belgrano",
					"arrival": {"time": %d, "delay": 30},
					"departure": {"time": %d, "delay": 30}
				}]
			}
		}]
	}`, base.Unix(), arrival, arrival+30)
}

const emptyForecastJSON = `{"Header": {"timestamp": 0}, "Entity": []}`
const emptyAlertsJSON = `{"header": {"gtfs_realtime_version": "2.0"}, "entity": []}`

func TestGetArrivalsMergesBothSystems(t *testing.T) {
	base := testBase()
	f := &fakeTransit{
		forecastJSON: forecastWithStop(base, 3),
		stationsJSON: `[{"nombre": "Belgrano C", "id_estacion": "231", "incluida_en_ramales": [17]}]`,
		arribosJSON: `{"timestamp": 0, "total": 1, "results": [{
			"id": 900, "ramal_id": 17, "ramal_nombre": "Tigre",
			"cabecera": "Tigre", "destino": "Tigre",
			"estacion_id": 231, "estacion_nombre": "Belgrano C",
			"anden": "2", "hora_llegada": "10:07", "hora_salida": "10:08",
			"estado": "A tiempo", "tren_id": null, "en_viaje": true}]}`,
	}
	c := newTestClient(t, f, base)

	arrivals, err := c.GetArrivals(context.Background(), ArrivalsQuery{Station: "belgrano"})
	if err != nil {
		t.Fatalf("GetArrivals: %v", err)
	}
	if len(arrivals) != 2 {
		t.Fatalf("got %d arrivals, want 2", len(arrivals))
	}

	if arrivals[0].Station.Type != TypeSubte || arrivals[0].MinutesAway != 3 {
		t.Errorf("first arrival = %+v, want subte 3 minutes away", arrivals[0])
	}
	if arrivals[0].Destination != "Retiro" {
		t.Errorf("subte destination = %q, want %q", arrivals[0].Destination, "Retiro")
	}
	if arrivals[0].DelaySeconds != 30 {
		t.Errorf("subte delay = %d, want 30", arrivals[0].DelaySeconds)
	}

	second := arrivals[1]
	if second.Station.Type != TypeTrain || second.MinutesAway != 7 {
		t.Errorf("second arrival = %+v, want train 7 minutes away", second)
	}
	if second.Station.Line != LineMitre {
		t.Errorf("train line = %q, want %q", second.Station.Line, LineMitre)
	}
	if second.RamalName != "Retiro - Tigre" {
		t.Errorf("ramal name = %q, want topology name", second.RamalName)
	}
	if second.TripID != "sofse-900" {
		t.Errorf("trip id = %q, want synthetic sofse id", second.TripID)
	}
	if second.Platform != "2" || !second.InTransit {
		t.Errorf("platform/inTransit = %q/%v", second.Platform, second.InTransit)
	}
}

func TestGetArrivalsAmbiguousStationYieldsNoTrains(t *testing.T) {
	base := testBase()
	f := &fakeTransit{
		forecastJSON: emptyForecastJSON,
		stationsJSON: `[
			{"nombre": "Belgrano C", "id_estacion": "231", "incluida_en_ramales": [17]},
			{"nombre": "Belgrano R", "id_estacion": "232", "incluida_en_ramales": [17]}
		]`,
	}
	c := newTestClient(t, f, base)

	arrivals, err := c.GetArrivals(context.Background(), ArrivalsQuery{Station: "belgrano"})
	if err != nil {
		t.Fatalf("GetArrivals: %v", err)
	}
	if len(arrivals) != 0 {
		t.Fatalf("got %d arrivals, want 0 for ambiguous station", len(arrivals))
	}
}

func TestGetArrivalsLimitAndOrder(t *testing.T) {
	base := testBase()
	arrival := func(min int) string {
		return fmt.Sprintf(`{"stop_id": "C%02d", "stop_name": "Avenida Belgrano",
			"arrival": {"time": %d, "delay": 0},
			"departure": {"time": %d, "delay": 0}}`,
			min, base.Add(time.Duration(min)*time.Minute).Unix(),
			base.Add(time.Duration(min)*time.Minute).Unix())
	}
	f := &fakeTransit{
		forecastJSON: fmt.Sprintf(`{"Header": {"timestamp": 0}, "Entity": [{
			"ID": "1",
			"Linea": {"Trip_Id": "t1", "Route_Id": "LineaC", "Direction_ID": 0,
				"start_time": "", "start_date": "",
				"Estaciones": [%s, %s, %s]}}]}`,
			arrival(9), arrival(2), arrival(5)),
		stationsJSON: `[]`,
	}
	c := newTestClient(t, f, base)

	arrivals, err := c.GetArrivals(context.Background(), ArrivalsQuery{Station: "belgrano", Limit: 2})
	if err != nil {
		t.Fatalf("GetArrivals: %v", err)
	}
	if len(arrivals) != 2 {
		t.Fatalf("got %d arrivals, want limit 2", len(arrivals))
	}
	if arrivals[0].MinutesAway != 2 || arrivals[1].MinutesAway != 5 {
		t.Errorf("order = %d, %d; want 2, 5", arrivals[0].MinutesAway, arrivals[1].MinutesAway)
	}
}

func TestGetArrivalsSkipsPastArrivals(t *testing.T) {
	base := testBase()
	f := &fakeTransit{
		forecastJSON: forecastWithStop(base, -5),
		stationsJSON: `[]`,
	}
	c := newTestClient(t, f, base)

	arrivals, err := c.GetArrivals(context.Background(), ArrivalsQuery{Station: "belgrano", Line: LineC})
	if err != nil {
		t.Fatalf("GetArrivals: %v", err)
	}
	if len(arrivals) != 0 {
		t.Fatalf("got %d arrivals, want 0 for past predictions", len(arrivals))
	}
}

func TestTrainTopologyCachedUntilTTL(t *testing.T) {
	base := testBase()
	f := &fakeTransit{forecastJSON: emptyForecastJSON, stationsJSON: `[]`}
	c := newTestClient(t, f, base)

	ctx := context.Background()
	if _, err := c.ListTrainRamales(ctx, RamalListQuery{Line: LineMitre}); err != nil {
		t.Fatalf("ListTrainRamales: %v", err)
	}
	if _, err := c.ListTrainRamales(ctx, RamalListQuery{Line: LineMitre}); err != nil {
		t.Fatalf("ListTrainRamales: %v", err)
	}
	if got := f.countGerencias(); got != 1 {
		t.Fatalf("gerencias fetched %d times, want 1 within TTL", got)
	}

	c.now = func() time.Time { return base.Add(16 * time.Minute) }
	if _, err := c.ListTrainRamales(ctx, RamalListQuery{Line: LineMitre}); err != nil {
		t.Fatalf("ListTrainRamales: %v", err)
	}
	if got := f.countGerencias(); got != 2 {
		t.Fatalf("gerencias fetched %d times, want rebuild after TTL", got)
	}
}

func TestTrainTopologyFailedRebuildKeepsOldIndex(t *testing.T) {
	base := testBase()
	f := &fakeTransit{}
	c := newTestClient(t, f, base)
	ctx := context.Background()

	first, err := c.trainTopology(ctx)
	if err != nil {
		t.Fatalf("initial build: %v", err)
	}

	c.now = func() time.Time { return base.Add(20 * time.Minute) }
	f.setFailRamales(true)

	if _, err := c.trainTopology(ctx); err == nil {
		t.Fatal("expected rebuild error")
	}

	c.mu.Lock()
	cached := c.topology
	c.mu.Unlock()
	if cached != first {
		t.Fatal("failed rebuild replaced the cached index")
	}

	f.setFailRamales(false)
	rebuilt, err := c.trainTopology(ctx)
	if err != nil {
		t.Fatalf("rebuild after recovery: %v", err)
	}
	if rebuilt == first {
		t.Fatal("expected a fresh index after recovery")
	}
}

func TestTrainTopologyContents(t *testing.T) {
	base := testBase()
	f := &fakeTransit{}
	c := newTestClient(t, f, base)

	idx, err := c.trainTopology(context.Background())
	if err != nil {
		t.Fatalf("trainTopology: %v", err)
	}

	if line := idx.LineByRamal[17]; line != LineMitre {
		t.Errorf("ramal 17 line = %q, want %q", line, LineMitre)
	}
	if line := idx.LineByRamal[30]; line != LineRoca {
		t.Errorf("ramal 30 line = %q, want %q", line, LineRoca)
	}
	if _, ok := idx.GerenciaByLine[Line("Regionales")]; ok {
		t.Error("Regionales should be excluded from the topology")
	}
	if name := idx.NameByRamal[17]; name != "Retiro - Tigre" {
		t.Errorf("ramal 17 name = %q", name)
	}
}
