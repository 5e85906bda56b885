package batransit

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/baires-transit/batransit/config"
	"github.com/baires-transit/batransit/gcba"
	"github.com/baires-transit/batransit/sofse"
)

const defaultArrivalLimit = 5

// Client aggregates the GCBA Subte feeds and the SOFSE train API behind a
// single query surface. It is safe for concurrent use.
type Client struct {
	gcba  *gcba.Client
	sofse *sofse.Client

	topologyTTL time.Duration
	now         func() time.Time

	mu       sync.Mutex
	topology *TopologyIndex
}

// New builds a Client from loaded configuration.
func New(cfg config.AppConfig) *Client {
	return &Client{
		gcba:        gcba.NewClient(cfg.GCBA.ClientID, cfg.GCBA.ClientSecret, cfg.GCBA.BaseURL),
		sofse:       sofse.NewClient(cfg.SOFSE.BaseURL),
		topologyTTL: time.Duration(cfg.Cache.TopologyTTLMinutes) * time.Minute,
		now:         time.Now,
	}
}

// GetArrivals returns upcoming arrivals matching the query, Subte and train
// results merged, soonest first. An ambiguous train station query contributes
// no train arrivals rather than failing the whole call.
func (c *Client) GetArrivals(ctx context.Context, q ArrivalsQuery) ([]Arrival, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultArrivalLimit
	}

	var arrivals []Arrival

	if q.Line == "" || q.Line.IsSubte() {
		forecast, err := c.gcba.SubteForecast(ctx)
		if err != nil {
			return nil, err
		}
		arrivals = append(arrivals, c.parseSubteArrivals(forecast, q)...)
	}

	if q.Line == "" || q.Line.IsTrain() {
		trainArrivals, err := c.trainArrivalsForQuery(ctx, q, limit)
		if err != nil {
			return nil, err
		}
		arrivals = append(arrivals, trainArrivals...)
	}

	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivals[i].MinutesAway < arrivals[j].MinutesAway
	})
	if len(arrivals) > limit {
		arrivals = arrivals[:limit]
	}
	return arrivals, nil
}

// GetStatus returns service status per line. Every line of a queried system
// is reported, with an empty alert list when nothing is wrong.
func (c *Client) GetStatus(ctx context.Context, q StatusQuery) ([]LineStatus, error) {
	var statuses []LineStatus

	if q.Type == "" || q.Type == TypeSubte {
		feed, err := c.gcba.SubteAlerts(ctx)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, parseSubteStatus(feed, q.Line)...)
	}

	if q.Type == "" || q.Type == TypeTrain {
		var filterLine Line
		if q.Line.IsTrain() {
			filterLine = q.Line
		}
		trainStatuses, err := c.trainStatus(ctx, filterLine, false)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, trainStatuses...)
	}

	return statuses, nil
}

// GetStationInfo fetches the full provider record for one train station.
func (c *Client) GetStationInfo(ctx context.Context, stationID int) (*sofse.Station, error) {
	return c.sofse.StationByID(ctx, stationID)
}

func (c *Client) trainArrivalsForQuery(ctx context.Context, q ArrivalsQuery, limit int) ([]Arrival, error) {
	var filterLine Line
	if q.Line.IsTrain() {
		filterLine = q.Line
	}

	resolved, err := c.ResolveTrainStation(ctx, TrainStationQuery{
		Query: q.Station,
		Line:  filterLine,
	})
	if err != nil {
		return nil, err
	}
	if resolved.Station == nil {
		return nil, nil
	}

	return c.GetTrainArrivals(ctx, TrainArrivalsQuery{
		StationID: resolved.Station.StationID,
		Line:      filterLine,
		Direction: q.Direction,
		Limit:     limit,
	})
}
