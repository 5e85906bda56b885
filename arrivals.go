package batransit

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/baires-transit/batransit/gcba"
	"github.com/baires-transit/batransit/sofse"
	"github.com/baires-transit/batransit/utils"
)

func (c *Client) parseSubteArrivals(feed *gcba.SubteForecastResponse, q ArrivalsQuery) []Arrival {
	now := c.now()
	normalizedQuery := utils.NormalizeStation(q.Station)

	var arrivals []Arrival
	for _, entity := range feed.Entity {
		line, ok := subteRouteMap[entity.Linea.RouteID]
		if !ok {
			continue
		}
		if q.Line != "" && line != q.Line {
			continue
		}

		for _, estacion := range entity.Linea.Estaciones {
			normalizedStop := utils.NormalizeStation(estacion.StopName)
			if !strings.Contains(normalizedStop, normalizedQuery) {
				continue
			}

			if estacion.Arrival.Time == 0 {
				continue
			}
			arrivalTime := time.Unix(estacion.Arrival.Time, 0)
			if arrivalTime.Before(now) {
				continue
			}

			arrivals = append(arrivals, Arrival{
				Station: Station{
					ID:   estacion.StopID,
					Name: estacion.StopName,
					Line: line,
					Type: TypeSubte,
				},
				Destination:  directionName(entity.Linea.DirectionID, line),
				ArrivalTime:  arrivalTime,
				DelaySeconds: estacion.Arrival.Delay,
				MinutesAway:  utils.MinutesUntil(arrivalTime, now),
				TripID:       entity.Linea.TripID,
			})
		}
	}
	return arrivals
}

// GetTrainArrivals fetches arrivals for a known train station id, mapping
// each prediction onto a line through the topology index. Arrivals on
// branches outside the metropolitan network are dropped.
func (c *Client) GetTrainArrivals(ctx context.Context, q TrainArrivalsQuery) ([]Arrival, error) {
	idx, err := c.trainTopology(ctx)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultArrivalLimit
	}

	response, err := c.sofse.Arrivals(ctx, q.StationID, sofse.ArrivalOptions{
		Cantidad: limit,
		Ramal:    q.RamalID,
	})
	if err != nil {
		return nil, err
	}

	now := c.now()
	normalizedDirection := ""
	if q.Direction != "" {
		normalizedDirection = utils.NormalizeStation(q.Direction)
	}

	var arrivals []Arrival
	for _, arribo := range response.Results {
		line, ok := idx.LineByRamal[arribo.RamalID]
		if !ok {
			continue
		}
		if q.Line != "" && line != q.Line {
			continue
		}

		destination := arribo.Destino
		if destination == "" {
			destination = arribo.Cabecera
		}
		if normalizedDirection != "" {
			if !strings.Contains(utils.NormalizeStation(destination), normalizedDirection) {
				continue
			}
		}

		arrivalTime, ok := utils.ParseWallClockTime(arribo.HoraLlegada, now)
		if !ok || arrivalTime.Before(now) {
			continue
		}

		ramalName, ok := idx.NameByRamal[arribo.RamalID]
		if !ok {
			ramalName = arribo.RamalNombre
		}

		tripID := fmt.Sprintf("sofse-%d", arribo.ID)
		if arribo.TrenID != nil && *arribo.TrenID != "" {
			tripID = *arribo.TrenID
		}

		platform := ""
		if arribo.Anden != nil {
			platform = *arribo.Anden
		}

		arrivals = append(arrivals, Arrival{
			Station: Station{
				ID:   fmt.Sprintf("%d", arribo.EstacionID),
				Name: arribo.EstacionNombre,
				Line: line,
				Type: TypeTrain,
			},
			Destination:    destination,
			ArrivalTime:    arrivalTime,
			MinutesAway:    utils.MinutesUntil(arrivalTime, now),
			TripID:         tripID,
			RamalID:        arribo.RamalID,
			RamalName:      ramalName,
			Platform:       platform,
			ProviderStatus: arribo.Estado,
			InTransit:      arribo.EnViaje,
		})
	}

	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivals[i].MinutesAway < arrivals[j].MinutesAway
	})
	if len(arrivals) > limit {
		arrivals = arrivals[:limit]
	}
	return arrivals, nil
}
