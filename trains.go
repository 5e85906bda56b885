package batransit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/baires-transit/batransit/sofse"
	"github.com/baires-transit/batransit/utils"
)

const resolveCandidateLimit = 25

// ListTrainLines lists the metropolitan train lines with their current
// operational state.
func (c *Client) ListTrainLines(ctx context.Context) ([]TrainLineInfo, error) {
	gerencias, err := c.sofse.Gerencias(ctx)
	if err != nil {
		return nil, err
	}

	var result []TrainLineInfo
	for _, g := range gerencias {
		line, ok := trainLineForGerencia(g.ID)
		if !ok {
			continue
		}
		result = append(result, TrainLineInfo{
			LineID:        g.ID,
			Line:          line,
			StatusMessage: g.Estado.Mensaje,
			IsOperational: g.Estado.ID != 1,
			AlertsCount:   len(g.Alerta),
		})
	}
	return result, nil
}

// ListTrainRamales lists the branches of one train line, identified by name
// or by gerencia id.
func (c *Client) ListTrainRamales(ctx context.Context, q RamalListQuery) ([]TrainRamalInfo, error) {
	idx, err := c.trainTopology(ctx)
	if err != nil {
		return nil, err
	}

	lineID := q.LineID
	line := q.Line

	if lineID == 0 && line != "" {
		lineID = sofse.GerenciaIDByLine[string(line)]
	}
	if line == "" && lineID != 0 {
		for l, id := range idx.GerenciaByLine {
			if id == lineID {
				line = l
				break
			}
		}
	}
	if lineID == 0 || line == "" {
		return nil, errors.New("Debe especificar line o lineId para listar ramales")
	}

	ramales, err := c.sofse.Ramales(ctx, lineID)
	if err != nil {
		return nil, err
	}

	result := make([]TrainRamalInfo, 0, len(ramales))
	for _, r := range ramales {
		result = append(result, TrainRamalInfo{
			RamalID:         r.ID,
			RamalName:       r.Nombre,
			LineID:          lineID,
			Line:            line,
			CabeceraInicial: r.CabeceraInicial.Nombre,
			CabeceraFinal:   r.CabeceraFinal.Nombre,
			IsOperational:   r.Operativo == 1,
			AlertsCount:     len(r.Alerta),
		})
	}
	return result, nil
}

// ListTrainStations lists every station on one branch.
func (c *Client) ListTrainStations(ctx context.Context, ramalID int) ([]TrainStationCandidate, error) {
	idx, err := c.trainTopology(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := idx.LineByRamal[ramalID]; !ok {
		return nil, fmt.Errorf("No se pudo determinar la línea para el ramal %d", ramalID)
	}

	stations, err := c.sofse.StationsByRamal(ctx, ramalID)
	if err != nil {
		return nil, err
	}

	var result []TrainStationCandidate
	for _, station := range stations {
		stationID, err := strconv.Atoi(station.IDEstacion)
		if err != nil {
			continue
		}
		result = append(result, TrainStationCandidate{
			StationID:   stationID,
			StationName: station.Nombre,
			RamalIDs:    station.IncluidaEnRamales,
			Lines:       idx.LinesForRamals(station.IncluidaEnRamales),
		})
	}
	return result, nil
}

// SearchTrainStations searches train stations by name, optionally narrowed to
// a line or branch. Matching is accent- and spacing-insensitive.
func (c *Client) SearchTrainStations(ctx context.Context, q TrainStationQuery) ([]TrainStationCandidate, error) {
	idx, err := c.trainTopology(ctx)
	if err != nil {
		return nil, err
	}

	normalizedQuery := utils.NormalizeStation(q.Query)

	stations, err := c.sofse.SearchStations(ctx, q.Query)
	if err != nil {
		return nil, err
	}

	var lineRamals []int
	if q.Line != "" {
		lineRamals = idx.RamalsByLine[q.Line]
	}

	var result []TrainStationCandidate
	for _, station := range stations {
		stationID, err := strconv.Atoi(station.IDEstacion)
		if err != nil {
			continue
		}

		if !strings.Contains(utils.NormalizeStation(station.Nombre), normalizedQuery) {
			continue
		}

		ramalIDs := station.IncluidaEnRamales
		if q.RamalID != 0 && !containsInt(ramalIDs, q.RamalID) {
			continue
		}
		if q.Line != "" && !intersects(ramalIDs, lineRamals) {
			continue
		}

		result = append(result, TrainStationCandidate{
			StationID:   stationID,
			StationName: station.Nombre,
			RamalIDs:    ramalIDs,
			Lines:       idx.LinesForRamals(ramalIDs),
		})

		if q.Limit > 0 && len(result) >= q.Limit {
			break
		}
	}
	return result, nil
}

// ResolveTrainStation resolves a station query to a single station when
// possible. Ambiguity is reported through Candidates and Issues, not as an
// error.
func (c *Client) ResolveTrainStation(ctx context.Context, q TrainStationQuery) (TrainResolution, error) {
	candidates, err := c.SearchTrainStations(ctx, TrainStationQuery{
		Query:   q.Query,
		Line:    q.Line,
		RamalID: q.RamalID,
		Limit:   resolveCandidateLimit,
	})
	if err != nil {
		return TrainResolution{}, err
	}

	if len(candidates) == 0 {
		issues := []string{fmt.Sprintf("No se encontró ninguna estación que coincida con %q.", q.Query)}
		if q.Line != "" {
			issues = append(issues, fmt.Sprintf("Filtro aplicado: línea %s.", q.Line))
		}
		if q.RamalID != 0 {
			issues = append(issues, fmt.Sprintf("Filtro aplicado: ramalId %d.", q.RamalID))
		}
		return TrainResolution{Candidates: []TrainStationCandidate{}, Issues: issues}, nil
	}

	if len(candidates) == 1 {
		return TrainResolution{Station: &candidates[0], Candidates: candidates}, nil
	}

	// Prefer a unique exact match over substring matches.
	normalizedQuery := utils.NormalizeStation(q.Query)
	var exact []*TrainStationCandidate
	for i := range candidates {
		if utils.NormalizeStation(candidates[i].StationName) == normalizedQuery {
			exact = append(exact, &candidates[i])
		}
	}
	if len(exact) == 1 {
		return TrainResolution{Station: exact[0], Candidates: candidates}, nil
	}

	return TrainResolution{
		Candidates: candidates,
		Issues: []string{
			fmt.Sprintf("La estación %q es ambigua. Coincide con múltiples estaciones.", q.Query),
			"Por favor use stationId (recomendado) o refine con line y/o ramalId.",
		},
	}, nil
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func intersects(a, b []int) bool {
	for _, v := range a {
		if containsInt(b, v) {
			return true
		}
	}
	return false
}
