package batransit

import (
	"context"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

func parseSubteStatus(feed *gtfs.FeedMessage, filterLine Line) []LineStatus {
	statusByLine := make(map[Line]*LineStatus)
	var order []Line
	for _, line := range SubteLines {
		if filterLine != "" && line != filterLine {
			continue
		}
		statusByLine[line] = &LineStatus{
			Line:          line,
			Type:          TypeSubte,
			IsOperational: true,
			Alerts:        []ServiceAlert{},
		}
		order = append(order, line)
	}

	for _, entity := range feed.GetEntity() {
		alert := entity.GetAlert()
		if alert == nil {
			continue
		}

		for _, informed := range alert.GetInformedEntity() {
			routeID := informed.GetRouteId()
			if routeID == "" {
				continue
			}
			line, ok := subteRouteMap[routeID]
			if !ok {
				continue
			}
			status, ok := statusByLine[line]
			if !ok {
				continue
			}

			title := spanishTranslation(alert.GetHeaderText())
			if title == "" {
				title = "Alerta de servicio"
			}
			description := spanishTranslation(alert.GetDescriptionText())

			status.Alerts = append(status.Alerts, ServiceAlert{
				Line:        line,
				Type:        TypeSubte,
				Severity:    SeverityWarning,
				Title:       title,
				Description: description,
			})
		}
	}

	statuses := make([]LineStatus, 0, len(order))
	for _, line := range order {
		statuses = append(statuses, *statusByLine[line])
	}
	return statuses
}

func spanishTranslation(text *gtfs.TranslatedString) string {
	for _, t := range text.GetTranslation() {
		if t.GetLanguage() == "es" {
			return t.GetText()
		}
	}
	return ""
}

// GetTrainStatus returns the status of train lines, optionally with the
// per-branch breakdown.
func (c *Client) GetTrainStatus(ctx context.Context, q TrainStatusQuery) ([]LineStatus, error) {
	return c.trainStatus(ctx, q.Line, q.IncludeRamales)
}

func (c *Client) trainStatus(ctx context.Context, filterLine Line, includeRamales bool) ([]LineStatus, error) {
	gerencias, err := c.sofse.Gerencias(ctx)
	if err != nil {
		return nil, err
	}

	var statuses []LineStatus
	for _, g := range gerencias {
		line, ok := trainLineForGerencia(g.ID)
		if !ok {
			continue
		}
		if filterLine != "" && line != filterLine {
			continue
		}

		alerts := make([]ServiceAlert, 0, len(g.Alerta))
		for _, a := range g.Alerta {
			endTime := ""
			if a.VigenciaHasta != nil {
				endTime = *a.VigenciaHasta
			}
			alerts = append(alerts, ServiceAlert{
				Line:        line,
				Type:        TypeTrain,
				Severity:    severityForCriticality(a.CriticidadOrden),
				Title:       g.Estado.Mensaje,
				Description: a.Contenido,
				StartTime:   a.VigenciaDesde,
				EndTime:     endTime,
			})
		}

		status := LineStatus{
			Line:          line,
			Type:          TypeTrain,
			IsOperational: g.Estado.ID != 1,
			Alerts:        alerts,
		}

		if includeRamales {
			ramales, err := c.ramalStatuses(ctx, g.ID, line)
			if err != nil {
				return nil, err
			}
			status.Ramales = ramales
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}

func (c *Client) ramalStatuses(ctx context.Context, gerenciaID int, line Line) ([]RamalStatus, error) {
	ramales, err := c.sofse.Ramales(ctx, gerenciaID)
	if err != nil {
		return nil, err
	}

	statuses := make([]RamalStatus, 0, len(ramales))
	for _, r := range ramales {
		alerts := make([]ServiceAlert, 0, len(r.Alerta))
		for _, a := range r.Alerta {
			endTime := ""
			if a.VigenciaHasta != nil {
				endTime = *a.VigenciaHasta
			}
			alerts = append(alerts, ServiceAlert{
				Line:        line,
				Type:        TypeTrain,
				Severity:    severityForCriticality(a.CriticidadOrden),
				Title:       r.Nombre,
				Description: a.Contenido,
				StartTime:   a.VigenciaDesde,
				EndTime:     endTime,
			})
		}
		statuses = append(statuses, RamalStatus{
			RamalID:       r.ID,
			RamalName:     r.Nombre,
			IsOperational: r.Operativo == 1,
			Alerts:        alerts,
		})
	}
	return statuses, nil
}
