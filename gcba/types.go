package gcba

// SubteForecastResponse is the Subte real-time forecast payload
// (/subtes/forecastGTFS). Field casing follows the upstream feed, which mixes
// conventions.
type SubteForecastResponse struct {
	Header struct {
		Timestamp int64 `json:"timestamp"`
	} `json:"Header"`
	Entity []ForecastEntity `json:"Entity"`
}

// ForecastEntity is one monitored trip in the forecast feed.
type ForecastEntity struct {
	ID    string       `json:"ID"`
	Linea ForecastTrip `json:"Linea"`
}

// ForecastTrip carries the trip descriptor and per-station predictions.
type ForecastTrip struct {
	TripID      string             `json:"Trip_Id"`
	RouteID     string             `json:"Route_Id"`
	DirectionID int                `json:"Direction_ID"`
	StartTime   string             `json:"start_time"`
	StartDate   string             `json:"start_date"`
	Estaciones  []ForecastStopTime `json:"Estaciones"`
}

// ForecastStopTime is the prediction for a single station on a trip. Times
// are epoch seconds; delays are seconds.
type ForecastStopTime struct {
	StopID    string        `json:"stop_id"`
	StopName  string        `json:"stop_name"`
	Arrival   ForecastEvent `json:"arrival"`
	Departure ForecastEvent `json:"departure"`
}

// ForecastEvent is an arrival or departure prediction.
type ForecastEvent struct {
	Time  int64 `json:"time"`
	Delay int   `json:"delay"`
}
