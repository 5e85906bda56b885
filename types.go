package batransit

import (
	"time"
)

// Line identifies a transit line, Subte or train.
type Line string

// Subte lines, Premetro included.
const (
	LineA        Line = "A"
	LineB        Line = "B"
	LineC        Line = "C"
	LineD        Line = "D"
	LineE        Line = "E"
	LineH        Line = "H"
	LinePremetro Line = "Premetro"
)

// Metropolitan train lines.
const (
	LineMitre         Line = "Mitre"
	LineSarmiento     Line = "Sarmiento"
	LineRoca          Line = "Roca"
	LineSanMartin     Line = "San Martín"
	LineBelgranoSur   Line = "Belgrano Sur"
	LineBelgranoNorte Line = "Belgrano Norte"
	LineTrenDeLaCosta Line = "Tren de la Costa"
)

// SubteLines enumerates the Subte network in canonical order.
var SubteLines = []Line{LineA, LineB, LineC, LineD, LineE, LineH, LinePremetro}

// TrainLines enumerates the train network in canonical order.
var TrainLines = []Line{
	LineMitre,
	LineSarmiento,
	LineRoca,
	LineSanMartin,
	LineBelgranoSur,
	LineBelgranoNorte,
	LineTrenDeLaCosta,
}

// IsSubte reports whether l is a Subte line.
func (l Line) IsSubte() bool {
	for _, s := range SubteLines {
		if l == s {
			return true
		}
	}
	return false
}

// IsTrain reports whether l is a train line.
func (l Line) IsTrain() bool {
	for _, t := range TrainLines {
		if l == t {
			return true
		}
	}
	return false
}

// Type distinguishes the two transit systems.
type Type string

const (
	TypeSubte Type = "subte"
	TypeTrain Type = "train"
)

// Station is a resolved station reference. Identity is (ID, Type): Subte ids
// come from the static directory, train ids are numeric provider ids.
type Station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Line Line   `json:"line"`
	Type Type   `json:"type"`
}

// Arrival is one predicted arrival, already filtered to the future and
// annotated with the minutes remaining. Train arrivals additionally carry
// branch and platform detail.
type Arrival struct {
	Station      Station   `json:"station"`
	Destination  string    `json:"destination"`
	ArrivalTime  time.Time `json:"arrivalTime"`
	DelaySeconds int       `json:"delaySeconds"`
	MinutesAway  int       `json:"minutesAway"`
	TripID       string    `json:"tripId"`

	RamalID        int    `json:"ramalId,omitempty"`
	RamalName      string `json:"ramalName,omitempty"`
	Platform       string `json:"platform,omitempty"`
	ProviderStatus string `json:"providerStatus,omitempty"`
	InTransit      bool   `json:"inTransit,omitempty"`
}

// AlertSeverity buckets provider criticality.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// ServiceAlert is a single alert attached to a line or branch.
type ServiceAlert struct {
	Line        Line          `json:"line"`
	Type        Type          `json:"type"`
	Severity    AlertSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartTime   string        `json:"startTime,omitempty"`
	EndTime     string        `json:"endTime,omitempty"`
}

// RamalStatus is the per-branch breakdown of a train line's status.
type RamalStatus struct {
	RamalID       int            `json:"ramalId"`
	RamalName     string         `json:"ramalName"`
	IsOperational bool           `json:"isOperational"`
	Alerts        []ServiceAlert `json:"alerts"`
}

// LineStatus is the service status of one line. A line with no alerts is
// still reported, operational, with an empty alert list.
type LineStatus struct {
	Line          Line           `json:"line"`
	Type          Type           `json:"type"`
	IsOperational bool           `json:"isOperational"`
	Alerts        []ServiceAlert `json:"alerts"`
	Ramales       []RamalStatus  `json:"ramales,omitempty"`
}

// TrainLineInfo describes one train line (gerencia) for discovery.
type TrainLineInfo struct {
	LineID        int    `json:"lineId"`
	Line          Line   `json:"line"`
	StatusMessage string `json:"statusMessage"`
	IsOperational bool   `json:"isOperational"`
	AlertsCount   int    `json:"alertsCount"`
}

// TrainRamalInfo describes one branch of a train line for discovery.
type TrainRamalInfo struct {
	RamalID         int    `json:"ramalId"`
	RamalName       string `json:"ramalName"`
	LineID          int    `json:"lineId"`
	Line            Line   `json:"line"`
	CabeceraInicial string `json:"cabeceraInicial"`
	CabeceraFinal   string `json:"cabeceraFinal"`
	IsOperational   bool   `json:"isOperational"`
	AlertsCount     int    `json:"alertsCount"`
}

// TrainStationCandidate is a train station match from search or resolution,
// with its branch memberships and the lines inferred from them.
type TrainStationCandidate struct {
	StationID   int    `json:"stationId"`
	StationName string `json:"stationName"`
	RamalIDs    []int  `json:"ramalIds"`
	Lines       []Line `json:"lines"`
}

// TrainResolution is the outcome of resolving a train station query.
// Ambiguity is a normal result: Station nil, Candidates populated, Issues
// explaining how to disambiguate.
type TrainResolution struct {
	Station    *TrainStationCandidate  `json:"station,omitempty"`
	Candidates []TrainStationCandidate `json:"candidates"`
	Issues     []string                `json:"issues"`
}

// ArrivalsQuery selects arrivals for a station query. An empty Line searches
// both systems; Limit defaults to 5.
type ArrivalsQuery struct {
	Station   string
	Line      Line
	Direction string
	Limit     int
}

// StatusQuery selects line statuses. Zero values mean "all".
type StatusQuery struct {
	Line Line
	Type Type
}

// TrainStationQuery narrows a train station search or resolution.
type TrainStationQuery struct {
	Query   string
	Line    Line
	RamalID int
	Limit   int
}

// TrainArrivalsQuery fetches arrivals for a known numeric station id.
type TrainArrivalsQuery struct {
	StationID int
	Line      Line
	RamalID   int
	Direction string
	Limit     int
}

// TrainStatusQuery selects train line statuses, optionally expanded per
// branch.
type TrainStatusQuery struct {
	Line           Line
	IncludeRamales bool
}

// RamalListQuery selects the branches of one line, by name or gerencia id.
type RamalListQuery struct {
	Line   Line
	LineID int
}
