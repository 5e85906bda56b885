package batransit

import "github.com/baires-transit/batransit/sofse"

// subteRouteMap translates GTFS route ids from the GCBA feeds to line names.
var subteRouteMap = map[string]Line{
	"LineaA":   LineA,
	"LineaB":   LineB,
	"LineaC":   LineC,
	"LineaD":   LineD,
	"LineaE":   LineE,
	"LineaH":   LineH,
	"Premetro": LinePremetro,
}

// lineDirections maps direction_id 0 and 1 to the terminal station reached in
// that direction. The Subte feeds carry no headsign, so this stands in for
// full GTFS static data.
var lineDirections = map[Line][2]string{
	LineA:             {"Plaza de Mayo", "San Pedrito"},
	LineB:             {"L.N. Alem", "J.M. de Rosas"},
	LineC:             {"Constitución", "Retiro"},
	LineD:             {"Catedral", "Congreso de Tucumán"},
	LineE:             {"Bolívar", "Plaza de los Virreyes"},
	LineH:             {"Hospitales", "Las Heras"},
	LinePremetro:      {"Intendente Saguier", "Centro Cívico"},
	LineMitre:         {"Retiro", "Tigre/Suárez/Mitre"},
	LineSarmiento:     {"Once", "Moreno"},
	LineRoca:          {"Constitución", "La Plata/Bosques/Korn"},
	LineSanMartin:     {"Retiro", "Pilar"},
	LineBelgranoSur:   {"Buenos Aires", "Marinos del Fournier"},
	LineBelgranoNorte: {"Retiro", "Villa Rosa"},
	LineTrenDeLaCosta: {"Maipú", "Delta"},
}

func directionName(directionID int, line Line) string {
	dirs, ok := lineDirections[line]
	if !ok {
		dirs = [2]string{"Terminal A", "Terminal B"}
	}
	if directionID == 0 {
		return dirs[0]
	}
	return dirs[1]
}

// trainLineForGerencia maps a SOFSE gerencia id to its line, rejecting
// gerencias outside the metropolitan network (Regionales).
func trainLineForGerencia(gerenciaID int) (Line, bool) {
	name, ok := sofse.LineNameByGerencia[gerenciaID]
	if !ok {
		return "", false
	}
	line := Line(name)
	if !line.IsTrain() {
		return "", false
	}
	return line, true
}

func severityForCriticality(order int) AlertSeverity {
	switch {
	case order <= 2:
		return SeverityCritical
	case order <= 3:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
