package subte

import (
	"fmt"
	"strings"

	"github.com/baires-transit/batransit/utils"
)

// Resolution is the outcome of resolving a station query. Ambiguity is not an
// error: Station is nil, Candidates lists every match and Issues explains how
// to disambiguate. Issues may also accompany a resolved station, e.g. after a
// line-mismatch correction.
type Resolution struct {
	Station    *Station
	Candidates []Station
	Issues     []string
}

// Resolve matches a free-text station query, optionally constrained to a
// line, against the static directory. Matching is normalized
// exact-or-substring over names and aliases with no ranking; ambiguity is
// surfaced to the caller rather than guessed.
func Resolve(rawStation, requestedLine string) Resolution {
	normalizedQuery := utils.NormalizeStation(rawStation)
	var issues []string

	var matches []Station
	for i, s := range Stations {
		key := normalizedKeys[i]
		if key.name == normalizedQuery || strings.Contains(key.name, normalizedQuery) {
			matches = append(matches, s)
			continue
		}
		for _, alias := range key.aliases {
			if alias == normalizedQuery || strings.Contains(alias, normalizedQuery) {
				matches = append(matches, s)
				break
			}
		}
	}

	if len(matches) == 0 {
		issues = append(issues, fmt.Sprintf("No se encontró ninguna estación que coincida con %q.", rawStation))
		return Resolution{Issues: issues}
	}

	candidates := matches
	if requestedLine != "" {
		var filtered []Station
		for _, m := range matches {
			if m.Line == requestedLine {
				filtered = append(filtered, m)
			}
		}

		if len(filtered) == 0 {
			// Station exists but not on the requested line.
			issues = append(issues, fmt.Sprintf(
				"La estación %q no existe en la línea %s. Está disponible en: %s.",
				rawStation, requestedLine, strings.Join(uniqueLines(matches), ", ")))

			if len(matches) == 1 {
				corrected := matches[0]
				issues = append(issues, fmt.Sprintf(
					"Usando la estación %q de la línea %s.", corrected.Name, corrected.Line))
				return Resolution{Station: &corrected, Candidates: matches, Issues: issues}
			}

			issues = append(issues, fmt.Sprintf(
				"Coincide con: %s. Por favor especifica la línea correcta.", describeCandidates(matches)))
			return Resolution{Candidates: matches, Issues: issues}
		}
		candidates = filtered
	}

	if len(candidates) == 1 {
		station := candidates[0]
		return Resolution{Station: &station, Candidates: candidates, Issues: issues}
	}

	// Same normalized name on several lines: a supplied line picks one.
	if requestedLine != "" && len(uniqueNormalizedNames(candidates)) == 1 {
		for _, c := range candidates {
			if c.Line == requestedLine {
				station := c
				return Resolution{Station: &station, Candidates: candidates, Issues: issues}
			}
		}
	}

	issues = append(issues, fmt.Sprintf(
		"La estación %q es ambigua. Coincide con: %s. Por favor especifica el nombre completo o la línea.",
		rawStation, describeCandidates(candidates)))
	return Resolution{Candidates: candidates, Issues: issues}
}

func uniqueLines(stations []Station) []string {
	seen := make(map[string]bool)
	var lines []string
	for _, s := range stations {
		if !seen[s.Line] {
			seen[s.Line] = true
			lines = append(lines, s.Line)
		}
	}
	return lines
}

func uniqueNormalizedNames(stations []Station) []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range stations {
		n := utils.NormalizeStation(s.Name)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

func describeCandidates(stations []Station) string {
	parts := make([]string, len(stations))
	for i, s := range stations {
		parts[i] = fmt.Sprintf("%q (línea %s)", s.Name, s.Line)
	}
	return strings.Join(parts, ", ")
}
