// Package location provides static continent/country/state/city reference
// lookups for the admin forms. It is pure and deterministic: the same input
// always yields the same output, and a missing entry yields an empty result,
// never an error.
package location

import (
	"sort"
	"strings"
)

// Country is one selectable country with its ISO 3166-1 alpha-2 code
type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// maxSearchResults caps substring search output
const maxSearchResults = 50

// Continents returns all known continent names, sorted alphabetically
func Continents() []string {
	names := make([]string, 0, len(continentCountries))
	for name := range continentCountries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CountriesForContinent returns the continent's countries sorted by name.
// Unknown continents yield an empty list. Matching is case-insensitive.
func CountriesForContinent(continent string) []Country {
	for name, countries := range continentCountries {
		if strings.EqualFold(name, continent) {
			out := make([]Country, len(countries))
			copy(out, countries)
			sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
			return out
		}
	}
	return []Country{}
}

// StatesForCountry returns the country's states sorted alphabetically,
// looked up by ISO code (case-insensitive)
func StatesForCountry(code string) []string {
	detail, ok := countryDetails[strings.ToUpper(code)]
	if !ok {
		return []string{}
	}
	out := make([]string, len(detail.States))
	copy(out, detail.States)
	sort.Strings(out)
	return out
}

// CitiesForCountry returns the country's cities sorted alphabetically,
// looked up by ISO code (case-insensitive)
func CitiesForCountry(code string) []string {
	detail, ok := countryDetails[strings.ToUpper(code)]
	if !ok {
		return []string{}
	}
	out := make([]string, len(detail.Cities))
	copy(out, detail.Cities)
	sort.Strings(out)
	return out
}

// ResolveCountryCode resolves a country name to its ISO code via
// case-insensitive exact match. The second return is false when no country
// with that name exists.
func ResolveCountryCode(name string) (string, bool) {
	for _, countries := range continentCountries {
		for _, c := range countries {
			if strings.EqualFold(c.Name, name) {
				return c.Code, true
			}
		}
	}
	return "", false
}

// SearchCountries returns at most 50 countries whose name or code contains
// the query, case-insensitive, sorted by name. A blank query matches nothing.
func SearchCountries(query string) []Country {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Country{}
	}

	var matches []Country
	for _, countries := range continentCountries {
		for _, c := range countries {
			if strings.Contains(strings.ToLower(c.Name), q) ||
				strings.Contains(strings.ToLower(c.Code), q) {
				matches = append(matches, c)
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	if matches == nil {
		matches = []Country{}
	}
	return matches
}
