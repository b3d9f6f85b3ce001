package schedule

import (
	"sort"
	"strings"

	"odontocarol/models"
)

// weekdayIndex maps normalized Spanish day names to weekday indices
// (Sunday=0), matching the backend's dias_laborales contract.
var weekdayIndex = map[string]int{
	"domingo":   0,
	"lunes":     1,
	"martes":    2,
	"miercoles": 3,
	"jueves":    4,
	"viernes":   5,
	"sabado":    6,
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
)

// ParseWorkDays converts localized weekday names into a WorkDaySet. Casing
// and accents are tolerated; unknown names are skipped.
func ParseWorkDays(names []string) models.WorkDaySet {
	seen := make(map[int]bool, len(names))
	for _, name := range names {
		key := accentReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
		if idx, ok := weekdayIndex[key]; ok {
			seen[idx] = true
		}
	}

	set := make(models.WorkDaySet, 0, len(seen))
	for idx := range seen {
		set = append(set, idx)
	}
	sort.Ints(set)
	return set
}
