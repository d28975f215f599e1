package metadata

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Sort keys with dedicated comparison semantics. Any other key, including
// the default "timestamp", compares the raw field value as an opaque string.
const (
	SortByFitScore   = "fit_score"
	SortByPersonName = "person_name"
	SortByTimestamp  = "timestamp"
)

// SortOrder selects ascending or descending listing order.
type SortOrder string

// Supported sort orders.
const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// AllRolesFilter is the sentinel role filter that disables filtering.
const AllRolesFilter = "All Roles"

// scorePattern matches the first decimal number in a fit-score string, so
// both "7.5/10" and "Score: 7.5/10" parse to 7.5.
var scorePattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Query filters entries by role and sorts them by sortKey.
//
// The sort is stable: entries with equal keys keep their relative store
// order. Descending order reverses the entire stably-sorted sequence rather
// than inverting the comparator, which matters when ties and direction
// interact. The input slice is not modified.
func Query(entries []Entry, roleFilter, sortKey string, order SortOrder) []Entry {
	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if roleFilter != "" && roleFilter != AllRolesFilter && e.JDRole != roleFilter {
			continue
		}
		result = append(result, e)
	}

	switch sortKey {
	case SortByFitScore:
		sort.SliceStable(result, func(i, j int) bool {
			return FitScoreValue(result[i].FitScore) < FitScoreValue(result[j].FitScore)
		})
	case SortByPersonName:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].PersonName) < strings.ToLower(result[j].PersonName)
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].field(sortKey) < result[j].field(sortKey)
		})
	}

	if order == Descending {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	return result
}

// FitScoreValue extracts the numeric score from an opaque fit-score string.
// Unparsable values sort as 0.
func FitScoreValue(fitScore string) float64 {
	match := scorePattern.FindString(fitScore)
	if match == "" {
		return 0.0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0.0
	}
	return value
}

// field returns the raw string value of a sortable field; unknown fields
// compare as empty strings.
func (e Entry) field(key string) string {
	switch key {
	case SortByTimestamp:
		return e.Timestamp
	case "id":
		return e.ID
	case "jd_role":
		return e.JDRole
	case "resume_filename":
		return e.ResumeFilename
	case "qa_filename":
		return e.QAFilename
	case SortByFitScore:
		return e.FitScore
	case SortByPersonName:
		return e.PersonName
	default:
		return ""
	}
}
