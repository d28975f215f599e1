package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryFixture() []Entry {
	return []Entry{
		{ID: "1", PersonName: "alice", JDRole: "Software Engineer", FitScore: "Score: 8/10", Timestamp: "2026-08-01T10:00:00"},
		{ID: "2", PersonName: "Bob", JDRole: "Data Scientist", FitScore: "7.5/10", Timestamp: "2026-08-03T10:00:00"},
		{ID: "3", PersonName: "carol", JDRole: "Software Engineer", FitScore: "N/A", Timestamp: "2026-08-02T10:00:00"},
	}
}

// TestQuery_RoleFilter tests role filtering including the disable sentinels
func TestQuery_RoleFilter(t *testing.T) {
	entries := queryFixture()

	filtered := Query(entries, "Software Engineer", SortByTimestamp, Ascending)
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "3", filtered[1].ID)

	assert.Len(t, Query(entries, "", SortByTimestamp, Ascending), 3)
	assert.Len(t, Query(entries, AllRolesFilter, SortByTimestamp, Ascending), 3)
	assert.Empty(t, Query(entries, "Astronaut", SortByTimestamp, Ascending))
}

// TestQuery_SortByTimestamp tests the default string ordering
func TestQuery_SortByTimestamp(t *testing.T) {
	asc := Query(queryFixture(), "", SortByTimestamp, Ascending)
	assert.Equal(t, []string{"1", "3", "2"}, ids(asc))

	desc := Query(queryFixture(), "", SortByTimestamp, Descending)
	assert.Equal(t, []string{"2", "3", "1"}, ids(desc))
}

// TestQuery_SortByFitScore tests numeric extraction ordering, with
// unparsable scores sorting as zero
func TestQuery_SortByFitScore(t *testing.T) {
	asc := Query(queryFixture(), "", SortByFitScore, Ascending)
	assert.Equal(t, []string{"3", "2", "1"}, ids(asc))
}

// TestQuery_SortByPersonName tests case-insensitive name ordering
func TestQuery_SortByPersonName(t *testing.T) {
	asc := Query(queryFixture(), "", SortByPersonName, Ascending)
	assert.Equal(t, []string{"1", "2", "3"}, ids(asc))
}

// TestQuery_StableTiesAndDescending tests that equal keys keep store order
// ascending, and that descending reverses the whole sequence
func TestQuery_StableTiesAndDescending(t *testing.T) {
	entries := []Entry{
		{ID: "1", FitScore: "5/10"},
		{ID: "2", FitScore: "5/10"},
		{ID: "3", FitScore: "5/10"},
	}

	asc := Query(entries, "", SortByFitScore, Ascending)
	assert.Equal(t, []string{"1", "2", "3"}, ids(asc))

	desc := Query(entries, "", SortByFitScore, Descending)
	assert.Equal(t, []string{"3", "2", "1"}, ids(desc))
}

// TestQuery_InputNotModified tests that the caller's slice keeps its order
func TestQuery_InputNotModified(t *testing.T) {
	entries := queryFixture()
	Query(entries, "", SortByFitScore, Descending)
	assert.Equal(t, []string{"1", "2", "3"}, ids(entries))
}

// TestFitScoreValue tests numeric extraction from opaque score strings
func TestFitScoreValue(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"7.5/10", 7.5},
		{"Score: 7.5/10", 7.5},
		{"Score: 8/10 - strong fit", 8},
		{"10/10", 10},
		{"", 0},
		{"N/A", 0},
		{"no numbers here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FitScoreValue(tt.input))
		})
	}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
