package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-15", "15/03/2024", "2024-03-15T00:00:00Z", " 2024-03-15 00:00:00 "} {
		d, err := Parse(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(d.Time), in)
	}

	// offset dinormalisasi ke UTC
	d, err := Parse("2024-03-15T07:00:00+07:00")
	require.NoError(t, err)
	assert.True(t, want.Equal(d.Time))
	assert.Equal(t, time.UTC, d.Location())

	for _, bad := range []string{"", "yesterday", "2024-13-40"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePtrAndEndOfDay(t *testing.T) {
	p, err := ParsePtr("  ")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = ParsePtr("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, p)

	end := EndOfDay(*p)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 15, end.Day())

	withTime := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, withTime, EndOfDay(withTime))

	_, err = ParsePtr("nope")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	var body struct {
		Date  Date  `json:"date"`
		Empty Date  `json:"empty"`
		Ptr   *Date `json:"ptr"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-15","empty":"","ptr":null}`), &body))
	assert.Equal(t, 2024, body.Date.Year())
	assert.True(t, body.Empty.IsZero())
	assert.Nil(t, body.Ptr.Ptr())
	assert.NotNil(t, body.Date.Ptr())

	out, err := json.Marshal(body.Date)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-15T00:00:00Z"`, string(out))

	out, err = json.Marshal(body.Empty)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"soon"}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"date":42}`), &body))
}
