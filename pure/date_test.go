package pure_test

import (
	"strings"
	"testing"
	"time"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := pure.ParseDate("12/31/2021")
	require.NoError(t, err)
	assert.Equal(t, 2021, d.Year())
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 31, d.Day())
}

func TestParseDate_AcceptsValidInputs(t *testing.T) {
	for _, s := range []string{
		"02/29/2000", "02/29/2024", "02/29/2400", // leap years
		"01/01/2021", "09/09/2021", "03/04/0001", // leading zeros
		"01/01/2021 ", " 01/01/2021", "01/01/2021   ", "\t12/31/9999\n", // whitespace
		"1/2/2021",
	} {
		_, err := pure.ParseDate(s)
		assert.NoError(t, err, s)
	}
}

func TestParseDate_AcceptsUnpaddedYears(t *testing.T) {
	tests := map[string]int{
		"01/01/1":   1,
		"12/31/999": 999,
		"06/15/42":  42,
		"02/29/4":   4,
	}
	for s, year := range tests {
		d, err := pure.ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, year, d.Year(), s)
	}
}

func TestParseDate_RejectsInvalidCalendarDates(t *testing.T) {
	for _, s := range []string{
		"13/31/2021", "12/32/2021", "12/00/2021", "00/31/2021",
		"02/29/1900", "02/29/2021", "02/29/2100", "04/31/2021",
		"01/01/0000", "01/01/0", "02/29/1",
	} {
		_, err := pure.ParseDate(s)
		assert.ErrorIs(t, err, pure.ErrInvalidDate, s)
	}
}

func TestParseDate_RejectsMalformedInput(t *testing.T) {
	for _, s := range []string{
		"", "hello", "123/abc/456", "12-31-2021",
		"01/01/10000", "01/01/-100", "01/01/2021111111",
		"01/2021", "01/", "/2021", "01", "2021",
		"01/01/2021/extra", "01/01/2021 extra", "01/01/2021/",
		"2021/12/31", "2021-12-31", "31-12-2021",
		strings.Repeat("x", 2000),
	} {
		_, err := pure.ParseDate(s)
		assert.ErrorIs(t, err, pure.ErrMalformedDate, s)
	}
}

func TestParseDate_DayFirstIsNotAccepted(t *testing.T) {
	_, err := pure.ParseDate("31/12/2021")
	assert.Error(t, err)
}
