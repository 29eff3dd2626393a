package credstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRecord(t *testing.T) {
	line := FormatRecord(Record{Email: "Ada@Example.COM", Name: "Lovelace, Ada", PasswordHash: "$2a$10$abc"})
	assert.Equal(t, "ada@example.com,Lovelace  Ada,$2a$10$abc\n", line)
}

func TestFormatRecordStripsLineBreaks(t *testing.T) {
	line := FormatRecord(Record{Email: "a@b.c", Name: "Ada\nevil@x.y,Evil,hash", PasswordHash: "h"})
	assert.Equal(t, "a@b.c,Ada evil@x.y Evil hash,h\n", line)
}

func TestParseRecords(t *testing.T) {
	data := []byte(
		"ada@example.com,Ada,h1\n" +
			"\n" +
			"   \n" +
			"broken-line\n" +
			"no-hash@example.com,Nohash\n" +
			",Anonymous,h2\n" +
			"empty-hash@example.com,Empty,\n" +
			"  Grace@Example.com,Grace,h3,trailing  \r\n" +
			"noname@example.com,,h4",
	)

	users, err := ParseRecords(data)
	require.NoError(t, err)

	assert.Len(t, users, 3)
	assert.Equal(t, Record{Email: "ada@example.com", Name: "Ada", PasswordHash: "h1"}, users["ada@example.com"])
	assert.Equal(t, Record{Email: "grace@example.com", Name: "Grace", PasswordHash: "h3"}, users["grace@example.com"])
	assert.Equal(t, "", users["noname@example.com"].Name)
}

func TestParseRecordsLastOccurrenceWins(t *testing.T) {
	users, err := ParseRecords([]byte("a@b.c,First,h1\nA@B.C,Second,h2\n"))
	require.NoError(t, err)

	require.Len(t, users, 1)
	assert.Equal(t, "Second", users["a@b.c"].Name)
	assert.Equal(t, "h2", users["a@b.c"].PasswordHash)
}

func TestParseRecordsEmpty(t *testing.T) {
	users, err := ParseRecords(nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFormatThenParse(t *testing.T) {
	rec := Record{Email: "X@Y.Z", Name: "Smith, John", PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"}

	users, err := ParseRecords([]byte(FormatRecord(rec)))
	require.NoError(t, err)

	got, ok := users["x@y.z"]
	require.True(t, ok)
	assert.Equal(t, "Smith  John", got.Name)
	assert.Equal(t, rec.PasswordHash, got.PasswordHash)
}

func TestParseRecordsVeryLongLine(t *testing.T) {
	longName := strings.Repeat("x", 1<<20)
	data := "ada@example.com,Ada,h1\n" +
		FormatRecord(Record{Email: "long@example.com", Name: longName, PasswordHash: "h2"}) +
		"grace@example.com,Grace,h3\n"

	users, err := ParseRecords([]byte(data))
	require.NoError(t, err)

	require.Len(t, users, 3)
	assert.Equal(t, "Ada", users["ada@example.com"].Name)
	assert.Equal(t, longName, users["long@example.com"].Name)
	assert.Equal(t, "Grace", users["grace@example.com"].Name)
}
