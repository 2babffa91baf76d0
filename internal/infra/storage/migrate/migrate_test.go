package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_SortedAndEmbedded(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)

	require.NotEmpty(t, names)
	assert.Equal(t, "0001_seat_bookings.sql", names[0])
	assert.IsIncreasing(t, names)

	body, err := files.ReadFile(names[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS seat_bookings")
}
