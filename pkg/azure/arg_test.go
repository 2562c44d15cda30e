package azure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncated(t *testing.T) {
	testCases := []struct {
		name     string
		returned int
		total    int64
		expected bool
	}{
		{name: "small result set", returned: 12, total: 12, expected: false},
		{name: "empty result set", returned: 0, total: 0, expected: false},
		{name: "exactly at the cap", returned: MaxRows, total: MaxRows, expected: true},
		{name: "service reports more records than returned", returned: 4000, total: 7500, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Truncated(tc.returned, tc.total))
		})
	}
}

func TestObjectArray(t *testing.T) {
	t.Run("nil data", func(t *testing.T) {
		rows, err := objectArray(nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("object array data", func(t *testing.T) {
		rows, err := objectArray([]any{
			map[string]any{"vmId": "vm1"},
			map[string]any{"vmId": "vm2"},
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "vm1", rows[0]["vmId"])
	})

	t.Run("unexpected shape", func(t *testing.T) {
		_, err := objectArray("not-an-array")
		assert.Error(t, err)

		_, err = objectArray([]any{"not-a-map"})
		assert.Error(t, err)
	})
}
