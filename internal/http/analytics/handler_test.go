package analytics

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsParam(t *testing.T) {
	t.Run("DefaultWhenAbsent", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/chart", nil)

		months, err := monthsParam(r, 6)
		require.NoError(t, err)
		assert.Equal(t, 6, months)
	})

	t.Run("ValidValue", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/chart?months=12", nil)

		months, err := monthsParam(r, 6)
		require.NoError(t, err)
		assert.Equal(t, 12, months)
	})

	t.Run("RejectsOutOfBounds", func(t *testing.T) {
		for _, q := range []string{"months=0", "months=-3", "months=121", "months=abc"} {
			r := httptest.NewRequest("GET", "/chart?"+q, nil)

			_, err := monthsParam(r, 6)
			require.Error(t, err, q)
			assert.Contains(t, err.Error(), "months must be a whole number between 1 and 120")
		}
	})
}
