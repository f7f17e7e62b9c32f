//go:build unit

package refno_test

import (
	"regexp"
	"testing"
	"time"

	"hotel-core/internal/pkg/refno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator(t *testing.T) {
	gen, err := refno.NewGenerator(1)
	require.NoError(t, err)

	t.Run("booking numbers are unique and fit the column", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			n := gen.BookingNumber()
			assert.Regexp(t, `^BK-[0-9A-Z]+$`, n)
			assert.LessOrEqual(t, len(n), 20)
			_, dup := seen[n]
			require.False(t, dup, "duplicate booking number %s", n)
			seen[n] = struct{}{}
		}
	})

	t.Run("invoice number carries the issue date", func(t *testing.T) {
		n := gen.InvoiceNumber(time.Date(2025, 6, 9, 15, 0, 0, 0, time.UTC))
		assert.True(t, regexp.MustCompile(`^INV-20250609-[0-9A-F]{6}$`).MatchString(n), n)
	})

	t.Run("node id out of range is rejected", func(t *testing.T) {
		_, err := refno.NewGenerator(5000)
		assert.Error(t, err)
	})
}
