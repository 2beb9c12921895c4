//go:build unit

package errs_test

import (
	"testing"

	"fleetops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestExtractStackLines(t *testing.T) {
	t.Run("nil error yields nothing", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 10))
	})

	t.Run("truncates to the requested number of lines", func(t *testing.T) {
		err := errs.Wrap(errs.New("root cause"), "outer context")

		lines := errs.ExtractStackLines(err, 3)

		assert.Len(t, lines, 3)
		assert.Contains(t, lines[0], "outer context")
	})

	t.Run("zero max keeps the full trace", func(t *testing.T) {
		err := errs.New("root cause")

		lines := errs.ExtractStackLines(err, 0)

		assert.Greater(t, len(lines), 1)
	})
}
