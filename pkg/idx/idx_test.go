package idx_test

import (
	"testing"
	"time"

	"github.com/openrbac/rbac-admin/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseInvalid(t *testing.T) {
	_, err := idx.Parse("definitely-not-a-ulid")
	require.ErrorIs(t, err, idx.ErrInvalid)
}

func TestZero(t *testing.T) {
	require.True(t, idx.Zero.IsZero())
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)

	// ULIDs carry millisecond timestamps
	require.WithinDuration(t, tm, id.Time(), time.Millisecond)
}
