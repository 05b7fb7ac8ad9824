package idx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskapi/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.False(t, id.IsZero())
	require.True(t, idx.Valid(id.String()))
}

func TestParseCanonicalisesCase(t *testing.T) {
	id := idx.New()
	lower := strings.ToLower(id.String())
	require.NotEqual(t, id.String(), lower)

	parsed, err := idx.Parse(lower)
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"too short":        "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z",
		"mongo object id":  "507f1f77bcf86cd799439011",
		"invalid chars":    "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZU!",
		"padded":           " 01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		"overflowing time": "81HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := idx.Parse(in)
			require.ErrorIs(t, err, idx.ErrInvalid)
			require.False(t, idx.Valid(in))
		})
	}
}

func TestOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	require.Less(t, a.String(), b.String())
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)

	require.WithinDuration(t, tm, id.Time(), time.Millisecond)
	require.True(t, idx.Zero.Time().IsZero())
}

func TestMustParse(t *testing.T) {
	require.NotPanics(t, func() { _ = idx.MustParse("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV") })
	require.Panics(t, func() { _ = idx.MustParse("nope") })
}
