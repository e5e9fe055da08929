package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := New("gameframe")

	r.Row("Game", OutcomeMerged)
	r.Row("Game", OutcomeMerged)
	r.Row("Game", OutcomeSkipped)
	r.Deleted("Tweet", 3)
	r.Deleted("Tweet", 0)
	r.Since("merge-games", time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(r.rows.WithLabelValues("Game", OutcomeMerged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rows.WithLabelValues("Game", OutcomeSkipped)))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.deleted.WithLabelValues("Tweet")))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Row("Game", OutcomeMerged)
		r.Deleted("Game", 1)
		r.Since("merge-games", time.Now())
		assert.NoError(t, r.WriteTextfile("ignored.prom"))
	})
}

func TestWriteTextfile(t *testing.T) {
	r := New("gameframe")
	r.Row("Article", OutcomeRejected)

	path := filepath.Join(t.TempDir(), "gameframe.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gameframe_rows_total{kind="Article",outcome="rejected"} 1`)

	assert.NoError(t, r.WriteTextfile(""))
}
