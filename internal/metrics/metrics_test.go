package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-passfield/pkg/strength"
)

func TestMetrics_CountsByStrength(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveClassification(strength.Weak)
	m.ObserveClassification(strength.Strong)
	m.ObserveClassification(strength.Strong)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Classifications.WithLabelValues("weak")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.Classifications.WithLabelValues("medium")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Classifications.WithLabelValues("strong")))
}

func TestMetrics_CountsRejections(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRejected("too_large")
	m.ObserveRejected("too_large")
	m.ObserveRejected("guard")

	require.Equal(t, 2.0, testutil.ToFloat64(m.Rejected.WithLabelValues("too_large")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Rejected.WithLabelValues("guard")))
}

func TestMetrics_PreinitialisesStrengthSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	count, err := testutil.GatherAndCount(reg, "passfield_classifications_total")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}
