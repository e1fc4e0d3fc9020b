package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSelection(t *testing.T) {
	before := testutil.ToFloat64(SelectionOutcomes.WithLabelValues("fresh", "stored"))
	RecordSelection("fresh", "stored")
	RecordSelection("fresh", "stored")
	after := testutil.ToFloat64(SelectionOutcomes.WithLabelValues("fresh", "stored"))

	assert.Equal(t, before+2, after)
}

func TestRecordGenerationAttempt(t *testing.T) {
	tests := []string{"accepted", "duplicate_key", "low_confidence", "empty"}

	for _, verdict := range tests {
		t.Run(verdict, func(t *testing.T) {
			before := testutil.ToFloat64(GenerationAttempts.WithLabelValues(verdict))
			RecordGenerationAttempt(verdict)
			assert.Equal(t, before+1, testutil.ToFloat64(GenerationAttempts.WithLabelValues(verdict)))
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/funfact", "200"))
	RecordAPIRequest("GET", "/api/funfact", "200", 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/funfact", "200")))

	// Histograms cannot be read with ToFloat64, only counted.
	assert.Positive(t, testutil.CollectAndCount(APIRequestDuration))
}

func TestRecordRateLimitHit(t *testing.T) {
	before := testutil.ToFloat64(APIRateLimitHits.WithLabelValues("/api/funfact"))
	RecordRateLimitHit("/api/funfact")
	assert.Equal(t, before+1, testutil.ToFloat64(APIRateLimitHits.WithLabelValues("/api/funfact")))
}
