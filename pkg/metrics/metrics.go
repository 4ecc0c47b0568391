package metrics

import "time"

// RecordInclusion records a single vertex-edge inclusion being added.
func (r *Registry) RecordInclusion(side, path string, duration time.Duration) {
	r.InclusionsTotal.WithLabelValues(side).Inc()
	r.InclusionDuration.WithLabelValues(path).Observe(duration.Seconds())
}

// RecordBufferFlush records a destination buffer drain.
func (r *Registry) RecordBufferFlush(side string, duration time.Duration) {
	r.BufferFlushesTotal.WithLabelValues(side).Inc()
	r.BufferFlushLatency.Observe(duration.Seconds())
}

// RecordBufferClosed records a rejected append into a full, undrained buffer.
func (r *Registry) RecordBufferClosed() {
	r.BufferClosedTotal.Inc()
}

// RecordWorkAdded records items being added to a locale's bag.
func (r *Registry) RecordWorkAdded(locale string, count int) {
	r.WorkItemsAddedTotal.WithLabelValues(locale).Add(float64(count))
}

// RecordWorkRemoved records items being removed from a locale's bag.
func (r *Registry) RecordWorkRemoved(locale string, count int) {
	r.WorkItemsRemovedTotal.WithLabelValues(locale).Add(float64(count))
}

// RecordRemoteAddWork records a cross-locale bulk add dispatch.
func (r *Registry) RecordRemoteAddWork(sourceLocale, destLocale string) {
	r.RemoteAddWorkTotal.WithLabelValues(sourceLocale, destLocale).Inc()
}

// RecordTerminationWait records a blocking call to TerminationDetector.Wait.
func (r *Registry) RecordTerminationWait(duration time.Duration) {
	r.TerminationWaitsTotal.Inc()
	r.TerminationWaitDuration.Observe(duration.Seconds())
}

// RecordGeneratorRun records a completed generator invocation.
func (r *Registry) RecordGeneratorRun(kind string, duration time.Duration, inclusions, duplicates int) {
	r.GeneratorRunsTotal.WithLabelValues(kind).Inc()
	r.GeneratorDuration.WithLabelValues(kind).Observe(duration.Seconds())
	r.GeneratorInclusionsMade.WithLabelValues(kind).Add(float64(inclusions))
	if duplicates > 0 {
		r.GeneratorDuplicatesDropped.WithLabelValues(kind).Add(float64(duplicates))
	}
}
