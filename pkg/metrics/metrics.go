package metrics

// DefaultBuckets are the shared latency histogram buckets, in seconds. The
// upper buckets accommodate enrichment runs, which wait on SMTP and search
// round trips and regularly take tens of seconds.
var DefaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals
