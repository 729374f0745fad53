package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// fetchesTotal counts source fetch attempts, successful or not.
	fetchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobfeed_source_fetches_total",
		Help: "The total number of source fetch attempts.",
	})
	// sourceErrorsTotal counts sources that contributed zero records
	// because of a fetch or parse failure.
	sourceErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobfeed_source_errors_total",
		Help: "The total number of source fetch/parse failures.",
	})
	// jobsParsedTotal counts records extracted across all sources.
	jobsParsedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobfeed_jobs_parsed_total",
		Help: "The total number of job records parsed from sources.",
	})
	// jobsFilteredTotal counts records dropped by the beginner filter.
	jobsFilteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobfeed_jobs_filtered_total",
		Help: "The total number of job records dropped by the beginner filter.",
	})
	// jobsDedupedTotal counts records dropped as fingerprint duplicates.
	jobsDedupedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobfeed_jobs_deduped_total",
		Help: "The total number of duplicate job records dropped.",
	})
)
