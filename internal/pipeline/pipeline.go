// Package pipeline orchestrates one aggregation run: fetch every source,
// parse, infer fields, deduplicate, sort, truncate, and package the
// result document.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/remotestarter/jobfeed/internal/classify"
	"github.com/remotestarter/jobfeed/internal/feed"
)

// Accept headers per source kind.
const (
	acceptFeed = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8"
	acceptJSON = "application/json"
)

// Config controls normalization behavior.
type Config struct {
	MaxJobs      int
	MaxTags      int
	BeginnerOnly bool
}

// Pipeline runs the multi-source aggregation. One source failing never
// aborts the run; every failure degrades to zero records from that source.
type Pipeline struct {
	sources []feed.Source
	fetcher feed.Fetcher
	parsers map[feed.SourceKind]feed.Parser
	hasher  feed.Hasher
	clock   feed.Clock
	logger  *zap.Logger
	cfg     Config
}

// New constructs a Pipeline.
func New(
	sources []feed.Source,
	fetcher feed.Fetcher,
	parsers map[feed.SourceKind]feed.Parser,
	hasher feed.Hasher,
	clock feed.Clock,
	logger *zap.Logger,
	cfg Config,
) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxJobs <= 0 {
		cfg.MaxJobs = 2000
	}
	if cfg.MaxTags <= 0 {
		cfg.MaxTags = classify.DefaultMaxTags
	}
	return &Pipeline{
		sources: sources,
		fetcher: fetcher,
		parsers: parsers,
		hasher:  hasher,
		clock:   clock,
		logger:  logger,
		cfg:     cfg,
	}
}

type sourceResult struct {
	index int
	jobs  []feed.Job
	err   error
}

// Run executes one full aggregation and returns the packaged document.
// Per-source fetch/parse runs concurrently; the merge step waits for every
// source before deduplication begins so record order stays deterministic.
func (p *Pipeline) Run(ctx context.Context) feed.Document {
	perSource := make([][]feed.Job, len(p.sources))
	results := make(chan sourceResult, len(p.sources))

	var wg sync.WaitGroup
	for i, src := range p.sources {
		wg.Add(1)
		go func(i int, src feed.Source) {
			defer wg.Done()
			jobs, err := p.collect(ctx, src)
			results <- sourceResult{index: i, jobs: jobs, err: err}
		}(i, src)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		src := p.sources[res.index]
		if res.err != nil {
			sourceErrorsTotal.Inc()
			p.logger.Warn("source skipped",
				zap.String("source", src.Name),
				zap.Error(res.err),
			)
			continue
		}
		perSource[res.index] = res.jobs
		p.logger.Info("source ingested",
			zap.String("source", src.Name),
			zap.Int("records", len(res.jobs)),
		)
	}

	var merged []feed.Job
	for _, jobs := range perSource {
		merged = append(merged, jobs...)
	}

	merged = p.enrich(merged)
	merged = p.dedupe(merged)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PostedAt.After(merged[j].PostedAt)
	})
	if len(merged) > p.cfg.MaxJobs {
		merged = merged[:p.cfg.MaxJobs]
	}
	if merged == nil {
		merged = []feed.Job{}
	}

	names := make([]string, 0, len(p.sources))
	for _, src := range p.sources {
		names = append(names, src.Name)
	}

	return feed.Document{
		UpdatedAt: p.clock.Now(),
		TotalJobs: len(merged),
		Sources:   names,
		Jobs:      merged,
	}
}

// collect fetches and parses a single source.
func (p *Pipeline) collect(ctx context.Context, src feed.Source) ([]feed.Job, error) {
	parser, ok := p.parsers[src.Kind]
	if !ok {
		return nil, fmt.Errorf("no parser registered for kind %q", src.Kind)
	}

	accept := acceptJSON
	if src.Kind == feed.KindRSS {
		accept = acceptFeed
	}

	fetchesTotal.Inc()
	payload, err := p.fetcher.FetchBody(ctx, src.URL, accept)
	if err != nil {
		return nil, err
	}

	jobs, err := parser.Parse(payload, src.Name)
	if err != nil {
		return nil, err
	}
	jobsParsedTotal.Add(float64(len(jobs)))
	return jobs, nil
}

// enrich applies field inference and the beginner filter to every record.
func (p *Pipeline) enrich(jobs []feed.Job) []feed.Job {
	kept := make([]feed.Job, 0, len(jobs))
	for _, job := range jobs {
		combined := strings.TrimSpace(job.Title + " " + job.Category + " " + job.Description)

		if p.cfg.BeginnerOnly && !classify.BeginnerFriendly(combined) {
			jobsFilteredTotal.Inc()
			continue
		}
		if job.Company == "" {
			job.Company = classify.Company(job.Title, job.Description)
		}
		job.Category = classify.Category(combined)
		job.Tags = classify.Tags(combined, job.Category, job.Tags, p.cfg.MaxTags)
		job.Description = ""
		kept = append(kept, job)
	}
	return kept
}

// dedupe drops records whose fingerprint was already seen, first
// occurrence winning. The seen set lives for exactly one run.
func (p *Pipeline) dedupe(jobs []feed.Job) []feed.Job {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]feed.Job, 0, len(jobs))
	for _, job := range jobs {
		fp, err := p.fingerprint(job)
		if err != nil {
			// A failing hasher would disable dedup entirely; keep the
			// record rather than lose data.
			p.logger.Warn("fingerprint failed", zap.String("title", job.Title), zap.Error(err))
			out = append(out, job)
			continue
		}
		if _, dup := seen[fp]; dup {
			jobsDedupedTotal.Inc()
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, job)
	}
	return out
}

// fingerprint hashes the normalized title and source URL. Company is
// deliberately excluded so the same posting syndicated through two feeds
// collapses even when company inference differs per source.
func (p *Pipeline) fingerprint(job feed.Job) (string, error) {
	key := strings.ToLower(job.Title + "|" + job.SourceURL)
	key = strings.Join(strings.Fields(key), " ")
	return p.hasher.Hash([]byte(key))
}
