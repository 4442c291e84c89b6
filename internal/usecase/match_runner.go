package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hiring-intel/internal/domain/candidate"
	"hiring-intel/internal/domain/job"
	"hiring-intel/internal/domain/match"
	"hiring-intel/internal/domain/scoring"
	"hiring-intel/internal/pkg/logger"
	"hiring-intel/internal/repository"
	"hiring-intel/internal/worker"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RunMode string

const (
	// RunModeAppend inserts a fresh row per candidate on every run.
	RunModeAppend RunMode = "append"
	// RunModeReplace swaps out earlier rows for the same job and candidate.
	RunModeReplace RunMode = "replace"
)

// ParseRunMode returns "" for an empty string so callers can fall back to
// their configured default.
func ParseRunMode(s string) (RunMode, error) {
	m := RunMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case "", RunModeAppend, RunModeReplace:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown run mode %q", ErrInvalidInput, s)
	}
}

const (
	StageSkills   = "skills"
	StageValidate = "validate"
	StagePersist  = "persist"
)

const persistTimeout = 30 * time.Second

type RunOptions struct {
	Mode        RunMode
	Concurrency int
}

type CandidateFailure struct {
	CandidateID uuid.UUID
	Stage       string
	Err         error
}

func (f CandidateFailure) Error() string {
	return fmt.Sprintf("candidate %s: %s: %v", f.CandidateID, f.Stage, f.Err)
}

func (f CandidateFailure) Unwrap() error {
	return f.Err
}

// RunReport describes one batch run. Results and Failures follow the order in
// which the candidate source delivered the candidates.
type RunReport struct {
	JobID      uuid.UUID
	RunID      uuid.UUID
	Mode       RunMode
	Total      int
	Processed  int
	Skipped    int
	Written    int
	Results    []match.Result
	Failures   []CandidateFailure
	Cancelled  bool
	StartedAt  time.Time
	FinishedAt time.Time
}

type RunMetrics interface {
	RunStarted()
	RunFinished(mode string, outcome string, d time.Duration)
	CandidateScored(risk string, fit float64)
	CandidateSkipped()
	CandidateFailed(stage string)
	ResultWritten()
}

type MatchRunnerConfig struct {
	Concurrency int
	DefaultMode RunMode
	RunTimeout  time.Duration
	LockTTL     time.Duration
	RateLimit   int
}

type MatchRunnerOption func(*MatchRunner)

func WithRunnerConfig(cfg MatchRunnerConfig) MatchRunnerOption {
	return func(r *MatchRunner) { r.cfg = cfg }
}

func WithRunLocker(l RunLocker) MatchRunnerOption {
	return func(r *MatchRunner) { r.locker = l }
}

func WithRunnerCache(c MatchCache) MatchRunnerOption {
	return func(r *MatchRunner) { r.cache = c }
}

func WithRunnerNotifier(n MatchNotifier) MatchRunnerOption {
	return func(r *MatchRunner) { r.notifier = n }
}

func WithRunMetrics(m RunMetrics) MatchRunnerOption {
	return func(r *MatchRunner) { r.metrics = m }
}

func WithRunnerLogger(l *zap.Logger) MatchRunnerOption {
	return func(r *MatchRunner) { r.logger = l }
}

// MatchRunner scores every candidate against one job and writes the results
// through the match result repository.
type MatchRunner struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	results    repository.MatchResultRepository

	cfg      MatchRunnerConfig
	locker   RunLocker
	cache    MatchCache
	notifier MatchNotifier
	metrics  RunMetrics
	logger   *zap.Logger
}

func NewMatchRunner(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	results repository.MatchResultRepository,
	opts ...MatchRunnerOption,
) *MatchRunner {
	r := &MatchRunner{
		jobs:       jobs,
		candidates: candidates,
		results:    results,
		cfg:        MatchRunnerConfig{Concurrency: 1, DefaultMode: RunModeAppend},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logger.OrNop(r.logger).Named("match_runner")
	if r.metrics == nil {
		r.metrics = nopRunMetrics{}
	}
	if r.cfg.DefaultMode == "" {
		r.cfg.DefaultMode = RunModeAppend
	}
	return r
}

type outcomeStatus int

const (
	outcomePending outcomeStatus = iota
	outcomeSkipped
	outcomeWritten
	outcomeFailed
)

type candidateOutcome struct {
	status  outcomeStatus
	result  match.Result
	failure CandidateFailure
}

// Run returns ErrJobNotFound before any candidate is read when the job does
// not exist. Per-candidate problems never abort the run; they end up in
// RunReport.Failures. When ctx is done no new candidate is started, the
// partial report is returned together with ctx.Err().
func (r *MatchRunner) Run(ctx context.Context, jobID uuid.UUID, opts RunOptions) (RunReport, error) {
	mode := opts.Mode
	if mode == "" {
		mode = r.cfg.DefaultMode
	}
	if mode != RunModeAppend && mode != RunModeReplace {
		return RunReport{}, fmt.Errorf("%w: unknown run mode %q", ErrInvalidInput, mode)
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = r.cfg.Concurrency
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	report := RunReport{
		JobID:     jobID,
		RunID:     uuid.New(),
		Mode:      mode,
		Results:   make([]match.Result, 0),
		Failures:  make([]CandidateFailure, 0),
		StartedAt: time.Now().UTC(),
	}
	log := r.logger.With(
		zap.String("job_id", jobID.String()),
		zap.String("run_id", report.RunID.String()),
		zap.String("mode", string(mode)),
	)

	if r.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.RunTimeout)
		defer cancel()
	}

	j, err := r.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return report, ErrJobNotFound
		}
		log.Error("load job failed", zap.Error(err))
		return report, fmt.Errorf("%w: load job: %w", ErrInternal, err)
	}

	release, err := r.acquire(ctx, jobID, report.RunID, log)
	if err != nil {
		return report, err
	}
	defer release()

	r.metrics.RunStarted()
	outcome := "failed"
	defer func() {
		r.metrics.RunFinished(string(mode), outcome, time.Since(report.StartedAt))
	}()

	log.Info("match run started", zap.Int("concurrency", concurrency))

	candidates, err := r.candidates.List(ctx)
	if err != nil {
		if ctx.Err() != nil {
			outcome = "cancelled"
			report.Cancelled = true
			report.FinishedAt = time.Now().UTC()
			return report, ctx.Err()
		}
		log.Error("list candidates failed", zap.Error(err))
		return report, fmt.Errorf("%w: list candidates: %w", ErrInternal, err)
	}
	report.Total = len(candidates)

	outcomes := make([]candidateOutcome, len(candidates))
	// Each outcome has its own slot, so the report keeps the delivered order
	// whatever order the workers finish in.
	worker.ForEach(ctx, len(candidates), concurrency, r.cfg.RateLimit, func(ctx context.Context, i int) {
		outcomes[i] = r.process(ctx, j, mode, candidates[i], log)
	})

	pending := r.collect(&report, outcomes)
	report.Cancelled = pending > 0 && ctx.Err() != nil
	report.FinishedAt = time.Now().UTC()

	if report.Written > 0 {
		r.publish(ctx, report, log)
	}

	log.Info("match run finished",
		zap.Int("total", report.Total),
		zap.Int("processed", report.Processed),
		zap.Int("written", report.Written),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", len(report.Failures)),
		zap.Bool("cancelled", report.Cancelled),
		zap.Duration("duration", report.FinishedAt.Sub(report.StartedAt)),
	)

	if report.Cancelled {
		outcome = "cancelled"
		return report, ctx.Err()
	}
	outcome = "completed"
	return report, nil
}

func (r *MatchRunner) acquire(ctx context.Context, jobID, runID uuid.UUID, log *zap.Logger) (func(), error) {
	noop := func() {}
	if r.locker == nil || !r.locker.Available() {
		return noop, nil
	}

	key := MatchRunLockKey(jobID)
	token := runID.String()
	ok, err := r.locker.SetIfNotExists(ctx, key, token, r.cfg.LockTTL)
	if err != nil {
		log.Warn("run lock unavailable, continuing unlocked", zap.Error(err))
		return noop, nil
	}
	if !ok {
		return nil, ErrMatchRunInProgress
	}

	return func() {
		if err := r.locker.DeleteIfValue(context.WithoutCancel(ctx), key, token); err != nil {
			log.Warn("release run lock failed", zap.Error(err))
		}
	}, nil
}

func (r *MatchRunner) process(ctx context.Context, j job.Job, mode RunMode, c candidate.Profile, log *zap.Logger) candidateOutcome {
	log = log.With(zap.String("candidate_id", c.ID.String()))

	skills, err := r.candidates.ListSkills(ctx, c.ID)
	if err != nil {
		if ctx.Err() != nil {
			return candidateOutcome{status: outcomePending}
		}
		log.Warn("load skills failed", zap.Error(err))
		return failedOutcome(c.ID, StageSkills, err)
	}

	dims := make([]scoring.DimensionScores, 0, len(skills))
	for _, s := range skills {
		dims = append(dims, s.Dimensions())
	}
	agg, ok := scoring.Aggregate(dims)
	if !ok {
		log.Debug("candidate skipped", zap.String("reason", "no_skills"))
		return candidateOutcome{status: outcomeSkipped}
	}

	in := scoring.Input{
		Dimensions:       agg,
		Weights:          j.Weights,
		DataCompleteness: c.DataCompleteness,
		MinThreshold:     j.MinThreshold,
	}
	if err := scoring.Validate(in); err != nil {
		log.Warn("invalid scoring input", zap.Error(err))
		return failedOutcome(c.ID, StageValidate, err)
	}
	scored := scoring.Score(in)

	row := repository.MatchResultCreate{
		JobID:       j.ID,
		CandidateID: c.ID,
		FitScore:    scored.FitScore,
		RiskLevel:   scored.RiskLevel,
		GapSummary:  scored.GapSummary,
	}

	sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	var stored match.Result
	if mode == RunModeReplace {
		stored, err = r.results.Replace(sinkCtx, row)
	} else {
		stored, err = r.results.Create(sinkCtx, row)
	}
	if err != nil {
		log.Warn("persist match result failed", zap.Error(err))
		return failedOutcome(c.ID, StagePersist, err)
	}

	stored.CandidateName = c.Name
	stored.CandidateEmail = c.Email
	stored.OverallScore = c.OverallScore
	return candidateOutcome{status: outcomeWritten, result: stored}
}

func failedOutcome(candidateID uuid.UUID, stage string, err error) candidateOutcome {
	return candidateOutcome{
		status:  outcomeFailed,
		failure: CandidateFailure{CandidateID: candidateID, Stage: stage, Err: err},
	}
}

func (r *MatchRunner) collect(report *RunReport, outcomes []candidateOutcome) (pending int) {
	for _, o := range outcomes {
		switch o.status {
		case outcomeSkipped:
			report.Skipped++
			r.metrics.CandidateSkipped()
		case outcomeWritten:
			report.Written++
			report.Results = append(report.Results, o.result)
			r.metrics.CandidateScored(string(o.result.RiskLevel), o.result.FitScore)
			r.metrics.ResultWritten()
		case outcomeFailed:
			report.Failures = append(report.Failures, o.failure)
			r.metrics.CandidateFailed(o.failure.Stage)
		default:
			pending++
			continue
		}
		report.Processed++
	}
	return pending
}

func (r *MatchRunner) publish(ctx context.Context, report RunReport, log *zap.Logger) {
	ctx = context.WithoutCancel(ctx)
	if r.cache != nil {
		if err := r.cache.Delete(ctx, MatchesCacheKey(report.JobID)); err != nil {
			log.Warn("invalidate match cache failed", zap.Error(err))
		}
	}
	if r.notifier != nil {
		r.notifier.NotifyMatchesUpdated(report.JobID, report.RunID, report.Written)
	}
}

type nopRunMetrics struct{}

func (nopRunMetrics) RunStarted()                               {}
func (nopRunMetrics) RunFinished(string, string, time.Duration) {}
func (nopRunMetrics) CandidateScored(string, float64)           {}
func (nopRunMetrics) CandidateSkipped()                         {}
func (nopRunMetrics) CandidateFailed(string)                    {}
func (nopRunMetrics) ResultWritten()                            {}
