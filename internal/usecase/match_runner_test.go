package usecase

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"hiring-intel/internal/domain/candidate"
	"hiring-intel/internal/domain/job"
	"hiring-intel/internal/domain/match"
	"hiring-intel/internal/domain/scoring"
	"hiring-intel/internal/repository"
	"hiring-intel/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type runnerDeps struct {
	jobs       *mocks.MockJobRepository
	candidates *mocks.MockCandidateRepository
	results    *mocks.MockMatchResultRepository
}

func newRunnerDeps(t *testing.T) runnerDeps {
	ctrl := gomock.NewController(t)
	return runnerDeps{
		jobs:       mocks.NewMockJobRepository(ctrl),
		candidates: mocks.NewMockCandidateRepository(ctrl),
		results:    mocks.NewMockMatchResultRepository(ctrl),
	}
}

func (d runnerDeps) runner(opts ...MatchRunnerOption) *MatchRunner {
	return NewMatchRunner(d.jobs, d.candidates, d.results, opts...)
}

func testJob() job.Job {
	return job.Job{
		ID:           uuid.New(),
		RecruiterID:  uuid.New(),
		Title:        "Backend Engineer",
		Weights:      scoring.DefaultWeights,
		MinThreshold: scoring.DefaultMinThreshold,
	}
}

func testProfile(name string) candidate.Profile {
	return candidate.Profile{ID: uuid.New(), UserID: uuid.New(), Name: name, Email: name + "@example.com", DataCompleteness: 90}
}

// 70*.25 + 80*.20 + 60*.20 + 40*.20 + 90*.15 = 67.0
func testSkill(candidateID uuid.UUID) candidate.Skill {
	return candidate.Skill{
		ID:                 uuid.New(),
		CandidateID:        candidateID,
		Name:               "Go",
		ComplexityScore:    70,
		ConsistencyScore:   80,
		CollaborationScore: 60,
		RecencyScore:       40,
		ImpactScore:        90,
	}
}

func stored(in repository.MatchResultCreate) match.Result {
	gap := in.GapSummary
	return match.Result{
		ID:          uuid.New(),
		JobID:       in.JobID,
		CandidateID: in.CandidateID,
		FitScore:    in.FitScore,
		RiskLevel:   in.RiskLevel,
		GapSummary:  &gap,
		CreatedAt:   time.Now().UTC(),
	}
}

func echoResult(_ context.Context, in repository.MatchResultCreate) (match.Result, error) {
	return stored(in), nil
}

func TestMatchRunner_ScoresAndSkipsCandidatesWithoutSkills(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	withSkills := testProfile("ana")
	noSkills := testProfile("budi")

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{withSkills, noSkills}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), withSkills.ID).Return([]candidate.Skill{testSkill(withSkills.ID)}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), noSkills.ID).Return(nil, nil)

	var written repository.MatchResultCreate
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, in repository.MatchResultCreate) (match.Result, error) {
			written = in
			return stored(in), nil
		},
	).Times(1)

	report, err := d.runner().Run(context.Background(), j.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, RunModeAppend, report.Mode)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Written)
	assert.Equal(t, 1, report.Skipped)
	assert.Empty(t, report.Failures)
	assert.False(t, report.Cancelled)
	require.Len(t, report.Results, 1)

	assert.Equal(t, j.ID, written.JobID)
	assert.Equal(t, withSkills.ID, written.CandidateID)
	assert.InDelta(t, 67.0, written.FitScore, 1e-9)
	assert.Equal(t, scoring.RiskMedium, written.RiskLevel)
	assert.Equal(t, scoring.GapLowRecency, written.GapSummary)

	got := report.Results[0]
	assert.Equal(t, "ana", got.CandidateName)
	assert.Equal(t, "ana@example.com", got.CandidateEmail)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))
}

func TestMatchRunner_AggregatesSkillsPerDimension(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	j.MinThreshold = 0
	c := testProfile("citra")

	a := candidate.Skill{ComplexityScore: 100, ConsistencyScore: 100, CollaborationScore: 100, RecencyScore: 100, ImpactScore: 100}
	b := candidate.Skill{ComplexityScore: 60, ConsistencyScore: 60, CollaborationScore: 60, RecencyScore: 60, ImpactScore: 60}

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{c}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), c.ID).Return([]candidate.Skill{a, b}, nil)
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, in repository.MatchResultCreate) (match.Result, error) {
			assert.InDelta(t, 80.0, in.FitScore, 1e-9)
			assert.Equal(t, scoring.RiskLow, in.RiskLevel)
			assert.Equal(t, scoring.SummaryStrongFit, in.GapSummary)
			return stored(in), nil
		},
	)

	_, err := d.runner().Run(context.Background(), j.ID, RunOptions{})
	require.NoError(t, err)
}

func TestMatchRunner_AppendDuplicatesOnRerun(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	c := testProfile("dewi")

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil).Times(2)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{c}, nil).Times(2)
	d.candidates.EXPECT().ListSkills(gomock.Any(), c.ID).Return([]candidate.Skill{testSkill(c.ID)}, nil).Times(2)
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoResult).Times(2)

	r := d.runner()
	first, err := r.Run(context.Background(), j.ID, RunOptions{Mode: RunModeAppend})
	require.NoError(t, err)
	second, err := r.Run(context.Background(), j.ID, RunOptions{Mode: RunModeAppend})
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.NotEqual(t, first.Results[0].ID, second.Results[0].ID)
}

func TestMatchRunner_ReplaceModeUsesReplace(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	c := testProfile("eko")

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{c}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), c.ID).Return([]candidate.Skill{testSkill(c.ID)}, nil)
	d.results.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(echoResult)
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	report, err := d.runner().Run(context.Background(), j.ID, RunOptions{Mode: RunModeReplace})
	require.NoError(t, err)
	assert.Equal(t, RunModeReplace, report.Mode)
	assert.Equal(t, 1, report.Written)
}

func TestMatchRunner_DefaultModeFromConfig(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	c := testProfile("fajar")

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{c}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), c.ID).Return([]candidate.Skill{testSkill(c.ID)}, nil)
	d.results.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(echoResult)

	r := d.runner(WithRunnerConfig(MatchRunnerConfig{DefaultMode: RunModeReplace}))
	report, err := r.Run(context.Background(), j.ID, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, RunModeReplace, report.Mode)
}

func TestMatchRunner_UnknownMode(t *testing.T) {
	d := newRunnerDeps(t)
	_, err := d.runner().Run(context.Background(), uuid.New(), RunOptions{Mode: "upsert"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchRunner_JobNotFoundTouchesNoCandidate(t *testing.T) {
	d := newRunnerDeps(t)
	jobID := uuid.New()
	d.jobs.EXPECT().GetByID(gomock.Any(), jobID).Return(job.Job{}, repository.ErrJobNotFound)

	report, err := d.runner().Run(context.Background(), jobID, RunOptions{})
	assert.ErrorIs(t, err, ErrJobNotFound)
	assert.Zero(t, report.Total)
	assert.Empty(t, report.Results)
}

func TestMatchRunner_JobLookupFailureIsInternal(t *testing.T) {
	d := newRunnerDeps(t)
	jobID := uuid.New()
	boom := errors.New("connection reset")
	d.jobs.EXPECT().GetByID(gomock.Any(), jobID).Return(job.Job{}, boom)

	_, err := d.runner().Run(context.Background(), jobID, RunOptions{})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, boom)
}

func TestMatchRunner_PersistFailureContinues(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	cs := []candidate.Profile{testProfile("a"), testProfile("b"), testProfile("c")}
	boom := errors.New("insert failed")

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return(cs, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id uuid.UUID) ([]candidate.Skill, error) {
			return []candidate.Skill{testSkill(id)}, nil
		},
	).Times(3)
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, in repository.MatchResultCreate) (match.Result, error) {
			if in.CandidateID == cs[1].ID {
				return match.Result{}, boom
			}
			return stored(in), nil
		},
	).Times(3)

	report, err := d.runner().Run(context.Background(), j.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 2, report.Written)
	require.Len(t, report.Failures, 1)
	f := report.Failures[0]
	assert.Equal(t, cs[1].ID, f.CandidateID)
	assert.Equal(t, StagePersist, f.Stage)
	assert.ErrorIs(t, f, boom)
	assert.Equal(t, cs[0].ID, report.Results[0].CandidateID)
	assert.Equal(t, cs[2].ID, report.Results[1].CandidateID)
}

func TestMatchRunner_SkillLoadFailureIsPerCandidate(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	bad, good := testProfile("bad"), testProfile("good")

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{bad, good}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), bad.ID).Return(nil, errors.New("timeout"))
	d.candidates.EXPECT().ListSkills(gomock.Any(), good.ID).Return([]candidate.Skill{testSkill(good.ID)}, nil)
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoResult)

	report, err := d.runner().Run(context.Background(), j.ID, RunOptions{})
	require.NoError(t, err)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, StageSkills, report.Failures[0].Stage)
	assert.Equal(t, 1, report.Written)
}

func TestMatchRunner_NonFiniteInputIsRecordedNotWritten(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	broken := testProfile("nan")
	broken.DataCompleteness = math.NaN()
	fine := testProfile("ok")

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{broken, fine}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id uuid.UUID) ([]candidate.Skill, error) {
			return []candidate.Skill{testSkill(id)}, nil
		},
	).Times(2)
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoResult).Times(1)

	report, err := d.runner().Run(context.Background(), j.ID, RunOptions{})
	require.NoError(t, err)
	require.Len(t, report.Failures, 1)
	f := report.Failures[0]
	assert.Equal(t, broken.ID, f.CandidateID)
	assert.Equal(t, StageValidate, f.Stage)
	assert.ErrorIs(t, f, scoring.ErrInvalidInput)

	var ve *scoring.ValidationError
	require.ErrorAs(t, f, &ve)
	assert.Equal(t, "data_completeness", ve.Field)
}

func TestMatchRunner_CancelStopsNewCandidates(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	first, second := testProfile("first"), testProfile("second")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{first, second}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), first.ID).DoAndReturn(
		func(ctx context.Context, id uuid.UUID) ([]candidate.Skill, error) {
			cancel()
			return []candidate.Skill{testSkill(id)}, nil
		},
	)
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, in repository.MatchResultCreate) (match.Result, error) {
			// the write already handed to the sink must not see the cancellation
			require.NoError(t, ctx.Err())
			return stored(in), nil
		},
	)

	report, err := d.runner().Run(ctx, j.ID, RunOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, report.Cancelled)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Written)
}

func TestMatchRunner_ConcurrentRunKeepsDeliveredOrder(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	cs := make([]candidate.Profile, 6)
	for i := range cs {
		cs[i] = testProfile(string(rune('a' + i)))
	}

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return(cs, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id uuid.UUID) ([]candidate.Skill, error) {
			return []candidate.Skill{testSkill(id)}, nil
		},
	).Times(len(cs))

	var (
		mu      sync.Mutex
		running int
		peak    int
	)
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, in repository.MatchResultCreate) (match.Result, error) {
			mu.Lock()
			running++
			if running > peak {
				peak = running
			}
			mu.Unlock()

			// earlier candidates finish last
			for i, c := range cs {
				if c.ID == in.CandidateID {
					time.Sleep(time.Duration(len(cs)-i) * 5 * time.Millisecond)
				}
			}

			mu.Lock()
			running--
			mu.Unlock()
			return stored(in), nil
		},
	).Times(len(cs))

	report, err := d.runner().Run(context.Background(), j.ID, RunOptions{Concurrency: 3})
	require.NoError(t, err)
	require.Len(t, report.Results, len(cs))
	for i, c := range cs {
		assert.Equal(t, c.ID, report.Results[i].CandidateID)
	}
	assert.LessOrEqual(t, peak, 3)
}

type fakeLocker struct {
	mu        sync.Mutex
	available bool
	held      map[string]string
	setErr    error
	released  []string
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{available: true, held: map[string]string{}}
}

func (l *fakeLocker) SetIfNotExists(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.setErr != nil {
		return false, l.setErr
	}
	if _, ok := l.held[key]; ok {
		return false, nil
	}
	l.held[key] = value
	return true, nil
}

func (l *fakeLocker) DeleteIfValue(_ context.Context, key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == value {
		delete(l.held, key)
		l.released = append(l.released, key)
	}
	return nil
}

func (l *fakeLocker) Available() bool { return l.available }

func TestMatchRunner_LockHeldReturnsInProgress(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)

	locker := newFakeLocker()
	locker.held[MatchRunLockKey(j.ID)] = "someone-else"

	_, err := d.runner(WithRunLocker(locker)).Run(context.Background(), j.ID, RunOptions{})
	assert.ErrorIs(t, err, ErrMatchRunInProgress)
	assert.Equal(t, "someone-else", locker.held[MatchRunLockKey(j.ID)])
}

func TestMatchRunner_LockReleasedAfterRun(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return(nil, nil)

	locker := newFakeLocker()
	_, err := d.runner(WithRunLocker(locker)).Run(context.Background(), j.ID, RunOptions{})
	require.NoError(t, err)
	assert.Empty(t, locker.held)
	assert.Equal(t, []string{MatchRunLockKey(j.ID)}, locker.released)
}

func TestMatchRunner_LockBypassedWhenRedisDown(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return(nil, nil)

	locker := newFakeLocker()
	locker.setErr = errors.New("dial tcp: connection refused")
	_, err := d.runner(WithRunLocker(locker)).Run(context.Background(), j.ID, RunOptions{})
	assert.NoError(t, err)
}

type fakeCache struct {
	mu      sync.Mutex
	items   map[string]any
	deleted []string
}

func newFakeCache() *fakeCache { return &fakeCache{items: map[string]any{}} }

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return false, nil
	}
	if dst, ok := out.(*[]match.Result); ok {
		*dst = v.([]match.Result)
	}
	return true, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	c.deleted = append(c.deleted, key)
	return nil
}

type notification struct {
	jobID   uuid.UUID
	runID   uuid.UUID
	written int
}

type fakeNotifier struct {
	sent []notification
}

func (n *fakeNotifier) NotifyMatchesUpdated(jobID, runID uuid.UUID, written int) {
	n.sent = append(n.sent, notification{jobID: jobID, runID: runID, written: written})
}

func TestMatchRunner_PublishesRefreshAfterWrites(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	c := testProfile("gita")

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{c}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), c.ID).Return([]candidate.Skill{testSkill(c.ID)}, nil)
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoResult)

	cache := newFakeCache()
	notifier := &fakeNotifier{}
	report, err := d.runner(WithRunnerCache(cache), WithRunnerNotifier(notifier)).
		Run(context.Background(), j.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{MatchesCacheKey(j.ID)}, cache.deleted)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notification{jobID: j.ID, runID: report.RunID, written: 1}, notifier.sent[0])
}

func TestMatchRunner_NoRefreshWithoutWrites(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	c := testProfile("hana")

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{c}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), c.ID).Return(nil, nil)

	cache := newFakeCache()
	notifier := &fakeNotifier{}
	report, err := d.runner(WithRunnerCache(cache), WithRunnerNotifier(notifier)).
		Run(context.Background(), j.ID, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Empty(t, cache.deleted)
	assert.Empty(t, notifier.sent)
}

type fakeRunMetrics struct {
	mu       sync.Mutex
	started  int
	outcomes []string
	scored   int
	skipped  int
	failed   []string
	written  int
}

func (m *fakeRunMetrics) RunStarted() { m.mu.Lock(); m.started++; m.mu.Unlock() }
func (m *fakeRunMetrics) RunFinished(_ string, outcome string, _ time.Duration) {
	m.mu.Lock()
	m.outcomes = append(m.outcomes, outcome)
	m.mu.Unlock()
}
func (m *fakeRunMetrics) CandidateScored(string, float64) { m.mu.Lock(); m.scored++; m.mu.Unlock() }
func (m *fakeRunMetrics) CandidateSkipped()               { m.mu.Lock(); m.skipped++; m.mu.Unlock() }
func (m *fakeRunMetrics) CandidateFailed(stage string) {
	m.mu.Lock()
	m.failed = append(m.failed, stage)
	m.mu.Unlock()
}
func (m *fakeRunMetrics) ResultWritten() { m.mu.Lock(); m.written++; m.mu.Unlock() }

func TestMatchRunner_RecordsMetrics(t *testing.T) {
	d := newRunnerDeps(t)
	j := testJob()
	a, b, c := testProfile("a"), testProfile("b"), testProfile("c")

	d.jobs.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
	d.candidates.EXPECT().List(gomock.Any()).Return([]candidate.Profile{a, b, c}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), a.ID).Return([]candidate.Skill{testSkill(a.ID)}, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), b.ID).Return(nil, nil)
	d.candidates.EXPECT().ListSkills(gomock.Any(), c.ID).Return([]candidate.Skill{testSkill(c.ID)}, nil)
	d.results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, in repository.MatchResultCreate) (match.Result, error) {
			if in.CandidateID == c.ID {
				return match.Result{}, errors.New("fk violation")
			}
			return stored(in), nil
		},
	).Times(2)

	m := &fakeRunMetrics{}
	_, err := d.runner(WithRunMetrics(m)).Run(context.Background(), j.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, m.started)
	assert.Equal(t, []string{"completed"}, m.outcomes)
	assert.Equal(t, 1, m.scored)
	assert.Equal(t, 1, m.skipped)
	assert.Equal(t, 1, m.written)
	assert.Equal(t, []string{StagePersist}, m.failed)
}

func TestParseRunMode(t *testing.T) {
	tests := []struct {
		in      string
		want    RunMode
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "append", want: RunModeAppend},
		{in: " Replace ", want: RunModeReplace},
		{in: "merge", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRunMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
