package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hashcrack/internal/core/algorithm"
	"hashcrack/internal/core/digest"
	"hashcrack/internal/core/domain"
	"hashcrack/internal/port"
)

// recordingDigests wraps the real registry and remembers every input hashed.
type recordingDigests struct {
	mu     sync.Mutex
	inputs []string
}

type recordingHasher struct {
	port.Hasher
	owner *recordingDigests
}

func (h recordingHasher) Digest(text string) string {
	h.owner.mu.Lock()
	h.owner.inputs = append(h.owner.inputs, text)
	h.owner.mu.Unlock()
	return h.Hasher.Digest(text)
}

func (r *recordingDigests) Hasher(alg domain.HashAlgorithm) (port.Hasher, error) {
	h, err := digest.Registry{}.Hasher(alg)
	if err != nil {
		return nil, err
	}
	return recordingHasher{Hasher: h, owner: r}, nil
}

func (r *recordingDigests) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.inputs...)
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Report(snapshot domain.StatsSnapshot) {
	m.Called(snapshot)
}

func mustDigest(t *testing.T, text string, alg domain.HashAlgorithm) string {
	t.Helper()
	d, err := digest.Compute(text, alg)
	require.NoError(t, err)
	return d
}

func wordlist(words ...string) algorithm.Source {
	return algorithm.NewDictionaryReader(strings.NewReader(strings.Join(words, "\n")))
}

func TestEngine_FoundStopsAtFirstMatch(t *testing.T) {
	digests := &recordingDigests{}
	e := NewEngine(digests)

	outcome, err := e.Run(context.Background(),
		wordlist("wrong", "right", "afterwrong"),
		domain.HashMD5, mustDigest(t, "right", domain.HashMD5), nil)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFound, outcome.Status)
	assert.Equal(t, "right", outcome.Candidate)
	assert.Equal(t, int64(2), outcome.Attempts)
	assert.True(t, outcome.Found())
	assert.Equal(t, []string{"wrong", "right"}, digests.seen())
	assert.Equal(t, domain.StateFound, e.State())
}

func TestEngine_CancelBeforeRun(t *testing.T) {
	digests := &recordingDigests{}
	e := NewEngine(digests)
	e.Cancel()

	src, err := algorithm.NewBruteForce("abc", 1, 3)
	require.NoError(t, err)

	outcome, err := e.Run(context.Background(), src, domain.HashSHA1, "ffff", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCancelled, outcome.Status)
	assert.Zero(t, outcome.Attempts)
	assert.Empty(t, outcome.Candidate)
	assert.Empty(t, digests.seen())
	assert.Equal(t, domain.StateCancelled, e.State())
}

func TestEngine_ContextAlreadyDone(t *testing.T) {
	digests := &recordingDigests{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := NewEngine(digests).Run(ctx, algorithm.NewMask("?d?d"), domain.HashMD5, "x", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCancelled, outcome.Status)
	assert.Empty(t, digests.seen())
}

func TestEngine_ExhaustedCountsEveryCandidate(t *testing.T) {
	src, err := algorithm.NewBruteForce("ab", 1, 3)
	require.NoError(t, err)
	total, ok := src.Total()
	require.True(t, ok)

	e := NewEngine(digest.Registry{})
	outcome, err := e.Run(context.Background(), src, domain.HashSHA256, mustDigest(t, "zzz", domain.HashSHA256), nil)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeExhausted, outcome.Status)
	assert.Equal(t, total, outcome.Attempts)
	assert.Equal(t, int64(14), outcome.Attempts)
	assert.Equal(t, domain.StateExhausted, e.State())
}

func TestEngine_MaskFound(t *testing.T) {
	e := NewEngine(digest.Registry{})
	outcome, err := e.Run(context.Background(), algorithm.NewMask("?l?d"),
		domain.HashSHA3512, mustDigest(t, "c7", domain.HashSHA3512), nil)

	require.NoError(t, err)
	assert.Equal(t, "c7", outcome.Candidate)
	assert.Equal(t, int64(2*10+7+1), outcome.Attempts)
}

func TestEngine_UppercaseTargetNeverMatches(t *testing.T) {
	target := strings.ToUpper(mustDigest(t, "right", domain.HashMD5))

	outcome, err := NewEngine(digest.Registry{}).Run(context.Background(),
		wordlist("right"), domain.HashMD5, target, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeExhausted, outcome.Status)
	assert.Equal(t, int64(1), outcome.Attempts)
}

func TestEngine_UnsupportedAlgorithm(t *testing.T) {
	e := NewEngine(digest.Registry{})
	_, err := e.Run(context.Background(), wordlist("a"), "md4", "x", nil)

	assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
	assert.Equal(t, domain.StateIdle, e.State())
}

func TestEngine_NotReusable(t *testing.T) {
	e := NewEngine(digest.Registry{})
	_, err := e.Run(context.Background(), wordlist("a"), domain.HashMD5, "x", nil)
	require.NoError(t, err)

	_, err = e.Run(context.Background(), wordlist("a"), domain.HashMD5, "x", nil)
	assert.ErrorIs(t, err, domain.ErrEngineReused)
}

type brokenSource struct {
	algorithm.Source
	err error
}

func (s brokenSource) Err() error { return s.err }

func TestEngine_SourceErrorIsFatal(t *testing.T) {
	boom := errors.New("read failed")
	src := brokenSource{Source: wordlist("one", "two"), err: boom}

	e := NewEngine(digest.Registry{})
	outcome, err := e.Run(context.Background(), src, domain.HashMD5, "nope", nil)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(2), outcome.Attempts)
	assert.Equal(t, domain.OutcomeFailed, outcome.Status)
	assert.Equal(t, domain.StateFailed, e.State())
	assert.Equal(t, int64(2), e.Snapshot().Attempts)
}

func TestEngine_StatsSinkAtBoundaries(t *testing.T) {
	sink := &mockSink{}
	sink.On("Report", mock.MatchedBy(func(s domain.StatsSnapshot) bool {
		return s.Attempts%4 == 0 && s.Mode == domain.ModeMask && s.TotalKnown && s.Total == 10
	})).Return()

	e := NewEngine(digest.Registry{}, WithReportInterval(4))
	outcome, err := e.Run(context.Background(), algorithm.NewMask("?d"), domain.HashMD5, "none", sink)

	require.NoError(t, err)
	assert.Equal(t, int64(10), outcome.Attempts)
	sink.AssertNumberOfCalls(t, "Report", 2)
	sink.AssertExpectations(t)
}

func TestEngine_DefaultReportIntervalByMode(t *testing.T) {
	var reports []int64
	sink := port.StatsSinkFunc(func(s domain.StatsSnapshot) {
		reports = append(reports, s.Attempts)
	})

	src, err := algorithm.NewBruteForce(domain.CharsetDigits, 5, 5)
	require.NoError(t, err)

	_, err = NewEngine(digest.Registry{}).Run(context.Background(), src, domain.HashMD5, "none", sink)
	require.NoError(t, err)
	assert.Equal(t, []int64{100_000}, reports)

	reports = nil
	words := algorithm.NewDictionaryReader(strings.NewReader(strings.Repeat("word\n", 25_000)))
	outcome, err := NewEngine(digest.Registry{}).Run(context.Background(), words, domain.HashMD5, "none", sink)
	require.NoError(t, err)
	assert.Equal(t, int64(25_000), outcome.Attempts)
	assert.Equal(t, []int64{10_000, 20_000}, reports)
}

func TestEngine_CancelDuringRun(t *testing.T) {
	src, err := algorithm.NewBruteForce(domain.CharsetAll, 1, 8)
	require.NoError(t, err)

	e := NewEngine(digest.Registry{}, WithReportInterval(1000))
	sink := port.StatsSinkFunc(func(s domain.StatsSnapshot) {
		if s.Attempts >= 5000 {
			e.Cancel()
		}
	})

	outcome, err := e.Run(context.Background(), src, domain.HashMD5, "none", sink)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCancelled, outcome.Status)
	assert.Equal(t, int64(5000), outcome.Attempts)
}

func TestEngine_ContextCancelDuringRun(t *testing.T) {
	src, err := algorithm.NewBruteForce(domain.CharsetAll, 1, 8)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e := NewEngine(digest.Registry{})

	done := make(chan domain.AttackOutcome, 1)
	go func() {
		outcome, _ := e.Run(ctx, src, domain.HashMD5, "none", nil)
		done <- outcome
	}()

	require.Eventually(t, func() bool { return e.Snapshot().Attempts > 0 }, 5*time.Second, time.Millisecond)
	cancel()

	select {
	case outcome := <-done:
		assert.Equal(t, domain.OutcomeCancelled, outcome.Status)
		assert.Positive(t, outcome.Attempts)
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not observe cancellation")
	}
}

func TestEngine_SnapshotBeforeRun(t *testing.T) {
	snap := NewEngine(digest.Registry{}).Snapshot()
	assert.Zero(t, snap.Attempts)
	assert.Zero(t, snap.Elapsed)
	assert.Zero(t, snap.Rate)
}

func TestEngine_IndependentInstances(t *testing.T) {
	target := mustDigest(t, "zz", domain.HashMD5)

	var wg sync.WaitGroup
	outcomes := make([]domain.AttackOutcome, 4)
	for i := range outcomes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src, err := algorithm.NewBruteForce(domain.CharsetLower, 1, 2)
			if err != nil {
				return
			}
			outcomes[i], _ = NewEngine(digest.Registry{}).Run(context.Background(), src, domain.HashMD5, target, nil)
		}(i)
	}
	wg.Wait()

	for _, o := range outcomes {
		assert.Equal(t, "zz", o.Candidate)
		assert.Equal(t, int64(26+26*26), o.Attempts)
	}
}
