package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"sentia-be/internal/entity"
	"sentia-be/internal/repository/contract"
	"sentia-be/internal/repository/specification"
	"sentia-be/internal/repository/unitofwork"
)

// In-memory doubles for the repository layer. Filtering specifications are
// interpreted by type-switching on the known spec structs, which covers every
// spec the services actually build.

type fakeState struct {
	sessions  []*entity.AnalysisSession
	feedbacks []*entity.Feedback

	// Errors to return from the next session Create / Commit calls, consumed
	// in order. Nil entries mean success.
	sessionCreateErrs []error
	commitErrs        []error
}

type fakeFactory struct {
	st *fakeState
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{st: &fakeState{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{st: f.st}
}

type fakeUow struct {
	st   *fakeState
	snap *fakeState
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.snap = &fakeState{
		sessions:  append([]*entity.AnalysisSession(nil), u.st.sessions...),
		feedbacks: append([]*entity.Feedback(nil), u.st.feedbacks...),
	}
	return nil
}

func (u *fakeUow) Commit() error {
	if len(u.st.commitErrs) > 0 {
		err := u.st.commitErrs[0]
		u.st.commitErrs = u.st.commitErrs[1:]
		if err != nil {
			u.restore()
			return err
		}
	}
	u.snap = nil
	return nil
}

func (u *fakeUow) Rollback() error {
	u.restore()
	return nil
}

func (u *fakeUow) restore() {
	if u.snap != nil {
		u.st.sessions = u.snap.sessions
		u.st.feedbacks = u.snap.feedbacks
		u.snap = nil
	}
}

func (u *fakeUow) SessionRepository() contract.SessionRepository {
	return &fakeSessionRepo{st: u.st}
}

func (u *fakeUow) FeedbackRepository() contract.FeedbackRepository {
	return &fakeFeedbackRepo{st: u.st}
}

type fakeSessionRepo struct {
	st *fakeState
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.AnalysisSession) error {
	if len(r.st.sessionCreateErrs) > 0 {
		err := r.st.sessionCreateErrs[0]
		r.st.sessionCreateErrs = r.st.sessionCreateErrs[1:]
		if err != nil {
			return err
		}
	}
	r.st.sessions = append(r.st.sessions, session)
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.st.sessions[:0]
	for _, s := range r.st.sessions {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.st.sessions = kept
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnalysisSession, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			for _, s := range r.st.sessions {
				if s.Id == byID.ID {
					return s, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.st.sessions)), nil
}

func (r *fakeSessionRepo) ListNumbers(ctx context.Context) ([]int, error) {
	numbers := make([]int, 0, len(r.st.sessions))
	for _, s := range r.st.sessions {
		numbers = append(numbers, s.SessionNumber)
	}
	sort.Ints(numbers)
	return numbers, nil
}

func (r *fakeSessionRepo) FindAllWithCounts(ctx context.Context) ([]*entity.SessionWithCounts, error) {
	out := make([]*entity.SessionWithCounts, 0, len(r.st.sessions))
	for _, s := range r.st.sessions {
		row := &entity.SessionWithCounts{AnalysisSession: *s}
		for _, f := range r.st.feedbacks {
			if f.SessionId != s.Id {
				continue
			}
			row.TotalFeedbacks++
			switch f.Sentiment {
			case entity.SentimentPositive:
				row.PositiveFeedbacks++
			case entity.SentimentNegative:
				row.NegativeFeedbacks++
			case entity.SentimentNeutral:
				row.NeutralFeedbacks++
			}
		}
		out = append(out, row)
	}
	return out, nil
}

type fakeFeedbackRepo struct {
	st *fakeState
}

func (r *fakeFeedbackRepo) BulkCreate(ctx context.Context, feedbacks []*entity.Feedback) error {
	r.st.feedbacks = append(r.st.feedbacks, feedbacks...)
	return nil
}

func (r *fakeFeedbackRepo) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	kept := r.st.feedbacks[:0]
	for _, f := range r.st.feedbacks {
		if f.SessionId != sessionId {
			kept = append(kept, f)
		}
	}
	r.st.feedbacks = kept
	return nil
}

func (r *fakeFeedbackRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	var out []*entity.Feedback
	for _, f := range r.st.feedbacks {
		if matches(f, specs) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, f := range r.st.feedbacks {
		if matches(f, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeFeedbackRepo) CountBySentiment(ctx context.Context, specs ...specification.Specification) (map[entity.Sentiment]int64, error) {
	counts := make(map[entity.Sentiment]int64, 4)
	for _, s := range entity.AllSentiments() {
		counts[s] = 0
	}
	for _, f := range r.st.feedbacks {
		if matches(f, specs) {
			counts[f.Sentiment]++
		}
	}
	return counts, nil
}

func (r *fakeFeedbackRepo) DistinctProductAreas(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, f := range r.st.feedbacks {
		if f.ProductArea != nil && !seen[*f.ProductArea] {
			seen[*f.ProductArea] = true
			out = append(out, *f.ProductArea)
		}
	}
	sort.Strings(out)
	return out, nil
}

func matches(f *entity.Feedback, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.BySessionID:
			if f.SessionId != s.SessionID {
				return false
			}
		case specification.BySentiment:
			if f.Sentiment != s.Sentiment {
				return false
			}
		case specification.ProductAreaContains:
			if f.ProductArea == nil || !strings.Contains(strings.ToLower(*f.ProductArea), strings.ToLower(s.Term)) {
				return false
			}
		}
	}
	return true
}

// fakePublisherService records published payloads.
type fakePublisherService struct {
	payloads [][]byte
}

func (p *fakePublisherService) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

// noopLogger satisfies logger.ILogger for tests.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
