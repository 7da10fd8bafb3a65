package service

import (
	"context"
	"errors"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/specification"
	"thrapy-be/pkg/llm"
)

// The fakes below satisfy the repository contracts in memory. They evaluate
// specifications by building the same bson filter the Mongo implementations
// would and matching it against the document's filterable fields.

func matchDoc(doc map[string]interface{}, specs []specification.Specification) bool {
	filter := specification.Filter(specs...)
	for key, want := range filter {
		if doc[key] != want {
			return false
		}
	}
	return true
}

type fakeUserRepo struct {
	users []*entity.User
}

func userDoc(u *entity.User) map[string]interface{} {
	return map[string]interface{}{"id": u.Id, "email": u.Email, "user_id": u.Id}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range f.users {
		if matchDoc(userDoc(u), specs) {
			return u, nil
		}
	}
	return nil, nil
}

type fakeTherapistRepo struct {
	profiles []*entity.TherapistProfile
}

func therapistDoc(p *entity.TherapistProfile) map[string]interface{} {
	return map[string]interface{}{"id": p.Id, "user_id": p.UserId, "is_available": p.IsAvailable}
}

func (f *fakeTherapistRepo) Create(_ context.Context, profile *entity.TherapistProfile) error {
	f.profiles = append(f.profiles, profile)
	return nil
}

func (f *fakeTherapistRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.TherapistProfile, error) {
	for _, p := range f.profiles {
		if matchDoc(therapistDoc(p), specs) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeTherapistRepo) FindAll(_ context.Context, limit int64, specs ...specification.Specification) ([]*entity.TherapistProfile, error) {
	matched := make([]*entity.TherapistProfile, 0)
	for _, p := range f.profiles {
		if matchDoc(therapistDoc(p), specs) && int64(len(matched)) < limit {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

type fakeAvailabilityRepo struct {
	upserted []*entity.TherapistAvailability
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, availability *entity.TherapistAvailability) error {
	for i, existing := range f.upserted {
		if existing.TherapistId == availability.TherapistId {
			f.upserted[i] = availability
			return nil
		}
	}
	f.upserted = append(f.upserted, availability)
	return nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
}

func sessionDoc(s *entity.Session) map[string]interface{} {
	return map[string]interface{}{"id": s.Id, "user_id": s.UserId, "session_type": s.SessionType}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Session, error) {
	for _, s := range f.sessions {
		if matchDoc(sessionDoc(s), specs) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindAll(_ context.Context, limit int64, specs ...specification.Specification) ([]*entity.Session, error) {
	matched := make([]*entity.Session, 0)
	for _, s := range f.sessions {
		if matchDoc(sessionDoc(s), specs) && int64(len(matched)) < limit {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

type fakePaymentRepo struct {
	payments []*entity.PaymentRecord
}

func paymentDoc(p *entity.PaymentRecord) map[string]interface{} {
	return map[string]interface{}{"id": p.Id, "user_id": p.UserId, "session_id": p.SessionId}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.PaymentRecord) error {
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) FindAll(_ context.Context, limit int64, specs ...specification.Specification) ([]*entity.PaymentRecord, error) {
	matched := make([]*entity.PaymentRecord, 0)
	for _, p := range f.payments {
		if matchDoc(paymentDoc(p), specs) && int64(len(matched)) < limit {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

type fakeChatHistoryRepo struct {
	entries []*entity.ChatHistoryEntry
}

func chatDoc(e *entity.ChatHistoryEntry) map[string]interface{} {
	return map[string]interface{}{"id": e.Id, "user_id": e.UserId, "session_id": e.SessionId}
}

func (f *fakeChatHistoryRepo) Create(_ context.Context, entry *entity.ChatHistoryEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeChatHistoryRepo) FindAll(_ context.Context, limit int64, specs ...specification.Specification) ([]*entity.ChatHistoryEntry, error) {
	matched := make([]*entity.ChatHistoryEntry, 0)
	for _, e := range f.entries {
		if matchDoc(chatDoc(e), specs) && int64(len(matched)) < limit {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

type fakeLLMProvider struct {
	response   string
	err        error
	gotHistory []llm.Message
	gotOptions llm.Options
	callCount  int
}

func (f *fakeLLMProvider) Chat(_ context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.callCount++
	f.gotHistory = history
	f.gotOptions = llm.Options{}
	for _, opt := range opts {
		opt(&f.gotOptions)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

var errProviderDown = errors.New("openai error: status 503, body: upstream overloaded")
