package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

type fakeRepo struct {
	bookings  []*domain.Booking
	getErr    error
	createErr error
	created   []*domain.Booking
}

func (f *fakeRepo) GetByDateForUpdate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.getErr
}

func (f *fakeRepo) CreateSeats(_ context.Context, seats []*domain.Booking) ([]*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for i, seat := range seats {
		seat.ID = int64(len(f.created) + i + 1)
		seat.CreatedAt = time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)
	}
	f.created = append(f.created, seats...)
	return seats, nil
}

type fakeTxManager struct {
	err   error
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fixedCode string

func (c fixedCode) NewCode() string { return string(c) }

type firstRandom struct{}

func (firstRandom) IntN(int) int { return 0 }

type fakeMetrics struct {
	decisions   []string
	suggestions []int
	seats       int
}

func (f *fakeMetrics) RecordDecision(status string) { f.decisions = append(f.decisions, status) }
func (f *fakeMetrics) RecordSuggestions(n int)      { f.suggestions = append(f.suggestions, n) }
func (f *fakeMetrics) RecordSeatsBooked(n int)      { f.seats += n }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

func seatsAt(at string, n int) []*domain.Booking {
	out := make([]*domain.Booking, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &domain.Booking{TimeOfDay: types.TimeString(at), Status: domain.StatusConfirmed})
	}
	return out
}

func newTestUseCase(repo *fakeRepo, tx *fakeTxManager, m *fakeMetrics) *UseCase {
	uc := NewUseCase(repo, tx, nil, nopLogger{})
	if m != nil {
		uc.metrics = m
	}
	uc.codeGenerator = fixedCode("res-1")
	uc.random = firstRandom{}
	return uc
}

func validRequest(partySize int, at types.TimeString) *Request {
	return &Request{PartySize: partySize, Date: testDate, StartTime: at, GuestName: " Ana "}
}

func TestExecute_CreatesOneSeatPerGuest(t *testing.T) {
	repo := &fakeRepo{bookings: seatsAt("19:00", 1)}
	tx := &fakeTxManager{}
	m := &fakeMetrics{}
	uc := newTestUseCase(repo, tx, m)

	resp, err := uc.Execute(context.Background(), validRequest(4, "19:00"))
	require.NoError(t, err)

	assert.Equal(t, "res-1", resp.ReservationCode)
	assert.Equal(t, 4, resp.PartySize)
	assert.Equal(t, 2, resp.SlotsUsed)
	assert.Equal(t, "Ana", resp.GuestName)
	assert.Equal(t, []int64{1, 2, 3, 4}, resp.SeatIDs)
	assert.False(t, resp.CreatedAt.IsZero())

	require.Len(t, repo.created, 4)
	for _, seat := range repo.created {
		assert.Equal(t, "res-1", seat.ReservationCode)
		assert.Equal(t, types.TimeString("19:00"), seat.TimeOfDay)
		assert.Equal(t, domain.StatusConfirmed, seat.Status)
	}

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []string{"OK"}, m.decisions)
	assert.Equal(t, 4, m.seats)
}

func TestExecute_FullReturnsSuggestions(t *testing.T) {
	repo := &fakeRepo{bookings: append(seatsAt("19:00", 2), seatsAt("19:30", 2)...)}
	m := &fakeMetrics{}
	uc := newTestUseCase(repo, &fakeTxManager{}, m)

	_, err := uc.Execute(context.Background(), validRequest(3, "19:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	var unavailable *SlotUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Len(t, unavailable.Suggestions, domain.MaxSuggestions)
	assert.NotContains(t, unavailable.Suggestions, types.TimeString("19:00"))
	assert.Contains(t, err.Error(), "try ")

	assert.Empty(t, repo.created)
	assert.Equal(t, []string{"FULL"}, m.decisions)
	assert.Equal(t, []int{3}, m.suggestions)
}

func TestExecute_OverLimitSkipsTransaction(t *testing.T) {
	tx := &fakeTxManager{}
	m := &fakeMetrics{}
	uc := newTestUseCase(&fakeRepo{}, tx, m)

	_, err := uc.Execute(context.Background(), validRequest(7, "12:00"))
	assert.ErrorIs(t, err, ErrPartyOverLimit)
	assert.Zero(t, tx.calls)
	assert.Equal(t, []string{"OVER_LIMIT"}, m.decisions)
}

func TestExecute_NoClosingGuardOnCommit(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeTxManager{}, nil)

	resp, err := uc.Execute(context.Background(), validRequest(5, "21:30"))
	require.NoError(t, err)
	assert.Equal(t, 5, resp.PartySize)
}

func TestExecute_Validation(t *testing.T) {
	long := string(make([]rune, domain.MaxNotesLength+1))

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{name: "zero party", req: &Request{Date: testDate, StartTime: "10:00", GuestName: "Ana"}},
		{name: "no date", req: &Request{PartySize: 1, StartTime: "10:00", GuestName: "Ana"}},
		{name: "no time", req: &Request{PartySize: 1, Date: testDate, GuestName: "Ana"}},
		{name: "bad time", req: &Request{PartySize: 1, Date: testDate, StartTime: "ten", GuestName: "Ana"}},
		{name: "blank name", req: &Request{PartySize: 1, Date: testDate, StartTime: "10:00", GuestName: "  "}},
		{name: "long notes", req: &Request{PartySize: 1, Date: testDate, StartTime: "10:00", GuestName: "Ana", Notes: &long}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTxManager{}
			uc := newTestUseCase(&fakeRepo{}, tx, nil)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestExecute_InternalErrors(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeRepo
		tx   *fakeTxManager
	}{
		{name: "get bookings", repo: &fakeRepo{getErr: errors.New("timeout")}, tx: &fakeTxManager{}},
		{name: "create seats", repo: &fakeRepo{createErr: errors.New("constraint")}, tx: &fakeTxManager{}},
		{name: "transaction", repo: &fakeRepo{}, tx: &fakeTxManager{err: errors.New("begin failed")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.repo, tt.tx, nil)

			_, err := uc.Execute(context.Background(), validRequest(2, "13:00"))
			assert.ErrorIs(t, err, ErrInternal)
			assert.NotErrorIs(t, err, ErrSlotNotAvailable)
		})
	}
}

func TestUUIDCodeGenerator(t *testing.T) {
	g := &UUIDCodeGenerator{}
	a, b := g.NewCode(), g.NewCode()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
