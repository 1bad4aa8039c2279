//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/identity"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra/idscan"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra/memstore"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra/session"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/clock"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"
	"github.com/cagegit/hotel-front-desk-agent/tests/common/builder"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// recordingNotifier captures staff alerts for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	alerts []staffAlert
	err    error
}

type staffAlert struct {
	Recipient string
	Message   string
}

func (n *recordingNotifier) Notify(_ context.Context, recipient, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.alerts = append(n.alerts, staffAlert{Recipient: recipient, Message: message})
	return nil
}

func (n *recordingNotifier) sentTo(recipient string) []staffAlert {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []staffAlert
	for _, a := range n.alerts {
		if a.Recipient == recipient {
			out = append(out, a)
		}
	}
	return out
}

type CheckInSuite struct {
	suite.Suite
	store    *memstore.Store
	idsvc    *idscan.MockService
	notifier *recordingNotifier
	sessions *session.MemoryStore
	clock    *clock.MockClock
	usecase  commands.CheckInCommands
}

func (s *CheckInSuite) SetupTest() {
	s.store = memstore.NewSeededStore()
	s.idsvc = idscan.NewMockService()
	s.notifier = &recordingNotifier{}
	s.sessions = session.NewMemoryStore(30 * time.Minute)
	s.clock = clock.NewMockClock(time.Date(2026, 2, 25, 15, 0, 0, 0, time.UTC))
	s.usecase = commands.NewCheckInCommands(
		s.store, s.store, s.idsvc, s.notifier, s.sessions, s.clock, slog.Default(),
	)
}

func TestCheckInSuite(t *testing.T) {
	suite.Run(t, new(CheckInSuite))
}

func (s *CheckInSuite) checkIn(guestName string) (*commands.CheckInResult, error) {
	return s.usecase.CheckIn(context.Background(), commands.CheckInParams{
		GuestName: guestName,
		SessionID: "sess-1",
		Operator:  "agent:front-desk",
	})
}

func (s *CheckInSuite) TestSingleReservationHappyPath() {
	result, err := s.checkIn("张伟")
	s.Require().NoError(err)

	s.False(result.SelectionRequired)
	s.Equal("G001", result.Guest.ID())
	s.Equal("RSV-20260225-001", result.Reservation.ID())
	s.Equal(room.TypeDeluxe, result.Room.RoomType())
	s.Equal("CARD-1000", result.Card.CardID())
	s.InDelta(96.5, result.FaceScore, 1e-9)
	s.False(result.ReconciliationNeeded)

	// Bookkeeping landed: room occupied, reservation checked in, audit written.
	s.Equal(room.StatusOccupied, s.store.RoomByNumber(result.Room.Number()).Status())
	s.Equal(reservation.StatusCheckedIn, s.store.ReservationByID("RSV-20260225-001").Status())
	records := s.store.CheckInRecords()
	s.Require().Len(records, 1)
	s.Equal("agent:front-desk", records[0].OperatedBy)
	s.True(records[0].IDVerified)
	s.True(records[0].FaceVerified)
	s.Equal(s.clock.Now(), records[0].CheckInTime)

	// Session carries the stay forward.
	sess, err := s.sessions.Load(context.Background(), "sess-1")
	s.Require().NoError(err)
	s.Require().NotNil(sess.Card)
	s.Equal("CARD-1000", sess.Card.CardID)
}

func (s *CheckInSuite) TestUnknownGuest() {
	_, err := s.checkIn("不存在")
	s.ErrorIs(err, commands.ErrReservationNotFound)
	s.Empty(s.store.CheckInRecords())
}

func (s *CheckInSuite) TestMultipleReservationsRequireSelection() {
	second, err := builder.NewReservationBuilder().
		WithID("RSV-20260301-001").
		WithGuest("G001", "张伟").
		WithRoomType(room.TypeSuite).
		WithDates(
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		).
		BuildDomain()
	s.Require().NoError(err)
	s.store.PutReservation(second)

	result, err := s.checkIn("张伟")
	s.Require().NoError(err)
	s.True(result.SelectionRequired)
	s.Require().Len(result.Candidates, 2)
	s.Equal(1, result.Candidates[0].Index)
	s.Equal(2, result.Candidates[1].Index)

	// Out-of-range ordinal is rejected without side effects.
	bad := 3
	_, err = s.usecase.CheckIn(context.Background(), commands.CheckInParams{
		GuestName: "张伟",
		Selection: &bad,
		Operator:  "agent:front-desk",
	})
	s.ErrorIs(err, commands.ErrInvalidSelection)
	s.Empty(s.store.CheckInRecords())

	// The guest picks the second one by its 1-based ordinal.
	selection := 2
	picked, err := s.usecase.CheckIn(context.Background(), commands.CheckInParams{
		GuestName: "张伟",
		Selection: &selection,
		SessionID: "sess-1",
		Operator:  "agent:front-desk",
	})
	s.Require().NoError(err)
	s.False(picked.SelectionRequired)
	s.Equal(result.Candidates[1].ReservationID, picked.Reservation.ID())
}

func (s *CheckInSuite) TestScanFailureRetriesOnce() {
	s.idsvc.QueueScan(identity.ScanResult{}, errors.New("scanner jam"))

	result, err := s.checkIn("张伟")
	s.Require().NoError(err)
	s.Equal("RSV-20260225-001", result.Reservation.ID())
}

func (s *CheckInSuite) TestScanFailureTwiceStops() {
	s.idsvc.QueueScan(identity.ScanResult{}, errors.New("scanner jam"))
	s.idsvc.QueueScan(identity.ScanResult{}, errors.New("scanner jam"))

	_, err := s.checkIn("张伟")
	s.ErrorIs(err, commands.ErrScanFailed)

	s.Require().Len(s.notifier.sentTo(commands.RecipientDutyManager), 1)
	s.Empty(s.store.CheckInRecords())
}

func (s *CheckInSuite) TestNameMismatchEscalatesAndStops() {
	s.idsvc.QueueScan(identity.ScanResult{
		Success:  true,
		Name:     "张三",
		PhotoB64: "photo",
	}, nil)

	_, err := s.checkIn("张伟")
	s.ErrorIs(err, commands.ErrNameMismatch)

	// Duty manager is told, nothing is mutated.
	s.Require().Len(s.notifier.sentTo(commands.RecipientDutyManager), 1)
	s.Empty(s.store.CheckInRecords())
	s.Equal(reservation.StatusConfirmed, s.store.ReservationByID("RSV-20260225-001").Status())
}

func (s *CheckInSuite) TestFaceRejectionIsTerminal() {
	s.idsvc.QueueFace(identity.FaceMatchResult{IsMatch: false, Score: 41.2, Liveness: true}, nil)

	_, err := s.checkIn("张伟")
	s.ErrorIs(err, commands.ErrFaceVerificationFailed)
	s.Empty(s.store.CheckInRecords())
}

func (s *CheckInSuite) TestNoRoomAvailable() {
	// Exhaust the deluxe pool before the guest arrives.
	ctx := context.Background()
	for {
		if _, err := s.store.AssignRoom(ctx, room.TypeDeluxe); err != nil {
			break
		}
	}

	_, err := s.checkIn("张伟")
	s.ErrorIs(err, commands.ErrNoRoomAvailable)

	// The reservation survives untouched for a later attempt.
	s.Equal(reservation.StatusConfirmed, s.store.ReservationByID("RSV-20260225-001").Status())
	s.Empty(s.store.CheckInRecords())
}

func (s *CheckInSuite) TestTwoGuestsNeverShareARoom() {
	// Only one standard room is free once 1202 is claimed.
	ctx := context.Background()
	_, err := s.store.AssignRoom(ctx, room.TypeStandard)
	require.NoError(s.T(), err)

	result, err := s.checkIn("李娟")
	s.Require().NoError(err)

	_, err = s.store.AssignRoom(ctx, room.TypeStandard)
	s.Error(err, "no standard room may remain after the claim and the check-in")
	s.Equal(room.StatusOccupied, s.store.RoomByNumber(result.Room.Number()).Status())
}

// faultyRegistry fails the audit write after the card hand-over.
type faultyRegistry struct {
	commands.GuestRegistry
}

func (f *faultyRegistry) AppendCheckInRecord(context.Context, commands.CheckInRecord) error {
	return errors.New("registry write timeout")
}

func (s *CheckInSuite) TestBookkeepingFailureCompletesWithReconciliation() {
	s.usecase = commands.NewCheckInCommands(
		&faultyRegistry{GuestRegistry: s.store}, s.store, s.idsvc, s.notifier, s.sessions, s.clock, slog.Default(),
	)

	// The card is already handed over when the audit write fails: the
	// check-in is still reported complete and staff reconcile out of band.
	result, err := s.checkIn("张伟")
	s.Require().NoError(err)
	s.True(result.ReconciliationNeeded)
	s.Require().NotNil(result.Card)
	s.Require().Len(s.notifier.sentTo(commands.RecipientTechSupport), 1)
}
