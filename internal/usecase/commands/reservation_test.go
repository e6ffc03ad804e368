//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"
	"stayhub/tests/common/builder"
	queriesmock "stayhub/tests/mock/queries"
	sharedmock "stayhub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	reservations  *sharedmock.MockReservationRepository
	notifications *sharedmock.MockNotificationRepository
	locker        *sharedmock.MockLocker
	queries       *queriesmock.MockReservationQueries
	clock         *clock.MockClock
	useCase       commands.ReservationCommands

	userID  uuid.UUID
	listing *shared.ListingSnapshot
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.locker = sharedmock.NewMockLocker(s.ctrl)
	s.queries = queriesmock.NewMockReservationQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC))

	s.useCase = commands.NewReservationUseCase(
		s.uow, s.queries, s.locker, s.clock, reservation.NewNightlyPriceCalculator(), 5*time.Second,
	)

	s.userID = uuid.New()
	s.listing = builder.NewListingBuilder().BuildSnapshot()

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	ctx := context.Background()

	s.Run("success: three nights at 100 cost 300.00", func() {
		var created *reservation.Reservation
		s.reads.EXPECT().ListingByID(gomock.Any(), s.listing.ID).Return(s.listing, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) error {
				created = res
				return nil
			})
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), shared.TopicReservationCreated, gomock.Any(), gomock.Any(), s.clock.Now()).
			DoAndReturn(func(_ context.Context, _ any, _ string, aggregateID uuid.UUID, payload []byte, _ time.Time) error {
				var ev commands.ReservationEvent
				s.Require().NoError(json.Unmarshal(payload, &ev))
				s.Equal(aggregateID, ev.ReservationID)
				s.Equal("300.00", ev.TotalPrice)
				return nil
			})
		view := builder.NewReservationBuilder().BuildView()
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, gomock.Any()).Return(view, nil)

		got, err := s.useCase.CreateReservation(ctx, s.userID, commands.CreateReservationInput{
			ListingID: s.listing.ID,
			CheckIn:   "2024-06-01",
			CheckOut:  "2024-06-04",
		})

		s.Require().NoError(err)
		s.Equal(view, got)
		s.Require().NotNil(created)
		s.Equal(3, created.Nights())
		s.Equal("300.00", created.TotalPrice().String())
		s.Equal(s.listing.Name, created.ListingName())
		s.Equal(1, created.Guests().Value())
		s.Equal(reservation.PaymentModePayOnArrival, created.PaymentMode())
		s.Equal(s.clock.Now(), created.CreatedAt())
	})

	s.Run("success: cod alias and explicit guests", func() {
		guests := 4
		s.reads.EXPECT().ListingByID(gomock.Any(), s.listing.ID).Return(s.listing, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) error {
				s.Equal(reservation.PaymentModePayOnArrival, res.PaymentMode())
				s.Equal(4, res.Guests().Value())
				return nil
			})
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, gomock.Any()).Return(&queries.ReservationView{}, nil)

		_, err := s.useCase.CreateReservation(ctx, s.userID, commands.CreateReservationInput{
			ListingID:   s.listing.ID,
			CheckIn:     "2024-06-01",
			CheckOut:    "2024-06-02",
			GuestCount:  &guests,
			PaymentMode: "cod",
		})

		s.NoError(err)
	})

	s.Run("error: invalid input never touches storage", func() {
		cases := []struct {
			name string
			in   commands.CreateReservationInput
		}{
			{name: "same day", in: commands.CreateReservationInput{ListingID: s.listing.ID, CheckIn: "2024-06-01", CheckOut: "2024-06-01"}},
			{name: "check out before check in", in: commands.CreateReservationInput{ListingID: s.listing.ID, CheckIn: "2024-06-04", CheckOut: "2024-06-01"}},
			{name: "bad date", in: commands.CreateReservationInput{ListingID: s.listing.ID, CheckIn: "01/06/2024", CheckOut: "2024-06-04"}},
			{name: "unknown payment mode", in: commands.CreateReservationInput{ListingID: s.listing.ID, CheckIn: "2024-06-01", CheckOut: "2024-06-04", PaymentMode: "bitcoin"}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, err := s.useCase.CreateReservation(ctx, s.userID, tc.in)
				s.True(errs.Is(err, errs.ErrInvalidInput))
			})
		}
	})

	s.Run("error: unknown listing", func() {
		s.reads.EXPECT().ListingByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound))

		_, err := s.useCase.CreateReservation(ctx, s.userID, commands.CreateReservationInput{
			ListingID: uuid.New(),
			CheckIn:   "2024-06-01",
			CheckOut:  "2024-06-04",
		})

		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: missing identity", func() {
		_, err := s.useCase.CreateReservation(ctx, uuid.Nil, commands.CreateReservationInput{})
		s.True(errs.Is(err, errs.ErrUnauthenticated))
	})

	s.Run("error: storage failure", func() {
		s.reads.EXPECT().ListingByID(gomock.Any(), s.listing.ID).Return(s.listing, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create reservation", assert.AnError))

		_, err := s.useCase.CreateReservation(ctx, s.userID, commands.CreateReservationInput{
			ListingID: s.listing.ID,
			CheckIn:   "2024-06-01",
			CheckOut:  "2024-06-04",
		})

		s.True(errs.Is(err, errs.ErrStorageFailure))
	})
}

func (s *ReservationCommandsTestSuite) TestMarkPaid() {
	ctx := context.Background()
	released := 0
	release := func() { released++ }

	s.Run("first call sets paid and enqueues an event", func() {
		released = 0
		b := builder.NewReservationBuilder().WithUserID(s.userID)
		res, err := b.BuildDomain()
		s.Require().NoError(err)

		s.locker.EXPECT().Acquire(gomock.Any(), "lock:reservation:pay:"+b.ID.String(), 5*time.Second).Return(release, nil)
		s.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID, s.userID).Return(res, nil)
		s.reservations.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), res).Return(true, nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), shared.TopicReservationPaid, b.ID, gomock.Any(), gomock.Any()).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, b.ID).Return(b.BuildView(), nil)

		_, err = s.useCase.MarkPaid(ctx, s.userID, b.ID)

		s.Require().NoError(err)
		s.True(res.IsPaid())
		s.Equal(s.clock.Now(), *res.PaidAt())
		s.Equal(1, released)
	})

	s.Run("second call is a no-op", func() {
		released = 0
		paidAt := time.Date(2024, 5, 21, 8, 0, 0, 0, time.UTC)
		b := builder.NewReservationBuilder().WithUserID(s.userID).AsPaid(paidAt)
		res, err := b.BuildDomain()
		s.Require().NoError(err)

		s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(release, nil)
		s.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID, s.userID).Return(res, nil)
		s.queries.EXPECT().GetByID(gomock.Any(), s.userID, b.ID).Return(b.BuildView(), nil)

		got, err := s.useCase.MarkPaid(ctx, s.userID, b.ID)

		s.Require().NoError(err)
		s.True(got.Paid)
		s.Equal(paidAt, *res.PaidAt())
		s.Equal(1, released)
	})

	s.Run("unknown or foreign reservation is not found", func() {
		id := uuid.New()
		s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(release, nil)
		s.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id, s.userID).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := s.useCase.MarkPaid(ctx, s.userID, id)

		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func TestParseBookingDefaults(t *testing.T) {
	// a zero guest count is treated as a single guest
	zero := 0
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	reads := sharedmock.NewMockCommandReads(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	repo := sharedmock.NewMockReservationRepository(ctrl)
	notifications := sharedmock.NewMockNotificationRepository(ctrl)
	q := queriesmock.NewMockReservationQueries(ctrl)
	listing := builder.NewListingBuilder().BuildSnapshot()

	uow.EXPECT().CommandReads().Return(reads)
	reads.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error { return fn(ctx, tx) })
	tx.EXPECT().DB().Return(nil).AnyTimes()
	tx.EXPECT().Reservations().Return(repo)
	tx.EXPECT().Notifications().Return(notifications)
	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) error {
			assert.Equal(t, 1, res.Guests().Value())
			assert.Equal(t, 1, res.Nights())
			return nil
		})
	notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	q.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(&queries.ReservationView{}, nil)

	uc := commands.NewReservationUseCase(uow, q, sharedmock.NewMockLocker(ctrl), clock.NewRealClock(), reservation.NewNightlyPriceCalculator(), time.Second)
	_, err := uc.CreateReservation(context.Background(), uuid.New(), commands.CreateReservationInput{
		ListingID:  listing.ID,
		CheckIn:    "2024-06-01T10:00:00Z",
		CheckOut:   "2024-06-01T22:00:00Z",
		GuestCount: &zero,
	})
	require.NoError(t, err)
}
