//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/queue"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/metrics"
	"car-rental-api/internal/usecase"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/tests/common/builder"
	queriesmock "car-rental-api/tests/mock/queries"
	usecasemock "car-rental-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ----------------------------------------------------------------------------
// Local stubs for the side channels; their behavior is not under test here.
// ----------------------------------------------------------------------------

type stubCache struct{}

func (stubCache) Get(context.Context, uuid.UUID, time.Time, time.Time) (bool, bool) {
	return false, false
}
func (stubCache) Set(context.Context, uuid.UUID, time.Time, time.Time, bool) {}
func (stubCache) Invalidate(context.Context, uuid.UUID)                      {}

type stubPublisher struct{}

func (stubPublisher) Publish(context.Context, string, queue.RentalEvent) error { return nil }

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func conflictErr() error {
	return infra.WrapRepoErr("conflict", nil, infra.KindConflict)
}

// ----------------------------------------------------------------------------
// Suite
// ----------------------------------------------------------------------------

type RentalUseCaseTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	rentals *usecasemock.MockRentalStore
	cars    *usecasemock.MockCarRegistry
	clients *usecasemock.MockClientRegistry
	users   *usecasemock.MockUserRegistry
	views   *queriesmock.MockRentalQueries
	clk     *clock.MockClock
}

func (s *RentalUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.rentals = usecasemock.NewMockRentalStore(s.ctrl)
	s.cars = usecasemock.NewMockCarRegistry(s.ctrl)
	s.clients = usecasemock.NewMockClientRegistry(s.ctrl)
	s.users = usecasemock.NewMockUserRegistry(s.ctrl)
	s.views = queriesmock.NewMockRentalQueries(s.ctrl)
	s.clk = clock.NewMockClock(builder.NewRentalBuilder().Now)
}

func (s *RentalUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RentalUseCaseTestSuite) newEngine(cfg config.EngineConfig) usecase.RentalUseCase {
	return usecase.NewRentalUseCase(
		s.rentals, s.cars, s.clients, s.users, s.views,
		stubCache{}, stubPublisher{}, s.clk, cfg,
	)
}

func TestRentalUseCaseSuite(t *testing.T) {
	suite.Run(t, new(RentalUseCaseTestSuite))
}

// ----------------------------------------------------------------------------
// CreateRental
// ----------------------------------------------------------------------------

func (s *RentalUseCaseTestSuite) TestCreateRental() {
	s.Run("success: future booking is created AWAITING", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		params := b.BuildCreateParams()
		view := b.BuildView(rental.StatusAwaiting)

		s.clients.EXPECT().Exists(gomock.Any(), b.ClientID).Return(true, nil)
		s.cars.EXPECT().Exists(gomock.Any(), b.CarID).Return(true, nil)
		s.rentals.EXPECT().FindOverlapping(gomock.Any(), b.CarID, b.StartAt, b.EndAt).Return(nil, nil)
		s.rentals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ren *rental.Rental) error {
				s.Equal(rental.StatusAwaiting, ren.Status())
				return nil
			})
		s.views.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(view, nil)

		got, err := s.newEngine(config.EngineConfig{}).CreateRental(context.Background(), params)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("success: booking already underway starts ACTIVE and marks the car", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder().WithStartedPeriod()
		params := b.BuildCreateParams()
		view := b.BuildView(rental.StatusActive)

		s.clients.EXPECT().Exists(gomock.Any(), b.ClientID).Return(true, nil)
		s.cars.EXPECT().Exists(gomock.Any(), b.CarID).Return(true, nil)
		s.rentals.EXPECT().FindOverlapping(gomock.Any(), b.CarID, b.StartAt, b.EndAt).Return(nil, nil)
		s.rentals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ren *rental.Rental) error {
				s.Equal(rental.StatusActive, ren.Status())
				return nil
			})
		s.cars.EXPECT().UpdateStatus(gomock.Any(), b.CarID, car.StatusRented).Return(nil)
		s.views.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(view, nil)

		_, err := s.newEngine(config.EngineConfig{}).CreateRental(context.Background(), params)
		s.NoError(err)
	})

	s.Run("error: unknown client is rejected before any other check", func() {
		s.SetupTest()
		params := builder.NewRentalBuilder().BuildCreateParams()

		s.clients.EXPECT().Exists(gomock.Any(), params.ClientID).Return(false, nil)

		_, err := s.newEngine(config.EngineConfig{}).CreateRental(context.Background(), params)
		s.ErrorIs(err, errs.ErrClientNotFound)
	})

	s.Run("error: unknown car", func() {
		s.SetupTest()
		params := builder.NewRentalBuilder().BuildCreateParams()

		s.clients.EXPECT().Exists(gomock.Any(), params.ClientID).Return(true, nil)
		s.cars.EXPECT().Exists(gomock.Any(), params.CarID).Return(false, nil)

		_, err := s.newEngine(config.EngineConfig{}).CreateRental(context.Background(), params)
		s.ErrorIs(err, errs.ErrCarNotFound)
	})

	s.Run("error: unknown issuer", func() {
		s.SetupTest()
		issuerID := uuid.New()
		b := builder.NewRentalBuilder().WithIssuerID(issuerID)
		params := b.BuildCreateParams()

		s.clients.EXPECT().Exists(gomock.Any(), b.ClientID).Return(true, nil)
		s.cars.EXPECT().Exists(gomock.Any(), b.CarID).Return(true, nil)
		s.users.EXPECT().Exists(gomock.Any(), issuerID).Return(false, nil)

		_, err := s.newEngine(config.EngineConfig{}).CreateRental(context.Background(), params)
		s.ErrorIs(err, errs.ErrIssuerNotFound)
	})

	s.Run("error: end not after start", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		b.EndAt = b.StartAt
		params := b.BuildCreateParams()

		s.clients.EXPECT().Exists(gomock.Any(), b.ClientID).Return(true, nil)
		s.cars.EXPECT().Exists(gomock.Any(), b.CarID).Return(true, nil)

		_, err := s.newEngine(config.EngineConfig{}).CreateRental(context.Background(), params)
		s.ErrorIs(err, errs.ErrInvalidPeriod)
	})

	s.Run("error: overlapping booking reports the conflicting interval", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		params := b.BuildCreateParams()

		blocking, buildErr := builder.NewRentalBuilder().
			WithCarID(b.CarID).
			WithPeriod(b.StartAt.Add(-time.Hour), b.StartAt.Add(time.Hour)).
			BuildDomain()
		s.Require().NoError(buildErr)

		s.clients.EXPECT().Exists(gomock.Any(), b.ClientID).Return(true, nil)
		s.cars.EXPECT().Exists(gomock.Any(), b.CarID).Return(true, nil)
		s.rentals.EXPECT().FindOverlapping(gomock.Any(), b.CarID, b.StartAt, b.EndAt).
			Return([]*rental.Rental{blocking}, nil)

		_, err := s.newEngine(config.EngineConfig{}).CreateRental(context.Background(), params)
		s.ErrorIs(err, errs.ErrCarUnavailable)

		var conflict *usecase.ConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Equal(blocking.ID(), conflict.RentalID)
		s.Equal(blocking.Period().Start(), conflict.StartAt)
		s.Equal(blocking.Period().End(), conflict.EndAt)
	})

	s.Run("error: exclusion constraint loss is re-validated for a usable answer", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		params := b.BuildCreateParams()

		blocking, buildErr := builder.NewRentalBuilder().
			WithCarID(b.CarID).
			WithPeriod(b.StartAt, b.EndAt).
			BuildDomain()
		s.Require().NoError(buildErr)

		s.clients.EXPECT().Exists(gomock.Any(), b.ClientID).Return(true, nil)
		s.cars.EXPECT().Exists(gomock.Any(), b.CarID).Return(true, nil)
		// First check passes, the insert loses to a concurrent writer, the
		// second check finds the winner.
		gomock.InOrder(
			s.rentals.EXPECT().FindOverlapping(gomock.Any(), b.CarID, b.StartAt, b.EndAt).Return(nil, nil),
			s.rentals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(conflictErr()),
			s.rentals.EXPECT().FindOverlapping(gomock.Any(), b.CarID, b.StartAt, b.EndAt).
				Return([]*rental.Rental{blocking}, nil),
		)

		_, err := s.newEngine(config.EngineConfig{}).CreateRental(context.Background(), params)
		s.ErrorIs(err, errs.ErrCarUnavailable)
	})
}

// ----------------------------------------------------------------------------
// ExtendRental
// ----------------------------------------------------------------------------

func (s *RentalUseCaseTestSuite) TestExtendRental() {
	newStored := func(b *builder.RentalBuilder) *rental.Rental {
		ren, err := b.BuildDomain()
		s.Require().NoError(err)
		return ren
	}

	s.Run("success: later end is persisted", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		ren := newStored(b)
		newEnd := b.EndAt.Add(6 * time.Hour)
		view := b.BuildView(rental.StatusAwaiting)

		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.rentals.EXPECT().UpdateEnd(gomock.Any(), ren.ID(), newEnd).Return(nil)
		s.views.EXPECT().GetByID(gomock.Any(), ren.ID()).Return(view, nil)

		got, err := s.newEngine(config.EngineConfig{}).ExtendRental(context.Background(), ren.ID(), newEnd)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("no-op: end at or before the current end returns the unchanged rental", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		ren := newStored(b)
		view := b.BuildView(rental.StatusAwaiting)

		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.views.EXPECT().GetByID(gomock.Any(), ren.ID()).Return(view, nil)

		got, err := s.newEngine(config.EngineConfig{}).ExtendRental(context.Background(), ren.ID(), b.EndAt)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("revalidation flag: extension into a booked window is rejected", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		ren := newStored(b)
		newEnd := b.EndAt.Add(6 * time.Hour)

		blocking, buildErr := builder.NewRentalBuilder().
			WithCarID(b.CarID).
			WithPeriod(b.EndAt, newEnd).
			BuildDomain()
		s.Require().NoError(buildErr)

		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.rentals.EXPECT().FindOverlapping(gomock.Any(), b.CarID, b.EndAt, newEnd).
			Return([]*rental.Rental{blocking}, nil)

		_, err := s.newEngine(config.EngineConfig{RevalidateOnExtend: true}).
			ExtendRental(context.Background(), ren.ID(), newEnd)
		s.ErrorIs(err, errs.ErrCarUnavailable)
	})

	s.Run("error: unknown rental", func() {
		s.SetupTest()
		id := uuid.New()
		s.rentals.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.newEngine(config.EngineConfig{}).ExtendRental(context.Background(), id, time.Now())
		s.ErrorIs(err, errs.ErrRentalNotFound)
	})
}

// ----------------------------------------------------------------------------
// CompleteRental
// ----------------------------------------------------------------------------

func (s *RentalUseCaseTestSuite) TestCompleteRental() {
	s.Run("success: settles at rate times rounded-up hours", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder().WithStartedPeriod()
		ren, buildErr := b.BuildDomain()
		s.Require().NoError(buildErr)
		actualReturn := b.StartAt.Add(90 * time.Minute)
		view := b.BuildView(rental.StatusCompleted)

		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.cars.EXPECT().FindByID(gomock.Any(), b.CarID).
			Return(&queries.CarSnapshot{ID: b.CarID, HourlyRateCents: 500}, nil)
		s.rentals.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, settled *rental.Rental) error {
				s.Equal(rental.StatusCompleted, settled.Status())
				s.Require().NotNil(settled.TotalCostCents())
				s.Equal(int64(1000), *settled.TotalCostCents())
				return nil
			})
		s.cars.EXPECT().UpdateStatus(gomock.Any(), b.CarID, car.StatusAvailable).Return(nil)
		s.views.EXPECT().GetByID(gomock.Any(), ren.ID()).Return(view, nil)

		got, err := s.newEngine(config.EngineConfig{}).
			CompleteRental(context.Background(), ren.ID(), actualReturn)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: already finished", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		notes, _ := rental.NewNotes("")
		period, buildErr := rental.NewPeriod(b.StartAt, b.EndAt)
		s.Require().NoError(buildErr)
		finished := rental.ReconstructRental(
			b.ID, b.CarID, b.ClientID, nil, period, nil, nil,
			rental.StatusCancelled, notes, b.Now,
		)

		s.rentals.EXPECT().FindByID(gomock.Any(), b.ID).Return(finished, nil)
		s.cars.EXPECT().FindByID(gomock.Any(), b.CarID).
			Return(&queries.CarSnapshot{ID: b.CarID, HourlyRateCents: 500}, nil)

		_, err := s.newEngine(config.EngineConfig{}).
			CompleteRental(context.Background(), b.ID, b.StartAt.Add(time.Hour))
		s.ErrorIs(err, errs.ErrRentalFinished)
	})

	s.Run("error: AWAITING rejected when the engine requires ACTIVE", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		ren, buildErr := b.BuildDomain()
		s.Require().NoError(buildErr)
		s.Require().Equal(rental.StatusAwaiting, ren.Status())

		s.clk.Set(b.StartAt.Add(2 * time.Hour))
		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.cars.EXPECT().FindByID(gomock.Any(), b.CarID).
			Return(&queries.CarSnapshot{ID: b.CarID, HourlyRateCents: 500}, nil)

		_, err := s.newEngine(config.EngineConfig{RequireActiveOnComplete: true}).
			CompleteRental(context.Background(), ren.ID(), b.StartAt.Add(time.Hour))
		s.ErrorIs(err, errs.ErrRentalNotActive)
	})

	s.Run("error: return instant outside the allowed range", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder().WithStartedPeriod()
		ren, buildErr := b.BuildDomain()
		s.Require().NoError(buildErr)

		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.cars.EXPECT().FindByID(gomock.Any(), b.CarID).
			Return(&queries.CarSnapshot{ID: b.CarID, HourlyRateCents: 500}, nil)

		_, err := s.newEngine(config.EngineConfig{}).
			CompleteRental(context.Background(), ren.ID(), b.StartAt.Add(-time.Hour))
		s.ErrorIs(err, errs.ErrInvalidReturnDate)
	})

	s.Run("error: concurrent completion surfaces as already finished", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder().WithStartedPeriod()
		ren, buildErr := b.BuildDomain()
		s.Require().NoError(buildErr)

		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.cars.EXPECT().FindByID(gomock.Any(), b.CarID).
			Return(&queries.CarSnapshot{ID: b.CarID, HourlyRateCents: 500}, nil)
		s.rentals.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(conflictErr())

		_, err := s.newEngine(config.EngineConfig{}).
			CompleteRental(context.Background(), ren.ID(), b.StartAt.Add(time.Hour))
		s.ErrorIs(err, errs.ErrRentalFinished)
	})
}

// ----------------------------------------------------------------------------
// CancelRental / DeleteRental
// ----------------------------------------------------------------------------

func (s *RentalUseCaseTestSuite) TestCancelRental() {
	s.Run("success: AWAITING rental cancels", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		ren, buildErr := b.BuildDomain()
		s.Require().NoError(buildErr)
		view := b.BuildView(rental.StatusCancelled)

		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.rentals.EXPECT().Cancel(gomock.Any(), ren.ID()).Return(nil)
		s.views.EXPECT().GetByID(gomock.Any(), ren.ID()).Return(view, nil)

		got, err := s.newEngine(config.EngineConfig{}).CancelRental(context.Background(), ren.ID())
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("no-op: ACTIVE rental stays unchanged", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder().WithStartedPeriod()
		ren, buildErr := b.BuildDomain()
		s.Require().NoError(buildErr)
		view := b.BuildView(rental.StatusActive)

		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.views.EXPECT().GetByID(gomock.Any(), ren.ID()).Return(view, nil)

		got, err := s.newEngine(config.EngineConfig{}).CancelRental(context.Background(), ren.ID())
		s.NoError(err)
		s.Equal(rental.StatusActive.String(), got.Status)
	})

	s.Run("error: unknown rental", func() {
		s.SetupTest()
		id := uuid.New()
		s.rentals.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.newEngine(config.EngineConfig{}).CancelRental(context.Background(), id)
		s.ErrorIs(err, errs.ErrRentalNotFound)
	})
}

func (s *RentalUseCaseTestSuite) TestDeleteRental() {
	s.Run("success: deletes at any lifecycle state", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		ren, buildErr := b.BuildDomain()
		s.Require().NoError(buildErr)

		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.rentals.EXPECT().Delete(gomock.Any(), ren.ID()).Return(true, nil)

		deleted, err := s.newEngine(config.EngineConfig{}).DeleteRental(context.Background(), ren.ID())
		s.NoError(err)
		s.True(deleted)
	})

	s.Run("unknown rental reports false without error", func() {
		s.SetupTest()
		id := uuid.New()
		s.rentals.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		deleted, err := s.newEngine(config.EngineConfig{}).DeleteRental(context.Background(), id)
		s.NoError(err)
		s.False(deleted)
	})

	s.Run("storage failure counts as a delete error", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		ren, buildErr := b.BuildDomain()
		s.Require().NoError(buildErr)

		s.rentals.EXPECT().FindByID(gomock.Any(), ren.ID()).Return(ren, nil)
		s.rentals.EXPECT().Delete(gomock.Any(), ren.ID()).
			Return(false, infra.WrapRepoErr("delete rental", nil, infra.KindDBFailure))

		before := testutil.ToFloat64(metrics.RentalOperations.WithLabelValues("delete", "error"))
		deleted, err := s.newEngine(config.EngineConfig{}).DeleteRental(context.Background(), ren.ID())
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
		s.False(deleted)
		after := testutil.ToFloat64(metrics.RentalOperations.WithLabelValues("delete", "error"))
		s.Equal(before+1, after)
	})
}

// ----------------------------------------------------------------------------
// IsCarAvailable
// ----------------------------------------------------------------------------

func (s *RentalUseCaseTestSuite) TestIsCarAvailable() {
	s.Run("free window answers true", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()

		s.cars.EXPECT().Exists(gomock.Any(), b.CarID).Return(true, nil)
		s.rentals.EXPECT().FindOverlapping(gomock.Any(), b.CarID, b.StartAt, b.EndAt).Return(nil, nil)

		available, err := s.newEngine(config.EngineConfig{}).
			IsCarAvailable(context.Background(), b.CarID, b.StartAt, b.EndAt)
		s.NoError(err)
		s.True(available)
	})

	s.Run("booked window answers false", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		blocking, buildErr := builder.NewRentalBuilder().
			WithCarID(b.CarID).
			WithPeriod(b.StartAt, b.EndAt).
			BuildDomain()
		s.Require().NoError(buildErr)

		s.cars.EXPECT().Exists(gomock.Any(), b.CarID).Return(true, nil)
		s.rentals.EXPECT().FindOverlapping(gomock.Any(), b.CarID, b.StartAt, b.EndAt).
			Return([]*rental.Rental{blocking}, nil)

		available, err := s.newEngine(config.EngineConfig{}).
			IsCarAvailable(context.Background(), b.CarID, b.StartAt, b.EndAt)
		s.NoError(err)
		s.False(available)
	})

	s.Run("error: invalid window", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()

		_, err := s.newEngine(config.EngineConfig{}).
			IsCarAvailable(context.Background(), b.CarID, b.EndAt, b.StartAt)
		s.ErrorIs(err, errs.ErrInvalidPeriod)
	})

	s.Run("error: unknown car", func() {
		s.SetupTest()
		b := builder.NewRentalBuilder()
		s.cars.EXPECT().Exists(gomock.Any(), b.CarID).Return(false, nil)

		_, err := s.newEngine(config.EngineConfig{}).
			IsCarAvailable(context.Background(), b.CarID, b.StartAt, b.EndAt)
		s.ErrorIs(err, errs.ErrCarNotFound)
	})
}

// ----------------------------------------------------------------------------
// Concurrency: two writers racing for the same car never both win.
// ----------------------------------------------------------------------------

type fakeRentalStore struct {
	mu      sync.Mutex
	rentals map[uuid.UUID]*rental.Rental
}

func newFakeRentalStore() *fakeRentalStore {
	return &fakeRentalStore{rentals: make(map[uuid.UUID]*rental.Rental)}
}

func (f *fakeRentalStore) Create(_ context.Context, ren *rental.Rental) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, other := range f.rentals {
		if other.CarID() != ren.CarID() || other.Status().IsTerminal() {
			continue
		}
		if other.Period().Overlaps(ren.Period()) {
			return infra.WrapRepoErr("booking overlap", nil, infra.KindConflict)
		}
	}
	f.rentals[ren.ID()] = ren
	return nil
}

func (f *fakeRentalStore) FindByID(_ context.Context, id uuid.UUID) (*rental.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ren, ok := f.rentals[id]
	if !ok {
		return nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	}
	return ren, nil
}

func (f *fakeRentalStore) UpdateEnd(context.Context, uuid.UUID, time.Time) error { return nil }
func (f *fakeRentalStore) Complete(context.Context, *rental.Rental) error        { return nil }
func (f *fakeRentalStore) Cancel(context.Context, uuid.UUID) error               { return nil }
func (f *fakeRentalStore) Delete(context.Context, uuid.UUID) (bool, error)       { return true, nil }

func (f *fakeRentalStore) FindOverlapping(_ context.Context, carID uuid.UUID, start, end time.Time) ([]*rental.Rental, error) {
	period, err := rental.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*rental.Rental
	for _, ren := range f.rentals {
		if ren.CarID() != carID || ren.Status() == rental.StatusCancelled {
			continue
		}
		if ren.Period().Overlaps(period) {
			result = append(result, ren)
		}
	}
	return result, nil
}

func (f *fakeRentalStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rentals)
}

type openRegistry struct{}

func (openRegistry) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }
func (openRegistry) FindByID(_ context.Context, id uuid.UUID) (*queries.CarSnapshot, error) {
	return &queries.CarSnapshot{ID: id, HourlyRateCents: 1000}, nil
}
func (openRegistry) UpdateStatus(context.Context, uuid.UUID, car.Status) error { return nil }

type idViews struct{}

func (idViews) GetByID(_ context.Context, id uuid.UUID) (*queries.RentalView, error) {
	return &queries.RentalView{ID: id}, nil
}
func (idViews) List(context.Context, queries.RentalFilter) ([]*queries.RentalView, error) {
	return nil, nil
}

func TestCreateRental_ConcurrentDoubleBooking(t *testing.T) {
	const trials = 100

	store := newFakeRentalStore()
	carID := uuid.New()
	base := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(base.Add(-time.Hour))

	engine := usecase.NewRentalUseCase(
		store, openRegistry{}, openRegistry{}, openRegistry{}, idViews{},
		stubCache{}, stubPublisher{}, clk, config.EngineConfig{},
	)

	for i := 0; i < trials; i++ {
		params := usecase.CreateRentalParams{
			CarID:    carID,
			ClientID: uuid.New(),
			StartAt:  base.Add(time.Duration(i) * 48 * time.Hour),
			EndAt:    base.Add(time.Duration(i)*48*time.Hour + 24*time.Hour),
		}

		results := make(chan error, 2)
		var wg sync.WaitGroup
		for w := 0; w < 2; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := engine.CreateRental(context.Background(), params)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var won, lost int
		for err := range results {
			if err == nil {
				won++
				continue
			}
			require.ErrorIs(t, err, errs.ErrCarUnavailable, "trial %d: unexpected error %v", i, err)
			lost++
		}
		require.Equal(t, 1, won, "trial %d: exactly one writer must win", i)
		require.Equal(t, 1, lost, "trial %d: exactly one writer must lose", i)
	}

	assert.Equal(t, trials, store.count())
}
