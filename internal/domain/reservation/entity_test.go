//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func newServices(now time.Time) *reservation.Services {
	return &reservation.Services{
		Clock:           clock.NewMockClock(now),
		PriceCalculator: reservation.NewNightlyPriceCalculator(),
	}
}

func listingAt(t *testing.T, price string) reservation.ListingSnapshot {
	t.Helper()
	m, err := reservation.NewMoney(decimal.RequireFromString(price))
	require.NoError(t, err)
	return reservation.ListingSnapshot{ID: uuid.New(), Name: "L1", Price: m}
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("three nights at 100", func(t *testing.T) {
		period, err := reservation.NewStayPeriod(day(1), day(4))
		require.NoError(t, err)
		l := listingAt(t, "100")

		res, err := reservation.NewReservation(newServices(now), userID, l, period,
			reservation.NewGuestCount(2), reservation.PaymentModeCard)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, 3, res.Nights())
		assert.Equal(t, "300.00", res.TotalPrice().String())
		assert.Equal(t, "100.00", res.UnitPrice().String())
		assert.Equal(t, l.ID, res.ListingID())
		assert.Equal(t, "L1", res.ListingName())
		assert.Equal(t, now, res.CreatedAt())
		assert.True(t, res.BelongsTo(userID))
		assert.False(t, res.IsPaid())
		assert.Nil(t, res.PaidAt())
	})

	t.Run("fractional price", func(t *testing.T) {
		period, err := reservation.NewStayPeriod(day(1), day(3))
		require.NoError(t, err)

		res, err := reservation.NewReservation(newServices(now), userID, listingAt(t, "49.995"), period,
			reservation.NewGuestCount(1), reservation.PaymentModePayOnArrival)

		require.NoError(t, err)
		assert.Equal(t, "100.00", res.TotalPrice().String())
	})

	t.Run("invalid payment mode", func(t *testing.T) {
		period, err := reservation.NewStayPeriod(day(1), day(2))
		require.NoError(t, err)

		_, err = reservation.NewReservation(newServices(now), userID, listingAt(t, "10"), period,
			reservation.NewGuestCount(1), reservation.PaymentMode("bitcoin"))

		assert.ErrorIs(t, err, reservation.ErrInvalidPaymentMode)
	})

	t.Run("total past NUMERIC(12,2)", func(t *testing.T) {
		period, err := reservation.NewStayPeriod(day(1), day(1).AddDate(9, 0, 0))
		require.NoError(t, err)

		_, err = reservation.NewReservation(newServices(now), userID, listingAt(t, "99999999.99"), period,
			reservation.NewGuestCount(1), reservation.PaymentModeCard)

		assert.ErrorIs(t, err, reservation.ErrTotalTooLarge)
	})

	t.Run("longest stay at a normal price", func(t *testing.T) {
		period, err := reservation.NewStayPeriod(day(1), day(1).AddDate(0, 0, reservation.MaxStayNights))
		require.NoError(t, err)

		res, err := reservation.NewReservation(newServices(now), userID, listingAt(t, "100"), period,
			reservation.NewGuestCount(1), reservation.PaymentModeCard)

		require.NoError(t, err)
		assert.Equal(t, reservation.MaxStayNights, res.Nights())
		assert.Equal(t, "365000.00", res.TotalPrice().String())
	})
}

func TestReservation_MarkPaid(t *testing.T) {
	period, err := reservation.NewStayPeriod(day(1), day(2))
	require.NoError(t, err)
	res, err := reservation.NewReservation(newServices(day(1)), uuid.New(), listingAt(t, "80"), period,
		reservation.NewGuestCount(1), reservation.PaymentModeCard)
	require.NoError(t, err)

	first := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, res.MarkPaid(first))
	assert.True(t, res.IsPaid())
	assert.Equal(t, first, *res.PaidAt())

	assert.False(t, res.MarkPaid(first.Add(time.Hour)))
	assert.Equal(t, first, *res.PaidAt())
}

func TestStayPeriod_Nights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		nights   int
	}{
		{"one night", "2024-06-01", "2024-06-02", 1},
		{"three nights", "2024-06-01", "2024-06-04", 3},
		{"half a day rounds up", "2024-06-01T10:00:00Z", "2024-06-01T22:00:00Z", 1},
		{"a day and a bit", "2024-06-01T12:00:00Z", "2024-06-02T13:00:00Z", 2},
		{"across months", "2024-05-30", "2024-06-02", 3},
		{"offset timestamps", "2024-06-01T00:00:00+02:00", "2024-06-02T00:00:00+02:00", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := reservation.ParseStayPeriod(c.checkIn, c.checkOut)
			require.NoError(t, err)
			assert.Equal(t, c.nights, p.Nights())
		})
	}
}

func TestParseStayPeriod_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		errIs    error
		field    string
	}{
		{"same day", "2024-06-01", "2024-06-01", reservation.ErrInvalidStayPeriod, ""},
		{"reversed", "2024-06-04", "2024-06-01", reservation.ErrInvalidStayPeriod, ""},
		{"empty check in", "", "2024-06-01", reservation.ErrInvalidDate, "checkIn"},
		{"bad check out", "2024-06-01", "June 4th", reservation.ErrInvalidDate, "checkOut"},
		{"impossible date", "2024-02-30", "2024-03-02", reservation.ErrInvalidDate, "checkIn"},
		{"one night too many", "2024-01-01", "2033-12-29T00:00:01Z", reservation.ErrStayTooLong, ""},
		{"past duration range", "0001-01-01", "9999-12-31", reservation.ErrStayTooLong, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := reservation.ParseStayPeriod(c.checkIn, c.checkOut)
			require.ErrorIs(t, err, c.errIs)
			if c.field != "" {
				assert.Contains(t, err.Error(), c.field)
			}
		})
	}
}

func TestParsePaymentMode(t *testing.T) {
	cases := map[string]reservation.PaymentMode{
		"":               reservation.PaymentModePayOnArrival,
		"cod":            reservation.PaymentModePayOnArrival,
		"COD":            reservation.PaymentModePayOnArrival,
		"pay-on-arrival": reservation.PaymentModePayOnArrival,
		"pay_on_arrival": reservation.PaymentModePayOnArrival,
		"card":           reservation.PaymentModeCard,
		" Other ":        reservation.PaymentModeOther,
	}
	for in, want := range cases {
		got, err := reservation.ParsePaymentMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := reservation.ParsePaymentMode("bitcoin")
	assert.ErrorIs(t, err, reservation.ErrInvalidPaymentMode)
}

func TestGuestCount(t *testing.T) {
	assert.Equal(t, 1, reservation.NewGuestCount(0).Value())
	assert.Equal(t, 1, reservation.NewGuestCount(-2).Value())
	assert.Equal(t, 5, reservation.NewGuestCount(5).Value())
	assert.Equal(t, reservation.MaxGuestCount, reservation.NewGuestCount(reservation.MaxGuestCount).Value())
	assert.Equal(t, 1, reservation.NewGuestCount(reservation.MaxGuestCount+1).Value())
}

func TestNewMoney(t *testing.T) {
	_, err := reservation.NewMoney(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, reservation.ErrNegativePrice)

	m, err := reservation.NewMoney(decimal.RequireFromString("12.345"))
	require.NoError(t, err)
	assert.Equal(t, "12.35", m.String())
	assert.Equal(t, "37.05", m.Times(3).String())
}
