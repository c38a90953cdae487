//go:build e2e

package booking_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"
	reqdto "booking-registry/internal/handler/dto/request"
	resdto "booking-registry/internal/handler/dto/response"
	"booking-registry/internal/pkg/config"
	"booking-registry/tests/common/builder"
	"booking-registry/tests/common/dbtest"
	"booking-registry/tests/common/httptest"
	"booking-registry/tests/e2e"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

// freshAccount avoids balance carry-over, since the in-memory ledger outlives DB resets.
func freshAccount() account.Account {
	id := uuid.New()
	return account.FromAddress(common.BytesToAddress(id[:]))
}

func (s *bookingSuite) createBooking(customer account.Account) booking.ID {
	req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ScheduledDate = time.Now().UTC().Add(30 * 24 * time.Hour).Truncate(time.Second)
	}).BuildRequest()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, s.JWT.GenerateToken(s.T(), customer))
	var res resdto.CreateBookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return booking.ID(res.ID)
}

func (s *bookingSuite) post(id booking.ID, action string, caller account.Account) *resdto.BookingResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingPath(id, action), nil, s.JWT.GenerateToken(s.T(), caller))
	var res resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return &res
}

func bookingPath(id booking.ID, suffix string) string {
	p := bookingsURL + "/" + strconv.FormatInt(int64(id), 10)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

func (s *bookingSuite) fund(holder account.Account, amount token.Amount) {
	require.NoError(s.T(), s.Ledger.Mint(holder, amount))
	s.Ledger.Approve(holder, account.MustParse(config.TestEscrowAccount), amount)
}

func (s *bookingSuite) TestLifecycle() {
	s.Run("create, confirm and pay moves the total into escrow", func() {
		customer := freshAccount()
		s.fund(customer, builder.StandardTotal)

		id := s.createBooking(customer)
		s.Equal("pending", dbtest.BookingStatus(s.T(), s.DB, id))

		confirmed := s.post(id, "confirm", customer)
		s.Equal("confirmed", confirmed.Status)
		s.Require().NotNil(confirmed.PaymentDeadline)

		paid := s.post(id, "pay", customer)
		s.Equal("paid", paid.Status)
		s.Equal(customer.String(), paid.Payer)
		s.Equal(builder.StandardTotal.String(), paid.AmountPaid)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/ledger/balances/"+customer.String(), nil, "")
		var bal resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &bal)
		s.Equal("0", bal.Balance)

		s.Equal(1, dbtest.CountEvents(s.T(), s.DB, id, booking.EventPaid))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingPath(id, "events"), nil, "")
		var events struct {
			Events []resdto.EventResponse `json:"events"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &events)
		s.Require().Len(events.Events, 3)
		s.Equal(string(booking.EventCreated), events.Events[0].Type)
		s.Equal(string(booking.EventConfirmed), events.Events[1].Type)
		s.Equal(string(booking.EventPaid), events.Events[2].Type)
	})

	s.Run("pay without allowance is rejected and leaves the booking confirmed", func() {
		customer := freshAccount()
		id := s.createBooking(customer)
		s.post(id, "confirm", customer)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingPath(id, "pay"), nil, s.JWT.GenerateToken(s.T(), customer))
		httptest.AssertErrorResponse(s.T(), w, http.StatusPaymentRequired, "Payment transfer failed")
		s.Equal("confirmed", dbtest.BookingStatus(s.T(), s.DB, id))
		s.Equal(0, dbtest.CountEvents(s.T(), s.DB, id, booking.EventPaid))
	})

	s.Run("only the customer confirms", func() {
		id := s.createBooking(freshAccount())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingPath(id, "confirm"), nil, s.JWT.GenerateToken(s.T(), freshAccount()))
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not the customer")
	})

	s.Run("cancel inside the payment window conflicts", func() {
		customer := freshAccount()
		id := s.createBooking(customer)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingPath(id, "cancel"), nil, s.JWT.GenerateToken(s.T(), customer))
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})

	s.Run("refund before the window elapses conflicts", func() {
		customer := freshAccount()
		s.fund(customer, builder.StandardTotal)
		id := s.createBooking(customer)
		s.post(id, "confirm", customer)
		s.post(id, "pay", customer)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingPath(id, "refund"), nil, s.JWT.GenerateToken(s.T(), customer))
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not refundable")

		owner := account.MustParse(config.TestOwnerAccount)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingPath(id, "refundable"), nil, s.JWT.GenerateToken(s.T(), owner))
		var flag resdto.RefundableResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flag)
		s.True(flag.Refundable)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingPath(id, "refund"), nil, s.JWT.GenerateToken(s.T(), customer))
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Refund window not elapsed")
	})
}

func (s *bookingSuite) TestIdempotentCreate() {
	s.Run("retry with the same key replays the first booking", func() {
		customer := freshAccount()
		bearer := s.JWT.GenerateToken(s.T(), customer)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ScheduledDate = time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
		}).BuildRequest()

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, req, headers, bearer)
		var first resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &first)

		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, req, headers, bearer)
		var second resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
		s.Equal(first.ID, second.ID)
		s.True(second.Replayed)

		req.CustomerLabel = "someone else"
		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, req, headers, bearer)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Idempotency key reused")
	})
}

func (s *bookingSuite) TestRegistry() {
	owner := account.MustParse(config.TestOwnerAccount)

	s.Run("new tax applies to later bookings only", func() {
		customer := freshAccount()
		before := s.createBooking(customer)

		pct := 20
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/registry/tax",
			reqdto.SetTaxPercentageRequest{TaxPercentage: &pct}, s.JWT.GenerateToken(s.T(), owner))
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		after := s.createBooking(customer)

		var core resdto.BookingCoreResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingPath(before, "core"), nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &core)
		s.Equal(builder.TestTaxPercentage, core.TaxPercentage)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingPath(after, "core"), nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &core)
		s.Equal(20, core.TaxPercentage)
		s.Equal("600000000000000000", core.TotalAmount)
	})

	s.Run("non-owner cannot change prices", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/registry/room-prices",
			reqdto.SetRoomPricesRequest{Standard: "1", Deluxe: "2", Suite: "3"}, s.JWT.GenerateToken(s.T(), freshAccount()))
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not the owner")
	})
}

func (s *bookingSuite) TestAuthentication() {
	req := builder.NewBookingBuilder().BuildRequest()

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("expired token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, s.JWT.CreateExpiredToken(s.T(), builder.Alice))
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("token signed elsewhere", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, s.JWT.CreateForeignToken(s.T(), builder.Alice))
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("me echoes the token account", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, s.JWT.GenerateToken(s.T(), builder.Carol))
		var me resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal(builder.Carol.String(), me.Account)
	})
}
