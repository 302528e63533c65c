package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireBooking mounts the booking lifecycle and its payment ledger. Both are front
// desk work.
func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, paymentHandler *adaptor.PaymentHandler, g guards) {
	r.With(g.staff...).Get("/api/payment-methods", paymentHandler.GetPaymentMethods)

	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(g.desk...)

		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.ListBookings) // GET /api/bookings?status=confirmed&page=1
		r.Get("/reference/{code}", bookingHandler.GetBookingByReference)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", bookingHandler.GetBooking)
			r.Post("/check-in", bookingHandler.CheckIn)
			r.Post("/check-out", bookingHandler.CheckOut)
			r.Post("/cancel", bookingHandler.CancelBooking)
			r.Patch("/notes", bookingHandler.UpdateNotes)

			r.Get("/financials", paymentHandler.GetFinancials)
			r.Get("/payments", paymentHandler.ListPayments)
			r.Post("/payments", paymentHandler.SettlePayment)
			r.Get("/payments/suggestion", paymentHandler.SuggestAmount)
		})
	})
}
