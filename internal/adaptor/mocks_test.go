package adaptor

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) detail(args mock.Arguments) (*response.BookingDetailResponse, error) {
	resp, _ := args.Get(0).(*response.BookingDetailResponse)
	return resp, args.Error(1)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, actorID string, req *request.CreateBookingRequest) (*response.BookingDetailResponse, error) {
	return m.detail(m.Called(ctx, actorID, req))
}

func (m *mockBookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	return m.detail(m.Called(ctx, bookingID))
}

func (m *mockBookingService) GetBookingByReference(ctx context.Context, referenceCode string) (*response.BookingDetailResponse, error) {
	return m.detail(m.Called(ctx, referenceCode))
}

func (m *mockBookingService) ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.BookingResponse])
	return resp, args.Error(1)
}

func (m *mockBookingService) CheckIn(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	return m.detail(m.Called(ctx, bookingID))
}

func (m *mockBookingService) CheckOut(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	return m.detail(m.Called(ctx, bookingID))
}

func (m *mockBookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	return m.detail(m.Called(ctx, bookingID))
}

func (m *mockBookingService) UpdateNotes(ctx context.Context, bookingID string, req *request.UpdateNotesRequest) (*response.BookingDetailResponse, error) {
	return m.detail(m.Called(ctx, bookingID, req))
}

type mockPaymentService struct{ mock.Mock }

func (m *mockPaymentService) SettlePayment(ctx context.Context, actorID, bookingID string, req *request.SettlePaymentRequest) (*response.SettlementResponse, error) {
	args := m.Called(ctx, actorID, bookingID, req)
	resp, _ := args.Get(0).(*response.SettlementResponse)
	return resp, args.Error(1)
}

func (m *mockPaymentService) SuggestAmount(ctx context.Context, bookingID, settlementType string) (*response.SuggestedAmountResponse, error) {
	args := m.Called(ctx, bookingID, settlementType)
	resp, _ := args.Get(0).(*response.SuggestedAmountResponse)
	return resp, args.Error(1)
}

func (m *mockPaymentService) GetFinancials(ctx context.Context, bookingID string) (*response.FinancialsResponse, error) {
	args := m.Called(ctx, bookingID)
	resp, _ := args.Get(0).(*response.FinancialsResponse)
	return resp, args.Error(1)
}

func (m *mockPaymentService) ListPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
	args := m.Called(ctx, bookingID)
	resp, _ := args.Get(0).([]response.PaymentResponse)
	return resp, args.Error(1)
}

func (m *mockPaymentService) GetPaymentMethods(ctx context.Context) []entity.PaymentMethod {
	args := m.Called(ctx)
	methods, _ := args.Get(0).([]entity.PaymentMethod)
	return methods
}

type mockRoomService struct{ mock.Mock }

func (m *mockRoomService) room(args mock.Arguments) (*response.RoomResponse, error) {
	resp, _ := args.Get(0).(*response.RoomResponse)
	return resp, args.Error(1)
}

func (m *mockRoomService) SelectRoom(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	return m.room(m.Called(ctx, roomID))
}

func (m *mockRoomService) ListRooms(ctx context.Context, req *request.RoomFilterRequest) ([]response.RoomResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).([]response.RoomResponse)
	return resp, args.Error(1)
}

func (m *mockRoomService) ListAvailableRooms(ctx context.Context, req *request.RoomFilterRequest) ([]response.RoomResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).([]response.RoomResponse)
	return resp, args.Error(1)
}

func (m *mockRoomService) CompleteHousekeeping(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	return m.room(m.Called(ctx, roomID))
}

func (m *mockRoomService) FlagMaintenance(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	return m.room(m.Called(ctx, roomID))
}

func (m *mockRoomService) ClearMaintenance(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	return m.room(m.Called(ctx, roomID))
}
