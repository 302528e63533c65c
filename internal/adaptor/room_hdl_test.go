package adaptor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperror"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newRoomRouter(svc *mockRoomService) http.Handler {
	h := NewRoomHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/rooms", h.ListRooms)
	r.Get("/api/rooms/{id}/select", h.SelectRoom)
	r.Post("/api/rooms/{id}/housekeeping-done", h.CompleteHousekeeping)
	return r
}

func TestSelectRoom(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"available", nil, http.StatusOK},
		{"occupied", apperror.New(apperror.KindRoomOccupied, "room 101 is occupied"), http.StatusConflict},
		{"cleaning", apperror.New(apperror.KindRoomCleaning, "room 101 is being cleaned"), http.StatusConflict},
		{"maintenance", apperror.New(apperror.KindRoomUnderMaintenance, "room 101 is under maintenance"), http.StatusConflict},
		{"unknown", apperror.New(apperror.KindNotFound, "room not found"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockRoomService)
			roomID := uuid.NewString()
			var room *response.RoomResponse
			if tt.err == nil {
				room = &response.RoomResponse{ID: roomID, Number: "101", Status: entity.RoomStatusAvailable}
			}
			svc.On("SelectRoom", mock.Anything, roomID).Return(room, tt.err)

			rec := httptest.NewRecorder()
			newRoomRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms/"+roomID+"/select", nil))

			assert.Equal(t, tt.code, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestListRooms_FilterFromQuery(t *testing.T) {
	svc := new(mockRoomService)
	branchID := uuid.NewString()
	svc.On("ListRooms", mock.Anything, &request.RoomFilterRequest{Status: "cleaning", BranchID: branchID}).
		Return([]response.RoomResponse{{Number: "204", Status: entity.RoomStatusCleaning}}, nil)

	rec := httptest.NewRecorder()
	newRoomRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms?status=cleaning&branch_id="+branchID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"204"`)
	svc.AssertExpectations(t)
}

func TestCompleteHousekeeping_WrongState(t *testing.T) {
	svc := new(mockRoomService)
	roomID := uuid.NewString()
	svc.On("CompleteHousekeeping", mock.Anything, roomID).
		Return(nil, apperror.New(apperror.KindInvalidTransition, "room 101 is occupied, not cleaning"))

	rec := httptest.NewRecorder()
	newRoomRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rooms/"+roomID+"/housekeeping-done", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", decodeEnvelope(t, rec).Errors["kind"])
}
