package request

type CreateBranchRequest struct {
	Code    string `json:"code" validate:"required,max=20"`
	Name    string `json:"name" validate:"required,max=150"`
	Address string `json:"address" validate:"max=500"`
}

type CreateRoomTypeRequest struct {
	Code             string `json:"code" validate:"required,max=20"`
	Name             string `json:"name" validate:"required,max=100"`
	BedConfiguration string `json:"bed_configuration" validate:"max=100"`
	MaxOccupancy     int    `json:"max_occupancy" validate:"required,min=1,max=20"`
	SizeSqm          string `json:"size_sqm" validate:"omitempty,money"`
	BaseRate         string `json:"base_rate" validate:"required,money"`
}

type CreateRoomRequest struct {
	BranchID   string `json:"branch_id" validate:"required,uuid"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Number     string `json:"number" validate:"required,max=10"`
	Floor      int    `json:"floor" validate:"min=0,max=200"`
}

// RoomFilterRequest is read from the query string.
type RoomFilterRequest struct {
	Status     string `validate:"omitempty,oneof=available occupied cleaning maintenance"`
	BranchID   string `validate:"omitempty,uuid"`
	RoomTypeID string `validate:"omitempty,uuid"`
}
