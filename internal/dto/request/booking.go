package request

type CreateBookingRequest struct {
	RoomID     string `json:"room_id" validate:"required,uuid"`
	GuestName  string `json:"guest_name" validate:"required,max=150"`
	GuestCount int    `json:"guest_count" validate:"required,min=1"`
	// RFC 3339; defaults to now
	CheckInAt string `json:"check_in_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	// defaults to the day type of CheckInAt
	DayType        string `json:"day_type,omitempty" validate:"omitempty,oneof=weekday weekend"`
	Duration       int    `json:"duration" validate:"required,min=1"`
	DiscountAmount string `json:"discount_amount,omitempty" validate:"omitempty,money"`
	TaxAmount      string `json:"tax_amount,omitempty" validate:"omitempty,money"`
	Source         string `json:"source,omitempty" validate:"omitempty,oneof=walk_in phone online"`
	Notes          string `json:"notes,omitempty" validate:"max=1000"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"max=1000"`
}

type ListBookingsRequest struct {
	PaginatedRequest
	Status string `validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
}
