package request

type CreateRateTypeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Duration    int    `json:"duration" validate:"required,min=1,max=720"`
	DayType     string `json:"day_type" validate:"required,oneof=weekday weekend"`
	Description string `json:"description" validate:"max=500"`
}

type CreateRateRequest struct {
	RoomTypeID    string  `json:"room_type_id" validate:"required,uuid"`
	RateTypeID    string  `json:"rate_type_id" validate:"required,uuid"`
	BranchID      string  `json:"branch_id" validate:"required,uuid"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	BaseAmount    string  `json:"base_amount" validate:"required,money"`
	EffectiveFrom string  `json:"effective_from" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EffectiveTo   *string `json:"effective_to,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// ResolveRateRequest is read from the query string.
type ResolveRateRequest struct {
	RoomTypeID string `validate:"required,uuid"`
	DayType    string `validate:"required,oneof=weekday weekend"`
	Duration   int    `validate:"required,min=1"`
}
