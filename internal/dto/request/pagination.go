package request

import "hotel-booking/pkg/utils"

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Limit() int {
	limit, _ := utils.PageWindow(p.Page, p.PerPage)
	return limit
}

func (p PaginatedRequest) Offset() int {
	_, offset := utils.PageWindow(p.Page, p.PerPage)
	return offset
}
