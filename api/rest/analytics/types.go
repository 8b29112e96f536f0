package analytics

// inline counter update; action defaults to view when omitted
type UpdateRequest struct {
	Type   string `json:"type"`
	Slug   string `json:"slug"`
	Action string `json:"action"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}
