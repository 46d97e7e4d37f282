package dto

// StatusUpdateRequest is the body of every PUT /:id status endpoint
// (reports, verifications, events).
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// SuccessResponse acknowledges a mutation with no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}
