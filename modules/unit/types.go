package unit

// CreateUnitRequest is the request for creating a unit.
type CreateUnitRequest struct {
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	Description string `json:"description"`
}

// GetUnitRequest is the request for fetching a single unit.
type GetUnitRequest struct {
	ID string `json:"id"`
}

// ListUnitsRequest is the request for listing units.
type ListUnitsRequest struct{}

// ListUnitsResponse contains all units, newest first.
type ListUnitsResponse struct {
	Units []Unit `json:"units"`
	Total int    `json:"total"`
}

// UpdateUnitRequest is the request for updating a unit. Only fields present
// in the payload are written.
type UpdateUnitRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	ShortName   *string `json:"shortName,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DeleteUnitRequest is the request for deleting a unit.
type DeleteUnitRequest struct {
	ID string `json:"id"`
}

// DeleteUnitResponse confirms a deletion.
type DeleteUnitResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
