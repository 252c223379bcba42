package models

// Direction is one instructional step. Optional steps may be hidden by
// the presentation layer.
type Direction struct {
	Description string `json:"description"`
	IsOptional  bool   `json:"is_optional"`
}

// NewDirection creates a step
func NewDirection(description string, isOptional bool) Direction {
	return Direction{Description: description, IsOptional: isOptional}
}

// NewDraftDirection returns the blank step used by editing flows
func NewDraftDirection() Direction {
	return NewDirection("", false)
}
