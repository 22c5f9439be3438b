package domain

import (
	"fmt"
	"time"
)

// Areal is a life domain rendered as a region of the garden. It owns its
// plants exclusively; deleting an areal removes them.
type Areal struct {
	ID            string
	Name          string
	HorizontalPos HorizontalPos
	VerticalPos   VerticalPos
	Size          ArealSize
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a *Areal) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("areal ID is required")
	}
	if a.Name == "" {
		return fmt.Errorf("areal name is required")
	}
	if a.HorizontalPos != "" && !ValidHorizontalPos[string(a.HorizontalPos)] {
		return fmt.Errorf("invalid horizontal position %q (one of: left, center, right)", a.HorizontalPos)
	}
	if a.VerticalPos != "" && !ValidVerticalPos[string(a.VerticalPos)] {
		return fmt.Errorf("invalid vertical position %q (one of: top, middle, bottom)", a.VerticalPos)
	}
	if a.Size != "" && !ValidArealSizes[string(a.Size)] {
		return fmt.Errorf("invalid areal size %q (one of: small, medium, large)", a.Size)
	}
	return nil
}
