package research

import (
	"context"
)

type Service interface {
	// Projects lists the logged-in doctor's research, status derived from
	// today's date against the project window.
	Projects(ctx context.Context, search string) ([]*ProjectView, error)

	// AdvancedEquipment is the research-lab equipment view: catalog rows
	// that are AVAILABLE or under MAINTENANCE.
	AdvancedEquipment(ctx context.Context) (*AdvancedEquipmentResp, error)

	// ResearchLabs lists the doctor-restricted labs.
	ResearchLabs(ctx context.Context) ([]*LabView, error)
}
