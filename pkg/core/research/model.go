package research

import (
	// 外部依赖
	"time"

	// 内部引用
	model "github.com/scienceol/labdesk/pkg/model"
)

const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

const dateLayout = "2006-01-02"

type ProjectView struct {
	ID        int64
	Title     string
	Principal string
	Lab       string
	StartDate string
	EndDate   string
	Status    string
}

type AdvancedEquipmentResp struct {
	Equipment        []*model.Equipment
	MaintenanceCount int
}

type LabView struct {
	LabID    int64
	LabName  string
	Location string
	Capacity int
}

// DeriveStatus trusts only the dates: a project that has not started is
// pending, one past its end date is completed, anything else is active.
// Unparseable dates leave the project active. The comparison is on the
// calendar date in today's own zone, so a client east of UTC does not see
// a project that starts today as pending.
func DeriveStatus(today time.Time, startDate, endDate string) string {
	day := today.Format(dateLayout)

	if _, err := time.Parse(dateLayout, startDate); err == nil && day < startDate {
		return StatusPending
	}
	if _, err := time.Parse(dateLayout, endDate); err == nil && day > endDate {
		return StatusCompleted
	}
	return StatusActive
}
