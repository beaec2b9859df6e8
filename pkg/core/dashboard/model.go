package dashboard

import (
	// 外部依赖
	"strings"

	// 内部引用
	model "github.com/scienceol/labdesk/pkg/model"
)

type StudentDashboard struct {
	TotalLabs      int
	AvailableLabs  int
	MyReservations []*model.Reservation
	MySharedTools  []*model.SharedTool
	PendingCount   int
	ApprovedCount  int
}

// EquipmentGroup is the derived catalog row: rows are grouped by display
// name, available counts rows whose status is AVAILABLE, total counts every
// row. available/total is therefore a count of distinct backend rows
// sharing a name, not a tracked inventory quantity.
type EquipmentGroup struct {
	Name      string
	Category  string
	Lab       string
	LabID     int64
	Available int
	Total     int
}

type LabView struct {
	LabID          int64
	LabName        string
	Location       string
	Capacity       int
	RequiredLevel  int
	InstructorName string
	Research       bool
}

// GroupEquipment folds raw rows into name-keyed groups, first-seen order.
func GroupEquipment(rows []*model.Equipment) []*EquipmentGroup {
	index := map[string]*EquipmentGroup{}
	groups := make([]*EquipmentGroup, 0, len(rows))

	for _, row := range rows {
		group, ok := index[row.EquipmentName]
		if !ok {
			category, labName := "Unknown", "Unknown"
			var labID int64
			if row.Lab != nil {
				if row.Lab.LabName != "" {
					category, labName = row.Lab.LabName, row.Lab.LabName
				}
				labID = row.Lab.LabID
			}
			group = &EquipmentGroup{
				Name:     row.EquipmentName,
				Category: category,
				Lab:      labName,
				LabID:    labID,
			}
			index[row.EquipmentName] = group
			groups = append(groups, group)
		}

		if row.StatusIs(model.EquipmentAvailable) {
			group.Available++
		}
		group.Total++
	}

	return groups
}

// MatchesSearch is the shared dashboard filter: case-insensitive substring
// across the given fields. An empty search matches everything.
func MatchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
