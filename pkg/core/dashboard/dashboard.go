package dashboard

import (
	"context"
)

type Service interface {
	// Student joins labs, available labs, the student's reservations and
	// shared tools concurrently; a failed fetch degrades to empty rather
	// than failing the join.
	Student(ctx context.Context) (*StudentDashboard, error)

	// EquipmentCatalog folds the raw equipment rows into name-keyed groups
	// with available/total counts.
	EquipmentCatalog(ctx context.Context, search string) ([]*EquipmentGroup, error)

	Labs(ctx context.Context, search string) ([]*LabView, error)
	LabEquipment(ctx context.Context, labID int64) ([]*EquipmentGroup, error)

	// SelectEquipment records the chosen item for the reservation form to
	// pick up (one shot).
	SelectEquipment(ctx context.Context, equipmentName string) error
}
