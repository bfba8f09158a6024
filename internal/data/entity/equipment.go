package entity

import "github.com/google/uuid"

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentInUse       EquipmentStatus = "in use"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentRetired     EquipmentStatus = "retired"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentAvailable, EquipmentInUse, EquipmentMaintenance, EquipmentRetired:
		return true
	}
	return false
}

type Equipment struct {
	BaseSimple
	Name              string          `db:"name"`
	Type              string          `db:"type"`
	Status            EquipmentStatus `db:"status"`
	AssignedProjectID *uuid.UUID      `db:"assigned_project_id"`
}
