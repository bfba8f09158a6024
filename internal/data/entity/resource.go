package entity

import "github.com/google/uuid"

// Resource is the per-project allocation record. At most one exists per
// project. TeamMembers is stored as JSONB.
type Resource struct {
	Base
	ProjectID            uuid.UUID   `db:"project_id"`
	TeamMemberCount      int         `db:"team_member_count"`
	EquipmentUtilization int         `db:"equipment_utilization"`
	TeamMembers          []uuid.UUID `db:"team_members"`
}
