package constants

// Code kinds in the lookup table.
const (
	KindStatus             = "status"
	KindPriority           = "priority"
	KindRole               = "role"
	KindEquipmentType      = "equipment_type"
	KindEquipmentBrand     = "equipment_brand"
	KindEquipmentProcedure = "equipment_procedure"
)

// Status codes. StatusCompleted is terminal: a job with this status is
// excluded from the active ("ALL") listing.
const (
	StatusInProgress    = 1
	StatusAwaitingParts = 2
	StatusAwaitingPick  = 3
	StatusCompleted     = 4
)

// Priority codes.
const (
	PriorityLow    = 1
	PriorityNormal = 2
	PriorityHigh   = 3
)

// Role codes.
const (
	RoleAdmin      = 1
	RoleTechnician = 2
)

// IsActive reports whether a job with the given status code belongs in the
// active listing. Every read path that filters on "ALL" must go through it.
func IsActive(statusCode int) bool {
	return statusCode != StatusCompleted
}
