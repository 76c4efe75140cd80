package models

// Role identifies the agent persona a job is addressed to.
type Role string

// Roles known to the scheduler.
const (
	RolePM         Role = "pm"
	RoleExcavator  Role = "excavator"
	RoleStrategist Role = "strategist"
	RoleCoder      Role = "coder"
	RoleQA         Role = "qa"
	RoleReviewer   Role = "reviewer"
	RoleResearcher Role = "researcher"
	RoleAnalyst    Role = "analyst"
	RoleStamp      Role = "stamp"
	RoleCouncil    Role = "council"
)

// AllRoles lists every role the queue accepts.
var AllRoles = []Role{
	RolePM, RoleExcavator, RoleStrategist, RoleCoder, RoleQA,
	RoleReviewer, RoleResearcher, RoleAnalyst, RoleStamp, RoleCouncil,
}

// DispatchableRoles are the roles a PM decision may dispatch work to.
var DispatchableRoles = map[Role]bool{
	RoleCoder:      true,
	RoleQA:         true,
	RoleReviewer:   true,
	RoleStrategist: true,
	RoleAnalyst:    true,
	RoleResearcher: true,
	RoleExcavator:  true,
}

// RoleSwitchMap assigns the alternate persona used when the escalator
// orders a role switch. Roles absent from the map cannot be switched.
var RoleSwitchMap = map[Role]Role{
	RoleCoder:    RoleReviewer,
	RoleReviewer: RoleCoder,
	RoleQA:       RoleCoder,
	RoleCouncil:  RoleReviewer,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Mode distinguishes the two queues a role can serve.
type Mode string

// Modes known to the scheduler.
const (
	ModeWorker   Mode = "worker"
	ModeReviewer Mode = "reviewer"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeWorker || m == ModeReviewer
}

// Priority orders jobs within a (role, mode) queue.
type Priority string

// Priorities, highest first.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps a priority to its numeric tier: high=0, medium=1, low=2.
// Lower ranks sort first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Stage identifies the position of a backend call inside the
// write→audit→stamp loop.
type Stage string

// Supervisor stages.
const (
	StageWriter  Stage = "writer"
	StageAuditor Stage = "auditor"
	StageStamp   Stage = "stamp"
)
