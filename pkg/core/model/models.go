package model

// WorkplaceCategory classifies a workplace for conflict checking
type WorkplaceCategory string

const (
	CategoryService  WorkplaceCategory = "Dienste"
	CategoryRotation WorkplaceCategory = "Rotationen"
)

// Absence labels that occupy a doctor for a whole day. The same strings are
// used as shift positions, so a "position" is either a workplace name or one
// of these.
const (
	AbsenceFrei         = "Frei"
	AbsenceKrank        = "Krank"
	AbsenceUrlaub       = "Urlaub"
	AbsenceDienstreise  = "Dienstreise"
	AbsenceNotAvailable = "Nicht verfügbar"
)

// AbsenceLabels lists all recognized absence positions
var AbsenceLabels = []string{
	AbsenceFrei,
	AbsenceKrank,
	AbsenceUrlaub,
	AbsenceDienstreise,
	AbsenceNotAvailable,
}

// IsAbsenceLabel reports whether a position is one of the absence labels
func IsAbsenceLabel(position string) bool {
	for _, label := range AbsenceLabels {
		if label == position {
			return true
		}
	}
	return false
}

// Doctor represents a member of the department roster
type Doctor struct {
	ID   string
	Name string
	// Role is a free-text role name resolved against the team role catalog
	Role string
	// FTE is the contractual full-time-equivalent fraction. Zero or negative
	// means "not maintained" and is treated as full time.
	FTE                     float64
	ContractEndDate         string // yyyy-MM-dd, empty if open-ended
	ExcludeFromStaffingPlan bool
}

// Workplace represents a duty position or rotation slot. Its Name is the
// position key used on shift entries.
//
// AllowsConsecutiveDays and AffectsAvailability are pointers because rows
// predating these columns carry no value; nil falls back to the permissive
// default (consecutive allowed, availability affected).
type Workplace struct {
	ID                         string
	Name                       string
	Category                   WorkplaceCategory
	AllowsRotationConcurrently bool
	AllowsConsecutiveDays      *bool
	AutoOff                    bool
	AffectsAvailability        *bool
	TimeslotsEnabled           bool
	DefaultOverlapToleranceMin int
	// Order ranks services: the lowest-order service is the foreground duty,
	// the second-lowest the background duty.
	Order int
}

// ConsecutiveDaysAllowed resolves the tri-state column with its default
func (w *Workplace) ConsecutiveDaysAllowed() bool {
	if w.AllowsConsecutiveDays == nil {
		return true
	}
	return *w.AllowsConsecutiveDays
}

// AvailabilityAffected resolves the tri-state column with its default
func (w *Workplace) AvailabilityAffected() bool {
	if w.AffectsAvailability == nil {
		return true
	}
	return *w.AffectsAvailability
}

// Timeslot represents a configurable time-of-day window on a workplace.
// EndTime at or before StartTime means the slot crosses midnight.
type Timeslot struct {
	ID                  string
	WorkplaceID         string
	StartTime           string // HH:MM:SS
	EndTime             string // HH:MM:SS
	Label               string
	OverlapToleranceMin int
}

// ShiftEntry is one cell of the plan: a doctor on a date in a position
type ShiftEntry struct {
	ID         string
	Date       string // yyyy-MM-dd
	DoctorID   string
	Position   string
	TimeslotID string // empty if none
	Note       string
}

// WishRequestType distinguishes "wants this service" from "wants no service"
type WishRequestType string

const (
	WishService   WishRequestType = "service"
	WishNoService WishRequestType = "no_service"
)

// WishRequestStatus is the approval state of a wish
type WishRequestStatus string

const (
	WishPending               WishRequestStatus = "pending"
	WishApproved              WishRequestStatus = "approved"
	WishRejected              WishRequestStatus = "rejected"
	WishCancellationRequested WishRequestStatus = "cancellation_requested"
)

// WishRequest represents a doctor's shift wish
type WishRequest struct {
	ID       string
	DoctorID string
	Date     string // yyyy-MM-dd
	Type     WishRequestType
	Position string // optional, only for service wishes
	Status   WishRequestStatus
}

// SystemSetting is one row of the generic key/value settings store
type SystemSetting struct {
	Key   string
	Value string
}

// StaffingPlanEntry carries the planned FTE for a doctor in one month.
// Value is either a decimal string (comma or dot separator) or a special
// code like "EZ"/"KO" meaning zero effective FTE.
type StaffingPlanEntry struct {
	DoctorID string
	Year     int
	Month    int
	Value    string
}

// TeamRole configures role-based duty eligibility. The pointer fields were
// added after the table was first seeded, so nil means "row predates the
// column" and each accessor applies its own legacy fallback.
type TeamRole struct {
	Name                   string
	IsSpecialist           bool
	CanDoForegroundDuty    *bool
	CanDoBackgroundDuty    *bool
	ExcludedFromStatistics *bool
	Priority               int
}
