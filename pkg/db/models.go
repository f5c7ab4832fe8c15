package db

// Doctor represents a roster member record
type Doctor struct {
	ID                      string
	Name                    string
	Role                    string
	FTE                     float64
	ContractEndDate         string // yyyy-MM-dd, empty if open-ended
	ExcludeFromStaffingPlan bool
}

// Workplace represents a duty position or rotation slot record. The nullable
// booleans stay pointers because rows predating those columns are NULL.
type Workplace struct {
	ID                         string
	Name                       string
	Category                   string
	AllowsRotationConcurrently bool
	AllowsConsecutiveDays      *bool
	AutoOff                    bool
	AffectsAvailability        *bool
	TimeslotsEnabled           bool
	DefaultOverlapToleranceMin int
	DisplayOrder               int
}

// Timeslot represents a workplace time window record
type Timeslot struct {
	ID                  string
	WorkplaceID         string
	StartTime           string // HH:MM:SS
	EndTime             string // HH:MM:SS
	Label               string
	OverlapToleranceMin int
}

// ShiftEntry represents one plan cell record
type ShiftEntry struct {
	ID         string
	Date       string // yyyy-MM-dd
	DoctorID   string
	Position   string
	TimeslotID string
	Note       string
}

// WishRequest represents a doctor's shift wish record
type WishRequest struct {
	ID       string
	DoctorID string
	Date     string // yyyy-MM-dd
	Type     string
	Position string
	Status   string
}

// SystemSetting represents one key/value settings record
type SystemSetting struct {
	Key   string
	Value string
}

// StaffingPlanEntry represents the planned FTE for a doctor in one month
type StaffingPlanEntry struct {
	DoctorID string
	Year     int
	Month    int
	Value    string
}

// TeamRole represents a role eligibility record; nullable booleans predate
// their columns
type TeamRole struct {
	Name                   string
	IsSpecialist           bool
	CanDoForegroundDuty    *bool
	CanDoBackgroundDuty    *bool
	ExcludedFromStatistics *bool
	Priority               int
}
