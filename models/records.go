// Package models file: models/records.go
package models

// ----------------------- categories -----------------------

// Categories are the academy age groups, the primary segmentation key for
// every record type.
var Categories = []string{"U9", "U10", "U12", "U15", "U20"}

// FilterAll is the selector value that disables a category/status filter.
const FilterAll = "All"

// ListFilter carries the three independent page filters. Empty Search means
// no text filter; Category and Status use FilterAll as the wildcard.
type ListFilter struct {
	Search   string
	Category string
	Status   string
}

// CategoryMatches reports whether a record category passes the filter.
func (f ListFilter) CategoryMatches(category string) bool {
	return f.Category == "" || f.Category == FilterAll || f.Category == category
}

// StatusMatches reports whether a record status passes the filter.
func (f ListFilter) StatusMatches(status string) bool {
	return f.Status == "" || f.Status == FilterAll || f.Status == status
}

// ----------------------- players -----------------------

// Player is an enrolled academy player.
type Player struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Category      string  `json:"category"`
	Position      string  `json:"position"`
	Photo         string  `json:"photo,omitempty"`
	Guardian      string  `json:"guardian"`
	Phone         string  `json:"phone"`
	JoinDate      string  `json:"joinDate"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Matches       int     `json:"matches"`
	Rating        float64 `json:"rating"`
	MedicalStatus string  `json:"medicalStatus"` // cleared | pending
	FeeStatus     string  `json:"feeStatus"`     // paid | pending | overdue
}

// ----------------------- training -----------------------

// TrainingSession is a scheduled or completed training slot.
type TrainingSession struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Coach        string `json:"coach"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // e.g. 15:00-17:00
	Location     string `json:"location"`
	Focus        string `json:"focus"`
	Attendees    int    `json:"attendees"`
	MaxAttendees int    `json:"maxAttendees"`
	Status       string `json:"status"` // scheduled | completed | cancelled
}

// ----------------------- matches -----------------------

// MatchGoal is one scored goal in a completed match.
type MatchGoal struct {
	Player string `json:"player"`
	Minute int    `json:"minute"`
}

// MatchCard is one disciplinary card in a completed match.
type MatchCard struct {
	Player string `json:"player"`
	Type   string `json:"type"` // yellow | red
	Minute int    `json:"minute"`
}

// MatchStats holds the per-match event log, present only once completed.
type MatchStats struct {
	Goals []MatchGoal `json:"goals"`
	Cards []MatchCard `json:"cards"`
}

// Match is a fixture involving an academy side.
type Match struct {
	ID          string      `json:"id"`
	HomeTeam    string      `json:"homeTeam"`
	AwayTeam    string      `json:"awayTeam"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Venue       string      `json:"venue"`
	Competition string      `json:"competition"` // League | Cup | Friendly
	Category    string      `json:"category"`
	Status      string      `json:"status"` // scheduled | live | completed | cancelled
	HomeScore   *int        `json:"homeScore"`
	AwayScore   *int        `json:"awayScore"`
	Squad       []string    `json:"squad"`
	Stats       *MatchStats `json:"stats"`
}

// ----------------------- medical -----------------------

// Injury is one entry of a player's injury history.
type Injury struct {
	Type   string `json:"type"`
	Date   string `json:"date"`
	Status string `json:"status"` // recovering | recovered
}

// MedicalRecord tracks a player's clearance and health history.
type MedicalRecord struct {
	ID               string   `json:"id"`
	PlayerID         string   `json:"playerId"`
	PlayerName       string   `json:"playerName"`
	Category         string   `json:"category"`
	Photo            string   `json:"photo,omitempty"`
	ClearanceStatus  string   `json:"clearanceStatus"` // cleared | pending | expired
	ClearanceExpiry  string   `json:"clearanceExpiry"`
	LastCheckup      string   `json:"lastCheckup"`
	Injuries         []Injury `json:"injuries"`
	Conditions       []string `json:"conditions"`
	Vaccinations     []string `json:"vaccinations"`
	EmergencyContact string   `json:"emergencyContact"`
}

// Clearance status labels shown in the medical page selector. The selector
// speaks labels, the records speak the raw enum.
var MedicalStatusLabels = map[string]string{
	"Cleared":            "cleared",
	"Under Review":       "pending",
	"Requires Attention": "expired",
}

// ----------------------- fees -----------------------

// Payment is a fee record for a player. PlayerID is not validated against
// the player roster.
type Payment struct {
	ID            string  `json:"id"`
	PlayerID      string  `json:"playerId"`
	PlayerName    string  `json:"playerName"`
	Category      string  `json:"category"`
	Photo         string  `json:"photo,omitempty"`
	FeeType       string  `json:"feeType"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"dueDate"`
	PaidDate      string  `json:"paidDate,omitempty"`
	Status        string  `json:"status"` // paid | pending | overdue
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	Guardian      string  `json:"guardian"`
	Phone         string  `json:"phone"`
}

// ----------------------- staff -----------------------

// StaffMember is a coach, medic, administrator or support staff member.
// AgeGroups may contain the literal "All" for staff covering every category.
type StaffMember struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	AgeGroups      []string `json:"ageGroups"`
	Specialization string   `json:"specialization"`
	Experience     string   `json:"experience"`
	Qualifications []string `json:"qualifications"`
	JoinDate       string   `json:"joinDate"`
	Status         string   `json:"status"`       // active | inactive
	Availability   string   `json:"availability"` // Full-time | Part-time
}

// ----------------------- scouting -----------------------

// TrialEvent is a scheduled scouting/trial session.
type TrialEvent struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Location        string   `json:"location"`
	MaxParticipants int      `json:"maxParticipants"`
	RegisteredCount int      `json:"registeredCount"`
	Status          string   `json:"status"` // scheduled | completed | cancelled
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	Scouts          []string `json:"scouts"`
}

// TrialEvaluation is a scout's scoring of a trialist, nil until evaluated.
type TrialEvaluation struct {
	Technical      int     `json:"technical"`
	Physical       int     `json:"physical"`
	Tactical       int     `json:"tactical"`
	Mental         int     `json:"mental"`
	Overall        float64 `json:"overall"`
	Recommendation string  `json:"recommendation"` // Accept | Reject | Monitor
}

// Trialist is a non-enrolled prospect attending a trial event, distinct
// from an enrolled Player.
type Trialist struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Age          int              `json:"age"`
	Category     string           `json:"category"`
	Position     string           `json:"position"`
	Guardian     string           `json:"guardian"`
	Phone        string           `json:"phone"`
	TrialDate    string           `json:"trialDate"`
	EventID      string           `json:"eventId"`
	Status       string           `json:"status"` // registered | evaluated | accepted | rejected
	Evaluation   *TrialEvaluation `json:"evaluation"`
	PreviousClub string           `json:"previousClub,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// ----------------------- media -----------------------

// MediaAlbum groups photos/videos from a match or training session.
type MediaAlbum struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Kind      string `json:"kind"` // match | training | event
	Date      string `json:"date"`
	ItemCount int    `json:"itemCount"`
	Cover     string `json:"cover,omitempty"`
}

// ----------------------- dashboard -----------------------

// Alert is a dashboard notice.
type Alert struct {
	Type    string `json:"type"` // warning | info | success
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // training | player | match | medical | payment | staff | trial
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	User        string `json:"user"`
}

// StatCard is one summary tile rendered at the top of a page.
type StatCard struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Change     string `json:"change,omitempty"`
	ChangeType string `json:"changeType,omitempty"` // increase | decrease
}

// ----------------------- analytics -----------------------

// CategoryPerformance is one row of the analytics per-category table.
type CategoryPerformance struct {
	Category string `json:"category"`
	Players  int    `json:"players"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Matches  int    `json:"matches"`
	WinRate  int    `json:"winRate"`
}

// TopPerformer is one row of the analytics leaderboard.
type TopPerformer struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Goals    int     `json:"goals"`
	Assists  int     `json:"assists"`
	Rating   float64 `json:"rating"`
}
