package game

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Phase describes where a session is in its lifecycle. The lobby collects
// participants and settings, authoring collects and moderates questions,
// in_progress runs the board, complete is terminal.
type Phase string

const (
	PhaseLobby      Phase = "lobby"
	PhaseAuthoring  Phase = "authoring"
	PhaseInProgress Phase = "in_progress"
	PhaseComplete   Phase = "complete"
)

// TurnState is the per-question sub-state while a session is in_progress.
// At most one cell is ever open: question_open and answer_shown both refer
// to the cell at (OpenRow, OpenCol).
type TurnState string

const (
	TurnAwaitingSelection TurnState = "awaiting_selection"
	TurnQuestionOpen      TurnState = "question_open"
	TurnAnswerShown       TurnState = "answer_shown"
)

type Role string

const (
	RoleGameMaster Role = "game_master"
	RoleContestant Role = "contestant"
)

type QuestionStatus string

const (
	StatusPending  QuestionStatus = "pending"
	StatusApproved QuestionStatus = "approved"
	StatusRejected QuestionStatus = "rejected"
)

// PointStep is the value of the first board row; row r is worth
// (r+1)*PointStep.
const PointStep = 100

// CountdownSeconds is the display countdown started when a cell is opened.
// It gates nothing: expiry has no effect on the state machine.
const CountdownSeconds = 60

// ChargePerCorrectAnswer is added to a participant's ability charge for
// each question they answer correctly, clamped to MaxCharge.
const (
	ChargePerCorrectAnswer = 25
	MaxCharge              = 100
)

// Ability activation cost: ActivationBaseCost + ActivationCostStep per
// prior use by the same participant.
const (
	ActivationBaseCost = 200
	ActivationCostStep = 50
)

// Participant is a member of one session. Score may go negative (ability
// activation subtracts its cost without a floor). AbilityCharge stays in
// [0, MaxCharge]. ActiveAbilityName is transient: set on activation and
// cleared by the next completed question resolution.
type Participant struct {
	gorm.Model
	SessionID          uint   `json:"-"`
	ParticipantUUID    string `json:"participant_uuid" gorm:"index"`
	Name               string `json:"name"`
	Role               Role   `json:"role"`
	Ready              bool   `json:"ready"`
	Score              int    `json:"score"`
	AbilityName        string `json:"ability_name"`
	AbilityDescription string `json:"ability_description"`
	AbilityCharge      int    `json:"ability_charge"`
	AbilityUses        int    `json:"ability_uses"`
	ActiveAbilityName  string `json:"active_ability_name"`
}

func (Participant) TableName() string { return "session_participants" }

// IsGameMaster reports whether this participant moderates the session.
func (p *Participant) IsGameMaster() bool { return p.Role == RoleGameMaster }

// HasAbility reports whether an ability is currently assigned.
func (p *Participant) HasAbility() bool { return p.AbilityName != "" }

// AbilityDef is one catalog entry editable in the lobby. Blank names are
// placeholders pending GM edit and are skipped at assignment time.
type AbilityDef struct {
	gorm.Model
	SessionID   uint   `json:"-"`
	Position    int    `json:"position"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (AbilityDef) TableName() string { return "session_abilities" }

// Question is authored during the authoring phase and moderated by the GM.
// Contestant submissions start pending with zero points; the GM assigns a
// point value on approval. Rejection always zeroes the points and the
// question may be re-reviewed later.
type Question struct {
	gorm.Model
	SessionID    uint           `json:"-"`
	QuestionUUID string         `json:"question_uuid" gorm:"index"`
	CreatorUUID  string         `json:"creator_uuid"`
	CreatorName  string         `json:"creator_name"`
	Category     string         `json:"category"`
	Prompt       string         `json:"prompt"`
	Answer       string         `json:"answer"`
	Points       int            `json:"points"`
	Status       QuestionStatus `json:"status"`
}

func (Question) TableName() string { return "session_questions" }

// Cell is one board slot. Column col maps to category col; row r is worth
// (r+1)*PointStep. QuestionID is nil for slots no approved question filled.
type Cell struct {
	gorm.Model
	SessionID  uint  `json:"-"`
	Row        int   `json:"row"`
	Col        int   `json:"col"`
	QuestionID *uint `json:"question_id"`
	Revealed   bool  `json:"revealed"`
}

func (Cell) TableName() string { return "session_cells" }

// Session is the single aggregate for one match. Every command mutates it
// under the per-session lock; nothing outside the service layer touches
// its fields directly.
type Session struct {
	gorm.Model
	JoinCode string `json:"join_code" gorm:"unique"`

	Phase     Phase     `json:"phase"`
	TurnState TurnState `json:"turn_state"`

	// Settings, bounded by config at update time.
	BoardSize          int  `json:"board_size"`
	MaxParticipants    int  `json:"max_participants"`
	UseAbilities       bool `json:"use_abilities"`
	RandomizeAbilities bool `json:"randomize_abilities"`

	// CategoriesJSON holds the ordered category labels as a JSON array.
	// Use CategoryList/SetCategoryList.
	CategoriesJSON string `json:"-" gorm:"column:categories"`

	AbilityCatalog []AbilityDef  `json:"ability_catalog"`
	Participants   []Participant `json:"participants"`
	Questions      []Question    `json:"questions"`
	Cells          []Cell        `json:"cells"`

	// Open-cell context; nil outside question_open/answer_shown.
	OpenRow          *int      `json:"open_row"`
	OpenCol          *int      `json:"open_col"`
	QuestionOpenedAt time.Time `json:"question_opened_at"`

	// Last ability activation, shown to all participants until cleared.
	AnnouncedParticipant string `json:"announced_participant"`
	AnnouncedAbility     string `json:"announced_ability"`
	AnnouncedDescription string `json:"announced_description"`

	Message string `json:"message"`
}

func (Session) TableName() string { return "sessions" }

// CategoryList decodes the ordered category labels. A broken or empty
// column decodes to nil.
func (s *Session) CategoryList() []string {
	if s.CategoriesJSON == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s.CategoriesJSON), &out); err != nil {
		return nil
	}
	return out
}

// SetCategoryList encodes the ordered category labels.
func (s *Session) SetCategoryList(categories []string) {
	b, err := json.Marshal(categories)
	if err != nil {
		s.CategoriesJSON = "[]"
		return
	}
	s.CategoriesJSON = string(b)
}
