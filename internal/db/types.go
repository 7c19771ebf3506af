package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a user profile row.
type User struct {
	ID                uuid.UUID   `json:"id"`
	Email             string      `json:"email"`
	DisplayName       string      `json:"displayName"`
	PhotoURL          string      `json:"photoURL,omitempty"`
	PasswordHash      string      `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet       bool        `json:"password_set" db:"password_set"`
	Skills            StringArray `json:"skills"`
	Interests         StringArray `json:"interests"`
	LearningGoals     StringArray `json:"learningGoals"`
	IsProfileComplete bool        `json:"isProfileComplete"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Skill posting types.
const (
	SkillTypeOffer   = "offer"   // the owner can teach this
	SkillTypeRequest = "request" // the owner wants to learn this
)

// Skill represents a skill posting.
type Skill struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Description      string    `json:"description,omitempty"`
	Type             string    `json:"type"`
	ProficiencyLevel string    `json:"proficiencyLevel,omitempty"`
	UserID           uuid.UUID `json:"userId"`
	UserEmail        string    `json:"userEmail"`
	IsAvailable      bool      `json:"isAvailable"`
	CreatedAt        time.Time `json:"created_at"`
}

// Message statuses. Messages are immutable after creation; the status is
// stamped once at write time.
const (
	MessageStatusSent     = "sent"
	MessageStatusRead     = "read"
	MessageStatusArchived = "archived"
)

// Message represents a message between two users.
type Message struct {
	ID             uuid.UUID  `json:"id"`
	SenderID       uuid.UUID  `json:"senderId"`
	SenderEmail    string     `json:"senderEmail"`
	RecipientEmail string     `json:"recipientEmail"`
	Body           string     `json:"body"`
	SkillID        *uuid.UUID `json:"skillId,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Match statuses. Pending matches are decided exactly once by the partner.
const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusRejected = "rejected"
)

// Match represents a proposed skill exchange between two users, with a
// snapshot of both skill lists taken at proposal time.
type Match struct {
	ID              uuid.UUID   `json:"id"`
	InitiatorID     uuid.UUID   `json:"initiatorId"`
	PartnerID       uuid.UUID   `json:"partnerId"`
	InitiatorSkills StringArray `json:"initiatorSkills"`
	PartnerSkills   StringArray `json:"partnerSkills"`
	Status          string      `json:"status"`
	Compatibility   float64     `json:"compatibility"`
	CreatedAt       time.Time   `json:"created_at"`
	DecidedAt       *time.Time  `json:"decided_at,omitempty"`
}

// Notification types.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification represents a user-facing notice.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
