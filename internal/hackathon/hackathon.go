// Package hackathon defines the core domain types of the registration site:
// registration records, admin identities, and the fixed lookup tables shared
// by validation, team-ID generation, and email templating.
package hackathon

import "time"

// RegistrationRecord is the stored document describing one team's entry.
// TeamID and TeamNumber are assigned once at creation and never recomputed.
type RegistrationRecord struct {
	ID         string `json:"id,omitempty"`
	TeamID     string `json:"teamId,omitempty"`
	TeamNumber int    `json:"teamNumber,omitempty"`

	TeamName        string `json:"teamName"`
	TeamSize        string `json:"teamSize"`
	ProblemCategory string `json:"problemCategory"`
	Experience      string `json:"experience"`

	TeamLeaderName  string `json:"teamLeaderName"`
	TeamLeaderEmail string `json:"teamLeaderEmail"`
	TeamLeaderPhone string `json:"teamLeaderPhone"`
	Institution     string `json:"institution"`

	TeammateName        string `json:"teammateName"`
	TeammateEmail       string `json:"teammateEmail"`
	TeammatePhone       string `json:"teammatePhone"`
	TeammateInstitution string `json:"teammateInstitution"`

	DietaryRequirements string `json:"dietaryRequirements"`
	EmergencyContact    string `json:"emergencyContact"`

	AgreeToTerms       bool `json:"agreeToTerms"`
	AgreeToPhotography bool `json:"agreeToPhotography"`

	SubmittedAt time.Time  `json:"submittedAt,omitzero"`
	AddedBy     string     `json:"addedBy,omitempty"`
	AddedAt     *time.Time `json:"addedAt,omitempty"`
}

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Satisfies reports whether a holder of r may access something that
// requires the role want. super_admin satisfies every requirement.
func (r Role) Satisfies(want Role) bool {
	if r == RoleSuperAdmin {
		return true
	}
	return r == want
}

// AdminIdentity is the operator currently signed in to the back office.
type AdminIdentity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Category keys accepted in RegistrationRecord.ProblemCategory.
const (
	CategoryWeb        = "web"
	CategoryAI         = "ai"
	CategoryBlockchain = "blockchain"
	CategoryMobile     = "mobile"
)

// UnknownCategoryLetter is used in team IDs for categories outside the map.
const UnknownCategoryLetter = "X"

var categoryLetters = map[string]string{
	CategoryWeb:        "W",
	CategoryAI:         "A",
	CategoryBlockchain: "B",
	CategoryMobile:     "M",
}

var categoryDisplay = map[string]string{
	CategoryWeb:        "Web Development Spook",
	CategoryAI:         "AI Phantom Challenge",
	CategoryBlockchain: "Blockchain Boo",
	CategoryMobile:     "Mobile Monster Maker",
}

var experienceDisplay = map[string]string{
	"beginner":     "Beginner",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
}

// Categories returns the known category keys in display order.
func Categories() []string {
	return []string{CategoryWeb, CategoryAI, CategoryBlockchain, CategoryMobile}
}

// CategoryLetter returns the single-letter team-ID code for key.
func CategoryLetter(key string) string {
	if l, ok := categoryLetters[key]; ok {
		return l
	}
	return UnknownCategoryLetter
}

// CategoryDisplay returns the human-readable name of a category key,
// falling back to the key itself.
func CategoryDisplay(key string) string {
	if d, ok := categoryDisplay[key]; ok {
		return d
	}
	return key
}

// ExperienceDisplay returns the human-readable experience level,
// falling back to the key itself.
func ExperienceDisplay(key string) string {
	if d, ok := experienceDisplay[key]; ok {
		return d
	}
	return key
}
