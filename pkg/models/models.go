package models

// Role is the application-level role stored on a profile.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Status is the moderation state of a listing. Every listing starts as
// StatusPending; only StatusActive listings are publicly visible.
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is one of the known moderation states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive:
		return true
	}
	return false
}

// ListingKind identifies one of the five listing collections.
type ListingKind string

const (
	KindCompany       ListingKind = "company"
	KindJob           ListingKind = "job"
	KindTravelPackage ListingKind = "travel_package"
	KindEvent         ListingKind = "event"
	KindFood          ListingKind = "food"
)

// ListingKinds enumerates all collections, in the order the dashboard shows them.
var ListingKinds = []ListingKind{KindCompany, KindJob, KindTravelPackage, KindEvent, KindFood}

// Valid reports whether k names a known collection.
func (k ListingKind) Valid() bool {
	for _, known := range ListingKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Account holds the credentials side of an identity. Profiles reference it 1:1.
type Account struct {
	ID           string `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Confirmed    bool   `json:"confirmed" db:"confirmed"`
	Created      int64  `json:"created" db:"created"`
}

// Profile is the application-level identity record layered over an account.
// Its ID equals the account ID.
type Profile struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Role    Role   `json:"role" db:"role"`
	Created int64  `json:"created" db:"created"`
}

// ListingMeta is the lifecycle slice shared by every listing kind: identity,
// ownership and moderation state. The moderation workflow operates on this
// alone and never touches payload columns.
type ListingMeta struct {
	ID      string `json:"id" db:"id"`
	UserID  string `json:"user_id" db:"user_id"`
	Status  Status `json:"status" db:"status"`
	Created int64  `json:"created" db:"created"`
	Updated int64  `json:"updated" db:"updated"`
}

type Company struct {
	ListingMeta
	Name         string `json:"name" db:"name"`
	Category     string `json:"category" db:"category"`
	Description  string `json:"description" db:"description"`
	Address      string `json:"address" db:"address"`
	Neighborhood string `json:"neighborhood" db:"neighborhood"`
	Phone        string `json:"phone,omitempty" db:"phone"`
	Whatsapp     string `json:"whatsapp,omitempty" db:"whatsapp"`
	Email        string `json:"email,omitempty" db:"email"`
	CoverImage   string `json:"cover_image,omitempty" db:"cover_image"`
}

type Job struct {
	ListingMeta
	Title        string `json:"title" db:"title"`
	CompanyName  string `json:"company_name" db:"company_name"`
	Salary       string `json:"salary,omitempty" db:"salary"`
	Description  string `json:"description" db:"description"`
	Requirements string `json:"requirements,omitempty" db:"requirements"`
	Deadline     string `json:"deadline,omitempty" db:"deadline"`
}

type TravelPackage struct {
	ListingMeta
	Destination   string  `json:"destination" db:"destination"`
	DepartureDate string  `json:"departure_date" db:"departure_date"`
	Agency        string  `json:"agency" db:"agency"`
	Price         float64 `json:"price" db:"price"`
	Description   string  `json:"description" db:"description"`
	CoverImage    string  `json:"cover_image,omitempty" db:"cover_image"`
}

type Event struct {
	ListingMeta
	Name        string  `json:"name" db:"name"`
	EventDate   string  `json:"event_date" db:"event_date"`
	Location    string  `json:"location" db:"location"`
	EventType   string  `json:"event_type" db:"event_type"`
	IsFree      bool    `json:"is_free" db:"is_free"`
	TicketPrice float64 `json:"ticket_price,omitempty" db:"ticket_price"`
	AgeRating   string  `json:"age_rating,omitempty" db:"age_rating"`
	Description string  `json:"description" db:"description"`
	CoverImage  string  `json:"cover_image,omitempty" db:"cover_image"`
}

type Food struct {
	ListingMeta
	Name         string `json:"name" db:"name"`
	Category     string `json:"category" db:"category"`
	Description  string `json:"description" db:"description"`
	Address      string `json:"address" db:"address"`
	Phone        string `json:"phone,omitempty" db:"phone"`
	Whatsapp     string `json:"whatsapp,omitempty" db:"whatsapp"`
	Delivery     bool   `json:"delivery" db:"delivery"`
	OpeningHours string `json:"opening_hours,omitempty" db:"opening_hours"`
	CoverImage   string `json:"cover_image,omitempty" db:"cover_image"`
}

// Lookup is a static filter entry (business category or neighborhood).
type Lookup struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
