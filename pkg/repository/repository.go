package repository

import (
	"context"

	"github.com/centralbjl/directory/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Lookup methods follow the convention of returning (nil, nil) when the record
// does not exist; a non-nil error always means the store itself failed.

type AccountRepo interface {
	// CreateAccount inserts a new account. The caller provides the ID.
	// A unique-constraint violation on email is returned as models.ErrDuplicate.
	CreateAccount(ctx context.Context, a *models.Account) error
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	ConfirmAccount(ctx context.Context, id string) error
}

type ProfileRepo interface {
	// CreateProfile inserts a profile whose ID equals the account ID.
	// A duplicate ID is returned as models.ErrDuplicate.
	CreateProfile(ctx context.Context, p *models.Profile) error
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	// SetRole is the out-of-band role mutation; no API handler calls it.
	SetRole(ctx context.Context, id string, role models.Role) error
}

// ListingQuery narrows a listing query at the store boundary. Empty fields
// apply no filter. Visibility rules must be encoded here by the caller; result
// sets are never filtered client-side afterwards.
type ListingQuery struct {
	Status       models.Status
	UserID       string
	Category     string
	Neighborhood string
}

type CompanyRepo interface {
	CreateCompany(ctx context.Context, c *models.Company) error
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	ListCompanies(ctx context.Context, q ListingQuery) ([]models.Company, error)
}

type JobRepo interface {
	CreateJob(ctx context.Context, j *models.Job) error
	GetJob(ctx context.Context, id string) (*models.Job, error)
	ListJobs(ctx context.Context, q ListingQuery) ([]models.Job, error)
}

type TravelPackageRepo interface {
	CreateTravelPackage(ctx context.Context, p *models.TravelPackage) error
	GetTravelPackage(ctx context.Context, id string) (*models.TravelPackage, error)
	ListTravelPackages(ctx context.Context, q ListingQuery) ([]models.TravelPackage, error)
}

type EventRepo interface {
	CreateEvent(ctx context.Context, e *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	// ListEvents orders by event date ascending (upcoming first), unlike the
	// other collections which list newest first.
	ListEvents(ctx context.Context, q ListingQuery) ([]models.Event, error)
}

type FoodRepo interface {
	CreateFood(ctx context.Context, f *models.Food) error
	GetFood(ctx context.Context, id string) (*models.Food, error)
	ListFoods(ctx context.Context, q ListingQuery) ([]models.Food, error)
}

// ListingLifecycleRepo exposes the kind-agnostic lifecycle slice used by the
// moderation workflow and by owner deletes. Payload columns are never touched
// through this interface.
type ListingLifecycleRepo interface {
	GetListingMeta(ctx context.Context, kind models.ListingKind, id string) (*models.ListingMeta, error)
	// UpdateListingStatus updates exactly the status (and updated) columns.
	UpdateListingStatus(ctx context.Context, kind models.ListingKind, id string, status models.Status) error
	DeleteListing(ctx context.Context, kind models.ListingKind, id string) error
}

type LookupRepo interface {
	ListCategories(ctx context.Context) ([]models.Lookup, error)
	ListNeighborhoods(ctx context.Context) ([]models.Lookup, error)
}
