package mock

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

// Store is an in-memory implementation of the repository interfaces for
// handler and service tests. Setting Err makes every call fail with it.
type Store struct {
	mu sync.Mutex

	Accounts       map[string]*models.Account
	Profiles       map[string]*models.Profile
	Companies      map[string]*models.Company
	Jobs           map[string]*models.Job
	TravelPackages map[string]*models.TravelPackage
	Events         map[string]*models.Event
	Foods          map[string]*models.Food
	Categories     []models.Lookup
	Neighborhoods  []models.Lookup

	Err error
}

var _ repository.AccountRepo = (*Store)(nil)
var _ repository.ProfileRepo = (*Store)(nil)
var _ repository.CompanyRepo = (*Store)(nil)
var _ repository.JobRepo = (*Store)(nil)
var _ repository.TravelPackageRepo = (*Store)(nil)
var _ repository.EventRepo = (*Store)(nil)
var _ repository.FoodRepo = (*Store)(nil)
var _ repository.ListingLifecycleRepo = (*Store)(nil)
var _ repository.LookupRepo = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		Accounts:       make(map[string]*models.Account),
		Profiles:       make(map[string]*models.Profile),
		Companies:      make(map[string]*models.Company),
		Jobs:           make(map[string]*models.Job),
		TravelPackages: make(map[string]*models.TravelPackage),
		Events:         make(map[string]*models.Event),
		Foods:          make(map[string]*models.Food),
	}
}

func (s *Store) CreateAccount(ctx context.Context, a *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.Accounts {
		if existing.Email == a.Email {
			return models.ErrDuplicate
		}
	}
	s.Accounts[a.ID] = a
	return nil
}

func (s *Store) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Accounts[id], nil
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, a := range s.Accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (s *Store) ConfirmAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	a, ok := s.Accounts[id]
	if !ok {
		return models.ErrNotFound
	}
	a.Confirmed = true
	return nil
}

func (s *Store) CreateProfile(ctx context.Context, p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Profiles[p.ID]; ok {
		return models.ErrDuplicate
	}
	s.Profiles[p.ID] = p
	return nil
}

func (s *Store) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Profiles[id], nil
}

func (s *Store) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.Profile, 0, len(s.Profiles))
	for _, p := range s.Profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (s *Store) SetRole(ctx context.Context, id string, role models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	p, ok := s.Profiles[id]
	if !ok {
		return models.ErrNotFound
	}
	p.Role = role
	return nil
}

func matches(meta models.ListingMeta, q repository.ListingQuery) bool {
	if q.Status != "" && meta.Status != q.Status {
		return false
	}
	if q.UserID != "" && meta.UserID != q.UserID {
		return false
	}
	return true
}

func (s *Store) CreateCompany(ctx context.Context, c *models.Company) error {
	return s.put(func() { s.Companies[c.ID] = c }, &c.ListingMeta)
}

func (s *Store) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Companies[id], nil
}

func (s *Store) ListCompanies(ctx context.Context, q repository.ListingQuery) ([]models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []models.Company{}
	for _, c := range s.Companies {
		if !matches(c.ListingMeta, q) {
			continue
		}
		if q.Category != "" && c.Category != q.Category {
			continue
		}
		if q.Neighborhood != "" && c.Neighborhood != q.Neighborhood {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (s *Store) CreateJob(ctx context.Context, j *models.Job) error {
	return s.put(func() { s.Jobs[j.ID] = j }, &j.ListingMeta)
}

func (s *Store) GetJob(ctx context.Context, id string) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Jobs[id], nil
}

func (s *Store) ListJobs(ctx context.Context, q repository.ListingQuery) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []models.Job{}
	for _, j := range s.Jobs {
		if matches(j.ListingMeta, q) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (s *Store) CreateTravelPackage(ctx context.Context, p *models.TravelPackage) error {
	return s.put(func() { s.TravelPackages[p.ID] = p }, &p.ListingMeta)
}

func (s *Store) GetTravelPackage(ctx context.Context, id string) (*models.TravelPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.TravelPackages[id], nil
}

func (s *Store) ListTravelPackages(ctx context.Context, q repository.ListingQuery) ([]models.TravelPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []models.TravelPackage{}
	for _, p := range s.TravelPackages {
		if matches(p.ListingMeta, q) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *Store) CreateEvent(ctx context.Context, e *models.Event) error {
	return s.put(func() { s.Events[e.ID] = e }, &e.ListingMeta)
}

func (s *Store) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Events[id], nil
}

func (s *Store) ListEvents(ctx context.Context, q repository.ListingQuery) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []models.Event{}
	for _, e := range s.Events {
		if matches(e.ListingMeta, q) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *Store) CreateFood(ctx context.Context, f *models.Food) error {
	return s.put(func() { s.Foods[f.ID] = f }, &f.ListingMeta)
}

func (s *Store) GetFood(ctx context.Context, id string) (*models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Foods[id], nil
}

func (s *Store) ListFoods(ctx context.Context, q repository.ListingQuery) ([]models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []models.Food{}
	for _, f := range s.Foods {
		if !matches(f.ListingMeta, q) {
			continue
		}
		if q.Category != "" && f.Category != q.Category {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

// put applies the same lifecycle defaults the real store does.
func (s *Store) put(insert func(), meta *models.ListingMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	if meta.Status == "" {
		meta.Status = models.StatusPending
	}
	insert()
	return nil
}

func (s *Store) GetListingMeta(ctx context.Context, kind models.ListingKind, id string) (*models.ListingMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	meta := s.metaLocked(kind, id)
	if meta == nil {
		return nil, nil
	}
	copied := *meta
	return &copied, nil
}

func (s *Store) UpdateListingStatus(ctx context.Context, kind models.ListingKind, id string, status models.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	meta := s.metaLocked(kind, id)
	if meta == nil {
		return models.ErrNotFound
	}
	meta.Status = status
	return nil
}

func (s *Store) DeleteListing(ctx context.Context, kind models.ListingKind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.metaLocked(kind, id) == nil {
		return models.ErrNotFound
	}
	switch kind {
	case models.KindCompany:
		delete(s.Companies, id)
	case models.KindJob:
		delete(s.Jobs, id)
	case models.KindTravelPackage:
		delete(s.TravelPackages, id)
	case models.KindEvent:
		delete(s.Events, id)
	case models.KindFood:
		delete(s.Foods, id)
	}
	return nil
}

func (s *Store) metaLocked(kind models.ListingKind, id string) *models.ListingMeta {
	switch kind {
	case models.KindCompany:
		if c, ok := s.Companies[id]; ok {
			return &c.ListingMeta
		}
	case models.KindJob:
		if j, ok := s.Jobs[id]; ok {
			return &j.ListingMeta
		}
	case models.KindTravelPackage:
		if p, ok := s.TravelPackages[id]; ok {
			return &p.ListingMeta
		}
	case models.KindEvent:
		if e, ok := s.Events[id]; ok {
			return &e.ListingMeta
		}
	case models.KindFood:
		if f, ok := s.Foods[id]; ok {
			return &f.ListingMeta
		}
	}
	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Lookup, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Categories, nil
}

func (s *Store) ListNeighborhoods(ctx context.Context) ([]models.Lookup, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Neighborhoods, nil
}
