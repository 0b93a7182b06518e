// Package memory provides process-local stores with the same contracts as
// the Mongo repositories. The server uses them when MONGO_ENABLED is false.
package memory

import (
	"context"
	"sort"
	"sync"

	"MediBook/models"
	"MediBook/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Accounts struct {
	mu      sync.RWMutex
	byEmail map[string]models.Register
}

func NewAccounts() *Accounts {
	return &Accounts{byEmail: make(map[string]models.Register)}
}

func (s *Accounts) FindByEmail(_ context.Context, email string) (*models.Register, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &account, nil
}

func (s *Accounts) Create(_ context.Context, account *models.Register) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[account.Email]; exists {
		return repository.ErrDuplicate
	}
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	s.byEmail[account.Email] = *account
	return nil
}

type Doctors struct {
	mu   sync.RWMutex
	docs []models.Doctor
}

func NewDoctors() *Doctors {
	return &Doctors{}
}

func (s *Doctors) Create(_ context.Context, doctor *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if d.DoctorID == doctor.DoctorID {
			return repository.ErrDuplicate
		}
	}
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	s.docs = append(s.docs, *doctor)
	return nil
}

func (s *Doctors) Find(_ context.Context, filter repository.DoctorFilter) ([]models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Doctor, 0)
	for i := range s.docs {
		if filter.Matches(&s.docs[i]) {
			out = append(out, s.docs[i])
		}
	}
	return out, nil
}

func (s *Doctors) FindByID(_ context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	d := s.docs[i]
	return &d, nil
}

func (s *Doctors) Update(_ context.Context, id primitive.ObjectID, set bson.M) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	var updated models.Doctor
	if err := applySet(&s.docs[i], set, &updated); err != nil {
		return nil, err
	}
	for j, d := range s.docs {
		if j != i && d.DoctorID == updated.DoctorID {
			return nil, repository.ErrDuplicate
		}
	}
	s.docs[i] = updated
	return &updated, nil
}

func (s *Doctors) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	s.docs = append(s.docs[:i], s.docs[i+1:]...)
	return nil
}

func (s *Doctors) index(id primitive.ObjectID) int {
	for i := range s.docs {
		if s.docs[i].ID == id {
			return i
		}
	}
	return -1
}

// Bookings enforces tokenNumber uniqueness like the Mongo unique index.
type Bookings struct {
	mu       sync.RWMutex
	bookings []models.Booking
	tokens   map[int64]struct{}
}

func NewBookings() *Bookings {
	return &Bookings{tokens: make(map[int64]struct{})}
}

func (s *Bookings) Create(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.tokens[booking.TokenNumber]; taken {
		return repository.ErrDuplicate
	}
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	s.tokens[booking.TokenNumber] = struct{}{}
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *Bookings) Find(_ context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, 0)
	for i := range s.bookings {
		if filter.Matches(&s.bookings[i]) {
			out = append(out, s.bookings[i])
		}
	}
	return out, nil
}

func (s *Bookings) FindByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	b := s.bookings[i]
	return &b, nil
}

func (s *Bookings) Update(_ context.Context, id primitive.ObjectID, set bson.M) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	var updated models.Booking
	if err := applySet(&s.bookings[i], set, &updated); err != nil {
		return nil, err
	}
	s.bookings[i] = updated
	return &updated, nil
}

func (s *Bookings) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	delete(s.tokens, s.bookings[i].TokenNumber)
	s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
	return nil
}

func (s *Bookings) MaxTokenNumber(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var max int64
	for token := range s.tokens {
		if token > max {
			max = token
		}
	}
	return max, nil
}

func (s *Bookings) index(id primitive.ObjectID) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

type Prescriptions struct {
	mu    sync.RWMutex
	items []models.Prescription
}

func NewPrescriptions() *Prescriptions {
	return &Prescriptions{}
}

func (s *Prescriptions) Create(_ context.Context, p *models.Prescription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	s.items = append(s.items, *p)
	return nil
}

func (s *Prescriptions) Find(_ context.Context, filter repository.PrescriptionFilter) ([]models.Prescription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Prescription, 0)
	for i := range s.items {
		if filter.Matches(&s.items[i]) {
			out = append(out, s.items[i])
		}
	}
	if filter.NewestFirst {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (s *Prescriptions) Update(_ context.Context, id primitive.ObjectID, set bson.M) (*models.Prescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	var updated models.Prescription
	if err := applySet(&s.items[i], set, &updated); err != nil {
		return nil, err
	}
	s.items[i] = updated
	return &updated, nil
}

func (s *Prescriptions) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

func (s *Prescriptions) index(id primitive.ObjectID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Counters is the in-process equivalent of the counters collection.
type Counters struct {
	mu  sync.Mutex
	seq map[string]int64
}

func NewCounters() *Counters {
	return &Counters{seq: make(map[string]int64)}
}

func (s *Counters) Next(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[name]++
	return s.seq[name], nil
}

func (s *Counters) SeedAtLeast(_ context.Context, name string, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value > s.seq[name] {
		s.seq[name] = value
	}
	return nil
}

// applySet mirrors a Mongo $set: current is encoded to BSON, the set fields
// are overlaid and the result decoded into out.
func applySet(current interface{}, set bson.M, out interface{}) error {
	raw, err := bson.Marshal(current)
	if err != nil {
		return err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return err
	}
	for k, v := range set {
		doc[k] = v
	}
	raw, err = bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
