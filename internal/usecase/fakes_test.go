package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for Postgres. Rows are copied in and out so a
// caller never holds a pointer into the store, which lets memTx roll back by
// restoring a snapshot.
type memStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	users     map[uuid.UUID]entity.User
	sessions  map[uuid.UUID]entity.Session
	branches  map[uuid.UUID]entity.Branch
	roomTypes map[uuid.UUID]entity.RoomType
	rooms     map[uuid.UUID]entity.Room
	rateTypes map[uuid.UUID]entity.RateType
	rates     map[uuid.UUID]entity.Rate
	bookings  map[uuid.UUID]entity.Booking
	payments  []entity.Payment

	// failures injected by tests
	failBookingCreate error
	failPaymentCreate error
}

type memSnapshot struct {
	users     map[uuid.UUID]entity.User
	sessions  map[uuid.UUID]entity.Session
	branches  map[uuid.UUID]entity.Branch
	roomTypes map[uuid.UUID]entity.RoomType
	rooms     map[uuid.UUID]entity.Room
	rateTypes map[uuid.UUID]entity.RateType
	rates     map[uuid.UUID]entity.Rate
	bookings  map[uuid.UUID]entity.Booking
	payments  []entity.Payment
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[uuid.UUID]entity.User{},
		sessions:  map[uuid.UUID]entity.Session{},
		branches:  map[uuid.UUID]entity.Branch{},
		roomTypes: map[uuid.UUID]entity.RoomType{},
		rooms:     map[uuid.UUID]entity.Room{},
		rateTypes: map[uuid.UUID]entity.RateType{},
		rates:     map[uuid.UUID]entity.Rate{},
		bookings:  map[uuid.UUID]entity.Booking{},
	}
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memSnapshot{
		users:     maps.Clone(s.users),
		sessions:  maps.Clone(s.sessions),
		branches:  maps.Clone(s.branches),
		roomTypes: maps.Clone(s.roomTypes),
		rooms:     maps.Clone(s.rooms),
		rateTypes: maps.Clone(s.rateTypes),
		rates:     maps.Clone(s.rates),
		bookings:  maps.Clone(s.bookings),
		payments:  slices.Clone(s.payments),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.sessions = snap.sessions
	s.branches = snap.branches
	s.roomTypes = snap.roomTypes
	s.rooms = snap.rooms
	s.rateTypes = snap.rateTypes
	s.rates = snap.rates
	s.bookings = snap.bookings
	s.payments = snap.payments
}

func (s *memStore) repository() *repository.Repository {
	return &repository.Repository{
		User:     memUserRepo{s},
		Session:  memSessionRepo{s},
		Branch:   memBranchRepo{s},
		RoomType: memRoomTypeRepo{s},
		Room:     memRoomRepo{s},
		RateType: memRateTypeRepo{s},
		Rate:     memRateRepo{s},
		Booking:  memBookingRepo{s},
		Payment:  memPaymentRepo{s},
	}
}

// memTx serialises transactions, which stands in for the row locks, and restores
// the pre-transaction snapshot when fn fails.
type memTx struct {
	s    *memStore
	repo *repository.Repository
}

func (t memTx) WithinTx(ctx context.Context, fn func(tx *repository.Repository) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	snap := t.s.snapshot()
	if err := fn(t.repo); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) room(id uuid.UUID) entity.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[id]
}

func (s *memStore) setRoomStatus(id uuid.UUID, status entity.RoomStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.rooms[id]
	r.Status = status
	s.rooms[id] = r
}

func (s *memStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *memStore) paymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

// ---------- users & sessions ----------

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.ID] = *u
	return nil
}

func (r memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r memUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username })
}

func (r memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r memUserRepo) find(match func(entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return page(out, limit, offset), nil
}

func (r memUserRepo) CountAll(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

func (r memUserRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.IsActive = false
	r.s.users[id] = u
	now := time.Now()
	for token, sess := range r.s.sessions {
		if sess.UserID == id && sess.RevokedAt == nil {
			sess.RevokedAt = &now
			r.s.sessions[token] = sess
		}
	}
	return nil
}

type memSessionRepo struct{ s *memStore }

func (r memSessionRepo) Create(ctx context.Context, sess *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions[sess.Token] = *sess
	return nil
}

func (r memSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sess, ok := r.s.sessions[id]; ok && sess.ActiveAt(testNow) {
		return &sess, nil
	}
	return nil, nil
}

func (r memSessionRepo) Revoke(ctx context.Context, token string) error {
	id, err := uuid.Parse(token)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sess, ok := r.s.sessions[id]; ok && sess.RevokedAt == nil {
		now := time.Now()
		sess.RevokedAt = &now
		r.s.sessions[id] = sess
	}
	return nil
}

// ---------- inventory ----------

type memBranchRepo struct{ s *memStore }

func (r memBranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.branches[b.ID] = *b
	return nil
}

func (r memBranchRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.branches[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (r memBranchRepo) FindAll(ctx context.Context) ([]*entity.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Branch
	for _, b := range r.s.branches {
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

type memRoomTypeRepo struct{ s *memStore }

func (r memRoomTypeRepo) Create(ctx context.Context, rt *entity.RoomType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.roomTypes[rt.ID] = *rt
	return nil
}

func (r memRoomTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rt, ok := r.s.roomTypes[id]; ok {
		return &rt, nil
	}
	return nil, nil
}

func (r memRoomTypeRepo) FindAll(ctx context.Context) ([]*entity.RoomType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.RoomType
	for _, rt := range r.s.roomTypes {
		out = append(out, &rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

type memRoomRepo struct{ s *memStore }

func (r memRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.rooms[room.ID] = *room
	return nil
}

func (r memRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if room, ok := r.s.rooms[id]; ok {
		return &room, nil
	}
	return nil, nil
}

func (r memRoomRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	return r.FindByID(ctx, id)
}

func (r memRoomRepo) FindAll(ctx context.Context, f repository.RoomFilter) ([]*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Room
	for _, room := range r.s.rooms {
		switch {
		case f.BranchID != nil && room.BranchID != *f.BranchID,
			f.RoomTypeID != nil && room.RoomTypeID != *f.RoomTypeID,
			f.Status != nil && room.Status != *f.Status,
			f.ActiveOnly && !room.IsActive:
			continue
		}
		out = append(out, &room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r memRoomRepo) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to entity.RoomStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	room, ok := r.s.rooms[id]
	if !ok || room.Status != from {
		return false, nil
	}
	room.Status = to
	r.s.rooms[id] = room
	return true, nil
}

func (r memRoomRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	room, ok := r.s.rooms[id]
	if !ok {
		return errors.New("room not found")
	}
	room.IsActive = false
	r.s.rooms[id] = room
	return nil
}

// ---------- rates ----------

type memRateTypeRepo struct{ s *memStore }

func (r memRateTypeRepo) Create(ctx context.Context, rt *entity.RateType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.rateTypes[rt.ID] = *rt
	return nil
}

func (r memRateTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RateType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rt, ok := r.s.rateTypes[id]; ok {
		return &rt, nil
	}
	return nil, nil
}

func (r memRateTypeRepo) FindAll(ctx context.Context) ([]*entity.RateType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.RateType
	for _, rt := range r.s.rateTypes {
		out = append(out, &rt)
	}
	return out, nil
}

type memRateRepo struct{ s *memStore }

func (r memRateRepo) Create(ctx context.Context, rate *entity.Rate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *rate
	stored.RateType = nil
	r.s.rates[rate.ID] = stored
	return nil
}

// joined mirrors the rates JOIN rate_types query. Callers hold mu.
func (r memRateRepo) joined(rate entity.Rate) *entity.Rate {
	if rt, ok := r.s.rateTypes[rate.RateTypeID]; ok {
		rate.RateType = &rt
	}
	return &rate
}

func (r memRateRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rate, ok := r.s.rates[id]; ok {
		return r.joined(rate), nil
	}
	return nil, nil
}

func (r memRateRepo) FindByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID) ([]*entity.Rate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Rate
	for _, rate := range r.s.rates {
		if rate.RoomTypeID == roomTypeID {
			out = append(out, r.joined(rate))
		}
	}
	return out, nil
}

func (r memRateRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rate, ok := r.s.rates[id]
	if !ok {
		return errors.New("rate not found")
	}
	rate.IsActive = false
	r.s.rates[id] = rate
	return nil
}

// ---------- bookings & payments ----------

type memBookingRepo struct{ s *memStore }

func (r memBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failBookingCreate != nil {
		return r.s.failBookingCreate
	}
	r.s.bookings[b.ID] = *b
	return nil
}

func (r memBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.bookings[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (r memBookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r memBookingRepo) FindByReference(ctx context.Context, ref string) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.ReferenceCode == ref {
			return &b, nil
		}
	}
	return nil, nil
}

func (r memBookingRepo) FindLiveByRoomID(ctx context.Context, roomID uuid.UUID) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var live *entity.Booking
	for _, b := range r.s.bookings {
		if b.RoomID != roomID || b.Status.IsTerminal() {
			continue
		}
		if live == nil || b.CreatedAt.After(live.CreatedAt) {
			live = &b
		}
	}
	return live, nil
}

func (r memBookingRepo) filter(status *entity.BookingStatus) []*entity.Booking {
	var out []*entity.Booking
	for _, b := range r.s.bookings {
		if status == nil || b.Status == *status {
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckInAt.After(out[j].CheckInAt) })
	return out
}

func (r memBookingRepo) FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return page(r.filter(status), limit, offset), nil
}

func (r memBookingRepo) Count(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.filter(status))), nil
}

func (r memBookingRepo) Update(ctx context.Context, b *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.bookings[b.ID]
	if !ok {
		return errors.New("booking not found")
	}
	stored.Status = b.Status
	stored.ActualCheckInAt = b.ActualCheckInAt
	stored.ActualCheckoutAt = b.ActualCheckoutAt
	stored.Notes = b.Notes
	stored.UpdatedAt = b.UpdatedAt
	r.s.bookings[b.ID] = stored
	return nil
}

type memPaymentRepo struct{ s *memStore }

func (r memPaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failPaymentCreate != nil {
		return r.s.failPaymentCreate
	}
	if p.IdempotencyKey != nil {
		for _, existing := range r.s.payments {
			if existing.IdempotencyKey != nil && *existing.IdempotencyKey == *p.IdempotencyKey {
				return fmt.Errorf("create payment %s: %w", p.ReceiptNumber, repository.ErrIdempotencyKeyTaken)
			}
		}
	}
	r.s.payments = append(r.s.payments, *p)
	return nil
}

func (r memPaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Payment
	for _, p := range r.s.payments {
		if p.BookingID == bookingID {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r memPaymentRepo) FindByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[uuid.UUID][]*entity.Payment, len(bookingIDs))
	for _, p := range r.s.payments {
		if slices.Contains(bookingIDs, p.BookingID) {
			out[p.BookingID] = append(out[p.BookingID], &p)
		}
	}
	return out, nil
}

func (r memPaymentRepo) FindByIdempotencyKey(ctx context.Context, key string) (*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.payments {
		if p.IdempotencyKey != nil && *p.IdempotencyKey == key {
			return &p, nil
		}
	}
	return nil, nil
}

func page[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return nil
	}
	end := min(offset+limit, len(rows))
	return rows[offset:end]
}
