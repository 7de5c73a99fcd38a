package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jklassic/logistics/internal/data/entity"
	"github.com/jklassic/logistics/pkg/mailer"

	"github.com/google/uuid"
)

// ==================== PARCEL REPO FAKE ====================

type fakeParcelRepo struct {
	mu      sync.Mutex
	parcels map[uuid.UUID]*entity.Parcel
}

func newFakeParcelRepo() *fakeParcelRepo {
	return &fakeParcelRepo{parcels: make(map[uuid.UUID]*entity.Parcel)}
}

func (f *fakeParcelRepo) Create(_ context.Context, parcel *entity.Parcel) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := *parcel
	f.parcels[p.ID] = &p
	return nil
}

func (f *fakeParcelRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Parcel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.parcels[id]
	if !ok {
		return nil, nil
	}
	p := *stored
	return &p, nil
}

// Search mirrors the repository contract: case-insensitive substring match on
// tracking number, newest first, image dropped from the projection
func (f *fakeParcelRepo) Search(_ context.Context, query string) ([]*entity.Parcel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	q := strings.ToLower(query)
	var result []*entity.Parcel
	for _, stored := range f.parcels {
		if q != "" && !strings.Contains(strings.ToLower(stored.TrackingNumber), q) {
			continue
		}
		p := *stored
		p.Image = nil
		p.ImageContentType = nil
		result = append(result, &p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (f *fakeParcelRepo) Update(_ context.Context, parcel *entity.Parcel, expectedVersion *int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.parcels[parcel.ID]
	if !ok {
		return fmt.Errorf("parcel %s not found", parcel.ID.String())
	}
	if expectedVersion != nil && stored.Version != *expectedVersion {
		return fmt.Errorf("version mismatch for parcel %s", parcel.ID.String())
	}

	p := *parcel
	p.Version = stored.Version + 1
	f.parcels[p.ID] = &p
	return nil
}

func (f *fakeParcelRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.parcels[id]; !ok {
		return fmt.Errorf("parcel %s not found", id.String())
	}
	delete(f.parcels, id)
	return nil
}

// ==================== WORKER REPO FAKE ====================

type fakeWorkerRepo struct {
	mu      sync.Mutex
	workers map[uuid.UUID]*entity.Worker
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[uuid.UUID]*entity.Worker)}
}

func (f *fakeWorkerRepo) Create(_ context.Context, worker *entity.Worker) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	w := *worker
	f.workers[w.ID] = &w
	return nil
}

func (f *fakeWorkerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.workers[id]
	if !ok {
		return nil, nil
	}
	w := *stored
	return &w, nil
}

func (f *fakeWorkerRepo) FindByEmail(_ context.Context, email string) (*entity.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, stored := range f.workers {
		if stored.Email == email {
			w := *stored
			return &w, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkerRepo) FindAll(_ context.Context) ([]*entity.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*entity.Worker
	for _, stored := range f.workers {
		w := *stored
		w.Image = nil
		w.ImageContentType = nil
		result = append(result, &w)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (f *fakeWorkerRepo) Approve(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.workers[id]
	if !ok {
		return fmt.Errorf("worker %s not found", id.String())
	}
	stored.Approved = true
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeWorkerRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, stored := range f.workers {
		if stored.Email == email {
			stored.PasswordHash = passwordHash
			stored.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("worker %s not found", email)
}

func (f *fakeWorkerRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.workers[id]; !ok {
		return fmt.Errorf("worker %s not found", id.String())
	}
	delete(f.workers, id)
	return nil
}

// ==================== ADMIN REPO FAKE ====================

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[uuid.UUID]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[uuid.UUID]*entity.Admin)}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a := *admin
	f.admins[a.ID] = &a
	return nil
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.admins[id]
	if !ok {
		return nil, nil
	}
	a := *stored
	return &a, nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, stored := range f.admins {
		if stored.Email == email {
			a := *stored
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) FindAll(_ context.Context) ([]*entity.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*entity.Admin
	for _, stored := range f.admins {
		a := *stored
		a.Image = nil
		a.ImageContentType = nil
		result = append(result, &a)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// ==================== SESSION REPO FAKE ====================

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := *session
	f.sessions[s.Token] = &s
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	stored, ok := f.sessions[tokenUUID]
	if !ok || stored.RevokedAt != nil || !stored.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	s := *stored
	return &s, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return fmt.Errorf("session not found")
	}

	stored, ok := f.sessions[tokenUUID]
	if !ok || stored.RevokedAt != nil {
		return fmt.Errorf("session not found")
	}

	now := time.Now()
	stored.RevokedAt = &now
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var removed int64
	for token, stored := range f.sessions {
		if stored.RevokedAt != nil || !stored.ExpiresAt.After(time.Now()) {
			delete(f.sessions, token)
			removed++
		}
	}
	return removed, nil
}

// ==================== MAILER FAKE ====================

type fakeMailer struct {
	mu   sync.Mutex
	sent []*mailer.Message
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{}
}

func (f *fakeMailer) Send(msg *mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.sent)
}

func (f *fakeMailer) last() *mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.sent) == 0 {
		return nil
	}
	return f.sent[len(f.sent)-1]
}
