package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/pto"
	"github.com/google/uuid"
)

type PTORequestRepository struct {
	mu       sync.RWMutex
	requests map[string]pto.PTORequest
}

func NewPTORequestRepository() *PTORequestRepository {
	return &PTORequestRepository{requests: make(map[string]pto.PTORequest)}
}

func (r *PTORequestRepository) Create(_ context.Context, req pto.PTORequest) (pto.PTORequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = uuid.NewString()
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	r.requests[req.ID] = req

	return req, nil
}

func (r *PTORequestRepository) GetByID(_ context.Context, id string) (pto.PTORequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return pto.PTORequest{}, pto.ErrRequestNotFound
	}
	return req, nil
}

func (r *PTORequestRepository) List(_ context.Context) ([]pto.PTORequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pto.PTORequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *PTORequestRepository) UpdateStatus(_ context.Context, id string, from, to pto.Status) (pto.PTORequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return pto.PTORequest{}, pto.ErrRequestNotFound
	}
	if req.Status != from {
		return pto.PTORequest{}, pto.ErrAlreadyDecided
	}

	req.Status = to
	req.UpdatedAt = time.Now()
	r.requests[id] = req

	return req, nil
}

func (r *PTORequestRepository) CountOverlapping(_ context.Context, team string, role employee.Role, from, to time.Time, statuses []pto.Status) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, req := range r.requests {
		if req.Team == team && req.Role == role && req.Overlaps(from, to) && statusIn(req.Status, statuses) {
			count++
		}
	}
	return count, nil
}

func (r *PTORequestRepository) CountOverlappingByRole(_ context.Context, team string, from, to time.Time, statuses []pto.Status) (map[employee.Role]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[employee.Role]int)
	for _, req := range r.requests {
		if req.Team == team && req.Overlaps(from, to) && statusIn(req.Status, statuses) {
			counts[req.Role]++
		}
	}
	return counts, nil
}

func statusIn(s pto.Status, statuses []pto.Status) bool {
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}
