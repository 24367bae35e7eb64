package api

import (
	"sync"
)

const defaultStoreLimit = 256

// ReportStore keeps the most recent validation reports by id. Once full, the
// oldest report is evicted.
type ReportStore struct {
	mu      sync.Mutex
	limit   int
	order   []string
	reports map[string]ValidateResponse
}

func NewReportStore(limit int) *ReportStore {
	if limit <= 0 {
		limit = defaultStoreLimit
	}
	return &ReportStore{
		limit:   limit,
		reports: make(map[string]ValidateResponse),
	}
}

func (s *ReportStore) Put(resp ValidateResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[resp.ID]; !ok {
		s.order = append(s.order, resp.ID)
	}
	s.reports[resp.ID] = resp
	for len(s.order) > s.limit {
		delete(s.reports, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *ReportStore) Get(id string) (ValidateResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp, ok := s.reports[id]
	return resp, ok
}

func (s *ReportStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return false
	}
	delete(s.reports, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *ReportStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}
