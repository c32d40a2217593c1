package suggest

import "context"

// InMemoryRepository backs tests.
type InMemoryRepository struct {
	runs  map[string]*Run
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{runs: make(map[string]*Run)}
}

func (r *InMemoryRepository) SaveRun(ctx context.Context, run *Run) error {
	r.runs[run.ID] = run
	r.order = append(r.order, run.ID)
	return nil
}

func (r *InMemoryRepository) GetRun(ctx context.Context, id string) (*Run, error) {
	run, ok := r.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	return run, nil
}

func (r *InMemoryRepository) LatestRun(ctx context.Context) (*Run, error) {
	if len(r.order) == 0 {
		return nil, ErrRunNotFound
	}
	return r.runs[r.order[len(r.order)-1]], nil
}
