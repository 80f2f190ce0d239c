package scheduler

import "context"

type refresher interface {
	RefreshAll(ctx context.Context) error
}

// RefreshJob recomputes the standings of every league.
type RefreshJob struct {
	refresher refresher
	schedule  string
}

func NewRefreshJob(refresher refresher, schedule string) *RefreshJob {
	return &RefreshJob{refresher: refresher, schedule: schedule}
}

func (j *RefreshJob) Name() string     { return "refresh-standings" }
func (j *RefreshJob) Schedule() string { return j.schedule }

func (j *RefreshJob) Run(ctx context.Context) error {
	return j.refresher.RefreshAll(ctx)
}
