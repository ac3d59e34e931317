package importlog

import (
	"context"
	"time"
)

// ImportLog is one audit record summarizing a completed import run.
type ImportLog struct {
	ID        uint
	Actor     string
	Action    string
	Module    string
	Details   string
	CreatedAt time.Time
}

const ActionImport = "import"

type FindParams struct {
	Module string
	Actor  string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]*ImportLog, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	Create(ctx context.Context, log *ImportLog) error
}
