package usecase

import (
	"errors"
	"time"
)

const (
	ModeImport = "import"
	ModeSync   = "sync"
)

type Status string

const (
	StatusCreated Status = "created"
	StatusExists  Status = "exists"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// RowResult é o desfecho de uma linha. Key é o airalo_id (import) ou o order_id (sync).
type RowResult struct {
	Key      string
	Status   Status
	Code     string
	Reason   string
	RemoteID int64
}

func created(key string, id int64) RowResult {
	return RowResult{Key: key, Status: StatusCreated, RemoteID: id}
}

func exists(key string, id int64) RowResult {
	return RowResult{Key: key, Status: StatusExists, RemoteID: id}
}

func skipped(key, code, reason string) RowResult {
	return RowResult{Key: key, Status: StatusSkipped, Code: code, Reason: reason}
}

// fromError classifica o erro de um passo: DomainError vira skip, o resto é falha.
func fromError(key string, err error) RowResult {
	var de *DomainError
	if errors.As(err, &de) {
		return skipped(key, de.Code, de.Message)
	}
	code := CodeERPFailure
	var te *TechnicalError
	if errors.As(err, &te) {
		code = te.Code
	}
	return RowResult{Key: key, Status: StatusFailed, Code: code, Reason: err.Error()}
}

type RunSummary struct {
	RunID      string
	Mode       string
	StartedAt  time.Time
	FinishedAt time.Time

	Total    int
	Created  int
	Existing int
	Skipped  int
	Failed   int

	// Problems guarda as linhas puladas ou com falha, para o relatório.
	Problems []RowResult
}

func (s *RunSummary) Add(r RowResult) {
	s.Total++
	switch r.Status {
	case StatusCreated:
		s.Created++
	case StatusExists:
		s.Existing++
	case StatusSkipped:
		s.Skipped++
		s.Problems = append(s.Problems, r)
	case StatusFailed:
		s.Failed++
		s.Problems = append(s.Problems, r)
	}
}

func (s *RunSummary) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
