package appointment

import (
	"context"
	"database/sql"

	"github.com/m-ilin/PAG-AppointmentService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works both
// with a raw *sql.DB and the instrumented wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions; satisfied by *sql.DB via simpletxmanager
// and by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
