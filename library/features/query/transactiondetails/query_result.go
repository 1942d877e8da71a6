package transactiondetails

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// TransactionDetails represents the query result. Fee is nil unless the return was overdue.
type TransactionDetails struct {
	Transaction core.Transaction
	Fee         *core.Fee
}
