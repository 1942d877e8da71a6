package billing

import (
	"context"
	"sync"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// Recorder keeps delivered fees in memory, in first delivery order.
type Recorder struct {
	mu    sync.Mutex
	fees  []core.Fee
	index map[core.FeeIDString]int
}

func NewRecorder() *Recorder {
	return &Recorder{index: make(map[core.FeeIDString]int)}
}

// DeliverFee records the fee. A redelivery replaces the earlier record of the same id.
func (r *Recorder) DeliverFee(_ context.Context, fee core.Fee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[fee.ID]; ok {
		r.fees[i] = fee
		return nil
	}

	r.index[fee.ID] = len(r.fees)
	r.fees = append(r.fees, fee)

	return nil
}

// Fees returns a copy of the recorded fees.
func (r *Recorder) Fees() []core.Fee {
	r.mu.Lock()
	defer r.mu.Unlock()

	fees := make([]core.Fee, len(r.fees))
	copy(fees, r.fees)

	return fees
}
