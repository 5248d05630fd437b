package core

import (
	"context"
	"encoding/json"
	"lending/pkg/number"
	"time"

	"github.com/jmoiron/sqlx/types"
)

// EventKind event kind
type EventKind string

const (
	// EventKindDeposit deposit(owner, asset, amount)
	EventKindDeposit EventKind = "deposit"
	// EventKindWithdraw withdraw(owner, asset, payout)
	EventKindWithdraw EventKind = "withdraw"
	// EventKindBorrow borrow(owner, amount, ratio)
	EventKindBorrow EventKind = "borrow"
	// EventKindRepay repay(owner, remaining principal)
	EventKindRepay EventKind = "repay"
	// EventKindLiquidate liquidate(owner, liquidator, repaid, seized)
	EventKindLiquidate EventKind = "liquidate"
)

// EventData kind specific fields
type EventData struct {
	Ratio      *number.Amount `json:"ratio,omitempty"`
	Remaining  *number.Amount `json:"remaining,omitempty"`
	Liquidator string         `json:"liquidator,omitempty"`
	Seized     *number.Amount `json:"seized,omitempty"`
}

// Format format as []byte
func (d EventData) Format() []byte {
	bs, err := json.Marshal(d)
	if err != nil {
		return []byte("{}")
	}

	return bs
}

// Event append-only ledger log entry, one or more per successful mutation
type Event struct {
	ID        uint64         `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID   string         `sql:"size:36;unique_index:idx_events_trace_id" json:"trace_id"`
	Kind      EventKind      `sql:"size:16" json:"kind"`
	Owner     string         `sql:"size:64;index:idx_events_owner" json:"owner"`
	AssetID   string         `sql:"size:36" json:"asset_id"`
	Amount    number.Amount  `sql:"type:varchar(80)" json:"amount"`
	Tick      uint64         `sql:"default:0" json:"tick"`
	Data      types.JSONText `sql:"type:TEXT" json:"data,omitempty"`
	CreatedAt time.Time      `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// SetData set kind specific fields
func (e *Event) SetData(d EventData) {
	e.Data = d.Format()
}

// UnmarshalData decode kind specific fields
func (e *Event) UnmarshalData() (EventData, error) {
	var d EventData
	if len(e.Data) == 0 {
		return d, nil
	}

	err := json.Unmarshal(e.Data, &d)
	return d, err
}

// IEventStore event log reader
type IEventStore interface {
	// List events with id > fromID, ordered by id
	List(ctx context.Context, fromID uint64, limit int) ([]*Event, error)
}

// IEventPublisher forwards committed events downstream
type IEventPublisher interface {
	Publish(ctx context.Context, events ...*Event) error
}
