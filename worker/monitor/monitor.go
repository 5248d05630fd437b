package monitor

import (
	"context"
	"lending/core"
	"lending/worker"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// DefaultSpec scan schedule
const DefaultSpec = "@every 10s"

// Monitor recomputes the collateral ratio of every borrower on a schedule
type Monitor struct {
	worker.BaseJob
	accounts core.IAccountService
}

// New new ratio monitor, location names the cron time zone
func New(location, spec string, accounts core.IAccountService) *Monitor {
	m := Monitor{
		accounts: accounts,
	}

	if spec == "" {
		spec = DefaultSpec
	}

	l, err := time.LoadLocation(location)
	if err != nil {
		l = time.Local
	}

	m.Cron = cron.New(cron.WithLocation(l))
	if _, err := m.Cron.AddFunc(spec, m.Run); err != nil {
		panic(err)
	}

	m.OnWork = func() error {
		return m.onWork(context.Background())
	}

	return &m
}

func (m *Monitor) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "monitor")

	snapshots, err := m.accounts.Scan(ctx)
	if err != nil {
		log.WithError(err).Errorln("accounts.Scan")
		return err
	}

	for _, snapshot := range snapshots {
		if snapshot.Liquidatable {
			log.WithField("owner", snapshot.Owner).
				WithField("ratio", snapshot.Ratio.String()).
				WithField("debt", snapshot.Debt.String()).
				Infoln("undercollateralized")
		}
	}

	return nil
}
