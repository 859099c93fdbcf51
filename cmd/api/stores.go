package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bryanwahyu/scamwatch/internal/application"
	"github.com/bryanwahyu/scamwatch/internal/config"
	"github.com/bryanwahyu/scamwatch/internal/domain/disputes"
	"github.com/bryanwahyu/scamwatch/internal/domain/reports"
	"github.com/bryanwahyu/scamwatch/internal/infra/db/memory"
	mysqlp "github.com/bryanwahyu/scamwatch/internal/infra/db/mysql"
	postgresp "github.com/bryanwahyu/scamwatch/internal/infra/db/postgres"
	sqlitep "github.com/bryanwahyu/scamwatch/internal/infra/db/sqlite"
)

type stores struct {
	reports  reports.Repository
	disputes disputes.Repository
	// db is nil for the memory driver.
	db *sql.DB
}

func (s *stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openStores(ctx context.Context, cfg *config.Config, clock application.Clock) (*stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return &stores{
			reports:  memory.NewReportRepository(clock),
			disputes: memory.NewDisputeRepository(clock),
		}, nil

	case config.DriverSQLite:
		db, err := sqlitep.Open(ctx, cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		return &stores{
			reports:  sqlitep.NewReportRepository(db, clock),
			disputes: sqlitep.NewDisputeRepository(db, clock),
			db:       db,
		}, nil

	case config.DriverMySQL:
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, err
		}
		if err := mysqlp.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &stores{
			reports:  mysqlp.NewReportRepository(db, clock),
			disputes: mysqlp.NewDisputeRepository(db, clock),
			db:       db,
		}, nil

	case config.DriverPostgres:
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		if err := postgresp.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &stores{
			reports:  postgresp.NewReportRepository(db, clock),
			disputes: postgresp.NewDisputeRepository(db, clock),
			db:       db,
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
