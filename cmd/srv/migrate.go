package main

import (
	"github.com/urfave/cli/v2"

	"github.com/cofund-lab/backend/internal/entity"
)

func (s *srv) migrate(ct *cli.Context) error {
	s.loadContext(ct)

	if err := entity.MigrateTable(s.db); err != nil {
		return err
	}

	s.logger.Infof("Migrated database successfully")
	return nil
}
