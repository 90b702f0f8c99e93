package main

import (
	"github.com/steadfastapp/steadfast/config"
	"github.com/steadfastapp/steadfast/models"
	"github.com/steadfastapp/steadfast/routes"
	"github.com/steadfastapp/steadfast/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.CheckIn{},
		&models.JournalEntry{},
		&models.UrgeSurfSession{},
		&models.DesensitizationSession{},
		&models.IntimacyCheckIn{},
		&models.AssessmentScore{},
	)

	// Engine tunables may have changed since the last deploy; stale progress
	// snapshots are dropped here and rebuilt on demand.
	utils.InvalidateByPrefix(utils.ProgressCachePrefix)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
