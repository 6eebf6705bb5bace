package db

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

func GetInstance(dialector gorm.Dialector) *DB {
	var logger = common.GetLoggerWith(common.LoggerNameArchive)
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to open run archive:", err)
		}

		logger.Info("Connected to run archive with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		err = instance.Conn.AutoMigrate(&models.Run{}, &models.Reading{}, &models.Alert{})
		if err != nil {
			log.Fatal("Failed to migrate run archive:", err)
		}

		logger.Info("Run archive migration completed")

		if err := instance.Conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			log.Fatal("Failed to enable sqlite foreign key support", err)
		}
	})
	return instance
}

// UseMemorySqliteDialector keeps the archive inside the process; nothing outlives a run of the binary.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}
