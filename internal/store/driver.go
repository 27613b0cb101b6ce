package store

import (
	"fmt"

	"github.com/go-authgate/loginapi/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqlDialectors maps the relational CREDENTIAL_STORE values to gorm dialectors
var sqlDialectors = map[string]func(dsn string) gorm.Dialector{
	config.CredentialStoreSQLite:   sqlite.Open,
	config.CredentialStorePostgres: postgres.Open,
}

// GetDialector returns the gorm dialector for a relational credential store
func GetDialector(storeKind, dsn string) (gorm.Dialector, error) {
	open, ok := sqlDialectors[storeKind]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a relational store", ErrUnsupportedDriver, storeKind)
	}
	return open(dsn), nil
}
