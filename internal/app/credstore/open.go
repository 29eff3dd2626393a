package credstore

import (
	"context"
	"fmt"

	"medauth/internal/app/db"
	"medauth/internal/app/storage"
	"medauth/internal/configs"
	"medauth/internal/pkg/logx"
)

// Options selects and configures a credential store backend.
type Options struct {
	Driver      string
	UsersFile   string
	SQLitePath  string
	DatabaseDSN string
	ObjectKey   string
	Storage     storage.ServiceConfig
}

// OptionsFromConfig extracts the store settings from the server config.
func OptionsFromConfig(cfg *configs.AppConfig) Options {
	return Options{
		Driver:      cfg.StoreDriver,
		UsersFile:   cfg.UsersFile,
		SQLitePath:  cfg.SQLitePath,
		DatabaseDSN: cfg.DatabaseDSN,
		ObjectKey:   cfg.S3ObjectKey,
		Storage: storage.ServiceConfig{
			S3BucketName:      cfg.S3BucketName,
			S3Endpoint:        cfg.S3Endpoint,
			S3AccessKeyID:     cfg.S3AccessKeyID,
			S3SecretAccessKey: cfg.S3SecretAccessKey,
			S3Region:          cfg.S3Region,
		},
	}
}

// Open creates the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Backend, error) {
	var (
		backend Backend
		err     error
	)

	switch opts.Driver {
	case configs.DriverFile:
		backend, err = NewFileStore(opts.UsersFile)
	case configs.DriverMemory:
		backend = NewMemoryStore()
	case configs.DriverSQLite:
		sqlDB, openErr := db.OpenSQLite(ctx, opts.SQLitePath)
		if openErr != nil {
			return nil, openErr
		}
		backend = NewSQLiteStore(sqlDB)
	case configs.DriverPostgres:
		pool, openErr := db.NewPool(ctx, opts.DatabaseDSN)
		if openErr != nil {
			return nil, openErr
		}
		backend = NewPostgresStore(pool)
	case configs.DriverS3:
		svc, openErr := storage.NewStorageService(ctx, opts.Storage)
		if openErr != nil {
			return nil, openErr
		}
		backend, err = NewObjectStore(ctx, svc, opts.ObjectKey)
	default:
		return nil, fmt.Errorf("unknown credential store driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	logx.Info("Credential store opened", "driver", opts.Driver)
	return backend, nil
}
