package snapshot

import (
	"context"
	"fmt"
	"os"
)

type FactoryResult struct {
	Driver string
	Store  Store
}

func FromEnv(ctx context.Context) (FactoryResult, error) {
	driver := os.Getenv("SNAPSHOT_DRIVER")
	if driver == "" {
		driver = "local"
	}

	switch driver {
	case "local":
		baseDir := envOr("SNAPSHOT_DIR", "./storage/snapshot")
		return FactoryResult{Driver: "local", Store: NewLocal(baseDir)}, nil

	case "s3":
		region := envOr("S3_REGION", "")
		bucket := envOr("S3_BUCKET", "")
		prefix := envOr("S3_PREFIX", "snapshot")
		if region == "" || bucket == "" {
			return FactoryResult{}, fmt.Errorf("S3 config missing: S3_REGION, S3_BUCKET required")
		}
		s, err := NewS3(ctx, S3Config{Region: region, Bucket: bucket, Prefix: prefix})
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "s3", Store: s}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown SNAPSHOT_DRIVER: %s", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
