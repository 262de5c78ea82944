package registry

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/viant/sqlgen/metadata/database"
)

//DetectProduct matches db driver with registered dialect and reads server version
func DetectProduct(ctx context.Context, db *sql.DB) (*database.Product, error) {
	dialect := MatchDialect(db.Driver())
	if dialect == nil {
		return nil, fmt.Errorf("failed to detect product: unregistered driver %T", db.Driver())
	}
	if dialect.VersionQuery == "" {
		return &dialect.Product, nil
	}
	var version string
	if err := db.QueryRowContext(ctx, dialect.VersionQuery).Scan(&version); err != nil {
		return nil, fmt.Errorf("failed to detect %v version: %w", dialect.Name, err)
	}
	parsed, err := database.ParseVersion([]byte(version))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v version %q: %w", dialect.Name, version, err)
	}
	return dialect.Product.WithVersion(parsed), nil
}
