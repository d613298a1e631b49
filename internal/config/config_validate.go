package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}

	switch c.Catalog.Source {
	case SourceFile:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			errs = append(errs, errors.New("catalog.path is required for the file source"))
		}
	case SourcePostgres:
		if strings.TrimSpace(c.Database.URL) == "" {
			errs = append(errs, errors.New("database.url is required for the postgres source"))
		}
	default:
		errs = append(errs, fmt.Errorf("catalog.source must be %q or %q, got %q", SourceFile, SourcePostgres, c.Catalog.Source))
	}

	if c.Recommend.DefaultCount < 1 {
		errs = append(errs, errors.New("recommend.default_count must be at least 1"))
	}
	if c.Recommend.MaxCount < 1 {
		errs = append(errs, errors.New("recommend.max_count must be at least 1"))
	}
	if c.Recommend.DefaultCount > c.Recommend.MaxCount {
		errs = append(errs, fmt.Errorf("recommend.default_count (%d) exceeds recommend.max_count (%d)", c.Recommend.DefaultCount, c.Recommend.MaxCount))
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}
