package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the top-level dispatch manifest: server identity plus the
// route table.
type Config struct {
	Server ServerConfig `toml:"server"`
	Routes []Route      `toml:"route"`
}

type ServerConfig struct {
	Name   string `toml:"name"`   // Server response header value
	Listen string `toml:"listen"` // default listen address
}

func (c *Config) Validate() error {
	if len(c.Routes) == 0 {
		return errors.New("at least one route required")
	}
	if strings.TrimSpace(c.Server.Name) == "" {
		c.Server.Name = "hyperf"
	}
	seen := map[string]struct{}{}
	for i := range c.Routes {
		if err := c.Routes[i].normalize(); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
		if err := c.Routes[i].validate(); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
		key := c.Routes[i].Method + " " + c.Routes[i].Path
		if _, dup := seen[key]; dup {
			return fmt.Errorf("route %d: duplicate %s", i, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
