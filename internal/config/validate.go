package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGrouping(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGrouping() error {
	if c.Grouping.Threshold < 0 || c.Grouping.Threshold > 1 {
		return errors.New("grouping.threshold must be between 0 and 1")
	}
	if c.Grouping.SampleSize < -1 || c.Grouping.SampleSize == 0 {
		return fmt.Errorf("grouping.sample_size must be -1 (whole group) or positive, got %d", c.Grouping.SampleSize)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
