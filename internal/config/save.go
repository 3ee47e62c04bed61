package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Encode renders the configuration as HCL source that Load reads back.
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("iterations", cty.NumberIntVal(int64(c.Iterations)))
	if c.Seed != nil {
		body.SetAttributeValue("seed", cty.NumberUIntVal(*c.Seed))
	}
	body.SetAttributeValue("log_level", cty.StringVal(c.LogLevel))
	body.SetAttributeValue("color", cty.BoolVal(c.ColorEnabled()))
	return hclwrite.Format(f.Bytes())
}

// Save writes the configuration to filename, creating parent directories.
// Readers see either the previous file or the complete new one.
func (c *Config) Save(filename string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return writeFileAtomic(filename, c.Encode(), 0o644)
}

// writeFileAtomic writes to a temporary file in the target directory and
// renames it into place. The temp file must share the target's filesystem.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	committed = true
	return nil
}
