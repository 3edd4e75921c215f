package base

import (
	"os"

	"github.com/StrayDragon/guibot/entity"
	"github.com/StrayDragon/guibot/internal"
)

// ReadConfig loads the YAML config, falling back to built-in defaults when
// the file doesn't exist; the environment variables still apply either way.
func ReadConfig(filename string) (entity.Config, error) {
	filename = internal.ExpandUser(filename)

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		internal.Log.Warningf("Config file %s not found, continuing with defaults", filename)
		return entity.Config{}, nil
	}

	return entity.UnmarshalConfig(filename)
}
