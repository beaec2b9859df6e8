package config

import (
	"os"

	"github.com/spf13/viper"
)

// DynamicConfig holds settings that vary per deployment of the backend,
// loaded from an optional yaml file. The maintenance endpoints exist in
// two flavors across backend builds, so both are selectable here.
type DynamicConfig struct {
	Endpoints    Endpoints    `yaml:"endpoints" mapstructure:"endpoints"`
	ResearchLabs ResearchLabs `yaml:"research_labs" mapstructure:"research_labs"`
}

type Endpoints struct {
	// MaintenanceBase is "/maintenance-requests" or "/maintenance".
	MaintenanceBase string `yaml:"maintenance_base" mapstructure:"maintenance_base"`
	// MaintenanceTransition is "status" (PUT {id}/status) or "complete" (POST {id}/complete).
	MaintenanceTransition string `yaml:"maintenance_transition" mapstructure:"maintenance_transition"`
}

type ResearchLabs struct {
	// LegacyIDs marks research labs on backends that do not send labCategory.
	LegacyIDs []int64 `yaml:"legacy_ids" mapstructure:"legacy_ids"`
}

var dynamic = &DynamicConfig{
	Endpoints: Endpoints{
		MaintenanceBase:       "/maintenance-requests",
		MaintenanceTransition: "status",
	},
	ResearchLabs: ResearchLabs{
		LegacyIDs: []int64{255, 256},
	},
}

func Dynamic() *DynamicConfig {
	return dynamic
}

// LoadDynamic overlays the yaml file at path onto the built-in defaults.
// A missing file keeps the defaults.
func LoadDynamic(path string) error {
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return v.Unmarshal(dynamic)
}
