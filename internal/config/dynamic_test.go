package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDynamicDefaults(t *testing.T) {
	d := Dynamic()
	if d.Endpoints.MaintenanceBase != "/maintenance-requests" {
		t.Fatalf("maintenance base = %q", d.Endpoints.MaintenanceBase)
	}
	if d.Endpoints.MaintenanceTransition != "status" {
		t.Fatalf("maintenance transition = %q", d.Endpoints.MaintenanceTransition)
	}
	if len(d.ResearchLabs.LegacyIDs) != 2 {
		t.Fatalf("legacy ids = %v", d.ResearchLabs.LegacyIDs)
	}
}

func TestLoadDynamicOverlay(t *testing.T) {
	defaults := *Dynamic()
	t.Cleanup(func() { *dynamic = defaults })

	path := filepath.Join(t.TempDir(), "labdesk.yaml")
	raw := []byte(`endpoints:
  maintenance_base: /maintenance
  maintenance_transition: complete
research_labs:
  legacy_ids: [300]
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := LoadDynamic(path); err != nil {
		t.Fatalf("LoadDynamic: %v", err)
	}

	d := Dynamic()
	if d.Endpoints.MaintenanceBase != "/maintenance" || d.Endpoints.MaintenanceTransition != "complete" {
		t.Fatalf("endpoints not overlaid: %+v", d.Endpoints)
	}
	if len(d.ResearchLabs.LegacyIDs) != 1 || d.ResearchLabs.LegacyIDs[0] != 300 {
		t.Fatalf("legacy ids not overlaid: %v", d.ResearchLabs.LegacyIDs)
	}
}

func TestLoadDynamicMissingFileKeepsDefaults(t *testing.T) {
	if err := LoadDynamic(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if err := LoadDynamic(""); err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
}
