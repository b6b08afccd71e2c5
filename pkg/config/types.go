package config

// Config represents the root configuration structure
type Config struct {
	Schema  SchemaConfig `yaml:"schema"`
	Output  OutputConfig `yaml:"output"`
	Report  ReportConfig `yaml:"report"`
	Renames RenameConfig `yaml:"renames"`
}

// SchemaConfig pins the structural names of the configuration model
type SchemaConfig struct {
	// RootClass is the schema root whose single object is identified by its
	// full distName rather than a leaf name.
	RootClass string `yaml:"root_class"`
	// ExcludedLeaves are trailing distName segments that mark structural
	// containers, not configurable objects.
	ExcludedLeaves []string `yaml:"excluded_leaves"`
	// AlarmClass is the class replaced wholesale when an alarm table is
	// supplied.
	AlarmClass string `yaml:"alarm_class"`
}

// OutputConfig controls how the merged plan is serialized
type OutputConfig struct {
	// Version is the plan version stamped on every object when no
	// --plan-version flag is given.
	Version string `yaml:"version"`
	// PlanName overrides the cmData name attribute; defaults to the output
	// file name.
	PlanName string `yaml:"plan_name"`
}

// ReportConfig controls comparison-report rendering
type ReportConfig struct {
	// IgnoreClasses are glob patterns of class names suppressed from the
	// per-object report rows (totals still include them).
	IgnoreClasses []string `yaml:"ignore_classes"`
}

// RenameConfig maps identifiers in the newer schema to their names in the
// older one, so renamed objects and parameters still inherit base values
type RenameConfig struct {
	// Objects maps a leaf name in the newer schema to its leaf name in the
	// older schema.
	Objects map[string]string `yaml:"objects"`
	// Parameters is keyed by the newer schema's leaf name and maps newer
	// parameter names to their older names.
	Parameters map[string]map[string]string `yaml:"parameters"`
}
