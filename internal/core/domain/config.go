package domain

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = ".runit.yaml"

// ProjectConfig holds the per-project settings read from ConfigFileName.
// The zero value means no configuration.
type ProjectConfig struct {
	// Tool pins the tool for the project. ToolNone leaves the choice to detection.
	Tool Tool
	// Prefer breaks ties when several tools are detected.
	Prefer Preference
	// Shell overrides the interpreter argv. Empty means DefaultShell.
	Shell []string
}
