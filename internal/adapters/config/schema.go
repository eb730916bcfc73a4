package config

// Runfile represents the structure of the .runit.yaml configuration file.
type Runfile struct {
	Tool   string   `yaml:"tool"`
	Prefer []string `yaml:"prefer"`
	Shell  []string `yaml:"shell"`
}
