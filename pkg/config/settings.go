package config

// Rule defines a file name pattern and the directory its link is suggested in
type Rule struct {
	Pattern string `koanf:"pattern" toml:"pattern"`
	Dir     string `koanf:"dir" toml:"dir"`
}

// Settings is the resolved droplink configuration. It is built once by Load
// and passed by value; nothing mutates it afterwards.
type Settings struct {
	SourceDir    string   `koanf:"source_dir"`
	MappingFile  string   `koanf:"mapping_file"`
	HomeDir      string   `koanf:"home_dir"`
	Editor       string   `koanf:"editor"`
	BackupSuffix string   `koanf:"backup_suffix"`
	Ignore       []string `koanf:"ignore"`
	Rules        []Rule   `koanf:"rules"`
}
