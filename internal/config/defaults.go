package config

const (
	defaultVaultDir         = "~/dance-library"
	defaultLogDir           = "~/.local/share/stepvault/logs"
	defaultLibraryFolder    = "Library"
	defaultFolderTemplate   = "{dance}/{style}/{class}"
	defaultFilenameTemplate = "{stepName}"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			VaultDir: defaultVaultDir,
			LogDir:   defaultLogDir,
		},
		Scanner: Scanner{
			MediaExtensions: []string{"mp4", "webm", "mov", "m4v", "ogg"},
			ImageExtensions: []string{"png", "jpg", "jpeg", "webp", "gif"},
		},
		Organizer: Organizer{
			LibraryFolder:    defaultLibraryFolder,
			FolderTemplate:   defaultFolderTemplate,
			FilenameTemplate: defaultFilenameTemplate,
			ImportExtensions: []string{"avi"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
