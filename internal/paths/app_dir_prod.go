//go:build prod

package paths

// AppDirName returns the directory name used under the user config dir.
func AppDirName() string {
	return "synapse"
}

func IsDevelopment() bool {
	return false
}
