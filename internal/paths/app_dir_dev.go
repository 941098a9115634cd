//go:build !prod

package paths

// AppDirName returns the directory name used under the user config dir.
// Dev builds keep their settings apart from an installed copy.
func AppDirName() string {
	return "synapse-dev"
}

func IsDevelopment() bool {
	return true
}
