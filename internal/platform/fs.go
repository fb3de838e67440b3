package platform

import "github.com/spf13/afero"

// OS returns the host filesystem.
func OS() afero.Fs {
	return afero.NewOsFs()
}
