package ui

import (
	"fyne.io/fyne/v2"
)

// AppIcon is looked up next to the executable's working directory
const AppIcon = "url-shortener.png"

// LoadAppIcon loads the window icon; a missing file leaves the default icon
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
