package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

func selectSceneFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Scene"),
		zenity.FileFilters{{
			Name:     "Scene",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
