package resources

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

// Icon variants.
const (
	IconWork   = "work"
	IconBreak  = "break"
	IconPaused = "paused"
)

var logoCache sync.Map
var cueCache sync.Map

// Logo returns a Fyne resource with the tomato icon for variant.
func Logo(variant string) (fyne.Resource, error) {
	return loadResource("tomato-"+variant+".png", &logoCache, func() ([]byte, error) {
		return renderTomato(variant)
	})
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(variant string) fyne.Resource {
	resource, err := Logo(variant)
	if err != nil {
		panic(err)
	}
	return resource
}

// Cue returns the WAV-encoded sound for a cue name.
func Cue(name string) (fyne.Resource, error) {
	return loadResource(name+".wav", &cueCache, func() ([]byte, error) {
		return renderCue(name)
	})
}

func loadResource(name string, cache *sync.Map, render func() ([]byte, error)) (fyne.Resource, error) {
	if cached, ok := cache.Load(name); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := render()
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", name, err)
	}

	resource := fyne.NewStaticResource(name, data)
	cache.Store(name, resource)
	return resource, nil
}
