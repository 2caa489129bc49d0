package siteui

import (
	"embed"
	"io/fs"
)

//go:embed assets/templates/*.tpl assets/content/*.yaml assets/config/*.yaml
var embedded embed.FS

// TemplatesFS exposes the fragment templates (testimonial cards) rendered by
// the page behaviours.
func TemplatesFS() fs.FS {
	return sub("assets/templates")
}

// ContentFS exposes the default page content, such as the extra testimonials.
func ContentFS() fs.FS {
	return sub("assets/content")
}

// ConfigFS exposes the default configuration file.
func ConfigFS() fs.FS {
	return sub("assets/config")
}

// DefaultConfig returns the embedded default configuration document.
func DefaultConfig() []byte {
	data, err := fs.ReadFile(embedded, "assets/config/default.yaml")
	if err != nil {
		return nil
	}
	return data
}

func sub(dir string) fs.FS {
	fsys, err := fs.Sub(embedded, dir)
	if err != nil {
		return embedded
	}
	return fsys
}
