package site

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"
)

const (
	tokenPrimary   = "primary"
	tokenOnPrimary = "on-primary"
)

var fallbackTokens = map[string]string{
	tokenPrimary:   "#2563eb",
	tokenOnPrimary: "white",
}

type controlColors struct {
	primary   string
	onPrimary string
}

// newThemeSelector registers the configured manifest and returns a selector
// defaulting to the configured theme and variant.
func newThemeSelector(manifest *theme.Manifest, variant string) (theme.ThemeSelector, error) {
	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("site: register theme %q: %w", manifest.Name, err)
	}
	return theme.Selector{
		Registry:       registry,
		DefaultTheme:   manifest.Name,
		DefaultVariant: variant,
	}, nil
}

func (a *App) themeManifest() *theme.Manifest {
	cfg := a.cfg.Theme
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "siteui"
	}
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = "0.0.0"
	}
	manifest := &theme.Manifest{
		Name:    name,
		Version: version,
		Tokens:  cfg.Tokens,
	}
	if len(cfg.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(cfg.Variants))
		for key, tokens := range cfg.Variants {
			manifest.Variants[key] = theme.Variant{Tokens: tokens}
		}
	}
	return manifest
}

// themeTokens resolves the colours used by generated controls through the
// theme selector. Tokens the selection does not define fall back to the
// built-in palette.
func (a *App) themeTokens() controlColors {
	cfg := a.cfg.Theme
	selection, err := a.themes.Select(cfg.Name, cfg.Variant)
	if err != nil || selection == nil {
		a.logger.Warn("theme selection failed",
			zap.String("theme", cfg.Name),
			zap.String("variant", cfg.Variant),
			zap.Error(err),
		)
		return controlColors{
			primary:   fallbackTokens[tokenPrimary],
			onPrimary: fallbackTokens[tokenOnPrimary],
		}
	}
	tokens := selectionTokens(selection)
	return controlColors{
		primary:   tokenOr(tokens, tokenPrimary),
		onPrimary: tokenOr(tokens, tokenOnPrimary),
	}
}

// selectionTokens layers the selected variant's tokens over the manifest's.
func selectionTokens(selection *theme.Selection) map[string]string {
	if selection.Manifest == nil {
		return nil
	}
	variant, ok := selection.Manifest.Variants[selection.Variant]
	if !ok || len(variant.Tokens) == 0 {
		return selection.Manifest.Tokens
	}
	tokens := make(map[string]string, len(selection.Manifest.Tokens)+len(variant.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	for key, value := range variant.Tokens {
		tokens[key] = value
	}
	return tokens
}

func tokenOr(tokens map[string]string, key string) string {
	if v := strings.TrimSpace(tokens[key]); v != "" {
		return v
	}
	return fallbackTokens[key]
}
