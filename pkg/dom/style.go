package dom

import "strings"

type declaration struct {
	prop  string
	value string
}

func parseStyle(raw string) []declaration {
	var out []declaration
	for _, part := range strings.Split(raw, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" {
			continue
		}
		out = append(out, declaration{prop: prop, value: value})
	}
	return out
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}

// Style returns an inline style property.
func (el Element) Style(prop string) string {
	raw, _ := el.Attr("style")
	prop = strings.ToLower(strings.TrimSpace(prop))
	for _, d := range parseStyle(raw) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// SetStyle sets an inline style property; an empty value removes it.
func (el Element) SetStyle(prop, value string) {
	if el.n == nil {
		return
	}
	raw, _ := el.Attr("style")
	prop = strings.ToLower(strings.TrimSpace(prop))
	value = strings.TrimSpace(value)

	decls := parseStyle(raw)
	out := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.prop == prop {
			if value == "" {
				continue
			}
			d.value = value
			replaced = true
		}
		out = append(out, d)
	}
	if !replaced && value != "" {
		out = append(out, declaration{prop: prop, value: value})
	}

	if styled := formatStyle(out); styled != "" {
		el.SetAttr("style", styled)
		return
	}
	el.RemoveAttr("style")
}

// SetStyles applies several properties in key order given by props.
func (el Element) SetStyles(props [][2]string) {
	for _, p := range props {
		el.SetStyle(p[0], p[1])
	}
}

// Hidden reports whether the element has an inline display of none.
func (el Element) Hidden() bool {
	return el.Style("display") == "none"
}
