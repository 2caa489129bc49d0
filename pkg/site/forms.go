package site

import (
	"strings"

	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/events"
	"github.com/goliatone/go-siteui/pkg/validation"
)

const (
	errorClass      = "error"
	fieldErrorClass = "field-error"
)

var formControl = dom.MustSelector("input, select, textarea")

func (a *App) setupForms() error {
	for _, form := range a.doc.All(dom.ByTag("form")) {
		form := form
		a.dispatcher.On(form, events.Submit, "form-submit", func(ev *events.Event) error {
			if !a.validateForm(form) {
				ev.PreventDefault()
			}
			return nil
		})

		for _, control := range form.All(formControl) {
			control := control
			a.dispatcher.On(control, events.Blur, "field-blur", func(*events.Event) error {
				a.validateControl(control)
				return nil
			})
			a.dispatcher.On(control, events.Input, "field-input", func(*events.Event) error {
				ClearFieldError(control)
				return nil
			})
		}
	}
	return nil
}

// validateForm runs the form gate over every control of form and renders
// the result of each required one.
func (a *App) validateForm(form dom.Element) bool {
	controls := form.All(formControl)
	fields := make([]validation.FieldDescriptor, len(controls))
	for idx, control := range controls {
		fields[idx] = FieldDescriptorOf(control)
	}

	res := a.validator.Form(fields)
	for _, fr := range res.Fields {
		renderResult(controls[fr.Index], fr.Result)
	}
	return res.Valid
}

func (a *App) validateControl(control dom.Element) bool {
	res := a.validator.Field(FieldDescriptorOf(control))
	renderResult(control, res)
	return res.Valid
}

func renderResult(control dom.Element, res validation.ValidationResult) {
	if res.Valid {
		ClearFieldError(control)
		return
	}
	ShowFieldError(control, res.Message)
}

// FieldDescriptorOf reads the validation-relevant state of a form control.
func FieldDescriptorOf(control dom.Element) validation.FieldDescriptor {
	name, _ := control.Attr("name")
	field := validation.FieldDescriptor{
		Name:     name,
		Required: control.HasAttr("required"),
		Value:    controlValue(control),
	}
	switch control.Tag() {
	case "input":
		typ, _ := control.Attr("type")
		field.Kind = validation.KindFromInputType(typ)
	case "textarea":
		field.Kind = validation.KindText
	default:
		field.Kind = validation.KindOther
	}
	return field
}

func controlValue(control dom.Element) string {
	switch control.Tag() {
	case "textarea":
		return control.Text()
	case "select":
		options := control.All(dom.ByTag("option"))
		selected := dom.Element{}
		for _, opt := range options {
			if opt.HasAttr("selected") {
				selected = opt
				break
			}
		}
		if !selected.Valid() && len(options) > 0 {
			selected = options[0]
		}
		if !selected.Valid() {
			return ""
		}
		if v, ok := selected.Attr("value"); ok {
			return v
		}
		return strings.TrimSpace(selected.Text())
	default:
		v, _ := control.Attr("value")
		return v
	}
}

// setFieldValue stores value the way a browser reflects it into markup.
func setFieldValue(control dom.Element, value string) {
	switch control.Tag() {
	case "textarea":
		control.SetText(value)
	case "select":
		for _, opt := range control.All(dom.ByTag("option")) {
			v, ok := opt.Attr("value")
			if !ok {
				v = strings.TrimSpace(opt.Text())
			}
			if v == value {
				opt.SetAttr("selected", "")
			} else {
				opt.RemoveAttr("selected")
			}
		}
	default:
		control.SetAttr("value", value)
	}
}

// ShowFieldError marks field invalid and places message in a div.field-error
// directly after it, replacing any previous message.
func ShowFieldError(field dom.Element, message string) {
	if !field.Valid() {
		return
	}
	ClearFieldError(field)
	field.AddClass(errorClass)

	msg := dom.NewElement("div")
	msg.AddClass(fieldErrorClass)
	msg.SetText(message)
	field.InsertAfter(msg)
}

// ClearFieldError removes the error class from field and the message that
// ShowFieldError placed after it. Messages belonging to sibling fields are
// left alone.
func ClearFieldError(field dom.Element) {
	if !field.Valid() {
		return
	}
	field.RemoveClass(errorClass)
	if next := field.NextElementSibling(); next.Valid() && next.HasClass(fieldErrorClass) {
		next.Remove()
	}
}
