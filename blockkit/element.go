package blockkit

// ElementType identifies the element kinds in the Slack Blocks API by their
// wire names.
type ElementType string

const (
	ElementTypeText             ElementType = "text"
	ElementTypeImage            ElementType = "image"
	ElementTypeTimePicker       ElementType = "timepicker"
	ElementTypeDatePicker       ElementType = "datepicker"
	ElementTypeStaticSelect     ElementType = "static_select"
	ElementTypeCheckboxes       ElementType = "checkboxes"
	ElementTypeMultiUsersSelect ElementType = "multi_users_select"
	ElementTypeButton           ElementType = "button"
	ElementTypeConfirm          ElementType = "confirm"
	ElementTypePlainTextInput   ElementType = "plain_text_input"
)

// Element is the closed set of interactive and display primitives that nest
// inside blocks.
type Element interface {
	Resolver
	ElementType() ElementType
}

func elementAttributes(typ ElementType) *Fields {
	f := newFields()
	f.Set("type", string(typ))
	return f
}
