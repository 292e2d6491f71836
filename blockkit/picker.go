package blockkit

import "time"

// Wire formats for picker initial values. Slack takes fixed-format strings,
// not native temporal types.
const (
	timeWireFormat = "15:04"
	dateWireFormat = "2006-01-02"
)

// TimePicker lets the user choose a time of day. The initial value is
// serialized as HH:MM.
type TimePicker struct {
	actionID    string
	placeholder *Text
	initial     time.Time
	confirm     *Confirm
}

type timePickerConfig struct {
	initial time.Time
	confirm *Confirm
}

// TimePickerOption configures a time picker at construction.
type TimePickerOption func(*timePickerConfig)

// TimePickerInitialTime pre-selects a time of day.
func TimePickerInitialTime(t time.Time) TimePickerOption {
	return func(c *timePickerConfig) { c.initial = t }
}

// TimePickerConfirm attaches a confirmation dialog.
func TimePickerConfirm(confirm *Confirm) TimePickerOption {
	return func(c *timePickerConfig) { c.confirm = confirm }
}

// NewTimePicker builds a time picker. The placeholder is forced to
// plain_text and capped at 150 characters.
func NewTimePicker(actionID string, placeholder TextLike, opts ...TimePickerOption) (*TimePicker, error) {
	var cfg timePickerConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	ph, err := coerceText(placeholder, true, 150)
	if err != nil {
		return nil, err
	}
	if ph == nil {
		return nil, usageErrf("time pickers require a placeholder")
	}
	return &TimePicker{actionID: actionID, placeholder: ph, initial: cfg.initial, confirm: cfg.confirm}, nil
}

func (t *TimePicker) ElementType() ElementType { return ElementTypeTimePicker }

func (t *TimePicker) Resolve() (*Fields, error) {
	f := elementAttributes(ElementTypeTimePicker)
	if err := setResolved(f, "placeholder", t.placeholder); err != nil {
		return nil, err
	}
	f.Set("action_id", t.actionID)
	if !t.initial.IsZero() {
		f.Set("initial_time", t.initial.Format(timeWireFormat))
	}
	if t.confirm != nil {
		if err := setResolved(f, "confirm", t.confirm); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// DatePicker lets the user choose a calendar date. The initial value is
// serialized as YYYY-MM-DD.
type DatePicker struct {
	actionID    string
	placeholder *Text
	initial     time.Time
	confirm     *Confirm
}

type datePickerConfig struct {
	initial time.Time
	confirm *Confirm
}

// DatePickerOption configures a date picker at construction.
type DatePickerOption func(*datePickerConfig)

// DatePickerInitialDate pre-selects a date.
func DatePickerInitialDate(t time.Time) DatePickerOption {
	return func(c *datePickerConfig) { c.initial = t }
}

// DatePickerConfirm attaches a confirmation dialog.
func DatePickerConfirm(confirm *Confirm) DatePickerOption {
	return func(c *datePickerConfig) { c.confirm = confirm }
}

// NewDatePicker builds a date picker. The placeholder is forced to
// plain_text and capped at 150 characters.
func NewDatePicker(actionID string, placeholder TextLike, opts ...DatePickerOption) (*DatePicker, error) {
	var cfg datePickerConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	ph, err := coerceText(placeholder, true, 150)
	if err != nil {
		return nil, err
	}
	if ph == nil {
		return nil, usageErrf("date pickers require a placeholder")
	}
	return &DatePicker{actionID: actionID, placeholder: ph, initial: cfg.initial, confirm: cfg.confirm}, nil
}

func (d *DatePicker) ElementType() ElementType { return ElementTypeDatePicker }

func (d *DatePicker) Resolve() (*Fields, error) {
	f := elementAttributes(ElementTypeDatePicker)
	f.Set("action_id", d.actionID)
	if err := setResolved(f, "placeholder", d.placeholder); err != nil {
		return nil, err
	}
	if !d.initial.IsZero() {
		f.Set("initial_date", d.initial.Format(dateWireFormat))
	}
	if d.confirm != nil {
		if err := setResolved(f, "confirm", d.confirm); err != nil {
			return nil, err
		}
	}
	return f, nil
}
