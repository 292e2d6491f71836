package blockkit

// OptionObject is a selectable entry shown by select and checkbox elements.
type OptionObject struct {
	text        *Text
	value       string
	description *Text
	url         string
}

type optionObjectConfig struct {
	description TextLike
	url         string
}

// OptionObjectOption configures optional option fields.
type OptionObjectOption func(*optionObjectConfig)

// OptionDescription sets the secondary line shown beside the option label
// (plain_text, max 75).
func OptionDescription(description TextLike) OptionObjectOption {
	return func(c *optionObjectConfig) { c.description = description }
}

// OptionURL sets the URL loaded when the option is clicked (overflow menus
// only).
func OptionURL(url string) OptionObjectOption {
	return func(c *optionObjectConfig) { c.url = url }
}

// NewOptionObject builds an option. The label is forced to plain_text and
// capped at 75 characters.
func NewOptionObject(text TextLike, value string, opts ...OptionObjectOption) (*OptionObject, error) {
	var cfg optionObjectConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	label, err := coerceText(text, true, 75)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, usageErrf("options require a label")
	}
	description, err := coerceText(cfg.description, true, 75)
	if err != nil {
		return nil, err
	}
	return &OptionObject{text: label, value: value, description: description, url: cfg.url}, nil
}

func (o *OptionObject) Resolve() (*Fields, error) {
	f := newFields()
	if err := setResolved(f, "text", o.text); err != nil {
		return nil, err
	}
	f.Set("value", o.value)
	if o.description != nil {
		if err := setResolved(f, "description", o.description); err != nil {
			return nil, err
		}
	}
	if o.url != "" {
		f.Set("url", o.url)
	}
	return f, nil
}

// OptionGroup is an ordered, labelled group of options.
type OptionGroup struct {
	label   *Text
	options []*OptionObject
}

// NewOptionGroup builds an option group. The label is forced to plain_text
// and capped at 75 characters.
func NewOptionGroup(label TextLike, options ...*OptionObject) (*OptionGroup, error) {
	groupLabel, err := coerceText(label, true, 75)
	if err != nil {
		return nil, err
	}
	if groupLabel == nil {
		return nil, usageErrf("option groups require a label")
	}
	return &OptionGroup{label: groupLabel, options: options}, nil
}

func (g *OptionGroup) Resolve() (*Fields, error) {
	f := newFields()
	if err := setResolved(f, "label", g.label); err != nil {
		return nil, err
	}
	resolved, err := resolveOptions(g.options)
	if err != nil {
		return nil, err
	}
	f.Set("options", resolved)
	return f, nil
}

func resolveOptions(options []*OptionObject) ([]*Fields, error) {
	resolved := make([]*Fields, 0, len(options))
	for _, o := range options {
		of, err := o.Resolve()
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, of)
	}
	return resolved, nil
}

// StaticSelect is a select menu over a static option list or a single option
// group. Exactly one of the two must be supplied.
type StaticSelect struct {
	actionID      string
	placeholder   *Text
	options       []*OptionObject
	optionGroup   *OptionGroup
	initialOption *OptionObject
	confirm       *Confirm
}

type staticSelectConfig struct {
	options       []*OptionObject
	optionGroup   *OptionGroup
	initialOption *OptionObject
	confirm       *Confirm
}

// StaticSelectOption configures a static select at construction.
type StaticSelectOption func(*staticSelectConfig)

// SelectOptions supplies the select's option list.
func SelectOptions(options ...*OptionObject) StaticSelectOption {
	return func(c *staticSelectConfig) { c.options = options }
}

// SelectOptionGroup supplies the select's option group.
func SelectOptionGroup(group *OptionGroup) StaticSelectOption {
	return func(c *staticSelectConfig) { c.optionGroup = group }
}

// SelectInitialOption pre-selects an option.
func SelectInitialOption(option *OptionObject) StaticSelectOption {
	return func(c *staticSelectConfig) { c.initialOption = option }
}

// SelectConfirm attaches a confirmation dialog.
func SelectConfirm(confirm *Confirm) StaticSelectOption {
	return func(c *staticSelectConfig) { c.confirm = confirm }
}

// NewStaticSelect builds a static select. The placeholder is forced to
// plain_text and capped at 150 characters. Supplying both or neither of
// SelectOptions and SelectOptionGroup is a usage error.
func NewStaticSelect(actionID string, placeholder TextLike, opts ...StaticSelectOption) (*StaticSelect, error) {
	var cfg staticSelectConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if len(cfg.options) == 0 && cfg.optionGroup == nil {
		return nil, usageErrf("static selects require either options or an option group")
	}
	if len(cfg.options) > 0 && cfg.optionGroup != nil {
		return nil, usageErrf("static selects cannot take both options and an option group")
	}
	ph, err := coerceText(placeholder, true, 150)
	if err != nil {
		return nil, err
	}
	if ph == nil {
		return nil, usageErrf("static selects require a placeholder")
	}
	return &StaticSelect{
		actionID:      actionID,
		placeholder:   ph,
		options:       cfg.options,
		optionGroup:   cfg.optionGroup,
		initialOption: cfg.initialOption,
		confirm:       cfg.confirm,
	}, nil
}

func (s *StaticSelect) ElementType() ElementType { return ElementTypeStaticSelect }

func (s *StaticSelect) Resolve() (*Fields, error) {
	f := elementAttributes(ElementTypeStaticSelect)
	if err := setResolved(f, "placeholder", s.placeholder); err != nil {
		return nil, err
	}
	f.Set("action_id", s.actionID)
	if len(s.options) > 0 {
		resolved, err := resolveOptions(s.options)
		if err != nil {
			return nil, err
		}
		f.Set("options", resolved)
	} else if s.optionGroup != nil {
		if err := setResolved(f, "option_group", s.optionGroup); err != nil {
			return nil, err
		}
	}
	if s.initialOption != nil {
		if err := setResolved(f, "initial_option", s.initialOption); err != nil {
			return nil, err
		}
	}
	if s.confirm != nil {
		if err := setResolved(f, "confirm", s.confirm); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// CheckboxSelector renders a group of checkboxes over an option list.
type CheckboxSelector struct {
	actionID       string
	options        []*OptionObject
	initialOptions []*OptionObject
	confirm        *Confirm
}

type checkboxConfig struct {
	initialOptions []*OptionObject
	confirm        *Confirm
}

// CheckboxOption configures a checkbox selector at construction.
type CheckboxOption func(*checkboxConfig)

// CheckboxInitialOptions pre-selects a subset of the options.
func CheckboxInitialOptions(options ...*OptionObject) CheckboxOption {
	return func(c *checkboxConfig) { c.initialOptions = options }
}

// CheckboxConfirm attaches a confirmation dialog.
func CheckboxConfirm(confirm *Confirm) CheckboxOption {
	return func(c *checkboxConfig) { c.confirm = confirm }
}

// NewCheckboxSelector builds a checkbox group.
func NewCheckboxSelector(actionID string, options []*OptionObject, opts ...CheckboxOption) *CheckboxSelector {
	var cfg checkboxConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return &CheckboxSelector{
		actionID:       actionID,
		options:        options,
		initialOptions: cfg.initialOptions,
		confirm:        cfg.confirm,
	}
}

func (c *CheckboxSelector) ElementType() ElementType { return ElementTypeCheckboxes }

func (c *CheckboxSelector) Resolve() (*Fields, error) {
	f := elementAttributes(ElementTypeCheckboxes)
	f.Set("action_id", c.actionID)
	if len(c.options) > 0 {
		resolved, err := resolveOptions(c.options)
		if err != nil {
			return nil, err
		}
		f.Set("options", resolved)
	}
	if len(c.initialOptions) > 0 {
		resolved, err := resolveOptions(c.initialOptions)
		if err != nil {
			return nil, err
		}
		f.Set("initial_options", resolved)
	}
	if c.confirm != nil {
		if err := setResolved(f, "confirm", c.confirm); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// MultiUsersSelect lets the user pick multiple workspace members.
type MultiUsersSelect struct {
	actionID         string
	placeholder      *Text
	initialUsers     []string
	maxSelectedItems int
	confirm          *Confirm
}

type multiUsersConfig struct {
	initialUsers     []string
	maxSelectedItems int
	confirm          *Confirm
}

// MultiUsersSelectOption configures a multi users select at construction.
type MultiUsersSelectOption func(*multiUsersConfig)

// MultiUsersInitialUsers pre-selects user IDs.
func MultiUsersInitialUsers(userIDs ...string) MultiUsersSelectOption {
	return func(c *multiUsersConfig) { c.initialUsers = userIDs }
}

// MultiUsersMaxSelectedItems caps how many users may be selected.
func MultiUsersMaxSelectedItems(n int) MultiUsersSelectOption {
	return func(c *multiUsersConfig) { c.maxSelectedItems = n }
}

// MultiUsersConfirm attaches a confirmation dialog.
func MultiUsersConfirm(confirm *Confirm) MultiUsersSelectOption {
	return func(c *multiUsersConfig) { c.confirm = confirm }
}

// NewMultiUsersSelect builds a multi users select. The placeholder is forced
// to plain_text and capped at 150 characters.
func NewMultiUsersSelect(actionID string, placeholder TextLike, opts ...MultiUsersSelectOption) (*MultiUsersSelect, error) {
	var cfg multiUsersConfig
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
		return nil, usageErrf("multi users selects require a placeholder")
	}
	return &MultiUsersSelect{
		actionID:         actionID,
		placeholder:      ph,
		initialUsers:     cfg.initialUsers,
		maxSelectedItems: cfg.maxSelectedItems,
		confirm:          cfg.confirm,
	}, nil
}

func (m *MultiUsersSelect) ElementType() ElementType { return ElementTypeMultiUsersSelect }

func (m *MultiUsersSelect) Resolve() (*Fields, error) {
	f := elementAttributes(ElementTypeMultiUsersSelect)
	if err := setResolved(f, "placeholder", m.placeholder); err != nil {
		return nil, err
	}
	f.Set("action_id", m.actionID)
	if m.maxSelectedItems > 0 {
		f.Set("max_selected_items", m.maxSelectedItems)
	}
	if len(m.initialUsers) > 0 {
		f.Set("initial_users", m.initialUsers)
	}
	if m.confirm != nil {
		if err := setResolved(f, "confirm", m.confirm); err != nil {
			return nil, err
		}
	}
	return f, nil
}
