package blockkit

// Image inserts an image into section and context blocks. For a standalone
// image, use ImageBlock.
type Image struct {
	imageURL string
	altText  string
}

// NewImage builds an image element.
func NewImage(imageURL, altText string) *Image {
	return &Image{imageURL: imageURL, altText: altText}
}

func (i *Image) ElementType() ElementType { return ElementTypeImage }

func (i *Image) Resolve() (*Fields, error) {
	f := elementAttributes(ElementTypeImage)
	f.Set("image_url", i.imageURL)
	f.Set("alt_text", i.altText)
	return f, nil
}

// Confirm defines a dialog that adds a confirmation step to an interactive
// element: the user is asked to confirm or deny the action.
type Confirm struct {
	title   *Text
	text    *Text
	confirm *Text
	deny    *Text
}

// NewConfirm builds a confirmation dialog. The title and the two button
// labels are forced to plain_text; limits are 100 for the title, 300 for the
// body and 30 for each button label. All four fields are required.
func NewConfirm(title, text, confirm, deny TextLike) (*Confirm, error) {
	titleText, err := coerceText(title, true, 100)
	if err != nil {
		return nil, err
	}
	bodyText, err := coerceText(text, false, 300)
	if err != nil {
		return nil, err
	}
	confirmText, err := coerceText(confirm, true, 30)
	if err != nil {
		return nil, err
	}
	denyText, err := coerceText(deny, true, 30)
	if err != nil {
		return nil, err
	}
	if titleText == nil || bodyText == nil || confirmText == nil || denyText == nil {
		return nil, usageErrf("confirm dialogs require title, text, confirm and deny")
	}
	return &Confirm{title: titleText, text: bodyText, confirm: confirmText, deny: denyText}, nil
}

// Confirm dialogs carry no type field on the wire.
func (c *Confirm) Resolve() (*Fields, error) {
	f := newFields()
	if err := setResolved(f, "title", c.title); err != nil {
		return nil, err
	}
	if err := setResolved(f, "text", c.text); err != nil {
		return nil, err
	}
	if err := setResolved(f, "confirm", c.confirm); err != nil {
		return nil, err
	}
	if err := setResolved(f, "deny", c.deny); err != nil {
		return nil, err
	}
	return f, nil
}

// Button is an interactive element that inserts a button, triggering
// anything from opening a link to starting a workflow.
type Button struct {
	text     *Text
	actionID string
	url      string
	value    string
	style    string
	confirm  *Confirm
}

// ButtonOption configures optional button fields.
type ButtonOption func(*Button)

// ButtonURL sets the URL loaded in the user's browser when the button is
// clicked.
func ButtonURL(url string) ButtonOption { return func(b *Button) { b.url = url } }

// ButtonValue sets the payload value sent with the interaction.
func ButtonValue(value string) ButtonOption { return func(b *Button) { b.value = value } }

// ButtonStyle sets the button's color scheme ("primary" or "danger").
func ButtonStyle(style string) ButtonOption { return func(b *Button) { b.style = style } }

// ButtonConfirm attaches a confirmation dialog.
func ButtonConfirm(confirm *Confirm) ButtonOption { return func(b *Button) { b.confirm = confirm } }

// NewButton builds a button. The label is forced to plain_text and capped at
// 75 characters.
func NewButton(text TextLike, actionID string, opts ...ButtonOption) (*Button, error) {
	label, err := coerceText(text, true, 75)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, usageErrf("buttons require a label")
	}
	b := &Button{text: label, actionID: actionID}
	for _, o := range opts {
		if o != nil {
			o(b)
		}
	}
	return b, nil
}

func (b *Button) ElementType() ElementType { return ElementTypeButton }

func (b *Button) Resolve() (*Fields, error) {
	f := elementAttributes(ElementTypeButton)
	if err := setResolved(f, "text", b.text); err != nil {
		return nil, err
	}
	f.Set("action_id", b.actionID)
	if b.style != "" {
		f.Set("style", b.style)
	}
	if b.url != "" {
		f.Set("url", b.url)
	}
	if b.value != "" {
		f.Set("value", b.value)
	}
	if b.confirm != nil {
		if err := setResolved(f, "confirm", b.confirm); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// DispatchActionConfig determines when a text input dispatches a
// block_actions payload.
type DispatchActionConfig struct {
	onCharacterEntered bool
	onEnterPressed     bool
}

// NewDispatchActionConfig builds a dispatch configuration from its two
// trigger flags.
func NewDispatchActionConfig(onCharacterEntered, onEnterPressed bool) *DispatchActionConfig {
	return &DispatchActionConfig{onCharacterEntered: onCharacterEntered, onEnterPressed: onEnterPressed}
}

func (d *DispatchActionConfig) Resolve() (*Fields, error) {
	triggers := make([]string, 0, 2)
	if d.onCharacterEntered {
		triggers = append(triggers, "on_character_entered")
	}
	if d.onEnterPressed {
		triggers = append(triggers, "on_enter_pressed")
	}
	f := newFields()
	f.Set("trigger_actions_on", triggers)
	return f, nil
}

// TextInput is a plain-text input element, usable inside input blocks.
type TextInput struct {
	actionID     string
	placeholder  *Text
	initialValue string
	multiline    bool
	minLength    int
	maxLength    int
	dispatch     *DispatchActionConfig
}

type textInputConfig struct {
	placeholder  TextLike
	initialValue string
	multiline    bool
	minLength    int
	maxLength    int
	dispatch     *DispatchActionConfig
}

// TextInputOption configures optional text input fields.
type TextInputOption func(*textInputConfig)

// TextInputPlaceholder sets the placeholder text (plain_text, max 150).
func TextInputPlaceholder(placeholder TextLike) TextInputOption {
	return func(c *textInputConfig) { c.placeholder = placeholder }
}

// TextInputInitialValue pre-fills the input.
func TextInputInitialValue(value string) TextInputOption {
	return func(c *textInputConfig) { c.initialValue = value }
}

// TextInputMultiline renders the input as a larger multi-line text area.
func TextInputMultiline() TextInputOption {
	return func(c *textInputConfig) { c.multiline = true }
}

// TextInputMinLength sets the minimum accepted input length.
func TextInputMinLength(n int) TextInputOption {
	return func(c *textInputConfig) { c.minLength = n }
}

// TextInputMaxLength sets the maximum accepted input length.
func TextInputMaxLength(n int) TextInputOption {
	return func(c *textInputConfig) { c.maxLength = n }
}

// TextInputDispatch attaches a dispatch action configuration.
func TextInputDispatch(cfg *DispatchActionConfig) TextInputOption {
	return func(c *textInputConfig) { c.dispatch = cfg }
}

// NewTextInput builds a plain_text_input element.
func NewTextInput(actionID string, opts ...TextInputOption) (*TextInput, error) {
	var cfg textInputConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	placeholder, err := coerceText(cfg.placeholder, true, 150)
	if err != nil {
		return nil, err
	}
	return &TextInput{
		actionID:     actionID,
		placeholder:  placeholder,
		initialValue: cfg.initialValue,
		multiline:    cfg.multiline,
		minLength:    cfg.minLength,
		maxLength:    cfg.maxLength,
		dispatch:     cfg.dispatch,
	}, nil
}

func (t *TextInput) ElementType() ElementType { return ElementTypePlainTextInput }

func (t *TextInput) Resolve() (*Fields, error) {
	f := elementAttributes(ElementTypePlainTextInput)
	f.Set("action_id", t.actionID)
	f.Set("multiline", t.multiline)
	if t.placeholder != nil {
		if err := setResolved(f, "placeholder", t.placeholder); err != nil {
			return nil, err
		}
	}
	if t.initialValue != "" {
		f.Set("initial_value", t.initialValue)
	}
	if t.minLength > 0 {
		f.Set("min_length", t.minLength)
	}
	if t.maxLength > 0 {
		f.Set("max_length", t.maxLength)
	}
	if t.dispatch != nil {
		if err := setResolved(f, "dispatch_action_config", t.dispatch); err != nil {
			return nil, err
		}
	}
	return f, nil
}
