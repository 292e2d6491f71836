package blockkit

import "encoding/json"

// ViewType identifies the two Slack surface kinds.
type ViewType string

const (
	ViewTypeHome  ViewType = "home"
	ViewTypeModal ViewType = "modal"
)

// View is a top-level surface composed of an ordered sequence of blocks.
type View interface {
	Resolver
	ViewType() ViewType
}

// viewCore holds the attributes shared by both surface kinds. The
// private_metadata mapping is opaque caller data: it is serialized as a
// string-encoded JSON blob, not nested JSON, per the platform wire contract.
type viewCore struct {
	typ             ViewType
	blocks          []Block
	externalID      string
	callbackID      string
	privateMetadata map[string]any
}

func (v *viewCore) ViewType() ViewType { return v.typ }

// Blocks reports the view's blocks in rendering order.
func (v *viewCore) Blocks() []Block { return v.blocks }

func (v *viewCore) attributes() (*Fields, error) {
	f := newFields()
	f.Set("type", string(v.typ))
	resolved := make([]*Fields, 0, len(v.blocks))
	for _, b := range v.blocks {
		bf, err := b.Resolve()
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, bf)
	}
	f.Set("blocks", resolved)
	if v.externalID != "" {
		f.Set("external_id", v.externalID)
	}
	if v.callbackID != "" {
		f.Set("callback_id", v.callbackID)
	}
	if len(v.privateMetadata) > 0 {
		encoded, err := json.Marshal(v.privateMetadata)
		if err != nil {
			return nil, err
		}
		f.Set("private_metadata", string(encoded))
	}
	return f, nil
}

// HomeView is the app home tab surface.
type HomeView struct {
	viewCore
}

type homeViewConfig struct {
	externalID      string
	callbackID      string
	privateMetadata map[string]any
}

// HomeViewOption configures a home view at construction.
type HomeViewOption func(*homeViewConfig)

// HomeViewExternalID sets the view's external identifier.
func HomeViewExternalID(id string) HomeViewOption {
	return func(c *homeViewConfig) { c.externalID = id }
}

// HomeViewCallbackID sets the identifier echoed back in interaction
// payloads.
func HomeViewCallbackID(id string) HomeViewOption {
	return func(c *homeViewConfig) { c.callbackID = id }
}

// HomeViewPrivateMetadata attaches opaque caller data to the view.
func HomeViewPrivateMetadata(metadata map[string]any) HomeViewOption {
	return func(c *homeViewConfig) { c.privateMetadata = metadata }
}

// NewHomeView builds a home surface over the given blocks.
func NewHomeView(blocks []Block, opts ...HomeViewOption) *HomeView {
	var cfg homeViewConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return &HomeView{viewCore: viewCore{
		typ:             ViewTypeHome,
		blocks:          blocks,
		externalID:      cfg.externalID,
		callbackID:      cfg.callbackID,
		privateMetadata: cfg.privateMetadata,
	}}
}

func (v *HomeView) Resolve() (*Fields, error) {
	return v.attributes()
}

// ModalView is the modal dialog surface.
type ModalView struct {
	viewCore
	title         *Text
	close         *Text
	submit        *Text
	clearOnClose  bool
	notifyOnClose bool
}

type modalViewConfig struct {
	close           TextLike
	submit          TextLike
	clearOnClose    bool
	notifyOnClose   bool
	externalID      string
	callbackID      string
	privateMetadata map[string]any
}

// ModalViewOption configures a modal view at construction.
type ModalViewOption func(*modalViewConfig)

// ModalClose sets the close button label (plain_text, max 24).
func ModalClose(close TextLike) ModalViewOption {
	return func(c *modalViewConfig) { c.close = close }
}

// ModalSubmit sets the submit button label (plain_text, max 24). Required
// whenever the modal contains an input block.
func ModalSubmit(submit TextLike) ModalViewOption {
	return func(c *modalViewConfig) { c.submit = submit }
}

// ModalClearOnClose clears the whole view stack when this modal is closed.
func ModalClearOnClose() ModalViewOption {
	return func(c *modalViewConfig) { c.clearOnClose = true }
}

// ModalNotifyOnClose sends a view_closed event when this modal is closed.
func ModalNotifyOnClose() ModalViewOption {
	return func(c *modalViewConfig) { c.notifyOnClose = true }
}

// ModalExternalID sets the view's external identifier.
func ModalExternalID(id string) ModalViewOption {
	return func(c *modalViewConfig) { c.externalID = id }
}

// ModalCallbackID sets the identifier echoed back in interaction payloads.
func ModalCallbackID(id string) ModalViewOption {
	return func(c *modalViewConfig) { c.callbackID = id }
}

// ModalPrivateMetadata attaches opaque caller data to the view.
func ModalPrivateMetadata(metadata map[string]any) ModalViewOption {
	return func(c *modalViewConfig) { c.privateMetadata = metadata }
}

// NewModalView builds a modal surface. The title is forced to plain_text,
// capped at 24 characters, and required.
func NewModalView(title TextLike, blocks []Block, opts ...ModalViewOption) (*ModalView, error) {
	var cfg modalViewConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	titleText, err := coerceText(title, true, 24)
	if err != nil {
		return nil, err
	}
	if titleText == nil {
		return nil, usageErrf("modals require a title")
	}
	closeText, err := coerceText(cfg.close, true, 24)
	if err != nil {
		return nil, err
	}
	submitText, err := coerceText(cfg.submit, true, 24)
	if err != nil {
		return nil, err
	}
	return &ModalView{
		viewCore: viewCore{
			typ:             ViewTypeModal,
			blocks:          blocks,
			externalID:      cfg.externalID,
			callbackID:      cfg.callbackID,
			privateMetadata: cfg.privateMetadata,
		},
		title:         titleText,
		close:         closeText,
		submit:        submitText,
		clearOnClose:  cfg.clearOnClose,
		notifyOnClose: cfg.notifyOnClose,
	}, nil
}

// Resolve fails when the modal holds at least one input block but carries no
// submit label; the platform rejects such views.
func (v *ModalView) Resolve() (*Fields, error) {
	f, err := v.attributes()
	if err != nil {
		return nil, err
	}
	if err := setResolved(f, "title", v.title); err != nil {
		return nil, err
	}
	if v.submit != nil {
		if err := setResolved(f, "submit", v.submit); err != nil {
			return nil, err
		}
	} else if v.hasInputBlock() {
		return nil, usageErrf("modals holding an input block require submit text")
	}
	if v.close != nil {
		if err := setResolved(f, "close", v.close); err != nil {
			return nil, err
		}
	}
	if v.clearOnClose {
		f.Set("clear_on_close", v.clearOnClose)
	}
	if v.notifyOnClose {
		f.Set("notify_on_close", v.notifyOnClose)
	}
	return f, nil
}

func (v *ModalView) hasInputBlock() bool {
	for _, b := range v.blocks {
		if b.BlockType() == BlockTypeInput {
			return true
		}
	}
	return false
}
