package blockkit

// ResponseAction identifies how a modal submission is answered.
type ResponseAction string

const (
	ResponseActionErrors ResponseAction = "errors"
	ResponseActionClear  ResponseAction = "clear"
	ResponseActionUpdate ResponseAction = "update"
)

// ModalResponse is the closed set of replies to a modal submission
// callback. Responses are consumed by the HTTP response layer answering the
// callback; they never enter the outbound view pipeline.
type ModalResponse interface {
	Resolver
	ResponseAction() ResponseAction
}

// EmptyModalResponse acknowledges a submission without any action: it
// resolves to an empty document.
type EmptyModalResponse struct{}

// NewEmptyModalResponse builds a no-op acknowledgement.
func NewEmptyModalResponse() *EmptyModalResponse { return &EmptyModalResponse{} }

// ResponseAction is never serialized for the empty response; the value is
// arbitrary.
func (*EmptyModalResponse) ResponseAction() ResponseAction { return ResponseActionErrors }

func (*EmptyModalResponse) Resolve() (*Fields, error) {
	return newFields(), nil
}

// CloseModalResponse closes the view stack.
type CloseModalResponse struct{}

// NewCloseModalResponse builds a close response.
func NewCloseModalResponse() *CloseModalResponse { return &CloseModalResponse{} }

func (*CloseModalResponse) ResponseAction() ResponseAction { return ResponseActionClear }

func (r *CloseModalResponse) Resolve() (*Fields, error) {
	f := newFields()
	f.Set("response_action", string(r.ResponseAction()))
	return f, nil
}

// ErrorModalResponse surfaces validation errors against individual blocks,
// keyed by block_id.
type ErrorModalResponse struct {
	errors map[string]string
}

// NewErrorModalResponse builds an error response from a block_id to message
// mapping. The mapping is copied.
func NewErrorModalResponse(errors map[string]string) *ErrorModalResponse {
	copied := make(map[string]string, len(errors))
	for k, v := range errors {
		copied[k] = v
	}
	return &ErrorModalResponse{errors: copied}
}

func (*ErrorModalResponse) ResponseAction() ResponseAction { return ResponseActionErrors }

func (r *ErrorModalResponse) Resolve() (*Fields, error) {
	f := newFields()
	f.Set("response_action", string(r.ResponseAction()))
	f.Set("errors", r.errors)
	return f, nil
}

// UpdateModalResponse replaces the submitted modal with a new one.
type UpdateModalResponse struct {
	modal *ModalView
}

// NewUpdateModalResponse builds an update response wrapping the replacement
// modal.
func NewUpdateModalResponse(modal *ModalView) *UpdateModalResponse {
	return &UpdateModalResponse{modal: modal}
}

func (*UpdateModalResponse) ResponseAction() ResponseAction { return ResponseActionUpdate }

func (r *UpdateModalResponse) Resolve() (*Fields, error) {
	f := newFields()
	f.Set("response_action", string(r.ResponseAction()))
	if err := setResolved(f, "view", r.modal); err != nil {
		return nil, err
	}
	return f, nil
}
