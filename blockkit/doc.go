// Package blockkit contains a typed object model for Slack's Block Kit
// surface description format: text objects, block elements, layout blocks,
// and the home/modal view surfaces that compose them. Callers build a tree
// of strongly-typed nodes and resolve it into the exact nested JSON shape
// the Slack API expects.
//
// The package is intentionally free of transport logic: there is no HTTP
// client, authentication, retry policy or persistence here. Delivery is a
// separate concern; whatever client posts to Slack takes the document
// produced by Render and sends it as-is.
//
// # Resolution
//
// Every node implements Resolver. Resolve produces a *Fields value, an
// insertion-ordered mapping in which optional fields appear only when they
// were supplied. Marshalling a Fields value (directly or via Render) yields
// the sparse wire JSON with keys in the platform-documented order. Resolve
// is pure and idempotent: it never mutates the tree, and repeated calls on
// an unmutated tree produce byte-identical documents.
//
// # Construction
//
// Leaf nodes come first: NewPlainText / NewMarkdownText build text objects,
// NewOptionObject builds select entries. Elements take their required wire
// fields as positional arguments and optional fields as per-variant
// functional options (ButtonStyle, SelectConfirm, ...). Blocks compose
// elements the same way, and NewHomeView / NewModalView compose blocks.
//
// Anywhere the platform accepts a text object, constructors take a TextLike:
// either a raw string or an existing *Text. Strings become text objects of
// the kind the field demands; existing *Text values are re-typed to that
// kind. Fields with platform length limits are checked during this
// coercion, so an over-long value fails construction before any node is
// built.
//
// # Validation
//
// All validation failures are usage errors wrapping ErrInvalidUsage:
// over-length text, a context block holding a disallowed element kind or
// more than ten elements, a static select given both or neither of options
// and an option group. Construction either fully succeeds or fails; there
// is no partially-built node. The single resolve-time rule is the modal
// submit requirement: a modal containing an input block must carry submit
// text, enforced when the view is resolved.
//
// # Block identity
//
// Every block carries a block_id: caller-supplied via the variant's BlockID
// option, or generated once at construction. SetBlockIDGenerator swaps the
// generated-ID source for deterministic tests.
//
// Example:
//
//	section, _ := blockkit.NewSectionBlock("Hello *world*")
//	view, _ := blockkit.NewModalView("Greeting", []blockkit.Block{section})
//	doc, err := blockkit.Render(view)
package blockkit
