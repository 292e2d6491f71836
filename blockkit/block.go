package blockkit

// BlockType identifies the block kinds in the Slack Blocks API by their wire
// names.
type BlockType string

const (
	BlockTypeSection BlockType = "section"
	BlockTypeDivider BlockType = "divider"
	BlockTypeImage   BlockType = "image"
	BlockTypeActions BlockType = "actions"
	BlockTypeContext BlockType = "context"
	BlockTypeFile    BlockType = "file"
	BlockTypeHeader  BlockType = "header"
	BlockTypeInput   BlockType = "input"
)

// Block is the closed set of layout units that compose messages and views.
// Every block carries a block_id: caller-supplied or generated once at
// construction.
type Block interface {
	Resolver
	BlockType() BlockType
	BlockID() string
}

// blockCore holds the identity fields common to every block variant.
type blockCore struct {
	typ BlockType
	id  string
}

func newBlockCore(typ BlockType, id string) blockCore {
	if id == "" {
		id = newBlockID()
	}
	return blockCore{typ: typ, id: id}
}

func (b blockCore) BlockType() BlockType { return b.typ }

func (b blockCore) BlockID() string { return b.id }

// attributes is the {type, block_id} prefix shared by every resolved block.
func (b blockCore) attributes() *Fields {
	f := newFields()
	f.Set("type", string(b.typ))
	f.Set("block_id", b.id)
	return f
}
