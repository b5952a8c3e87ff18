package dsl

import (
	"github.com/google/uuid"

	"github.com/aretw0/swml"
	"github.com/aretw0/swml/pkg/domain"
)

// Builder manages the document construction.
type Builder struct {
	doc    *swml.Document
	blocks map[string]*Block
}

// New creates a new document builder. Options are passed to swml.New.
func New(opts ...swml.Option) *Builder {
	return &Builder{
		doc:    swml.New(opts...),
		blocks: make(map[string]*Block),
	}
}

// Section returns the block of the named section, creating the section on
// first use. Calling it again with the same name continues the same section.
func (b *Builder) Section(name string) *Block {
	if blk, ok := b.blocks[name]; ok {
		return blk
	}
	blk := &Block{section: b.doc.AddSection(name)}
	b.blocks[name] = blk
	return blk
}

// Build returns the document. The builder keeps a reference to it, so
// further calls on its blocks still modify the returned document.
func (b *Builder) Build() *swml.Document {
	return b.doc
}

// Branch collects the instructions written by fn into a list suitable for
// a Cond branch, a Switch case or a webhook action. A nil fn yields an
// empty list.
func Branch(fn func(*Block)) []domain.Instruction {
	blk := &Block{section: swml.NewSection("")}
	if fn != nil {
		fn(blk)
	}
	return blk.section.Actions()
}

// NewControlID returns a random identifier for record_call and tap, so the
// matching stop instruction can refer to it.
func NewControlID() string {
	return uuid.NewString()
}
