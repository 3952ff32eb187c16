// Package validate implements the concrete Context and the two
// top-level entry points, validate and compare, that drive a
// schema.Type's Validate/Compare methods over raw bytes (spec §4.3,
// §4.4, §6.3).
package validate

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
	"github.com/cronosun/liquesco-go/schema"
)

// context is the sole implementation of schema.Context. It is created
// fresh per top-level Validate/Compare call and never shared across
// calls (spec §3.4, §5: exclusively owned by one call, LIFO key-ref
// stack, empty at return).
type context struct {
	reader    *codec.Reader
	container *schema.TypeContainer
	config    schema.Config
	stack     []schema.KeyRefInfo
}

func newContext(reader *codec.Reader, container *schema.TypeContainer, config schema.Config) *context {
	return &context{reader: reader, container: container, config: config}
}

func (c *context) Reader() *codec.Reader { return c.reader }
func (c *context) Config() schema.Config { return c.config }

func (c *context) Resolve(ref schema.TypeRef) (schema.Type, error) {
	return c.container.Resolve(ref)
}

func (c *context) PushKeyRefFrame(mapLen uint32) {
	c.stack = append(c.stack, schema.KeyRefInfo{MapLen: mapLen})
}

func (c *context) PopKeyRefFrame() error {
	if len(c.stack) == 0 {
		return common.New(common.KindInternal, "pop key-ref frame called on an empty stack")
	}
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

func (c *context) KeyRefFrame(level uint32) (schema.KeyRefInfo, bool) {
	idx := len(c.stack) - 1 - int(level)
	if idx < 0 {
		return schema.KeyRefInfo{}, false
	}
	return c.stack[idx], true
}
