package stream

import "github.com/simon-lentz/jsontree/value"

// TreeBuilder is a [Consumer] that materialises the event stream as a
// [value.Value] tree. Duplicate object keys are retained in arrival
// order, matching the parser's ordering guarantees.
//
// After the stream completes, [TreeBuilder.Value] returns the root.
// A TreeBuilder validates its input with a [Checker], so feeding it a
// malformed sequence fails with [*MalformedStreamError].
//
// The zero TreeBuilder is ready to use.
type TreeBuilder struct {
	check      Checker
	root       *value.Value
	open       []*value.Value
	pendingKey string
}

// Value returns the built tree.
//
// It fails with [*MalformedStreamError] when no value has been received
// or the stream stopped mid-container.
func (b *TreeBuilder) Value() (*value.Value, error) {
	if !b.check.Done() {
		return nil, malformed(EventNone, "stream ended before a value completed")
	}
	return b.root, nil
}

// Reset discards all state so the builder can consume another stream.
func (b *TreeBuilder) Reset() {
	*b = TreeBuilder{}
}

// BeginObject implements [Consumer].
func (b *TreeBuilder) BeginObject() error {
	if err := b.check.Check(Event{Kind: EventBeginObject}); err != nil {
		return err
	}
	node := value.NewObject()
	b.attach(node)
	b.open = append(b.open, node)
	return nil
}

// Key implements [Consumer].
func (b *TreeBuilder) Key(key string) error {
	if err := b.check.Check(Event{Kind: EventKey, Str: key}); err != nil {
		return err
	}
	b.pendingKey = key
	return nil
}

// EndObject implements [Consumer].
func (b *TreeBuilder) EndObject() error {
	if err := b.check.Check(Event{Kind: EventEndObject}); err != nil {
		return err
	}
	b.open = b.open[:len(b.open)-1]
	return nil
}

// BeginArray implements [Consumer].
func (b *TreeBuilder) BeginArray() error {
	if err := b.check.Check(Event{Kind: EventBeginArray}); err != nil {
		return err
	}
	node := value.NewArray()
	b.attach(node)
	b.open = append(b.open, node)
	return nil
}

// EndArray implements [Consumer].
func (b *TreeBuilder) EndArray() error {
	if err := b.check.Check(Event{Kind: EventEndArray}); err != nil {
		return err
	}
	b.open = b.open[:len(b.open)-1]
	return nil
}

// Null implements [Consumer].
func (b *TreeBuilder) Null() error {
	return b.scalar(Event{Kind: EventNull}, value.Null())
}

// Bool implements [Consumer].
func (b *TreeBuilder) Bool(v bool) error {
	return b.scalar(Event{Kind: EventBool, Bool: v}, value.Bool(v))
}

// Number implements [Consumer].
func (b *TreeBuilder) Number(n value.Number) error {
	return b.scalar(Event{Kind: EventNumber, Num: n}, value.FromNumber(n))
}

// String implements [Consumer].
func (b *TreeBuilder) String(s string) error {
	return b.scalar(Event{Kind: EventString, Str: s}, value.String(s))
}

func (b *TreeBuilder) scalar(ev Event, node *value.Value) error {
	if err := b.check.Check(ev); err != nil {
		return err
	}
	b.attach(node)
	return nil
}

// attach places a new node at the current position: as the root, as the
// next array element, or under the pending object key. The checker has
// already ruled out invalid positions.
func (b *TreeBuilder) attach(node *value.Value) {
	if len(b.open) == 0 {
		b.root = node
		return
	}
	parent := b.open[len(b.open)-1]
	if arr, err := parent.AsArray(); err == nil {
		arr.PushBack(node)
		return
	}
	obj, _ := parent.AsObject()
	obj.Insert(b.pendingKey, node)
}
