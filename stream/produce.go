package stream

import "github.com/simon-lentz/jsontree/value"

// ValueProducer is a [Producer] that traverses a [value.Value] tree in
// document order using an explicit frame stack; no recursion occurs
// regardless of nesting depth.
//
// The tree must not be mutated while the producer is in use. Container
// contents are snapshotted as each container is entered, so mutation
// after Next has moved past a container is harmless.
type ValueProducer struct {
	root    *value.Value
	started bool
	frames  []produceFrame
}

// produceFrame tracks iteration through one open container.
type produceFrame struct {
	object bool
	pairs  []producePair
	next   int
	// pending holds an object member value whose key event was just
	// emitted.
	pending *value.Value
}

type producePair struct {
	key string
	val *value.Value
}

// NewValueProducer returns a producer over v. A nil v produces a single
// null event.
func NewValueProducer(v *value.Value) *ValueProducer {
	return &ValueProducer{root: v}
}

// Next implements [Producer]. After the final end event it returns an
// event of kind [EventNone] forever.
func (p *ValueProducer) Next() (Event, error) {
	if !p.started {
		p.started = true
		return p.enter(p.root), nil
	}

	for {
		if len(p.frames) == 0 {
			return Event{Kind: EventNone}, nil
		}
		top := &p.frames[len(p.frames)-1]

		if top.pending != nil {
			v := top.pending
			top.pending = nil
			return p.enter(v), nil
		}

		if top.next >= len(top.pairs) {
			object := top.object
			p.frames = p.frames[:len(p.frames)-1]
			if object {
				return Event{Kind: EventEndObject}, nil
			}
			return Event{Kind: EventEndArray}, nil
		}

		pair := top.pairs[top.next]
		top.next++
		if top.object {
			top.pending = pair.val
			return Event{Kind: EventKey, Str: pair.key}, nil
		}
		return p.enter(pair.val), nil
	}
}

// enter emits the event that starts v, pushing a frame when v is a
// container.
func (p *ValueProducer) enter(v *value.Value) Event {
	switch v.Kind() {
	case value.BoolKind:
		b, _ := v.AsBool()
		return Event{Kind: EventBool, Bool: b}
	case value.NumberKind:
		n, _ := v.AsNumber()
		return Event{Kind: EventNumber, Num: n}
	case value.StringKind:
		s, _ := v.AsString()
		return Event{Kind: EventString, Str: s}
	case value.ArrayKind:
		arr, _ := v.AsArray()
		frame := produceFrame{pairs: make([]producePair, 0, arr.Len())}
		for _, e := range arr.All() {
			frame.pairs = append(frame.pairs, producePair{val: e})
		}
		p.frames = append(p.frames, frame)
		return Event{Kind: EventBeginArray}
	case value.ObjectKind:
		obj, _ := v.AsObject()
		frame := produceFrame{object: true, pairs: make([]producePair, 0, obj.Len())}
		for k, e := range obj.All() {
			frame.pairs = append(frame.pairs, producePair{key: k, val: e})
		}
		p.frames = append(p.frames, frame)
		return Event{Kind: EventBeginObject}
	default:
		return Event{Kind: EventNull}
	}
}
