// SPDX-License-Identifier: Unlicense OR MIT

package text

import "golang.org/x/image/math/fixed"

type layoutCache struct {
	m          map[layoutKey]*layoutElem
	head, tail *layoutElem
}

type layoutElem struct {
	next, prev *layoutElem
	key        layoutKey
	layout     *Layout
}

type layoutKey struct {
	weight   Weight
	ppem     fixed.Int26_6
	maxWidth fixed.Int26_6
	str      string
}

const maxSize = 1000

func (l *layoutCache) Get(k layoutKey) (*Layout, bool) {
	if lt, ok := l.m[k]; ok {
		l.remove(lt)
		l.insert(lt)
		return lt.layout, true
	}
	return nil, false
}

func (l *layoutCache) Put(k layoutKey, lt *Layout) {
	if l.m == nil {
		l.m = make(map[layoutKey]*layoutElem)
		l.head = new(layoutElem)
		l.tail = new(layoutElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	if old, ok := l.m[k]; ok {
		l.remove(old)
	}
	val := &layoutElem{key: k, layout: lt}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

// Len returns the number of cached layouts.
func (l *layoutCache) Len() int {
	return len(l.m)
}

func (l *layoutCache) remove(lt *layoutElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (l *layoutCache) insert(lt *layoutElem) {
	lt.next = l.head
	lt.prev = l.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
