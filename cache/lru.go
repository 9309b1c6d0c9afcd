package cache

import "github.com/gogpu/vpath"

// lruNode is a cache entry linked into its shard's LRU list.
type lruNode[K comparable] struct {
	key  K
	path *vpath.Path
	prev *lruNode[K]
	next *lruNode[K]
}

// lruList is a doubly-linked list for LRU eviction.
// The list is not thread-safe; callers must handle synchronization.
//
// The head is the most recently used, tail is least recently used.
type lruList[K comparable] struct {
	head *lruNode[K]
	tail *lruNode[K]
	len  int
}

// pushFront inserts node as the most recently used entry.
func (l *lruList[K]) pushFront(node *lruNode[K]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// moveToFront marks node as the most recently used entry.
func (l *lruList[K]) moveToFront(node *lruNode[K]) {
	if node == l.head {
		return
	}
	l.unlink(node)
	l.pushFront(node)
}

// removeOldest unlinks and returns the least recently used node, or nil
// if the list is empty.
func (l *lruList[K]) removeOldest() *lruNode[K] {
	node := l.tail
	if node != nil {
		l.unlink(node)
	}
	return node
}

// unlink removes a node from the list and clears its links.
func (l *lruList[K]) unlink(node *lruNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	l.len--
}
