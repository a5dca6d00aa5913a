/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"path/filepath"
	"sort"
	"sync"
)

// Observer defines an interface for observing evaluation execution.
type Observer interface {
	// Fail marks the evaluation as failed with the given message.
	// Should be called at most once per evaluated document pair.
	Fail(string)
	// Log logs a message. Can be called multiple times per pair.
	Log(string)
	// Grade assigns a rating (0.0-1.0) with reasoning.
	// Should be called at most once per pair and axis.
	Grade(score float64, reasoning string)
	// Increment is called each time a pair is evaluated.
	Increment()
	// Total returns the number of observed instances.
	Total() int64
}

// NamespacedObserver provides hierarchical namespacing for Observer
// instances. The suite uses one child per evaluation axis so that grades
// and failures stay attributable.
type NamespacedObserver[T Observer] struct {
	name     string
	inner    T
	factory  func(string) T
	children map[string]*NamespacedObserver[T]
	mu       sync.Mutex // protects children
}

// NewNamespacedObserver creates a new root NamespacedObserver with the
// given factory function.
func NewNamespacedObserver[T Observer](factory func(string) T) *NamespacedObserver[T] {
	return &NamespacedObserver[T]{
		name:     "/",
		inner:    factory("/"),
		factory:  factory,
		children: make(map[string]*NamespacedObserver[T]),
	}
}

// Fail delegates to the inner Observer instance.
func (n *NamespacedObserver[T]) Fail(msg string) {
	n.inner.Fail(msg)
}

// Log delegates to the inner Observer instance.
func (n *NamespacedObserver[T]) Log(msg string) {
	n.inner.Log(msg)
}

// Grade delegates to the inner Observer instance.
func (n *NamespacedObserver[T]) Grade(score float64, reasoning string) {
	n.inner.Grade(score, reasoning)
}

// Increment delegates to the inner Observer instance.
func (n *NamespacedObserver[T]) Increment() {
	n.inner.Increment()
}

// Total delegates to the inner Observer instance.
func (n *NamespacedObserver[T]) Total() int64 {
	return n.inner.Total()
}

// Child returns the child namespace with the given name, creating it if
// necessary.
func (n *NamespacedObserver[T]) Child(name string) *NamespacedObserver[T] {
	n.mu.Lock()
	defer n.mu.Unlock()

	if child, exists := n.children[name]; exists {
		return child
	}

	childPath := filepath.Join(n.name, name)
	child := &NamespacedObserver[T]{
		name:     childPath,
		inner:    n.factory(childPath),
		factory:  n.factory,
		children: make(map[string]*NamespacedObserver[T]),
	}

	n.children[name] = child
	return child
}

// Walk traverses the observer tree in depth-first order, calling the
// visitor on the current node first, then on all children in sorted order
// by name.
func (n *NamespacedObserver[T]) Walk(visitor func(string, T)) {
	visitor(n.name, n.inner)

	n.mu.Lock()
	childNames := make([]string, 0, len(n.children))
	for name := range n.children {
		childNames = append(childNames, name)
	}
	n.mu.Unlock()

	sort.Strings(childNames)

	for _, name := range childNames {
		n.mu.Lock()
		child := n.children[name]
		n.mu.Unlock()

		child.Walk(visitor)
	}
}
