// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssz

// Container is the value shape for a ssztypes.Container type: an ordered
// set of (name, value) pairs. It is a dedicated type rather than a bare
// map[string]any because Go maps have no defined iteration order, and the
// container-totality invariant (every declared field present, no others)
// is cheap to check against an ordered slice plus an index without sorting.
type Container struct {
	names  []string
	values []any
	index  map[string]int
}

// NewContainer returns an empty Container ready for Set calls.
func NewContainer() *Container {
	return &Container{index: make(map[string]int)}
}

// Set assigns value to name, appending it if name is new, and returns the
// receiver so calls can be chained.
func (c *Container) Set(name string, value any) *Container {
	if i, ok := c.index[name]; ok {
		c.values[i] = value
		return c
	}
	c.index[name] = len(c.names)
	c.names = append(c.names, name)
	c.values = append(c.values, value)
	return c
}

// Get returns the value stored under name, if any.
func (c *Container) Get(name string) (any, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.values[i], true
}

// Len returns the number of fields set on the container.
func (c *Container) Len() int {
	return len(c.names)
}

// Names returns the field names in insertion order.
func (c *Container) Names() []string {
	return c.names
}
