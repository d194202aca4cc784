// Package bitfield packs and unpacks contiguous register fields.
package bitfield

import "golang.org/x/exp/constraints"

// Field is a contiguous run of Width bits starting at Shift.
type Field[T constraints.Unsigned] struct {
	Shift uint8
	Width uint8
}

// Bit returns the single-bit field at position n.
func Bit[T constraints.Unsigned](n uint8) Field[T] { return Field[T]{Shift: n, Width: 1} }

// Mask returns the in-place mask of f.
func (f Field[T]) Mask() T {
	return (T(1)<<f.Width - 1) << f.Shift
}

// Get extracts f from reg, right-aligned.
func (f Field[T]) Get(reg T) T {
	return (reg & f.Mask()) >> f.Shift
}

// Put returns reg with f replaced by v. Bits of v wider than f are dropped.
func (f Field[T]) Put(reg, v T) T {
	return reg&^f.Mask() | (v<<f.Shift)&f.Mask()
}

// Has reports whether any bit of f is set in reg.
func (f Field[T]) Has(reg T) bool { return reg&f.Mask() != 0 }

// Update is a pending multi-field change applied with a single
// read-modify-write.
type Update[T constraints.Unsigned] struct {
	clear T
	set   T
}

// With adds f=v to u.
func (u Update[T]) With(f Field[T], v T) Update[T] {
	u.clear |= f.Mask()
	u.set = f.Put(u.set, v)
	return u
}

// Flag adds a single-bit field set from b.
func (u Update[T]) Flag(f Field[T], b bool) Update[T] {
	var v T
	if b {
		v = 1
	}
	return u.With(f, v)
}

// Apply returns reg with every field of u replaced.
func (u Update[T]) Apply(reg T) T { return reg&^u.clear | u.set }

// Mask returns the union of all fields touched by u.
func (u Update[T]) Mask() T { return u.clear }
