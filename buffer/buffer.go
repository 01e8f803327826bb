// Package buffer provides non-owning, fixed-size handles onto a
// shared backing slice: the Go analogue of the reference
// implementation's BufferRef<T>/BufferMut<T> (pointer, length) pairs.
//
// The reference types exist to let the same logical buffer — the seed
// vector, the interleaved per-vertex variables — be referenced
// uniformly from host and (unsafely, via raw pointers) device code. Go
// slices already carry a pointer and length with bounds checking, so
// Ref[T] and Mut[T] here are thin wrappers that exist only to make the
// read-only/read-write distinction and the "this does not own its
// backing store" contract explicit in the type system, not to
// reimplement slice mechanics.
//
// Ported from original_source/generator/core/src/memory.rs and
// fixed-size-buffer/src/lib.rs, dropping the unsafe/raw-pointer
// mechanism those exist only to cross the Rust host/device boundary.
package buffer

// Ref is a non-owning, read-only view over a backing slice.
type Ref[T any] struct {
	data []T
}

// NewRef wraps s as a read-only Ref. The caller retains ownership of
// the backing array; Ref must not outlive it.
func NewRef[T any](s []T) Ref[T] {
	return Ref[T]{data: s}
}

// Len returns the number of elements visible through this handle.
func (r Ref[T]) Len() int { return len(r.data) }

// At returns the element at index i.
func (r Ref[T]) At(i int) T { return r.data[i] }

// Slice returns the read-only sub-view [start:end).
func (r Ref[T]) Slice(start, end int) Ref[T] {
	return Ref[T]{data: r.data[start:end]}
}

// Raw exposes the underlying slice directly, for callers (encoders,
// hash loops) that need to range over it without per-element handle
// overhead.
func (r Ref[T]) Raw() []T { return r.data }

// Mut is a non-owning, read-write view over a backing slice.
type Mut[T any] struct {
	data []T
}

// NewMut wraps s as a read-write Mut. The caller retains ownership of
// the backing array; Mut must not outlive it.
func NewMut[T any](s []T) Mut[T] {
	return Mut[T]{data: s}
}

// Len returns the number of elements visible through this handle.
func (m Mut[T]) Len() int { return len(m.data) }

// At returns the element at index i.
func (m Mut[T]) At(i int) T { return m.data[i] }

// Set writes v at index i.
func (m Mut[T]) Set(i int, v T) { m.data[i] = v }

// Slice returns the read-write sub-view [start:end).
func (m Mut[T]) Slice(start, end int) Mut[T] {
	return Mut[T]{data: m.data[start:end]}
}

// Ref downgrades this handle to a read-only Ref over the same backing
// slice — used to hand a mutable buffer to a consumer that must not
// write to it (a worker reading the shared seed vector, say).
func (m Mut[T]) Ref() Ref[T] {
	return Ref[T]{data: m.data}
}

// Raw exposes the underlying slice directly.
func (m Mut[T]) Raw() []T { return m.data }
