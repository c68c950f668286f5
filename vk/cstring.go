package vk

import "unsafe"

// cstr copies s into NUL-terminated storage the driver may read for the
// duration of one call. The caller keeps the slice alive across that call.
func cstr(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// gostring copies a NUL-terminated C string into a Go string.
func gostring(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// gostringBytes reads a NUL-terminated string out of a fixed-size C char
// array such as VkLayerProperties.layerName.
func gostringBytes(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// cstrArray owns NUL-terminated copies of a name list plus the contiguous
// pointer array the creation calls consume. Both stay valid exactly as long
// as the cstrArray value is kept alive; nothing in here escapes to the
// driver past the call it brackets.
type cstrArray struct {
	storage [][]byte
	ptrs    []*byte
}

func newCStrArray(names []string) *cstrArray {
	a := &cstrArray{
		storage: make([][]byte, len(names)),
		ptrs:    make([]*byte, len(names)),
	}
	for i, name := range names {
		a.storage[i] = cstr(name)
		a.ptrs[i] = &a.storage[i][0]
	}
	return a
}

// ptr returns the **char the driver reads, or nil for an empty list.
func (a *cstrArray) ptr() **byte {
	if len(a.ptrs) == 0 {
		return nil
	}
	return &a.ptrs[0]
}
