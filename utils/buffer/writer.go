package buffer

import (
	"encoding/binary"
	"fmt"
)

// WriteUint64 writes a uint64 c into w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteBytes writes len(c) as a uint64 followed by c into w.
func WriteBytes(w Writer, c []byte) (n int64, err error) {

	if n, err = WriteUint64(w, uint64(len(c))); err != nil {
		return
	}

	inc, err := w.Write(c)

	return n + int64(inc), err
}

// BytesSize returns the number of bytes written by [WriteBytes] for c.
func BytesSize(c []byte) int {
	return 8 + len(c)
}
