package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxBytesSize is the largest length accepted by [ReadBytes].
const MaxBytesSize = 1 << 30

// ReadUint64 reads a uint64 from r.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadBytes reads a slice written by [WriteBytes] from r.
func ReadBytes(r Reader) (c []byte, n int64, err error) {

	var size uint64
	if n, err = ReadUint64(r, &size); err != nil {
		return
	}

	if size > MaxBytesSize {
		return nil, n, fmt.Errorf("cannot ReadBytes: size %d exceeds %d", size, MaxBytesSize)
	}

	c = make([]byte, size)

	inc, err := io.ReadFull(r, c)

	return c, n + int64(inc), err
}
