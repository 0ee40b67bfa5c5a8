package roots

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/polyroots/utils/bignum"
	"github.com/tuneinsight/polyroots/utils/buffer"
)

// maxSnapshotRoots bounds the number of roots accepted by [Snapshot.ReadFrom].
const maxSnapshotRoots = 1 << 24

// BinarySize returns the serialized size of the object in bytes.
func (s Snapshot) BinarySize() (size int) {
	size = 8 + buffer.BytesSize(s.Digest) + 8
	for i := range s.Roots {
		size += buffer.BytesSize([]byte(s.Roots[i].String()))
	}
	return
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
// Every root is written as its exact decimal literal (see [bignum.Complex.String]).
//
// Unless w implements the buffer.Writer interface (see utils/buffer),
// it will be wrapped into a bufio.Writer.
func (s Snapshot) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteUint64(w, uint64(s.Iteration)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteBytes(w, s.Digest); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteBytes: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteUint64(w, uint64(len(s.Roots))); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		for i := range s.Roots {
			if inc, err = buffer.WriteBytes(w, []byte(s.Roots[i].String())); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteBytes: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return s.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer),
// it will be wrapped into a bufio.Reader.
func (s *Snapshot) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var iteration, size uint64

		if inc, err = buffer.ReadUint64(r, &iteration); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if s.Digest, inc, err = buffer.ReadBytes(r); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadBytes: %w", err)
		}

		n += inc

		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if size > maxSnapshotRoots {
			return n, fmt.Errorf("cannot ReadFrom: %d roots exceeds %d", size, maxSnapshotRoots)
		}

		s.Iteration = int(iteration)
		s.Roots = make(RootSet, size)

		for i := range s.Roots {

			var literal []byte
			if literal, inc, err = buffer.ReadBytes(r); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadBytes: %w", err)
			}

			n += inc

			if s.Roots[i], err = bignum.ParseComplex(string(literal)); err != nil {
				return n, fmt.Errorf("cannot ReadFrom: root %d: %w", i, err)
			}
		}

		return n, nil

	default:
		return s.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (s Snapshot) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(s.BinarySize())
	_, err = s.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (s *Snapshot) UnmarshalBinary(p []byte) (err error) {
	_, err = s.ReadFrom(buffer.NewBuffer(p))
	return
}
