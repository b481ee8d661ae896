package iostream

import (
	"errors"
	"fmt"
	"io"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// goStream serves native stream callbacks from Go io interfaces. A nil
// reader or writer makes the stream write-only or read-only.
type goStream struct {
	r  io.Reader
	w  io.Writer
	sk io.Seeker
	c  io.Closer
}

func (g *goStream) Size() (int64, error) {
	cur, err := g.sk.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1, err
	}
	end, err := g.sk.Seek(0, io.SeekEnd)
	if err != nil {
		return -1, err
	}
	if _, err := g.sk.Seek(cur, io.SeekStart); err != nil {
		return -1, err
	}
	return end, nil
}

func (g *goStream) Seek(offset int64, whence int) (int64, error) {
	return g.sk.Seek(offset, whence)
}

func (g *goStream) Read(p []byte) (int, backend.IOStatus) {
	if g.r == nil {
		return 0, backend.IOStatusWriteOnly
	}
	n, err := g.r.Read(p)
	switch {
	case errors.Is(err, io.EOF):
		return n, backend.IOStatusEOF
	case errors.Is(err, ErrNotReady):
		return n, backend.IOStatusNotReady
	case err != nil:
		backend.SetError(err.Error())
		return n, backend.IOStatusError
	case n == 0:
		return 0, backend.IOStatusNotReady
	}
	return n, backend.IOStatusReady
}

func (g *goStream) Write(p []byte) (int, backend.IOStatus) {
	if g.w == nil {
		return 0, backend.IOStatusReadOnly
	}
	n, err := g.w.Write(p)
	switch {
	case errors.Is(err, ErrNotReady):
		return n, backend.IOStatusNotReady
	case err != nil:
		backend.SetError(err.Error())
		return n, backend.IOStatusError
	}
	return n, backend.IOStatusReady
}

func (g *goStream) Flush() error {
	switch f := g.w.(type) {
	case interface{ Flush() error }:
		return f.Flush()
	case interface{ Sync() error }:
		return f.Sync()
	}
	return nil
}

func (g *goStream) Close() error {
	if g.c == nil {
		return nil
	}
	return g.c.Close()
}

func openGo(g *goStream, src any) (*Stream, error) {
	if c, ok := src.(io.Closer); ok {
		g.c = c
	}
	s, err := backend.OpenIO(g)
	if err != nil {
		return nil, sdl.RemapError(err)
	}
	return newStream(s, nil), nil
}

// FromReadWriteSeeker exposes rws to native code as a stream. Closing the
// Stream closes rws when it implements io.Closer. Read returning ErrNotReady
// is reported to native code as a non-blocking stall.
func FromReadWriteSeeker(rws io.ReadWriteSeeker) (*Stream, error) {
	if rws == nil {
		return nil, fmt.Errorf("%w: nil ReadWriteSeeker", sdl.ErrInvalidArgument)
	}
	return openGo(&goStream{r: rws, w: rws, sk: rws}, rws)
}

// FromReadSeeker is FromReadWriteSeeker for read-only sources.
func FromReadSeeker(rs io.ReadSeeker) (*Stream, error) {
	if rs == nil {
		return nil, fmt.Errorf("%w: nil ReadSeeker", sdl.ErrInvalidArgument)
	}
	return openGo(&goStream{r: rs, sk: rs}, rs)
}
