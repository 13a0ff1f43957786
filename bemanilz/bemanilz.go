// Package bemanilz decodes the LZ77-style container used to pack Bemani
// game assets. Only the decode direction exists.
package bemanilz

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	windowSize = 0x400
	windowMask = windowSize - 1 // 10 bits

	endOfStream = 0xFF
)

// ErrTruncated is returned when input runs out before the end marker.
var ErrTruncated = errors.Wrap(io.ErrUnexpectedEOF, "bemanilz: stream ended before end marker")

type decoder struct {
	in     io.ByteReader
	out    *bytes.Buffer
	window [windowSize]byte
	cursor int
	// control bits are consumed from bit 0; the high byte is a refill sentinel
	control int
}

func (d *decoder) readByte() (byte, error) {
	b, err := d.in.ReadByte()
	if err == io.EOF {
		return 0, ErrTruncated
	}
	if err != nil {
		return 0, errors.Wrap(err, "bemanilz: read failed")
	}
	return b, nil
}

func (d *decoder) emit(b byte) {
	d.out.WriteByte(b)
	d.window[d.cursor] = b
	d.cursor = (d.cursor + 1) & windowMask
}

func (d *decoder) nextControlBit() (bool, error) {
	d.control >>= 1
	if d.control < 0x100 {
		b, err := d.readByte()
		if err != nil {
			return false, err
		}
		d.control = int(b) | 0xFF00
	}
	return d.control&1 == 1, nil
}

func (d *decoder) run() error {
	for {
		token, err := d.nextControlBit()
		if err != nil {
			return err
		}
		data, err := d.readByte()
		if err != nil {
			return err
		}

		if !token {
			d.emit(data)
			continue
		}

		var distance, length int
		backRef := false

		// long distance
		if data&0x80 == 0 {
			low, err := d.readByte()
			if err != nil {
				return err
			}
			distance = int(low) | int(data&0x3)<<8
			length = int(data>>2) + 2
			backRef = true
		}

		// short distance; below 0x40 this overrides the long form after it
		// has already consumed its distance byte
		if data&0x40 == 0 {
			distance = int(data&0xF) + 1
			length = int((data>>4)&0x3) + 1
			backRef = true
		}

		if backRef {
			for ; length >= 0; length-- {
				d.emit(d.window[(d.cursor-distance)&windowMask])
			}
			continue
		}

		if data == endOfStream {
			return nil
		}

		// raw block
		length = int(data&0xBF) + 7
		for ; length >= 0; length-- {
			b, err := d.readByte()
			if err != nil {
				return err
			}
			d.emit(b)
		}
	}
}

// Decode decompresses source into target. Output is only written once the
// whole stream has decoded; on error target receives nothing.
func Decode(source io.Reader, target io.Writer) error {
	br, ok := source.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(source)
	}

	d := &decoder{in: br, out: new(bytes.Buffer)}
	if err := d.run(); err != nil {
		return err
	}

	log.Debug().Int("bytes", d.out.Len()).Msg("decoded bemanilz stream")
	if _, err := target.Write(d.out.Bytes()); err != nil {
		return errors.Wrap(err, "bemanilz: write failed")
	}
	return nil
}

// DecodeBytes decompresses a whole buffer.
func DecodeBytes(src []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := Decode(bytes.NewReader(src), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
