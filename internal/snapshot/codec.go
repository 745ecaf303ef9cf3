package snapshot

import (
	"encoding/gob"
	"io"

	"github.com/pkg/errors"
)

// TraceVersion is written into every recorded header
const TraceVersion = 1

// Codec handles trace encoding/decoding
type Codec struct {
	enc *gob.Encoder
	dec *gob.Decoder
}

// NewCodec creates a codec for the given read/writer
func NewCodec(rw io.ReadWriter) *Codec {
	return &Codec{
		enc: gob.NewEncoder(rw),
		dec: gob.NewDecoder(rw),
	}
}

// NewEncoder creates an encoder-only codec
func NewEncoder(w io.Writer) *Codec {
	return &Codec{
		enc: gob.NewEncoder(w),
	}
}

// NewDecoder creates a decoder-only codec
func NewDecoder(r io.Reader) *Codec {
	return &Codec{
		dec: gob.NewDecoder(r),
	}
}

// Encode writes a message
func (c *Codec) Encode(msg *Message) error {
	return errors.Wrap(c.enc.Encode(msg), "encode trace message")
}

// Decode reads a message. io.EOF is returned unwrapped at the end of a trace.
func (c *Codec) Decode() (*Message, error) {
	var msg Message
	if err := c.dec.Decode(&msg); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, errors.Wrap(err, "decode trace message")
	}
	return &msg, nil
}

// ReadHeader decodes the first message and checks it is a supported header
func (c *Codec) ReadHeader() (Header, error) {
	msg, err := c.Decode()
	if err != nil {
		return Header{}, err
	}
	hdr, ok := msg.Payload.(Header)
	if msg.Type != MsgHeader || !ok {
		return Header{}, errors.Errorf("trace does not start with a header (type %d)", msg.Type)
	}
	if hdr.Version != TraceVersion {
		return Header{}, errors.Errorf("unsupported trace version %d", hdr.Version)
	}
	return hdr, nil
}
