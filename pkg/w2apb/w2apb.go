// Package w2apb carries the wire types for the word2animal.Word2Animal gRPC
// service, as defined in word2animal.proto.
//
// The messages are maintained by hand on top of protowire rather than
// generated with protoc: the contract is two tiny messages and one unary
// call, and keeping the stubs in plain Go spares the build a protoc
// toolchain. The encoding is standard protobuf wire format, so these stubs
// interoperate with any generated implementation of word2animal.proto.
package w2apb

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// GetAnimalRequest is the argument to Word2Animal.GetAnimal.
type GetAnimalRequest struct {
	Text string
}

// GetAnimalResponse is the result of Word2Animal.GetAnimal.
// Confidence is 0 when the service fell back to its default animal;
// absent and zero are equivalent.
type GetAnimalResponse struct {
	Animal     string
	Confidence float32
}

// Field numbers from word2animal.proto.
const (
	requestTextField        = 1
	responseAnimalField     = 1
	responseConfidenceField = 2
)

func (m *GetAnimalRequest) appendWire(b []byte) []byte {
	if m.Text != "" {
		b = protowire.AppendTag(b, requestTextField, protowire.BytesType)
		b = protowire.AppendString(b, m.Text)
	}
	return b
}

func (m *GetAnimalRequest) parseWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == requestTextField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Text = v
			b = b[n:]
		default:
			// Skip unknown fields so newer peers stay compatible.
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

func (m *GetAnimalResponse) appendWire(b []byte) []byte {
	if m.Animal != "" {
		b = protowire.AppendTag(b, responseAnimalField, protowire.BytesType)
		b = protowire.AppendString(b, m.Animal)
	}
	if m.Confidence != 0 {
		b = protowire.AppendTag(b, responseConfidenceField, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(m.Confidence))
	}
	return b
}

func (m *GetAnimalResponse) parseWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == responseAnimalField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Animal = v
			b = b[n:]
		case num == responseConfidenceField && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Confidence = math.Float32frombits(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}
