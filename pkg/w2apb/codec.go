package w2apb

import "fmt"

// Codec marshals the w2apb message set for gRPC. The client stub and the
// server constructor force it on their connections, so the default proto
// codec (which requires generated proto.Message types) is never consulted.
type Codec struct{}

// Name identifies the codec. The stubs install it with ForceCodec, which
// leaves the wire content-type as plain application/grpc.
func (Codec) Name() string { return "w2apb" }

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case *GetAnimalRequest:
		return m.appendWire(nil), nil
	case *GetAnimalResponse:
		return m.appendWire(nil), nil
	default:
		return nil, fmt.Errorf("w2apb: cannot marshal %T", v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case *GetAnimalRequest:
		*m = GetAnimalRequest{}
		return m.parseWire(data)
	case *GetAnimalResponse:
		*m = GetAnimalResponse{}
		return m.parseWire(data)
	default:
		return fmt.Errorf("w2apb: cannot unmarshal %T", v)
	}
}
