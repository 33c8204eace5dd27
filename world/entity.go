package world

import "fmt"

// Kind is the table an entity lives in.
type Kind uint32

const (
	KindEnemy Kind = iota + 1
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindEffect:
		return "effect"
	}
	return fmt.Sprintf("kind(%d)", uint32(k))
}

// EntityId encodes both the entity kind (upper 32 bits) and a serial number
// (lower 32 bits). Serials are never reused within a Storage.
type EntityId uint64

// NewEntityId creates an EntityId from a kind and serial
func NewEntityId(kind Kind, serial uint32) EntityId {
	return EntityId(uint64(kind)<<32 | uint64(serial))
}

// Kind extracts the kind from the entity ID
func (e EntityId) Kind() Kind {
	return Kind(e >> 32)
}

// Serial extracts the serial number from the entity ID
func (e EntityId) Serial() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

func (e EntityId) String() string {
	return fmt.Sprintf("%s#%d", e.Kind(), e.Serial())
}
