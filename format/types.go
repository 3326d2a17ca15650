package format

type StorageType uint8

const (
	StorageArray  StorageType = 0x1 // StorageArray represents a growable contiguous buffer.
	StorageLinked StorageType = 0x2 // StorageLinked represents a circular doubly-linked list.
)

func (s StorageType) String() string {
	switch s {
	case StorageArray:
		return "Array"
	case StorageLinked:
		return "Linked"
	default:
		return "Unknown"
	}
}
