package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// AccessTuple is the element type of an access list.
type AccessTuple struct {
	Address     common.Address `json:"address"`
	StorageKeys []common.Hash  `json:"storageKeys"`
}

// AccessList is a pre-declared list of state the transaction plans to touch.
// Sponsored transactions do not carry one; the type exists so the shared
// query interface can report its absence for this variant and its contents
// for the sibling variants that do.
type AccessList []AccessTuple

// StorageKeys returns the total number of storage keys in the access list.
func (al AccessList) StorageKeys() int {
	sum := 0
	for _, tuple := range al {
		sum += len(tuple.StorageKeys)
	}
	return sum
}
