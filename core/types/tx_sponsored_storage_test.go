package types

import (
	"reflect"
	"testing"

	"github.com/stephenfire/go-rtl"
)

func TestStorageSponsoredTxRoundTrip(t *testing.T) {
	orig := newTestSponsoredTx()

	data, err := rtl.Marshal(NewStorageSponsoredTx(orig))
	if err != nil {
		t.Fatalf("storage encoding failed: %v", err)
	}
	stored := new(StorageSponsoredTx)
	if err := rtl.Unmarshal(data, stored); err != nil {
		t.Fatalf("storage decoding failed: %v", err)
	}
	if back := stored.Tx(); !reflect.DeepEqual(back, orig) {
		t.Fatalf("storage round trip changed the record\nhave %+v\nwant %+v", back, orig)
	}
}

func TestStorageSponsoredTxCreateRoundTrip(t *testing.T) {
	orig := newTestSponsoredTx()
	orig.To = nil

	data, err := rtl.Marshal(NewStorageSponsoredTx(orig))
	if err != nil {
		t.Fatalf("storage encoding failed: %v", err)
	}
	stored := new(StorageSponsoredTx)
	if err := rtl.Unmarshal(data, stored); err != nil {
		t.Fatalf("storage decoding failed: %v", err)
	}
	if stored.To != nil {
		t.Fatalf("recipient not nil after storage round trip of a creation transaction")
	}
	if back := stored.Tx(); !reflect.DeepEqual(back, orig) {
		t.Fatalf("storage round trip changed the record")
	}
}

func TestStorageSponsoredTxShares(t *testing.T) {
	orig := newTestSponsoredTx()
	mirror := NewStorageSponsoredTx(orig)
	// Forward conversion borrows the input buffer instead of copying it.
	if len(orig.Data) > 0 && &mirror.Data[0] != &orig.Data[0] {
		t.Fatalf("mirror copied the input buffer")
	}
	// Backward conversion hands the buffer to the record.
	back := mirror.Tx()
	if len(back.Data) > 0 && &back.Data[0] != &mirror.Data[0] {
		t.Fatalf("record copied the input buffer")
	}
}
