package types

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"
	"testing"
)

func TestSponsoredTxJSONRoundTrip(t *testing.T) {
	tx := NewTx(newTestSponsoredTx())
	enc, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("json marshaling failed: %v", err)
	}
	for _, field := range []string{
		`"chainId"`, `"nonce"`, `"maxPriorityFeePerGas"`, `"maxFeePerGas"`,
		`"gas"`, `"to"`, `"value"`, `"input"`, `"expiredTime"`,
		`"payerV"`, `"payerR"`, `"payerS"`, `"v"`, `"r"`, `"s"`,
	} {
		if !strings.Contains(string(enc), field) {
			t.Errorf("field %s missing from JSON form", field)
		}
	}

	decoded := new(Transaction)
	if err := decoded.UnmarshalJSON(enc); err != nil {
		t.Fatalf("json unmarshaling failed: %v", err)
	}
	a, _ := tx.MarshalBinary()
	b, err := decoded.MarshalBinary()
	if err != nil {
		t.Fatalf("re-encoding failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("consensus encoding changed across the JSON round trip")
	}
}

func TestSponsoredTxJSONCreate(t *testing.T) {
	inner := newTestSponsoredTx()
	inner.To = nil
	tx := NewTx(inner)

	enc, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("json marshaling failed: %v", err)
	}
	// A creation transaction omits the recipient entirely.
	if strings.Contains(string(enc), `"to"`) {
		t.Fatalf("creation transaction must omit 'to': %s", enc)
	}
	decoded := new(Transaction)
	if err := decoded.UnmarshalJSON(enc); err != nil {
		t.Fatalf("json unmarshaling failed: %v", err)
	}
	if decoded.To() != nil {
		t.Fatalf("recipient not nil after decoding a creation transaction")
	}
}

func TestSponsoredTxJSONOversizedScalars(t *testing.T) {
	tx := NewTx(newTestSponsoredTx())
	enc, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("json marshaling failed: %v", err)
	}
	for field, width := range map[string]uint{
		"chainId":      64,
		"maxFeePerGas": 128,
	} {
		var m map[string]json.RawMessage
		if err := json.Unmarshal(enc, &m); err != nil {
			t.Fatal(err)
		}
		over := new(big.Int).Lsh(big.NewInt(1), width)
		m[field] = json.RawMessage(`"0x` + over.Text(16) + `"`)
		widened, err := json.Marshal(m)
		if err != nil {
			t.Fatal(err)
		}
		if err := new(Transaction).UnmarshalJSON(widened); err == nil {
			t.Errorf("decoding accepted %s wider than %d bits", field, width)
		}
	}
}

func TestSponsoredTxJSONMissingFields(t *testing.T) {
	tx := NewTx(newTestSponsoredTx())
	enc, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("json marshaling failed: %v", err)
	}
	for _, field := range []string{"chainId", "nonce", "value", "input", "expiredTime", "payerV"} {
		var m map[string]json.RawMessage
		if err := json.Unmarshal(enc, &m); err != nil {
			t.Fatal(err)
		}
		delete(m, field)
		stripped, err := json.Marshal(m)
		if err != nil {
			t.Fatal(err)
		}
		if err := new(Transaction).UnmarshalJSON(stripped); err == nil {
			t.Errorf("decoding succeeded without required field %q", field)
		}
	}
}
