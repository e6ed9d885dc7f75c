// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package wallet

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/blake2b"

	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

// Signature scheme flag of ed25519 keys, prefixed to keys and signatures.
const flagEd25519 = 0x00

// Intent prefix for transaction data: scope, version and app ID all zero.
var intentTransaction = []byte{0x00, 0x00, 0x00}

// Keystore holds the ed25519 keys of a Sui CLI keystore. It only reads keys;
// keys are never generated or written.
type Keystore struct {
	keys    map[sui.Address]ed25519.PrivateKey
	order   []sui.Address
	Skipped int
}

// LoadKeystore reads a keystore file, which is a JSON array of base64
// encoded `flag || private key` entries.
func LoadKeystore(path string) (*Keystore, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read keystore: %w", err)
	}

	var entries []string
	err = json.Unmarshal(data, &entries)
	if err != nil {
		return nil, fmt.Errorf("could not decode keystore: %w", err)
	}

	return ParseKeystore(entries)
}

// ParseKeystore decodes keystore entries. Entries for signature schemes
// other than ed25519 are skipped and counted.
func ParseKeystore(entries []string) (*Keystore, error) {

	var keys []ed25519.PrivateKey
	skipped := 0
	for i, entry := range entries {
		raw, err := base64.StdEncoding.DecodeString(entry)
		if err != nil {
			return nil, fmt.Errorf("could not decode keystore entry %d: %w", i, err)
		}
		if len(raw) != 1+ed25519.SeedSize {
			return nil, fmt.Errorf("invalid keystore entry %d length (have: %d, want: %d)", i, len(raw), 1+ed25519.SeedSize)
		}
		if raw[0] != flagEd25519 {
			skipped++
			continue
		}
		keys = append(keys, ed25519.NewKeyFromSeed(raw[1:]))
	}

	k := NewKeystore(keys...)
	k.Skipped = skipped

	return k, nil
}

// NewKeystore creates a keystore holding the given keys.
func NewKeystore(keys ...ed25519.PrivateKey) *Keystore {
	k := Keystore{
		keys:  make(map[sui.Address]ed25519.PrivateKey, len(keys)),
		order: make([]sui.Address, 0, len(keys)),
	}
	for _, key := range keys {
		address := DeriveAddress(key.Public().(ed25519.PublicKey))
		_, ok := k.keys[address]
		if ok {
			continue
		}
		k.keys[address] = key
		k.order = append(k.order, address)
	}
	return &k
}

// DeriveAddress returns the Sui address of an ed25519 public key.
func DeriveAddress(public ed25519.PublicKey) sui.Address {
	payload := append([]byte{flagEd25519}, public...)
	hash := blake2b.Sum256(payload)
	return sui.AddressFromBytes(hash[:])
}

// Addresses returns the addresses of all keys, in keystore order.
func (k *Keystore) Addresses() []sui.Address {
	addresses := make([]sui.Address, len(k.order))
	copy(addresses, k.order)
	return addresses
}

// Sign signs the transaction bytes with the key of the given address, and
// returns the serialized signature as `base64(flag || signature || public key)`.
func (k *Keystore) Sign(address sui.Address, txBytes []byte) (string, error) {

	key, ok := k.keys[address]
	if !ok {
		return "", failure.UnknownAccount{Address: address.String()}
	}

	message := make([]byte, 0, len(intentTransaction)+len(txBytes))
	message = append(message, intentTransaction...)
	message = append(message, txBytes...)
	digest := blake2b.Sum256(message)

	signature := ed25519.Sign(key, digest[:])
	public := key.Public().(ed25519.PublicKey)

	serialized := make([]byte, 0, 1+len(signature)+len(public))
	serialized = append(serialized, flagEd25519)
	serialized = append(serialized, signature...)
	serialized = append(serialized, public...)

	return base64.StdEncoding.EncodeToString(serialized), nil
}
