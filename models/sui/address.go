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

package sui

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the length of a Sui address or object ID in bytes.
const AddressLength = 32

// Address is a Sui account address in its canonical form: a `0x` prefix
// followed by 64 lowercase hexadecimal digits.
type Address string

// ObjectID identifies an on-chain object. It shares the address encoding.
type ObjectID = Address

// ParseAddress normalizes the given hexadecimal string into a canonical
// address. Short forms such as `0x2` are left-padded with zeroes.
func ParseAddress(s string) (Address, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" {
		return "", fmt.Errorf("empty address (%q)", s)
	}
	if len(trimmed) > 2*AddressLength {
		return "", fmt.Errorf("address too long (have: %d, max: %d)", len(trimmed), 2*AddressLength)
	}
	padded := strings.Repeat("0", 2*AddressLength-len(trimmed)) + strings.ToLower(trimmed)
	_, err := hex.DecodeString(padded)
	if err != nil {
		return "", fmt.Errorf("invalid hex in address (%q): %w", s, err)
	}
	return Address("0x" + padded), nil
}

// MustParseAddress is like ParseAddress, but panics on invalid input. It is
// meant for well-known constants.
func MustParseAddress(s string) Address {
	address, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return address
}

// AddressFromBytes encodes raw address bytes.
func AddressFromBytes(b []byte) Address {
	return Address("0x" + hex.EncodeToString(b))
}

func (a Address) String() string {
	return string(a)
}

// Short returns an abbreviated form for display, such as `0x1234…abcd`.
func (a Address) Short() string {
	s := string(a)
	if len(s) <= 14 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}
