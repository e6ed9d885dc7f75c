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
	"fmt"
	"strings"
)

// MoveTarget is the fully qualified name of a Move function, as in
// `0x2::coin::mint`.
type MoveTarget struct {
	Package  ObjectID
	Module   string
	Function string
}

// ParseMoveTarget parses a `package::module::function` string.
func ParseMoveTarget(s string) (MoveTarget, error) {
	parts := strings.Split(s, "::")
	if len(parts) != 3 {
		return MoveTarget{}, fmt.Errorf("invalid move target (%q): want package::module::function", s)
	}
	pkg, err := ParseAddress(parts[0])
	if err != nil {
		return MoveTarget{}, fmt.Errorf("invalid move target package: %w", err)
	}
	if parts[1] == "" || parts[2] == "" {
		return MoveTarget{}, fmt.Errorf("invalid move target (%q): empty module or function", s)
	}
	target := MoveTarget{
		Package:  pkg,
		Module:   parts[1],
		Function: parts[2],
	}
	return target, nil
}

func (m MoveTarget) String() string {
	return fmt.Sprintf("%s::%s::%s", m.Package, m.Module, m.Function)
}
