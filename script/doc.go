// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - run a list of offset operations against an index
//
// operations normally come from a configuration file, each one names
// an action and the offset it applies to:
//
//   insert      - ensure the offset exists, optionally set its label
//   remove      - delete the offset if present
//   find        - report whether the offset exists and its label
//   successor   - next offset strictly above
//   predecessor - next offset strictly below
package script
