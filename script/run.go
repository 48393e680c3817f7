// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offsettree/fault"
)

// the recognised actions
const (
	Insert      = "insert"
	Remove      = "remove"
	Find        = "find"
	Successor   = "successor"
	Predecessor = "predecessor"
)

// Operation - one step of a script
type Operation struct {
	Action string   `gluamapper:"action" json:"action"`
	Offset *float64 `gluamapper:"offset" json:"offset"`
	Label  string   `gluamapper:"label" json:"label,omitempty"`
}

// Result - outcome of one operation
//
// for find, successor and predecessor Found tells whether an offset
// was located and Offset/Label describe it; for insert and remove
// Found reports whether the offset is present afterwards
type Result struct {
	Operation
	Found  bool    `json:"found"`
	Offset float64 `json:"result_offset"`
	Label  string  `json:"result_label"`
}

// String - single line summary of a result
func (r Result) String() string {
	if !r.Found {
		return fmt.Sprintf("%s %v: none", r.Action, *r.Operation.Offset)
	}
	return fmt.Sprintf("%s %v: %v %q", r.Action, *r.Operation.Offset, r.Offset, r.Label)
}

// Validate - ensure all operations can be run
//
// returns the index of the first bad operation, and an error
func Validate(operations []Operation) (int, error) {
	for i, op := range operations {
		switch op.Action {
		case Insert, Remove, Find, Successor, Predecessor:
		default:
			return i, fault.ErrInvalidAction
		}
		if nil == op.Offset {
			return i, fault.ErrMissingOffset
		}
	}
	return -1, nil
}

// Run - execute operations in order
//
// if check is set the index is verified after each insert and remove
// and the first failure stops the run; the results up to that point
// are returned
func Run(log *logger.L, index Index, operations []Operation, check bool) ([]Result, error) {
	if i, err := Validate(operations); nil != err {
		log.Errorf("operation[%d]: %+v  error: %s", i, operations[i], err)
		return nil, err
	}

	results := make([]Result, 0, len(operations))
	for i, op := range operations {
		offset := *op.Offset
		result := Result{
			Operation: op,
		}

		switch op.Action {
		case Insert:
			index.Insert(offset)
			if "" != op.Label {
				index.Label(offset, op.Label)
			}
			result.Label, result.Found = index.Lookup(offset)
			result.Offset = offset

		case Remove:
			index.Remove(offset)
			result.Label, result.Found = index.Lookup(offset)
			result.Offset = offset

		case Find:
			result.Label, result.Found = index.Lookup(offset)
			result.Offset = offset

		case Successor:
			result.Offset, result.Found = index.SuccessorKey(offset)
			if result.Found {
				result.Label, _ = index.Lookup(result.Offset)
			}

		case Predecessor:
			result.Offset, result.Found = index.PredecessorKey(offset)
			if result.Found {
				result.Label, _ = index.Lookup(result.Offset)
			}
		}

		log.Debugf("operation[%d]: %s  count: %d", i, result, index.Count())
		results = append(results, result)

		if check && (Insert == op.Action || Remove == op.Action) {
			if err := index.Check(); nil != err {
				log.Criticalf("operation[%d]: %s  check error: %s", i, result, err)
				log.Criticalf("tree:\n%s", index.Describe())
				return results, err
			}
		}
	}
	return results, nil
}
