// SPDX-License-Identifier: MIT

// Package input loads lvdp problem files.
package input

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Problem is the on-disk description of one solver run.
//
//	{"values": [1, 2, 3], "k": 3, "mode": "rescan"}
//
// K is a pointer so an absent target can be told apart from zero.
type Problem struct {
	Values []int  `json:"values"`
	K      *int   `json:"k"`
	Mode   string `json:"mode,omitempty"`
}

// Load reads and decodes the JSON problem file at path.
func Load(path string) (Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, errors.Wrap(err, "read problem file")
	}

	return Decode(data)
}

// Decode parses a JSON problem document.
func Decode(data []byte) (Problem, error) {
	var p Problem
	if err := json.Unmarshal(data, &p); err != nil {
		return Problem{}, errors.Wrap(err, "decode problem")
	}

	return p, nil
}
