// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// render writes v as one JSON line, or text as-is for --format text.
func (a *app) render(w io.Writer, v any, text string) error {
	switch a.format {
	case "json":
		b, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encode result")
		}
		_, err = fmt.Fprintf(w, "%s\n", b)

		return err
	case "text":
		_, err := fmt.Fprintln(w, text)

		return err
	default:
		return errors.Errorf("unknown format: %s", a.format)
	}
}
