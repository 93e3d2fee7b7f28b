// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid marks a profile that failed validation.
var ErrInvalid = errors.New("config: invalid profile")

var (
	validAlgorithms = map[string]bool{AlgorithmKruskal: true, AlgorithmPrim: true, AlgorithmBoth: true}
	validLevels     = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats    = map[string]bool{"console": true, "json": true}
)

// Validate checks the profile for:
//   - A known algorithm
//   - A known log level and format
//
// All problems are reported at once.
func Validate(p *Profile) error {
	var errs []string

	if !validAlgorithms[p.Algorithm] {
		errs = append(errs, fmt.Sprintf("algorithm %q: want kruskal, prim or both", p.Algorithm))
	}
	if !validLevels[p.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level %q: want debug, info, warn or error", p.Log.Level))
	}
	if !validFormats[p.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format %q: want console or json", p.Log.Format))
	}
	if strings.ContainsAny(p.Source, " \t") {
		errs = append(errs, fmt.Sprintf("source %q: city names cannot contain whitespace", p.Source))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}
	return nil
}
