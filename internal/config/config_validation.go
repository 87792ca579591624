// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required at startup.
//
// The server entry point additionally requires a non-empty DSN, but that is
// enforced where the database connection is opened; CLI tools that never
// touch the database share this config and must not be rejected here.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}
