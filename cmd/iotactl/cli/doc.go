// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the small command framework behind the iotactl
// binary: a subcommand tree on pflag with structured help, typo
// suggestions, struct-tag flag binding, and terminal-aware logging.
package cli
