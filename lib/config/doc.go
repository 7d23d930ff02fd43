// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads overlay and theme configuration from a single
// file named on the command line.
//
// The file format follows its extension: .yaml and .yml are YAML,
// .json and .jsonc are JSON with // and /* */ comments and trailing
// commas allowed. Values missing from the file keep their [Default].
// There is no file discovery and no environment override of individual
// keys. The only environment lookup is ${VAR} and ${VAR:-default}
// expansion inside string values, applied before parsing.
//
// Key exports:
//
//   - [Config] -- the overlay options and theme sections
//   - [Default] -- the built-in configuration
//   - [LoadFile] and [Parse] -- file and byte entry points
//   - [OverlayConfig.Options] -- conversion to overlay.Options
//
// A YAML example:
//
//	overlay:
//	  align: {sm: start, lg: end}
//	  drop: down
//	  auto_close: outside
//	  focus_first_item: keyboard
//	  hover_delay: 80ms
//	theme:
//	  name: ${OVERLAY_THEME:-auto}
package config
