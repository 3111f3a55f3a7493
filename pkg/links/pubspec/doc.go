// Package pubspec finds registry-hosted dependencies in pubspec.yaml files.
//
// The manifest is walked line by line. A [Section] state machine tracks
// whether the current line belongs to one of the dependency blocks
// (dependencies, dev_dependencies, dependency_overrides). Inside a block,
// every entry key at the block's entry indentation becomes a link unless the
// following line marks it as an SDK or path dependency:
//
//	dependencies:
//	  http: ^1.1.0          # linked
//	  flutter:              # skipped: sdk dependency
//	    sdk: flutter
//	  local_pkg:            # skipped: path dependency
//	    path: ../local_pkg
//
// Lines starting with "sdk:" are ignored wherever they occur, so the SDK
// constraint under environment: never affects block tracking.
//
// The walk is a single forward pass with a one-line lookahead. It never
// fails; text that is not valid YAML simply yields fewer links.
package pubspec
