// Package links describes navigable package references found in Dart
// sources and pubspec.yaml manifests.
//
// # Overview
//
// A scan takes raw document text and produces [Link] values. Each link covers
// exactly the package-identifier token in the document and targets the
// package's page on pub.dev:
//
//	import 'package:http/http.dart';      // link on "http/http"
//
//	dependencies:
//	  provider: ^6.0.0                    // link on "provider"
//
// The extractors themselves live in subpackages:
//
//   - [dart]: package-style import declarations in .dart files
//   - [pubspec]: dependency entries in pubspec.yaml
//
// and [dispatch] selects between them by [Kind] and [Config].
//
// # Positions
//
// Positions are zero-based. Columns count UTF-16 code units, the addressing
// used by editors speaking the Language Server Protocol; for the ASCII text
// that package names are made of this equals the byte column. Offsets are
// byte offsets into the scanned text.
//
// # Purity
//
// Nothing in this package or its subpackages performs I/O or keeps state
// between calls. The same text always yields the same links, and scans of
// different documents may run concurrently.
//
// [dart]: github.com/matzehuels/publinks/pkg/links/dart
// [pubspec]: github.com/matzehuels/publinks/pkg/links/pubspec
// [dispatch]: github.com/matzehuels/publinks/pkg/links/dispatch
package links
