// Package dart finds package imports in Dart source files.
//
// An import references a pub package when it has the shape
//
//	import 'package:<name>/<segment>...';
//
// and its first path segment restates the package name, as the primary
// library of a package does:
//
//	import 'package:http/http.dart';             // linked: http
//	import 'package:provider/provider.dart';     // linked: provider
//	import 'package:foo/foo_widgets.dart';       // linked: foo
//	import 'package:foo/src/bar.dart';           // skipped: "src" is not "foo"
//
// Imports of sub-libraries are skipped because they are weaker evidence of a
// package reference. The link covers "<name>/<segment>".
package dart
