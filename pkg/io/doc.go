// Package io provides JSON and line-oriented export of scan results.
//
// # JSON Format
//
// Results are written as a single object with a "links" array. Each entry
// carries the document path (empty for stdin and API requests), the target
// package, its registry URL, and the zero-based range it covers:
//
//	{
//	  "links": [
//	    {
//	      "path": "pubspec.yaml",
//	      "target": "http",
//	      "url": "https://pub.dev/packages/http",
//	      "tooltip": "Open in pub.dev",
//	      "range": {
//	        "start": {"offset": 26, "line": 2, "column": 2},
//	        "end": {"offset": 30, "line": 2, "column": 6}
//	      }
//	    }
//	  ]
//	}
//
// [ReadJSON] accepts the same format, so scan output can be piped into other
// publinks commands. The "url" field is informational on input; it is always
// derived from the target.
//
// # Line Format
//
// [WriteLines] prints one link per line as "path:line:column: target url"
// with one-based line and column numbers, the convention compilers and
// editors use for jump-to-location.
package io
