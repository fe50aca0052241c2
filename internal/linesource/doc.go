// Package linesource reads an input file as a forward-only sequence of lines.
//
// # Overview
//
// A Source wraps one open file and yields its newline-delimited lines in
// order, exactly once. It is the only component that holds a resource; the
// file is released by Close once the caller has drained the sequence.
//
// # Reading Behavior
//
//   - Scans the file sequentially in a single pass
//   - Lines may be arbitrarily long; memory use tracks the longest line, not
//     the file size
//   - Line endings: both \n and \r\n are stripped
//   - Lines that are not valid UTF-8 are silently dropped; the scan continues
//     with the rest of the file
//   - Not restartable: a Source is consumed top to bottom once
//
// Example usage:
//
//	src, err := linesource.Open("/var/log/app.log")
//	if err != nil {
//		return nil
//	}
//	defer src.Close()
//	for src.Next() {
//		process(src.Text())
//	}
//
// # Design Rationale
//
// This package is intentionally narrow: no tailing, no watching, no stdin, no
// multiple files. It reads one file forward and nothing else; formatting and
// fallback decisions belong to the caller.
package linesource
