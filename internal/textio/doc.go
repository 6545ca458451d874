// Package textio reads text sources line by line and writes merged output.
//
// A Reader decodes the underlying file (UTF-8 by default, or one of the
// legacy encodings accepted by LookupDecoder) and yields lines lazily. Line
// boundaries follow the classic reader convention: "\n", "\r\n", and a lone
// "\r" all end a line, a trailing terminator does not create an extra empty
// line, and a final unterminated line still counts.
//
// Every open, read, lock, or write failure is reported as *IOFailure carrying
// the path and the underlying cause. File handles are released on every path.
package textio
