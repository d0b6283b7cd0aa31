// Package writers owns the stdout side of a run.
//
// Design:
//   • Record framing lives in internal/fastq; this package only buffers and
//     flushes bytes.
//   • A downstream reader closing early (broken pipe) ends the run quietly.
package writers
