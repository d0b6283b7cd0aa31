// Package pipeline streams FASTQ records from a compressed file through the
// membership rule and writes the kept ones.
//
// The run is one goroutine and one pass: read, decide, write, count. Any
// error aborts it and the counters are dropped.
package pipeline
