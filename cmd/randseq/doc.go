// 31 July 2020

/*
Randseq makes random alignments in fasta format, for testing readers.
Usage:

	randseq [options] fname nseq length

will generate nseq aligned sequences of length length and write them to
fname. A fname of - means standard output.

Flags:

	-g
		no gaps in the output sequences
	-e
		provoke errors. The last sequence is one shorter than the rest,
		which no alignment reader should accept.
	-w
		scatter spaces and newlines through the sequences
	-r
		random number seed

The content is not so important. What matters is white space and gaps.
*/
package main
