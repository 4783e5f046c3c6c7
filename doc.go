// Package huffman implements a lossless byte-stream compressor built on
// Huffman codes.  Compression counts byte frequencies, builds a code tree by
// greedily merging the two lightest nodes, writes the resulting code table as
// a header and then packs the encoded body MSB-first.  Decompression rebuilds
// the same tree from the header and replays the body bit by bit.
//
// Compressed layout (all integers little-endian):
//
//     int32  number of distinct byte values
//     int32  number of original bytes
//     repeated per distinct byte value:
//         int8   byte value
//         int32  code length in bits
//         int32  code bits, most significant bit first
//     packed body, zero-padded to a byte boundary
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
