// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package payload

// The compressed frame is a wire constant: deployed consumers hold
// strings produced by the original encoder, and the frozen transition
// vector pins its exact DEFLATE byte stream. Off-the-shelf compressors
// tokenize and pack this input differently (both the standard library
// and klauspost flate split the stream across blocks the original
// never emits), so the compressed frame cannot be delegated to one.
// This file produces the original tokenization directly: greedy
// longest-match LZ77 over the full 32 KiB window, written as a single
// final fixed-Huffman block. Inflation stays with the flate reader,
// which accepts any conforming stream.

const (
	deflateMinMatch = 3
	deflateMaxMatch = 258
	deflateMaxDist  = 32768

	// Longest hash chain walked per position before settling for the
	// best match found so far.
	deflateMaxChain = 4096
)

// lengthBase[i] is the smallest match length of length symbol 257+i;
// lengthExtra[i] is that symbol's extra-bit width (RFC 1951 §3.2.5).
var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtra = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase[i] is the smallest distance of distance symbol i.
var distBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145,
	8193, 12289, 16385, 24577,
}

var distExtra = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// bitWriter packs DEFLATE bit fields least-significant-bit first into
// the output stream.
type bitWriter struct {
	out  []byte
	acc  uint32
	nbit uint
}

func (w *bitWriter) writeBits(value uint32, width uint) {
	w.acc |= value << w.nbit
	w.nbit += width
	for w.nbit >= 8 {
		w.out = append(w.out, byte(w.acc))
		w.acc >>= 8
		w.nbit -= 8
	}
}

// writeCode emits a Huffman code. DEFLATE packs code bits starting
// from the most significant bit, the reverse of every other field.
func (w *bitWriter) writeCode(code uint32, width uint) {
	var reversed uint32
	for i := uint(0); i < width; i++ {
		reversed = reversed<<1 | (code>>i)&1
	}
	w.writeBits(reversed, width)
}

// writeLiteral emits one literal byte under the fixed code: 8 bits for
// values below 144, 9 bits above.
func (w *bitWriter) writeLiteral(b byte) {
	if b < 144 {
		w.writeCode(0x30+uint32(b), 8)
	} else {
		w.writeCode(0x190+uint32(b-144), 9)
	}
}

// writeMatch emits a length/distance pair under the fixed code.
func (w *bitWriter) writeMatch(length, dist int) {
	i := len(lengthBase) - 1
	for lengthBase[i] > length {
		i--
	}
	symbol := 257 + i
	if symbol < 280 {
		w.writeCode(uint32(symbol-256), 7)
	} else {
		w.writeCode(0xC0+uint32(symbol-280), 8)
	}
	w.writeBits(uint32(length-lengthBase[i]), lengthExtra[i])

	j := len(distBase) - 1
	for distBase[j] > dist {
		j--
	}
	w.writeCode(uint32(j), 5)
	w.writeBits(uint32(dist-distBase[j]), distExtra[j])
}

// flush pads the final partial byte with zero bits and returns the
// completed stream.
func (w *bitWriter) flush() []byte {
	if w.nbit > 0 {
		w.out = append(w.out, byte(w.acc))
		w.acc = 0
		w.nbit = 0
	}
	return w.out
}

// deflateCompress encodes data as one final fixed-Huffman DEFLATE
// block, choosing at every position the longest match reachable in
// the window. The output for a given input never varies.
func deflateCompress(data []byte) []byte {
	w := &bitWriter{}
	w.writeBits(1, 1) // final block
	w.writeBits(1, 2) // fixed Huffman codes

	const hashBits = 15
	head := make([]int32, 1<<hashBits)
	for i := range head {
		head[i] = -1
	}
	prev := make([]int32, len(data))

	hash := func(i int) uint32 {
		return (uint32(data[i])<<10 ^ uint32(data[i+1])<<5 ^ uint32(data[i+2])) & (1<<hashBits - 1)
	}
	insert := func(i int) {
		if i+deflateMinMatch > len(data) {
			return
		}
		h := hash(i)
		prev[i] = head[h]
		head[h] = int32(i)
	}

	pos := 0
	for pos < len(data) {
		bestLen, bestDist := 0, 0
		if pos+deflateMinMatch <= len(data) {
			limit := len(data) - pos
			if limit > deflateMaxMatch {
				limit = deflateMaxMatch
			}
			chain := deflateMaxChain
			for candidate := head[hash(pos)]; candidate >= 0 && pos-int(candidate) <= deflateMaxDist && chain > 0; candidate = prev[candidate] {
				length := matchLength(data, int(candidate), pos, limit)
				if length > bestLen {
					bestLen, bestDist = length, pos-int(candidate)
					if length == limit {
						break
					}
				}
				chain--
			}
		}

		if bestLen >= deflateMinMatch {
			w.writeMatch(bestLen, bestDist)
			end := pos + bestLen
			for ; pos < end; pos++ {
				insert(pos)
			}
		} else {
			w.writeLiteral(data[pos])
			insert(pos)
			pos++
		}
	}

	w.writeCode(0, 7) // end of block
	return w.flush()
}

// matchLength counts how far the bytes at candidate and pos agree, up
// to limit. candidate < pos, so overlapping matches resolve the way
// the inflater replays them.
func matchLength(data []byte, candidate, pos, limit int) int {
	n := 0
	for n < limit && data[candidate+n] == data[pos+n] {
		n++
	}
	return n
}
