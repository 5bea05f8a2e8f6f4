// Package gzcrc implements the CRC-32 checksum (IEEE 802.3, polynomial
// 0xEDB88320) used by the gzip trailer.
package gzcrc

import (
	"sync"
)

const polynomial = 0xEDB88320

var (
	tableOnce sync.Once
	table     [256]uint32
)

func makeTable() {
	for i := range table {
		c := uint32(i)
		for k := 0; k < 8; k++ {
			if c&1 == 1 {
				c = polynomial ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
}

// Update adds the bytes of data to the running checksum crc and returns the
// new checksum. The zero value is the correct initial checksum, so
// Update(0, data) == Sum(data).
func Update(crc uint32, data []byte) uint32 {
	tableOnce.Do(makeTable)

	crc = ^crc
	for _, b := range data {
		crc = table[byte(crc)^b] ^ (crc >> 8)
	}
	return ^crc
}

// Sum returns the CRC-32 checksum of data. Sum(nil) == 0.
func Sum(data []byte) uint32 {
	return Update(0, data)
}

// Verify reports whether data checksums to expected.
func Verify(data []byte, expected uint32) bool {
	return Sum(data) == expected
}
