// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// AIFF builds an uncompressed AIFF container in memory. Samples are
// interleaved frames; bitDepth selects the declared sample size and must be
// 8 or 16 for the payload to match.
func AIFF(sampleRate, channels, bitDepth int, samples []int16) []byte {
	bytesPerSample := bitDepth / 8
	frames := 0
	if channels > 0 {
		frames = len(samples) / channels
	}

	data := new(bytes.Buffer)
	for _, s := range samples {
		if bytesPerSample == 1 {
			data.WriteByte(byte(int8(s >> 8)))
			continue
		}
		_ = binary.Write(data, binary.BigEndian, s)
	}

	comm := new(bytes.Buffer)
	_ = binary.Write(comm, binary.BigEndian, int16(channels))
	_ = binary.Write(comm, binary.BigEndian, uint32(frames))
	_ = binary.Write(comm, binary.BigEndian, int16(bitDepth))
	comm.Write(extended(uint64(sampleRate)))

	ssndSize := 8 + data.Len()
	formSize := 4 + (8 + comm.Len()) + (8 + ssndSize + ssndSize%2)

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	_ = binary.Write(out, binary.BigEndian, uint32(formSize))
	out.WriteString("AIFF")

	out.WriteString("COMM")
	_ = binary.Write(out, binary.BigEndian, uint32(comm.Len()))
	out.Write(comm.Bytes())

	out.WriteString("SSND")
	_ = binary.Write(out, binary.BigEndian, uint32(ssndSize))
	_ = binary.Write(out, binary.BigEndian, uint32(0)) // offset
	_ = binary.Write(out, binary.BigEndian, uint32(0)) // block size
	out.Write(data.Bytes())
	if ssndSize%2 == 1 {
		out.WriteByte(0)
	}

	return out.Bytes()
}

// extended encodes v as an IEEE 754 80-bit extended float, big-endian.
func extended(v uint64) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}

	exp := 63 - bits.LeadingZeros64(v)
	binary.BigEndian.PutUint16(out[:2], uint16(16383+exp))
	binary.BigEndian.PutUint64(out[2:], v<<(63-exp))

	return out
}
