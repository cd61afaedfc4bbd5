package sources

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const (
	// backwardChunkSize is the read size used when walking a seekable file from its end.
	backwardChunkSize = 64 * 1024

	scanBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// readTail returns the last maxLines non-empty lines of r in file order.
func readTail(r io.Reader, maxLines int) ([]string, error) {
	if seeker, ok := r.(io.ReadSeeker); ok {
		return tailBackward(seeker, maxLines)
	}
	return tailForward(r, maxLines)
}

// tailBackward reads fixed-size chunks from the end of rs and stops as soon as maxLines lines
// are collected, so the cost depends on the tail size rather than the file size.
func tailBackward(rs io.ReadSeeker, maxLines int) ([]string, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("seek end: %w", err)
	}

	reversed := make([]string, 0, min(maxLines, 1024))
	collect := func(line []byte) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) > 0 {
			reversed = append(reversed, string(line))
		}
	}

	buf := make([]byte, backwardChunkSize)
	var carry []byte
	offset := size

	for offset > 0 && len(reversed) < maxLines {
		n := int64(backwardChunkSize)
		if offset < n {
			n = offset
		}
		offset -= n

		if _, err := rs.Seek(offset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek %d: %w", offset, err)
		}
		if _, err := io.ReadFull(rs, buf[:n]); err != nil {
			return nil, fmt.Errorf("read chunk at %d: %w", offset, err)
		}

		chunk := make([]byte, 0, int(n)+len(carry))
		chunk = append(chunk, buf[:n]...)
		chunk = append(chunk, carry...)

		// Bytes before the first newline may continue in the previous chunk.
		first := bytes.IndexByte(chunk, '\n')
		if first < 0 {
			carry = chunk
			continue
		}
		carry = chunk[:first]

		segments := bytes.Split(chunk[first+1:], []byte("\n"))
		for i := len(segments) - 1; i >= 0 && len(reversed) < maxLines; i-- {
			collect(segments[i])
		}
	}

	if offset == 0 && len(reversed) < maxLines {
		collect(carry)
	}

	lines := make([]string, len(reversed))
	for i, line := range reversed {
		lines[len(reversed)-1-i] = line
	}
	return lines, nil
}

// tailForward scans r once, keeping only the most recent maxLines lines in a ring.
func tailForward(r io.Reader, maxLines int) ([]string, error) {
	ring := make([]string, maxLines)
	next, count := 0, 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, scanBufferSize), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		ring[next] = line
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	lines := make([]string, 0, count)
	start := (next - count + maxLines) % maxLines
	for i := 0; i < count; i++ {
		lines = append(lines, ring[(start+i)%maxLines])
	}
	return lines, nil
}
