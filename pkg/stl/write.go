package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteBinary encodes triangles as binary STL. The header is the model name,
// space padded or truncated to 80 bytes.
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, headerSize)
	for i := range header {
		header[i] = ' '
	}
	copy(header, m.Name)
	if _, err := bw.Write(header); err != nil {
		return err
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return err
	}
	for i := range m.Triangles {
		if err := binary.Write(bw, binary.LittleEndian, &m.Triangles[i]); err != nil {
			return fmt.Errorf("writing triangle %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// WriteFile writes the model as binary STL, creating parent directories.
func WriteFile(path string, m *Model) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteBinary(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
