package source

import (
	"bytes"
	"hash"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/JoseAmador95/libcrc/pkg/crc"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func TestFile_StreamedAndMappedAgree(t *testing.T) {
	data := bytes.Repeat([]byte("123456789"), 1000)
	path := writeTempFile(t, data)

	streamed := []hash.Hash64{crc.CRC32.NewHash(), crc.CRC64ECMA.NewHash()}
	res, err := File(path, Options{MMap: false}, streamed...)
	if err != nil {
		t.Fatalf("File() error: %v", err)
	}
	if res.Mapped {
		t.Fatalf("expected streamed read")
	}
	if res.Size != int64(len(data)) {
		t.Fatalf("size=%d want %d", res.Size, len(data))
	}

	mapped := []hash.Hash64{crc.CRC32.NewHash(), crc.CRC64ECMA.NewHash()}
	res, err = File(path, Options{MMap: true, MMapMinBytes: 1}, mapped...)
	if err != nil {
		t.Fatalf("File() error: %v", err)
	}
	if want := runtime.GOOS == "linux"; res.Mapped != want {
		t.Fatalf("mapped=%t want %t", res.Mapped, want)
	}

	for i := range streamed {
		if streamed[i].Sum64() != mapped[i].Sum64() {
			t.Fatalf("hash %d: streamed=0x%X mapped=0x%X", i, streamed[i].Sum64(), mapped[i].Sum64())
		}
	}
	if got, want := streamed[0].Sum64(), uint64(crc.Sum32(data)); got != want {
		t.Fatalf("crc-32=0x%X want 0x%X", got, want)
	}
}

func TestFile_BelowThresholdIsStreamed(t *testing.T) {
	path := writeTempFile(t, []byte("123456789"))
	h := crc.XModem.NewHash()
	res, err := File(path, Options{MMap: true, MMapMinBytes: 1 << 20}, h)
	if err != nil {
		t.Fatalf("File() error: %v", err)
	}
	if res.Mapped {
		t.Fatalf("small file should not be mapped")
	}
	if h.Sum64() != 0x31C3 {
		t.Fatalf("xmodem=0x%X", h.Sum64())
	}
}

func TestFile_EmptyNeverMapped(t *testing.T) {
	path := writeTempFile(t, nil)
	h := crc.Modbus.NewHash()
	res, err := File(path, Options{MMap: true, MMapMinBytes: 0}, h)
	if err != nil {
		t.Fatalf("File() error: %v", err)
	}
	if res.Mapped || res.Size != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if h.Sum64() != crc.StartModbus {
		t.Fatalf("modbus of empty=0x%X", h.Sum64())
	}
}

func TestFile_Errors(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "missing"), Options{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := File(t.TempDir(), Options{}); err == nil {
		t.Fatalf("expected error for directory")
	}
}

func TestStream(t *testing.T) {
	a, b := crc.Kermit.NewHash(), crc.Sick.NewHash()
	n, err := Stream(strings.NewReader("123456789"), a, b)
	if err != nil {
		t.Fatalf("Stream() error: %v", err)
	}
	if n != 9 {
		t.Fatalf("n=%d want 9", n)
	}
	if a.Sum64() != 0x2189 || b.Sum64() != 0x56A6 {
		t.Fatalf("kermit=0x%X sick=0x%X", a.Sum64(), b.Sum64())
	}
}
