package nmea

import (
	"errors"
	"testing"
)

const ggaPayload = "GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,"

func TestChecksum_KnownSentence(t *testing.T) {
	if got := Checksum([]byte(ggaPayload)); got != "47" {
		t.Fatalf("got=%q want 47", got)
	}
	if got := SentenceChecksum("$" + ggaPayload + "*47\r\n"); got != "47" {
		t.Fatalf("sentence got=%q want 47", got)
	}
}

func TestChecksum_Rendering(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{nil, "00"},
		{[]byte{0x0A}, "0A"},
		{[]byte{0xAB}, "AB"},
		{[]byte{0xF0, 0x0F}, "FF"},
		{[]byte{0x55, 0x55}, "00"},
	}
	for _, tc := range cases {
		if got := Checksum(tc.in); got != tc.want {
			t.Fatalf("Checksum(% X)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestChecksum_OrderIndependent(t *testing.T) {
	data := []byte(ggaPayload)
	want := Checksum(data)
	for i := 0; i < len(data); i += 3 {
		for j := i + 1; j < len(data); j += 5 {
			swapped := append([]byte(nil), data...)
			swapped[i], swapped[j] = swapped[j], swapped[i]
			if got := Checksum(swapped); got != want {
				t.Fatalf("swap %d,%d: got=%q want %q", i, j, got, want)
			}
		}
	}
}

func TestSentenceChecksum_StopsAtDelimiters(t *testing.T) {
	cases := []string{
		"GPRMC,1",
		"$GPRMC,1",
		"$GPRMC,1*00",
		"$GPRMC,1\r\n",
		"GPRMC,1\nGARBAGE",
	}
	want := Checksum([]byte("GPRMC,1"))
	for _, in := range cases {
		if got := SentenceChecksum(in); got != want {
			t.Fatalf("SentenceChecksum(%q)=%q want %q", in, got, want)
		}
	}
}

func TestFormatVerify_RoundTrip(t *testing.T) {
	line := Format(ggaPayload)
	if line != "$"+ggaPayload+"*47" {
		t.Fatalf("Format=%q", line)
	}
	if err := Verify(line); err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if err := Verify(line + "\r\n"); err != nil {
		t.Fatalf("Verify() with CRLF error: %v", err)
	}
}

func TestVerify_LowercaseHex(t *testing.T) {
	line := Format("GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W")
	if err := Verify(line[:len(line)-2] + "6a"); err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
}

func TestVerify_Errors(t *testing.T) {
	good := Format(ggaPayload)
	cases := []struct {
		name string
		line string
		want error
	}{
		{"no dollar", good[1:], ErrMissingDollar},
		{"no star", "$" + ggaPayload, ErrMissingChecksum},
		{"short checksum", "$" + ggaPayload + "*4", ErrBadChecksum},
		{"non hex", "$" + ggaPayload + "*ZZ", ErrBadChecksum},
		{"mismatch", good[:len(good)-2] + "00", ErrChecksumMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Verify(tc.line)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v want %v", err, tc.want)
			}
		})
	}
}
