package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func TestDecodeToUTF8_UTF8PassesThrough(t *testing.T) {
	body := []byte("<html><body>hello</body></html>")
	assert.Equal(t, string(body), DecodeToUTF8(body, "text/html; charset=utf-8"))
}

func TestDecodeToUTF8_ContentTypeCharsetHonored(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String("café")
	if err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	decoded := DecodeToUTF8([]byte(encoded), "text/html; charset=windows-1252")
	assert.Equal(t, "café", decoded)
}

func TestDecodeToUTF8_UnknownCharsetPassesBytesThrough(t *testing.T) {
	body := []byte("plain ascii")
	assert.Equal(t, "plain ascii", DecodeToUTF8(body, "text/html; charset=bogus-charset"))
}

func TestDecodeToUTF8_NoContentTypeNeverErrors(t *testing.T) {
	body := []byte("just some bytes")
	assert.NotPanics(t, func() { DecodeToUTF8(body, "") })
}
