package htmldoc

import (
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// DecodeToUTF8 normalizes raw response bytes to a UTF-8 string before
// parsing. It never fails: a charset named in contentType is tried
// first, then best-effort detection over the byte sample, and if
// neither pans out the bytes are assumed to already be UTF-8. This is
// a soft-degradation path per the pipeline's error policy — encoding
// trouble never aborts extraction.
func DecodeToUTF8(body []byte, contentType string) string {
	if enc := encodingFromContentType(contentType); enc != nil {
		if decoded, err := enc.NewDecoder().Bytes(body); err == nil {
			return string(decoded)
		}
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(body)
	if err != nil || result == nil || result.Confidence < 80 {
		return string(body)
	}

	enc := encodingByName(result.Charset)
	if enc == nil {
		return string(body)
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}

func encodingFromContentType(contentType string) encoding.Encoding {
	if contentType == "" {
		return nil
	}
	for _, part := range strings.Split(contentType, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(strings.ToLower(part), "charset=") {
			charset := strings.Trim(strings.TrimPrefix(strings.ToLower(part), "charset="), "\"'")
			return encodingByName(charset)
		}
	}
	return nil
}

func encodingByName(name string) encoding.Encoding {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return unicode.UTF8
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	case "shift_jis", "shift-jis", "sjis":
		return japanese.ShiftJIS
	case "euc-jp":
		return japanese.EUCJP
	case "euc-kr":
		return korean.EUCKR
	case "gbk", "gb2312":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "big5":
		return traditionalchinese.Big5
	default:
		return nil
	}
}
