package rankingapi

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

const maxPreviewBody = 512

func buildCurlPreview(method, fullURL string, body []byte) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart("-X")
	appendPart(method)
	appendPart(shellQuote(fullURL))
	appendPart("-H")
	appendPart(shellQuote("Content-Type: application/json"))
	if len(body) > 0 {
		text := string(body)
		if len(text) > maxPreviewBody {
			text = text[:maxPreviewBody] + "..."
		}
		appendPart("-d")
		appendPart(shellQuote(text))
	}
	return buf.String()
}

func shellQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'"'"'`) + "'"
}
