// Package pdftext extracts the shown text from simple PDF files.
//
// It understands exactly enough of the format to verify documents
// produced by this module's flowed-text renderer: FlateDecode content
// streams and literal-string show operators (Tj, ', ", TJ) inside
// BT/ET text blocks. It is not a general-purpose PDF reader.
package pdftext

import (
	"bytes"
	"compress/zlib"
	"io"
	"strings"
)

// ExtractText returns the concatenated text shown by every content
// stream in data, one line per show operation.
func ExtractText(data []byte) (string, error) {
	var sb strings.Builder
	for _, stream := range contentStreams(data) {
		sb.WriteString(showText(stream))
	}
	return sb.String(), nil
}

// contentStreams returns the decoded bytes of every stream object in
// data. Streams that do not inflate are returned raw, since
// uncompressed content streams are legal.
func contentStreams(data []byte) [][]byte {
	var streams [][]byte
	pos := 0
	for {
		i := bytes.Index(data[pos:], []byte("stream"))
		if i < 0 {
			break
		}
		kw := pos + i
		start := kw + len("stream")
		pos = start
		// Part of an "endstream" keyword, not a stream start.
		if bytes.HasSuffix(data[:kw], []byte("end")) {
			continue
		}
		// The keyword is followed by CRLF or LF.
		if start < len(data) && data[start] == '\r' {
			start++
		}
		if start < len(data) && data[start] == '\n' {
			start++
		}
		end := bytes.Index(data[start:], []byte("endstream"))
		if end < 0 {
			break
		}
		raw := bytes.TrimRight(data[start:start+end], "\r\n")
		pos = start + end + len("endstream")

		if inflated, err := inflate(raw); err == nil {
			streams = append(streams, inflated)
		} else {
			streams = append(streams, raw)
		}
	}
	return streams
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// showText collects every literal string inside BT/ET text blocks.
func showText(content []byte) string {
	var sb strings.Builder
	inText := false
	for i := 0; i < len(content); i++ {
		switch {
		case content[i] == 'B' && hasToken(content, i, "BT"):
			inText = true
			i++
		case content[i] == 'E' && hasToken(content, i, "ET"):
			inText = false
			i++
		case content[i] == '(' && inText:
			s, next := literalString(content, i)
			sb.WriteString(s)
			sb.WriteByte('\n')
			i = next - 1
		}
	}
	return sb.String()
}

// hasToken reports whether the two-byte operator tok starts at i as a
// standalone token.
func hasToken(content []byte, i int, tok string) bool {
	if i+len(tok) > len(content) {
		return false
	}
	if string(content[i:i+len(tok)]) != tok {
		return false
	}
	if i > 0 && !isDelim(content[i-1]) {
		return false
	}
	return i+len(tok) == len(content) || isDelim(content[i+len(tok)])
}

func isDelim(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\x00', '(', ')', '<', '>', '[', ']', '/':
		return true
	}
	return false
}

// literalString decodes the PDF literal string starting at the opening
// parenthesis content[i] and returns the decoded text along with the
// index just past the closing parenthesis. Balanced unescaped
// parentheses nest.
func literalString(content []byte, i int) (string, int) {
	var sb strings.Builder
	depth := 0
	j := i
	for ; j < len(content); j++ {
		c := content[j]
		switch c {
		case '\\':
			if j+1 >= len(content) {
				break
			}
			j++
			switch content[j] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case '(', ')', '\\':
				sb.WriteByte(content[j])
			case '\n':
				// Line continuation: emits nothing.
			case '0', '1', '2', '3', '4', '5', '6', '7':
				v := int(content[j] - '0')
				for k := 0; k < 2 && j+1 < len(content) && content[j+1] >= '0' && content[j+1] <= '7'; k++ {
					j++
					v = v*8 + int(content[j]-'0')
				}
				sb.WriteByte(byte(v))
			default:
				sb.WriteByte(content[j])
			}
		case '(':
			depth++
			if depth > 1 {
				sb.WriteByte(c)
			}
		case ')':
			depth--
			if depth == 0 {
				return sb.String(), j + 1
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), j
}
