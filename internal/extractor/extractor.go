package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/regbot/server/internal/logger"
)

// reported when the byte stream is not a readable PDF container;
// no record is created for such uploads
var ErrInvalidFormat = errors.New("invalid document format")

// extracts plain text from PDF byte streams
type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

// returns the concatenated text of all pages, in page order.
// A page whose text cannot be decoded contributes nothing; an unreadable
// container fails with ErrInvalidFormat.
func (p *PDF) Extract(data []byte) (text string, err error) {
	// the pdf parser panics on some malformed xref tables instead of
	// returning an error; treat a panic the same as an unreadable container
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrInvalidFormat, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var builder strings.Builder

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			logger.Warn("failed to extract text from page", "page", i, "error", err)
			continue
		}

		builder.WriteString(pageText)
	}

	return builder.String(), nil
}
