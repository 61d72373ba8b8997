package builder

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrClosed is returned when a document is closed a second time.
var ErrClosed = errors.New("document already closed")

type documentConfig struct {
	output string
	writer io.Writer
}

// DocumentOption configures where a document goes when it is closed.
type DocumentOption func(*documentConfig)

// WithOutput sends the document to the file at path. Existing content is
// overwritten.
func WithOutput(path string) DocumentOption {
	return func(c *documentConfig) {
		c.output = path
	}
}

// WithWriter replaces the default output stream (os.Stdout). It is ignored
// when an output file is set.
func WithWriter(w io.Writer) DocumentOption {
	return func(c *documentConfig) {
		c.writer = w
	}
}

// Document is the root of a builder tree. It is never a child of anything.
type Document struct {
	ChildNodes NodeList

	output string
	writer io.Writer
	closed bool
}

func NewDocument(opts ...DocumentOption) *Document {
	cfg := &documentConfig{writer: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Document{
		output: cfg.output,
		writer: cfg.writer,
	}
}

func (d *Document) NodeName() string {
	return "html"
}

func (d *Document) Children() NodeList {
	return d.ChildNodes
}

// AppendChild adds on as the last top level node and returns the document.
func (d *Document) AppendChild(on Node) *Document {
	d.ChildNodes = append(d.ChildNodes, on)
	return d
}

// String serializes the whole document. Unlike elements and sections there
// is no newline after the closing tag.
func (d *Document) String() string {
	return "<html>\n" + d.ChildNodes.String() + "</html>"
}

// Close serializes the document once and writes it to the output file, or
// to the output stream followed by a newline when no file was given.
func (d *Document) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true

	content := d.String()
	if d.output != "" {
		log := logrus.WithField("sink", d.output)
		if err := os.WriteFile(d.output, []byte(content), 0644); err != nil {
			log.WithError(err).Error("could not write document")
			return errors.Wrapf(err, "writing document to %s", d.output)
		}
		log.WithField("bytes", len(content)).Debug("document written")
		return nil
	}

	log := logrus.WithField("sink", "stdout")
	n, err := fmt.Fprintln(d.writer, content)
	if err != nil {
		log.WithError(err).Error("could not write document")
		return errors.Wrap(err, "writing document to output stream")
	}
	log.WithField("bytes", n).Debug("document written")
	return nil
}

// Build runs compose against doc and closes the document afterwards, also
// when compose fails or panics. An error from compose is returned in favour
// of a close error.
func Build(doc *Document, compose func(*Document) error) (err error) {
	defer func() {
		cerr := doc.Close()
		if cerr == nil {
			return
		}
		if err != nil {
			logrus.WithError(cerr).Error("dropping close error after failed composition")
			return
		}
		err = cerr
	}()

	return compose(doc)
}
