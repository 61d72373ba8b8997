package main

import (
	"os"

	"github.com/heathj/gomarkup/builder"
	"github.com/heathj/gomarkup/builder/builderdbg"
	"github.com/sirupsen/logrus"
)

func main() {
	doc := builder.NewDocument()
	err := builder.Build(doc, func(doc *builder.Document) error {
		head := builder.NewSection("head")
		head.AppendChild(builder.NewElement("title", builder.WithText("hello")))
		doc.AppendChild(head)

		body := builder.NewSection("body")
		body.AppendChild(builder.NewElement("h1",
			builder.WithClass("main-text"),
			builder.WithText("Test"),
		))

		div := builder.NewElement("div",
			builder.WithClass("container", "container-fluid"),
			builder.WithAttr("id", "lead"),
		)
		div.AppendChild(builder.NewElement("p", builder.WithText("another test"))).
			AppendChild(builder.NewElement("img",
				builder.WithSelfClosing(),
				builder.WithAttr("src", "/icon.png"),
			))
		body.AppendChild(div)
		doc.AppendChild(body)

		logrus.WithField("method", "main").Debugf("[TREE]:\n%s", builderdbg.Dump(doc))
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("building document")
		os.Exit(1)
	}
}
