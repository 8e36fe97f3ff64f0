package lockfile

import (
	"bytes"

	"go.trai.ch/cull/internal/core/domain"
)

// Render writes the document back out in its canonical form: preamble lines
// verbatim, entries in order with fields as name, version, source, checksum,
// dependencies, then any extra lines, one blank line between entries.
// Rendering is deterministic and a fixed point: parsing the output and
// rendering again yields identical bytes.
func Render(doc *domain.LockDocument) []byte {
	var b bytes.Buffer

	for _, line := range doc.Preamble {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	for i := range doc.Packages {
		if i > 0 {
			b.WriteByte('\n')
		}
		renderEntry(&b, &doc.Packages[i])
	}

	return b.Bytes()
}

func renderEntry(b *bytes.Buffer, pkg *domain.Package) {
	b.WriteString(entryHeader)
	b.WriteByte('\n')

	writeField(b, "name", pkg.Name())
	writeField(b, "version", pkg.Version())
	if pkg.Source != "" {
		writeField(b, "source", pkg.Source)
	}
	if pkg.Checksum != "" {
		writeField(b, "checksum", pkg.Checksum)
	}

	if len(pkg.Dependencies) > 0 {
		b.WriteString("dependencies = [\n")
		for _, ref := range pkg.Dependencies {
			b.WriteString(" \"")
			b.WriteString(ref.String())
			b.WriteString("\",\n")
		}
		b.WriteString("]\n")
	}

	for _, field := range pkg.Extra {
		b.WriteString(field.Raw)
		b.WriteByte('\n')
	}
}

func writeField(b *bytes.Buffer, key, value string) {
	b.WriteString(key)
	b.WriteString(" = \"")
	b.WriteString(value)
	b.WriteString("\"\n")
}
