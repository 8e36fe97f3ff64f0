// Package lockfile parses and rewrites lock documents. The format is a
// header of opaque lines followed by [[package]] entries; the parser keeps
// everything it does not understand, so rendering a parsed document loses no
// information, and rendering then parsing again is a fixed point.
package lockfile

import (
	"strings"

	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/zerr"
)

// entryHeader opens a package entry.
const entryHeader = "[[package]]"

// Parse reads a lock document. The preamble, every line before the first
// entry, is kept verbatim. Entries must carry name and version; source,
// checksum and dependencies are optional, and unrecognized key lines ride
// along as extra fields. Any entry the parser cannot make sense of aborts
// the whole parse: a partial view of a lock document is worse than none,
// since a later rewrite would silently drop what was not understood.
func Parse(data []byte) (*domain.LockDocument, error) {
	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	doc := &domain.LockDocument{}
	seen := make(map[domain.PackageID]bool)

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) != entryHeader {
		doc.Preamble = append(doc.Preamble, lines[i])
		i++
	}

	for i < len(lines) {
		index := len(doc.Packages)
		pkg, next, err := parseEntry(lines, i+1, index)
		if err != nil {
			return nil, err
		}
		if seen[pkg.ID] {
			return nil, malformed(index, "duplicate package", "package", pkg.ID.String())
		}
		seen[pkg.ID] = true
		doc.Packages = append(doc.Packages, pkg)

		i = next
		for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			i++
		}
		if i < len(lines) && strings.TrimSpace(lines[i]) != entryHeader {
			return nil, malformed(len(doc.Packages), "unexpected line between entries", "line", lines[i])
		}
	}

	return doc, nil
}

// parseEntry reads one entry body starting at lines[start] and returns the
// package plus the index of the first line it did not consume.
func parseEntry(lines []string, start, index int) (domain.Package, int, error) {
	var (
		pkg     domain.Package
		name    string
		version string
		hasName bool
		hasVer  bool
	)

	i := start
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == entryHeader {
			break
		}

		key, rest, ok := splitKey(line)
		if !ok {
			return pkg, i, malformed(index, "line is not a key value pair", "line", line)
		}

		switch key {
		case "name":
			value, ok := quoted(rest)
			if !ok {
				return pkg, i, malformed(index, "name is not a quoted string", "line", line)
			}
			name, hasName = value, true
		case "version":
			value, ok := quoted(rest)
			if !ok {
				return pkg, i, malformed(index, "version is not a quoted string", "line", line)
			}
			version, hasVer = value, true
		case "source":
			value, ok := quoted(rest)
			if !ok {
				return pkg, i, malformed(index, "source is not a quoted string", "line", line)
			}
			pkg.Source = value
		case "checksum":
			value, ok := quoted(rest)
			if !ok {
				return pkg, i, malformed(index, "checksum is not a quoted string", "line", line)
			}
			pkg.Checksum = value
		case "dependencies":
			refs, next, err := parseDependencies(lines, i, rest, index)
			if err != nil {
				return pkg, i, err
			}
			pkg.Dependencies = refs
			i = next
			continue
		default:
			pkg.Extra = append(pkg.Extra, domain.Field{Key: key, Raw: line})
		}
		i++
	}

	if !hasName {
		return pkg, i, malformed(index, "entry has no name")
	}
	if !hasVer {
		return pkg, i, malformed(index, "entry has no version", "package", name)
	}
	pkg.ID = domain.NewPackageID(name, version)
	return pkg, i, nil
}

// parseDependencies reads a dependency list. The list either closes on the
// same line or spans one quoted reference per line until the closing bracket.
func parseDependencies(lines []string, i int, rest string, index int) ([]domain.DepRef, int, error) {
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "[") {
		return nil, i, malformed(index, "dependencies is not a list", "line", lines[i])
	}

	inline := strings.TrimSpace(strings.TrimPrefix(rest, "["))
	if closed, body := strings.HasSuffix(inline, "]"), strings.TrimSuffix(inline, "]"); closed {
		refs, err := parseInlineRefs(body, index)
		return refs, i + 1, err
	}
	if inline != "" {
		return nil, i, malformed(index, "dependency list must close or break after the bracket", "line", lines[i])
	}

	var refs []domain.DepRef
	for i++; i < len(lines); i++ {
		item := strings.TrimSpace(lines[i])
		if item == "]" {
			return refs, i + 1, nil
		}
		ref, ok := quoted(strings.TrimSuffix(item, ","))
		if !ok {
			return nil, i, malformed(index, "dependency reference is not a quoted string", "line", lines[i])
		}
		refs = append(refs, domain.ParseDepRef(ref))
	}
	return nil, i, malformed(index, "dependency list never closes")
}

// parseInlineRefs handles the single line form "dependencies = [ "a", "b" ]".
func parseInlineRefs(body string, index int) ([]domain.DepRef, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return []domain.DepRef{}, nil
	}
	var refs []domain.DepRef
	for _, item := range strings.Split(body, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		ref, ok := quoted(item)
		if !ok {
			return nil, malformed(index, "dependency reference is not a quoted string", "item", item)
		}
		refs = append(refs, domain.ParseDepRef(ref))
	}
	return refs, nil
}

// splitKey splits a "key = rest" line. The key must start in column zero;
// indented lines belong to multiline values and never reach this point.
func splitKey(line string) (key, rest string, ok bool) {
	eq := strings.Index(line, "=")
	if eq < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:eq])
	if key == "" || strings.ContainsAny(key, "[]\"") {
		return "", "", false
	}
	return key, line[eq+1:], true
}

// quoted extracts the content between the outer double quotes of a value.
// Escape sequences never occur in lock documents, so the content is taken
// byte for byte and re-emitted the same way on render.
func quoted(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// malformed builds the parse error for one entry. The zero-based entry index
// always rides along so the caller can point at the offending block.
func malformed(index int, reason string, kv ...string) error {
	err := zerr.With(zerr.Wrap(domain.ErrMalformedEntry, reason), "entry_index", index)
	for i := 0; i+1 < len(kv); i += 2 {
		err = zerr.With(err, kv[i], kv[i+1])
	}
	return err
}
