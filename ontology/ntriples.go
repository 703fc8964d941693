package ontology

import (
	"bufio"
	"io"
	"strings"

	"github.com/jamesaoverton/hipc-gates/errors"
)

// ShortLabel associates a Protein Ontology IRI with its PRO short label, an
// exact synonym suitable for matching reported marker names.
type ShortLabel struct {
	IRI   string
	Label string
}

// Annotation predicates and markers recognized while scanning.
const (
	exactSynonymMarker  = "oboInOwl#hasExactSynonym"
	proShortLabelMarker = "pr#PRO-short-label"
	annotatedSource     = "owl#annotatedSource"
	annotatedTarget     = "owl#annotatedTarget"
)

// ScanShortLabels reads rapper-style N-triples and extracts PRO short labels.
//
// Annotation axioms appear as blocks of triples sharing a _:genid subject,
// encountered sequentially. A block contributes a ShortLabel when it is both
// an exact-synonym annotation and flagged as a PRO short label, and both the
// annotated source (a PR_ term) and the annotated target (the label literal)
// have been seen.
func ScanShortLabels(r io.Reader) ([]ShortLabel, error) {
	var out []ShortLabel

	var (
		lastGenid     string
		iri           string
		label         string
		exactSynonym  bool
		proShortLabel bool
		emitted       bool
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		subject, predicate, object, ok := splitTriple(scanner.Text())
		if !ok || !strings.HasPrefix(subject, "_:genid") {
			continue
		}

		// A new genid means the previous block is complete.
		if subject != lastGenid {
			lastGenid = subject
			iri = ""
			label = ""
			exactSynonym = false
			proShortLabel = false
			emitted = false
		}

		if !exactSynonym && strings.Contains(object, exactSynonymMarker) {
			exactSynonym = true
		}
		if !proShortLabel && strings.Contains(object, proShortLabelMarker) {
			proShortLabel = true
		}
		if iri == "" && strings.Contains(predicate, annotatedSource) &&
			strings.HasPrefix(object, "<"+ProteinNamespace) {
			iri = strings.Trim(object, "<>")
		}
		if label == "" && strings.Contains(predicate, annotatedTarget) {
			label = literalValue(object)
		}

		if !emitted && exactSynonym && proShortLabel && iri != "" && label != "" {
			out = append(out, ShortLabel{IRI: iri, Label: label})
			emitted = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapInvalid(err, "ontology", "ScanShortLabels", "reading triples")
	}

	return out, nil
}

// splitTriple breaks one N-triples line into subject, predicate and object.
// The trailing " ." end-of-statement marker is dropped from the object.
func splitTriple(line string) (subject, predicate, object string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", "", false
	}

	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return "", "", "", false
	}
	subject = line[:i]

	rest := line[i+1:]
	j := strings.IndexByte(rest, ' ')
	if j < 0 {
		return "", "", "", false
	}
	predicate = rest[:j]

	object = strings.TrimSpace(rest[j+1:])
	object = strings.TrimSuffix(object, ".")
	object = strings.TrimSpace(object)
	if object == "" {
		return "", "", "", false
	}

	return subject, predicate, object, true
}

// literalValue extracts the lexical form from an N-triples literal object,
// dropping any ^^ datatype annotation and surrounding quotes.
func literalValue(object string) string {
	if i := strings.Index(object, "^^"); i >= 0 {
		object = object[:i]
	}
	return strings.Trim(object, `"`)
}
