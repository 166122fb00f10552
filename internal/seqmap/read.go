package seqmap

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// nonBaseRegex matches everything that isn't a nucleotide letter
	nonBaseRegex = regexp.MustCompile(`[^A-Za-z]`)

	// locationIntRegex matches the integers of a feature location
	locationIntRegex = regexp.MustCompile(`\d+`)
)

// Parse reads a sequence from text in any of the supported formats,
// dispatching on the content itself
func Parse(text string) (Sequence, error) {
	trimmed := strings.TrimSpace(text)

	// the EMBL ID prefix is anchored, so check it before the looser
	// genbank marker scan: EMBL free text may mention LOCUS or ORIGIN
	switch {
	case strings.HasPrefix(trimmed, ">"):
		return ParseFasta(text)
	case strings.HasPrefix(trimmed, "ID"):
		return ParseEMBL(text)
	case strings.Contains(text, "LOCUS") || strings.Contains(text, "ORIGIN"):
		return ParseGenbank(text)
	}

	return Sequence{}, fmt.Errorf("failed to parse sequence: unrecognized format")
}

// ParseFasta reads the first record's header as the sequence name and
// concatenates every non-header line into the sequence. FASTA sequences
// are always linear and carry no features
func ParseFasta(text string) (Sequence, error) {
	name := ""
	sawHeader := false
	var seq strings.Builder

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, ">") {
			if !sawHeader {
				name = strings.TrimSpace(line[1:])
				sawHeader = true
			}
			continue
		}
		seq.WriteString(nonBaseRegex.ReplaceAllString(line, ""))
	}

	if !sawHeader {
		return Sequence{}, fmt.Errorf("failed to parse FASTA: no '>' header found")
	}

	return Sequence{
		Name: name,
		Seq:  strings.ToUpper(seq.String()),
	}, nil
}

// ParseGenbank reads a single GenBank record: name and circularity from
// the LOCUS line, features from the FEATURES block, sequence between
// ORIGIN and "//"
func ParseGenbank(text string) (Sequence, error) {
	lines := strings.Split(text, "\n")

	name := ""
	circular := false
	inFeatures := false
	inOrigin := false

	var seq strings.Builder
	var features []Feature
	var location string
	var quals []string
	featureType := ""

	// closeFeature finishes the feature currently being accumulated
	closeFeature := func() {
		if featureType == "" {
			return
		}
		if f, ok := newGenbankFeature(featureType, location, quals); ok {
			features = append(features, f)
		}
		featureType = ""
		location = ""
		quals = nil
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "LOCUS"):
			fields := strings.Fields(line)
			if len(fields) > 1 {
				name = fields[1]
			}
			circular = strings.Contains(line, "circular")
		case strings.HasPrefix(line, "FEATURES"):
			inFeatures = true
		case strings.HasPrefix(line, "ORIGIN"):
			closeFeature()
			inFeatures = false
			inOrigin = true
		case strings.HasPrefix(line, "//"):
			inOrigin = false
		case inOrigin:
			seq.WriteString(nonBaseRegex.ReplaceAllString(line, ""))
		case inFeatures && isGenbankFeatureStart(line):
			closeFeature()
			fields := strings.Fields(line)
			featureType = fields[0]
			if len(fields) > 1 {
				location = fields[1]
			}
		case inFeatures && isGenbankContinuation(line) && featureType != "":
			content := strings.TrimSpace(line)
			if strings.HasPrefix(content, "/") {
				quals = append(quals, content)
			} else {
				location += content
			}
		case inFeatures && !strings.HasPrefix(line, " "):
			// a new top-level section ends the FEATURES block
			closeFeature()
			inFeatures = false
		}
	}
	closeFeature()

	if !strings.Contains(text, "ORIGIN") {
		return Sequence{}, fmt.Errorf("failed to parse genbank: no ORIGIN section")
	}
	if name == "" {
		return Sequence{}, fmt.Errorf("failed to parse genbank: no LOCUS line")
	}

	return Sequence{
		Name:     name,
		Seq:      strings.ToUpper(seq.String()),
		Circular: circular,
		Features: features,
	}, nil
}

// isGenbankFeatureStart reports whether a line begins a new feature:
// a fixed 5-space indent followed by the feature's type token
func isGenbankFeatureStart(line string) bool {
	return strings.HasPrefix(line, "     ") &&
		len(line) > 5 && line[5] != ' '
}

// isGenbankContinuation reports whether a line continues the previous
// feature's location or qualifiers: a fixed 21-space indent
func isGenbankContinuation(line string) bool {
	return strings.HasPrefix(line, strings.Repeat(" ", 21))
}

// newGenbankFeature builds a Feature from the accumulated type token,
// location string and qualifier lines. "source" features are discarded.
// A join(...) location is reduced to the min/max bounding span
func newGenbankFeature(featureType, location string, quals []string) (Feature, bool) {
	if featureType == "source" {
		return Feature{}, false
	}

	ints := locationIntRegex.FindAllString(location, -1)
	if len(ints) == 0 {
		return Feature{}, false
	}

	start, end := -1, -1
	for _, s := range ints {
		v, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		if start == -1 || v < start {
			start = v
		}
		if v > end {
			end = v
		}
	}
	if start == -1 {
		return Feature{}, false
	}

	strand := 1
	if strings.Contains(location, "complement") {
		strand = -1
	}

	f := Feature{
		Type:   featureType,
		Start:  start,
		End:    end,
		Strand: strand,
	}

	// label > gene > product precedence for the display name
	named := map[string]string{}
	for _, q := range quals {
		key, value := splitQualifier(q)
		if key == "" {
			continue
		}
		f.Attributes = append(f.Attributes, Attr{Key: key, Value: value})
		if _, seen := named[key]; !seen {
			named[key] = value
		}
	}
	for _, key := range []string{"label", "gene", "product"} {
		if v, ok := named[key]; ok && v != "" {
			f.Label = v
			break
		}
	}

	return f, true
}

// splitQualifier splits a "/key=value" qualifier line, stripping the
// leading slash and any quotes around the value
func splitQualifier(qual string) (key, value string) {
	qual = strings.TrimPrefix(qual, "/")

	eq := strings.Index(qual, "=")
	if eq < 0 {
		return qual, ""
	}

	key = qual[:eq]
	value = strings.Trim(qual[eq+1:], `"`)
	return
}

// ParseEMBL reads an EMBL flat-file record: name from the ID line,
// features from FT lines, sequence between the SQ header and "//"
func ParseEMBL(text string) (Sequence, error) {
	lines := strings.Split(text, "\n")

	name := ""
	circular := false
	inSeq := false

	var seq strings.Builder
	var features []Feature
	var location string
	var quals []string
	featureType := ""

	closeFeature := func() {
		if featureType == "" {
			return
		}
		if f, ok := newGenbankFeature(featureType, location, quals); ok {
			features = append(features, f)
		}
		featureType = ""
		location = ""
		quals = nil
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "ID"):
			fields := strings.Fields(line)
			if len(fields) > 1 {
				name = strings.TrimSuffix(fields[1], ";")
			}
			circular = strings.Contains(line, "circular")
		case strings.HasPrefix(line, "SQ"):
			closeFeature()
			inSeq = true
		case strings.HasPrefix(line, "//"):
			inSeq = false
		case inSeq:
			seq.WriteString(nonBaseRegex.ReplaceAllString(line, ""))
		case strings.HasPrefix(line, "FT"):
			body := strings.TrimRight(line[2:], "\r")
			content := strings.TrimSpace(body)
			if content == "" {
				continue
			}

			if len(body) > 3 && body[3] != ' ' {
				// new feature: key at the start of the FT body
				closeFeature()
				fields := strings.Fields(content)
				featureType = fields[0]
				if len(fields) > 1 {
					location = fields[1]
				}
			} else if featureType != "" {
				if strings.HasPrefix(content, "/") {
					quals = append(quals, content)
				} else {
					location += content
				}
			}
		}
	}
	closeFeature()

	if !strings.Contains(text, "\nSQ") && !strings.HasPrefix(text, "SQ") {
		return Sequence{}, fmt.Errorf("failed to parse EMBL: no SQ sequence body")
	}

	return Sequence{
		Name:     name,
		Seq:      strings.ToUpper(seq.String()),
		Circular: circular,
		Features: features,
	}, nil
}

// ParseGFF3 reads tab-delimited 9-column GFF3 records into Features.
// The sequence itself is supplied separately by the caller
func ParseGFF3(text string) ([]Feature, error) {
	var features []Feature

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		columns := strings.Split(line, "\t")
		if len(columns) < 9 {
			continue
		}

		start, err := strconv.Atoi(columns[3])
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(columns[4])
		if err != nil {
			continue
		}

		strand := 1
		if columns[6] == "-" {
			strand = -1
		}

		f := Feature{
			Type:   columns[2],
			Start:  start,
			End:    end,
			Strand: strand,
		}

		for _, attr := range strings.Split(columns[8], ";") {
			attr = strings.TrimSpace(attr)
			if attr == "" {
				continue
			}

			key, value := attr, ""
			if eq := strings.Index(attr, "="); eq >= 0 {
				key = attr[:eq]
				value = attr[eq+1:]
			}
			if decoded, err := url.PathUnescape(value); err == nil {
				value = decoded
			}

			f.Attributes = append(f.Attributes, Attr{Key: key, Value: value})
			if f.Label == "" && (key == "Name" || key == "ID") {
				f.Label = value
			}
		}

		features = append(features, f)
	}

	if len(features) == 0 {
		return nil, fmt.Errorf("failed to parse GFF3: no feature records found")
	}

	sort.SliceStable(features, func(i, j int) bool {
		return features[i].Start < features[j].Start
	})

	return features, nil
}
