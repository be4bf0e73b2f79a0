package domain

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	m "bladegen.dev/pkg/bladegen/internal/model"
)

const listIndent = "\n        "

const protoLibraryTemplate = `
proto_library(
    name='{{.Name}}_proto',
    srcs=[
        {{list .Srcs}}
    ],
    deps=[
        {{deps .Deps}}
    ],
    visibility=['PUBLIC'],
)

cc_library(
    name='{{.Name}}',
    hdrs=[],
    deps=[
        ':{{.Name}}_proto',
    ],
    visibility=['PUBLIC'],
)
`

const ccLibraryTemplate = `
cc_library(
    name='{{.Name}}',
    hdrs=[
        {{list .Hdrs}}
    ],
    srcs=[
        {{list .Srcs}}
    ],
    deps=[
        {{deps .Deps}}
    ],
    visibility=['PUBLIC'],
)
`

const ccTestTemplate = `
cc_test(
    name='{{.Name}}',
    srcs=[
        {{list .Srcs}}
    ],
    deps=[
        {{deps .Deps}}
    ],
    exclusive=True,
)
`

const ccBinaryTemplate = `
cc_binary(
    name="{{.Name}}",
    srcs=[
        {{list .Srcs}}
    ],
    deps=[
        {{deps .Deps}}
    ],
    {{if .DynamicLink}}dynamic_link=True,{{end}}
)
`

var templates = template.Must(template.New("descriptor").
	Funcs(template.FuncMap{
		"list": listLiteral,
		"deps": depsLiteral,
	}).
	Parse(`{{define "proto_library"}}` + protoLibraryTemplate + `{{end}}` +
		`{{define "cc_library"}}` + ccLibraryTemplate + `{{end}}` +
		`{{define "cc_test"}}` + ccTestTemplate + `{{end}}` +
		`{{define "cc_binary"}}` + ccBinaryTemplate + `{{end}}`))

// RenderProtoLibrary renders the proto_library rule and its cc_library wrapper.
func RenderProtoLibrary(rule m.ProtoLibrary) (string, error) {
	return render(m.RuleProtoLibrary, rule)
}

// RenderCcLibrary renders a cc_library rule.
func RenderCcLibrary(rule m.CcLibrary) (string, error) {
	return render(m.RuleCcLibrary, rule)
}

// RenderCcTest renders a cc_test rule.
func RenderCcTest(rule m.CcTest) (string, error) {
	return render(m.RuleCcTest, rule)
}

// RenderCcBinary renders a cc_binary rule.
func RenderCcBinary(rule m.CcBinary) (string, error) {
	return render(m.RuleCcBinary, rule)
}

// Render turns a descriptor into the content of its BUILD file: the proto
// block, or the library block followed by every test and binary block,
// joined by a newline. Library sources without headers keep an empty
// library block, so a folder holding only such sources renders empty.
func Render(d m.Descriptor) ([]byte, error) {
	var blocks []string

	add := func(block string, err error) error {
		if err != nil {
			return err
		}

		blocks = append(blocks, block)

		return nil
	}

	if d.Proto != nil {
		if err := add(RenderProtoLibrary(*d.Proto)); err != nil {
			return nil, err
		}

		return []byte(strings.Join(blocks, "\n")), nil
	}

	switch {
	case d.Library != nil:
		if err := add(RenderCcLibrary(*d.Library)); err != nil {
			return nil, err
		}
	case d.HeaderlessSrcs:
		blocks = append(blocks, "")
	}

	for _, test := range d.Tests {
		if err := add(RenderCcTest(test)); err != nil {
			return nil, err
		}
	}

	for _, binary := range d.Binaries {
		if err := add(RenderCcBinary(binary)); err != nil {
			return nil, err
		}
	}

	return []byte(strings.Join(blocks, "\n")), nil
}

func render(kind m.RuleKind, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(kind), data); err != nil {
		return "", fmt.Errorf("render %s: %w", kind, err)
	}

	return stripBlankLines(buf.String()), nil
}

// listLiteral renders values as sorted, deduplicated, quoted list items,
// one per line.
func listLiteral(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)

	items := make([]string, 0, len(sorted))

	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			continue
		}

		items = append(items, "'"+v+"',")
	}

	return strings.Join(items, listIndent)
}

func depsLiteral(deps []m.Dep) string {
	values := make([]string, 0, len(deps))
	for _, d := range deps {
		values = append(values, string(d))
	}

	return listLiteral(values)
}

// stripBlankLines drops leading newlines and every line made only of
// blanks. Truly empty lines are kept.
func stripBlankLines(s string) string {
	s = strings.TrimLeft(s, "\n")

	lines := strings.Split(s, "\n")
	kept := lines[:0]

	for _, line := range lines {
		if len(line) == 0 || strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}
