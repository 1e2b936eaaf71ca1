package workspace

import (
	"strings"

	"github.com/isti03/checkthat-generator/java"
	"github.com/isti03/checkthat-generator/script"
	"github.com/stoewer/go-strcase"
)

type CompletionKind int

const (
	CompletionKindOperation CompletionKind = iota
	CompletionKindCondition
	CompletionKindKeyword
)

type CompletionItem struct {
	Label      string
	Kind       CompletionKind
	Detail     string
	InsertText string
}

var declarationKeys = []struct{ key, detail string }{
	{"class", "declare a class"},
	{"enum", "declare an enum"},
	{"interface", "declare an interface"},
	{"checked exception", "declare a class extending Exception"},
	{"unchecked exception", "declare a class extending RuntimeException"},
}

// CompletionsAt offers completions for a 1-based line and a 0-based
// column of a known script.
func (w *Workspace) CompletionsAt(path string, line, column int) []CompletionItem {
	f := w.GetFile(path)
	if f == nil {
		return nil
	}
	return Completions(f.Content, line, column)
}

// Completions offers operation names after "- " inside steps, declaration
// kinds after "- " elsewhere and condition names after an operation that
// takes conditions.
func Completions(content []byte, line, column int) []CompletionItem {
	lines := strings.Split(string(content), "\n")
	if line <= 0 || line > len(lines) {
		return nil
	}
	text := lines[line-1]
	if column < len(text) {
		text = text[:column]
	}
	indent := len(text) - len(strings.TrimLeft(text, " \t"))
	item := strings.TrimLeft(text, " \t")
	if !strings.HasPrefix(item, "-") {
		return nil
	}
	item = strings.TrimSpace(strings.TrimPrefix(item, "-"))

	if key, _, ok := strings.Cut(item, ":"); ok {
		return conditionCompletions(strcase.SnakeCase(strings.TrimSpace(key)))
	}
	if enclosingKey(lines[:line-1], indent) == "steps" {
		return operationCompletions()
	}
	return declarationCompletions()
}

// enclosingKey is the mapping key of the nearest preceding line indented
// less than indent.
func enclosingKey(above []string, indent int) string {
	for i := len(above) - 1; i >= 0; i-- {
		l := above[i]
		trimmed := strings.TrimSpace(l)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if len(l)-len(strings.TrimLeft(l, " \t")) < indent {
			key, _, _ := strings.Cut(strings.TrimPrefix(trimmed, "- "), ":")
			return strcase.SnakeCase(strings.TrimSpace(key))
		}
	}
	return ""
}

func operationCompletions() []CompletionItem {
	var items []CompletionItem
	for _, op := range script.Operations() {
		label := strings.ReplaceAll(op.Name, "_", " ")
		items = append(items, CompletionItem{
			Label:      label,
			Kind:       CompletionKindOperation,
			Detail:     op.Help,
			InsertText: label + ": ",
		})
	}
	return items
}

func conditionCompletions(op string) []CompletionItem {
	takes := false
	for _, info := range script.Operations() {
		if info.Name == op {
			takes = info.TakesConditions
		}
	}
	if !takes {
		return nil
	}
	var items []CompletionItem
	for _, c := range java.Conditions() {
		detail := "structural"
		if c.IsModifier() {
			detail = "modifier"
			if m := c.Modifier(); m != "" {
				detail += " " + m
			}
		}
		items = append(items, CompletionItem{
			Label:      c.String(),
			Kind:       CompletionKindCondition,
			Detail:     detail,
			InsertText: c.String(),
		})
	}
	return items
}

func declarationCompletions() []CompletionItem {
	items := make([]CompletionItem, 0, len(declarationKeys))
	for _, k := range declarationKeys {
		items = append(items, CompletionItem{
			Label:      k.key,
			Kind:       CompletionKindKeyword,
			Detail:     k.detail,
			InsertText: k.key + ": ",
		})
	}
	return items
}
