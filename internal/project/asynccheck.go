package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

var rustSyntaxLanguage = sitter.NewLanguage(tree_sitter_rust.Language())

// asyncUsage is what the advisory pass extracts from one source file.
type asyncUsage struct {
	UsesAsync bool // async fns, async blocks, or await expressions
	UsesTokio bool // use declarations or attributes naming tokio
}

// CheckAsyncTagging parses each discovered exercise and compares its
// actual async/tokio usage against the prefix-based dependency tagging.
// The result is purely advisory: notes for a human, never a change to the
// document and never an error. Files that cannot be read or parsed are
// skipped. Callers pass the discovered crates only, not the synthetic one.
func CheckAsyncTagging(root string, crates []Crate) []string {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(rustSyntaxLanguage); err != nil {
		return nil
	}
	defer parser.Close()

	var notes []string
	for _, c := range crates {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(c.RootModule)))
		if err != nil {
			continue
		}

		usage, ok := parseAsyncUsage(parser, content)
		if !ok {
			continue
		}

		tagged := len(c.Deps) > 0
		switch {
		case usage.UsesAsync && !tagged:
			notes = append(notes, fmt.Sprintf(
				"%s uses async but sits outside the async subtree, so no tokio dependency was attached", c.RootModule))
		case tagged && !usage.UsesAsync && !usage.UsesTokio:
			notes = append(notes, fmt.Sprintf(
				"%s carries the tokio dependency but does not appear to use async", c.RootModule))
		}
	}
	return notes
}

func parseAsyncUsage(parser *sitter.Parser, content []byte) (asyncUsage, bool) {
	tree := parser.Parse(content, nil)
	if tree == nil {
		return asyncUsage{}, false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return asyncUsage{}, false
	}

	var usage asyncUsage
	walkTreePreOrder(root, func(node *sitter.Node) {
		switch node.Kind() {
		case "async_block", "await_expression":
			usage.UsesAsync = true
		case "function_modifiers":
			if strings.Contains(nodeText(node, content), "async") {
				usage.UsesAsync = true
			}
		case "use_declaration", "attribute_item":
			if strings.Contains(nodeText(node, content), "tokio") {
				usage.UsesTokio = true
			}
		}
	})
	return usage, true
}

func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return node.Utf8Text(source)
}

func walkTreePreOrder(root *sitter.Node, visit func(*sitter.Node)) {
	if root == nil || visit == nil {
		return
	}

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(node)

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			child := node.Child(uint(i))
			if child != nil {
				stack = append(stack, child)
			}
		}
	}
}
