package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/spacerush-go/internal/domain/catalog"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/domain/workshop"
)

// ChainNode is one resource in a production chain. Leaves are mined, inner
// nodes are made by Recipe from their Children.
type ChainNode struct {
	Resource shared.ResourceType
	Amount   int
	Recipe   *workshop.RecipeDefinition
	Sites    []string
	Children []*ChainNode
}

// BuildChain resolves how amount units of resource are obtained from the
// catalog. Cycles are cut at the first repeated resource.
func BuildChain(cat *catalog.Catalog, resource shared.ResourceType, amount int) *ChainNode {
	return buildChain(cat, resource, amount, map[shared.ResourceType]bool{})
}

func buildChain(cat *catalog.Catalog, resource shared.ResourceType, amount int, seen map[shared.ResourceType]bool) *ChainNode {
	node := &ChainNode{Resource: resource, Amount: amount}
	for _, site := range cat.Sites {
		for _, r := range site.Resources {
			if r == resource {
				node.Sites = append(node.Sites, site.ID)
			}
		}
	}
	if seen[resource] {
		return node
	}
	seen[resource] = true
	defer delete(seen, resource)

	for i := range cat.Recipes {
		recipe := &cat.Recipes[i]
		if recipe.Output != resource || recipe.OutputAmount <= 0 {
			continue
		}
		node.Recipe = recipe
		batches := (amount + recipe.OutputAmount - 1) / recipe.OutputAmount
		node.Children = append(node.Children, buildChain(cat, recipe.Input, batches*recipe.InputAmount, seen))
		break
	}
	return node
}

// TreeFormatter renders production chains
type TreeFormatter struct {
	useColors bool
}

// NewTreeFormatter creates a new tree formatter
func NewTreeFormatter(useColors bool) *TreeFormatter {
	return &TreeFormatter{useColors: useColors}
}

// FormatTree renders a chain with box-drawing branches
func (f *TreeFormatter) FormatTree(root *ChainNode) string {
	if root == nil {
		return "(empty tree)"
	}

	var builder strings.Builder
	f.formatNode(&builder, root, "", true, true)
	return builder.String()
}

func (f *TreeFormatter) formatNode(builder *strings.Builder, node *ChainNode, prefix string, isLast bool, isRoot bool) {
	var linePrefix string
	switch {
	case isRoot:
		linePrefix = ""
	case isLast:
		linePrefix = prefix + "└── "
	default:
		linePrefix = prefix + "├── "
	}

	method := "MINE"
	detail := ""
	if node.Recipe != nil {
		method = "CRAFT"
		detail = fmt.Sprintf(" via %s on %s (%.0fs)", node.Recipe.ID, node.Recipe.Machine, node.Recipe.Duration)
		if node.Recipe.RequiredTech != "" {
			detail += ", needs " + node.Recipe.RequiredTech
		}
	} else if len(node.Sites) > 0 {
		detail = " @ " + strings.Join(node.Sites, ", ")
	}

	builder.WriteString(fmt.Sprintf("%s%d × %s [%s%s%s]%s\n",
		linePrefix, node.Amount, node.Resource, f.methodColor(node), method, f.colorReset(), detail))

	var childPrefix string
	switch {
	case isRoot:
		childPrefix = ""
	case isLast:
		childPrefix = prefix + "    "
	default:
		childPrefix = prefix + "│   "
	}
	for i, child := range node.Children {
		f.formatNode(builder, child, childPrefix, i == len(node.Children)-1, false)
	}
}

func (f *TreeFormatter) methodColor(node *ChainNode) string {
	if !f.useColors {
		return ""
	}
	if node.Recipe != nil {
		return "\033[33m" // Yellow
	}
	return "\033[32m" // Green
}

func (f *TreeFormatter) colorReset() string {
	if !f.useColors {
		return ""
	}
	return "\033[0m"
}

// FormatCompactTree renders the chain on one line, raw material first
func (f *TreeFormatter) FormatCompactTree(root *ChainNode) string {
	if root == nil {
		return "(empty)"
	}

	var parts []string
	for node := root; node != nil; {
		parts = append([]string{fmt.Sprintf("%d %s", node.Amount, node.Resource)}, parts...)
		if len(node.Children) == 0 {
			break
		}
		node = node.Children[0]
	}
	return strings.Join(parts, " → ")
}
