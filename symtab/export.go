package symtab

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type entryDoc struct {
	Name      string   `yaml:"name"`
	DataType  string   `yaml:"type"`
	DeclLine  int      `yaml:"declared"`
	RefLines  []int    `yaml:"references,flow"`
	RefScopes []string `yaml:"reference-scopes,flow,omitempty"`
	Address   string   `yaml:"address"`
	Scope     string   `yaml:"scope"`
	Dimension int      `yaml:"dimension"`
}

type treeDoc struct {
	Name  string   `yaml:"name"`
	Left  *treeDoc `yaml:"left,omitempty"`
	Right *treeDoc `yaml:"right,omitempty"`
}

type bucketDoc struct {
	Bucket int      `yaml:"bucket"`
	Names  []string `yaml:"names,flow"`
}

type tablesDoc struct {
	Base    []entryDoc  `yaml:"base"`
	Ordered []entryDoc  `yaml:"ordered"`
	Tree    *treeDoc    `yaml:"tree,omitempty"`
	Hash    []bucketDoc `yaml:"hash"`
}

// EncodeYAML writes a YAML snapshot of all four views to w.
func (t *Tables) EncodeYAML(w io.Writer) error {
	doc := tablesDoc{
		Base:    entryDocs(t.Base),
		Ordered: entryDocs(t.Ordered),
		Tree:    treeDocOf(t.Tree.Root),
		Hash:    make([]bucketDoc, 0, t.Hash.Len()),
	}

	for b := 0; b < t.Hash.Len(); b++ {
		doc.Hash = append(doc.Hash, bucketDoc{Bucket: b, Names: t.Hash.Chain(b)})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, "failed to encode symbol tables")
	}

	return errors.Wrap(enc.Close(), "failed to flush symbol tables")
}

func entryDocs(table *Table) []entryDoc {
	docs := make([]entryDoc, 0, table.Len())
	for _, entry := range table.Entries() {
		scopes := make([]string, len(entry.RefScopes))
		for i, scope := range entry.RefScopes {
			scopes[i] = scope.String()
		}

		refs := entry.RefLines
		if refs == nil {
			refs = []int{}
		}

		docs = append(docs, entryDoc{
			Name:      entry.Name,
			DataType:  entry.DataType,
			DeclLine:  entry.DeclLine,
			RefLines:  refs,
			RefScopes: scopes,
			Address:   entry.AddressString(),
			Scope:     entry.Scope.String(),
			Dimension: entry.Dimension,
		})
	}

	return docs
}

func treeDocOf(node *TreeNode) *treeDoc {
	if node == nil {
		return nil
	}

	return &treeDoc{
		Name:  node.Name,
		Left:  treeDocOf(node.Left),
		Right: treeDocOf(node.Right),
	}
}
